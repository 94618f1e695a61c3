package tui

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/config"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/content"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/gallery"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/styles"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/pkg/executil"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/pkg/tuitest"
)

const (
	testWidth  = 100
	testHeight = 30
)

func newTestModel(t *testing.T, opts Options) (Model, *executil.RecordingExecutor) {
	t.Helper()

	site, err := content.Parse(content.DefaultYAML())
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	cfg.Gallery.RenderImages = false

	rec := &executil.RecordingExecutor{}
	if opts.Site == nil {
		opts.Site = site
	}
	opts.Exec = rec
	opts.GOOS = "linux"

	m := New(&cfg, opts)
	return send(m, tuitest.WindowSize(testWidth, testHeight)), rec
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModel_Escape_closes_gallery_and_releases_scroll(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = send(m, tuitest.KeyPress('4'), tuitest.KeyPress('g'))
	require.Equal(t, content.PageEvents, m.Page())
	require.True(t, m.Gallery().IsOpen())
	require.True(t, m.ScrollLock().Locked())

	m = send(m, tuitest.KeyEsc())

	assert.False(t, m.Gallery().IsOpen())
	assert.False(t, m.ScrollLock().Locked())
	assert.False(t, m.keyboard.Attached())
}

func TestModel_gallery_keys(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = send(m, tuitest.KeyPress('4'), tuitest.KeyPress('g'))
	require.Equal(t, "1 / 6", m.Gallery().Counter())

	m = send(m, tuitest.KeyRight())
	assert.Equal(t, "2 / 6", m.Gallery().Counter())
	assert.True(t, m.slide.Active())

	m = send(m, tuitest.KeyLeft(), tuitest.KeyLeft())
	assert.Equal(t, "6 / 6", m.Gallery().Counter())

	m = send(m, tuitest.KeyPress('3'))
	assert.Equal(t, 2, m.Gallery().ActiveIndex())

	m = send(m, tuitest.KeyPress('f'))
	assert.True(t, m.Gallery().Fullscreen())
	assert.Equal(t, 2, m.Gallery().ActiveIndex())

	// page keys are swallowed while the lightbox is open
	m = send(m, tuitest.KeyTab())
	assert.Equal(t, content.PageEvents, m.Page())
}

func TestModel_overlapping_modals_share_scroll_lock(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = send(m, tuitest.KeyPress('4'), tuitest.KeyEnter())
	require.NotNil(t, m.modals.Detail)
	require.True(t, m.events.IsOpen())
	assert.Equal(t, 1, m.ScrollLock().Count())

	m = send(m, tuitest.KeyPress('2'))
	require.True(t, m.Gallery().IsOpen())
	assert.Equal(t, "2 / 4", m.Gallery().Counter())
	assert.Equal(t, 2, m.ScrollLock().Count())

	m = send(m, tuitest.KeyEsc())
	assert.False(t, m.Gallery().IsOpen())
	assert.NotNil(t, m.modals.Detail, "detail stays open under the closed gallery")
	assert.True(t, m.ScrollLock().Locked())

	m = send(m, tuitest.KeyEsc())
	assert.Nil(t, m.modals.Detail)
	assert.False(t, m.events.IsOpen())
	assert.False(t, m.ScrollLock().Locked())
}

func TestModel_view_album_leaves_event_detail(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = send(m, tuitest.KeyPress('4'), tuitest.KeyEnter(), tuitest.KeyPress('g'))

	assert.Nil(t, m.modals.Detail)
	assert.False(t, m.events.IsOpen())
	require.True(t, m.Gallery().IsOpen())
	assert.Equal(t, "1 / 6", m.Gallery().Counter())
	assert.Equal(t, 1, m.ScrollLock().Count())
}

func TestModel_album_card_opens_gallery(t *testing.T) {
	m, _ := newTestModel(t, Options{StartPage: content.PageEvents})

	m = send(m, tuitest.KeyDown(), tuitest.KeyDown(), tuitest.KeyDown(), tuitest.KeyEnter())

	require.True(t, m.Gallery().IsOpen())
	assert.Equal(t, "1 / 11", m.Gallery().Counter())
}

func TestModel_start_in_gallery(t *testing.T) {
	images := []gallery.ImageRef{{Locator: "a.jpg"}, {Locator: "b.jpg"}, {Locator: "c.jpg"}}
	m, _ := newTestModel(t, Options{Gallery: images, StartIndex: 7})

	require.True(t, m.Gallery().IsOpen())
	assert.Equal(t, "3 / 3", m.Gallery().Counter())
	assert.True(t, m.ScrollLock().Locked())

	out := tuitest.StripANSI(m.View().Content)
	assert.Contains(t, out, "3 / 3")
	assert.Contains(t, out, "scroll locked")
}

func TestModel_empty_gallery_stays_closed(t *testing.T) {
	m, _ := newTestModel(t, Options{Gallery: []gallery.ImageRef{}})

	assert.False(t, m.Gallery().IsOpen())
	assert.False(t, m.ScrollLock().Locked())

	m = send(m, tuitest.KeyRight())
	assert.False(t, m.Gallery().IsOpen())
}

func TestModel_page_scroll_respects_lock(t *testing.T) {
	m, _ := newTestModel(t, Options{StartPage: content.PageAbout})
	require.Greater(t, m.viewport.TotalLineCount(), m.contentHeight())

	release := m.ScrollLock().Acquire("test")
	m = send(m, tuitest.WheelDown(10, 10))
	assert.Equal(t, 0, m.viewport.YOffset())

	release()
	m = send(m, tuitest.WheelDown(10, 10))
	assert.Equal(t, wheelStep, m.viewport.YOffset())
}

func TestModel_wheel_scrolls_detail_not_page(t *testing.T) {
	m, _ := newTestModel(t, Options{StartPage: content.PageAbout})
	m = send(m, tuitest.KeyEnter())
	require.True(t, m.members.IsOpen())

	m = send(m, tuitest.WheelDown(10, 10))
	assert.Equal(t, 0, m.viewport.YOffset())
}

func TestModel_lightbox_clicks(t *testing.T) {
	m, _ := newTestModel(t, Options{StartPage: content.PageEvents})
	m = send(m, tuitest.KeyPress('g'))
	require.True(t, m.Gallery().IsOpen())

	layout := layoutLightbox(m.store, m.thumbs, testWidth, testHeight, m.cfg.Gallery.ThumbnailWidth)
	require.NotEmpty(t, layout.thumbs)

	m = send(m, tuitest.Click(layout.ox+layout.next.x+1, layout.oy+layout.next.y+1))
	assert.Equal(t, 1, m.Gallery().ActiveIndex())

	m = send(m, tuitest.Click(layout.ox+layout.prev.x+1, layout.oy+layout.prev.y+1))
	assert.Equal(t, 0, m.Gallery().ActiveIndex())

	last := layout.thumbs[len(layout.thumbs)-1]
	m = send(m, tuitest.Click(layout.ox+last.area.x+1, layout.oy+last.area.y+1))
	assert.Equal(t, last.thumb.Index, m.Gallery().ActiveIndex())

	m = send(m, tuitest.Click(0, 0))
	assert.False(t, m.Gallery().IsOpen())
	assert.False(t, m.ScrollLock().Locked())
}

func TestModel_click_tab_and_card(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	_, spans := m.renderTabs()
	m = send(m, tuitest.Click(spans[2].start, 1))
	require.Equal(t, content.PageAnnouncements, m.Page())

	span := m.rendered.spans[0]
	m = send(m, tuitest.Click(5, headerHeight+span.start))
	assert.True(t, m.announcements.IsOpen())
	assert.True(t, m.ScrollLock().Locked())

	// clicking outside the detail modal closes it
	m = send(m, tuitest.Click(0, testHeight-1))
	assert.False(t, m.announcements.IsOpen())
	assert.False(t, m.ScrollLock().Locked())
}

func TestModel_page_navigation(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	tests := []struct {
		name string
		msg  tea.Msg
		want content.Page
	}{
		{"tab moves forward", tuitest.KeyTab(), content.PageAbout},
		{"right moves forward", tuitest.KeyRight(), content.PageAnnouncements},
		{"left moves back", tuitest.KeyLeft(), content.PageAbout},
		{"digit jumps", tuitest.KeyPress('6'), content.PageContact},
		{"tab wraps", tuitest.KeyTab(), content.PageHome},
	}

	for _, tt := range tests {
		m = send(m, tt.msg)
		assert.Equal(t, tt.want, m.Page(), tt.name)
	}
}

func TestModel_cursor_is_kept_per_page(t *testing.T) {
	m, _ := newTestModel(t, Options{StartPage: content.PageAbout})

	m = send(m, tuitest.KeyDown(), tuitest.KeyDown(), tuitest.KeyTab(), tuitest.KeyDown(), tuitest.KeyPress('2'))
	assert.Equal(t, 2, m.cursor())

	m = send(m, tuitest.KeyUp(), tuitest.KeyUp(), tuitest.KeyUp())
	assert.Equal(t, 0, m.cursor())
}

func TestModel_open_link_confirms_first(t *testing.T) {
	m, rec := newTestModel(t, Options{})

	// home: two hero buttons then the news item
	m = send(m, tuitest.KeyDown(), tuitest.KeyDown(), tuitest.KeyEnter())
	require.True(t, m.news.IsOpen())

	m = send(m, tuitest.KeyPress('o'))
	require.NotNil(t, m.modals.Confirm)
	assert.Equal(t, 2, m.ScrollLock().Count())

	next, cmd := m.Update(tuitest.KeyPress('y'))
	m = next.(Model)
	assert.Nil(t, m.modals.Confirm)
	assert.Equal(t, 1, m.ScrollLock().Count())
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, openResultMsg{}, msg)
	require.Len(t, rec.Recorded(), 1)
	got := rec.Recorded()[0]
	assert.Equal(t, "xdg-open", got.Cmd)
	assert.Equal(t, []string{"https://forms.gle/eNpbUm7ZUQybPieA9"}, got.Args)
	assert.True(t, got.Detached)

	m = send(m, msg)
	assert.True(t, m.toastController.HasToasts())
}

func TestModel_open_link_cancel(t *testing.T) {
	m, rec := newTestModel(t, Options{})

	m = send(m, tuitest.KeyPress('o'), tuitest.KeyPress('n'))

	assert.Nil(t, m.modals.Confirm)
	assert.False(t, m.ScrollLock().Locked())
	assert.Empty(t, rec.Recorded())
}

func TestModel_open_failure_is_a_toast(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = send(m, openResultMsg{target: "https://example.com", err: errors.New("exec: not found")})

	require.True(t, m.toastController.HasToasts())
	history := m.notifyBus.History()
	require.NotEmpty(t, history)
	assert.Contains(t, history[0].Message, "not found")
}

func TestModel_help_and_notifications_lock_scroll(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = send(m, tuitest.KeyPress('?'))
	require.NotNil(t, m.modals.Help)
	assert.True(t, m.ScrollLock().Locked())
	assert.Contains(t, tuitest.StripANSI(m.View().Content), "Pages")

	m = send(m, tuitest.KeyEsc(), tuitest.KeyPress('n'))
	assert.Nil(t, m.modals.Help)
	require.NotNil(t, m.modals.Notification)
	assert.Equal(t, []string{"notifications"}, m.ScrollLock().Owners())

	m = send(m, tuitest.KeyEsc())
	assert.False(t, m.ScrollLock().Locked())
}

func TestModel_content_reload(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = send(m, contentReloadedMsg{err: errors.New("bad yaml")})
	assert.Equal(t, "FSCS 鳳山高中電腦資訊社", m.site.Name)
	assert.Contains(t, m.notifyBus.History()[0].Message, "bad yaml")

	site := &content.Site{Name: "Reloaded", Nav: []content.NavItem{{Page: content.PageHome, Title: "Home"}}}
	m = send(m, contentReloadedMsg{site: site})
	assert.Equal(t, "Reloaded", m.site.Name)
	assert.Contains(t, tuitest.StripANSI(m.View().Content), "Home")
}

func TestModel_theme_cycles(t *testing.T) {
	t.Cleanup(func() {
		p, _ := styles.GetPalette(styles.DefaultTheme)
		styles.SetTheme(p)
	})

	m, _ := newTestModel(t, Options{})
	m = send(m, tuitest.KeyPress('t'))

	assert.Equal(t, styles.NextTheme(styles.DefaultTheme), m.theme)
}

func TestModel_quit_releases_everything(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = send(m, tuitest.KeyPress('4'), tuitest.KeyEnter(), tuitest.KeyPress('1'))
	require.Equal(t, 2, m.ScrollLock().Count())

	next, cmd := m.Update(tea.KeyPressMsg(tea.Key{Code: 'c', Mod: tea.ModCtrl}))
	m = next.(Model)

	assert.True(t, m.quitting)
	assert.False(t, m.ScrollLock().Locked())
	assert.False(t, m.Gallery().IsOpen())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
