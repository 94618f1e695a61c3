// Package tui implements the Bubble Tea browser for the club site.
package tui

import (
	"context"
	"runtime"
	"slices"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/config"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/content"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/gallery"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/logging"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/notify"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/scrolllock"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/selection"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/styles"
	tuinotify "github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/tui/notify"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/tui/picture"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/pkg/executil"
)

// Layout rows outside the page viewport.
const (
	headerHeight = 3 // divider + tabs + divider
	footerHeight = 1
	wheelStep    = 3
)

// Options configures the browser.
type Options struct {
	Site   *content.Site
	Loader content.Loader
	Exec   executil.Executor // runs the link opener; defaults to the real executor
	GOOS   string            // picks the default opener; defaults to runtime.GOOS

	StartPage content.Page
	// Gallery, when non-empty, opens the lightbox on start at StartIndex.
	Gallery    []gallery.ImageRef
	StartIndex int

	Changes  <-chan struct{} // content file changes, nil when not watching
	Warnings []string        // shown as toasts after the first frame
}

// Model is the main Bubble Tea model for the browser.
type Model struct {
	cfg        *config.Config
	site       *content.Site
	loader     content.Loader
	exec       executil.Executor
	opener     string
	keys       KeyMap
	detailKeys DetailKeyMap
	theme      string

	page     content.Page
	cursors  map[content.Page]int
	rendered renderedPage
	viewport viewport.Model
	width    int
	height   int
	quitting bool

	// Gallery
	store    *gallery.Store
	keyboard *gallery.KeyboardController
	thumbs   *gallery.Thumbnails
	slide    *Slide
	pictures *picture.Renderer

	// Scroll lock shared by every overlay
	gate *scrolllock.Gate

	// Selected records behind the detail modal
	news          *selection.Selection[content.NewsItem]
	members       *selection.Selection[content.TeamMember]
	announcements *selection.Selection[content.Announcement]
	events        *selection.Selection[content.Event]
	alumni        *selection.Selection[content.AlumniMember]

	modals *ModalCoordinator

	// Notifications
	notifyBus       *tuinotify.Bus
	toastController *ToastController
	toastView       *ToastView

	changes         <-chan struct{}
	startupWarnings []string
}

// contentChangedMsg is sent when the watched content file changes.
type contentChangedMsg struct{}

// contentReloadedMsg carries the result of reloading content.
type contentReloadedMsg struct {
	site *content.Site
	err  error
}

// openResultMsg reports the outcome of launching the link opener.
type openResultMsg struct {
	target string
	err    error
}

// notificationMsg carries a notification from an async tea.Cmd into the Update loop.
type notificationMsg struct {
	notification notify.Notification
}

// New creates a new browser model.
func New(cfg *config.Config, opts Options) Model {
	site := opts.Site
	if site == nil {
		site = &content.Site{}
	}

	exec := opts.Exec
	if exec == nil {
		exec = &executil.RealExecutor{}
	}
	goos := opts.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	gate := scrolllock.New()
	store := gallery.NewStore()
	store.Observe(gate.Bind("gallery").Set)
	keyboard := gallery.NewKeyboardController(store, cfg.KeyMap())

	news := selection.New[content.NewsItem]()
	news.Observe(gate.Bind("news").Set)
	members := selection.New[content.TeamMember]()
	members.Observe(gate.Bind("team").Set)
	announcements := selection.New[content.Announcement]()
	announcements.Observe(gate.Bind("announcement").Set)
	events := selection.New[content.Event]()
	events.Observe(gate.Bind("event").Set)
	alumni := selection.New[content.AlumniMember]()
	alumni.Observe(gate.Bind("alumni").Set)

	notifyBus := tuinotify.NewBus(notify.NewHistory(notify.DefaultHistorySize))
	toastCtrl := NewToastController()
	toastView := NewToastView(toastCtrl)

	// Wire bus -> toast controller
	notifyBus.Subscribe(func(n notify.Notification) {
		toastCtrl.Push(n)
	})

	gate.Watch(func(locked bool) {
		logger := logging.Component("scrolllock")
		logger.Debug().Bool("locked", locked).Strs("owners", gate.Owners()).Msg("page scroll lock changed")
	})

	page := opts.StartPage
	if !page.Valid() {
		page = content.PageHome
	}

	m := Model{
		cfg:             cfg,
		site:            site,
		loader:          opts.Loader,
		exec:            exec,
		opener:          cfg.Opener(goos),
		keys:            DefaultKeyMap(),
		detailKeys:      DefaultDetailKeyMap(),
		theme:           cfg.Theme,
		page:            page,
		cursors:         make(map[content.Page]int),
		viewport:        viewport.New(viewport.WithWidth(80), viewport.WithHeight(20)),
		store:           store,
		keyboard:        keyboard,
		thumbs:          gallery.NewThumbnails(store),
		slide:           NewSlide(slideTicks),
		pictures:        picture.New(cfg.AssetsDir, cfg.Gallery.RenderImages),
		gate:            gate,
		news:            news,
		members:         members,
		announcements:   announcements,
		events:          events,
		alumni:          alumni,
		modals:          NewModalCoordinator(gate),
		notifyBus:       notifyBus,
		toastController: toastCtrl,
		toastView:       toastView,
		changes:         opts.Changes,
		startupWarnings: opts.Warnings,
	}

	m.store.Open(opts.Gallery, opts.StartIndex)
	m.refreshPage()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return waitForChange(m.changes)
}

// Close releases every scroll-lock hold. It is safe to call after the
// program exits, including on error paths.
func (m Model) Close() {
	m.store.Close()
	m.gate.ReleaseAll()
}

// quit sets the quitting flag and releases the page.
func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.Close()
	return m, tea.Quit
}

// Page returns the active page.
func (m Model) Page() content.Page {
	return m.page
}

// Gallery returns the lightbox store.
func (m Model) Gallery() *gallery.Store {
	return m.store
}

// ScrollLock returns the page scroll gate.
func (m Model) ScrollLock() *scrolllock.Gate {
	return m.gate
}

// navPages lists pages in navbar order.
func (m Model) navPages() []content.Page {
	if len(m.site.Nav) == 0 {
		return content.Pages
	}
	pages := make([]content.Page, 0, len(m.site.Nav))
	for _, n := range m.site.Nav {
		pages = append(pages, n.Page)
	}
	return pages
}

func (m Model) contentHeight() int {
	return max(m.height-headerHeight-footerHeight, 1)
}

func (m Model) items() []pageItem {
	return pageItems(m.site, m.page)
}

func (m Model) cursor() int {
	return m.cursors[m.page]
}

func (m Model) currentItem() (pageItem, bool) {
	items := m.items()
	c := m.cursor()
	if c < 0 || c >= len(items) {
		return pageItem{}, false
	}
	return items[c], true
}

// refreshPage re-renders the active page into the viewport and keeps the
// cursor card in view.
func (m *Model) refreshPage() {
	n := len(m.items())
	c := min(m.cursors[m.page], n-1)
	m.cursors[m.page] = max(c, 0)

	m.rendered = renderPage(m.site, m.page, m.cursors[m.page], m.width-2)
	m.viewport.SetContent(m.rendered.body)
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	c := m.cursors[m.page]
	if c < 0 || c >= len(m.rendered.spans) {
		return
	}
	span := m.rendered.spans[c]
	height := m.contentHeight()
	offset := m.viewport.YOffset()
	switch {
	case span.start < offset:
		m.viewport.SetYOffset(span.start)
	case span.end > offset+height:
		m.viewport.SetYOffset(max(span.end-height, 0))
	}
}

func (m *Model) setPage(page content.Page) {
	if page == m.page || !slices.Contains(m.navPages(), page) {
		return
	}
	m.page = page
	m.viewport.SetYOffset(0)
	m.refreshPage()
}

func (m *Model) movePage(delta int) {
	pages := m.navPages()
	i := slices.Index(pages, m.page)
	if i < 0 {
		i = 0
	}
	m.setPage(pages[(i+delta+len(pages))%len(pages)])
}

func (m *Model) moveCursor(delta int) {
	n := len(m.items())
	if n == 0 {
		return
	}
	m.cursors[m.page] = min(max(m.cursor()+delta, 0), n-1)
	m.refreshPage()
}

// ensureToastTick starts the toast tick chain unless one is running.
func (m *Model) ensureToastTick() tea.Cmd {
	if m.toastController.HasToasts() && !m.toastController.Ticking() {
		m.toastController.SetTicking(true)
		return scheduleToastTick()
	}
	return nil
}

// notifyError publishes an error-level notification and returns a command
// to start the toast tick timer if needed.
func (m *Model) notifyError(format string, args ...any) tea.Cmd {
	m.notifyBus.Errorf(format, args...)
	return m.ensureToastTick()
}

func (m *Model) notifyInfo(format string, args ...any) tea.Cmd {
	m.notifyBus.Infof(format, args...)
	return m.ensureToastTick()
}

// applyTheme switches the active theme at runtime.
func (m *Model) applyTheme(name string) tea.Cmd {
	palette, ok := styles.GetPalette(name)
	if !ok {
		return m.notifyError("unknown theme %q, available: %v", name, styles.ThemeNames())
	}
	styles.SetTheme(palette)
	m.theme = name
	m.pictures.Reset()
	m.modals.Refresh()
	m.refreshPage()
	return m.notifyInfo("theme: %s", name)
}

// openGallery opens the lightbox over images at start.
func (m *Model) openGallery(images []gallery.ImageRef, start int) tea.Cmd {
	m.slide.Clear()
	if !m.store.Open(images, start) {
		return m.notifyInfo("no photos to show")
	}
	return nil
}

func (m Model) reloadContent() tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		site, err := loader.Load()
		return contentReloadedMsg{site: site, err: err}
	}
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return contentChangedMsg{}
	}
}

func (m Model) openTarget(target string) tea.Cmd {
	exec, opener := m.exec, m.opener
	return func() tea.Msg {
		err := exec.Start(context.Background(), opener, target)
		return openResultMsg{target: target, err: err}
	}
}

// copyText puts text on the clipboard through the terminal.
func (m *Model) copyText(text string) tea.Cmd {
	if text == "" {
		return m.notifyInfo("nothing to copy")
	}
	return tea.Batch(tea.SetClipboard(text), m.notifyInfo("copied %s", text))
}
