package components

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/pkg/tuitest"
)

func TestDetailModal_RendersSectionsAndBody(t *testing.T) {
	d := NewDetailModal(Detail{
		Title:    "迎新茶會",
		Badge:    "活動",
		Subtitle: "2025-09-12",
		Sections: []DetailSection{
			{
				Title:  "資訊",
				Fields: []DetailField{{Label: "地點", Value: "電腦教室"}},
			},
			{Title: "技能", Bullets: []string{"Go", "Linux"}},
		},
		Body: "歡迎 **新社員**",
	}, "esc close", 120, 40)

	out := tuitest.StripANSI(d.Overlay("bg", 120, 40))
	for _, want := range []string{"迎新茶會", "[活動]", "2025-09-12", "地點", "電腦教室", "• Go", "新社員", "esc close"} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, "迎新茶會", d.Title())

	d.SetStatus("copied")
	assert.Contains(t, tuitest.StripANSI(d.Overlay("bg", 120, 40)), "copied")
}

func TestDetailModal_Scrolls(t *testing.T) {
	bullets := make([]string, 60)
	for i := range bullets {
		bullets[i] = "line"
	}
	d := NewDetailModal(Detail{Title: "long", Sections: []DetailSection{{Bullets: bullets}}}, "help", 70, 18)

	before := d.Overlay("bg", 70, 18)
	d.ScrollDown()
	after := d.Overlay("bg", 70, 18)
	assert.NotEqual(t, before, after)

	d.ScrollUp()
	assert.Equal(t, before, d.Overlay("bg", 70, 18))
}

func TestHelpDialog_FromBindings(t *testing.T) {
	next := key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next image"))
	hidden := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled())

	section := SectionFromBindings("Gallery", next, hidden)
	assert.Equal(t, []HelpEntry{{Key: "→", Desc: "next image"}}, section.Entries)

	out := tuitest.StripANSI(NewHelpDialog("Keys", []HelpDialogSection{section}).View())
	assert.Contains(t, out, "Gallery")
	assert.Contains(t, out, "next image")
}

func TestConfirmModal(t *testing.T) {
	m := NewConfirmModal("Open link", "https://example.com")

	m, _ = m.Update(tuitest.KeyPress('x'))
	assert.False(t, m.Confirmed())
	assert.False(t, m.Cancelled())

	yes, _ := m.Update(tuitest.KeyPress('y'))
	assert.True(t, yes.Confirmed())

	no, _ := m.Update(tuitest.KeyEsc())
	assert.True(t, no.Cancelled())

	_, cmd := m.Update(tea.WindowSizeMsg{})
	assert.Nil(t, cmd)
}

func TestPadding(t *testing.T) {
	assert.Empty(t, Pad(-1))
	assert.Len(t, Pad(5), 5)
	assert.Len(t, Pad(300), 300)
	assert.Equal(t, "社團  ", PadRight("社團", 6))
	assert.Equal(t, "abc…", Truncate("abcdef", 4))
	assert.True(t, strings.HasPrefix(Truncate("abc", 10), "abc"))
}
