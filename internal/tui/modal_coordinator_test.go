package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/content"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/scrolllock"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/tui/components"
	tuinotify "github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/tui/notify"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/pkg/tuitest"
)

const testBackground = "background"

func newTestCoordinator(t *testing.T) (*ModalCoordinator, *scrolllock.Gate) {
	t.Helper()
	gate := scrolllock.New()
	mc := NewModalCoordinator(gate)
	mc.SetSize(80, 24)
	return mc, gate
}

func TestModalCoordinator_Overlay_NoModal(t *testing.T) {
	mc, _ := newTestCoordinator(t)
	assert.Equal(t, testBackground, mc.Overlay(testBackground))
	assert.Equal(t, testBackground, mc.OverlayDetail(testBackground))
}

func TestModalCoordinator_Overlay(t *testing.T) {
	tests := []struct {
		name  string
		show  func(mc *ModalCoordinator)
		owner string
		want  string
	}{
		{
			name:  "confirm",
			show:  func(mc *ModalCoordinator) { mc.ShowConfirm("Open link?", "https://example.com") },
			owner: "confirm",
			want:  "https://example.com",
		},
		{
			name: "help",
			show: func(mc *ModalCoordinator) {
				mc.ShowHelp("Keys", []components.HelpDialogSection{
					{Title: "Pages", Entries: []components.HelpEntry{{Key: "q", Desc: "quit"}}},
				})
			},
			owner: "help",
			want:  "quit",
		},
		{
			name:  "notifications",
			show:  func(mc *ModalCoordinator) { mc.ShowNotifications(tuinotify.NewBus(nil)) },
			owner: "notifications",
			want:  "No notifications",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mc, gate := newTestCoordinator(t)
			tt.show(mc)

			assert.True(t, mc.HasDialog())
			assert.Equal(t, []string{tt.owner}, gate.Owners())
			assert.Contains(t, tuitest.StripANSI(mc.Overlay(testBackground)), tt.want)
		})
	}
}

func TestModalCoordinator_Dismiss_releases_gate(t *testing.T) {
	mc, gate := newTestCoordinator(t)

	mc.ShowConfirm("Open link?", "https://example.com")
	mc.ShowHelp("Keys", nil)
	mc.ShowNotifications(tuinotify.NewBus(nil))
	require.Equal(t, 3, gate.Count())
	assert.Equal(t, "https://example.com", mc.PendingOpen)

	mc.DismissConfirm()
	assert.Empty(t, mc.PendingOpen)
	mc.DismissHelp()
	mc.DismissNotifications()

	assert.False(t, mc.HasDialog())
	assert.False(t, gate.Locked())
}

func TestModalCoordinator_Confirm_draws_above_help(t *testing.T) {
	mc, _ := newTestCoordinator(t)
	mc.ShowHelp("Keys", []components.HelpDialogSection{
		{Title: "Pages", Entries: []components.HelpEntry{{Key: "q", Desc: "quit"}}},
	})
	mc.ShowConfirm("Open link?", "https://example.com")

	out := tuitest.StripANSI(mc.Overlay(testBackground))
	assert.Contains(t, out, "Open link?")
	assert.NotContains(t, out, "quit")
}

func TestModalCoordinator_Detail(t *testing.T) {
	mc, _ := newTestCoordinator(t)

	var cleared []string
	first := newsDetail(content.NewsItem{Title: "First"})
	first.clear = func() { cleared = append(cleared, "first") }
	second := newsDetail(content.NewsItem{Title: "Second"})
	second.clear = func() { cleared = append(cleared, "second") }

	mc.ShowDetail(first)
	assert.Contains(t, tuitest.StripANSI(mc.OverlayDetail(testBackground)), "First")
	assert.False(t, mc.HasDialog(), "detail modals sit below the lightbox")

	mc.ShowDetail(second)
	assert.Equal(t, []string{"first"}, cleared)

	mc.DismissDetail()
	assert.Nil(t, mc.Detail)
	assert.Equal(t, []string{"first", "second"}, cleared)

	mc.DismissDetail()
	assert.Len(t, cleared, 2)
}
