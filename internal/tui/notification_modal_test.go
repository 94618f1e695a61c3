package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/notify"
	tuinotify "github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/tui/notify"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/pkg/tuitest"
)

func TestNotificationModal_Empty(t *testing.T) {
	m := NewNotificationModal(tuinotify.NewBus(nil), 80, 24)
	out := tuitest.StripANSI(m.Overlay(testBackground, 80, 24))
	assert.Contains(t, out, "Notifications")
	assert.Contains(t, out, "No notifications")
}

func TestNotificationModal_ShowsNewestFirst(t *testing.T) {
	bus := tuinotify.NewBus(notify.NewHistory(notify.DefaultHistorySize))
	bus.Infof("copied link")
	bus.Errorf("open failed")

	out := tuitest.StripANSI(NewNotificationModal(bus, 80, 24).Overlay(testBackground, 80, 24))

	assert.Contains(t, out, "copied link")
	assert.Contains(t, out, "open failed")
	assert.Less(t, strings.Index(out, "open failed"), strings.Index(out, "copied link"))
}

func TestNotificationModal_Clear(t *testing.T) {
	bus := tuinotify.NewBus(notify.NewHistory(notify.DefaultHistorySize))
	bus.Warnf("reload skipped")

	m := NewNotificationModal(bus, 80, 24)
	m.Clear()

	assert.Empty(t, bus.History())
	assert.Contains(t, tuitest.StripANSI(m.Overlay(testBackground, 80, 24)), "No notifications")
}

func TestNotificationModal_Scroll(t *testing.T) {
	bus := tuinotify.NewBus(notify.NewHistory(notify.DefaultHistorySize))
	for i := range 40 {
		bus.Infof("message %02d", i)
	}

	m := NewNotificationModal(bus, 80, 24)
	m.ScrollDown()
	m.ScrollDown()
	assert.Equal(t, 2, m.viewport.YOffset())

	m.ScrollUp()
	assert.Equal(t, 1, m.viewport.YOffset())
	assert.Contains(t, tuitest.StripANSI(m.Overlay(testBackground, 80, 24)), "%)")
}
