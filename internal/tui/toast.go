package tui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/notify"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/styles"
)

const (
	defaultToastTTL   = 5 * time.Second
	errorToastTTL     = 8 * time.Second
	defaultMaxToasts  = 4
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 46
)

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

type toast struct {
	notification notify.Notification
	repeats      int
	expiresAt    time.Time
}

func ttlFor(level notify.Level) time.Duration {
	if level == notify.LevelError {
		return errorToastTTL
	}
	return defaultToastTTL
}

// ToastController manages the lifecycle of active toast notifications.
// Expiry is measured against an absolute clock so extra ticks are harmless.
type ToastController struct {
	toasts  []toast
	now     func() time.Time
	ticking bool
}

func NewToastController() *ToastController {
	return &ToastController{now: time.Now}
}

// Push adds a notification to the toast stack. A notification repeating the
// newest toast refreshes it instead of stacking a copy. Past defaultMaxToasts
// the oldest toast is evicted.
func (c *ToastController) Push(n notify.Notification) {
	expires := c.now().Add(ttlFor(n.Level))

	if last := len(c.toasts) - 1; last >= 0 {
		prev := &c.toasts[last]
		if prev.notification.Level == n.Level && prev.notification.Message == n.Message {
			prev.repeats++
			prev.expiresAt = expires
			return
		}
	}

	c.toasts = append(c.toasts, toast{notification: n, expiresAt: expires})
	if len(c.toasts) > defaultMaxToasts {
		c.toasts = c.toasts[len(c.toasts)-defaultMaxToasts:]
	}
}

// Tick removes expired toasts.
func (c *ToastController) Tick() {
	now := c.now()
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		if now.Before(t.expiresAt) {
			alive = append(alive, t)
		}
	}
	c.toasts = alive
}

// Dismiss removes the newest (bottom-most) toast.
func (c *ToastController) Dismiss() {
	if len(c.toasts) > 0 {
		c.toasts = c.toasts[:len(c.toasts)-1]
	}
}

// DismissAll removes all active toasts.
func (c *ToastController) DismissAll() {
	c.toasts = c.toasts[:0]
}

// HasToasts returns true if there are any active toasts.
func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

// Toasts returns the current active toast slice.
func (c *ToastController) Toasts() []toast {
	return c.toasts
}

// Ticking returns whether the tick timer is currently running.
func (c *ToastController) Ticking() bool {
	return c.ticking
}

// SetTicking sets the tick timer state.
func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}

// ToastView renders toast notifications and composites them as an overlay.
type ToastView struct {
	controller *ToastController
}

func NewToastView(controller *ToastController) *ToastView {
	return &ToastView{controller: controller}
}

// View renders the toast stack with the oldest at the top.
func (v *ToastView) View(width int) string {
	toasts := v.controller.Toasts()
	if len(toasts) == 0 {
		return ""
	}

	w := toastWidth
	if width > 0 {
		w = min(toastWidth, max(width-2, 10))
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, renderToast(t, w))
	}

	return strings.Join(rendered, "\n")
}

func renderToast(t toast, width int) string {
	var icon string
	var style lipgloss.Style

	switch t.notification.Level {
	case notify.LevelError:
		icon = styles.IconNotifyError
		style = styles.ToastErrorStyle
	case notify.LevelWarning:
		icon = styles.IconNotifyWarning
		style = styles.ToastWarningStyle
	default:
		icon = styles.IconNotifyInfo
		style = styles.ToastInfoStyle
	}

	content := icon + " " + t.notification.Message
	if t.repeats > 0 {
		content += styles.TextMutedStyle.Render(fmt.Sprintf(" ×%d", t.repeats+1))
	}
	return style.Width(width).Render(content)
}

// Overlay composites the toast stack over background in the lower-right corner.
func (v *ToastView) Overlay(background string, width, height int) string {
	toastContent := v.View(width)
	if toastContent == "" {
		return background
	}

	bgLayer := lipgloss.NewLayer(background)
	toastLayer := lipgloss.NewLayer(toastContent)

	rightX := max(width-lipgloss.Width(toastContent)-1, 0)
	bottomY := max(height-lipgloss.Height(toastContent), 0)

	toastLayer.X(rightX).Y(bottomY).Z(4)

	return lipgloss.NewCompositor(bgLayer, toastLayer).Render()
}
