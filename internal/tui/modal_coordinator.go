package tui

import (
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/scrolllock"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/tui/components"
	tuinotify "github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/tui/notify"
)

// ModalCoordinator owns the modal components drawn over the page and keeps
// each one's hold on the scroll gate in step with its visibility. Detail
// modals hold the gate through their selection instead.
type ModalCoordinator struct {
	Detail       *detailView
	Help         *components.HelpDialog
	Notification *NotificationModal
	Confirm      *components.ConfirmModal

	// PendingOpen is the target opened once Confirm is accepted.
	PendingOpen string

	help         *scrolllock.Binding
	notification *scrolllock.Binding
	confirm      *scrolllock.Binding

	width, height int
}

// NewModalCoordinator creates a coordinator whose modals lock gate while
// shown.
func NewModalCoordinator(gate *scrolllock.Gate) *ModalCoordinator {
	return &ModalCoordinator{
		help:         gate.Bind("help"),
		notification: gate.Bind("notifications"),
		confirm:      gate.Bind("confirm"),
	}
}

// SetSize updates the available dimensions and re-lays out the open
// detail modal.
func (mc *ModalCoordinator) SetSize(w, h int) {
	mc.width = w
	mc.height = h
	mc.Refresh()
}

// Refresh rebuilds size- and theme-dependent modal content.
func (mc *ModalCoordinator) Refresh() {
	if mc.Detail != nil {
		mc.Detail.resize(mc.size())
	}
}

func (mc *ModalCoordinator) size() (int, int) {
	w, h := mc.width, mc.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}
	return w, h
}

// OverlayDetail draws the detail modal, which sits below the lightbox.
func (mc *ModalCoordinator) OverlayDetail(bg string) string {
	if mc.Detail == nil {
		return bg
	}
	w, h := mc.size()
	return mc.Detail.modal.Overlay(bg, w, h)
}

// Overlay draws the dialogs that sit above everything but toasts.
func (mc *ModalCoordinator) Overlay(bg string) string {
	w, h := mc.size()
	switch {
	case mc.Confirm != nil:
		return mc.Confirm.Overlay(bg, w, h)
	case mc.Help != nil:
		return mc.Help.Overlay(bg, w, h)
	case mc.Notification != nil:
		return mc.Notification.Overlay(bg, w, h)
	default:
		return bg
	}
}

// ShowDetail opens d, replacing any open detail modal.
func (mc *ModalCoordinator) ShowDetail(d *detailView) {
	if mc.Detail != nil && mc.Detail != d && mc.Detail.clear != nil {
		mc.Detail.clear()
	}
	mc.Detail = d
	d.resize(mc.size())
}

// DismissDetail closes the detail modal and clears its selection.
func (mc *ModalCoordinator) DismissDetail() {
	if mc.Detail == nil {
		return
	}
	if mc.Detail.clear != nil {
		mc.Detail.clear()
	}
	mc.Detail = nil
}

// ShowHelp creates and displays the help dialog.
func (mc *ModalCoordinator) ShowHelp(title string, sections []components.HelpDialogSection) {
	mc.Help = components.NewHelpDialog(title, sections)
	mc.help.Set(true)
}

// DismissHelp closes the help dialog.
func (mc *ModalCoordinator) DismissHelp() {
	mc.Help = nil
	mc.help.Set(false)
}

// ShowNotifications creates and displays the notification modal.
func (mc *ModalCoordinator) ShowNotifications(bus *tuinotify.Bus) {
	w, h := mc.size()
	mc.Notification = NewNotificationModal(bus, w, h)
	mc.notification.Set(true)
}

// DismissNotifications closes the notification modal.
func (mc *ModalCoordinator) DismissNotifications() {
	mc.Notification = nil
	mc.notification.Set(false)
}

// ShowConfirm asks before opening target.
func (mc *ModalCoordinator) ShowConfirm(title, target string) {
	modal := components.NewConfirmModal(title, target)
	mc.Confirm = &modal
	mc.PendingOpen = target
	mc.confirm.Set(true)
}

// DismissConfirm closes the confirmation modal and forgets the pending target.
func (mc *ModalCoordinator) DismissConfirm() {
	mc.Confirm = nil
	mc.PendingOpen = ""
	mc.confirm.Set(false)
}

// HasDialog reports whether a dialog above the lightbox is open.
func (mc *ModalCoordinator) HasDialog() bool {
	return mc.Confirm != nil || mc.Help != nil || mc.Notification != nil
}
