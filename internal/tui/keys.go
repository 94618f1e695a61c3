package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/tui/components"
)

// KeyMap holds the page-level bindings used while no overlay is open.
// Gallery bindings live in gallery.KeyMap.
type KeyMap struct {
	NextPage      key.Binding
	PrevPage      key.Binding
	JumpPage      key.Binding
	Up            key.Binding
	Down          key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	Open          key.Binding
	Gallery       key.Binding
	Copy          key.Binding
	OpenLink      key.Binding
	Theme         key.Binding
	Reload        key.Binding
	Help          key.Binding
	Notifications key.Binding
	Quit          key.Binding
}

// DetailKeyMap holds the bindings active inside a detail modal.
type DetailKeyMap struct {
	Close    key.Binding
	Up       key.Binding
	Down     key.Binding
	Gallery  key.Binding
	Image    key.Binding
	Copy     key.Binding
	OpenLink key.Binding
}

// DefaultKeyMap returns the page bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextPage:      key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next page")),
		PrevPage:      key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab/←", "previous page")),
		JumpPage:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "go to page")),
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous card")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next card")),
		PageUp:        key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "scroll up")),
		PageDown:      key.NewBinding(key.WithKeys("pgdown", "space"), key.WithHelp("pgdn", "scroll down")),
		Open:          key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Gallery:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "view photos")),
		Copy:          key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
		OpenLink:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open link")),
		Theme:         key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "next theme")),
		Reload:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload content")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Notifications: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notifications")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// DefaultDetailKeyMap returns the detail modal bindings.
func DefaultDetailKeyMap() DetailKeyMap {
	return DetailKeyMap{
		Close:    key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Gallery:  key.NewBinding(key.WithKeys("g", "enter"), key.WithHelp("g", "view album")),
		Image:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "view photo")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
		OpenLink: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open link")),
	}
}

func (m Model) helpSections() []components.HelpDialogSection {
	k := m.keys
	g := m.keyboard.Keys()
	d := m.detailKeys
	return []components.HelpDialogSection{
		components.SectionFromBindings("Pages",
			k.NextPage, k.PrevPage, k.JumpPage, k.Up, k.Down, k.PageUp, k.PageDown,
			k.Open, k.Gallery, k.Copy, k.OpenLink),
		components.SectionFromBindings("Details", d.Close, d.Down, d.Gallery, d.Image, d.Copy, d.OpenLink),
		components.SectionFromBindings("Gallery", g.Next, g.Prev, g.Close, g.Fullscreen, g.Thumbnail),
		components.SectionFromBindings("General", k.Theme, k.Reload, k.Notifications, k.Help, k.Quit),
	}
}
