package gallery

import (
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/key"
)

// Actions that a key can be bound to while a gallery is open.
const (
	ActionNext       = "next"
	ActionPrev       = "prev"
	ActionClose      = "close"
	ActionFullscreen = "fullscreen"
)

// Actions lists every bindable gallery action.
var Actions = []string{ActionNext, ActionPrev, ActionClose, ActionFullscreen}

// KeyMap holds the gallery key bindings.
type KeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Close      key.Binding
	Fullscreen key.Binding
	Thumbnail  key.Binding
}

// DefaultKeyMap returns the stock lightbox bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next image")),
		Prev:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous image")),
		Close:      key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "close")),
		Fullscreen: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fullscreen")),
		Thumbnail: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to image"),
		),
	}
}

// Bind appends keys to the binding for action. It reports false for an
// unknown action.
func (km *KeyMap) Bind(action string, keys ...string) bool {
	var b *key.Binding
	switch action {
	case ActionNext:
		b = &km.Next
	case ActionPrev:
		b = &km.Prev
	case ActionClose:
		b = &km.Close
	case ActionFullscreen:
		b = &km.Fullscreen
	default:
		return false
	}
	b.SetKeys(append(b.Keys(), keys...)...)
	return true
}

// ShortHelp returns the bindings shown in the lightbox footer.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Prev, km.Next, km.Fullscreen, km.Close}
}

// FullHelp returns every binding, grouped for the help dialog.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Prev, km.Next, km.Thumbnail}, {km.Fullscreen, km.Close}}
}

// KeyboardController translates key events into store operations. It is
// attached only while the store has an open session; it wires itself to the
// store's open/close transitions on construction.
type KeyboardController struct {
	store    *Store
	thumbs   *Thumbnails
	keys     KeyMap
	attached bool
}

// NewKeyboardController creates a controller bound to store.
func NewKeyboardController(store *Store, keys KeyMap) *KeyboardController {
	c := &KeyboardController{
		store:  store,
		thumbs: NewThumbnails(store),
		keys:   keys,
	}
	c.attached = store.IsOpen()
	store.Observe(func(open bool) {
		if open {
			c.Attach()
		} else {
			c.Detach()
		}
	})
	return c
}

// Attach starts handling key events.
func (c *KeyboardController) Attach() { c.attached = true }

// Detach stops handling key events.
func (c *KeyboardController) Detach() { c.attached = false }

// Attached reports whether the controller currently consumes keys.
func (c *KeyboardController) Attached() bool { return c.attached }

// Keys returns the active key map.
func (c *KeyboardController) Keys() KeyMap { return c.keys }

// Handle applies msg to the store. It reports whether the key was consumed;
// unbound keys pass through unchanged.
func (c *KeyboardController) Handle(msg fmt.Stringer) bool {
	if !c.attached || !c.store.IsOpen() {
		return false
	}

	switch {
	case key.Matches(msg, c.keys.Next):
		c.store.Next()
	case key.Matches(msg, c.keys.Prev):
		c.store.Prev()
	case key.Matches(msg, c.keys.Close):
		c.store.Close()
	case key.Matches(msg, c.keys.Fullscreen):
		c.store.ToggleFullscreen()
	case key.Matches(msg, c.keys.Thumbnail):
		n, err := strconv.Atoi(msg.String())
		if err != nil {
			return false
		}
		c.thumbs.Select(n - 1)
	default:
		return false
	}
	return true
}
