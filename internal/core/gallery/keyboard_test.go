package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// keyName is a minimal fmt.Stringer standing in for a key press event.
type keyName string

func (k keyName) String() string { return string(k) }

func TestKeyboardController_attaches_with_session(t *testing.T) {
	s := NewStore()
	c := NewKeyboardController(s, DefaultKeyMap())
	assert.False(t, c.Attached())

	s.Open(refs("a", "b"), 0)
	assert.True(t, c.Attached())

	s.Close()
	assert.False(t, c.Attached())
}

func TestKeyboardController_ignores_keys_when_closed(t *testing.T) {
	s := NewStore()
	c := NewKeyboardController(s, DefaultKeyMap())

	assert.False(t, c.Handle(keyName("right")))
	assert.False(t, c.Handle(keyName("esc")))

	s.Open(nil, 0)
	assert.False(t, c.Handle(keyName("right")))
	assert.False(t, s.IsOpen())
}

func TestKeyboardController_Handle(t *testing.T) {
	tests := []struct {
		name       string
		keys       []string
		wantIndex  int
		wantOpen   bool
		wantFull   bool
		wantHandle bool
	}{
		{"right advances", []string{"right"}, 2, true, false, true},
		{"l advances", []string{"l"}, 2, true, false, true},
		{"left retreats", []string{"left"}, 0, true, false, true},
		{"right wraps", []string{"right", "right", "right"}, 1, true, false, true},
		{"f toggles fullscreen", []string{"f"}, 1, true, true, true},
		{"digit jumps", []string{"3"}, 2, true, false, true},
		{"digit out of range ignored", []string{"9"}, 1, true, false, true},
		{"esc closes", []string{"esc"}, -1, false, false, true},
		{"q closes", []string{"q"}, -1, false, false, true},
		{"unbound passes through", []string{"x"}, 1, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			c := NewKeyboardController(s, DefaultKeyMap())
			s.Open(refs("a", "b", "c"), 1)

			var handled bool
			for _, k := range tt.keys {
				handled = c.Handle(keyName(k))
			}

			assert.Equal(t, tt.wantHandle, handled)
			assert.Equal(t, tt.wantIndex, s.ActiveIndex())
			assert.Equal(t, tt.wantOpen, s.IsOpen())
			assert.Equal(t, tt.wantFull, s.Fullscreen())
		})
	}
}

func TestKeyboardController_one_transition_per_press(t *testing.T) {
	s := NewStore()
	c := NewKeyboardController(s, DefaultKeyMap())
	s.Open(refs("a", "b", "c", "d", "e"), 0)

	for range 4 {
		c.Handle(keyName("right"))
	}
	assert.Equal(t, 4, s.ActiveIndex())
}

func TestKeyMap_Bind(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, km.Bind(ActionNext, "n"))
	assert.True(t, km.Bind(ActionClose, "backspace"))
	assert.False(t, km.Bind("zoom", "z"))

	s := NewStore()
	c := NewKeyboardController(s, km)
	s.Open(refs("a", "b"), 0)

	assert.True(t, c.Handle(keyName("n")))
	assert.Equal(t, 1, s.ActiveIndex())
	assert.True(t, c.Handle(keyName("right")))
	assert.Equal(t, 0, s.ActiveIndex())

	assert.True(t, c.Handle(keyName("backspace")))
	assert.False(t, s.IsOpen())
}
