package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type member struct {
	Name string
	Role string
}

func TestSelection_Select_and_Clear(t *testing.T) {
	s := New[member]()
	var events []bool
	s.Observe(func(open bool) { events = append(events, open) })

	_, ok := s.Selected()
	assert.False(t, ok)

	s.Select(member{Name: "Ada", Role: "社長"})
	got, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, "Ada", got.Name)

	s.Select(member{Name: "Lin", Role: "副社長"})
	got, _ = s.Selected()
	assert.Equal(t, "Lin", got.Name)

	s.Clear()
	s.Clear()
	assert.False(t, s.IsOpen())
	assert.Equal(t, []bool{true, false}, events)
}

func TestSelection_Selected_returns_copy(t *testing.T) {
	s := New[member]()
	s.Select(member{Name: "Ada"})

	got, _ := s.Selected()
	got.Name = "changed"

	again, _ := s.Selected()
	assert.Equal(t, "Ada", again.Name)
}
