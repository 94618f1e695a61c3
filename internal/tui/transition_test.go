package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/gallery"
)

func TestSlide(t *testing.T) {
	s := NewSlide(4)

	assert.False(t, s.Start(gallery.DirectionNone))
	assert.False(t, s.Active())

	assert.True(t, s.Start(gallery.DirectionForward))
	assert.Equal(t, 20, s.Offset(40))
	assert.False(t, s.Start(gallery.DirectionBackward), "running chain is reused")
	assert.Equal(t, -20, s.Offset(40))

	assert.True(t, s.Tick())
	assert.Equal(t, -15, s.Offset(40))
	s.Tick()
	s.Tick()
	assert.False(t, s.Tick())
	assert.Equal(t, 0, s.Offset(40))

	s.Start(gallery.DirectionForward)
	assert.False(t, s.Start(gallery.DirectionNone) || s.Active(), "jump cancels the slide")
}

func TestSlide_Apply(t *testing.T) {
	s := NewSlide(2)
	frame := "abcdefgh\nABCDEFGH"

	assert.Equal(t, frame, s.Apply(frame, 8))

	s.Start(gallery.DirectionForward)
	assert.Equal(t, "    abcd\n    ABCD", s.Apply(frame, 8))

	s.Start(gallery.DirectionBackward)
	out := s.Apply(frame, 8)
	assert.Equal(t, "efgh\nEFGH", out)
	assert.LessOrEqual(t, ansi.StringWidth("efgh"), 8)
}
