package tui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/gallery"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/tui/components"
)

const (
	slideTicks        = 6
	slideTickInterval = 30 * time.Millisecond
)

type slideTickMsg time.Time

func scheduleSlideTick() tea.Cmd {
	return tea.Tick(slideTickInterval, func(t time.Time) tea.Msg {
		return slideTickMsg(t)
	})
}

// Slide tracks the lightbox image transition. Forward moves slide in from
// the right, backward moves from the left and jumps do not slide.
type Slide struct {
	direction gallery.Direction
	ticksLeft int
	ticksMax  int
}

// NewSlide creates a slide lasting ticksMax ticks.
func NewSlide(ticksMax int) *Slide {
	return &Slide{ticksMax: ticksMax}
}

// Start begins a slide in direction. It reports whether a tick chain is
// needed.
func (s *Slide) Start(direction gallery.Direction) bool {
	if direction == gallery.DirectionNone || s.ticksMax <= 0 {
		s.Clear()
		return false
	}
	wasActive := s.Active()
	s.direction = direction
	s.ticksLeft = s.ticksMax
	return !wasActive
}

// Tick advances the slide. It returns true while frames remain.
func (s *Slide) Tick() bool {
	if s.ticksLeft > 0 {
		s.ticksLeft--
	}
	return s.ticksLeft > 0
}

// Active reports whether a slide is in progress.
func (s *Slide) Active() bool {
	return s.ticksLeft > 0
}

// Clear stops any slide.
func (s *Slide) Clear() {
	s.direction = gallery.DirectionNone
	s.ticksLeft = 0
}

// Offset returns the horizontal shift in cells for a frame of width
// cells. Positive values shift right.
func (s *Slide) Offset(width int) int {
	if !s.Active() {
		return 0
	}
	shift := width * s.ticksLeft / (s.ticksMax * 2)
	if s.direction == gallery.DirectionBackward {
		return -shift
	}
	return shift
}

// Apply shifts every line of frame by the current offset, keeping each line
// width cells wide.
func (s *Slide) Apply(frame string, width int) string {
	offset := s.Offset(width)
	if offset == 0 {
		return frame
	}

	lines := strings.Split(frame, "\n")
	for i, line := range lines {
		if offset > 0 {
			line = components.Pad(offset) + line
		} else {
			line = ansi.TruncateLeft(line, -offset, "")
		}
		lines[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n")
}
