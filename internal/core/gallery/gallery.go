// Package gallery implements the lightbox state machine: one session of
// ordered images with an active index and a fullscreen flag, plus the
// keyboard controller and thumbnail projection that drive it.
//
// The package has no Bubble Tea dependency. All operations are synchronous
// in-memory transitions and never return errors; invalid requests are
// silently ignored.
package gallery

import (
	"fmt"
	"slices"
)

// ImageRef locates one image. It is immutable once handed to the store.
type ImageRef struct {
	Locator string
	Caption string
}

// Direction records how the active index last moved.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionForward
	DirectionBackward
)

// Session is a snapshot of an open lightbox.
type Session struct {
	Images     []ImageRef
	Active     int
	Fullscreen bool
}

// Observer is notified when the store transitions between closed and open.
type Observer func(open bool)

// Store owns at most one gallery session.
type Store struct {
	session   *Session
	direction Direction
	observers []Observer
}

// NewStore creates a store with no open session.
func NewStore() *Store {
	return &Store{}
}

// Observe registers fn for closed->open and open->closed transitions.
// Replacing an open session with another does not notify.
func (s *Store) Observe(fn Observer) {
	if fn == nil {
		return
	}
	s.observers = append(s.observers, fn)
}

// Open starts a session over images with the active index clamped to the
// sequence bounds. An empty sequence leaves the store unchanged and Open
// reports false.
func (s *Store) Open(images []ImageRef, start int) bool {
	if len(images) == 0 {
		return false
	}

	wasOpen := s.session != nil
	s.session = &Session{
		Images: slices.Clone(images),
		Active: min(max(start, 0), len(images)-1),
	}
	s.direction = DirectionNone

	if !wasOpen {
		s.notify(true)
	}
	return true
}

// Close discards the session. Closing a closed store is a no-op.
func (s *Store) Close() {
	if s.session == nil {
		return
	}
	s.session = nil
	s.direction = DirectionNone
	s.notify(false)
}

// Next advances the active index, wrapping from the last image to the first.
func (s *Store) Next() {
	if s.session == nil {
		return
	}
	n := len(s.session.Images)
	s.session.Active = (s.session.Active + 1) % n
	s.direction = DirectionForward
}

// Prev moves the active index back, wrapping from the first image to the last.
func (s *Store) Prev() {
	if s.session == nil {
		return
	}
	n := len(s.session.Images)
	s.session.Active = (s.session.Active - 1 + n) % n
	s.direction = DirectionBackward
}

// JumpTo sets the active index directly. Out-of-range targets are rejected,
// not clamped.
func (s *Store) JumpTo(index int) {
	if s.session == nil || index < 0 || index >= len(s.session.Images) {
		return
	}
	s.session.Active = index
	s.direction = DirectionNone
}

// ToggleFullscreen flips the fullscreen flag of the open session.
func (s *Store) ToggleFullscreen() {
	if s.session == nil {
		return
	}
	s.session.Fullscreen = !s.session.Fullscreen
}

// IsOpen reports whether a session exists.
func (s *Store) IsOpen() bool {
	return s.session != nil
}

// Session returns a copy of the open session.
func (s *Store) Session() (Session, bool) {
	if s.session == nil {
		return Session{}, false
	}
	cp := *s.session
	cp.Images = slices.Clone(s.session.Images)
	return cp, true
}

// ActiveIndex returns the active index, or -1 when closed.
func (s *Store) ActiveIndex() int {
	if s.session == nil {
		return -1
	}
	return s.session.Active
}

// Active returns the image at the active index.
func (s *Store) Active() (ImageRef, bool) {
	if s.session == nil {
		return ImageRef{}, false
	}
	return s.session.Images[s.session.Active], true
}

// Len returns the number of images in the session (0 when closed).
func (s *Store) Len() int {
	if s.session == nil {
		return 0
	}
	return len(s.session.Images)
}

// Fullscreen reports the fullscreen flag; false when closed.
func (s *Store) Fullscreen() bool {
	return s.session != nil && s.session.Fullscreen
}

// Counter renders the 1-based position, e.g. "2 / 6". Empty when closed.
func (s *Store) Counter() string {
	if s.session == nil {
		return ""
	}
	return fmt.Sprintf("%d / %d", s.session.Active+1, len(s.session.Images))
}

// LastDirection returns the direction of the most recent move.
func (s *Store) LastDirection() Direction {
	return s.direction
}

func (s *Store) notify(open bool) {
	for _, fn := range s.observers {
		fn(open)
	}
}
