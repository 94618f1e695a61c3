// Package selection provides the "selected item -> detail modal" state
// shared by every listing page.
package selection

// Selection holds at most one selected item of type T. A non-nil selection
// means the item's detail modal is open.
type Selection[T any] struct {
	item      *T
	observers []func(open bool)
}

// New creates an empty selection.
func New[T any]() *Selection[T] {
	return &Selection[T]{}
}

// Observe registers fn for closed->open and open->closed transitions.
func (s *Selection[T]) Observe(fn func(open bool)) {
	if fn == nil {
		return
	}
	s.observers = append(s.observers, fn)
}

// Select opens the modal on item, replacing any current selection.
func (s *Selection[T]) Select(item T) {
	wasOpen := s.item != nil
	s.item = &item
	if !wasOpen {
		s.notify(true)
	}
}

// Clear closes the modal. Clearing an empty selection is a no-op.
func (s *Selection[T]) Clear() {
	if s.item == nil {
		return
	}
	s.item = nil
	s.notify(false)
}

// Selected returns the current item.
func (s *Selection[T]) Selected() (T, bool) {
	if s.item == nil {
		var zero T
		return zero, false
	}
	return *s.item, true
}

// IsOpen reports whether an item is selected.
func (s *Selection[T]) IsOpen() bool {
	return s.item != nil
}

func (s *Selection[T]) notify(open bool) {
	for _, fn := range s.observers {
		fn(open)
	}
}
