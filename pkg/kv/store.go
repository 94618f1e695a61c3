// Package kv provides a generic thread-safe key-value store with optional
// size bound.
package kv

import "sync"

// Store is a thread-safe generic key-value store. A bounded store evicts
// its oldest inserted key once it holds more than max entries.
type Store[K comparable, V any] struct {
	mu    sync.RWMutex
	data  map[K]V
	order []K
	max   int
}

// New creates an unbounded store.
func New[K comparable, V any]() *Store[K, V] {
	return NewBounded[K, V](0)
}

// NewBounded creates a store holding at most limit entries. A non-positive
// limit means unbounded.
func NewBounded[K comparable, V any](limit int) *Store[K, V] {
	return &Store[K, V]{
		data: make(map[K]V),
		max:  limit,
	}
}

// Get retrieves a value by key.
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	return val, ok
}

// Set stores a value by key.
func (s *Store[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(key, value)
}

// GetOrCompute returns the cached value for key, computing and storing it
// with fn on a miss. fn runs without the lock held.
func (s *Store[K, V]) GetOrCompute(key K, fn func() V) V {
	if v, ok := s.Get(key); ok {
		return v
	}

	v := fn()

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.data[key]; ok {
		return existing
	}
	s.set(key, v)
	return v
}

func (s *Store[K, V]) set(key K, value V) {
	if _, ok := s.data[key]; !ok {
		s.order = append(s.order, key)
	}
	s.data[key] = value

	for s.max > 0 && len(s.order) > s.max {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.data, oldest)
	}
}

// Delete removes a key from the store.
func (s *Store[K, V]) Delete(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return
	}
	delete(s.data, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Clear removes all entries from the store.
func (s *Store[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[K]V)
	s.order = nil
}

// Len returns the number of items in the store.
func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
