package kv

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetSet(t *testing.T) {
	s := New[string, int]()

	s.Set("foo", 42)
	val, ok := s.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	_, ok = s.Get("bar")
	assert.False(t, ok)
}

func TestStore_Delete(t *testing.T) {
	s := New[string, string]()
	s.Set("key", "value")

	s.Delete("key")
	s.Delete("missing")

	_, ok := s.Get("key")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestStore_Bounded_evicts_oldest(t *testing.T) {
	s := NewBounded[string, int](2)

	s.Set("a", 1)
	s.Set("b", 2)
	s.Set("a", 10) // update keeps insertion position
	s.Set("c", 3)

	_, ok := s.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())

	v, _ := s.Get("b")
	assert.Equal(t, 2, v)
}

func TestStore_GetOrCompute(t *testing.T) {
	s := New[string, string]()
	calls := 0
	compute := func() string {
		calls++
		return "rendered"
	}

	assert.Equal(t, "rendered", s.GetOrCompute("k", compute))
	assert.Equal(t, "rendered", s.GetOrCompute("k", compute))
	assert.Equal(t, 1, calls)
}

func TestStore_Clear(t *testing.T) {
	s := NewBounded[int, int](3)
	for i := range 3 {
		s.Set(i, i)
	}

	s.Clear()
	assert.Equal(t, 0, s.Len())

	s.Set(9, 9)
	assert.Equal(t, 1, s.Len())
}

func TestStore_Concurrent(t *testing.T) {
	s := NewBounded[int, int](50)
	var wg sync.WaitGroup

	for i := range 100 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.GetOrCompute(n%60, func() int { return n })
		}(i)
	}

	wg.Wait()
	assert.LessOrEqual(t, s.Len(), 50)
}
