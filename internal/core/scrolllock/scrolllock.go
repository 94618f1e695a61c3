// Package scrolllock provides a reference-counted gate that suspends page
// scrolling while any modal view is open.
package scrolllock

import (
	"slices"
	"sync"
)

// Release gives back one acquisition. Calling it more than once is a no-op.
type Release func()

// Gate is engaged while at least one holder has acquired it. It is safe for
// concurrent use.
type Gate struct {
	mu       sync.Mutex
	holders  map[uint64]string
	nextID   uint64
	watchers []func(locked bool)
}

// New creates a released gate.
func New() *Gate {
	return &Gate{holders: make(map[uint64]string)}
}

// Acquire engages the gate on behalf of owner and returns the matching
// release. The gate stays engaged until every outstanding acquisition is
// released.
func (g *Gate) Acquire(owner string) Release {
	g.mu.Lock()
	g.nextID++
	id := g.nextID
	g.holders[id] = owner
	engaged := len(g.holders) == 1
	g.mu.Unlock()

	if engaged {
		g.notify(true)
	}

	var once sync.Once
	return func() {
		once.Do(func() { g.release(id) })
	}
}

func (g *Gate) release(id uint64) {
	g.mu.Lock()
	_, ok := g.holders[id]
	delete(g.holders, id)
	released := ok && len(g.holders) == 0
	g.mu.Unlock()

	if released {
		g.notify(false)
	}
}

// ReleaseAll drops every outstanding acquisition. Releases handed out
// earlier become no-ops.
func (g *Gate) ReleaseAll() {
	g.mu.Lock()
	held := len(g.holders) > 0
	clear(g.holders)
	g.mu.Unlock()

	if held {
		g.notify(false)
	}
}

// Locked reports whether scrolling is currently suspended.
func (g *Gate) Locked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.holders) > 0
}

// Count returns the number of outstanding acquisitions.
func (g *Gate) Count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.holders)
}

// Owners returns the sorted owner names of outstanding acquisitions.
func (g *Gate) Owners() []string {
	g.mu.Lock()
	owners := make([]string, 0, len(g.holders))
	for _, o := range g.holders {
		owners = append(owners, o)
	}
	g.mu.Unlock()

	slices.Sort(owners)
	return owners
}

// Watch registers fn for released->locked and locked->released edges.
func (g *Gate) Watch(fn func(locked bool)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.watchers = append(g.watchers, fn)
}

func (g *Gate) notify(locked bool) {
	g.mu.Lock()
	watchers := slices.Clone(g.watchers)
	g.mu.Unlock()

	for _, fn := range watchers {
		fn(locked)
	}
}

// Binding ties one modal's open flag to the gate. Set(true) acquires once,
// Set(false) releases once; repeated calls with the same value do nothing.
type Binding struct {
	gate    *Gate
	owner   string
	release Release
}

// Bind creates a Binding for owner. Its Set method matches the observer
// signatures used by modal state holders.
func (g *Gate) Bind(owner string) *Binding {
	return &Binding{gate: g, owner: owner}
}

// Set records the modal's open state.
func (b *Binding) Set(open bool) {
	switch {
	case open && b.release == nil:
		b.release = b.gate.Acquire(b.owner)
	case !open && b.release != nil:
		b.release()
		b.release = nil
	}
}

// Held reports whether this binding currently holds an acquisition.
func (b *Binding) Held() bool {
	return b.release != nil
}
