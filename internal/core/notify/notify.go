// Package notify defines user-facing notifications and a bounded in-memory
// history of them.
package notify

import (
	"sync"
	"time"
)

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification represents a single notification event.
type Notification struct {
	ID        int64
	Level     Level
	Message   string
	CreatedAt time.Time
}

// DefaultHistorySize is the number of notifications a History keeps.
const DefaultHistorySize = 50

// History keeps the most recent notifications and assigns their IDs.
type History struct {
	mu     sync.Mutex
	items  []Notification
	limit  int
	nextID int64
}

// NewHistory creates a history holding at most limit entries. A limit of
// zero or less uses DefaultHistorySize.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	return &History{limit: limit}
}

// Save records n, evicting the oldest entry when full, and returns its ID.
func (h *History) Save(n Notification) int64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	n.ID = h.nextID
	h.items = append(h.items, n)
	if len(h.items) > h.limit {
		h.items = h.items[len(h.items)-h.limit:]
	}
	return n.ID
}

// List returns the stored notifications, newest first.
func (h *History) List() []Notification {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Notification, len(h.items))
	for i, n := range h.items {
		out[len(h.items)-1-i] = n
	}
	return out
}

// Clear drops every stored notification. IDs keep increasing.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items = nil
}

// Count returns the number of stored notifications.
func (h *History) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.items)
}
