package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/logging"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/notify"
)

// Subscriber is a callback invoked when a notification is published.
type Subscriber func(notify.Notification)

// Bus is a synchronous in-process notification bus. It dispatches
// notifications to subscribers inline, records them in a History and mirrors
// them to the log. The Bus is safe for use from the Bubble Tea Update loop.
type Bus struct {
	history     *notify.History
	subscribers []Subscriber
	mu          sync.Mutex
}

// NewBus creates a notification bus backed by the given history.
// If history is nil, notifications are dispatched but not kept.
func NewBus(history *notify.History) *Bus {
	return &Bus{
		history: history,
	}
}

// Subscribe registers a callback that will be invoked on every Publish.
func (b *Bus) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// Publish dispatches a notification to all subscribers.
func (b *Bus) Publish(n notify.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	if b.history != nil {
		n.ID = b.history.Save(n)
	}

	logger := logging.Component("notify")
	logger.WithLevel(logLevel(n.Level)).Int64("id", n.ID).Msg(n.Message)

	b.mu.Lock()
	subs := make([]Subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(n)
	}
}

// Errorf publishes an error-level notification.
func (b *Bus) Errorf(format string, args ...any) {
	b.Publish(notify.Notification{
		Level:   notify.LevelError,
		Message: fmt.Sprintf(format, args...),
	})
}

// Warnf publishes a warning-level notification.
func (b *Bus) Warnf(format string, args ...any) {
	b.Publish(notify.Notification{
		Level:   notify.LevelWarning,
		Message: fmt.Sprintf(format, args...),
	})
}

// Infof publishes an info-level notification.
func (b *Bus) Infof(format string, args ...any) {
	b.Publish(notify.Notification{
		Level:   notify.LevelInfo,
		Message: fmt.Sprintf(format, args...),
	})
}

// History returns the kept notifications (newest first).
// Returns nil if no history is configured.
func (b *Bus) History() []notify.Notification {
	if b.history == nil {
		return nil
	}
	return b.history.List()
}

// Clear forgets all kept notifications.
func (b *Bus) Clear() {
	if b.history != nil {
		b.history.Clear()
	}
}

func logLevel(l notify.Level) zerolog.Level {
	switch l {
	case notify.LevelError:
		return zerolog.ErrorLevel
	case notify.LevelWarning:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
