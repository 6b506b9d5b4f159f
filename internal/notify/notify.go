// Package notify is the toast analogue: short, leveled action-outcome
// messages fanned out to sinks and kept in a bounded history.
package notify

import (
	"fmt"
	"sync"
	"time"
)

// Level grades a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is one user-visible message about an action outcome.
type Notification struct {
	Level    Level
	Category string
	Message  string
	Time     time.Time
}

// Notifier receives notifications. Implementations must be safe for
// concurrent use.
type Notifier interface {
	Notify(n Notification)
}

// Center collects notifications, keeps a bounded history, and fans out to
// registered sinks.
type Center struct {
	mu      sync.Mutex
	history []Notification
	max     int
	sinks   []Notifier
}

// NewCenter builds a center keeping at most max history entries.
func NewCenter(max int, sinks ...Notifier) *Center {
	if max <= 0 {
		max = 100
	}
	return &Center{max: max, sinks: sinks}
}

// Notify records the notification and forwards it to every sink.
func (c *Center) Notify(n Notification) {
	if n.Time.IsZero() {
		n.Time = time.Now()
	}

	c.mu.Lock()
	c.history = append(c.history, n)
	if len(c.history) > c.max {
		c.history = c.history[len(c.history)-c.max:]
	}
	sinks := make([]Notifier, len(c.sinks))
	copy(sinks, c.sinks)
	c.mu.Unlock()

	for _, sink := range sinks {
		sink.Notify(n)
	}
}

// Recent returns up to n notifications, newest last.
func (c *Center) Recent(n int) []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n <= 0 || n > len(c.history) {
		n = len(c.history)
	}
	out := make([]Notification, n)
	copy(out, c.history[len(c.history)-n:])
	return out
}

// Successf publishes a success notification.
func (c *Center) Successf(category, format string, args ...any) {
	c.Notify(Notification{Level: LevelSuccess, Category: category, Message: fmt.Sprintf(format, args...)})
}

// Errorf publishes an error notification.
func (c *Center) Errorf(category, format string, args ...any) {
	c.Notify(Notification{Level: LevelError, Category: category, Message: fmt.Sprintf(format, args...)})
}

// Warningf publishes a warning notification.
func (c *Center) Warningf(category, format string, args ...any) {
	c.Notify(Notification{Level: LevelWarning, Category: category, Message: fmt.Sprintf(format, args...)})
}

// Infof publishes an informational notification.
func (c *Center) Infof(category, format string, args ...any) {
	c.Notify(Notification{Level: LevelInfo, Category: category, Message: fmt.Sprintf(format, args...)})
}
