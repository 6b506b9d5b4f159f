// Package store is the durable local state behind the client: the persisted
// session, cached list snapshots, and notification history. It is the
// process's analogue of browser storage and survives restarts.
package store

import (
	"context"
	"time"

	"github.com/buildmaintain/bm/internal/types"
)

// SessionRecord is the persisted shape of an authenticated session.
type SessionRecord struct {
	User         types.User `json:"user"`
	Token        string     `json:"token"`
	RefreshToken string     `json:"refreshToken"`
	SavedAt      time.Time  `json:"savedAt"`
}

// NotificationRecord is one persisted toast for later review.
type NotificationRecord struct {
	Level    string    `json:"level"`
	Category string    `json:"category"`
	Message  string    `json:"message"`
	Time     time.Time `json:"time"`
}

// Store defines the local state backend.
type Store interface {
	// Session - at most one record exists; Get returns nil when logged out.
	SaveSession(ctx context.Context, rec *SessionRecord) error
	GetSession(ctx context.Context) (*SessionRecord, error)
	ClearSession(ctx context.Context) error

	// List snapshots - last fetched payload per collection, for offline
	// inspection. Never served in place of a live fetch.
	SaveListSnapshot(ctx context.Context, resource string, payload []byte) error
	GetListSnapshot(ctx context.Context, resource string) ([]byte, time.Time, error)

	// Notification history.
	AddNotification(ctx context.Context, rec NotificationRecord) error
	RecentNotifications(ctx context.Context, limit int) ([]NotificationRecord, error)

	// Lifecycle.
	Close() error
}

// Config holds database configuration.
type Config struct {
	// Path is the SQLite database file path. The special value ":memory:"
	// creates an in-memory database, useful for tests.
	Path string
}

// New creates the SQLite-backed store.
func New(cfg Config) (Store, error) {
	return newSQLite(cfg.Path)
}
