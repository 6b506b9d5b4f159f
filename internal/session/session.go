// Package session is the single source of truth for who is logged in. It
// owns the token, persists the session across restarts, and drives the
// route guard's authenticated/anonymous decision.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/buildmaintain/bm/internal/store"
	"github.com/buildmaintain/bm/internal/types"
)

// State names the session lifecycle position.
type State string

const (
	// StateAnonymous is the initial state and the state after logout or
	// token rejection.
	StateAnonymous State = "anonymous"
	// StateAuthenticating covers an in-flight login or register call.
	StateAuthenticating State = "authenticating"
	// StateAuthenticated means a token and user are held.
	StateAuthenticated State = "authenticated"
)

// Store holds the authenticated user and tokens. All methods are safe for
// concurrent use; gateway calls read the token through TokenSource while
// login/logout transitions write it.
type Store struct {
	mu      sync.Mutex
	state   State
	user    *types.User
	token   string
	refresh string
	db      store.Store
}

// New builds an anonymous session backed by the given local store.
func New(db store.Store) *Store {
	return &Store{state: StateAnonymous, db: db}
}

// Hydrate loads a persisted session if one exists. A found session starts
// Authenticated optimistically; the first rejected call invalidates it.
func (s *Store) Hydrate(ctx context.Context) error {
	rec, err := s.db.GetSession(ctx)
	if err != nil {
		return fmt.Errorf("hydrate session: %w", err)
	}
	if rec == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	user := rec.User
	s.user = &user
	s.token = rec.Token
	s.refresh = rec.RefreshToken
	s.state = StateAuthenticated
	return nil
}

// State reports the current lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// BeginAuth marks a login or register call as in flight. It fails if a
// session is already held.
func (s *Store) BeginAuth() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateAuthenticated {
		return fmt.Errorf("already logged in as %s", s.user.Email)
	}
	s.state = StateAuthenticating
	return nil
}

// CompleteAuth installs the session returned by a successful auth call and
// persists it.
func (s *Store) CompleteAuth(ctx context.Context, auth types.AuthSession) error {
	s.mu.Lock()
	user := auth.User
	s.user = &user
	s.token = auth.Token
	s.refresh = auth.RefreshToken
	s.state = StateAuthenticated
	s.mu.Unlock()

	rec := &store.SessionRecord{
		User:         auth.User,
		Token:        auth.Token,
		RefreshToken: auth.RefreshToken,
		SavedAt:      time.Now(),
	}
	if err := s.db.SaveSession(ctx, rec); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// FailAuth returns the store to Anonymous after a failed login/register.
func (s *Store) FailAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAnonymous
	s.user = nil
	s.token = ""
	s.refresh = ""
}

// Logout clears persisted state synchronously before resetting in-memory
// fields, so a guarded flow can never observe stale credentials after it
// returns.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.db.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAnonymous
	s.user = nil
	s.token = ""
	s.refresh = ""
	return nil
}

// Invalidate drops the session after the server rejected the token. It is
// idempotent; concurrent 401s from unrelated requests collapse into one
// transition.
func (s *Store) Invalidate(ctx context.Context) {
	s.mu.Lock()
	already := s.state == StateAnonymous
	s.state = StateAnonymous
	s.user = nil
	s.token = ""
	s.refresh = ""
	s.mu.Unlock()

	if !already {
		_ = s.db.ClearSession(ctx)
	}
}

// CurrentUser returns the authenticated user, or nil.
func (s *Store) CurrentUser() *types.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAuthenticated || s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// UpdateProfile replaces the held user after a profile edit. The state and
// tokens are untouched.
func (s *Store) UpdateProfile(ctx context.Context, user types.User) error {
	s.mu.Lock()
	if s.state != StateAuthenticated {
		s.mu.Unlock()
		return fmt.Errorf("no active session")
	}
	u := user
	s.user = &u
	token := s.token
	refresh := s.refresh
	s.mu.Unlock()

	rec := &store.SessionRecord{User: user, Token: token, RefreshToken: refresh, SavedAt: time.Now()}
	if err := s.db.SaveSession(ctx, rec); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Token returns the bearer token for outgoing requests. This is the
// apiclient.TokenSource contract.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAuthenticated || s.token == "" {
		return "", false
	}
	return s.token, true
}

// RefreshToken returns the held refresh token, if any.
func (s *Store) RefreshToken() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAuthenticated || s.refresh == "" {
		return "", false
	}
	return s.refresh, true
}
