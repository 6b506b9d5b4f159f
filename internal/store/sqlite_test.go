package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildmaintain/bm/internal/types"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	s, err := New(Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSessionRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "fresh store has no session")

	rec := &SessionRecord{
		User:         types.User{ID: "u1", Email: "fm@example.com", Role: types.RoleFacilityManager},
		Token:        "jwt-token",
		RefreshToken: "refresh-token",
		SavedAt:      time.Now(),
	}
	require.NoError(t, s.SaveSession(ctx, rec))

	got, err = s.GetSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "fm@example.com", got.User.Email)
	assert.Equal(t, types.RoleFacilityManager, got.User.Role)
	assert.Equal(t, "jwt-token", got.Token)
	assert.Equal(t, "refresh-token", got.RefreshToken)
}

func TestSaveSessionOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, &SessionRecord{Token: "first", SavedAt: time.Now()}))
	require.NoError(t, s.SaveSession(ctx, &SessionRecord{Token: "second", SavedAt: time.Now()}))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Token)
}

func TestClearSession(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, &SessionRecord{Token: "tok", SavedAt: time.Now()}))
	require.NoError(t, s.ClearSession(ctx))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Clearing an empty store is not an error.
	require.NoError(t, s.ClearSession(ctx))
}

func TestListSnapshotRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	payload, ts, err := s.GetListSnapshot(ctx, "building")
	require.NoError(t, err)
	assert.Nil(t, payload)
	assert.True(t, ts.IsZero())

	require.NoError(t, s.SaveListSnapshot(ctx, "building", []byte(`[{"id":"b1"}]`)))
	require.NoError(t, s.SaveListSnapshot(ctx, "building", []byte(`[{"id":"b1"},{"id":"b2"}]`)))

	payload, ts, err = s.GetListSnapshot(ctx, "building")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"b1"},{"id":"b2"}]`, string(payload))
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestNotificationsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i, msg := range []string{"one", "two", "three"} {
		require.NoError(t, s.AddNotification(ctx, NotificationRecord{
			Level:    "info",
			Category: "test",
			Message:  msg,
			Time:     time.Now().Add(time.Duration(i) * time.Second),
		}))
	}

	records, err := s.RecentNotifications(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "three", records[0].Message)
	assert.Equal(t, "two", records[1].Message)
}

func TestFileBackedStoreCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.db")
	s, err := New(Config{Path: path})
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	require.NoError(t, s.SaveSession(context.Background(), &SessionRecord{Token: "tok", SavedAt: time.Now()}))
}

func TestEmptyPathRejected(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}
