package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildmaintain/bm/internal/store"
	"github.com/buildmaintain/bm/internal/types"
)

func newTestSession(t *testing.T) (*Store, store.Store) {
	t.Helper()
	db, err := store.New(store.Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db), db
}

func testAuth() types.AuthSession {
	return types.AuthSession{
		User:         types.User{ID: "u1", Email: "fm@example.com", Role: types.RoleFacilityManager},
		Token:        "bearer-token",
		RefreshToken: "refresh-token",
	}
}

func TestLifecycle(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()

	assert.Equal(t, StateAnonymous, s.State())
	assert.Nil(t, s.CurrentUser())
	_, held := s.Token()
	assert.False(t, held)

	require.NoError(t, s.BeginAuth())
	assert.Equal(t, StateAuthenticating, s.State())

	require.NoError(t, s.CompleteAuth(ctx, testAuth()))
	assert.Equal(t, StateAuthenticated, s.State())

	user := s.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "fm@example.com", user.Email)

	token, held := s.Token()
	assert.True(t, held)
	assert.Equal(t, "bearer-token", token)
}

func TestBeginAuthRejectsSecondLogin(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.BeginAuth())
	require.NoError(t, s.CompleteAuth(ctx, testAuth()))

	err := s.BeginAuth()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fm@example.com")
}

func TestFailAuthReturnsToAnonymous(t *testing.T) {
	s, _ := newTestSession(t)

	require.NoError(t, s.BeginAuth())
	s.FailAuth()

	assert.Equal(t, StateAnonymous, s.State())
	assert.Nil(t, s.CurrentUser())
}

func TestCompleteAuthPersists(t *testing.T) {
	s, db := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.BeginAuth())
	require.NoError(t, s.CompleteAuth(ctx, testAuth()))

	rec, err := db.GetSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "bearer-token", rec.Token)
	assert.Equal(t, "u1", rec.User.ID)
}

func TestHydrateRestoresSession(t *testing.T) {
	db, err := store.New(store.Config{Path: ":memory:"})
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	ctx := context.Background()

	first := New(db)
	require.NoError(t, first.BeginAuth())
	require.NoError(t, first.CompleteAuth(ctx, testAuth()))

	second := New(db)
	require.NoError(t, second.Hydrate(ctx))
	assert.Equal(t, StateAuthenticated, second.State())

	token, held := second.Token()
	assert.True(t, held)
	assert.Equal(t, "bearer-token", token)

	refresh, held := second.RefreshToken()
	assert.True(t, held)
	assert.Equal(t, "refresh-token", refresh)
}

func TestHydrateEmptyStoreStaysAnonymous(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.Hydrate(context.Background()))
	assert.Equal(t, StateAnonymous, s.State())
}

func TestLogoutClearsStoreBeforeReturning(t *testing.T) {
	s, db := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.BeginAuth())
	require.NoError(t, s.CompleteAuth(ctx, testAuth()))
	require.NoError(t, s.Logout(ctx))

	assert.Equal(t, StateAnonymous, s.State())
	assert.Nil(t, s.CurrentUser())
	_, held := s.Token()
	assert.False(t, held)

	rec, err := db.GetSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, rec, "persisted session must be gone when Logout returns")
}

func TestInvalidateIsIdempotent(t *testing.T) {
	s, db := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.BeginAuth())
	require.NoError(t, s.CompleteAuth(ctx, testAuth()))

	s.Invalidate(ctx)
	s.Invalidate(ctx)

	assert.Equal(t, StateAnonymous, s.State())
	rec, err := db.GetSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestUpdateProfileKeepsTokens(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.BeginAuth())
	require.NoError(t, s.CompleteAuth(ctx, testAuth()))

	updated := types.User{ID: "u1", Name: "New Name", Email: "fm@example.com", Role: types.RoleFacilityManager}
	require.NoError(t, s.UpdateProfile(ctx, updated))

	user := s.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "New Name", user.Name)

	token, held := s.Token()
	assert.True(t, held)
	assert.Equal(t, "bearer-token", token)
}

func TestUpdateProfileRequiresSession(t *testing.T) {
	s, _ := newTestSession(t)
	err := s.UpdateProfile(context.Background(), types.User{ID: "u1"})
	assert.Error(t, err)
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestTokenExpiryFromJWT(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()
	exp := time.Now().Add(45 * time.Minute)

	auth := testAuth()
	auth.Token = signedToken(t, exp)
	require.NoError(t, s.BeginAuth())
	require.NoError(t, s.CompleteAuth(ctx, auth))

	got, ok := s.TokenExpiry()
	require.True(t, ok)
	assert.WithinDuration(t, exp, got, time.Second)
	assert.False(t, s.ExpiresSoon())
}

func TestExpiresSoonNearExpiry(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()

	auth := testAuth()
	auth.Token = signedToken(t, time.Now().Add(30*time.Second))
	require.NoError(t, s.BeginAuth())
	require.NoError(t, s.CompleteAuth(ctx, auth))

	assert.True(t, s.ExpiresSoon())
}

func TestOpaqueTokenNeverExpiresSoon(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.BeginAuth())
	require.NoError(t, s.CompleteAuth(ctx, testAuth()))

	_, ok := s.TokenExpiry()
	assert.False(t, ok)
	assert.False(t, s.ExpiresSoon())
}
