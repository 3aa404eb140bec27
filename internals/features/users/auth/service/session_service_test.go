package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	authRepo "collegeschedule_backend/internals/features/users/auth/repository"
)

func newService(t *testing.T, now *time.Time) (*SessionService, *authRepo.MemoryBlacklist) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("123"), bcrypt.MinCost)
	require.NoError(t, err)
	bl := authRepo.NewMemoryBlacklist()
	svc, err := NewSessionService(Config{
		Secret:       "test-secret",
		TTL:          time.Hour,
		Username:     "user",
		PasswordHash: string(hash),
	}, bl)
	require.NoError(t, err)
	return svc.WithClock(func() time.Time { return *now }), bl
}

func TestNewSessionServiceNeedsSecret(t *testing.T) {
	_, err := NewSessionService(Config{Username: "user", Password: "123"}, nil)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestLoginAndParse(t *testing.T) {
	now := time.Date(2024, 6, 13, 9, 0, 0, 0, time.UTC)
	svc, _ := newService(t, &now)

	sess, err := svc.Login(" user ", "123")
	require.NoError(t, err)
	assert.True(t, sess.IsAuthenticated)
	assert.Equal(t, now.Add(time.Hour), sess.ExpiresAt)

	got, err := svc.Parse(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "user", got.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	now := time.Now()
	svc, _ := newService(t, &now)

	_, err := svc.Login("user", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login("admin", "123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseRejectsExpiredAndForeignTokens(t *testing.T) {
	now := time.Date(2024, 6, 13, 9, 0, 0, 0, time.UTC)
	svc, _ := newService(t, &now)
	sess, err := svc.Login("user", "123")
	require.NoError(t, err)

	now = now.Add(time.Hour)
	_, err = svc.Parse(context.Background(), sess.Token)
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = svc.Parse(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrNoSession)
	_, err = svc.Parse(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestLogoutRevokesToken(t *testing.T) {
	now := time.Date(2024, 6, 13, 9, 0, 0, 0, time.UTC)
	svc, bl := newService(t, &now)
	ctx := context.Background()

	sess, err := svc.Login("user", "123")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, sess))
	require.NoError(t, svc.Logout(ctx, sess))

	_, err = svc.Parse(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrSessionRevoked)

	n, err := bl.Purge(ctx, now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
