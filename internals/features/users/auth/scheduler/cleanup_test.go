package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authRepo "collegeschedule_backend/internals/features/users/auth/repository"
)

func TestRunCleanupDropsOnlyExpired(t *testing.T) {
	now := time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC)
	bl := authRepo.NewMemoryBlacklist()
	ctx := context.Background()
	require.NoError(t, bl.Add(ctx, "old", now.Add(-time.Minute)))
	require.NoError(t, bl.Add(ctx, "live", now.Add(time.Hour)))

	assert.EqualValues(t, 1, RunCleanup(bl, now))

	ok, err := bl.Contains(ctx, "live")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = bl.Contains(ctx, "old")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStartBlacklistCleanupRejectsBadSchedule(t *testing.T) {
	t.Setenv("TOKEN_BLACKLIST_CLEANUP_CRON", "not a cron")
	_, err := StartBlacklistCleanup(authRepo.NewMemoryBlacklist())
	assert.Error(t, err)
}

func TestStartBlacklistCleanupStops(t *testing.T) {
	t.Setenv("TOKEN_BLACKLIST_CLEANUP_CRON", "@hourly")
	c, err := StartBlacklistCleanup(authRepo.NewMemoryBlacklist())
	require.NoError(t, err)
	require.Len(t, c.Entries(), 1)
	<-c.Stop().Done()
}
