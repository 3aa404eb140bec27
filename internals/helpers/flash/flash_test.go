package flash

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreExpiresAfterTTL(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	s := NewMemoryStore(4 * time.Second).WithClock(func() time.Time { return now })
	ctx := context.Background()

	_, err := s.Push(ctx, "user", LevelSuccess, "saved")
	require.NoError(t, err)
	now = now.Add(time.Second)
	_, err = s.Push(ctx, "user", LevelWarning, "duplicate")
	require.NoError(t, err)

	list, err := s.List(ctx, "user")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "saved", list[0].Message)

	now = now.Add(3500 * time.Millisecond)
	list, err = s.List(ctx, "user")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, LevelWarning, list[0].Level)

	now = now.Add(time.Second)
	list, err = s.List(ctx, "user")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMemoryStoreDismissAndIsolation(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	a, _ := s.Push(ctx, "alice", LevelError, "boom")
	_, _ = s.Push(ctx, "alice", LevelSuccess, "ok")
	_, _ = s.Push(ctx, "bob", LevelSuccess, "hi")

	require.NoError(t, s.Dismiss(ctx, "alice", a.ID))

	list, _ := s.List(ctx, "alice")
	require.Len(t, list, 1)
	assert.Equal(t, "ok", list[0].Message)

	list, _ = s.List(ctx, "bob")
	assert.Len(t, list, 1)
}
