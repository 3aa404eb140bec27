// Package flash keeps short-lived per-user notifications ("toasts").
// A toast disappears on its own after the store TTL or when dismissed.
package flash

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

type Toast struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Store interface {
	Push(ctx context.Context, owner string, level Level, message string) (Toast, error)
	List(ctx context.Context, owner string) ([]Toast, error)
	Dismiss(ctx context.Context, owner, id string) error
}

func newToast(level Level, message string, now time.Time, ttl time.Duration) Toast {
	return Toast{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func sortByCreated(ts []Toast) {
	sort.SliceStable(ts, func(i, j int) bool { return ts[i].CreatedAt.Before(ts[j].CreatedAt) })
}

/* =========================
   In-memory store
========================= */

type MemoryStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	toasts map[string][]Toast
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, now: time.Now, toasts: map[string][]Toast{}}
}

// WithClock swaps the time source; tests only.
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.now = now
	return s
}

func (s *MemoryStore) Push(_ context.Context, owner string, level Level, message string) (Toast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := newToast(level, message, s.now(), s.ttl)
	s.toasts[owner] = append(s.live(owner), t)
	return t, nil
}

func (s *MemoryStore) List(_ context.Context, owner string) ([]Toast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	live := s.live(owner)
	if len(live) == 0 {
		delete(s.toasts, owner)
		return nil, nil
	}
	s.toasts[owner] = live
	out := append([]Toast(nil), live...)
	sortByCreated(out)
	return out, nil
}

func (s *MemoryStore) Dismiss(_ context.Context, owner, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	live := s.live(owner)
	kept := live[:0]
	for _, t := range live {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.toasts[owner] = kept
	return nil
}

// live must be called with mu held.
func (s *MemoryStore) live(owner string) []Toast {
	now := s.now()
	cur := s.toasts[owner]
	out := make([]Toast, 0, len(cur))
	for _, t := range cur {
		if now.Before(t.ExpiresAt) {
			out = append(out, t)
		}
	}
	return out
}
