// internals/features/users/auth/repository/blacklist_repository.go
package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "collegeschedule_backend/internals/features/users/auth/model"
)

// Blacklist stores revoked session tokens.
type Blacklist interface {
	Add(ctx context.Context, token string, expiresAt time.Time) error
	Contains(ctx context.Context, token string) (bool, error)
	// Purge drops entries that expired before the given instant.
	Purge(ctx context.Context, before time.Time) (int64, error)
}

/* ====================== GORM ====================== */

type GormBlacklist struct {
	DB *gorm.DB
}

func NewGormBlacklist(db *gorm.DB) *GormBlacklist {
	return &GormBlacklist{DB: db}
}

func (r *GormBlacklist) Add(ctx context.Context, token string, expiresAt time.Time) error {
	row := authModel.TokenBlacklistModel{
		TokenBlacklistToken:     token,
		TokenBlacklistExpiresAt: expiresAt,
	}
	// logging out twice is not an error
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
}

func (r *GormBlacklist) Contains(ctx context.Context, token string) (bool, error) {
	var row authModel.TokenBlacklistModel
	err := r.DB.WithContext(ctx).
		Select("token_blacklist_id").
		Where("token_blacklist_token = ?", token).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *GormBlacklist) Purge(ctx context.Context, before time.Time) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("token_blacklist_expires_at < ?", before).
		Delete(&authModel.TokenBlacklistModel{})
	return res.RowsAffected, res.Error
}

/* ====================== MEMORY ====================== */

// MemoryBlacklist backs tests and DB-less runs.
type MemoryBlacklist struct {
	mu     sync.Mutex
	tokens map[string]time.Time
}

func NewMemoryBlacklist() *MemoryBlacklist {
	return &MemoryBlacklist{tokens: map[string]time.Time{}}
}

func (m *MemoryBlacklist) Add(_ context.Context, token string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token] = expiresAt
	return nil
}

func (m *MemoryBlacklist) Contains(_ context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.tokens[token]
	return ok, nil
}

func (m *MemoryBlacklist) Purge(_ context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for tok, exp := range m.tokens {
		if exp.Before(before) {
			delete(m.tokens, tok)
			n++
		}
	}
	return n, nil
}
