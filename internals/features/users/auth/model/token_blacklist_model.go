package model

import (
	"time"
)

// TokenBlacklistModel holds session tokens revoked by logout until they would have expired anyway.
type TokenBlacklistModel struct {
	TokenBlacklistID        uint      `gorm:"column:token_blacklist_id;primaryKey" json:"token_blacklist_id"`
	TokenBlacklistToken     string    `gorm:"column:token_blacklist_token;type:text;not null;uniqueIndex" json:"-"`
	TokenBlacklistExpiresAt time.Time `gorm:"column:token_blacklist_expires_at;type:timestamptz;not null;index" json:"token_blacklist_expires_at"`
	TokenBlacklistCreatedAt time.Time `gorm:"column:token_blacklist_created_at;type:timestamptz;autoCreateTime" json:"token_blacklist_created_at"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
