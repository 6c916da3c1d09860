package model

import (
	"time"

	"gorm.io/gorm"
)

// TokenBlacklist: token yang di-logout sebelum exp.
// Baris kadaluarsa dibersihkan scheduler.
type TokenBlacklist struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Token     string         `gorm:"type:text;not null;uniqueIndex" json:"token"`
	ExpiredAt time.Time      `gorm:"not null;index" json:"expired_at"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (TokenBlacklist) TableName() string { return "token_blacklists" }
