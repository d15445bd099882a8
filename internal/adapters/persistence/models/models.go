package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Session storage
// ============================================================

// SessionSlot represents session_slots table: one key/value entry of the
// shared session storage (credential slots and rate-limiter counters)
type SessionSlot struct {
	Key       string     `gorm:"primaryKey;size:191" json:"key"`
	Value     []byte     `gorm:"type:blob;not null" json:"-"`
	ExpiresAt *time.Time `gorm:"index" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SessionSlot) TableName() string {
	return "session_slots"
}

// Expired reports whether the entry is past its expiry at now
func (s *SessionSlot) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}

// AutoMigrate runs auto migration for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&SessionSlot{},
	)
}
