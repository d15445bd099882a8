package storage

import (
	"context"
	"errors"
	"time"

	"goldloan-portal/internal/adapters/persistence/models"
	"goldloan-portal/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

const sqlOpTimeout = 5 * time.Second

// SQL is a fiber.Storage kept in the session_slots table
type SQL struct {
	repo repositories.SessionSlotRepository
}

// NewSQL creates a table-backed storage
func NewSQL(db *gorm.DB) *SQL {
	return &SQL{repo: repositories.NewSessionSlotRepository(db)}
}

// Get returns nil, nil for missing or expired keys
func (s *SQL) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), sqlOpTimeout)
	defer cancel()

	slot, err := s.repo.Get(ctx, key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return slot.Value, nil
}

// Set stores val under key; exp 0 keeps it forever
func (s *SQL) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	slot := &models.SessionSlot{Key: key, Value: val}
	if exp > 0 {
		t := time.Now().Add(exp)
		slot.ExpiresAt = &t
	}
	ctx, cancel := context.WithTimeout(context.Background(), sqlOpTimeout)
	defer cancel()
	return s.repo.Upsert(ctx, slot)
}

func (s *SQL) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), sqlOpTimeout)
	defer cancel()
	return s.repo.Delete(ctx, key)
}

func (s *SQL) Reset() error {
	ctx, cancel := context.WithTimeout(context.Background(), sqlOpTimeout)
	defer cancel()
	return s.repo.DeleteAll(ctx)
}

// Close is a no-op; the connection pool is owned by config
func (s *SQL) Close() error { return nil }

// PurgeExpired removes expired rows
func (s *SQL) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx)
}
