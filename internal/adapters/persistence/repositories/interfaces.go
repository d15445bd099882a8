package repositories

import (
	"context"

	"goldloan-portal/internal/adapters/persistence/models"
)

// SessionSlotRepository defines session slot repository interface
type SessionSlotRepository interface {
	Get(ctx context.Context, key string) (*models.SessionSlot, error)
	Upsert(ctx context.Context, slot *models.SessionSlot) error
	Delete(ctx context.Context, key string) error
	DeleteExpired(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}
