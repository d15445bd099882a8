package repositories

import (
	"context"
	"time"

	"goldloan-portal/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionSlotRepository implements SessionSlotRepository interface
type sessionSlotRepository struct {
	db *gorm.DB
}

// NewSessionSlotRepository creates a new session slot repository
func NewSessionSlotRepository(db *gorm.DB) SessionSlotRepository {
	return &sessionSlotRepository{db: db}
}

// Get gets a live slot by key. Expired rows are reported as gorm.ErrRecordNotFound.
func (r *sessionSlotRepository) Get(ctx context.Context, key string) (*models.SessionSlot, error) {
	var slot models.SessionSlot
	err := r.db.WithContext(ctx).
		Where("`key` = ?", key).
		Where("expires_at IS NULL OR expires_at > ?", time.Now()).
		First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// Upsert inserts a slot or replaces the value and expiry of an existing one
func (r *sessionSlotRepository) Upsert(ctx context.Context, slot *models.SessionSlot) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
		}).
		Create(slot).Error
}

// Delete deletes a slot by key
func (r *sessionSlotRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).
		Where("`key` = ?", key).
		Delete(&models.SessionSlot{}).Error
}

// DeleteExpired deletes all expired slots (cleanup job)
func (r *sessionSlotRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at <= ?", time.Now()).
		Delete(&models.SessionSlot{})
	return result.RowsAffected, result.Error
}

// DeleteAll empties the table
func (r *sessionSlotRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.SessionSlot{}).Error
}
