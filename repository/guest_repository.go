package repository

import (
	"context"
	"errors"
	"fmt"

	"cabin-booking-backend/models"

	"gorm.io/gorm"
)

// GuestRepository is the persistence boundary for guest profile rows.
type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

func (r *GuestRepository) Create(ctx context.Context, guest *models.Guest) error {
	if err := r.db.WithContext(ctx).Create(guest).Error; err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}
	return nil
}

func (r *GuestRepository) GetByID(ctx context.Context, id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := r.db.WithContext(ctx).First(&guest, id).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve guest %d: %w", id, err)
	}
	return &guest, nil
}

// GetByEmail returns (nil, nil) when no guest has the email, so the
// sign-in flow can distinguish "new guest" from a store failure.
func (r *GuestRepository) GetByEmail(ctx context.Context, email string) (*models.Guest, error) {
	var guest models.Guest
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to retrieve guest by email: %w", err)
	}
	return &guest, nil
}

// UpdateProfile applies a partial update filtered by guest identifier.
func (r *GuestRepository) UpdateProfile(ctx context.Context, guestID uint, fields map[string]interface{}) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Guest{}).
		Where("id = ?", guestID).
		Updates(fields).Error; err != nil {
		return fmt.Errorf("failed to update guest %d: %w", guestID, err)
	}
	return nil
}
