package repository

import (
	"context"
	"fmt"

	"cabin-booking-backend/models"

	"gorm.io/gorm"
)

// BookingRepository is the persistence boundary for booking rows.
type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Insert(ctx context.Context, booking *models.Booking) error {
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// UpdateFields applies a partial update filtered by identifier. Callers
// pass only the columns they are allowed to touch.
func (r *BookingRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return fmt.Errorf("failed to update booking %d: %w", id, err)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Booking{}).Error; err != nil {
		return fmt.Errorf("failed to delete booking %d: %w", id, err)
	}
	return nil
}

// GetByGuest returns every booking currently owned by the guest. The
// authorization guard derives ownership from this set on every call.
func (r *BookingRepository) GetByGuest(ctx context.Context, guestID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("guest_id = ?", guestID).
		Order("start_date").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings for guest %d: %w", guestID, err)
	}
	return bookings, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Cabin").
		First(&booking, id).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve booking %d: %w", id, err)
	}
	return &booking, nil
}
