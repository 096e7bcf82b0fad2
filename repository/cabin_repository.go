package repository

import (
	"context"
	"fmt"

	"cabin-booking-backend/models"

	"gorm.io/gorm"
)

// CabinRepository reads cabin rows; writes belong to the admin console.
type CabinRepository struct {
	db *gorm.DB
}

func NewCabinRepository(db *gorm.DB) *CabinRepository {
	return &CabinRepository{db: db}
}

func (r *CabinRepository) GetAll(ctx context.Context) ([]models.Cabin, error) {
	var cabins []models.Cabin
	if err := r.db.WithContext(ctx).Order("name").Find(&cabins).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve cabins: %w", err)
	}
	return cabins, nil
}

func (r *CabinRepository) GetByID(ctx context.Context, id uint) (*models.Cabin, error) {
	var cabin models.Cabin
	if err := r.db.WithContext(ctx).First(&cabin, id).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve cabin %d: %w", id, err)
	}
	return &cabin, nil
}
