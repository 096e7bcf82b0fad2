package repository

import (
	"context"
	"fmt"

	"cabin-booking-backend/models"

	"gorm.io/gorm"
)

// SettingRepository reads the settings singleton.
type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) Get(ctx context.Context) (*models.Setting, error) {
	var setting models.Setting
	if err := r.db.WithContext(ctx).First(&setting).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve settings: %w", err)
	}
	return &setting, nil
}
