package services

import (
	"context"

	"cabin-booking-backend/models"

	"github.com/rs/zerolog"
)

// SettingStore reads the site-wide booking limits singleton.
type SettingStore interface {
	Get(ctx context.Context) (*models.Setting, error)
}

type SettingService struct {
	settings SettingStore
	log      zerolog.Logger
}

func NewSettingService(settings SettingStore, log zerolog.Logger) *SettingService {
	return &SettingService{settings: settings, log: log}
}

func (s *SettingService) Get(ctx context.Context) (*models.Setting, error) {
	setting, err := s.settings.Get(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("settings fetch failed")
		return nil, &PersistenceError{Message: "Settings could not be loaded", Err: err}
	}
	return setting, nil
}
