package services

import (
	"context"

	"cabin-booking-backend/models"

	"github.com/rs/zerolog"
)

// CabinStore is the read-only slice of the persistence layer serving the
// cabin pages.
type CabinStore interface {
	GetAll(ctx context.Context) ([]models.Cabin, error)
	GetByID(ctx context.Context, id uint) (*models.Cabin, error)
}

type CabinService struct {
	cabins CabinStore
	log    zerolog.Logger
}

func NewCabinService(cabins CabinStore, log zerolog.Logger) *CabinService {
	return &CabinService{cabins: cabins, log: log}
}

func (s *CabinService) GetAll(ctx context.Context) ([]models.Cabin, error) {
	cabins, err := s.cabins.GetAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("cabin list failed")
		return nil, &PersistenceError{Message: "Cabins could not be loaded", Err: err}
	}
	return cabins, nil
}

func (s *CabinService) GetByID(ctx context.Context, id uint) (*models.Cabin, error) {
	cabin, err := s.cabins.GetByID(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Uint("cabin_id", id).Msg("cabin fetch failed")
		return nil, &PersistenceError{Message: "Cabin could not be loaded", Err: err}
	}
	return cabin, nil
}
