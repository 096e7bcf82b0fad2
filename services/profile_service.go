package services

import (
	"context"
	"regexp"
	"strings"

	"cabin-booking-backend/cache"
	"cabin-booking-backend/models"

	"github.com/rs/zerolog"
)

var nationalIDPattern = regexp.MustCompile(`^[a-zA-Z0-9]{6,12}$`)

// GuestStore is the slice of the persistence layer the profile service
// needs.
type GuestStore interface {
	UpdateProfile(ctx context.Context, guestID uint, fields map[string]interface{}) error
}

type ProfileService struct {
	guests GuestStore
	views  cache.ViewCache
	log    zerolog.Logger
}

func NewProfileService(guests GuestStore, views cache.ViewCache, log zerolog.Logger) *ProfileService {
	return &ProfileService{guests: guests, views: views, log: log}
}

type UpdateProfileInput struct {
	NationalID string `json:"nationalID"`
	// Nationality is the composite "name%flag" value produced by the
	// country selector, e.g. "France%fr".
	Nationality string `json:"nationality"`
}

// UpdateProfile writes the identity-verification fields of the
// principal's own guest row. Both format checks run before any store
// contact.
func (s *ProfileService) UpdateProfile(ctx context.Context, principal *models.Principal, input UpdateProfileInput) error {
	if principal == nil {
		return ErrUnauthenticated
	}

	nationality, countryFlag, found := strings.Cut(input.Nationality, "%")
	if !found || nationality == "" {
		return &ValidationError{Message: "Provide a valid nationality!"}
	}

	if !nationalIDPattern.MatchString(input.NationalID) {
		return &ValidationError{Message: "Provide a correct national ID!"}
	}

	fields := map[string]interface{}{
		"nationality":  nationality,
		"country_flag": countryFlag,
		"national_id":  input.NationalID,
	}

	if err := s.guests.UpdateProfile(ctx, principal.GuestID, fields); err != nil {
		s.log.Error().Err(err).Uint("guest_id", principal.GuestID).Msg("guest update failed")
		return &PersistenceError{Message: "Guest could not be updated", Err: err}
	}

	s.views.Invalidate(ctx, cache.ViewProfile)
	return nil
}
