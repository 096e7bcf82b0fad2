package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"cabin-booking-backend/cache"
	"cabin-booking-backend/models"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"
)

// Observations are silently truncated to this many characters; overflow
// is a normalization, not an error.
const maxObservationsLen = 1000

// Redirect targets returned to the HTTP layer on successful mutations.
// Navigation stays in the controllers so the services are pure functions
// of (principal, input, dependencies).
const (
	RedirectThankYou     = "/cabins/thankyou"
	RedirectReservations = "/account/reservations"
)

// BookingStore is the slice of the persistence layer the reservation
// service needs.
type BookingStore interface {
	Insert(ctx context.Context, booking *models.Booking) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	GetByGuest(ctx context.Context, guestID uint) ([]models.Booking, error)
	GetByID(ctx context.Context, id uint) (*models.Booking, error)
}

type ReservationService struct {
	bookings BookingStore
	views    cache.ViewCache
	log      zerolog.Logger
}

func NewReservationService(bookings BookingStore, views cache.ViewCache, log zerolog.Logger) *ReservationService {
	return &ReservationService{bookings: bookings, views: views, log: log}
}

type CreateReservationInput struct {
	CabinID      uint      `json:"cabinId"`
	CabinPrice   float64   `json:"cabinPrice"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	NumGuests    string    `json:"numGuests"`
	Observations string    `json:"observations"`
}

type UpdateReservationInput struct {
	NumGuests    string `json:"numGuests"`
	Observations string `json:"observations"`
}

// Create persists a new booking on behalf of the principal. The owning
// guest identifier always comes from the principal, never from the
// payload, and the payment/breakfast/status/price fields are fixed to
// their creation defaults regardless of what the caller supplied.
func (s *ReservationService) Create(ctx context.Context, principal *models.Principal, input CreateReservationInput) (*models.Booking, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}

	numGuests, err := parseNumGuests(input.NumGuests)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		GuestID:      principal.GuestID,
		CabinID:      input.CabinID,
		StartDate:    datatypes.Date(input.StartDate),
		EndDate:      datatypes.Date(input.EndDate),
		NumNights:    numNights(input.StartDate, input.EndDate),
		NumGuests:    numGuests,
		Observations: truncateObservations(input.Observations),
		CabinPrice:   input.CabinPrice,
		ExtrasPrice:  0,
		TotalPrice:   input.CabinPrice,
		IsPaid:       false,
		HasBreakfast: false,
		Status:       models.StatusUnconfirmed,
	}

	if err := s.bookings.Insert(ctx, booking); err != nil {
		s.log.Error().Err(err).Uint("guest_id", principal.GuestID).Uint("cabin_id", input.CabinID).
			Msg("booking insert failed")
		return nil, &PersistenceError{Message: "Booking could not be created", Err: err}
	}

	s.views.Invalidate(ctx, cache.ViewCabin(input.CabinID))
	return booking, nil
}

// Update changes the two guest-editable fields of an owned booking.
// Status, prices and the payment/breakfast flags are immutable here.
func (s *ReservationService) Update(ctx context.Context, principal *models.Principal, bookingID uint, input UpdateReservationInput) error {
	if principal == nil {
		return ErrUnauthenticated
	}

	owned, err := s.ownsBooking(ctx, principal, bookingID)
	if err != nil {
		s.log.Error().Err(err).Uint("booking_id", bookingID).Msg("ownership lookup failed")
		return &PersistenceError{Message: "Reservation could not be updated", Err: err}
	}
	if !owned {
		return &ForbiddenError{Action: "modify"}
	}

	numGuests, err := parseNumGuests(input.NumGuests)
	if err != nil {
		return err
	}

	fields := map[string]interface{}{
		"num_guests":   numGuests,
		"observations": truncateObservations(input.Observations),
	}

	if err := s.bookings.UpdateFields(ctx, bookingID, fields); err != nil {
		s.log.Error().Err(err).Uint("booking_id", bookingID).Msg("booking update failed")
		return &PersistenceError{Message: "Reservation could not be updated", Err: err}
	}

	s.views.Invalidate(ctx, cache.ViewReservations, cache.ViewReservationEdit(bookingID))
	return nil
}

// Delete removes an owned booking. Once authorized it is unconditional:
// lifecycle status is not consulted.
func (s *ReservationService) Delete(ctx context.Context, principal *models.Principal, bookingID uint) error {
	if principal == nil {
		return ErrUnauthenticated
	}

	owned, err := s.ownsBooking(ctx, principal, bookingID)
	if err != nil {
		s.log.Error().Err(err).Uint("booking_id", bookingID).Msg("ownership lookup failed")
		return &PersistenceError{Message: "Booking could not be deleted", Err: err}
	}
	if !owned {
		return &ForbiddenError{Action: "delete"}
	}

	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		s.log.Error().Err(err).Uint("booking_id", bookingID).Msg("booking delete failed")
		return &PersistenceError{Message: "Booking could not be deleted", Err: err}
	}

	s.views.Invalidate(ctx, cache.ViewReservations)
	return nil
}

// ListForGuest returns the principal's own bookings.
func (s *ReservationService) ListForGuest(ctx context.Context, principal *models.Principal) ([]models.Booking, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}

	bookings, err := s.bookings.GetByGuest(ctx, principal.GuestID)
	if err != nil {
		s.log.Error().Err(err).Uint("guest_id", principal.GuestID).Msg("booking list failed")
		return nil, &PersistenceError{Message: "Bookings could not be loaded", Err: err}
	}
	return bookings, nil
}

// GetForGuest returns one booking, applying the same ownership guard as
// the mutations.
func (s *ReservationService) GetForGuest(ctx context.Context, principal *models.Principal, bookingID uint) (*models.Booking, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}

	owned, err := s.ownsBooking(ctx, principal, bookingID)
	if err != nil {
		s.log.Error().Err(err).Uint("booking_id", bookingID).Msg("ownership lookup failed")
		return nil, &PersistenceError{Message: "Booking could not be loaded", Err: err}
	}
	if !owned {
		return nil, &ForbiddenError{Action: "view"}
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		s.log.Error().Err(err).Uint("booking_id", bookingID).Msg("booking fetch failed")
		return nil, &PersistenceError{Message: "Booking could not be loaded", Err: err}
	}
	return booking, nil
}

// ownsBooking re-derives ownership from the store's current state on
// every call. Trusting an owner field from the request payload would let
// a caller act on someone else's booking by substituting identifiers.
func (s *ReservationService) ownsBooking(ctx context.Context, principal *models.Principal, bookingID uint) (bool, error) {
	bookings, err := s.bookings.GetByGuest(ctx, principal.GuestID)
	if err != nil {
		return false, err
	}
	for _, b := range bookings {
		if b.ID == bookingID {
			return true, nil
		}
	}
	return false, nil
}

func parseNumGuests(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, &ValidationError{Message: "Provide a valid number of guests!"}
	}
	return n, nil
}

// truncateObservations counts runes so multi-byte text is never split
// mid-character.
func truncateObservations(s string) string {
	runes := []rune(s)
	if len(runes) <= maxObservationsLen {
		return s
	}
	return string(runes[:maxObservationsLen])
}

func numNights(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start).Hours() / 24)
}
