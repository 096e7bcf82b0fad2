package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cabin-booking-backend/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// GuestDirectory is the slice of the guest store the session layer needs.
type GuestDirectory interface {
	GetByEmail(ctx context.Context, email string) (*models.Guest, error)
	GetByID(ctx context.Context, id uint) (*models.Guest, error)
	Create(ctx context.Context, guest *models.Guest) error
}

// AuthService issues and verifies session tokens. The OAuth provider
// hand-off happens upstream; this service is the session boundary the
// rest of the backend consumes.
type AuthService struct {
	guests GuestDirectory
	secret []byte
	ttl    time.Duration
	log    zerolog.Logger
}

func NewAuthService(guests GuestDirectory, secret []byte, ttl time.Duration, log zerolog.Logger) *AuthService {
	return &AuthService{guests: guests, secret: secret, ttl: ttl, log: log}
}

// SignIn finds or provisions the guest row for the signed-in account and
// returns a session token for it. New guests start with an empty profile;
// the identity-verification fields are filled in from the profile page.
func (s *AuthService) SignIn(ctx context.Context, email, fullName string) (string, *models.Guest, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", nil, &ValidationError{Message: "Provide a valid email address!"}
	}

	guest, err := s.guests.GetByEmail(ctx, email)
	if err != nil {
		s.log.Error().Err(err).Msg("guest lookup failed during sign-in")
		return "", nil, &PersistenceError{Message: "Could not sign in", Err: err}
	}

	if guest == nil {
		guest = &models.Guest{Email: email, FullName: strings.TrimSpace(fullName)}
		if err := s.guests.Create(ctx, guest); err != nil {
			s.log.Error().Err(err).Msg("guest provisioning failed during sign-in")
			return "", nil, &PersistenceError{Message: "Could not sign in", Err: err}
		}
	}

	token, err := s.issueToken(guest)
	if err != nil {
		s.log.Error().Err(err).Uint("guest_id", guest.ID).Msg("token signing failed")
		return "", nil, &PersistenceError{Message: "Could not sign in", Err: err}
	}
	return token, guest, nil
}

func (s *AuthService) issueToken(guest *models.Guest) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(guest.ID), 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// VerifyToken resolves a session token to a principal. The guest row is
// re-fetched so a deleted account cannot keep acting through an old token.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*models.Principal, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected session claims")
	}

	guestID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid session subject: %w", err)
	}

	guest, err := s.guests.GetByID(ctx, uint(guestID))
	if err != nil {
		return nil, fmt.Errorf("session guest lookup failed: %w", err)
	}

	return &models.Principal{GuestID: guest.ID, Email: guest.Email}, nil
}
