package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cabin-booking-backend/cache"
	"cabin-booking-backend/middleware"
	"cabin-booking-backend/models"
	"cabin-booking-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type memBookingStore struct {
	bookings []models.Booking
	nextID   uint
	deleted  []uint
}

func (m *memBookingStore) Insert(_ context.Context, booking *models.Booking) error {
	m.nextID++
	booking.ID = m.nextID
	m.bookings = append(m.bookings, *booking)
	return nil
}

func (m *memBookingStore) UpdateFields(_ context.Context, id uint, fields map[string]interface{}) error {
	return nil
}

func (m *memBookingStore) Delete(_ context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *memBookingStore) GetByGuest(_ context.Context, guestID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.GuestID == guestID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookingStore) GetByID(_ context.Context, id uint) (*models.Booking, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			return &m.bookings[i], nil
		}
	}
	return nil, errors.New("booking not found")
}

type memGuestDirectory struct {
	guests map[string]*models.Guest
	nextID uint
}

func (m *memGuestDirectory) GetByEmail(_ context.Context, email string) (*models.Guest, error) {
	return m.guests[email], nil
}

func (m *memGuestDirectory) GetByID(_ context.Context, id uint) (*models.Guest, error) {
	for _, g := range m.guests {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, errors.New("guest not found")
}

func (m *memGuestDirectory) Create(_ context.Context, guest *models.Guest) error {
	m.nextID++
	guest.ID = m.nextID
	m.guests[guest.Email] = guest
	return nil
}

type testEnv struct {
	router *gin.Engine
	store  *memBookingStore
	auth   *services.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &memBookingStore{}
	dir := &memGuestDirectory{guests: make(map[string]*models.Guest)}
	log := zerolog.Nop()

	authSvc := services.NewAuthService(dir, []byte("test-secret"), time.Hour, log)
	reservationSvc := services.NewReservationService(store, cache.NewMemoryViewCache(), log)
	ctrl := NewReservationController(reservationSvc)

	r := gin.New()
	api := r.Group("/api")
	api.Use(middleware.Auth(authSvc))
	api.GET("/reservations", ctrl.GetReservations)
	api.POST("/reservations", ctrl.CreateReservation)
	api.PATCH("/reservations/:id", ctrl.UpdateReservation)
	api.DELETE("/reservations/:id", ctrl.DeleteReservation)

	return &testEnv{router: r, store: store, auth: authSvc}
}

func (e *testEnv) signIn(t *testing.T, email string) string {
	t.Helper()
	token, _, err := e.auth.SignIn(context.Background(), email, "Test Guest")
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestCreateReservationWithoutSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/reservations", "", `{"cabinId":3,"cabinPrice":120,"numGuests":"2"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Empty(t, env.store.bookings)
}

func TestCreateReservationReturnsRedirect(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "guest@example.com")

	w := env.do(t, http.MethodPost, "/api/reservations", token,
		`{"cabinId":3,"cabinPrice":120,"numGuests":"2","observations":"late arrival"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success  bool           `json:"success"`
		Redirect string         `json:"redirect"`
		Data     models.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "/cabins/thankyou", resp.Redirect)
	require.Equal(t, "unconfirmed", resp.Data.Status)
	require.Equal(t, float64(120), resp.Data.TotalPrice)
	require.False(t, resp.Data.IsPaid)
}

func TestDeleteReservationOfAnotherGuest(t *testing.T) {
	env := newTestEnv(t)
	owner := env.signIn(t, "owner@example.com")
	intruder := env.signIn(t, "intruder@example.com")

	w := env.do(t, http.MethodPost, "/api/reservations", owner, `{"cabinId":1,"cabinPrice":90,"numGuests":"2"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	bookingID := env.store.bookings[0].ID

	w = env.do(t, http.MethodDelete, "/api/reservations/1", intruder, "")
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Empty(t, env.store.deleted)

	w = env.do(t, http.MethodDelete, "/api/reservations/1", owner, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []uint{bookingID}, env.store.deleted)
}

func TestUpdateReservationValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.signIn(t, "guest@example.com")

	w := env.do(t, http.MethodPost, "/api/reservations", token, `{"cabinId":1,"cabinPrice":90,"numGuests":"2"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPatch, "/api/reservations/1", token, `{"numGuests":"abc"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPatch, "/api/reservations/1", token, `{"numGuests":"3"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "/account/reservations", resp.Redirect)
}
