package controllers

import (
	"net/http"

	"cabin-booking-backend/middleware"
	"cabin-booking-backend/services"
	"cabin-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Svc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Svc: svc}
}

// GetReservations (GET /api/reservations) lists the principal's own bookings.
func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)

	bookings, err := ctrl.Svc.ListForGuest(c.Request.Context(), principal)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetReservation (GET /api/reservations/:id)
func (ctrl *ReservationController) GetReservation(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := ctrl.Svc.GetForGuest(c.Request.Context(), principal, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CreateReservation (POST /api/reservations). On success the frontend
// navigates to the thank-you page.
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)

	var input services.CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload: "+err.Error())
		return
	}

	booking, err := ctrl.Svc.Create(c.Request.Context(), principal, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONRedirect(c, http.StatusCreated, booking, services.RedirectThankYou)
}

// UpdateReservation (PATCH /api/reservations/:id). On success the
// frontend navigates back to the reservations list.
func (ctrl *ReservationController) UpdateReservation(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input services.UpdateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload: "+err.Error())
		return
	}

	if err := ctrl.Svc.Update(c.Request.Context(), principal, id, input); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONRedirect(c, http.StatusOK, nil, services.RedirectReservations)
}

// DeleteReservation (DELETE /api/reservations/:id)
func (ctrl *ReservationController) DeleteReservation(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.Svc.Delete(c.Request.Context(), principal, id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, nil)
}
