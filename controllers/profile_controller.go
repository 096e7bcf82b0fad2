package controllers

import (
	"net/http"

	"cabin-booking-backend/middleware"
	"cabin-booking-backend/services"
	"cabin-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Svc *services.ProfileService
}

func NewProfileController(svc *services.ProfileService) *ProfileController {
	return &ProfileController{Svc: svc}
}

// UpdateProfile (PATCH /api/profile) updates identity-verification fields of
// the principal's own guest row.
func (ctrl *ProfileController) UpdateProfile(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)

	var input services.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid profile payload: "+err.Error())
		return
	}

	if err := ctrl.Svc.UpdateProfile(c.Request.Context(), principal, input); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, nil)
}
