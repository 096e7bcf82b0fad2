package controllers

import (
	"net/http"

	"cabin-booking-backend/services"
	"cabin-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

type loginPayload struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// Login (POST /api/auth/login) exchanges a verified account identity
// for a session token, provisioning the guest row on first sign-in. The
// OAuth provider hand-off happens upstream of this endpoint.
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login payload: "+err.Error())
		return
	}

	token, guest, err := ctrl.Svc.SignIn(c.Request.Context(), payload.Email, payload.FullName)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"token": token, "guest": guest})
}
