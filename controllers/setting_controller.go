package controllers

import (
	"net/http"

	"cabin-booking-backend/services"
	"cabin-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type SettingController struct {
	Svc *services.SettingService
}

func NewSettingController(svc *services.SettingService) *SettingController {
	return &SettingController{Svc: svc}
}

// GetSettings (GET /api/settings)
func (ctrl *SettingController) GetSettings(c *gin.Context) {
	setting, err := ctrl.Svc.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}
