package controllers

import (
	"net/http"

	"cabin-booking-backend/services"
	"cabin-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type CabinController struct {
	Svc *services.CabinService
}

func NewCabinController(svc *services.CabinService) *CabinController {
	return &CabinController{Svc: svc}
}

// GetCabins (GET /api/cabins)
func (ctrl *CabinController) GetCabins(c *gin.Context) {
	cabins, err := ctrl.Svc.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, cabins)
}

// GetCabinByID (GET /api/cabins/:id)
func (ctrl *CabinController) GetCabinByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cabin, err := ctrl.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, cabin)
}
