package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"cabin-booking-backend/services"
	"cabin-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Persistence errors carry a generic user-facing message; the wrapped
// store detail stays in the logs.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	case services.IsForbidden(err):
		utils.JSONError(c, http.StatusForbidden, err.Error())
	case services.IsValidation(err):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case services.IsPersistence(err):
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong!")
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid identifier")
		return 0, false
	}
	return uint(id), true
}
