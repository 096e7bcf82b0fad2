package middleware

import (
	"strings"

	"cabin-booking-backend/models"
	"cabin-booking-backend/services"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// Auth resolves the request's session token to a principal and stores it
// in the gin context. Resolution failures leave the principal absent
// rather than aborting: the services decide what requires authentication.
func Auth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie("session"); err == nil {
				token = cookie
			}
		}

		if token != "" {
			if principal, err := auth.VerifyToken(c.Request.Context(), token); err == nil {
				c.Set(principalKey, principal)
			}
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// CurrentPrincipal returns the authenticated principal for the request,
// or nil when there is no session.
func CurrentPrincipal(c *gin.Context) *models.Principal {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil
	}
	principal, ok := value.(*models.Principal)
	if !ok {
		return nil
	}
	return principal
}
