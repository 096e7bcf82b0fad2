package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"cabin-booking-backend/controllers"
	"cabin-booking-backend/middleware"
	"cabin-booking-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controller instances into the gin engine.
func SetupRouter(
	ac *controllers.AuthController,
	rc *controllers.ReservationController,
	pc *controllers.ProfileController,
	cc *controllers.CabinController,
	sc *controllers.SettingController,
	authSvc *services.AuthService,
	log zerolog.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(log))
	r.Use(middleware.RateLimit(rate.Limit(10), 20))

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.Auth(authSvc))
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", ac.Login)
		}

		cabins := api.Group("/cabins")
		{
			cabins.GET("", cc.GetCabins)
			cabins.GET("/:id", cc.GetCabinByID)
		}

		api.GET("/settings", sc.GetSettings)

		reservations := api.Group("/reservations")
		{
			reservations.GET("", rc.GetReservations)
			reservations.POST("", rc.CreateReservation)
			reservations.GET("/:id", rc.GetReservation)
			reservations.PATCH("/:id", rc.UpdateReservation)
			reservations.DELETE("/:id", rc.DeleteReservation)
		}

		api.PATCH("/profile", pc.UpdateProfile)
	}

	return r
}
