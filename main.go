package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"cabin-booking-backend/cache"
	"cabin-booking-backend/config"
	"cabin-booking-backend/controllers"
	"cabin-booking-backend/repository"
	"cabin-booking-backend/routes"
	"cabin-booking-backend/services"
)

const sessionTTL = 7 * 24 * time.Hour

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// .env is optional; environment variables win either way.
	if err := godotenv.Load(); err != nil {
		log.Info().Msg(".env not found, continuing with environment variables")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal().Msg("JWT_SECRET environment variable is not set")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	db := config.DB
	if db == nil {
		log.Fatal().Msg("config.DB is nil after ConnectDatabase()")
	}
	log.Info().Msg("database connection established")

	// View cache: Redis when configured, in-memory otherwise.
	var views cache.ViewCache
	redisClient, err := config.ConnectRedis()
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	if redisClient != nil {
		views = cache.NewRedisViewCache(redisClient, log)
		log.Info().Msg("redis view cache enabled")
	} else {
		views = cache.NewMemoryViewCache()
		log.Info().Msg("REDIS_URL not set, using in-memory view cache")
	}

	// Repositories
	bookingRepo := repository.NewBookingRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	cabinRepo := repository.NewCabinRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Services
	authService := services.NewAuthService(guestRepo, []byte(secret), sessionTTL, log)
	reservationService := services.NewReservationService(bookingRepo, views, log)
	profileService := services.NewProfileService(guestRepo, views, log)
	cabinService := services.NewCabinService(cabinRepo, log)
	settingService := services.NewSettingService(settingRepo, log)

	// Controllers
	authController := controllers.NewAuthController(authService)
	reservationController := controllers.NewReservationController(reservationService)
	profileController := controllers.NewProfileController(profileService)
	cabinController := controllers.NewCabinController(cabinService)
	settingController := controllers.NewSettingController(settingService)

	router := routes.SetupRouter(
		authController,
		reservationController,
		profileController,
		cabinController,
		settingController,
		authService,
		log,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info().Msg("server stopped gracefully")
}
