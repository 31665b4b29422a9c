// Package main is the entry point for the auth service.
package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Harshvardhan1407/user-auth-service/internal/config"
	"github.com/Harshvardhan1407/user-auth-service/internal/database"
	"github.com/Harshvardhan1407/user-auth-service/internal/handlers"
	"github.com/Harshvardhan1407/user-auth-service/internal/metrics"
	"github.com/Harshvardhan1407/user-auth-service/internal/repository"
	"github.com/Harshvardhan1407/user-auth-service/internal/routes"
	"github.com/Harshvardhan1407/user-auth-service/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Initialize repository
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	jwtService := service.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	if jwtService == nil {
		log.Fatal().Msg("JWT_SECRET must be at least 32 bytes")
	}
	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	authService := service.NewAuthService(userRepo, jwtService, hasher, log.Logger)

	// Initialize handlers
	m := metrics.New(prometheus.DefaultRegisterer)
	authHandler := handlers.NewAuthHandler(authService, m)
	userHandler := handlers.NewUserHandler(authService)
	healthHandler := handlers.NewHealthHandler()

	// Setup router
	router := gin.Default()
	routes.Setup(router, authHandler, userHandler, healthHandler, authService)

	// Start server
	log.Info().Str("addr", cfg.Addr()).Msg("starting auth service")
	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
