// Package main is the entry point for the weather service.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/raghhhava7/Devclimate-BE/internal/config"
	"github.com/raghhhava7/Devclimate-BE/internal/handlers"
	"github.com/raghhhava7/Devclimate-BE/internal/metrics"
	"github.com/raghhhava7/Devclimate-BE/internal/middleware"
	"github.com/raghhhava7/Devclimate-BE/internal/repository"
	"github.com/raghhhava7/Devclimate-BE/internal/routes"
	"github.com/raghhhava7/Devclimate-BE/internal/service"
	"github.com/raghhhava7/Devclimate-BE/internal/weather"
	"github.com/raghhhava7/Devclimate-BE/pkg/database"
	"github.com/raghhhava7/Devclimate-BE/pkg/redis"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Initialize Redis
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatal("Failed to connect to Redis: ", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	searchRepo := repository.NewSearchRepository(db)

	// Initialize services
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	authService := service.NewAuthService(userRepo, tokenService)
	weatherClient := weather.NewClient(cfg.WeatherAPIURL, cfg.WeatherAPIKey)
	weatherService := service.NewWeatherService(weatherClient, searchRepo)
	historyService := service.NewHistoryService(searchRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	weatherHandler := handlers.NewWeatherHandler(weatherService, historyService)
	healthHandler := handlers.NewHealthHandler()

	// Setup router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	authenticator := middleware.NewBearerAuthenticator(tokenService)
	rateLimit := middleware.RateLimitConfig{Limit: cfg.RateLimit, Window: cfg.RateWindow}

	routes.Setup(router, authHandler, weatherHandler, healthHandler,
		authenticator, redisClient, rateLimit, metrics.New())

	// Start server
	slog.Info("starting weather service", "port", cfg.Port, "environment", cfg.Environment)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
