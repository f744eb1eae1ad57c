// Package routes defines HTTP routes for the weather service.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"

	"github.com/raghhhava7/Devclimate-BE/internal/handlers"
	"github.com/raghhhava7/Devclimate-BE/internal/metrics"
	"github.com/raghhhava7/Devclimate-BE/internal/middleware"
)

// Setup configures all HTTP routes for the application.
func Setup(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	weatherHandler *handlers.WeatherHandler,
	healthHandler *handlers.HealthHandler,
	authenticator middleware.Authenticator,
	redisClient *goredis.Client,
	rateLimit middleware.RateLimitConfig,
	m *metrics.Metrics,
) {
	router.Use(m.Middleware())

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Check)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/profile", middleware.RequireAuth(authenticator), authHandler.Profile)
		}

		weather := api.Group("/weather")
		weather.Use(middleware.RequireAuth(authenticator))
		weather.Use(middleware.RateLimit(redisClient, rateLimit))
		{
			weather.GET("", weatherHandler.History)
			weather.GET("/current/:city", weatherHandler.Current)
			weather.DELETE("/:searchId", weatherHandler.Delete)
		}
	}
}
