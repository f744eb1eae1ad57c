// Package config handles configuration loading for the weather service.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all configuration for the weather service.
type Config struct {
	Port          string
	Environment   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	JWTSecret     string
	JWTExpiry     time.Duration
	WeatherAPIKey string
	WeatherAPIURL string
	RateLimit     int
	RateWindow    time.Duration
}

// Load reads configuration from environment variables. It returns an error
// when a required variable is missing so the caller can terminate cleanly.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "5000"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		JWTExpiry:     parseDuration(getEnv("JWT_EXPIRY", "168h"), 168*time.Hour),
		WeatherAPIURL: getEnv("WEATHER_API_URL", "https://api.openweathermap.org/data/2.5"),
		RateLimit:     parseInt(getEnv("RATE_LIMIT", "60"), 60),
		RateWindow:    parseDuration(getEnv("RATE_WINDOW", "1m"), time.Minute),
	}

	required := []struct {
		name string
		dst  *string
	}{
		{"DB_HOST", &cfg.DBHost},
		{"DB_PORT", &cfg.DBPort},
		{"DB_USER", &cfg.DBUser},
		{"DB_PASSWORD", &cfg.DBPassword},
		{"DB_NAME", &cfg.DBName},
		{"REDIS_HOST", &cfg.RedisHost},
		{"REDIS_PORT", &cfg.RedisPort},
		{"JWT_SECRET", &cfg.JWTSecret},
		{"WEATHER_API_KEY", &cfg.WeatherAPIKey},
	}
	for _, v := range required {
		value, err := getEnvRequired(v.name)
		if err != nil {
			return nil, err
		}
		*v.dst = value
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func parseInt(value string, defaultValue int) int {
	var n int
	if _, err := fmt.Sscanf(value, "%d", &n); err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
