// Package database provides the Postgres connection for the weather service.
package database

import (
	"fmt"

	"github.com/raghhhava7/Devclimate-BE/internal/config"
	"github.com/raghhhava7/Devclimate-BE/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens a gorm connection to Postgres and migrates the schema.
// The returned handle is safe for concurrent use and is shared by all
// repositories for the lifetime of the process.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.WeatherSearch{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
