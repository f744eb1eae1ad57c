package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/raghhhava7/Devclimate-BE/internal/models"
	"github.com/raghhhava7/Devclimate-BE/internal/repository"
	"github.com/raghhhava7/Devclimate-BE/internal/weather"
)

// ErrEmptyCity is returned when the city parameter is blank.
var ErrEmptyCity = errors.New("city is required")

// metersPerSecondToKmh converts upstream wind speed to km/h.
const metersPerSecondToKmh = 3.6

// WeatherService performs live weather lookups and records each one in the
// caller's search history.
type WeatherService interface {
	Lookup(ctx context.Context, city string, userID uuid.UUID) (*models.WeatherSearch, error)
}

type weatherService struct {
	client     weather.Client
	searchRepo repository.SearchRepository
}

// NewWeatherService creates a new WeatherService instance.
func NewWeatherService(client weather.Client, searchRepo repository.SearchRepository) WeatherService {
	return &weatherService{
		client:     client,
		searchRepo: searchRepo,
	}
}

// Lookup calls the upstream provider and persists the normalized result.
// Nothing is persisted when the upstream call fails.
func (s *weatherService) Lookup(ctx context.Context, city string, userID uuid.UUID) (*models.WeatherSearch, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyCity
	}

	obs, err := s.client.Current(ctx, city)
	if err != nil {
		return nil, err
	}

	search := &models.WeatherSearch{
		ID:          uuid.New(),
		UserID:      userID,
		City:        obs.City,
		Country:     obs.Country,
		Temperature: int(math.Round(obs.Temperature)),
		FeelsLike:   int(math.Round(obs.FeelsLike)),
		Description: obs.Description,
		Humidity:    obs.Humidity,
		WindSpeed:   int(math.Round(obs.WindSpeed * metersPerSecondToKmh)),
		Pressure:    obs.Pressure,
		Icon:        obs.Icon,
		SearchedAt:  time.Now(),
	}

	if err := s.searchRepo.Create(ctx, search); err != nil {
		return nil, err
	}

	return search, nil
}
