// Package weather provides the client for the upstream weather API.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrCityNotFound is returned when the upstream has no data for the city.
	ErrCityNotFound = errors.New("city not found")
	// ErrUpstream is returned for any other upstream failure.
	ErrUpstream = errors.New("weather provider request failed")
)

// Observation is the normalized current-weather reading for a city,
// in metric units as returned by the upstream (wind speed in m/s).
type Observation struct {
	City        string
	Country     string
	Temperature float64
	FeelsLike   float64
	Description string
	Icon        string
	Humidity    int
	Pressure    int
	WindSpeed   float64
}

// Client calls the upstream weather API. Every lookup hits the upstream
// live: no caching, no retries.
type Client interface {
	Current(ctx context.Context, city string) (*Observation, error)
}

type client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a weather API client for the given base URL and key.
func NewClient(baseURL, apiKey string) Client {
	return &client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// currentResponse mirrors the upstream current-weather payload.
type currentResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
}

func (c *client) Current(ctx context.Context, city string) (*Observation, error) {
	endpoint := fmt.Sprintf("%s/weather?q=%s&units=metric&appid=%s",
		c.baseURL, url.QueryEscape(city), c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrCityNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: upstream returned status %d", ErrUpstream, resp.StatusCode)
	}

	var payload currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUpstream, err)
	}

	obs := &Observation{
		City:        payload.Name,
		Country:     payload.Sys.Country,
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		Pressure:    payload.Main.Pressure,
		WindSpeed:   payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		obs.Description = payload.Weather[0].Description
		obs.Icon = payload.Weather[0].Icon
	}

	return obs, nil
}
