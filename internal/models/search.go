package models

import (
	"time"

	"github.com/google/uuid"
)

// WeatherSearch is an immutable record of one weather lookup, owned by the
// user who performed it. Wind speed is stored in km/h; temperatures are
// rounded to whole degrees Celsius.
type WeatherSearch struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	City        string    `json:"city" gorm:"not null"`
	Country     string    `json:"country"`
	Temperature int       `json:"temperature"`
	FeelsLike   int       `json:"feels_like"`
	Description string    `json:"description"`
	Humidity    int       `json:"humidity"`
	WindSpeed   int       `json:"wind_speed"`
	Pressure    int       `json:"pressure"`
	Icon        string    `json:"icon"`
	SearchedAt  time.Time `json:"searched_at"`
}

// TableName returns the database table name for the WeatherSearch model.
func (WeatherSearch) TableName() string {
	return "weather_searches"
}
