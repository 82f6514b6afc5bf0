package models

import "time"

// WeatherRecord is the persisted unit of data: one location's captured
// weather, its forecast window and user notes.
type WeatherRecord struct {
	ID           string          `json:"id"`
	LocationName string          `json:"location_name"`
	Latitude     float64         `json:"latitude"`
	Longitude    float64         `json:"longitude"`
	Timestamp    time.Time       `json:"timestamp"`
	Current      CurrentWeather  `json:"current"`
	Forecast     []ForecastEntry `json:"forecast,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CurrentWeather holds the provider-sourced conditions at capture time.
type CurrentWeather struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	Pressure    int     `json:"pressure"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	WindDeg     int     `json:"wind_deg"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Icon        string  `json:"icon,omitempty"`
	Visibility  int     `json:"visibility,omitempty"`
}

// ForecastEntry is one day of the forecast window, at most five per lookup.
type ForecastEntry struct {
	Date        time.Time `json:"date"`
	TempMin     float64   `json:"temp_min"`
	TempMax     float64   `json:"temp_max"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Condition   string    `json:"condition"`
	Description string    `json:"description"`
	Icon        string    `json:"icon,omitempty"`
}

// WeatherReport is the lookup result for a resolved location.
type WeatherReport struct {
	Location Location        `json:"location"`
	Current  CurrentWeather  `json:"current"`
	Forecast []ForecastEntry `json:"forecast"`
	Source   string          `json:"source,omitempty"`
}

// Stats summarizes the stored collection for the analytics endpoint.
type Stats struct {
	TotalRecords    int        `json:"total_records"`
	UniqueLocations int        `json:"unique_locations"`
	AvgTemperature  float64    `json:"avg_temperature"`
	OldestRecord    *time.Time `json:"oldest_record,omitempty"`
	NewestRecord    *time.Time `json:"newest_record,omitempty"`
}
