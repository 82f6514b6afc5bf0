package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/Nazarious-ucu/weather-hub-api/internal/models"
)

type meteoResponse = struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
		WindDeg     int     `json:"winddirection"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
	Daily struct {
		Time        []string  `json:"time"`
		TempMax     []float64 `json:"temperature_2m_max"`
		TempMin     []float64 `json:"temperature_2m_min"`
		WeatherCode []int     `json:"weathercode"`
	} `json:"daily"`
}

// ClientOpenMeteo is the keyless fallback provider. It delivers fewer
// fields than OpenWeather, so some current-weather attributes stay zero.
type ClientOpenMeteo struct {
	baseURL string
	client  HTTPClient
	logger  *log.Logger
}

func NewOpenMeteoClient(baseURL string, httpClient HTTPClient, logger *log.Logger) *ClientOpenMeteo {
	return &ClientOpenMeteo{baseURL: baseURL, client: httpClient, logger: logger}
}

func (s *ClientOpenMeteo) Fetch(ctx context.Context, loc models.Location) (models.WeatherReport, error) {
	url := fmt.Sprintf(
		"%s?latitude=%f&longitude=%f&current_weather=true"+
			"&daily=temperature_2m_max,temperature_2m_min,weathercode&forecast_days=%d&timezone=UTC",
		s.baseURL, loc.Latitude, loc.Longitude, forecastWindowDays)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.WeatherReport{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return models.WeatherReport{}, err
	}
	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
			s.logger.Println("failed to close response body:", err)
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return models.WeatherReport{}, fmt.Errorf("Open-Meteo API error: status %s", resp.Status)
	}

	var raw meteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return models.WeatherReport{}, err
	}

	condition, description := meteoCondition(raw.CurrentWeather.WeatherCode)

	forecast := make([]models.ForecastEntry, 0, len(raw.Daily.Time))
	for i, day := range raw.Daily.Time {
		if i >= forecastWindowDays || i >= len(raw.Daily.TempMin) || i >= len(raw.Daily.TempMax) {
			break
		}
		date, err := time.Parse("2006-01-02", day)
		if err != nil {
			continue
		}
		cond, desc := condition, description
		if i < len(raw.Daily.WeatherCode) {
			cond, desc = meteoCondition(raw.Daily.WeatherCode[i])
		}
		forecast = append(forecast, models.ForecastEntry{
			Date:        date,
			TempMin:     raw.Daily.TempMin[i],
			TempMax:     raw.Daily.TempMax[i],
			Condition:   cond,
			Description: desc,
		})
	}

	return models.WeatherReport{
		Location: loc,
		Current: models.CurrentWeather{
			Temperature: raw.CurrentWeather.Temperature,
			FeelsLike:   raw.CurrentWeather.Temperature,
			TempMin:     raw.CurrentWeather.Temperature,
			TempMax:     raw.CurrentWeather.Temperature,
			WindSpeed:   raw.CurrentWeather.WindSpeed,
			WindDeg:     raw.CurrentWeather.WindDeg,
			Condition:   condition,
			Description: description,
		},
		Forecast: forecast,
		Source:   "open-meteo",
	}, nil
}

// meteoCondition maps WMO weather codes onto the OpenWeather-style
// condition vocabulary the rest of the app uses.
func meteoCondition(code int) (string, string) {
	switch {
	case code == 0:
		return "Clear", "clear sky"
	case code >= 1 && code <= 3:
		return "Clouds", "partly cloudy"
	case code == 45 || code == 48:
		return "Mist", "fog"
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return "Rain", "rain"
	case code >= 71 && code <= 77 || code == 85 || code == 86:
		return "Snow", "snow"
	case code >= 95:
		return "Thunderstorm", "thunderstorm"
	default:
		return "Clouds", "overcast"
	}
}
