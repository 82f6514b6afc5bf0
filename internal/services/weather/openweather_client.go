package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/Nazarious-ucu/weather-hub-api/internal/models"
)

const forecastWindowDays = 5

type owmCurrentResponse = struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  int     `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Visibility int   `json:"visibility"`
	Dt         int64 `json:"dt"`
	Name       string `json:"name"`
}

type owmForecastResponse = struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			TempMin  float64 `json:"temp_min"`
			TempMax  float64 `json:"temp_max"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	} `json:"list"`
}

type ClientOpenWeather struct {
	APIKey  string
	baseURL string
	client  HTTPClient
	logger  *log.Logger
}

func NewOpenWeatherClient(apiKey, baseURL string, httpClient HTTPClient, logger *log.Logger) *ClientOpenWeather {
	return &ClientOpenWeather{APIKey: apiKey, baseURL: baseURL, client: httpClient, logger: logger}
}

func (s *ClientOpenWeather) Fetch(ctx context.Context, loc models.Location) (models.WeatherReport, error) {
	current, err := s.fetchCurrent(ctx, loc)
	if err != nil {
		return models.WeatherReport{}, err
	}

	forecast, err := s.fetchForecast(ctx, loc)
	if err != nil {
		return models.WeatherReport{}, err
	}

	return models.WeatherReport{
		Location: loc,
		Current:  current,
		Forecast: forecast,
		Source:   "openweather",
	}, nil
}

func (s *ClientOpenWeather) fetchCurrent(ctx context.Context, loc models.Location) (models.CurrentWeather, error) {
	url := fmt.Sprintf("%s/weather?lat=%f&lon=%f&units=metric&appid=%s",
		s.baseURL, loc.Latitude, loc.Longitude, s.APIKey)

	var raw owmCurrentResponse
	if err := s.get(ctx, url, &raw); err != nil {
		return models.CurrentWeather{}, err
	}

	if len(raw.Weather) == 0 {
		return models.CurrentWeather{}, fmt.Errorf("OpenWeather response has no weather block")
	}

	return models.CurrentWeather{
		Temperature: raw.Main.Temp,
		FeelsLike:   raw.Main.FeelsLike,
		TempMin:     raw.Main.TempMin,
		TempMax:     raw.Main.TempMax,
		Pressure:    raw.Main.Pressure,
		Humidity:    raw.Main.Humidity,
		WindSpeed:   raw.Wind.Speed,
		WindDeg:     raw.Wind.Deg,
		Condition:   raw.Weather[0].Main,
		Description: raw.Weather[0].Description,
		Icon:        raw.Weather[0].Icon,
		Visibility:  raw.Visibility,
	}, nil
}

func (s *ClientOpenWeather) fetchForecast(ctx context.Context, loc models.Location) ([]models.ForecastEntry, error) {
	url := fmt.Sprintf("%s/forecast?lat=%f&lon=%f&units=metric&appid=%s",
		s.baseURL, loc.Latitude, loc.Longitude, s.APIKey)

	var raw owmForecastResponse
	if err := s.get(ctx, url, &raw); err != nil {
		return nil, err
	}

	// The API returns 3-hourly slots; fold them into daily entries.
	byDay := map[time.Time]*models.ForecastEntry{}
	for _, item := range raw.List {
		if len(item.Weather) == 0 {
			continue
		}
		day := time.Unix(item.Dt, 0).UTC().Truncate(24 * time.Hour)

		entry, ok := byDay[day]
		if !ok {
			byDay[day] = &models.ForecastEntry{
				Date:        day,
				TempMin:     item.Main.TempMin,
				TempMax:     item.Main.TempMax,
				Humidity:    item.Main.Humidity,
				WindSpeed:   item.Wind.Speed,
				Condition:   item.Weather[0].Main,
				Description: item.Weather[0].Description,
				Icon:        item.Weather[0].Icon,
			}
			continue
		}
		if item.Main.TempMin < entry.TempMin {
			entry.TempMin = item.Main.TempMin
		}
		if item.Main.TempMax > entry.TempMax {
			entry.TempMax = item.Main.TempMax
		}
	}

	days := make([]models.ForecastEntry, 0, len(byDay))
	for _, entry := range byDay {
		days = append(days, *entry)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })

	if len(days) > forecastWindowDays {
		days = days[:forecastWindowDays]
	}
	return days, nil
}

func (s *ClientOpenWeather) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
			s.logger.Println("failed to close response body:", err)
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("OpenWeather API error: status %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
