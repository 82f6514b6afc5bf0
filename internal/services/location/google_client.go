package location

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/Nazarious-ucu/weather-hub-api/internal/models"
)

type googleResponse = struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type ClientGoogle struct {
	APIKey  string
	baseURL string
	client  HTTPClient
	logger  *log.Logger
}

func NewGoogleClient(apiKey, baseURL string, httpClient HTTPClient, logger *log.Logger) *ClientGoogle {
	return &ClientGoogle{APIKey: apiKey, baseURL: baseURL, client: httpClient, logger: logger}
}

func (c *ClientGoogle) Geocode(ctx context.Context, query string) (models.Location, error) {
	u := fmt.Sprintf("%s?address=%s&key=%s", c.baseURL, url.QueryEscape(query), c.APIKey)

	raw, err := c.get(ctx, u)
	if err != nil {
		return models.Location{}, err
	}

	if raw.Status != "OK" || len(raw.Results) == 0 {
		return models.Location{}, fmt.Errorf("google geocoding: no result for %q (status %s)", query, raw.Status)
	}

	result := raw.Results[0]
	return models.Location{
		Name:      result.FormattedAddress,
		Latitude:  result.Geometry.Location.Lat,
		Longitude: result.Geometry.Location.Lng,
	}, nil
}

func (c *ClientGoogle) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	u := fmt.Sprintf("%s?latlng=%f,%f&key=%s", c.baseURL, lat, lon, c.APIKey)

	raw, err := c.get(ctx, u)
	if err != nil {
		return "", err
	}

	if raw.Status != "OK" || len(raw.Results) == 0 {
		return "", fmt.Errorf("google reverse geocoding: no result (status %s)", raw.Status)
	}
	return raw.Results[0].FormattedAddress, nil
}

func (c *ClientGoogle) get(ctx context.Context, url string) (googleResponse, error) {
	var raw googleResponse

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return raw, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return raw, err
	}
	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
			c.logger.Println("failed to close response body:", err)
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return raw, fmt.Errorf("google geocoding API error: status %s", resp.Status)
	}

	err = json.NewDecoder(resp.Body).Decode(&raw)
	return raw, err
}
