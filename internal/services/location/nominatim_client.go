package location

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Nazarious-ucu/weather-hub-api/internal/models"
)

const nominatimUserAgent = "weather-hub-api"

type nominatimResult = struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// ClientNominatim talks to the OpenStreetMap Nominatim service. It needs
// no API key, which makes it the default fallback geocoder.
type ClientNominatim struct {
	baseURL string
	client  HTTPClient
	logger  *log.Logger
}

func NewNominatimClient(baseURL string, httpClient HTTPClient, logger *log.Logger) *ClientNominatim {
	return &ClientNominatim{baseURL: baseURL, client: httpClient, logger: logger}
}

func (c *ClientNominatim) Geocode(ctx context.Context, query string) (models.Location, error) {
	u := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", c.baseURL, url.QueryEscape(query))

	var results []nominatimResult
	if err := c.get(ctx, u, &results); err != nil {
		return models.Location{}, err
	}
	if len(results) == 0 {
		return models.Location{}, fmt.Errorf("nominatim: no result for %q", query)
	}

	lat, errLat := strconv.ParseFloat(results[0].Lat, 64)
	lon, errLon := strconv.ParseFloat(results[0].Lon, 64)
	if errLat != nil || errLon != nil {
		return models.Location{}, fmt.Errorf("nominatim: malformed coordinates for %q", query)
	}

	return models.Location{
		Name:      results[0].DisplayName,
		Latitude:  lat,
		Longitude: lon,
	}, nil
}

func (c *ClientNominatim) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	u := fmt.Sprintf("%s/reverse?lat=%f&lon=%f&format=json", c.baseURL, lat, lon)

	var result nominatimResult
	if err := c.get(ctx, u, &result); err != nil {
		return "", err
	}
	if result.DisplayName == "" {
		return "", fmt.Errorf("nominatim: no reverse result for (%f, %f)", lat, lon)
	}
	return result.DisplayName, nil
}

func (c *ClientNominatim) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", nominatimUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
			c.logger.Println("failed to close response body:", err)
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("nominatim API error: status %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
