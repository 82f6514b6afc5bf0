package location

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/Nazarious-ucu/weather-hub-api/internal/models"
)

var (
	ErrEmptyInput         = errors.New("location input is empty")
	ErrInvalidCoordinates = errors.New("coordinates out of range: lat -90..90, lon -180..180")
	ErrNotFound           = errors.New("location not found")
)

var coordinatePattern = regexp.MustCompile(`^(-?\d+\.?\d*),\s*(-?\d+\.?\d*)$`)

type geocoder interface {
	Geocode(ctx context.Context, query string) (models.Location, error)
	Reverse(ctx context.Context, lat, lon float64) (string, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Service resolves free-text or "lat,lon" input into a geocoded point.
// Geocoders are tried in order, first success wins.
type Service struct {
	logger    *log.Logger
	geocoders []geocoder
}

func NewService(logger *log.Logger, geocoders ...geocoder) *Service {
	return &Service{logger: logger, geocoders: geocoders}
}

func (s *Service) Resolve(ctx context.Context, input string) (models.Location, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return models.Location{}, ErrEmptyInput
	}

	if match := coordinatePattern.FindStringSubmatch(input); match != nil {
		lat, errLat := strconv.ParseFloat(match[1], 64)
		lon, errLon := strconv.ParseFloat(match[2], 64)
		if errLat != nil || errLon != nil {
			return models.Location{}, ErrInvalidCoordinates
		}

		loc := models.Location{Latitude: lat, Longitude: lon}
		if !loc.Valid() {
			return models.Location{}, ErrInvalidCoordinates
		}

		loc.Name = s.reverse(ctx, lat, lon)
		return loc, nil
	}

	for _, g := range s.geocoders {
		loc, err := g.Geocode(ctx, input)
		if err != nil {
			s.logger.Printf("geocoder failed for %q: %v", input, err)
			continue
		}
		return loc, nil
	}
	return models.Location{}, ErrNotFound
}

// reverse finds a display name for raw coordinates; a synthetic name is
// used when every geocoder fails.
func (s *Service) reverse(ctx context.Context, lat, lon float64) string {
	for _, g := range s.geocoders {
		name, err := g.Reverse(ctx, lat, lon)
		if err != nil {
			s.logger.Printf("reverse geocode failed for (%f, %f): %v", lat, lon, err)
			continue
		}
		return name
	}
	return fmt.Sprintf("Location (%.4f, %.4f)", lat, lon)
}
