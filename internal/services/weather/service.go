package weather

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/Nazarious-ucu/weather-hub-api/internal/models"
)

// ErrAllProviders is returned when the whole provider chain is exhausted.
var ErrAllProviders = errors.New("all weather providers failed to fetch data")

type client interface {
	Fetch(ctx context.Context, loc models.Location) (models.WeatherReport, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type ServiceProvider struct {
	logger  *log.Logger
	clients []client
}

func NewService(logger *log.Logger, clients ...client) *ServiceProvider {
	return &ServiceProvider{clients: clients, logger: logger}
}

// GetByLocation asks each provider in order and returns the first
// successful report.
func (s *ServiceProvider) GetByLocation(
	ctx context.Context,
	loc models.Location,
) (models.WeatherReport, error) {
	for _, client := range s.clients {
		report, err := client.Fetch(ctx, loc)
		if err != nil {
			s.logger.Printf("%v", err)
			continue
		}
		return report, nil
	}
	return models.WeatherReport{}, ErrAllProviders
}
