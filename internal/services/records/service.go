package records

import (
	"context"
	"log"
	"time"

	"github.com/Nazarious-ucu/weather-hub-api/internal/models"
	"github.com/Nazarious-ucu/weather-hub-api/internal/repository"
)

type weatherGetter interface {
	GetByLocation(ctx context.Context, loc models.Location) (models.WeatherReport, error)
}

type locationResolver interface {
	Resolve(ctx context.Context, input string) (models.Location, error)
}

type recordRepository interface {
	Create(ctx context.Context, rec *models.WeatherRecord) error
	GetByID(ctx context.Context, id string) (models.WeatherRecord, error)
	List(ctx context.Context, filter repository.ListFilter) ([]models.WeatherRecord, error)
	Update(ctx context.Context, id string, data models.UpdateRecordData) (models.WeatherRecord, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (models.Stats, error)
}

// Service owns the weather record lifecycle: a record is only created
// for a location that resolved and returned a weather report.
type Service struct {
	repo      recordRepository
	weather   weatherGetter
	locations locationResolver
	logger    *log.Logger
}

func NewService(
	repo recordRepository,
	weather weatherGetter,
	locations locationResolver,
	logger *log.Logger,
) *Service {
	return &Service{repo: repo, weather: weather, locations: locations, logger: logger}
}

// Lookup resolves the input and fetches a weather report without storing it.
func (s *Service) Lookup(ctx context.Context, input string) (models.WeatherReport, error) {
	loc, err := s.locations.Resolve(ctx, input)
	if err != nil {
		return models.WeatherReport{}, err
	}
	return s.weather.GetByLocation(ctx, loc)
}

// Capture looks up the current weather for the given location and stores
// it as a new record.
func (s *Service) Capture(ctx context.Context, data models.CreateRecordData) (models.WeatherRecord, error) {
	loc, err := s.locations.Resolve(ctx, data.Location)
	if err != nil {
		return models.WeatherRecord{}, err
	}

	report, err := s.weather.GetByLocation(ctx, loc)
	if err != nil {
		return models.WeatherRecord{}, err
	}

	rec := models.WeatherRecord{
		LocationName: loc.Name,
		Latitude:     loc.Latitude,
		Longitude:    loc.Longitude,
		Timestamp:    time.Now().UTC(),
		Current:      report.Current,
		Forecast:     report.Forecast,
		Notes:        data.Notes,
	}

	if err := s.repo.Create(ctx, &rec); err != nil {
		return models.WeatherRecord{}, err
	}

	s.logger.Printf("captured weather record %s for %q", rec.ID, rec.LocationName)
	return rec, nil
}

func (s *Service) Get(ctx context.Context, id string) (models.WeatherRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter repository.ListFilter) ([]models.WeatherRecord, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	data models.UpdateRecordData,
) (models.WeatherRecord, error) {
	return s.repo.Update(ctx, id, data)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Stats(ctx context.Context) (models.Stats, error) {
	return s.repo.Stats(ctx)
}
