package decorators

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Nazarious-ucu/weather-hub-api/internal/models"
)

type weatherGetterService interface {
	GetByLocation(ctx context.Context, loc models.Location) (models.WeatherReport, error)
}

type cacheClient[T any] interface {
	Set(ctx context.Context, key string, value T, expiration time.Duration) error
	Get(ctx context.Context, key string, returnValue *T) error
}

type CachedService struct {
	inner    weatherGetterService
	cache    cacheClient[models.WeatherReport]
	logger   *log.Logger
	liveTime time.Duration
}

func NewCachedService(
	inner weatherGetterService,
	cache cacheClient[models.WeatherReport],
	logger *log.Logger,
	liveTime time.Duration,
) *CachedService {
	return &CachedService{inner: inner, cache: cache, logger: logger, liveTime: liveTime}
}

func (s *CachedService) GetByLocation(
	ctx context.Context,
	loc models.Location,
) (models.WeatherReport, error) {
	key := fmt.Sprintf("weather:%.4f:%.4f", loc.Latitude, loc.Longitude)
	var report models.WeatherReport

	if err := s.cache.Get(ctx, key, &report); err == nil {
		s.logger.Printf("Cache hit for %s", key)
		// Name resolution may differ between lookups for the same point.
		report.Location = loc
		return report, nil
	}

	s.logger.Printf("Cache miss for %s", key)
	report, err := s.inner.GetByLocation(ctx, loc)
	if err != nil {
		return models.WeatherReport{}, err
	}

	if err := s.cache.Set(ctx, key, report, s.liveTime); err != nil {
		s.logger.Printf("Cache error for %s", key)
	}

	return report, nil
}
