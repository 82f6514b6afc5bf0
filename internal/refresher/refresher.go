package refresher

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/Nazarious-ucu/weather-hub-api/internal/models"
	"github.com/Nazarious-ucu/weather-hub-api/internal/repository"
)

type RecordServicer interface {
	List(ctx context.Context, filter repository.ListFilter) ([]models.WeatherRecord, error)
	Capture(ctx context.Context, data models.CreateRecordData) (models.WeatherRecord, error)
}

// Refresher periodically re-captures weather for every location that
// already has at least one stored record. With an empty cron spec it is
// a no-op.
type Refresher struct {
	Service RecordServicer
	Spec    string
	Logger  *log.Logger

	cron *cron.Cron
}

func NewRefresher(svc RecordServicer, spec string, logger *log.Logger) *Refresher {
	return &Refresher{
		Service: svc,
		Spec:    spec,
		Logger:  logger,
		cron:    cron.New(),
	}
}

func (r *Refresher) Start() error {
	if r.Spec == "" {
		r.Logger.Println("Weather refresh is disabled, no cron spec configured")
		return nil
	}

	if _, err := r.cron.AddFunc(r.Spec, func() {
		if err := r.RefreshAll(context.Background()); err != nil {
			r.Logger.Println("Weather refresh failed:", err)
		}
	}); err != nil {
		return err
	}

	r.cron.Start()
	r.Logger.Printf("Weather refresh scheduled with spec %q", r.Spec)
	return nil
}

func (r *Refresher) Stop() {
	if r.cron != nil {
		r.cron.Stop()
	}
}

// RefreshAll captures a fresh record for each distinct stored location.
func (r *Refresher) RefreshAll(ctx context.Context) error {
	recs, err := r.Service.List(ctx, repository.ListFilter{})
	if err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(recs))
	for _, rec := range recs {
		if _, ok := seen[rec.LocationName]; ok {
			continue
		}
		seen[rec.LocationName] = struct{}{}

		if _, err := r.Service.Capture(ctx, models.CreateRecordData{Location: rec.LocationName}); err != nil {
			r.Logger.Printf("Refresh failed for %q: %s", rec.LocationName, err)
		}
	}

	return nil
}
