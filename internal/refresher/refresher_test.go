package refresher_test

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nazarious-ucu/weather-hub-api/internal/models"
	"github.com/Nazarious-ucu/weather-hub-api/internal/refresher"
	"github.com/Nazarious-ucu/weather-hub-api/internal/repository"
)

type mockRecordService struct {
	recs       []models.WeatherRecord
	listErr    error
	captureErr error
	captured   []string
}

func (m *mockRecordService) List(
	_ context.Context,
	_ repository.ListFilter,
) ([]models.WeatherRecord, error) {
	return m.recs, m.listErr
}

func (m *mockRecordService) Capture(
	_ context.Context,
	data models.CreateRecordData,
) (models.WeatherRecord, error) {
	m.captured = append(m.captured, data.Location)
	return models.WeatherRecord{LocationName: data.Location}, m.captureErr
}

func testLogger() *log.Logger {
	return log.New(os.Stdout, "test: ", log.LstdFlags)
}

func TestRefreshAll_DeduplicatesLocations(t *testing.T) {
	m := &mockRecordService{
		recs: []models.WeatherRecord{
			{LocationName: "Kyiv"},
			{LocationName: "Lviv"},
			{LocationName: "Kyiv"},
		},
	}

	r := refresher.NewRefresher(m, "@hourly", testLogger())

	err := r.RefreshAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"Kyiv", "Lviv"}, m.captured)
}

func TestRefreshAll_ListError(t *testing.T) {
	m := &mockRecordService{listErr: errors.New("db down")}

	r := refresher.NewRefresher(m, "@hourly", testLogger())

	err := r.RefreshAll(context.Background())
	assert.Error(t, err)
	assert.Empty(t, m.captured)
}

func TestRefreshAll_ContinuesAfterCaptureError(t *testing.T) {
	m := &mockRecordService{
		recs: []models.WeatherRecord{
			{LocationName: "Kyiv"},
			{LocationName: "Lviv"},
		},
		captureErr: errors.New("provider down"),
	}

	r := refresher.NewRefresher(m, "@hourly", testLogger())

	err := r.RefreshAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"Kyiv", "Lviv"}, m.captured)
}

func TestStart_EmptySpecIsNoop(t *testing.T) {
	m := &mockRecordService{}

	r := refresher.NewRefresher(m, "", testLogger())
	defer r.Stop()

	assert.NoError(t, r.Start())
	assert.Empty(t, m.captured)
}

func TestStart_InvalidSpec(t *testing.T) {
	m := &mockRecordService{}

	r := refresher.NewRefresher(m, "not a cron spec", testLogger())
	defer r.Stop()

	assert.Error(t, r.Start())
}
