//go:build unit

package records_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	handler "github.com/Nazarious-ucu/weather-hub-api/internal/handlers/records"
	"github.com/Nazarious-ucu/weather-hub-api/internal/models"
	"github.com/Nazarious-ucu/weather-hub-api/internal/repository"
	"github.com/Nazarious-ucu/weather-hub-api/internal/services/export"
)

type mockRecordsService struct {
	mock.Mock
}

func (m *mockRecordsService) Capture(
	ctx context.Context,
	data models.CreateRecordData,
) (models.WeatherRecord, error) {
	args := m.Called(ctx, data)

	rec, ok := args.Get(0).(models.WeatherRecord)
	if !ok {
		return models.WeatherRecord{}, args.Error(1)
	}
	return rec, args.Error(1)
}

func (m *mockRecordsService) Get(ctx context.Context, id string) (models.WeatherRecord, error) {
	args := m.Called(ctx, id)

	rec, ok := args.Get(0).(models.WeatherRecord)
	if !ok {
		return models.WeatherRecord{}, args.Error(1)
	}
	return rec, args.Error(1)
}

func (m *mockRecordsService) List(
	ctx context.Context,
	filter repository.ListFilter,
) ([]models.WeatherRecord, error) {
	args := m.Called(ctx, filter)

	recs, ok := args.Get(0).([]models.WeatherRecord)
	if !ok {
		return nil, args.Error(1)
	}
	return recs, args.Error(1)
}

func (m *mockRecordsService) Update(
	ctx context.Context,
	id string,
	data models.UpdateRecordData,
) (models.WeatherRecord, error) {
	args := m.Called(ctx, id, data)

	rec, ok := args.Get(0).(models.WeatherRecord)
	if !ok {
		return models.WeatherRecord{}, args.Error(1)
	}
	return rec, args.Error(1)
}

func (m *mockRecordsService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRecordsService) Stats(ctx context.Context) (models.Stats, error) {
	args := m.Called(ctx)

	stats, ok := args.Get(0).(models.Stats)
	if !ok {
		return models.Stats{}, args.Error(1)
	}
	return stats, args.Error(1)
}

type mockExporter struct {
	mock.Mock
}

func (m *mockExporter) Render(format string, records []models.WeatherRecord) (export.File, error) {
	args := m.Called(format, records)

	file, ok := args.Get(0).(export.File)
	if !ok {
		return export.File{}, args.Error(1)
	}
	return file, args.Error(1)
}

func TestCreate_Success(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	m := &mockRecordsService{}
	m.On("Capture", mock.Anything, models.CreateRecordData{Location: "Kyiv"}).
		Return(models.WeatherRecord{ID: "abc", LocationName: "Kyiv"}, nil).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	body := bytes.NewBufferString(`{"location":"Kyiv"}`)
	req, err := http.NewRequest(http.MethodPost, "/api/records", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	c.Request = req

	h := handler.NewHandler(m, &mockExporter{})
	h.Create(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Kyiv"`)
}

func TestCreate_MissingLocation(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	m := &mockRecordsService{}

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	body := bytes.NewBufferString(`{"notes":"no location"}`)
	req, err := http.NewRequest(http.MethodPost, "/api/records", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	c.Request = req

	h := handler.NewHandler(m, &mockExporter{})
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGet_NotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	m := &mockRecordsService{}
	m.On("Get", mock.Anything, "missing-id").
		Return(models.WeatherRecord{}, repository.ErrRecordNotFound).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	req, err := http.NewRequest(http.MethodGet, "/api/records/missing-id", nil)
	require.NoError(t, err)

	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing-id"}}

	h := handler.NewHandler(m, &mockExporter{})
	h.Get(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestList_InvalidFromParam(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	m := &mockRecordsService{}

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	req, err := http.NewRequest(http.MethodGet, "/api/records?from=yesterday", nil)
	require.NoError(t, err)

	c.Request = req

	h := handler.NewHandler(m, &mockExporter{})
	h.List(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDelete_Success(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	m := &mockRecordsService{}
	m.On("Delete", mock.Anything, "abc").Return(nil).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	req, err := http.NewRequest(http.MethodDelete, "/api/records/abc", nil)
	require.NoError(t, err)

	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	h := handler.NewHandler(m, &mockExporter{})
	h.Delete(c)
	// c.Status alone does not flush the header outside a running engine.
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUpdate_NotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	m := &mockRecordsService{}
	m.On("Update", mock.Anything, "missing-id", mock.Anything).
		Return(models.WeatherRecord{}, repository.ErrRecordNotFound).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	body := bytes.NewBufferString(`{"notes":"updated"}`)
	req, err := http.NewRequest(http.MethodPut, "/api/records/missing-id", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing-id"}}

	h := handler.NewHandler(m, &mockExporter{})
	h.Update(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExport_UnsupportedFormat(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	m := &mockRecordsService{}
	m.On("List", mock.Anything, mock.Anything).
		Return([]models.WeatherRecord{}, nil).Once()

	e := &mockExporter{}
	e.On("Render", "yaml", mock.Anything).
		Return(export.File{}, export.ErrUnsupportedFormat).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
		e.AssertExpectations(t)
	})

	req, err := http.NewRequest(http.MethodGet, "/api/records/export?format=yaml", nil)
	require.NoError(t, err)

	c.Request = req

	h := handler.NewHandler(m, e)
	h.Export(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExport_Success(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	m := &mockRecordsService{}
	m.On("List", mock.Anything, mock.Anything).
		Return([]models.WeatherRecord{{ID: "abc", LocationName: "Kyiv"}}, nil).Once()

	e := &mockExporter{}
	e.On("Render", "csv", mock.Anything).
		Return(export.File{
			Data:        []byte("id,location\nabc,Kyiv\n"),
			ContentType: "text/csv",
			Filename:    "weather_records.csv",
		}, nil).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
		e.AssertExpectations(t)
	})

	req, err := http.NewRequest(http.MethodGet, "/api/records/export?format=csv", nil)
	require.NoError(t, err)

	c.Request = req

	h := handler.NewHandler(m, e)
	h.Export(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "weather_records.csv")
}

func TestStats_Success(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	m := &mockRecordsService{}
	m.On("Stats", mock.Anything).
		Return(models.Stats{TotalRecords: 3, UniqueLocations: 2, AvgTemperature: 19.5}, nil).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	req, err := http.NewRequest(http.MethodGet, "/api/stats", nil)
	require.NoError(t, err)

	c.Request = req

	h := handler.NewHandler(m, &mockExporter{})
	h.Stats(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_records":3`)
}
