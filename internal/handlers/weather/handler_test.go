//go:build unit

package weather_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weather-hub-api/internal/handlers/weather"
	"github.com/Nazarious-ucu/weather-hub-api/internal/models"
	"github.com/Nazarious-ucu/weather-hub-api/internal/services/location"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Lookup(ctx context.Context, input string) (models.WeatherReport, error) {
	args := m.Called(ctx, input)

	report, ok := args.Get(0).(models.WeatherReport)
	if !ok {
		return models.WeatherReport{}, args.Error(1)
	}
	return report, args.Error(1)
}

func TestGetWeather_NoLocation(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	m := &mockService{}

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	req, err := http.NewRequest(http.MethodGet, "/api/weather", nil)
	require.NoError(t, err)

	c.Request = req

	h := weather.NewHandler(m)
	h.GetWeather(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"location query parameter is required"}`, rec.Body.String())
}

func TestGetWeather_Success(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	m := &mockService{}
	m.On("Lookup", mock.Anything, "Kyiv").
		Return(models.WeatherReport{
			Location: models.Location{Name: "Kyiv", Latitude: 50.45, Longitude: 30.52},
			Current:  models.CurrentWeather{Temperature: 21.5, Condition: "Clear"},
			Source:   "openweather",
		}, nil).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	req, err := http.NewRequest(http.MethodGet, "/api/weather?location=Kyiv", nil)
	require.NoError(t, err)

	c.Request = req

	h := weather.NewHandler(m)
	h.GetWeather(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Kyiv"`)
	assert.Contains(t, rec.Body.String(), `"Clear"`)
}

func TestGetWeather_NotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	m := &mockService{}
	m.On("Lookup", mock.Anything, "Nowhereville").
		Return(models.WeatherReport{}, location.ErrNotFound).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	req, err := http.NewRequest(http.MethodGet, "/api/weather?location=Nowhereville", nil)
	require.NoError(t, err)

	c.Request = req

	h := weather.NewHandler(m)
	h.GetWeather(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetWeather_ServiceError(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	m := &mockService{}
	m.On("Lookup", mock.Anything, mock.Anything).
		Return(models.WeatherReport{}, errors.New("service unavailable")).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	req, err := http.NewRequest(http.MethodGet, "/api/weather?location=Kyiv", nil)
	require.NoError(t, err)

	c.Request = req

	h := weather.NewHandler(m)
	h.GetWeather(c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetWeather_InvalidCoordinates(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	m := &mockService{}
	m.On("Lookup", mock.Anything, "95.0,30.0").
		Return(models.WeatherReport{}, location.ErrInvalidCoordinates).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	req, err := http.NewRequest(http.MethodGet, "/api/weather?location=95.0,30.0", nil)
	require.NoError(t, err)

	c.Request = req

	h := weather.NewHandler(m)
	h.GetWeather(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
