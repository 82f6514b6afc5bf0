package weather

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nazarious-ucu/weather-hub-api/internal/models"
	"github.com/Nazarious-ucu/weather-hub-api/internal/services/location"
	serviceWeather "github.com/Nazarious-ucu/weather-hub-api/internal/services/weather"
)

type weatherLookuper interface {
	Lookup(ctx context.Context, input string) (models.WeatherReport, error)
}

type Handler struct {
	Service weatherLookuper
}

func NewHandler(svc weatherLookuper) *Handler {
	return &Handler{Service: svc}
}

// GetWeather
// @Summary Get current weather
// @Description Returns current weather and a short forecast for a location given as a name or "lat,lon" coordinates
// @Tags weather
// @Accept json
// @Produce json
// @Param location query string true "Location name or lat,lon"
// @Success 200 {object} models.WeatherReport
// @Failure 400
// @Failure 404
// @Failure 502
// @Router /weather [get]
func (h *Handler) GetWeather(c *gin.Context) {
	input := c.Query("location")
	if input == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location query parameter is required"})
		return
	}
	ctx := context.Background()

	report, err := h.Service.Lookup(ctx, input)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrEmptyInput),
			errors.Is(err, location.ErrInvalidCoordinates):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, location.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, serviceWeather.ErrAllProviders):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}
