package records

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nazarious-ucu/weather-hub-api/internal/models"
	"github.com/Nazarious-ucu/weather-hub-api/internal/repository"
	"github.com/Nazarious-ucu/weather-hub-api/internal/services/export"
	"github.com/Nazarious-ucu/weather-hub-api/internal/services/location"
	serviceWeather "github.com/Nazarious-ucu/weather-hub-api/internal/services/weather"
)

type recordsService interface {
	Capture(ctx context.Context, data models.CreateRecordData) (models.WeatherRecord, error)
	Get(ctx context.Context, id string) (models.WeatherRecord, error)
	List(ctx context.Context, filter repository.ListFilter) ([]models.WeatherRecord, error)
	Update(ctx context.Context, id string, data models.UpdateRecordData) (models.WeatherRecord, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (models.Stats, error)
}

type exporter interface {
	Render(format string, records []models.WeatherRecord) (export.File, error)
}

type Handler struct {
	Service  recordsService
	Exporter exporter
}

func NewHandler(svc recordsService, exp exporter) *Handler {
	return &Handler{Service: svc, Exporter: exp}
}

// Create
// @Summary Capture a weather record
// @Description Fetches current weather for the given location and stores it as a new record
// @Tags records
// @Accept json
// @Produce json
// @Param record body models.CreateRecordData true "Location to capture"
// @Success 201 {object} models.WeatherRecord
// @Failure 400
// @Failure 404
// @Failure 500
// @Failure 502
// @Router /records [post]
func (h *Handler) Create(c *gin.Context) {
	var data models.CreateRecordData
	if err := c.ShouldBindJSON(&data); err != nil {
		log.Printf("Failed to bind record data: %s", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	ctx := context.Background()

	rec, err := h.Service.Capture(ctx, data)
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
			log.Printf("Failed to capture record: %s", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// List
// @Summary List weather records
// @Description Returns stored records, optionally filtered by location substring and timestamp range
// @Tags records
// @Produce json
// @Param location query string false "Location name filter"
// @Param from query string false "Range start (RFC3339)"
// @Param to query string false "Range end (RFC3339)"
// @Success 200 {array} models.WeatherRecord
// @Failure 400
// @Failure 500
// @Router /records [get]
func (h *Handler) List(c *gin.Context) {
	filter, err := listFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := context.Background()

	recs, err := h.Service.List(ctx, filter)
	if err != nil {
		log.Printf("Failed to list records: %s", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, recs)
}

// Get
// @Summary Get a weather record
// @Tags records
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} models.WeatherRecord
// @Failure 404
// @Failure 500
// @Router /records/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	ctx := context.Background()

	rec, err := h.Service.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		log.Printf("Failed to get record: %s", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// Update
// @Summary Update a weather record
// @Description Updates the editable fields of a record; the captured weather data itself is immutable
// @Tags records
// @Accept json
// @Produce json
// @Param id path string true "Record id"
// @Param record body models.UpdateRecordData true "Fields to update"
// @Success 200 {object} models.WeatherRecord
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /records/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var data models.UpdateRecordData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	ctx := context.Background()

	rec, err := h.Service.Update(ctx, c.Param("id"), data)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		log.Printf("Failed to update record: %s", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// Delete
// @Summary Delete a weather record
// @Tags records
// @Param id path string true "Record id"
// @Success 204
// @Failure 404
// @Failure 500
// @Router /records/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	ctx := context.Background()

	err := h.Service.Delete(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		log.Printf("Failed to delete record: %s", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Export
// @Summary Export weather records
// @Description Renders stored records as a downloadable file
// @Tags records
// @Produce json
// @Param format query string true "Export format" Enums(json, csv, xlsx, pdf)
// @Param location query string false "Location name filter"
// @Param from query string false "Range start (RFC3339)"
// @Param to query string false "Range end (RFC3339)"
// @Success 200
// @Failure 400
// @Failure 500
// @Router /records/export [get]
func (h *Handler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", export.FormatJSON)

	filter, err := listFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := context.Background()

	recs, err := h.Service.List(ctx, filter)
	if err != nil {
		log.Printf("Failed to list records for export: %s", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	file, err := h.Exporter.Render(format, recs)
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to render export: %s", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// Stats
// @Summary Weather record statistics
// @Description Returns aggregate statistics over all stored records
// @Tags records
// @Produce json
// @Success 200 {object} models.Stats
// @Failure 500
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	ctx := context.Background()

	stats, err := h.Service.Stats(ctx)
	if err != nil {
		log.Printf("Failed to compute stats: %s", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func listFilter(c *gin.Context) (repository.ListFilter, error) {
	filter := repository.ListFilter{Location: c.Query("location")}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return repository.ListFilter{}, errors.New("invalid from parameter, expected RFC3339")
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return repository.ListFilter{}, errors.New("invalid to parameter, expected RFC3339")
		}
		filter.To = &t
	}
	return filter, nil
}
