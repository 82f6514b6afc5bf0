package assistant

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nazarious-ucu/weather-hub-api/internal/models"
	"github.com/Nazarious-ucu/weather-hub-api/internal/services/location"
)

type assistantService interface {
	Chat(ctx context.Context, question string, report *models.WeatherReport) (models.ChatResponse, error)
	Insights(ctx context.Context, report models.WeatherReport) (models.ChatResponse, error)
	Activities(ctx context.Context, report models.WeatherReport) (models.ChatResponse, error)
}

type weatherLookuper interface {
	Lookup(ctx context.Context, input string) (models.WeatherReport, error)
}

type Handler struct {
	Service assistantService
	Weather weatherLookuper
}

func NewHandler(svc assistantService, weather weatherLookuper) *Handler {
	return &Handler{Service: svc, Weather: weather}
}

// Chat
// @Summary Ask the weather assistant
// @Description Answers a free-text question, grounded in current weather for the optional location
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Question and optional location"
// @Success 200 {object} models.ChatResponse
// @Failure 400
// @Failure 500
// @Router /assistant/chat [post]
func (h *Handler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}
	ctx := context.Background()

	var report *models.WeatherReport
	if req.Location != "" {
		r, err := h.Weather.Lookup(ctx, req.Location)
		if err != nil {
			// answer without weather context rather than fail the chat
			log.Printf("Failed to look up %q for assistant: %s", req.Location, err)
		} else {
			report = &r
		}
	}

	resp, err := h.Service.Chat(ctx, req.Question, report)
	if err != nil {
		log.Printf("Assistant chat failed: %s", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Insights
// @Summary Weather insights for a location
// @Description Returns short practical insights about current conditions
// @Tags assistant
// @Produce json
// @Param location query string true "Location name or lat,lon"
// @Success 200 {object} models.ChatResponse
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /assistant/insights [get]
func (h *Handler) Insights(c *gin.Context) {
	h.answerForLocation(c, h.Service.Insights)
}

// Activities
// @Summary Activity suggestions for a location
// @Description Suggests activities that fit the current conditions
// @Tags assistant
// @Produce json
// @Param location query string true "Location name or lat,lon"
// @Success 200 {object} models.ChatResponse
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /assistant/activities [get]
func (h *Handler) Activities(c *gin.Context) {
	h.answerForLocation(c, h.Service.Activities)
}

func (h *Handler) answerForLocation(
	c *gin.Context,
	answer func(ctx context.Context, report models.WeatherReport) (models.ChatResponse, error),
) {
	input := c.Query("location")
	if input == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location query parameter is required"})
		return
	}
	ctx := context.Background()

	report, err := h.Weather.Lookup(ctx, input)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrEmptyInput),
			errors.Is(err, location.ErrInvalidCoordinates):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, location.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	resp, err := answer(ctx, report)
	if err != nil {
		log.Printf("Assistant request failed: %s", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
