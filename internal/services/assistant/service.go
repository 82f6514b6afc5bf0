package assistant

import (
	"context"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Nazarious-ucu/weather-hub-api/internal/models"
)

const (
	maxAnswerTokens = 400
	temperature     = 0.7

	SourceOpenAI   = "openai"
	SourceFallback = "fallback"
)

const systemPromptFormat = `You are a helpful weather assistant. You have access to current, real weather data.

Current weather information:
%s

Instructions:
- Use the actual weather data provided to give specific, helpful advice
- Be conversational and helpful
- Reference the real temperature, conditions, and location when relevant
- Give practical recommendations based on the actual conditions
- If no weather data is provided, let the user know you need weather data for specific advice
- Keep responses concise but helpful`

type chatCompleter interface {
	CreateChatCompletion(
		ctx context.Context,
		request openai.ChatCompletionRequest,
	) (openai.ChatCompletionResponse, error)
}

// Service answers weather questions. With an OpenAI key configured it
// forwards the question plus weather context to the chat completions API;
// without one it falls back to rule-based advice.
type Service struct {
	client chatCompleter
	model  string
	logger *log.Logger
}

func NewService(apiKey, model string, logger *log.Logger) *Service {
	s := &Service{model: model, logger: logger}
	if apiKey != "" {
		s.client = openai.NewClient(apiKey)
	}
	return s
}

// NewServiceWithClient is used by tests to inject a fake completer.
func NewServiceWithClient(client chatCompleter, model string, logger *log.Logger) *Service {
	return &Service{client: client, model: model, logger: logger}
}

// Chat is stateless per call: the only context the model sees is the
// question and the report passed in.
func (s *Service) Chat(
	ctx context.Context,
	question string,
	report *models.WeatherReport,
) (models.ChatResponse, error) {
	if s.client == nil {
		return models.ChatResponse{
			Answer: fallbackAnswer(question, report),
			Source: SourceFallback,
		}, nil
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		MaxTokens:   maxAnswerTokens,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(systemPromptFormat, weatherContext(report)),
			},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
	})
	if err != nil {
		return models.ChatResponse{}, fmt.Errorf("assistant request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return models.ChatResponse{}, fmt.Errorf("assistant returned no choices")
	}

	return models.ChatResponse{
		Answer: strings.TrimSpace(resp.Choices[0].Message.Content),
		Source: SourceOpenAI,
	}, nil
}

// Insights produces a short read on the given conditions.
func (s *Service) Insights(ctx context.Context, report models.WeatherReport) (models.ChatResponse, error) {
	if s.client == nil {
		return models.ChatResponse{
			Answer: fallbackInsights(report),
			Source: SourceFallback,
		}, nil
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		MaxTokens:   150,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "Provide 2-3 brief weather insights based on the data provided. Be concise and practical.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: "Give insights about this weather: " + weatherContext(&report),
			},
		},
	})
	if err != nil {
		s.logger.Printf("insights request failed, using fallback: %v", err)
		return models.ChatResponse{
			Answer: fallbackInsights(report),
			Source: SourceFallback,
		}, nil
	}
	if len(resp.Choices) == 0 {
		return models.ChatResponse{
			Answer: fallbackInsights(report),
			Source: SourceFallback,
		}, nil
	}

	return models.ChatResponse{
		Answer: strings.TrimSpace(resp.Choices[0].Message.Content),
		Source: SourceOpenAI,
	}, nil
}

// Activities suggests things to do in the given conditions.
func (s *Service) Activities(ctx context.Context, report models.WeatherReport) (models.ChatResponse, error) {
	if s.client == nil {
		return models.ChatResponse{
			Answer: fallbackActivities(report),
			Source: SourceFallback,
		}, nil
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		MaxTokens:   150,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "Suggest 3 activities that fit the weather described. Be concise and practical.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: "Suggest activities for this weather: " + weatherContext(&report),
			},
		},
	})
	if err != nil || len(resp.Choices) == 0 {
		if err != nil {
			s.logger.Printf("activities request failed, using fallback: %v", err)
		}
		return models.ChatResponse{
			Answer: fallbackActivities(report),
			Source: SourceFallback,
		}, nil
	}

	return models.ChatResponse{
		Answer: strings.TrimSpace(resp.Choices[0].Message.Content),
		Source: SourceOpenAI,
	}, nil
}

// weatherContext renders the report the way the model prompt expects it.
func weatherContext(report *models.WeatherReport) string {
	if report == nil {
		return "No current weather data available."
	}

	var b strings.Builder
	cur := report.Current
	fmt.Fprintf(&b, "CURRENT WEATHER DATA for %s:\n", report.Location.Name)
	fmt.Fprintf(&b, "- Temperature: %.1f°C (feels like %.1f°C)\n", cur.Temperature, cur.FeelsLike)
	fmt.Fprintf(&b, "- Condition: %s - %s\n", cur.Condition, cur.Description)
	fmt.Fprintf(&b, "- Humidity: %d%%\n", cur.Humidity)
	fmt.Fprintf(&b, "- Wind: %.1f m/s\n", cur.WindSpeed)
	fmt.Fprintf(&b, "- Pressure: %d hPa\n", cur.Pressure)
	fmt.Fprintf(&b, "- High/Low: %.1f°C / %.1f°C\n", cur.TempMax, cur.TempMin)

	if len(report.Forecast) > 0 {
		b.WriteString("\nUPCOMING FORECAST:\n")
		for _, entry := range report.Forecast {
			fmt.Fprintf(&b, "- %s: %.1f°C / %.1f°C, %s\n",
				entry.Date.Format("01/02"), entry.TempMax, entry.TempMin, entry.Condition)
		}
	}
	return b.String()
}
