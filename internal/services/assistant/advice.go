package assistant

import (
	"fmt"
	"strings"

	"github.com/Nazarious-ucu/weather-hub-api/internal/models"
)

// Rule-based answers for installations without an OpenAI key.

func comfortLevel(c models.CurrentWeather) string {
	switch {
	case c.Temperature < 0:
		return "freezing"
	case c.Temperature < 10:
		return "cold"
	case c.Temperature < 18:
		return "cool"
	case c.Temperature < 26:
		return "comfortable"
	case c.Temperature < 32:
		return "warm"
	default:
		return "hot"
	}
}

func windDescription(speed float64) string {
	switch {
	case speed < 0.5:
		return "calm"
	case speed < 3.3:
		return "light breeze"
	case speed < 8.0:
		return "moderate wind"
	case speed < 13.8:
		return "strong wind"
	default:
		return "very strong wind"
	}
}

func clothingAdvice(c models.CurrentWeather) string {
	var advice []string
	switch {
	case c.Temperature < 0:
		advice = append(advice, "wear a heavy winter coat, gloves and a hat")
	case c.Temperature < 10:
		advice = append(advice, "wear a warm jacket")
	case c.Temperature < 18:
		advice = append(advice, "a light jacket or sweater should do")
	case c.Temperature < 26:
		advice = append(advice, "light clothing is fine")
	default:
		advice = append(advice, "dress light and stay hydrated")
	}

	cond := strings.ToLower(c.Condition)
	if strings.Contains(cond, "rain") || strings.Contains(cond, "drizzle") ||
		strings.Contains(cond, "thunderstorm") {
		advice = append(advice, "take an umbrella")
	}
	if strings.Contains(cond, "snow") {
		advice = append(advice, "wear waterproof boots")
	}
	if c.WindSpeed >= 8.0 {
		advice = append(advice, "expect "+windDescription(c.WindSpeed))
	}
	return strings.Join(advice, "; ")
}

func activitySuggestions(c models.CurrentWeather) []string {
	cond := strings.ToLower(c.Condition)

	badOutside := strings.Contains(cond, "rain") ||
		strings.Contains(cond, "thunderstorm") ||
		strings.Contains(cond, "snow") ||
		c.Temperature < 0 || c.Temperature > 35 || c.WindSpeed >= 13.8

	if badOutside {
		return []string{
			"visit a museum or gallery",
			"catch up on a movie or a book",
			"try an indoor workout",
		}
	}
	if c.Temperature >= 18 && c.Temperature < 28 {
		return []string{
			"go for a walk or a run",
			"have a picnic in the park",
			"ride a bike",
		}
	}
	return []string{
		"take a short walk",
		"sit outside at a cafe",
		"do some light gardening",
	}
}

func fallbackAnswer(question string, report *models.WeatherReport) string {
	if report == nil {
		return "I need current weather data to give specific advice. " +
			"Try asking about a location first."
	}

	c := report.Current
	q := strings.ToLower(question)

	var b strings.Builder
	fmt.Fprintf(&b, "It's %.1f°C and %s in %s (%s conditions, %s). ",
		c.Temperature, strings.ToLower(c.Description), report.Location.Name,
		comfortLevel(c), windDescription(c.WindSpeed))

	switch {
	case strings.Contains(q, "wear") || strings.Contains(q, "cloth") ||
		strings.Contains(q, "dress"):
		fmt.Fprintf(&b, "Suggestion: %s.", clothingAdvice(c))
	case strings.Contains(q, "activit") || strings.Contains(q, "do today") ||
		strings.Contains(q, "outside") || strings.Contains(q, "outdoor"):
		fmt.Fprintf(&b, "Some ideas: %s.", strings.Join(activitySuggestions(c), ", "))
	case strings.Contains(q, "umbrella") || strings.Contains(q, "rain"):
		cond := strings.ToLower(c.Condition)
		if strings.Contains(cond, "rain") || strings.Contains(cond, "drizzle") ||
			strings.Contains(cond, "thunderstorm") {
			b.WriteString("Yes, take an umbrella.")
		} else {
			b.WriteString("No umbrella needed right now.")
		}
	default:
		fmt.Fprintf(&b, "Suggestion: %s.", clothingAdvice(c))
	}
	return b.String()
}

func fallbackActivities(report models.WeatherReport) string {
	c := report.Current
	return fmt.Sprintf("With %s conditions at %.1f°C in %s, you could: %s.",
		comfortLevel(c), c.Temperature, report.Location.Name,
		strings.Join(activitySuggestions(c), ", "))
}

func fallbackInsights(report models.WeatherReport) string {
	c := report.Current
	lines := []string{
		fmt.Sprintf("Conditions in %s are %s at %.1f°C (feels like %.1f°C).",
			report.Location.Name, comfortLevel(c), c.Temperature, c.FeelsLike),
		fmt.Sprintf("Wind is %s at %.1f m/s with %d%% humidity.",
			windDescription(c.WindSpeed), c.WindSpeed, c.Humidity),
	}
	if len(report.Forecast) > 0 {
		next := report.Forecast[0]
		lines = append(lines, fmt.Sprintf("Next day outlook: %.1f°C to %.1f°C, %s.",
			next.TempMin, next.TempMax, strings.ToLower(next.Condition)))
	}
	return strings.Join(lines, " ")
}
