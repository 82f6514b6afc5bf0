//go:build integration

package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weather-hub-api/internal/models"
)

// Without an OpenAI key the assistant must still answer from its
// rule-based fallback.
func TestAssistantChatFallback(t *testing.T) {
	resp, body := doJSON(t, http.MethodPost, testServerURL+"/api/assistant/chat",
		[]byte(`{"question": "What should I wear?", "location": "Kyiv"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var chat models.ChatResponse
	require.NoError(t, json.Unmarshal(body, &chat))

	assert.Equal(t, "fallback", chat.Source)
	assert.NotEmpty(t, chat.Answer)
	assert.Contains(t, chat.Answer, "Kyiv")
}

func TestAssistantChat_MissingQuestion(t *testing.T) {
	resp, _ := doJSON(t, http.MethodPost, testServerURL+"/api/assistant/chat",
		[]byte(`{"location": "Kyiv"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAssistantInsightsFallback(t *testing.T) {
	resp, body := doJSON(t, http.MethodGet,
		testServerURL+"/api/assistant/insights?location=Kyiv", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var insights models.ChatResponse
	require.NoError(t, json.Unmarshal(body, &insights))

	assert.Equal(t, "fallback", insights.Source)
	assert.Contains(t, insights.Answer, "Kyiv")
}
