//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weather-hub-api/internal/models"
)

func doJSON(t *testing.T, method, url string, body []byte) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func(b io.ReadCloser) {
		err := b.Close()
		assert.NoError(t, err, "Failed to close response body")
	}(resp.Body)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestRecordLifecycle(t *testing.T) {
	require.NoError(t, resetTables(db))

	// capture
	resp, body := doJSON(t, http.MethodPost, testServerURL+"/api/records",
		[]byte(`{"location": "Kyiv", "notes": "integration capture"}`))
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var created models.WeatherRecord
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Kyiv, Ukraine", created.LocationName)
	assert.InDelta(t, 21.5, created.Current.Temperature, 0.001)
	assert.Equal(t, "integration capture", created.Notes)

	// read back
	resp, body = doJSON(t, http.MethodGet, testServerURL+"/api/records/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched models.WeatherRecord
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, created.ID, fetched.ID)

	// list
	resp, body = doJSON(t, http.MethodGet, testServerURL+"/api/records?location=Kyiv", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listed []models.WeatherRecord
	require.NoError(t, json.Unmarshal(body, &listed))
	require.Len(t, listed, 1)

	// update notes only
	resp, body = doJSON(t, http.MethodPut, testServerURL+"/api/records/"+created.ID,
		[]byte(`{"notes": "updated notes"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.WeatherRecord
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, "updated notes", updated.Notes)
	assert.Equal(t, created.LocationName, updated.LocationName)

	// delete
	resp, _ = doJSON(t, http.MethodDelete, testServerURL+"/api/records/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, testServerURL+"/api/records/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRecordStatsAndExport(t *testing.T) {
	require.NoError(t, resetTables(db))

	for i := 0; i < 2; i++ {
		resp, body := doJSON(t, http.MethodPost, testServerURL+"/api/records",
			[]byte(`{"location": "Kyiv"}`))
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	}

	resp, body := doJSON(t, http.MethodGet, testServerURL+"/api/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats models.Stats
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, 2, stats.TotalRecords)
	assert.Equal(t, 1, stats.UniqueLocations)
	assert.InDelta(t, 21.5, stats.AvgTemperature, 0.001)
	require.NotNil(t, stats.NewestRecord)

	// csv export carries both rows plus the header
	resp, body = doJSON(t, http.MethodGet, testServerURL+"/api/records/export?format=csv", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.Contains(t, string(body), "Kyiv, Ukraine")

	// unsupported format is rejected
	resp, _ = doJSON(t, http.MethodGet, testServerURL+"/api/records/export?format=yaml", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRecordCapture_UnknownLocation(t *testing.T) {
	require.NoError(t, resetTables(db))

	resp, _ := doJSON(t, http.MethodPost, testServerURL+"/api/records",
		[]byte(`{"location": "Nowhereville"}`))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
