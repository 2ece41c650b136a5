package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/NomadCrew/travel-timeline-backend/config"
	"github.com/NomadCrew/travel-timeline-backend/models/trip"
	"github.com/NomadCrew/travel-timeline-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func memoryConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Environment:    config.EnvDevelopment,
			Port:           "0",
			AllowedOrigins: []string{"*"},
			Version:        "test",
		},
		Store: config.StoreConfig{
			TripDriver:        config.DriverMemory,
			PreferencesDriver: config.DriverMemory,
		},
	}
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNewWithMemoryStores(t *testing.T) {
	a, err := New(context.Background(), memoryConfig())
	require.NoError(t, err)
	defer a.Close()

	w := get(t, a.Router, "/v1/trips")
	require.Equal(t, http.StatusOK, w.Code)
	var list types.TripListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 3, list.Total)

	w = get(t, a.Router, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	var health types.HealthCheck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, types.HealthStatusUp, health.Status)
	assert.Equal(t, "test", health.Version)
	assert.Empty(t, a.Health.Components())

	w = get(t, a.Router, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "timeline_http_requests_total")

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestNewWithSeedFileAndContinents(t *testing.T) {
	seedFile := filepath.Join(t.TempDir(), "trips.yaml")
	require.NoError(t, os.WriteFile(seedFile, []byte(`trips:
  - id: lima
    destination: Lima, Peru
    location: Miraflores
    coordinates: [-12.1211, -77.0297]
    dateRange: May 1 - May 9, 2023
    duration: 9 Days
    weather: {temp: 19, condition: cloudy, season: Autumn}
    expenses: []
    totalCost: 1500
    notes: Ceviche every day.
    tags: [Food]
    photos: []
`), 0o600))

	cfg := memoryConfig()
	cfg.Store.SeedFile = seedFile
	cfg.Metrics.Continents = []string{"Peru=South America"}

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()

	w := get(t, a.Router, "/v1/trips/lima")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var detailed trip.DetailedTrip
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detailed))
	assert.Equal(t, "South America", detailed.Facts.Continent)
	assert.Equal(t, types.BudgetLow, detailed.Facts.Budget)
}

func TestNewRejectsBadSeedFile(t *testing.T) {
	cfg := memoryConfig()
	cfg.Store.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")

	a, err := New(context.Background(), cfg)
	assert.Error(t, err)
	assert.Nil(t, a)
}
