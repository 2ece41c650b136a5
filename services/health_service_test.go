package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NomadCrew/travel-timeline-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHealthService(t *testing.T) {
	service := NewHealthService("1.0.0")

	assert.NotNil(t, service)
	assert.Equal(t, "1.0.0", service.version)
	assert.NotNil(t, service.log)
	assert.True(t, time.Since(service.startTime) < time.Second)
	assert.Empty(t, service.Components())
}

func TestHealthService_CheckHealth(t *testing.T) {
	tests := []struct {
		name           string
		trips          fakePinger
		preferences    fakePinger
		expectedStatus types.HealthStatus
		expectedComps  map[string]types.HealthStatus
	}{
		{
			name:           "All components healthy",
			expectedStatus: types.HealthStatusUp,
			expectedComps: map[string]types.HealthStatus{
				"trips":       types.HealthStatusUp,
				"preferences": types.HealthStatusUp,
			},
		},
		{
			name:           "Trip store down",
			trips:          fakePinger{err: errors.New("connection refused")},
			expectedStatus: types.HealthStatusDown,
			expectedComps: map[string]types.HealthStatus{
				"trips":       types.HealthStatusDown,
				"preferences": types.HealthStatusUp,
			},
		},
		{
			name:           "Preference store down only degrades",
			preferences:    fakePinger{err: errors.New("redis connection failed")},
			expectedStatus: types.HealthStatusDegraded,
			expectedComps: map[string]types.HealthStatus{
				"trips":       types.HealthStatusUp,
				"preferences": types.HealthStatusDown,
			},
		},
		{
			name:           "Both down",
			trips:          fakePinger{err: errors.New("db error")},
			preferences:    fakePinger{err: errors.New("redis error")},
			expectedStatus: types.HealthStatusDown,
			expectedComps: map[string]types.HealthStatus{
				"trips":       types.HealthStatusDown,
				"preferences": types.HealthStatusDown,
			},
		},
		{
			name:           "Slow trip store",
			trips:          fakePinger{delay: slowPingThreshold + 100*time.Millisecond},
			expectedStatus: types.HealthStatusDegraded,
			expectedComps: map[string]types.HealthStatus{
				"trips":       types.HealthStatusDegraded,
				"preferences": types.HealthStatusUp,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewHealthService("2.0.0")
			service.Register("trips", tt.trips, true)
			service.Register("preferences", tt.preferences, false)

			health := service.CheckHealth(context.Background())

			assert.Equal(t, tt.expectedStatus, health.Status)
			assert.Equal(t, "2.0.0", health.Version)
			assert.NotEmpty(t, health.Timestamp)
			assert.NotEmpty(t, health.Uptime)
			require.Len(t, health.Components, len(tt.expectedComps))
			for name, status := range tt.expectedComps {
				assert.Equal(t, status, health.Components[name].Status, name)
			}
		})
	}
}

func TestHealthService_NoComponents(t *testing.T) {
	health := NewHealthService("dev").CheckHealth(context.Background())
	assert.Equal(t, types.HealthStatusUp, health.Status)
	assert.Empty(t, health.Components)
}

func TestHealthService_Components(t *testing.T) {
	service := NewHealthService("dev")
	service.Register("trips", fakePinger{}, true)
	service.Register("preferences", fakePinger{}, false)
	assert.Equal(t, []string{"preferences", "trips"}, service.Components())
}
