package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/NomadCrew/travel-timeline-backend/logger"
	"github.com/NomadCrew/travel-timeline-backend/store"
	"github.com/NomadCrew/travel-timeline-backend/types"
	"go.uber.org/zap"
)

const (
	healthCheckTimeout = 2 * time.Second
	slowPingThreshold  = 500 * time.Millisecond
)

type healthComponent struct {
	pinger store.Pinger
	// critical components take the whole service down when they fail;
	// others only degrade it.
	critical bool
}

type HealthService struct {
	mu         sync.RWMutex
	components map[string]healthComponent
	version    string
	startTime  time.Time
	log        *zap.SugaredLogger
}

func NewHealthService(version string) *HealthService {
	return &HealthService{
		components: make(map[string]healthComponent),
		version:    version,
		startTime:  time.Now(),
		log:        logger.GetLogger(),
	}
}

// Register adds a backing store to the health report under name.
func (h *HealthService) Register(name string, pinger store.Pinger, critical bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.components[name] = healthComponent{pinger: pinger, critical: critical}
}

// Components returns the registered component names in sorted order.
func (h *HealthService) Components() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.components))
	for name := range h.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	h.mu.RLock()
	registered := make(map[string]healthComponent, len(h.components))
	for name, c := range h.components {
		registered[name] = c
	}
	h.mu.RUnlock()

	components := make(map[string]types.HealthComponent, len(registered))
	overallStatus := types.HealthStatusUp

	for name, c := range registered {
		status := h.checkComponent(ctx, name, c.pinger)
		components[name] = status

		switch status.Status {
		case types.HealthStatusDown:
			if c.critical {
				overallStatus = types.HealthStatusDown
			} else if overallStatus != types.HealthStatusDown {
				overallStatus = types.HealthStatusDegraded
			}
		case types.HealthStatusDegraded:
			if overallStatus != types.HealthStatusDown {
				overallStatus = types.HealthStatusDegraded
			}
		}
	}

	return types.HealthCheck{
		Status:     overallStatus,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
	}
}

func (h *HealthService) checkComponent(ctx context.Context, name string, pinger store.Pinger) types.HealthComponent {
	pingCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	start := time.Now()
	err := pinger.Ping(pingCtx)
	latency := time.Since(start)

	if err != nil {
		h.log.Errorw("Health check failed", "component", name, "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: name + " connection failed",
			Latency: latency.String(),
		}
	}

	if latency > slowPingThreshold {
		return types.HealthComponent{
			Status:  types.HealthStatusDegraded,
			Details: name + " is responding slowly",
			Latency: latency.String(),
		}
	}

	return types.HealthComponent{
		Status:  types.HealthStatusUp,
		Latency: latency.String(),
	}
}
