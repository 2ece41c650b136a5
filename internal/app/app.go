// Package app wires configuration, stores, services and the HTTP router together.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/NomadCrew/travel-timeline-backend/config"
	"github.com/NomadCrew/travel-timeline-backend/db"
	"github.com/NomadCrew/travel-timeline-backend/db/seed"
	"github.com/NomadCrew/travel-timeline-backend/handlers"
	"github.com/NomadCrew/travel-timeline-backend/logger"
	"github.com/NomadCrew/travel-timeline-backend/pkg/tripmetrics"
	"github.com/NomadCrew/travel-timeline-backend/router"
	"github.com/NomadCrew/travel-timeline-backend/services"
	"github.com/NomadCrew/travel-timeline-backend/store"
	"github.com/NomadCrew/travel-timeline-backend/store/memory"
	"github.com/NomadCrew/travel-timeline-backend/store/postgres"
	redisstore "github.com/NomadCrew/travel-timeline-backend/store/redis"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const (
	redisConnectAttempts = 3
	redisConnectDelay    = time.Second
)

// App is a fully wired service ready to be served.
type App struct {
	Config      *config.Config
	Router      *gin.Engine
	Trips       *services.TripService
	Preferences *services.PreferenceService
	Health      *services.HealthService

	closers []func()
}

// New opens the configured stores, seeds the trip collection when it is empty
// and builds the router.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg}

	tripStore, err := a.openTripStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	preferenceStore, err := a.openPreferenceStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	continents := tripmetrics.DefaultContinents().With(tripmetrics.ParseContinentPairs(cfg.Metrics.Continents))

	a.Trips = services.NewTripService(tripStore, continents)
	a.Preferences = services.NewPreferenceService(preferenceStore)
	a.Health = services.NewHealthService(cfg.Server.Version)
	if pinger, ok := tripStore.(store.Pinger); ok {
		a.Health.Register("trips", pinger, true)
	}
	if pinger, ok := preferenceStore.(store.Pinger); ok {
		a.Health.Register("preferences", pinger, false)
	}

	a.Router = router.SetupRouter(router.Dependencies{
		Config:          cfg,
		TripHandler:     handlers.NewTripHandler(a.Trips),
		TimelineHandler: handlers.NewTimelineHandler(a.Trips, a.Preferences),
		HealthHandler:   handlers.NewHealthHandler(a.Health),
	})

	return a, nil
}

// Close releases every connection opened by New, in reverse order.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) openTripStore(ctx context.Context) (store.TripStore, error) {
	log := logger.GetLogger()
	cfg := a.Config

	trips, err := seed.Load(cfg.Store.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed trips: %w", err)
	}

	switch cfg.Store.TripDriver {
	case config.DriverPostgres:
		if cfg.Store.RunMigrations {
			if err := db.RunMigrations(cfg.Database.URL()); err != nil {
				return nil, fmt.Errorf("failed to run migrations: %w", err)
			}
		}

		poolConfig, err := config.ConfigurePostgresPool(&cfg.Database)
		if err != nil {
			return nil, err
		}
		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.closers = append(a.closers, pool.Close)

		if err := pool.Ping(ctx); err != nil {
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}

		s := postgres.NewPgTripStore(pool)
		if _, err := seed.Apply(ctx, s, trips); err != nil {
			return nil, err
		}
		log.Infow("Using PostgreSQL trip store", "host", cfg.Database.Host, "database", cfg.Database.Name)
		return s, nil

	default:
		s, err := memory.NewTripStore(trips)
		if err != nil {
			return nil, err
		}
		log.Infow("Using in-memory trip store", "trips", len(trips))
		return s, nil
	}
}

func (a *App) openPreferenceStore(ctx context.Context) (store.PreferenceStore, error) {
	log := logger.GetLogger()
	cfg := a.Config

	switch cfg.Store.PreferencesDriver {
	case config.DriverRedis:
		client := redis.NewClient(config.ConfigureRedisOptions(&cfg.Redis))
		a.closers = append(a.closers, func() {
			if err := client.Close(); err != nil {
				log.Warnw("Failed to close Redis client", "error", err)
			}
		})

		// Preferences fall back to defaults while Redis is unreachable,
		// so a failed ping does not stop startup.
		if err := config.TestRedisConnection(ctx, client, redisConnectAttempts, redisConnectDelay); err != nil {
			log.Warnw("Redis is not reachable, preferences will use defaults until it recovers", "error", err)
		}
		log.Infow("Using Redis preference store", "address", cfg.Redis.Address)
		return redisstore.NewPreferenceStore(client), nil

	default:
		log.Info("Using in-memory preference store")
		return memory.NewPreferenceStore(), nil
	}
}
