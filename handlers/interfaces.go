package handlers

import (
	"context"

	"github.com/NomadCrew/travel-timeline-backend/models/trip"
	"github.com/NomadCrew/travel-timeline-backend/pkg/tripmetrics"
	"github.com/NomadCrew/travel-timeline-backend/types"
)

// TripServiceInterface is what the trip handlers need from the trip service.
type TripServiceInterface interface {
	ListTrips(ctx context.Context) ([]types.Trip, error)
	GetTrip(ctx context.Context, id string) (*trip.DetailedTrip, error)
	CreateTrip(ctx context.Context, form trip.AddTripForm) (*types.Trip, error)
	Timeline(ctx context.Context, prefs types.Preferences, compareIDs []string) (*trip.Timeline, error)
	Stats(ctx context.Context) (*trip.Stats, error)
	Insights(ctx context.Context) (*tripmetrics.TripInsights, error)
	Compare(ctx context.Context, ids []string) ([]trip.ComparedTrip, error)
}

// PreferenceServiceInterface loads and saves the timeline preferences.
type PreferenceServiceInterface interface {
	Load(ctx context.Context) types.Preferences
	Save(ctx context.Context, prefs types.Preferences) error
}

// HealthServiceInterface reports the health of the backing stores.
type HealthServiceInterface interface {
	CheckHealth(ctx context.Context) types.HealthCheck
}
