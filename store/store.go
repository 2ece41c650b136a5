package store

import (
	"context"

	"github.com/NomadCrew/travel-timeline-backend/types"
)

// TripStore holds the trip collection. Trips come back in insertion order,
// which is the order the timeline renders them in.
type TripStore interface {
	ListTrips(ctx context.Context) ([]types.Trip, error)
	GetTrip(ctx context.Context, id string) (*types.Trip, error)
	CreateTrip(ctx context.Context, trip types.Trip) error
	CountTrips(ctx context.Context) (int, error)
}

// PreferenceStore is a string key/value store for serialized preferences.
// found is false with a nil error when the key has never been written.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (raw []byte, found bool, err error)
	Set(ctx context.Context, key string, raw []byte) error
	Delete(ctx context.Context, key string) error
}

// Pinger is implemented by stores backed by a remote service.
type Pinger interface {
	Ping(ctx context.Context) error
}
