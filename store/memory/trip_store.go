// Package memory provides in-process stores used when no database is configured.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/NomadCrew/travel-timeline-backend/store"
	"github.com/NomadCrew/travel-timeline-backend/types"
)

var _ store.TripStore = (*TripStore)(nil)

// TripStore keeps trips in a slice in insertion order.
type TripStore struct {
	mu    sync.RWMutex
	trips []types.Trip
	index map[string]int
}

// NewTripStore creates a store holding copies of seed.
func NewTripStore(seed []types.Trip) (*TripStore, error) {
	s := &TripStore{index: make(map[string]int, len(seed))}
	for _, trip := range seed {
		if err := s.CreateTrip(context.Background(), trip); err != nil {
			return nil, fmt.Errorf("failed to seed trip %s: %w", trip.ID, err)
		}
	}
	return s, nil
}

func (s *TripStore) ListTrips(ctx context.Context) ([]types.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trips := make([]types.Trip, 0, len(s.trips))
	for _, trip := range s.trips {
		trips = append(trips, trip.Clone())
	}
	return trips, nil
}

func (s *TripStore) GetTrip(ctx context.Context, id string) (*types.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	trip := s.trips[i].Clone()
	return &trip, nil
}

func (s *TripStore) CreateTrip(ctx context.Context, trip types.Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[trip.ID]; exists {
		return store.ErrConflict
	}
	s.index[trip.ID] = len(s.trips)
	s.trips = append(s.trips, trip.Clone())
	return nil
}

func (s *TripStore) CountTrips(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.trips), nil
}
