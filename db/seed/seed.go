// Package seed loads the initial trip collection from YAML.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/NomadCrew/travel-timeline-backend/logger"
	"github.com/NomadCrew/travel-timeline-backend/models/trip/validation"
	"github.com/NomadCrew/travel-timeline-backend/store"
	"github.com/NomadCrew/travel-timeline-backend/types"
	"gopkg.in/yaml.v3"
)

//go:embed trips.yaml
var defaultSeed []byte

type seedFile struct {
	Trips []types.Trip `yaml:"trips"`
}

// Default returns the built-in trips.
func Default() ([]types.Trip, error) {
	return Parse(defaultSeed)
}

// Load reads trips from path, or the built-in trips when path is empty.
func Load(path string) ([]types.Trip, error) {
	if path == "" {
		return Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	trips, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return trips, nil
}

// Parse decodes and validates a seed document. Unknown keys are rejected.
func Parse(raw []byte) ([]types.Trip, error) {
	var file seedFile
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode seed trips: %w", err)
	}

	if err := validation.ValidateCollection(file.Trips); err != nil {
		return nil, err
	}
	return file.Trips, nil
}

// Apply inserts trips into s when s is empty and reports how many were written.
func Apply(ctx context.Context, s store.TripStore, trips []types.Trip) (int, error) {
	log := logger.GetLogger()

	count, err := s.CountTrips(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count existing trips: %w", err)
	}
	if count > 0 {
		log.Infow("Trip store already populated, skipping seed", "existing", count)
		return 0, nil
	}

	for _, trip := range trips {
		if err := s.CreateTrip(ctx, trip); err != nil {
			return 0, fmt.Errorf("failed to seed trip %s: %w", trip.ID, err)
		}
	}

	log.Infow("Seeded trip store", "trips", len(trips))
	return len(trips), nil
}
