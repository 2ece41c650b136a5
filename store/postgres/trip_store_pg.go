// Package postgres implements the trip store on PostgreSQL through pgx v5.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/NomadCrew/travel-timeline-backend/logger"
	"github.com/NomadCrew/travel-timeline-backend/store"
	"github.com/NomadCrew/travel-timeline-backend/types"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// DBTX is the subset of pgxpool.Pool the store needs. pgxmock pools satisfy it too.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

var (
	_ store.TripStore = (*TripStore)(nil)
	_ store.Pinger    = (*TripStore)(nil)
)

// TripStore keeps trips in the trips table, ordered by the seq column.
type TripStore struct {
	db DBTX
}

// NewPgTripStore creates a new PostgreSQL trip store.
func NewPgTripStore(db DBTX) *TripStore {
	return &TripStore{db: db}
}

const tripColumns = `id, destination, location, latitude, longitude, date_range, duration,
       weather, expenses, total_cost, notes, tags, photos`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (types.Trip, error) {
	var (
		trip                            types.Trip
		lat, lng                        float64
		weather, expenses, tags, photos []byte
	)

	err := row.Scan(
		&trip.ID,
		&trip.Destination,
		&trip.Location,
		&lat,
		&lng,
		&trip.DateRange,
		&trip.Duration,
		&weather,
		&expenses,
		&trip.TotalCost,
		&trip.Notes,
		&tags,
		&photos,
	)
	if err != nil {
		return types.Trip{}, err
	}
	trip.Coordinates = types.NewCoordinates(lat, lng)

	if err := json.Unmarshal(weather, &trip.Weather); err != nil {
		return types.Trip{}, fmt.Errorf("failed to decode weather for trip %s: %w", trip.ID, err)
	}
	if err := json.Unmarshal(expenses, &trip.Expenses); err != nil {
		return types.Trip{}, fmt.Errorf("failed to decode expenses for trip %s: %w", trip.ID, err)
	}
	if err := json.Unmarshal(tags, &trip.Tags); err != nil {
		return types.Trip{}, fmt.Errorf("failed to decode tags for trip %s: %w", trip.ID, err)
	}
	if err := json.Unmarshal(photos, &trip.Photos); err != nil {
		return types.Trip{}, fmt.Errorf("failed to decode photos for trip %s: %w", trip.ID, err)
	}

	return trip, nil
}

// ListTrips returns every trip in insertion order.
func (s *TripStore) ListTrips(ctx context.Context) ([]types.Trip, error) {
	log := logger.GetLogger()

	rows, err := s.db.Query(ctx, `SELECT `+tripColumns+` FROM trips ORDER BY seq`)
	if err != nil {
		log.Errorw("Failed to query trips", "error", err)
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	trips := make([]types.Trip, 0)
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip row: %w", err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trip rows: %w", err)
	}

	return trips, nil
}

// GetTrip retrieves a single trip by its ID.
func (s *TripStore) GetTrip(ctx context.Context, id string) (*types.Trip, error) {
	row := s.db.QueryRow(ctx, `SELECT `+tripColumns+` FROM trips WHERE id = $1`, id)

	trip, err := scanTrip(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		logger.GetLogger().Errorw("Failed to get trip", "tripId", id, "error", err)
		return nil, fmt.Errorf("failed to get trip %s: %w", id, err)
	}

	return &trip, nil
}

// CreateTrip inserts a trip. A duplicate id yields store.ErrConflict.
func (s *TripStore) CreateTrip(ctx context.Context, trip types.Trip) error {
	log := logger.GetLogger()

	weather, err := json.Marshal(trip.Weather)
	if err != nil {
		return fmt.Errorf("failed to encode weather: %w", err)
	}
	expenses, err := json.Marshal(nonNil(trip.Expenses))
	if err != nil {
		return fmt.Errorf("failed to encode expenses: %w", err)
	}
	tags, err := json.Marshal(nonNil(trip.Tags))
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}
	photos, err := json.Marshal(nonNil(trip.Photos))
	if err != nil {
		return fmt.Errorf("failed to encode photos: %w", err)
	}

	_, err = s.db.Exec(ctx, `
        INSERT INTO trips (
            id, destination, location, latitude, longitude, date_range, duration,
            weather, expenses, total_cost, notes, tags, photos
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		trip.ID,
		trip.Destination,
		trip.Location,
		trip.Coordinates.Lat(),
		trip.Coordinates.Lng(),
		trip.DateRange,
		trip.Duration,
		weather,
		expenses,
		trip.TotalCost,
		trip.Notes,
		tags,
		photos,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return store.ErrConflict
		}
		log.Errorw("Failed to insert trip", "tripId", trip.ID, "error", err)
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	log.Infow("Successfully created trip", "tripId", trip.ID)
	return nil
}

// CountTrips returns the number of stored trips.
func (s *TripStore) CountTrips(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM trips`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count trips: %w", err)
	}
	return count, nil
}

func (s *TripStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
