package services

import (
	"context"
	stderrors "errors"
	"fmt"

	apperrors "github.com/NomadCrew/travel-timeline-backend/errors"
	"github.com/NomadCrew/travel-timeline-backend/logger"
	"github.com/NomadCrew/travel-timeline-backend/models/trip"
	"github.com/NomadCrew/travel-timeline-backend/pkg/tripmetrics"
	"github.com/NomadCrew/travel-timeline-backend/store"
	"github.com/NomadCrew/travel-timeline-backend/types"
	"go.uber.org/zap"
)

// TripService provides the trip collection and everything derived from it.
type TripService struct {
	store      store.TripStore
	continents tripmetrics.ContinentTable
	metrics    *serviceMetrics
	log        *zap.SugaredLogger
}

// NewTripService creates a TripService over s. A nil continents table falls
// back to the built-in one.
func NewTripService(s store.TripStore, continents tripmetrics.ContinentTable) *TripService {
	if continents == nil {
		continents = tripmetrics.DefaultContinents()
	}
	return &TripService{
		store:      s,
		continents: continents,
		metrics:    newServiceMetrics(),
		log:        logger.GetLogger().Named("trip-service"),
	}
}

// Continents returns the continent table used for derived facts.
func (s *TripService) Continents() tripmetrics.ContinentTable {
	return s.continents
}

// ListTrips returns every trip in collection order.
func (s *TripService) ListTrips(ctx context.Context) ([]types.Trip, error) {
	trips, err := s.store.ListTrips(ctx)
	if err != nil {
		return nil, s.mapStoreError(err, "")
	}
	return trips, nil
}

// GetTrip returns one trip together with its derived facts.
func (s *TripService) GetTrip(ctx context.Context, id string) (*trip.DetailedTrip, error) {
	if id == "" {
		return nil, apperrors.ValidationFailed("Invalid trip ID", "trip ID is required")
	}

	found, err := s.store.GetTrip(ctx, id)
	if err != nil {
		return nil, s.mapStoreError(err, id)
	}

	detailed := trip.Detail(*found, s.continents)
	return &detailed, nil
}

// CreateTrip converts the add-trip form into a trip and appends it to the collection.
func (s *TripService) CreateTrip(ctx context.Context, form trip.AddTripForm) (*types.Trip, error) {
	created, err := trip.NewTripFromForm(form)
	if err != nil {
		s.metrics.tripsRejected.WithLabelValues("validation").Inc()
		return nil, err
	}

	if err := s.store.CreateTrip(ctx, created); err != nil {
		s.metrics.tripsRejected.WithLabelValues("store").Inc()
		return nil, s.mapStoreError(err, created.ID)
	}

	s.metrics.tripsCreated.Inc()
	s.log.Infow("Trip added to timeline",
		"tripID", created.ID,
		"destination", created.Destination,
		"totalCost", created.TotalCost)

	return &created, nil
}

// Timeline builds the timeline view for prefs. compareIDs is the current
// comparison selection.
func (s *TripService) Timeline(ctx context.Context, prefs types.Preferences, compareIDs []string) (*trip.Timeline, error) {
	trips, err := s.ListTrips(ctx)
	if err != nil {
		return nil, err
	}

	timeline := trip.BuildTimeline(trips, prefs, s.continents, compareIDs)
	s.metrics.filteredTrips.Observe(float64(len(timeline.Entries)))
	return &timeline, nil
}

// Stats computes the stats dashboard over the whole collection.
func (s *TripService) Stats(ctx context.Context) (*trip.Stats, error) {
	trips, err := s.ListTrips(ctx)
	if err != nil {
		return nil, err
	}
	stats := trip.ComputeStats(trips)
	return &stats, nil
}

// Insights computes aggregate insights over the whole collection.
func (s *TripService) Insights(ctx context.Context) (*tripmetrics.TripInsights, error) {
	trips, err := s.ListTrips(ctx)
	if err != nil {
		return nil, err
	}
	insights := tripmetrics.Insights(trips)
	return &insights, nil
}

// Compare resolves the requested ids into comparison columns. Between one and
// MaxCompare ids must be given; unknown ids are skipped.
func (s *TripService) Compare(ctx context.Context, ids []string) ([]trip.ComparedTrip, error) {
	if len(ids) == 0 {
		return nil, apperrors.InvalidCompareSelection("at least one trip ID is required")
	}
	if len(ids) > trip.MaxCompare {
		return nil, apperrors.InvalidCompareSelection(
			fmt.Sprintf("at most %d trips can be compared, got %d", trip.MaxCompare, len(ids)))
	}

	trips, err := s.ListTrips(ctx)
	if err != nil {
		return nil, err
	}
	return trip.Compare(trips, ids), nil
}

func (s *TripService) mapStoreError(err error, id string) error {
	switch {
	case stderrors.Is(err, store.ErrNotFound):
		return apperrors.TripNotFound(id)
	case stderrors.Is(err, store.ErrConflict):
		return apperrors.NewConflictError("Trip already exists", fmt.Sprintf("Trip ID: %s", id))
	default:
		return apperrors.NewDatabaseError(err)
	}
}
