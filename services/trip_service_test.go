package services

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/NomadCrew/travel-timeline-backend/errors"
	"github.com/NomadCrew/travel-timeline-backend/db/seed"
	"github.com/NomadCrew/travel-timeline-backend/models/trip"
	"github.com/NomadCrew/travel-timeline-backend/pkg/tripmetrics"
	"github.com/NomadCrew/travel-timeline-backend/store"
	"github.com/NomadCrew/travel-timeline-backend/store/memory"
	"github.com/NomadCrew/travel-timeline-backend/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSeededTripService(t *testing.T) *TripService {
	t.Helper()
	trips, err := seed.Default()
	require.NoError(t, err)
	s, err := memory.NewTripStore(trips)
	require.NoError(t, err)
	return NewTripService(s, nil)
}

func validForm() trip.AddTripForm {
	return trip.AddTripForm{
		Destination: "Lisbon, Portugal",
		Location:    "Alfama",
		Latitude:    "38.7223",
		Longitude:   "-9.1393",
		StartDate:   "2025-03-15",
		EndDate:     "2025-03-28",
		Duration:    "14 Days",
		TotalCost:   "1000",
		Notes:       "Trams and custard tarts.",
	}
}

func appErrorType(t *testing.T, err error) apperrors.ErrorType {
	t.Helper()
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T", err)
	return appErr.Type
}

func TestTripService_ListAndGet(t *testing.T) {
	resetServiceMetricsForTesting()
	svc := newSeededTripService(t)
	ctx := context.Background()

	trips, err := svc.ListTrips(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{trips[0].ID, trips[1].ID, trips[2].ID})

	detailed, err := svc.GetTrip(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Santorini, Greece", detailed.Destination)
	assert.Equal(t, "Greece", detailed.Facts.Country)
	assert.Equal(t, "Europe", detailed.Facts.Continent)
	assert.Equal(t, "July", detailed.Facts.Month)
	assert.Equal(t, types.BudgetMid, detailed.Facts.Budget)

	_, err = svc.GetTrip(ctx, "missing")
	assert.Equal(t, apperrors.TripNotFoundError, appErrorType(t, err))

	_, err = svc.GetTrip(ctx, "")
	assert.Equal(t, apperrors.ValidationError, appErrorType(t, err))
}

func TestTripService_CreateTrip(t *testing.T) {
	resetServiceMetricsForTesting()
	svc := newSeededTripService(t)
	ctx := context.Background()

	created, err := svc.CreateTrip(ctx, validForm())
	require.NoError(t, err)
	assert.Equal(t, "Lisbon, Portugal", created.Destination)
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.metrics.tripsCreated))

	trips, err := svc.ListTrips(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 4)
	assert.Equal(t, created.ID, trips[3].ID)

	form := validForm()
	form.Latitude = "north"
	_, err = svc.CreateTrip(ctx, form)
	assert.Equal(t, apperrors.ValidationError, appErrorType(t, err))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.metrics.tripsRejected.WithLabelValues("validation")))
}

func TestTripService_CreateTripStoreErrors(t *testing.T) {
	resetServiceMetricsForTesting()

	tests := []struct {
		name     string
		storeErr error
		expected apperrors.ErrorType
	}{
		{"conflict", store.ErrConflict, apperrors.ConflictError},
		{"database failure", errors.New("connection reset"), apperrors.DatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(MockTripStore)
			mockStore.On("CreateTrip", mock.Anything, mock.AnythingOfType("types.Trip")).Return(tt.storeErr)

			svc := NewTripService(mockStore, nil)
			_, err := svc.CreateTrip(context.Background(), validForm())
			assert.Equal(t, tt.expected, appErrorType(t, err))
			mockStore.AssertExpectations(t)
		})
	}
}

func TestTripService_Timeline(t *testing.T) {
	resetServiceMetricsForTesting()
	svc := newSeededTripService(t)
	ctx := context.Background()

	timeline, err := svc.Timeline(ctx, types.DefaultPreferences(), nil)
	require.NoError(t, err)
	require.Len(t, timeline.Entries, 3)
	assert.True(t, timeline.ShowRoute)
	assert.Equal(t, "13898 km", timeline.RouteDistanceLabel)
	assert.Equal(t, 3, timeline.TotalTrips)
	require.NotNil(t, timeline.Insights.MostExpensiveTrip)
	assert.Equal(t, "3", timeline.Insights.MostExpensiveTrip.ID)

	prefs := types.DefaultPreferences()
	prefs.Unit = types.UnitMi
	prefs.Continent = "Europe"
	timeline, err = svc.Timeline(ctx, prefs, []string{"1", "2"})
	require.NoError(t, err)
	require.Len(t, timeline.Entries, 2)
	assert.Equal(t, "2", timeline.Entries[0].Trip.ID)
	assert.Len(t, timeline.Compare, 2)
	assert.True(t, timeline.Entries[0].CompareSelected)
	assert.True(t, timeline.Entries[1].CompareDisabled)
	assert.Equal(t, 3, timeline.TotalTrips)
}

func TestTripService_StatsAndInsights(t *testing.T) {
	resetServiceMetricsForTesting()
	svc := newSeededTripService(t)
	ctx := context.Background()

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalTrips)
	assert.Equal(t, 3, stats.CountriesVisited)
	assert.Equal(t, 13898, stats.KmTraveled)

	insights, err := svc.Insights(ctx)
	require.NoError(t, err)
	assert.Equal(t, "July", insights.BestWeatherMonth)
	assert.InDelta(t, 6800.0/31.0, insights.AverageDailySpend, 1e-9)
}

func TestTripService_Compare(t *testing.T) {
	resetServiceMetricsForTesting()
	svc := newSeededTripService(t)
	ctx := context.Background()

	compared, err := svc.Compare(ctx, []string{"3", "unknown"})
	require.NoError(t, err)
	require.Len(t, compared, 1)
	assert.Equal(t, "3", compared[0].ID)
	assert.InDelta(t, 2700.0/7.0, compared[0].DailySpend, 1e-9)

	_, err = svc.Compare(ctx, nil)
	assert.Equal(t, apperrors.CompareSelectionError, appErrorType(t, err))

	_, err = svc.Compare(ctx, []string{"1", "2", "3"})
	assert.Equal(t, apperrors.CompareSelectionError, appErrorType(t, err))
}

func TestTripService_ListError(t *testing.T) {
	resetServiceMetricsForTesting()
	mockStore := new(MockTripStore)
	mockStore.On("ListTrips", mock.Anything).Return(nil, errors.New("timeout"))

	svc := NewTripService(mockStore, tripmetrics.DefaultContinents())

	_, err := svc.Timeline(context.Background(), types.DefaultPreferences(), nil)
	assert.Equal(t, apperrors.DatabaseError, appErrorType(t, err))
	_, err = svc.Stats(context.Background())
	assert.Equal(t, apperrors.DatabaseError, appErrorType(t, err))
}

func TestTripService_CustomContinents(t *testing.T) {
	resetServiceMetricsForTesting()
	trips, err := seed.Default()
	require.NoError(t, err)
	s, err := memory.NewTripStore(trips)
	require.NoError(t, err)

	table := tripmetrics.DefaultContinents().With(map[string]string{"Greece": "Aegean"})
	svc := NewTripService(s, table)

	detailed, err := svc.GetTrip(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Aegean", detailed.Facts.Continent)
	assert.Equal(t, "Aegean", svc.Continents().Lookup("Greece"))
}
