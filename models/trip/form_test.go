package trip

import (
	stderrors "errors"
	"testing"

	"github.com/NomadCrew/travel-timeline-backend/errors"
	"github.com/NomadCrew/travel-timeline-backend/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() AddTripForm {
	return AddTripForm{
		Destination: " Lisbon, Portugal ",
		Location:    "Alfama",
		Latitude:    "38.7223",
		Longitude:   "-9.1393",
		StartDate:   "2025-03-15",
		EndDate:     "2025-03-28",
		Duration:    "14 Days",
		TotalCost:   "1000",
		Notes:       "  Trams and custard tarts. ",
	}
}

func TestNewTripFromForm(t *testing.T) {
	trip, err := NewTripFromForm(validForm())
	require.NoError(t, err)

	_, err = uuid.Parse(trip.ID)
	assert.NoError(t, err)

	assert.Equal(t, "Lisbon, Portugal", trip.Destination)
	assert.Equal(t, "Alfama", trip.Location)
	assert.Equal(t, types.NewCoordinates(38.7223, -9.1393), trip.Coordinates)
	assert.Equal(t, "March 15, 2025 - March 28, 2025", trip.DateRange)
	assert.Equal(t, "14 Days", trip.Duration)
	assert.Equal(t, types.Weather{Temp: 22, Condition: types.WeatherSunny, Season: types.SeasonSummer}, trip.Weather)
	assert.Equal(t, 1000.0, trip.TotalCost)
	assert.Equal(t, "Trams and custard tarts.", trip.Notes)
	assert.Equal(t, []string{"Adventure"}, trip.Tags)
	assert.Equal(t, []string{DefaultPhoto}, trip.Photos)
	assert.Equal(t, []types.Expense{
		{Category: "Accommodation", Amount: 400, Color: "#C17767"},
		{Category: "Food", Amount: 250, Color: "#8AA399"},
		{Category: "Activities", Amount: 200, Color: "#1A2238"},
		{Category: "Transport", Amount: 150, Color: "#E5E7EB"},
	}, trip.Expenses)
}

func TestNewTripFromFormOptionalFields(t *testing.T) {
	form := validForm()
	form.Temp = " -3.5 "
	form.Condition = types.WeatherRainy
	form.Season = types.SeasonAutumn
	form.Tags = " Food, ,City ,"
	form.Photos = "https://example.com/a.jpg,https://example.com/b.jpg"

	trip, err := NewTripFromForm(form)
	require.NoError(t, err)

	assert.Equal(t, types.Weather{Temp: -3.5, Condition: types.WeatherRainy, Season: types.SeasonAutumn}, trip.Weather)
	assert.Equal(t, []string{"Food", "City"}, trip.Tags)
	assert.Equal(t, []string{"https://example.com/a.jpg", "https://example.com/b.jpg"}, trip.Photos)
}

func TestNewTripFromFormGeneratesDistinctIDs(t *testing.T) {
	a, err := NewTripFromForm(validForm())
	require.NoError(t, err)
	b, err := NewTripFromForm(validForm())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewTripFromFormRejects(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*AddTripForm)
		contains string
	}{
		{"blank destination", func(f *AddTripForm) { f.Destination = "  " }, "destination is required"},
		{"missing notes", func(f *AddTripForm) { f.Notes = "" }, "notes is required"},
		{"latitude not a number", func(f *AddTripForm) { f.Latitude = "north" }, "latitude must be a number"},
		{"latitude out of range", func(f *AddTripForm) { f.Latitude = "120" }, "latitude"},
		{"longitude out of range", func(f *AddTripForm) { f.Longitude = "-200" }, "longitude -200"},
		{"cost not a number", func(f *AddTripForm) { f.TotalCost = "lots" }, "totalCost must be a number"},
		{"negative cost", func(f *AddTripForm) { f.TotalCost = "-10" }, "negative"},
		{"temperature not a number", func(f *AddTripForm) { f.Temp = "warm" }, "temp must be a number"},
		{"bad start date", func(f *AddTripForm) { f.StartDate = "15/03/2025" }, "startDate must be a YYYY-MM-DD date"},
		{"end before start", func(f *AddTripForm) { f.EndDate = "2025-03-01" }, "endDate cannot be before startDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			_, err := NewTripFromForm(form)
			require.Error(t, err)

			var appErr *errors.AppError
			require.True(t, stderrors.As(err, &appErr))
			assert.Equal(t, errors.ValidationError, appErr.Type)
			assert.Contains(t, appErr.Error(), tt.contains)
		})
	}
}

func TestSplitExpenses(t *testing.T) {
	tests := []struct {
		total    float64
		expected []float64
	}{
		{1000, []float64{400, 250, 200, 150}},
		{999, []float64{400, 250, 200, 150}},
		{10, []float64{4, 3, 2, 1}},
		{0, []float64{0, 0, 0, 0}},
		{1234.5, []float64{494, 309, 247, 185.5}},
		{1700, []float64{680, 425, 340, 255}},
	}

	for _, tt := range tests {
		expenses, err := SplitExpenses(tt.total)
		require.NoError(t, err)
		require.Len(t, expenses, 4)

		amounts := make([]float64, 0, 4)
		for _, e := range expenses {
			assert.GreaterOrEqual(t, e.Amount, 0.0)
			amounts = append(amounts, e.Amount)
		}
		assert.Equal(t, tt.expected, amounts, "total %v", tt.total)
	}
}

func TestSplitExpensesRejectsNegative(t *testing.T) {
	_, err := SplitExpenses(-1)
	assert.Error(t, err)
}

func TestExpenseTotal(t *testing.T) {
	total, err := ExpenseTotal(types.Trip{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)

	expenses, err := SplitExpenses(1234.5)
	require.NoError(t, err)
	total, err = ExpenseTotal(types.Trip{Expenses: expenses})
	require.NoError(t, err)
	assert.Equal(t, 1234.5, total)

	// summed in decimal, so no float drift
	total, err = ExpenseTotal(types.Trip{Expenses: []types.Expense{{Amount: 0.1}, {Amount: 0.2}}})
	require.NoError(t, err)
	assert.Equal(t, 0.3, total)

	_, err = ExpenseTotal(types.Trip{Expenses: []types.Expense{{Category: "Food", Amount: -5}}})
	assert.ErrorContains(t, err, "expense Food")
}

func TestDescribeIncludesExpenseTotal(t *testing.T) {
	trip, err := NewTripFromForm(validForm())
	require.NoError(t, err)

	facts := Describe(trip, nil)
	assert.Equal(t, trip.TotalCost, facts.ExpenseTotal)

	trip.Expenses = append(trip.Expenses, types.Expense{Category: "Broken", Amount: -1})
	assert.Equal(t, 0.0, Describe(trip, nil).ExpenseTotal)
}
