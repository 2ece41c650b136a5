package trip

import (
	"testing"

	"github.com/NomadCrew/travel-timeline-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	compared := Compare(seedTrips(), []string{"3", "missing", "3", "1", "2"})
	require.Len(t, compared, 2)

	assert.Equal(t, "3", compared[0].ID)
	assert.Equal(t, "Reykjavik, Iceland", compared[0].Destination)
	assert.Equal(t, "Iceland", compared[0].Country)
	assert.Equal(t, 2700.0, compared[0].TotalCost)
	assert.InDelta(t, 2700.0/7.0, compared[0].DailySpend, 1e-9)
	assert.Equal(t, 2.0, compared[0].Temp)
	assert.Equal(t, "7 Days", compared[0].Duration)

	assert.Equal(t, "1", compared[1].ID)
	assert.InDelta(t, 1700.0/14.0, compared[1].DailySpend, 1e-9)
}

func TestCompareNothingSelected(t *testing.T) {
	compared := Compare(seedTrips(), nil)
	assert.NotNil(t, compared)
	assert.Empty(t, compared)

	assert.Empty(t, Compare(seedTrips(), []string{"nope"}))
}

func TestDailySpend(t *testing.T) {
	assert.Equal(t, 500.0, DailySpend(types.Trip{TotalCost: 500, Duration: "a weekend"}))
	assert.Equal(t, 500.0, DailySpend(types.Trip{TotalCost: 500, Duration: "0 days"}))
	assert.Equal(t, 250.0, DailySpend(types.Trip{TotalCost: 500, Duration: "2 Days"}))
}

func TestToggleCompare(t *testing.T) {
	selection := ToggleCompare(nil, "1")
	assert.Equal(t, []string{"1"}, selection)

	selection = ToggleCompare(selection, "2")
	assert.Equal(t, []string{"1", "2"}, selection)

	full := ToggleCompare(selection, "3")
	assert.Equal(t, []string{"1", "2"}, full)

	removed := ToggleCompare(selection, "1")
	assert.Equal(t, []string{"2"}, removed)

	// the input slice is left alone
	assert.Equal(t, []string{"1", "2"}, selection)
}

func TestIsCompareSelected(t *testing.T) {
	assert.True(t, IsCompareSelected([]string{"1", "2"}, "2"))
	assert.False(t, IsCompareSelected([]string{"1"}, "2"))
	assert.False(t, IsCompareSelected(nil, "1"))
}
