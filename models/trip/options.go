package trip

import (
	"github.com/NomadCrew/travel-timeline-backend/pkg/tripmetrics"
	"github.com/NomadCrew/travel-timeline-backend/types"
)

// FilterOptions lists the values each timeline selector offers.
// Every list starts with "all" followed by distinct values in first-seen order.
type FilterOptions struct {
	Years      []string            `json:"years"`
	Countries  []string            `json:"countries"`
	Continents []string            `json:"continents"`
	Seasons    []string            `json:"seasons"`
	Tags       []string            `json:"tags"`
	Budgets    []types.BudgetRange `json:"budgets"`
}

// distinct accumulates values once each, keeping first-seen order.
type distinct struct {
	values []string
	seen   map[string]bool
}

func newDistinct() *distinct {
	return &distinct{values: []string{types.FilterAll}, seen: map[string]bool{types.FilterAll: true}}
}

func (d *distinct) add(value string) {
	if d.seen[value] {
		return
	}
	d.seen[value] = true
	d.values = append(d.values, value)
}

// Options computes the selector values for trips. Years whose date range
// has no recognizable year are left out.
func Options(trips []types.Trip, table tripmetrics.ContinentTable) FilterOptions {
	years, countries, continents := newDistinct(), newDistinct(), newDistinct()
	seasons, tags := newDistinct(), newDistinct()

	for _, trip := range trips {
		if year := tripmetrics.TripYear(trip); year != tripmetrics.UnknownValue {
			years.add(year)
		}
		countries.add(tripmetrics.TripCountry(trip))
		continents.add(table.TripContinent(trip))
		seasons.add(string(trip.Weather.Season))
		for _, tag := range trip.Tags {
			tags.add(tag)
		}
	}

	return FilterOptions{
		Years:      years.values,
		Countries:  countries.values,
		Continents: continents.values,
		Seasons:    seasons.values,
		Tags:       tags.values,
		Budgets:    []types.BudgetRange{types.BudgetAll, types.BudgetLow, types.BudgetMid, types.BudgetLuxury},
	}
}
