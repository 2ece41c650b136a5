// Package trip derives the timeline's views from a trip collection: filtering,
// selector options, the stats dashboard, comparison and the add-trip form.
package trip

import (
	"strings"

	"github.com/NomadCrew/travel-timeline-backend/pkg/tripmetrics"
	"github.com/NomadCrew/travel-timeline-backend/types"
)

// Matches reports whether trip passes every active filter in prefs.
// A selector set to "all" is inactive; so is an empty search.
func Matches(trip types.Trip, prefs types.Preferences, table tripmetrics.ContinentTable) bool {
	if prefs.Year != types.FilterAll && tripmetrics.TripYear(trip) != prefs.Year {
		return false
	}
	if prefs.Country != types.FilterAll && tripmetrics.TripCountry(trip) != prefs.Country {
		return false
	}
	if prefs.Continent != types.FilterAll && table.TripContinent(trip) != prefs.Continent {
		return false
	}
	if prefs.Season != types.FilterAll && string(trip.Weather.Season) != prefs.Season {
		return false
	}
	if prefs.Budget != types.BudgetAll && tripmetrics.BudgetRangeFor(trip.TotalCost) != prefs.Budget {
		return false
	}
	if prefs.Tag != types.FilterAll && !trip.HasTag(prefs.Tag) {
		return false
	}
	return matchesSearch(trip, prefs.Search)
}

func matchesSearch(trip types.Trip, search string) bool {
	query := strings.ToLower(strings.TrimSpace(search))
	if query == "" {
		return true
	}

	if strings.Contains(strings.ToLower(trip.Destination), query) ||
		strings.Contains(strings.ToLower(trip.Location), query) ||
		strings.Contains(strings.ToLower(trip.Notes), query) {
		return true
	}
	for _, tag := range trip.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// Filter keeps the trips matching prefs, in their original order.
func Filter(trips []types.Trip, prefs types.Preferences, table tripmetrics.ContinentTable) []types.Trip {
	filtered := make([]types.Trip, 0, len(trips))
	for _, trip := range trips {
		if Matches(trip, prefs, table) {
			filtered = append(filtered, trip)
		}
	}
	return filtered
}
