package trip

import (
	"github.com/NomadCrew/travel-timeline-backend/pkg/tripmetrics"
	"github.com/NomadCrew/travel-timeline-backend/types"
)

// MaxCompare is how many trips can be compared side by side.
const MaxCompare = 2

// ComparedTrip is one column of the comparison panel.
type ComparedTrip struct {
	ID          string  `json:"id"`
	Destination string  `json:"destination"`
	TotalCost   float64 `json:"totalCost"`
	DailySpend  float64 `json:"dailySpend"`
	Temp        float64 `json:"temp"`
	Duration    string  `json:"duration"`
	Country     string  `json:"country"`
}

// DailySpend divides the total cost over the trip's days, counting at least one day.
func DailySpend(trip types.Trip) float64 {
	days := tripmetrics.TripDurationDays(trip)
	if days < 1 {
		days = 1
	}
	return trip.TotalCost / float64(days)
}

// Compare resolves ids against all in request order. Unknown and repeated
// ids are skipped and at most MaxCompare trips are returned.
func Compare(all []types.Trip, ids []string) []ComparedTrip {
	byID := make(map[string]types.Trip, len(all))
	for _, trip := range all {
		if _, exists := byID[trip.ID]; !exists {
			byID[trip.ID] = trip
		}
	}

	compared := make([]ComparedTrip, 0, MaxCompare)
	used := make(map[string]bool, len(ids))
	for _, id := range ids {
		if len(compared) == MaxCompare {
			break
		}
		trip, ok := byID[id]
		if !ok || used[id] {
			continue
		}
		used[id] = true
		compared = append(compared, ComparedTrip{
			ID:          trip.ID,
			Destination: trip.Destination,
			TotalCost:   trip.TotalCost,
			DailySpend:  DailySpend(trip),
			Temp:        trip.Weather.Temp,
			Duration:    trip.Duration,
			Country:     tripmetrics.TripCountry(trip),
		})
	}
	return compared
}

// ToggleCompare removes id from selection when present, otherwise appends it
// while fewer than MaxCompare trips are selected. selection is not modified.
func ToggleCompare(selection []string, id string) []string {
	next := make([]string, 0, MaxCompare)
	removed := false
	for _, selected := range selection {
		if selected == id {
			removed = true
			continue
		}
		next = append(next, selected)
	}
	if removed {
		return next
	}
	if len(next) >= MaxCompare {
		return next
	}
	return append(next, id)
}

// IsCompareSelected reports whether id is part of selection.
func IsCompareSelected(selection []string, id string) bool {
	for _, selected := range selection {
		if selected == id {
			return true
		}
	}
	return false
}
