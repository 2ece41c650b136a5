package trip

import (
	"github.com/NomadCrew/travel-timeline-backend/pkg/tripmetrics"
	"github.com/NomadCrew/travel-timeline-backend/types"
)

// TimelineEntry is one card on the timeline.
type TimelineEntry struct {
	Trip             types.Trip `json:"trip"`
	Facts            Facts      `json:"facts"`
	IsLeft           bool       `json:"isLeft"`
	LegDistanceKm    float64    `json:"legDistanceKm"`
	LegDistanceLabel string     `json:"legDistanceLabel"`
	CompareSelected  bool       `json:"compareSelected"`
	CompareDisabled  bool       `json:"compareDisabled"`
}

// Timeline is everything the timeline view renders for one set of preferences.
type Timeline struct {
	Preferences        types.Preferences        `json:"preferences"`
	Options            FilterOptions            `json:"options"`
	Entries            []TimelineEntry          `json:"entries"`
	Insights           tripmetrics.TripInsights `json:"insights"`
	RouteDistanceKm    float64                  `json:"routeDistanceKm"`
	RouteDistanceLabel string                   `json:"routeDistanceLabel"`
	ShowRoute          bool                     `json:"showRoute"`
	TotalTrips         int                      `json:"totalTrips"`
	Compare            []ComparedTrip           `json:"compare"`
}

// BuildTimeline filters all by prefs and derives the per-entry and aggregate
// values. Options and the comparison are computed over the whole collection;
// legs, insights and the route only over the filtered trips.
func BuildTimeline(all []types.Trip, prefs types.Preferences, table tripmetrics.ContinentTable, compareIDs []string) Timeline {
	filtered := Filter(all, prefs, table)
	legs := tripmetrics.LegDistancesKm(filtered)
	routeKm := tripmetrics.TotalRouteDistanceKm(filtered)
	compared := Compare(all, compareIDs)

	selection := make([]string, 0, len(compared))
	for _, c := range compared {
		selection = append(selection, c.ID)
	}

	entries := make([]TimelineEntry, 0, len(filtered))
	for i, trip := range filtered {
		selected := IsCompareSelected(selection, trip.ID)
		entries = append(entries, TimelineEntry{
			Trip:             trip,
			Facts:            Describe(trip, table),
			IsLeft:           i%2 == 0,
			LegDistanceKm:    legs[i],
			LegDistanceLabel: tripmetrics.DistanceLabel(legs[i], prefs.Unit),
			CompareSelected:  selected,
			CompareDisabled:  !selected && len(selection) >= MaxCompare,
		})
	}

	return Timeline{
		Preferences:        prefs,
		Options:            Options(all, table),
		Entries:            entries,
		Insights:           tripmetrics.Insights(filtered),
		RouteDistanceKm:    routeKm,
		RouteDistanceLabel: tripmetrics.DistanceLabel(routeKm, prefs.Unit),
		ShowRoute:          len(filtered) > 1,
		TotalTrips:         len(all),
		Compare:            compared,
	}
}
