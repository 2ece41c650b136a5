package trip

import (
	"math"

	"github.com/NomadCrew/travel-timeline-backend/pkg/tripmetrics"
	"github.com/NomadCrew/travel-timeline-backend/types"
)

// Stats are the dashboard counters over the whole collection.
type Stats struct {
	CountriesVisited int `json:"countriesVisited"`
	KmTraveled       int `json:"kmTraveled"`
	TotalTrips       int `json:"totalTrips"`
	UniqueTags       int `json:"uniqueTags"`
}

func ComputeStats(trips []types.Trip) Stats {
	countries := make(map[string]struct{})
	tags := make(map[string]struct{})
	for _, trip := range trips {
		countries[tripmetrics.TripCountry(trip)] = struct{}{}
		for _, tag := range trip.Tags {
			tags[tag] = struct{}{}
		}
	}

	return Stats{
		CountriesVisited: len(countries),
		KmTraveled:       int(math.Round(tripmetrics.TotalRouteDistanceKm(trips))),
		TotalTrips:       len(trips),
		UniqueTags:       len(tags),
	}
}
