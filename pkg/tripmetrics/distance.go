package tripmetrics

import (
	"math"
	"strconv"

	"github.com/NomadCrew/travel-timeline-backend/types"
)

const (
	// EarthRadiusKm is the sphere radius used by the haversine formula.
	EarthRadiusKm = 6371.0
	// MilesPerKm is the fixed display conversion factor.
	MilesPerKm = 0.621371
)

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// HaversineKm returns the great-circle distance between a and b in kilometers.
func HaversineKm(a, b types.Coordinates) float64 {
	lat1 := degreesToRadians(a.Lat())
	lng1 := degreesToRadians(a.Lng())
	lat2 := degreesToRadians(b.Lat())
	lng2 := degreesToRadians(b.Lng())

	dlat := lat2 - lat1
	dlng := lng2 - lng1

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dlng/2)*math.Sin(dlng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// TotalRouteDistanceKm sums the legs between consecutive trips, in list order.
func TotalRouteDistanceKm(trips []types.Trip) float64 {
	var total float64
	for i := 1; i < len(trips); i++ {
		total += HaversineKm(trips[i-1].Coordinates, trips[i].Coordinates)
	}
	return total
}

// LegDistancesKm returns, for each trip, the distance from the previous one.
// The first leg is always 0.
func LegDistancesKm(trips []types.Trip) []float64 {
	legs := make([]float64, len(trips))
	for i := 1; i < len(trips); i++ {
		legs[i] = HaversineKm(trips[i-1].Coordinates, trips[i].Coordinates)
	}
	return legs
}

// ToMiles converts kilometers to miles.
func ToMiles(km float64) float64 {
	return km * MilesPerKm
}

// FromUnit converts km into unit. Anything other than miles is left as km.
func FromUnit(km float64, unit types.DistanceUnit) float64 {
	if unit == types.UnitMi {
		return ToMiles(km)
	}
	return km
}

// DistanceLabel formats a distance as a whole number followed by the unit code,
// e.g. "62 mi". Halves round away from zero.
func DistanceLabel(km float64, unit types.DistanceUnit) string {
	value := math.Round(FromUnit(km, unit))
	return strconv.FormatFloat(value, 'f', 0, 64) + " " + string(unit)
}
