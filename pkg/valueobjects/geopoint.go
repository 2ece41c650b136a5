// pkg/valueobjects/geopoint.go
package valueobjects

import (
	"fmt"
	"math"

	"github.com/NomadCrew/travel-timeline-backend/errors"
	"github.com/NomadCrew/travel-timeline-backend/types"
)

// GeoPoint represents a validated geographic point with latitude and longitude
type GeoPoint struct {
	latitude  float64
	longitude float64
}

// NewGeoPoint creates a new GeoPoint with validation
func NewGeoPoint(lat, lng float64) (*GeoPoint, error) {
	if err := validateCoordinates(lat, lng); err != nil {
		return nil, err
	}

	return &GeoPoint{
		latitude:  lat,
		longitude: lng,
	}, nil
}

// NewGeoPointFromCoordinates validates a trip's coordinate pair
func NewGeoPointFromCoordinates(coords types.Coordinates) (*GeoPoint, error) {
	return NewGeoPoint(coords.Lat(), coords.Lng())
}

// Coordinates converts the point back into the trip coordinate pair
func (g GeoPoint) Coordinates() types.Coordinates {
	return types.NewCoordinates(g.latitude, g.longitude)
}

// private helpers

func validateCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return errors.ValidationFailed(
			"invalid coordinates",
			"latitude and longitude must be finite numbers",
		)
	}

	if lat < -90 || lat > 90 {
		return errors.ValidationFailed(
			"invalid latitude",
			fmt.Sprintf("latitude %f is outside valid range [-90, 90]", lat),
		)
	}

	if lng < -180 || lng > 180 {
		return errors.ValidationFailed(
			"invalid longitude",
			fmt.Sprintf("longitude %f is outside valid range [-180, 180]", lng),
		)
	}

	return nil
}
