// Package validation checks trip records before they enter a store.
package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/NomadCrew/travel-timeline-backend/errors"
	"github.com/NomadCrew/travel-timeline-backend/pkg/valueobjects"
	"github.com/NomadCrew/travel-timeline-backend/types"
)

// ValidateTrip collects every broken invariant of a trip into one validation error.
func ValidateTrip(trip *types.Trip) error {
	var validationErrors []string

	if strings.TrimSpace(trip.ID) == "" {
		validationErrors = append(validationErrors, "trip id is required")
	}

	if strings.TrimSpace(trip.Destination) == "" {
		validationErrors = append(validationErrors, "trip destination is required")
	}

	if _, err := valueobjects.NewGeoPointFromCoordinates(trip.Coordinates); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("trip coordinates are invalid: %v", detail(err)))
	}

	if !isNonNegative(trip.TotalCost) {
		validationErrors = append(validationErrors, "trip total cost must be a non-negative number")
	}

	for i, expense := range trip.Expenses {
		if !isNonNegative(expense.Amount) {
			validationErrors = append(validationErrors,
				fmt.Sprintf("expense %d (%s) amount must be a non-negative number", i, expense.Category))
		}
	}

	if math.IsNaN(trip.Weather.Temp) || math.IsInf(trip.Weather.Temp, 0) {
		validationErrors = append(validationErrors, "trip temperature must be a finite number")
	}

	if trip.Weather.Condition != "" && !trip.Weather.Condition.IsValid() {
		validationErrors = append(validationErrors, "invalid weather condition")
	}

	if trip.Weather.Season != "" && !trip.Weather.Season.IsValid() {
		validationErrors = append(validationErrors, "invalid season")
	}

	if len(validationErrors) > 0 {
		return errors.ValidationFailed(
			"Invalid trip data",
			strings.Join(validationErrors, "; "),
		)
	}
	return nil
}

// ValidateCollection validates every trip and rejects duplicate ids.
func ValidateCollection(trips []types.Trip) error {
	seen := make(map[string]bool, len(trips))
	for i := range trips {
		if err := ValidateTrip(&trips[i]); err != nil {
			return fmt.Errorf("trip %d: %w", i, err)
		}
		if seen[trips[i].ID] {
			return errors.ValidationFailed(
				"Invalid trip data",
				fmt.Sprintf("duplicate trip id %q", trips[i].ID),
			)
		}
		seen[trips[i].ID] = true
	}
	return nil
}

func isNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func detail(err error) string {
	if appErr, ok := err.(*errors.AppError); ok && appErr.Detail != "" {
		return appErr.Detail
	}
	return err.Error()
}
