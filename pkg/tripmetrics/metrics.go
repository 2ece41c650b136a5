// Package tripmetrics derives display-ready facts from trip records.
//
// Every function here is pure: it reads only its arguments and the continent
// table, never fails, and degrades to a neutral value ("Unknown", "Other",
// "N/A", 0, nil) when the input does not carry the expected pattern.
package tripmetrics

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/NomadCrew/travel-timeline-backend/types"
)

const (
	// UnknownValue is returned when a date field cannot be parsed.
	UnknownValue = "Unknown"
	// NotAvailable is reported for aggregates over an empty collection.
	NotAvailable = "N/A"

	budgetCeiling = 2000.0
	midCeiling    = 2600.0
)

var (
	yearPattern  = regexp.MustCompile(`\b(20\d{2})\b`)
	digitPattern = regexp.MustCompile(`\d+`)
)

// TripYear extracts the first 20xx year found in the trip's date range.
func TripYear(trip types.Trip) string {
	match := yearPattern.FindStringSubmatch(trip.DateRange)
	if match == nil {
		return UnknownValue
	}
	return match[1]
}

// TripMonth returns the first whitespace-delimited token of the date range.
func TripMonth(trip types.Trip) string {
	fields := strings.Fields(trip.DateRange)
	if len(fields) == 0 {
		return UnknownValue
	}
	return fields[0]
}

// TripCountry returns the trimmed last comma-separated segment of the destination.
func TripCountry(trip types.Trip) string {
	parts := strings.Split(trip.Destination, ",")
	return strings.TrimSpace(parts[len(parts)-1])
}

// TripContinent looks the trip's country up in the default continent table.
func TripContinent(trip types.Trip) string {
	return defaultContinents.TripContinent(trip)
}

// TripDurationDays parses the first integer in the duration text, or 0.
// A digit run too large for an int saturates at math.MaxInt.
func TripDurationDays(trip types.Trip) int {
	match := digitPattern.FindString(trip.Duration)
	if match == "" {
		return 0
	}
	days, err := strconv.Atoi(match)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt
	}
	if err != nil {
		return 0
	}
	return days
}

// BudgetRangeFor buckets a total cost. Both 2000 and 2600 fall in the mid range.
func BudgetRangeFor(totalCost float64) types.BudgetRange {
	if totalCost < budgetCeiling {
		return types.BudgetLow
	}
	if totalCost <= midCeiling {
		return types.BudgetMid
	}
	return types.BudgetLuxury
}
