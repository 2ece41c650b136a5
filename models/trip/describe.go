package trip

import (
	"github.com/NomadCrew/travel-timeline-backend/pkg/tripmetrics"
	"github.com/NomadCrew/travel-timeline-backend/types"
)

// Facts are the values derived from a single trip. ExpenseTotal is 0 when an
// expense amount is not a valid non-negative number.
type Facts struct {
	Year         string            `json:"year"`
	Month        string            `json:"month"`
	Country      string            `json:"country"`
	Continent    string            `json:"continent"`
	Days         int               `json:"days"`
	Budget       types.BudgetRange `json:"budget"`
	DailySpend   float64           `json:"dailySpend"`
	ExpenseTotal float64           `json:"expenseTotal"`
}

// DetailedTrip is a trip together with its derived facts.
type DetailedTrip struct {
	types.Trip
	Facts Facts `json:"facts"`
}

func Describe(trip types.Trip, table tripmetrics.ContinentTable) Facts {
	expenseTotal, _ := ExpenseTotal(trip)
	return Facts{
		Year:         tripmetrics.TripYear(trip),
		Month:        tripmetrics.TripMonth(trip),
		Country:      tripmetrics.TripCountry(trip),
		Continent:    table.TripContinent(trip),
		Days:         tripmetrics.TripDurationDays(trip),
		Budget:       tripmetrics.BudgetRangeFor(trip.TotalCost),
		DailySpend:   DailySpend(trip),
		ExpenseTotal: expenseTotal,
	}
}

func Detail(trip types.Trip, table tripmetrics.ContinentTable) DetailedTrip {
	return DetailedTrip{Trip: trip, Facts: Describe(trip, table)}
}
