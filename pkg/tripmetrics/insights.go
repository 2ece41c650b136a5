package tripmetrics

import "github.com/NomadCrew/travel-timeline-backend/types"

// TripInsights are aggregate facts over a trip collection.
type TripInsights struct {
	MostExpensiveTrip *types.Trip `json:"mostExpensiveTrip"`
	BestWeatherMonth  string      `json:"bestWeatherMonth"`
	AverageDailySpend float64     `json:"averageDailySpend"`
}

// Insights computes the most expensive trip, the month of the warmest trip and
// the average spend per day. Ties resolve to the earliest trip in the list.
func Insights(trips []types.Trip) TripInsights {
	if len(trips) == 0 {
		return TripInsights{
			MostExpensiveTrip: nil,
			BestWeatherMonth:  NotAvailable,
			AverageDailySpend: 0,
		}
	}

	mostExpensive := 0
	warmest := 0
	var totalCost float64
	var totalDays float64
	for i, trip := range trips {
		if trip.TotalCost > trips[mostExpensive].TotalCost {
			mostExpensive = i
		}
		if trip.Weather.Temp > trips[warmest].Weather.Temp {
			warmest = i
		}

		days := TripDurationDays(trip)
		if days < 1 {
			days = 1
		}
		totalCost += trip.TotalCost
		totalDays += float64(days)
	}

	top := trips[mostExpensive].Clone()
	return TripInsights{
		MostExpensiveTrip: &top,
		BestWeatherMonth:  TripMonth(trips[warmest]),
		AverageDailySpend: totalCost / totalDays,
	}
}
