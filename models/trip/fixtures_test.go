package trip

import "github.com/NomadCrew/travel-timeline-backend/types"

func seedTrips() []types.Trip {
	return []types.Trip{
		{
			ID:          "1",
			Destination: "Tokyo, Japan",
			Location:    "Shibuya, Tokyo",
			Coordinates: types.NewCoordinates(35.661777, 139.704051),
			DateRange:   "March 15 - March 28, 2025",
			Duration:    "14 Days",
			Weather:     types.Weather{Temp: 15, Condition: types.WeatherSunny, Season: types.SeasonSpring},
			TotalCost:   1700,
			Notes:       "The cherry blossoms were in full bloom.",
			Tags:        []string{"Cultural", "Food", "Urban"},
		},
		{
			ID:          "2",
			Destination: "Santorini, Greece",
			Location:    "Oia, Santorini",
			Coordinates: types.NewCoordinates(36.4618, 25.3753),
			DateRange:   "July 10 - July 20, 2024",
			Duration:    "10 Days",
			Weather:     types.Weather{Temp: 28, Condition: types.WeatherSunny, Season: types.SeasonSummer},
			TotalCost:   2400,
			Notes:       "The sunsets in Oia are truly the most beautiful in the world.",
			Tags:        []string{"Beach", "Romance", "Relaxation"},
		},
		{
			ID:          "3",
			Destination: "Reykjavik, Iceland",
			Location:    "Golden Circle, Iceland",
			Coordinates: types.NewCoordinates(64.1466, -21.9426),
			DateRange:   "November 5 - November 12, 2024",
			Duration:    "7 Days",
			Weather:     types.Weather{Temp: 2, Condition: types.WeatherCloudy, Season: types.SeasonWinter},
			TotalCost:   2700,
			Notes:       "Seeing the Northern Lights was a bucket-list dream come true.",
			Tags:        []string{"Adventure", "Nature", "Photography"},
		},
	}
}

func ids(trips []types.Trip) []string {
	out := make([]string, 0, len(trips))
	for _, trip := range trips {
		out = append(out, trip.ID)
	}
	return out
}
