package types

type WeatherCondition string

const (
	WeatherSunny  WeatherCondition = "sunny"
	WeatherCloudy WeatherCondition = "cloudy"
	WeatherRainy  WeatherCondition = "rainy"
)

// IsValid checks if the condition is one of the known weather conditions
func (w WeatherCondition) IsValid() bool {
	switch w {
	case WeatherSunny, WeatherCloudy, WeatherRainy:
		return true
	default:
		return false
	}
}

type Season string

const (
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonAutumn Season = "Autumn"
	SeasonWinter Season = "Winter"
)

// IsValid checks if the season is one of the four known seasons
func (s Season) IsValid() bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter:
		return true
	default:
		return false
	}
}

// Coordinates is a (latitude, longitude) pair in decimal degrees.
// It serializes as a two-element array, the shape map components expect.
type Coordinates [2]float64

func NewCoordinates(lat, lng float64) Coordinates {
	return Coordinates{lat, lng}
}

func (c Coordinates) Lat() float64 { return c[0] }
func (c Coordinates) Lng() float64 { return c[1] }

type Weather struct {
	Temp      float64          `json:"temp" yaml:"temp"`
	Condition WeatherCondition `json:"condition" yaml:"condition"`
	Season    Season           `json:"season" yaml:"season"`
}

// Expense is one slice of a trip's cost breakdown.
type Expense struct {
	Category string  `json:"category" yaml:"category"`
	Amount   float64 `json:"amount" yaml:"amount"`
	Color    string  `json:"color" yaml:"color"`
}

// Trip is one journey on the timeline. Trips are immutable once created.
type Trip struct {
	ID          string      `json:"id" yaml:"id"`
	Destination string      `json:"destination" yaml:"destination"`
	Location    string      `json:"location" yaml:"location"`
	Coordinates Coordinates `json:"coordinates" yaml:"coordinates"`
	DateRange   string      `json:"dateRange" yaml:"dateRange"`
	Duration    string      `json:"duration" yaml:"duration"`
	Weather     Weather     `json:"weather" yaml:"weather"`
	Expenses    []Expense   `json:"expenses" yaml:"expenses"`
	TotalCost   float64     `json:"totalCost" yaml:"totalCost"`
	Notes       string      `json:"notes" yaml:"notes"`
	Tags        []string    `json:"tags" yaml:"tags"`
	Photos      []string    `json:"photos" yaml:"photos"`
}

// HasTag reports whether the trip carries the exact tag.
func (t Trip) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with t.
func (t Trip) Clone() Trip {
	c := t
	c.Expenses = append([]Expense(nil), t.Expenses...)
	c.Tags = append([]string(nil), t.Tags...)
	c.Photos = append([]string(nil), t.Photos...)
	return c
}
