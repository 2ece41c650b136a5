package trip

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/NomadCrew/travel-timeline-backend/errors"
	"github.com/NomadCrew/travel-timeline-backend/models/trip/validation"
	"github.com/NomadCrew/travel-timeline-backend/pkg/valueobjects"
	"github.com/NomadCrew/travel-timeline-backend/types"
	"github.com/google/uuid"
)

const (
	DefaultTemperature = 22.0
	DefaultTag         = "Adventure"
	DefaultPhoto       = "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?auto=format&fit=crop&q=80&w=800"

	formDateLayout  = "2006-01-02"
	rangeDateLayout = "January 2, 2006"
)

// expenseShare is one slice of the generated cost breakdown.
type expenseShare struct {
	category string
	percent  int64
	color    string
}

var expenseShares = []expenseShare{
	{"Accommodation", 40, "#C17767"},
	{"Food", 25, "#8AA399"},
	{"Activities", 20, "#1A2238"},
}

const (
	transportCategory = "Transport"
	transportColor    = "#E5E7EB"
)

// AddTripForm is the add-trip form as submitted. Numbers arrive as text.
type AddTripForm struct {
	Destination string                 `json:"destination" binding:"required"`
	Location    string                 `json:"location" binding:"required"`
	Latitude    string                 `json:"latitude" binding:"required"`
	Longitude   string                 `json:"longitude" binding:"required"`
	StartDate   string                 `json:"startDate" binding:"required"`
	EndDate     string                 `json:"endDate" binding:"required"`
	Duration    string                 `json:"duration" binding:"required"`
	Temp        string                 `json:"temp"`
	Condition   types.WeatherCondition `json:"condition" binding:"omitempty,oneof=sunny cloudy rainy"`
	Season      types.Season           `json:"season" binding:"omitempty,oneof=Spring Summer Autumn Winter"`
	TotalCost   string                 `json:"totalCost" binding:"required"`
	Notes       string                 `json:"notes" binding:"required"`
	Tags        string                 `json:"tags"`
	Photos      string                 `json:"photos"`
}

// NewTripFromForm builds a trip from the form: it trims text, parses numbers and
// dates, splits the total cost into the standard breakdown and assigns a new id.
func NewTripFromForm(form AddTripForm) (types.Trip, error) {
	var problems []string

	required := []struct{ name, value string }{
		{"destination", form.Destination},
		{"location", form.Location},
		{"latitude", form.Latitude},
		{"longitude", form.Longitude},
		{"startDate", form.StartDate},
		{"endDate", form.EndDate},
		{"duration", form.Duration},
		{"totalCost", form.TotalCost},
		{"notes", form.Notes},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			problems = append(problems, field.name+" is required")
		}
	}
	if len(problems) > 0 {
		return types.Trip{}, errors.ValidationFailed("Invalid trip form", strings.Join(problems, "; "))
	}

	lat, err := parseNumber("latitude", form.Latitude)
	if err != nil {
		problems = append(problems, err.Error())
	}
	lng, err := parseNumber("longitude", form.Longitude)
	if err != nil {
		problems = append(problems, err.Error())
	}
	totalCost, err := parseNumber("totalCost", form.TotalCost)
	if err != nil {
		problems = append(problems, err.Error())
	}
	temp := DefaultTemperature
	if strings.TrimSpace(form.Temp) != "" {
		if temp, err = parseNumber("temp", form.Temp); err != nil {
			problems = append(problems, err.Error())
		}
	}

	start, err := time.Parse(formDateLayout, strings.TrimSpace(form.StartDate))
	if err != nil {
		problems = append(problems, "startDate must be a YYYY-MM-DD date")
	}
	end, err := time.Parse(formDateLayout, strings.TrimSpace(form.EndDate))
	if err != nil {
		problems = append(problems, "endDate must be a YYYY-MM-DD date")
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		problems = append(problems, "endDate cannot be before startDate")
	}

	if len(problems) > 0 {
		return types.Trip{}, errors.ValidationFailed("Invalid trip form", strings.Join(problems, "; "))
	}

	point, err := valueobjects.NewGeoPoint(lat, lng)
	if err != nil {
		return types.Trip{}, err
	}

	condition := form.Condition
	if condition == "" {
		condition = types.WeatherSunny
	}
	season := form.Season
	if season == "" {
		season = types.SeasonSummer
	}

	expenses, err := SplitExpenses(totalCost)
	if err != nil {
		return types.Trip{}, err
	}

	tags := splitList(form.Tags)
	if len(tags) == 0 {
		tags = []string{DefaultTag}
	}
	photos := splitList(form.Photos)
	if len(photos) == 0 {
		photos = []string{DefaultPhoto}
	}

	trip := types.Trip{
		ID:          uuid.NewString(),
		Destination: strings.TrimSpace(form.Destination),
		Location:    strings.TrimSpace(form.Location),
		Coordinates: point.Coordinates(),
		DateRange:   start.Format(rangeDateLayout) + " - " + end.Format(rangeDateLayout),
		Duration:    strings.TrimSpace(form.Duration),
		Weather: types.Weather{
			Temp:      temp,
			Condition: condition,
			Season:    season,
		},
		Expenses:  expenses,
		TotalCost: totalCost,
		Notes:     strings.TrimSpace(form.Notes),
		Tags:      tags,
		Photos:    photos,
	}

	if err := validation.ValidateTrip(&trip); err != nil {
		return types.Trip{}, err
	}
	return trip, nil
}

// SplitExpenses breaks total into the standard breakdown: 40% accommodation,
// 25% food and 20% activities, each rounded to whole units, and transport
// taking the rest of the total less its rounded 85%, never below zero.
func SplitExpenses(total float64) ([]types.Expense, error) {
	money, err := valueobjects.NewMoneyFromFloat(total, valueobjects.TripCurrency)
	if err != nil {
		return nil, err
	}

	expenses := make([]types.Expense, 0, len(expenseShares)+1)
	var allocated int64
	for _, share := range expenseShares {
		expenses = append(expenses, types.Expense{
			Category: share.category,
			Amount:   money.Percent(share.percent).Float64(),
			Color:    share.color,
		})
		allocated += share.percent
	}

	transport, err := money.Remainder(money.Percent(allocated))
	if err != nil {
		return nil, err
	}
	expenses = append(expenses, types.Expense{
		Category: transportCategory,
		Amount:   transport.Float64(),
		Color:    transportColor,
	})

	return expenses, nil
}

// ExpenseTotal sums the expense breakdown in decimal. It approximates
// TotalCost but nothing enforces that the two agree.
func ExpenseTotal(trip types.Trip) (float64, error) {
	total, err := valueobjects.NewMoneyFromFloat(0, valueobjects.TripCurrency)
	if err != nil {
		return 0, err
	}
	for _, expense := range trip.Expenses {
		amount, err := valueobjects.NewMoneyFromFloat(expense.Amount, valueobjects.TripCurrency)
		if err != nil {
			return 0, fmt.Errorf("expense %s: %w", expense.Category, err)
		}
		if total, err = total.Add(*amount); err != nil {
			return 0, err
		}
	}
	return total.Float64(), nil
}

func parseNumber(field, raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", field)
	}
	return value, nil
}

// splitList splits a comma-separated list, trimming entries and dropping blanks.
func splitList(raw string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
