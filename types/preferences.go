package types

import (
	"encoding/json"
)

// PreferencesStorageKey is the fixed key the timeline preferences live under.
const PreferencesStorageKey = "travel-timeline-preferences-v1"

// FilterAll disables a selector filter.
const FilterAll = "all"

type BudgetRange string

const (
	BudgetAll    BudgetRange = "all"
	BudgetLow    BudgetRange = "budget"
	BudgetMid    BudgetRange = "mid"
	BudgetLuxury BudgetRange = "luxury"
)

func (b BudgetRange) IsValid() bool {
	switch b {
	case BudgetAll, BudgetLow, BudgetMid, BudgetLuxury:
		return true
	default:
		return false
	}
}

type DistanceUnit string

const (
	UnitKm DistanceUnit = "km"
	UnitMi DistanceUnit = "mi"
)

func (u DistanceUnit) IsValid() bool {
	return u == UnitKm || u == UnitMi
}

type LayoutMode string

const (
	LayoutAlternating LayoutMode = "alternating"
	LayoutStacked     LayoutMode = "stacked"
)

func (l LayoutMode) IsValid() bool {
	return l == LayoutAlternating || l == LayoutStacked
}

// Preferences holds the timeline's filter, sort and unit selections.
// It never carries trip data.
type Preferences struct {
	Year      string       `json:"year"`
	Country   string       `json:"country"`
	Continent string       `json:"continent"`
	Season    string       `json:"season"`
	Budget    BudgetRange  `json:"budget"`
	Tag       string       `json:"tag"`
	Search    string       `json:"search"`
	Unit      DistanceUnit `json:"unit"`
	Layout    LayoutMode   `json:"layout"`
}

// DefaultPreferences returns the preferences a fresh timeline starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		Year:      FilterAll,
		Country:   FilterAll,
		Continent: FilterAll,
		Season:    FilterAll,
		Budget:    BudgetAll,
		Tag:       FilterAll,
		Search:    "",
		Unit:      UnitKm,
		Layout:    LayoutAlternating,
	}
}

// DecodePreferences parses a stored preferences record. Each field is checked
// on its own and falls back to its default when missing or of the wrong shape.
// corrupt is true when raw is not a JSON object at all.
func DecodePreferences(raw []byte) (prefs Preferences, corrupt bool) {
	prefs = DefaultPreferences()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return prefs, true
	}

	readString(fields, "year", &prefs.Year)
	readString(fields, "country", &prefs.Country)
	readString(fields, "continent", &prefs.Continent)
	readString(fields, "season", &prefs.Season)
	readString(fields, "tag", &prefs.Tag)
	readString(fields, "search", &prefs.Search)

	var budget string
	if readString(fields, "budget", &budget) && BudgetRange(budget).IsValid() {
		prefs.Budget = BudgetRange(budget)
	}
	var unit string
	if readString(fields, "unit", &unit) && DistanceUnit(unit).IsValid() {
		prefs.Unit = DistanceUnit(unit)
	}
	var layout string
	if readString(fields, "layout", &layout) && LayoutMode(layout).IsValid() {
		prefs.Layout = LayoutMode(layout)
	}

	return prefs, false
}

// readString copies fields[key] into dst when it holds a JSON string.
func readString(fields map[string]json.RawMessage, key string, dst *string) bool {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false
	}
	*dst = s
	return true
}
