package tripmetrics

import (
	"strings"

	"github.com/NomadCrew/travel-timeline-backend/types"
)

// OtherContinent is reported for countries missing from the table.
const OtherContinent = "Other"

// ContinentTable maps a country name, as it appears at the end of a
// destination, to its continent. It is an open lookup, not a geography database.
type ContinentTable map[string]string

var defaultContinents = ContinentTable{
	"Japan":   "Asia",
	"Greece":  "Europe",
	"Iceland": "Europe",
}

// DefaultContinents returns a copy of the built-in table.
func DefaultContinents() ContinentTable {
	return defaultContinents.With(nil)
}

// With returns a new table holding t's entries overlaid with extra.
func (t ContinentTable) With(extra map[string]string) ContinentTable {
	merged := make(ContinentTable, len(t)+len(extra))
	for country, continent := range t {
		merged[country] = continent
	}
	for country, continent := range extra {
		country = strings.TrimSpace(country)
		continent = strings.TrimSpace(continent)
		if country == "" || continent == "" {
			continue
		}
		merged[country] = continent
	}
	return merged
}

// Lookup returns the continent for country, or OtherContinent.
func (t ContinentTable) Lookup(country string) string {
	if continent, ok := t[country]; ok {
		return continent
	}
	return OtherContinent
}

// TripContinent resolves the continent of the trip's country.
func (t ContinentTable) TripContinent(trip types.Trip) string {
	return t.Lookup(TripCountry(trip))
}

// ParseContinentPairs reads "Country=Continent" entries. Malformed entries are skipped.
func ParseContinentPairs(pairs []string) map[string]string {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		country, continent, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		country = strings.TrimSpace(country)
		continent = strings.TrimSpace(continent)
		if country == "" || continent == "" {
			continue
		}
		out[country] = continent
	}
	return out
}
