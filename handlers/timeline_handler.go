package handlers

import (
	"fmt"
	"net/http"

	apperrors "github.com/NomadCrew/travel-timeline-backend/errors"
	"github.com/NomadCrew/travel-timeline-backend/types"
	"github.com/gin-gonic/gin"
)

// TimelineHandler serves the filtered timeline view and the stored preferences.
type TimelineHandler struct {
	tripService       TripServiceInterface
	preferenceService PreferenceServiceInterface
}

func NewTimelineHandler(tripService TripServiceInterface, preferenceService PreferenceServiceInterface) *TimelineHandler {
	return &TimelineHandler{
		tripService:       tripService,
		preferenceService: preferenceService,
	}
}

// PreferencesRequest is the full preferences record as written by the client.
// Empty selector fields mean "all".
type PreferencesRequest struct {
	Year      string `json:"year"`
	Country   string `json:"country"`
	Continent string `json:"continent"`
	Season    string `json:"season"`
	Budget    string `json:"budget" binding:"required,oneof=all budget mid luxury"`
	Tag       string `json:"tag"`
	Search    string `json:"search"`
	Unit      string `json:"unit" binding:"required,oneof=km mi"`
	Layout    string `json:"layout" binding:"required,oneof=alternating stacked"`
}

func (r PreferencesRequest) toPreferences() types.Preferences {
	orAll := func(v string) string {
		if v == "" {
			return types.FilterAll
		}
		return v
	}
	return types.Preferences{
		Year:      orAll(r.Year),
		Country:   orAll(r.Country),
		Continent: orAll(r.Continent),
		Season:    orAll(r.Season),
		Budget:    types.BudgetRange(r.Budget),
		Tag:       orAll(r.Tag),
		Search:    r.Search,
		Unit:      types.DistanceUnit(r.Unit),
		Layout:    types.LayoutMode(r.Layout),
	}
}

// overlayQuery applies the selectors present in the query string on top of prefs.
func overlayQuery(c *gin.Context, prefs types.Preferences) (types.Preferences, error) {
	for key, dst := range map[string]*string{
		"year":      &prefs.Year,
		"country":   &prefs.Country,
		"continent": &prefs.Continent,
		"season":    &prefs.Season,
		"tag":       &prefs.Tag,
		"search":    &prefs.Search,
	} {
		if v, ok := c.GetQuery(key); ok {
			*dst = v
		}
	}

	if v, ok := c.GetQuery("budget"); ok {
		if !types.BudgetRange(v).IsValid() {
			return prefs, apperrors.ValidationFailed("Invalid timeline query", fmt.Sprintf("unknown budget %q", v))
		}
		prefs.Budget = types.BudgetRange(v)
	}
	if v, ok := c.GetQuery("unit"); ok {
		if !types.DistanceUnit(v).IsValid() {
			return prefs, apperrors.ValidationFailed("Invalid timeline query", fmt.Sprintf("unknown unit %q", v))
		}
		prefs.Unit = types.DistanceUnit(v)
	}
	if v, ok := c.GetQuery("layout"); ok {
		if !types.LayoutMode(v).IsValid() {
			return prefs, apperrors.ValidationFailed("Invalid timeline query", fmt.Sprintf("unknown layout %q", v))
		}
		prefs.Layout = types.LayoutMode(v)
	}

	return prefs, nil
}

// GetTimelineHandler godoc
// @Summary Timeline view
// @Description Stored preferences overlaid with query parameters, then the filtered trips with legs, filter options, insights and route distance
// @Tags timeline
// @Produce json
// @Param year query string false "Year or all"
// @Param country query string false "Country or all"
// @Param continent query string false "Continent or all"
// @Param season query string false "Season or all"
// @Param budget query string false "all, budget, mid or luxury"
// @Param tag query string false "Tag or all"
// @Param search query string false "Free text search"
// @Param unit query string false "km or mi"
// @Param layout query string false "alternating or stacked"
// @Param compare query string false "Comma separated trip IDs selected for comparison"
// @Success 200 {object} trip.Timeline
// @Failure 400 {object} types.ErrorResponse
// @Router /timeline [get]
func (h *TimelineHandler) GetTimelineHandler(c *gin.Context) {
	ctx := c.Request.Context()

	prefs, err := overlayQuery(c, h.preferenceService.Load(ctx))
	if err != nil {
		_ = c.Error(err)
		return
	}

	timeline, err := h.tripService.Timeline(ctx, prefs, splitIDs(c.Query("compare")))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, timeline)
}

// GetPreferencesHandler godoc
// @Summary Load preferences
// @Description Returns the stored preferences, or the defaults when none are stored
// @Tags preferences
// @Produce json
// @Success 200 {object} types.Preferences
// @Router /preferences [get]
func (h *TimelineHandler) GetPreferencesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.preferenceService.Load(c.Request.Context()))
}

// UpdatePreferencesHandler godoc
// @Summary Save preferences
// @Description Replaces the stored preferences record
// @Tags preferences
// @Accept json
// @Produce json
// @Param request body PreferencesRequest true "Preferences"
// @Success 200 {object} types.Preferences
// @Failure 400 {object} types.ErrorResponse
// @Router /preferences [put]
func (h *TimelineHandler) UpdatePreferencesHandler(c *gin.Context) {
	var req PreferencesRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	prefs := req.toPreferences()
	if err := h.preferenceService.Save(c.Request.Context(), prefs); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}
