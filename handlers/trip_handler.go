package handlers

import (
	"net/http"
	"strings"

	apperrors "github.com/NomadCrew/travel-timeline-backend/errors"
	"github.com/NomadCrew/travel-timeline-backend/models/trip"
	"github.com/NomadCrew/travel-timeline-backend/types"
	"github.com/gin-gonic/gin"
)

// TripHandler handles HTTP requests related to the trip collection.
type TripHandler struct {
	tripService TripServiceInterface
}

// NewTripHandler creates a new TripHandler with the given dependencies.
func NewTripHandler(tripService TripServiceInterface) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// CompareToggleRequest asks to toggle one trip in a comparison selection.
type CompareToggleRequest struct {
	Selection []string `json:"selection"`
	TripID    string   `json:"tripId" binding:"required"`
}

// CompareToggleResponse is the selection after a toggle.
type CompareToggleResponse struct {
	Selection []string `json:"selection"`
}

// bindJSONOrError binds JSON request body and sets validation error if binding fails.
// Returns true if binding succeeded, false if error was set (caller should return).
func bindJSONOrError(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(apperrors.ValidationFailed("invalid_request_payload", err.Error()))
		return false
	}
	return true
}

// splitIDs reads a comma separated id list, dropping blanks.
func splitIDs(raw string) []string {
	ids := make([]string, 0, trip.MaxCompare)
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// ListTripsHandler godoc
// @Summary List trips
// @Description Returns every trip in collection order
// @Tags trips
// @Produce json
// @Success 200 {object} types.TripListResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /trips [get]
func (h *TripHandler) ListTripsHandler(c *gin.Context) {
	trips, err := h.tripService.ListTrips(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.TripListResponse{Trips: trips, Total: len(trips)})
}

// GetTripHandler godoc
// @Summary Get trip details
// @Description Returns one trip with its derived year, month, country, continent, days and budget
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} trip.DetailedTrip
// @Failure 404 {object} types.ErrorResponse
// @Router /trips/{id} [get]
func (h *TripHandler) GetTripHandler(c *gin.Context) {
	detailed, err := h.tripService.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, detailed)
}

// CreateTripHandler godoc
// @Summary Add a trip
// @Description Converts the add-trip form into a trip and appends it to the timeline
// @Tags trips
// @Accept json
// @Produce json
// @Param request body trip.AddTripForm true "Add-trip form"
// @Success 201 {object} types.Trip
// @Failure 400 {object} types.ErrorResponse
// @Failure 409 {object} types.ErrorResponse
// @Router /trips [post]
func (h *TripHandler) CreateTripHandler(c *gin.Context) {
	var form trip.AddTripForm
	if !bindJSONOrError(c, &form) {
		return
	}

	created, err := h.tripService.CreateTrip(c.Request.Context(), form)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// CompareTripsHandler godoc
// @Summary Compare trips
// @Description Compares up to two trips side by side. Unknown ids are skipped.
// @Tags trips
// @Produce json
// @Param ids query string true "Comma separated trip IDs"
// @Success 200 {array} trip.ComparedTrip
// @Failure 400 {object} types.ErrorResponse
// @Router /trips/compare [get]
func (h *TripHandler) CompareTripsHandler(c *gin.Context) {
	compared, err := h.tripService.Compare(c.Request.Context(), splitIDs(c.Query("ids")))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, compared)
}

// ToggleCompareHandler godoc
// @Summary Toggle a trip in the comparison selection
// @Description Removes the trip when selected, otherwise adds it while fewer than two are selected
// @Tags trips
// @Accept json
// @Produce json
// @Param request body CompareToggleRequest true "Current selection and trip"
// @Success 200 {object} CompareToggleResponse
// @Failure 400 {object} types.ErrorResponse
// @Router /compare/toggle [post]
func (h *TripHandler) ToggleCompareHandler(c *gin.Context) {
	var req CompareToggleRequest
	if !bindJSONOrError(c, &req) {
		return
	}
	if len(req.Selection) > trip.MaxCompare {
		_ = c.Error(apperrors.InvalidCompareSelection("selection already holds more than two trips"))
		return
	}

	c.JSON(http.StatusOK, CompareToggleResponse{Selection: trip.ToggleCompare(req.Selection, req.TripID)})
}

// StatsHandler godoc
// @Summary Stats dashboard
// @Description Countries visited, km traveled, total trips and unique tags
// @Tags stats
// @Produce json
// @Success 200 {object} trip.Stats
// @Router /stats [get]
func (h *TripHandler) StatsHandler(c *gin.Context) {
	stats, err := h.tripService.Stats(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// InsightsHandler godoc
// @Summary Collection insights
// @Description Most expensive trip, warmest month and average daily spend over every trip
// @Tags stats
// @Produce json
// @Success 200 {object} tripmetrics.TripInsights
// @Router /insights [get]
func (h *TripHandler) InsightsHandler(c *gin.Context) {
	insights, err := h.tripService.Insights(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, insights)
}
