package handlers

import "net/http"

// OverviewOptionsResponse carries the range limits the UI offers to the user
// swagger:model OverviewOptionsResponse
type OverviewOptionsResponse struct {
	// Widest selectable date range in days
	// default: 90
	MaxDateRangeDays int `json:"maxDateRangeDays"`
}

// NewOverviewOptionsHandler returns an HTTP handler exposing the configured
// maximum date range, so the UI and the stats endpoints share one value.
// @Summary Get overview options
// @Tags stats
// @Produce json
// @Success 200 {object} handlers.OverviewOptionsResponse "Overview options"
// @Router /api/overview/options [get]
func NewOverviewOptionsHandler(maxDateRangeDays int) http.HandlerFunc {
	resp := OverviewOptionsResponse{MaxDateRangeDays: maxDateRangeDays}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, resp)
	}
}
