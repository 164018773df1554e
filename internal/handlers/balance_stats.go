package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-budget-stats/internal/models"
)

//go:generate mockgen -source=balance_stats.go -destination=mock_balance_stats.go -package=handlers

// DateRangeValidator validates raw "from"/"to" query values.
type DateRangeValidator interface {
	Validate(from, to string) (models.DateRange, error)
}

// BalanceStatsGetter defines the interface that the service must implement.
type BalanceStatsGetter interface {
	GetBalanceStats(ctx context.Context, userID string, from, to time.Time) (models.BalanceStats, error)
}

// BalanceStatsResponse represents summed income and expense over a date range
// swagger:model BalanceStatsResponse
type BalanceStatsResponse struct {
	// Summed expense amount
	// default: 40
	Expense float64 `json:"expense"`

	// Summed income amount
	// default: 100
	Income float64 `json:"income"`
}

// NewGetBalanceStatsHandler returns an HTTP handler for balance statistics.
// @Summary Get balance statistics
// @Description Returns the summed income and expense of the user for transactions dated within [from, to]
// @Tags stats
// @Produce json
// @Param from query string true "Range start (date or RFC 3339 timestamp)"
// @Param to query string true "Range end (date or RFC 3339 timestamp)"
// @Success 200 {object} handlers.BalanceStatsResponse "Balance statistics"
// @Failure 307 "Redirect to sign-in"
// @Failure 400 {object} handlers.ErrorResponse "Invalid date range"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/stats/balance [get]
// @Security BearerAuth
func NewGetBalanceStatsHandler(
	svc BalanceStatsGetter,
	validator DateRangeValidator,
	signInURL string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, ok := requireIdentity(w, r, signInURL)
		if !ok {
			return
		}

		query := r.URL.Query()
		dateRange, err := validator.Validate(query.Get("from"), query.Get("to"))
		if err != nil {
			reqLog(r).Warnw("invalid balance stats range", "from", query.Get("from"), "to", query.Get("to"), "error", err)
			writeError(w, http.StatusBadRequest, msgInvalidDateRange)
			return
		}

		stats, err := svc.GetBalanceStats(ctx, id.UserID, dateRange.From, dateRange.To)
		if err != nil {
			reqLog(r).Errorw("failed to get balance stats", "userID", id.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, BalanceStatsResponse{
			Expense: stats.Expense,
			Income:  stats.Income,
		})
	}
}
