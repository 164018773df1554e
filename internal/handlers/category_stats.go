package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-budget-stats/internal/models"
)

//go:generate mockgen -source=category_stats.go -destination=mock_category_stats.go -package=handlers

// CategoryStatsGetter defines the interface that the service must implement.
type CategoryStatsGetter interface {
	GetCategoryStats(ctx context.Context, userID string, from, to time.Time, txType string) ([]models.CategoryStats, error)
}

// NewGetCategoryStatsHandler returns an HTTP handler for per-category totals.
// @Summary Get category statistics
// @Description Returns summed amounts per type and category for transactions dated within [from, to]
// @Tags stats
// @Produce json
// @Param from query string true "Range start"
// @Param to query string true "Range end"
// @Param type query string false "income or expense"
// @Success 200 {array} models.CategoryStats "Category statistics"
// @Failure 400 {object} handlers.ErrorResponse "Invalid date range / invalid type"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/stats/categories [get]
// @Security BearerAuth
func NewGetCategoryStatsHandler(
	svc CategoryStatsGetter,
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
			reqLog(r).Warnw("invalid category stats range", "from", query.Get("from"), "to", query.Get("to"), "error", err)
			writeError(w, http.StatusBadRequest, msgInvalidDateRange)
			return
		}

		txType := query.Get("type")
		if txType != "" && !models.IsValidTransactionType(txType) {
			reqLog(r).Warnw("invalid category stats type", "type", txType)
			writeError(w, http.StatusBadRequest, "Invalid transaction type")
			return
		}

		stats, err := svc.GetCategoryStats(ctx, id.UserID, dateRange.From, dateRange.To, txType)
		if err != nil {
			reqLog(r).Errorw("failed to get category stats", "userID", id.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
