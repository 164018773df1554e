package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-budget-stats/internal/models"
)

//go:generate mockgen -source=history.go -destination=mock_history.go -package=handlers

// TransactionHistoryReader defines the interface that the service must implement.
type TransactionHistoryReader interface {
	History(ctx context.Context, userID string, from, to time.Time) ([]models.Transaction, error)
}

// NewTransactionHistoryHandler returns an HTTP handler listing the user's transactions in a date range.
// @Summary Transaction history
// @Tags transactions
// @Produce json
// @Param from query string true "Range start"
// @Param to query string true "Range end"
// @Success 200 {array} models.Transaction "Transactions, newest first"
// @Failure 400 {object} handlers.ErrorResponse "Invalid date range"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/transactions-history [get]
// @Security BearerAuth
func NewTransactionHistoryHandler(
	svc TransactionHistoryReader,
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
			reqLog(r).Warnw("invalid history range", "from", query.Get("from"), "to", query.Get("to"), "error", err)
			writeError(w, http.StatusBadRequest, msgInvalidDateRange)
			return
		}

		txs, err := svc.History(ctx, id.UserID, dateRange.From, dateRange.To)
		if err != nil {
			reqLog(r).Errorw("failed to get transaction history", "userID", id.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, txs)
	}
}
