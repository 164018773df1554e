package handlers

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-budget-stats/internal/models"
	"github.com/sbilibin2017/gw-budget-stats/internal/validators"
)

//go:generate mockgen -source=transaction.go -destination=mock_transaction.go -package=handlers

// TransactionCreator defines the interface that the service must implement.
type TransactionCreator interface {
	Create(ctx context.Context, userID string, in models.NewTransaction) (*models.Transaction, error)
}

// CreateTransactionRequest represents the JSON body for recording a transaction
// swagger:model CreateTransactionRequest
type CreateTransactionRequest struct {
	// Amount, must be positive
	// required: true
	// default: 100.0
	Amount float64 `json:"amount"`

	// Free-form description
	// default: Salary
	Description string `json:"description"`

	// Date of the transaction
	// required: true
	// default: 2024-01-01
	Date string `json:"date"`

	// Transaction type
	// required: true
	// default: income
	Type string `json:"type"`

	// Category name
	// required: true
	// default: salary
	Category string `json:"category"`
}

// NewCreateTransactionHandler returns an HTTP handler recording a transaction for the user.
// @Summary Create transaction
// @Description Records an income or expense of the authenticated user
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.CreateTransactionRequest true "Transaction"
// @Success 201 {object} models.Transaction "Transaction recorded"
// @Failure 400 {object} handlers.ErrorResponse "Invalid transaction"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/transactions [post]
// @Security BearerAuth
func NewCreateTransactionHandler(svc TransactionCreator, signInURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, ok := requireIdentity(w, r, signInURL)
		if !ok {
			return
		}

		var req CreateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			reqLog(r).Errorw("failed to decode transaction request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		date, err := validators.ParseDate(req.Date)
		if err != nil {
			reqLog(r).Warnw("invalid transaction date", "date", req.Date)
			writeError(w, http.StatusBadRequest, "Invalid transaction")
			return
		}
		// Amounts are stored with two decimals; anything rounding to zero cents is rejected.
		amount := math.Round(req.Amount*100) / 100
		if amount <= 0 || !models.IsValidTransactionType(req.Type) || strings.TrimSpace(req.Category) == "" {
			reqLog(r).Warnw("invalid transaction", "amount", req.Amount, "type", req.Type, "category", req.Category)
			writeError(w, http.StatusBadRequest, "Invalid transaction")
			return
		}

		txn, err := svc.Create(ctx, id.UserID, models.NewTransaction{
			Amount:      amount,
			Description: req.Description,
			Date:        date,
			Type:        req.Type,
			Category:    strings.TrimSpace(req.Category),
		})
		if err != nil {
			reqLog(r).Errorw("failed to create transaction", "userID", id.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusCreated, txn)
	}
}
