package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction types recognised by the statistics endpoints.
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Transaction represents a single recorded financial movement of a user.
type Transaction struct {
	ID          uuid.UUID `json:"id" db:"id"`                   // Primary key
	UserID      string    `json:"user_id" db:"user_id"`         // Owner of the transaction
	Amount      float64   `json:"amount" db:"amount"`           // Non-negative amount
	Description string    `json:"description" db:"description"` // Free-form note
	Date        time.Time `json:"date" db:"date"`               // When the movement happened
	Type        string    `json:"type" db:"type"`               // income or expense
	Category    string    `json:"category" db:"category"`       // User category name
	CreatedAt   time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
}

// NewTransaction holds the user-supplied fields of a transaction to be recorded.
type NewTransaction struct {
	Amount      float64
	Description string
	Date        time.Time
	Type        string
	Category    string
}

// IsValidTransactionType reports whether t is one of the recognised transaction types.
func IsValidTransactionType(t string) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// TransactionEvent is the message published when a transaction is recorded.
type TransactionEvent struct {
	TransactionID string  `json:"transaction_id"` // Unique identifier of the transaction
	Timestamp     int64   `json:"timestamp"`      // Unix time (seconds) of the transaction date
	Amount        float64 `json:"amount"`         // Monetary value
	UserID        string  `json:"user_id"`        // Owner of the transaction
	Type          string  `json:"type"`           // income or expense
	Category      string  `json:"category"`       // User category name
	Operation     string  `json:"operation"`      // Event kind, e.g. "created"
}
