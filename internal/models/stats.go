package models

import "time"

// DefaultMaxDateRangeDays is the widest date range, in days, the statistics
// endpoints accept unless configured otherwise.
const DefaultMaxDateRangeDays = 90

// DateRange is a validated inclusive pair of timestamps.
type DateRange struct {
	From time.Time
	To   time.Time
}

// BalanceStats holds summed transaction amounts per type for a date range.
type BalanceStats struct {
	Expense float64 `json:"expense"`
	Income  float64 `json:"income"`
}

// CategoryStats holds the summed amount of one (type, category) pair.
type CategoryStats struct {
	Type     string  `json:"type" db:"type"`
	Category string  `json:"category" db:"category"`
	Amount   float64 `json:"amount" db:"amount"`
}
