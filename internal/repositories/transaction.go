package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-budget-stats/internal/logger"
	"github.com/sbilibin2017/gw-budget-stats/internal/models"
)

// TransactionReadRepository handles transaction read and aggregation queries
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// SumByType groups the user's transactions dated within [from, to] by type and
// sums their amounts. Types without transactions are absent from the result.
func (r *TransactionReadRepository) SumByType(ctx context.Context, userID string, from, to time.Time) (map[string]float64, error) {
	const query = `
		SELECT type, SUM(amount) AS total
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		GROUP BY type
	`

	var rows []struct {
		Type  string  `db:"type"`
		Total float64 `db:"total"`
	}

	err := r.db.SelectContext(ctx, &rows, query, userID, from, to)

	totals := make(map[string]float64, len(rows))
	for _, row := range rows {
		totals[row.Type] = row.Total
	}

	logger.Log.Infow("sql query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, from, to},
		"result", totals,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return totals, nil
}

// SumByCategory sums the user's transaction amounts within [from, to] per
// (type, category). A non-nil txType restricts the result to that type.
func (r *TransactionReadRepository) SumByCategory(ctx context.Context, userID string, from, to time.Time, txType *string) ([]models.CategoryStats, error) {
	const query = `
		SELECT type, category, SUM(amount) AS amount
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		  AND ($4::TEXT IS NULL OR type = $4)
		GROUP BY type, category
		ORDER BY amount DESC, category
	`

	stats := []models.CategoryStats{}
	err := r.db.SelectContext(ctx, &stats, query, userID, from, to, txType)

	logger.Log.Infow("sql query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, from, to, txType},
		"result", len(stats),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return stats, nil
}

// ListByUserID returns the user's transactions dated within [from, to], newest first.
func (r *TransactionReadRepository) ListByUserID(ctx context.Context, userID string, from, to time.Time) ([]models.Transaction, error) {
	const query = `
		SELECT id, user_id, amount, description, date, type, category, created_at
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC, created_at DESC
	`

	txs := []models.Transaction{}
	err := r.db.SelectContext(ctx, &txs, query, userID, from, to)

	logger.Log.Infow("sql query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, from, to},
		"result", len(txs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return txs, nil
}

// TransactionWriteRepository handles transaction write operations
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a transaction, using the request-scoped SQL transaction when present.
func (r *TransactionWriteRepository) Save(ctx context.Context, t models.Transaction) error {
	const query = `
		INSERT INTO transactions (id, user_id, amount, description, date, type, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	args := []any{t.ID, t.UserID, t.Amount, t.Description, t.Date, t.Type, t.Category, t.CreatedAt}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("sql query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
