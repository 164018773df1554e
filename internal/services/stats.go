package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-budget-stats/internal/logger"
	"github.com/sbilibin2017/gw-budget-stats/internal/models"
)

//go:generate mockgen -source=stats.go -destination=mock_stats.go -package=services

// TransactionAggregator groups stored transactions and sums their amounts.
type TransactionAggregator interface {
	SumByType(ctx context.Context, userID string, from, to time.Time) (map[string]float64, error)
	SumByCategory(ctx context.Context, userID string, from, to time.Time, txType *string) ([]models.CategoryStats, error)
}

// StatsService computes per-user transaction statistics over a date range.
type StatsService struct {
	aggregator TransactionAggregator
}

// NewStatsService creates a new StatsService.
func NewStatsService(aggregator TransactionAggregator) *StatsService {
	return &StatsService{aggregator: aggregator}
}

// GetBalanceStats returns the summed income and expense of userID for
// transactions dated within [from, to]. Types other than income and expense
// are left out of both totals.
func (s *StatsService) GetBalanceStats(ctx context.Context, userID string, from, to time.Time) (models.BalanceStats, error) {
	totals, err := s.aggregator.SumByType(ctx, userID, from, to)
	if err != nil {
		logger.Log.Errorw("failed to sum transactions by type", "userID", userID, "from", from, "to", to, "error", err)
		return models.BalanceStats{}, fmt.Errorf("sum transactions by type: %w", err)
	}

	return models.BalanceStats{
		Expense: totals[models.TransactionTypeExpense],
		Income:  totals[models.TransactionTypeIncome],
	}, nil
}

// GetCategoryStats returns per-category totals of userID within [from, to].
// An empty txType means every recognised type.
func (s *StatsService) GetCategoryStats(ctx context.Context, userID string, from, to time.Time, txType string) ([]models.CategoryStats, error) {
	var filter *string
	if txType != "" {
		filter = &txType
	}

	stats, err := s.aggregator.SumByCategory(ctx, userID, from, to, filter)
	if err != nil {
		logger.Log.Errorw("failed to sum transactions by category", "userID", userID, "type", txType, "error", err)
		return nil, fmt.Errorf("sum transactions by category: %w", err)
	}

	result := make([]models.CategoryStats, 0, len(stats))
	for _, st := range stats {
		if models.IsValidTransactionType(st.Type) {
			result = append(result, st)
		}
	}
	return result, nil
}
