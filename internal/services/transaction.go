package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-budget-stats/internal/logger"
	"github.com/sbilibin2017/gw-budget-stats/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=transaction.go -destination=mock_transaction.go -package=services

// TransactionWriter persists new transactions.
type TransactionWriter interface {
	Save(ctx context.Context, t models.Transaction) error // Inserts a transaction
}

// TransactionReader lists stored transactions.
type TransactionReader interface {
	ListByUserID(ctx context.Context, userID string, from, to time.Time) ([]models.Transaction, error) // Returns transactions in range, newest first
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransactionService records transactions and publishes them to Kafka.
type TransactionService struct {
	writer      TransactionWriter
	reader      TransactionReader
	kafkaWriter KafkaWriter
	afterCommit func(ctx context.Context, fn func())
	now         func() time.Time
}

// TransactionServiceOption configures a TransactionService.
type TransactionServiceOption func(*TransactionService)

// WithAfterCommit routes event publishing through hook, which decides when
// fn runs. Used to publish only once the request transaction has committed.
func WithAfterCommit(hook func(ctx context.Context, fn func())) TransactionServiceOption {
	return func(s *TransactionService) {
		s.afterCommit = hook
	}
}

// NewTransactionService creates a new TransactionService. kafkaWriter may be nil.
// Without WithAfterCommit events are published right after the insert.
func NewTransactionService(
	writer TransactionWriter,
	reader TransactionReader,
	kafkaWriter KafkaWriter,
	opts ...TransactionServiceOption,
) *TransactionService {
	s := &TransactionService{
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
		afterCommit: func(_ context.Context, fn func()) { fn() },
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create records a new transaction for userID and publishes a created event.
func (s *TransactionService) Create(ctx context.Context, userID string, in models.NewTransaction) (*models.Transaction, error) {
	txn := models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      in.Amount,
		Description: in.Description,
		Date:        in.Date,
		Type:        in.Type,
		Category:    in.Category,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.writer.Save(ctx, txn); err != nil {
		logger.Log.Errorw("failed to save transaction", "userID", userID, "type", in.Type, "amount", in.Amount, "error", err)
		return nil, fmt.Errorf("save transaction: %w", err)
	}

	s.afterCommit(ctx, func() {
		s.publishTransaction(ctx, txn)
	})

	return &txn, nil
}

// History returns the transactions of userID dated within [from, to].
func (s *TransactionService) History(ctx context.Context, userID string, from, to time.Time) ([]models.Transaction, error) {
	txs, err := s.reader.ListByUserID(ctx, userID, from, to)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "userID", userID, "from", from, "to", to, "error", err)
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// publishTransaction publishes a transaction event to Kafka.
func (s *TransactionService) publishTransaction(ctx context.Context, txn models.Transaction) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.ID)
		return
	}

	event := models.TransactionEvent{
		TransactionID: txn.ID.String(),
		Timestamp:     txn.Date.Unix(),
		Amount:        txn.Amount,
		UserID:        txn.UserID,
		Type:          txn.Type,
		Category:      txn.Category,
		Operation:     "created",
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", txn.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.UserID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", txn.ID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", txn.ID, "amount", txn.Amount)
	}
}
