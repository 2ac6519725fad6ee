package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/Aioflcu/paylink/internal/logger"
	"github.com/Aioflcu/paylink/internal/models"
	"github.com/Aioflcu/paylink/internal/repositories"
)

var (
	// ErrInsufficientFunds is returned when a debit exceeds the wallet balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrBelowMinimumReserve is returned when a savings-to-main transfer would
	// leave the savings wallet below the reserve floor.
	ErrBelowMinimumReserve = errors.New("savings balance would fall below minimum reserve")

	// ErrInvalidAmount is returned for zero or negative amounts.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidTransfer is returned for an unknown or same-wallet transfer pair.
	ErrInvalidTransfer = errors.New("invalid transfer direction")

	// ErrDuplicateReference is returned when the idempotency reference was
	// already used. The original transaction stands; nothing is re-applied.
	ErrDuplicateReference = errors.New("duplicate transaction reference")
)

// WalletWriter defines guarded balance mutations.
type WalletWriter interface {
	Credit(ctx context.Context, userID uuid.UUID, kind string, amount float64) (float64, error)
	Debit(ctx context.Context, userID uuid.UUID, kind string, amount, minRemaining float64) (float64, error)
}

// WalletReader defines methods for reading user balances.
type WalletReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (map[string]float64, error)
}

// TransactionWriter appends ledger rows and settles pending ones.
type TransactionWriter interface {
	Save(ctx context.Context, txn models.TransactionDB) error
	UpdateStatus(ctx context.Context, reference, status string, providerRef *string) error
}

// RewardAwarder converts a settled debit into reward points.
type RewardAwarder interface {
	Award(ctx context.Context, userID uuid.UUID, category string, amount float64, reference string) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LedgerService owns every balance mutation. A mutation is one guarded SQL
// statement plus one appended transaction row, both inside the per-request
// DB transaction, so the walletBefore - amount = walletAfter invariant holds
// under concurrency.
type LedgerService struct {
	wallets     WalletWriter
	reader      WalletReader
	txWriter    TransactionWriter
	rewards     RewardAwarder
	kafkaWriter KafkaWriter
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(
	wallets WalletWriter,
	reader WalletReader,
	txWriter TransactionWriter,
	rewards RewardAwarder,
	kafkaWriter KafkaWriter,
) *LedgerService {
	return &LedgerService{
		wallets:     wallets,
		reader:      reader,
		txWriter:    txWriter,
		rewards:     rewards,
		kafkaWriter: kafkaWriter,
	}
}

// publishTransaction publishes a ledger event to Kafka. Best effort: the
// ledger row is the source of truth, the stream is for consumers downstream.
func (s *LedgerService) publishTransaction(ctx context.Context, txn models.TransactionDB) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	event := models.TransactionEvent{
		TransactionID: txn.TransactionID.String(),
		Timestamp:     time.Now().Unix(),
		UserID:        txn.UserID.String(),
		Type:          txn.Type,
		Category:      txn.Category,
		Amount:        txn.Amount,
		Reference:     txn.Reference,
		Status:        txn.Status,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.Reference),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", txn.TransactionID, "amount", txn.Amount)
	}
}

func (s *LedgerService) debit(ctx context.Context, userID uuid.UUID, amount float64, category, reference, status string) (models.TransactionDB, error) {
	if amount <= 0 {
		return models.TransactionDB{}, ErrInvalidAmount
	}

	after, err := s.wallets.Debit(ctx, userID, models.WalletMain, amount, 0)
	if err != nil {
		if errors.Is(err, repositories.ErrBalanceGuard) {
			logger.Log.Warnw("debit rejected, insufficient funds", "userID", userID, "amount", amount, "category", category)
			return models.TransactionDB{}, ErrInsufficientFunds
		}
		logger.Log.Errorw("failed to debit wallet", "userID", userID, "amount", amount, "error", err)
		return models.TransactionDB{}, err
	}

	txn := models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        userID,
		Type:          models.TxDebit,
		Category:      category,
		Amount:        amount,
		Reference:     reference,
		Status:        status,
		BalanceBefore: after + amount,
		BalanceAfter:  after,
	}

	if err := s.txWriter.Save(ctx, txn); err != nil {
		// Undo the balance mutation so a rejected row never leaves the
		// wallet and the ledger divergent.
		if _, cerr := s.wallets.Credit(ctx, userID, models.WalletMain, amount); cerr != nil {
			logger.Log.Errorw("failed to compensate rejected debit", "userID", userID, "amount", amount, "error", cerr)
		}
		if errors.Is(err, repositories.ErrDuplicateReference) {
			return models.TransactionDB{}, ErrDuplicateReference
		}
		logger.Log.Errorw("failed to append transaction", "userID", userID, "reference", reference, "error", err)
		return models.TransactionDB{}, err
	}

	s.publishTransaction(ctx, txn)
	return txn, nil
}

// Debit removes funds from the main wallet and appends a settled ledger row.
// Points are awarded for reward-bearing categories.
func (s *LedgerService) Debit(ctx context.Context, userID uuid.UUID, amount float64, category, reference string) (models.TransactionDB, error) {
	txn, err := s.debit(ctx, userID, amount, category, reference, models.TxSuccess)
	if err != nil {
		return txn, err
	}

	if s.rewards != nil {
		if _, err := s.rewards.Award(ctx, userID, category, amount, reference); err != nil {
			logger.Log.Errorw("failed to award points", "userID", userID, "reference", reference, "error", err)
		}
	}

	return txn, nil
}

// DebitPending removes funds and appends a pending ledger row. The caller
// settles it with Settle once the external outcome is known; no points are
// awarded until then.
func (s *LedgerService) DebitPending(ctx context.Context, userID uuid.UUID, amount float64, category, reference string) (models.TransactionDB, error) {
	return s.debit(ctx, userID, amount, category, reference, models.TxPending)
}

// Credit adds funds to the main wallet and appends a settled ledger row.
func (s *LedgerService) Credit(ctx context.Context, userID uuid.UUID, amount float64, category, reference string) (models.TransactionDB, error) {
	if amount <= 0 {
		return models.TransactionDB{}, ErrInvalidAmount
	}

	after, err := s.wallets.Credit(ctx, userID, models.WalletMain, amount)
	if err != nil {
		logger.Log.Errorw("failed to credit wallet", "userID", userID, "amount", amount, "error", err)
		return models.TransactionDB{}, err
	}

	txn := models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        userID,
		Type:          models.TxCredit,
		Category:      category,
		Amount:        amount,
		Reference:     reference,
		Status:        models.TxSuccess,
		BalanceBefore: after - amount,
		BalanceAfter:  after,
	}

	if err := s.txWriter.Save(ctx, txn); err != nil {
		if _, derr := s.wallets.Debit(ctx, userID, models.WalletMain, amount, 0); derr != nil {
			logger.Log.Errorw("failed to compensate rejected credit", "userID", userID, "amount", amount, "error", derr)
		}
		if errors.Is(err, repositories.ErrDuplicateReference) {
			return models.TransactionDB{}, ErrDuplicateReference
		}
		logger.Log.Errorw("failed to append transaction", "userID", userID, "reference", reference, "error", err)
		return models.TransactionDB{}, err
	}

	s.publishTransaction(ctx, txn)
	return txn, nil
}

// Settle transitions a pending ledger row to success or failed.
func (s *LedgerService) Settle(ctx context.Context, reference, status string, providerRef *string) error {
	return s.txWriter.UpdateStatus(ctx, reference, status, providerRef)
}

// Transfer moves funds between a user's main and savings wallets. A
// savings-to-main move must leave the savings wallet at or above the
// reserve floor.
func (s *LedgerService) Transfer(ctx context.Context, userID uuid.UUID, fromKind, toKind string, amount float64) (models.TransferRecord, error) {
	if amount <= 0 {
		return models.TransferRecord{}, ErrInvalidAmount
	}
	if fromKind == toKind ||
		(fromKind != models.WalletMain && fromKind != models.WalletSavings) ||
		(toKind != models.WalletMain && toKind != models.WalletSavings) {
		return models.TransferRecord{}, ErrInvalidTransfer
	}

	minRemaining := 0.0
	if fromKind == models.WalletSavings {
		minRemaining = models.MinSavingsReserve
	}

	fromBalance, err := s.wallets.Debit(ctx, userID, fromKind, amount, minRemaining)
	if err != nil {
		if errors.Is(err, repositories.ErrBalanceGuard) {
			if fromKind == models.WalletSavings {
				return models.TransferRecord{}, ErrBelowMinimumReserve
			}
			return models.TransferRecord{}, ErrInsufficientFunds
		}
		logger.Log.Errorw("failed to debit for transfer", "userID", userID, "from", fromKind, "amount", amount, "error", err)
		return models.TransferRecord{}, err
	}

	toBalance, err := s.wallets.Credit(ctx, userID, toKind, amount)
	if err != nil {
		if _, cerr := s.wallets.Credit(ctx, userID, fromKind, amount); cerr != nil {
			logger.Log.Errorw("failed to compensate transfer debit leg", "userID", userID, "amount", amount, "error", cerr)
		}
		logger.Log.Errorw("failed to credit for transfer", "userID", userID, "to", toKind, "amount", amount, "error", err)
		return models.TransferRecord{}, err
	}

	reference := uuid.NewString()
	legs := []models.TransactionDB{
		{
			TransactionID: uuid.New(),
			UserID:        userID,
			Type:          models.TxDebit,
			Category:      models.CategoryTransfer,
			Amount:        amount,
			Reference:     fmt.Sprintf("%s-out", reference),
			Status:        models.TxSuccess,
			BalanceBefore: fromBalance + amount,
			BalanceAfter:  fromBalance,
		},
		{
			TransactionID: uuid.New(),
			UserID:        userID,
			Type:          models.TxCredit,
			Category:      models.CategoryTransfer,
			Amount:        amount,
			Reference:     fmt.Sprintf("%s-in", reference),
			Status:        models.TxSuccess,
			BalanceBefore: toBalance - amount,
			BalanceAfter:  toBalance,
		},
	}
	for _, leg := range legs {
		if err := s.txWriter.Save(ctx, leg); err != nil {
			logger.Log.Errorw("failed to append transfer leg", "userID", userID, "reference", leg.Reference, "error", err)
			return models.TransferRecord{}, err
		}
		s.publishTransaction(ctx, leg)
	}

	return models.TransferRecord{
		Reference:   reference,
		FromKind:    fromKind,
		ToKind:      toKind,
		Amount:      amount,
		FromBalance: fromBalance,
		ToBalance:   toBalance,
	}, nil
}

// Balances returns the user's main and savings balances.
func (s *LedgerService) Balances(ctx context.Context, userID uuid.UUID) (main, savings float64, err error) {
	balances, err := s.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user balances", "userID", userID, "error", err)
		return 0, 0, err
	}
	main, savings = balances[models.WalletMain], balances[models.WalletSavings]
	return main, savings, nil
}
