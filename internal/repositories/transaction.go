package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/Aioflcu/paylink/internal/logger"
	"github.com/Aioflcu/paylink/internal/models"
)

// ErrDuplicateReference is returned when a ledger row with the same
// idempotency reference already exists.
var ErrDuplicateReference = errors.New("duplicate transaction reference")

const pgUniqueViolation = "23505"

// TransactionWriterRepository appends ledger rows and transitions their status.
type TransactionWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriterRepository {
	return &TransactionWriterRepository{db: db, txGetter: txGetter}
}

func (r *TransactionWriterRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save appends one immutable ledger row.
func (r *TransactionWriterRepository) Save(ctx context.Context, txn models.TransactionDB) error {
	query := `
		INSERT INTO transactions
			(transaction_id, user_id, type, category, amount, reference, status,
			 balance_before, balance_after, provider_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	`
	args := []any{
		txn.TransactionID, txn.UserID, txn.Type, txn.Category, txn.Amount,
		txn.Reference, txn.Status, txn.BalanceBefore, txn.BalanceAfter, txn.ProviderRef,
	}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txn.UserID, txn.Type, txn.Category, txn.Amount, txn.Reference},
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicateReference
	}

	return err
}

// UpdateStatus transitions a pending row to success or failed. Settled rows
// are never rewritten.
func (r *TransactionWriterRepository) UpdateStatus(ctx context.Context, reference, status string, providerRef *string) error {
	query := `
		UPDATE transactions
		SET status = $2, provider_ref = COALESCE($3, provider_ref), resolved_at = NOW()
		WHERE reference = $1 AND status = 'pending'
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, reference, status, providerRef)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{reference, status},
		"error", err,
	)

	return err
}

// TransactionReaderRepository handles ledger read operations.
type TransactionReaderRepository struct {
	db *sqlx.DB
}

func NewTransactionReaderRepository(db *sqlx.DB) *TransactionReaderRepository {
	return &TransactionReaderRepository{db: db}
}

// ListByUserID returns the most recent ledger rows for a user.
func (r *TransactionReaderRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, type, category, amount, reference, status,
		       balance_before, balance_after, provider_ref, resolved_at, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query, userID, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}

// GetByReference returns a single ledger row by its idempotency reference.
func (r *TransactionReaderRepository) GetByReference(ctx context.Context, reference string) (*models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, type, category, amount, reference, status,
		       balance_before, balance_after, provider_ref, resolved_at, created_at
		FROM transactions
		WHERE reference = $1
	`

	var txn models.TransactionDB
	err := r.db.GetContext(ctx, &txn, query, reference)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{reference},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &txn, nil
}

// RollingAverage returns the average amount of the user's last n successful
// debits. Returns 0 when the user has no debit history.
func (r *TransactionReaderRepository) RollingAverage(ctx context.Context, userID uuid.UUID, n int) (float64, error) {
	const query = `
		SELECT COALESCE(AVG(amount), 0)
		FROM (
			SELECT amount
			FROM transactions
			WHERE user_id = $1 AND type = 'debit' AND status = 'success'
			ORDER BY created_at DESC
			LIMIT $2
		) recent
	`

	var avg float64
	err := r.db.GetContext(ctx, &avg, query, userID, n)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, n},
		"result", avg,
		"error", err,
	)

	return avg, err
}
