package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Aioflcu/paylink/internal/logger"
)

// ErrBalanceGuard is returned when a debit would drop a wallet below the
// required minimum (zero, or the savings reserve for savings-to-main moves).
var ErrBalanceGuard = errors.New("balance guard violated")

// WalletWriterRepository handles wallet write operations
type WalletWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletWriterRepository {
	return &WalletWriterRepository{db: db, txGetter: txGetter}
}

func (r *WalletWriterRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// EnsureWallets creates the main and savings wallets for a new user.
func (r *WalletWriterRepository) EnsureWallets(ctx context.Context, userID uuid.UUID) error {
	query := `
		INSERT INTO wallets (wallet_id, user_id, kind, balance, created_at, updated_at)
		VALUES ($1, $3, 'main', 0, NOW(), NOW()), ($2, $3, 'savings', 0, NOW(), NOW())
		ON CONFLICT (user_id, kind) DO NOTHING
	`
	args := []any{uuid.New(), uuid.New(), userID}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return err
}

// Credit performs an UPSERT: creates the wallet if not exists, otherwise increases balance.
// Returns the balance after the mutation.
func (r *WalletWriterRepository) Credit(ctx context.Context, userID uuid.UUID, kind string, amount float64) (float64, error) {
	query := `
		INSERT INTO wallets (wallet_id, user_id, kind, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, kind)
		DO UPDATE SET balance = wallets.balance + EXCLUDED.balance, updated_at = NOW()
		RETURNING balance
	`

	var balance float64
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, uuid.New(), userID, kind, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, kind, amount},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// Debit decreases the balance in a single guarded statement. The mutation
// only applies while `balance - amount >= minRemaining`, so two concurrent
// debits can never both pass the funds check. Returns the balance after the
// mutation, or ErrBalanceGuard when the guard rejects it.
func (r *WalletWriterRepository) Debit(ctx context.Context, userID uuid.UUID, kind string, amount, minRemaining float64) (float64, error) {
	query := `
		UPDATE wallets
		SET balance = balance - $3, updated_at = NOW()
		WHERE user_id = $1 AND kind = $2 AND balance - $3 >= $4
		RETURNING balance
	`

	var balance float64
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, userID, kind, amount, minRemaining)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, kind, amount, minRemaining},
		"result", balance,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrBalanceGuard
		}
		return 0, err
	}
	return balance, nil
}

// WalletReaderRepository handles wallet read operations
type WalletReaderRepository struct {
	db *sqlx.DB
}

func NewWalletReaderRepository(db *sqlx.DB) *WalletReaderRepository {
	return &WalletReaderRepository{db: db}
}

// GetByUserID retrieves all wallets for a given user as a map[kind]balance
func (r *WalletReaderRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (map[string]float64, error) {
	const query = `
		SELECT kind, balance
		FROM wallets
		WHERE user_id = $1
	`

	var wallets []struct {
		Kind    string  `db:"kind"`
		Balance float64 `db:"balance"`
	}

	err := r.db.SelectContext(ctx, &wallets, query, userID)

	balances := make(map[string]float64, len(wallets))
	for _, w := range wallets {
		balances[w.Kind] = w.Balance
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", balances,
		"error", err,
	)

	return balances, err
}
