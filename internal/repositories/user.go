package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Aioflcu/paylink/internal/logger"
	"github.com/Aioflcu/paylink/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, transaction_pin_hash,
		       reward_points, failed_pin_attempts, locked_until, lock_reason,
		       created_at, updated_at
		FROM users
		WHERE ($1::VARCHAR IS NULL OR username = $1)
		  AND ($2::VARCHAR IS NULL OR email = $2)
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, transaction_pin_hash,
		       reward_points, failed_pin_attempts, locked_until, lock_reason,
		       created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new user and returns the generated user id.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash, email string) (uuid.UUID, error) {
	query := `
		INSERT INTO users (user_id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING user_id
	`
	userID := uuid.New()
	args := []any{userID, username, email, passwordHash}

	var saved uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"result", saved,
		"error", err,
	)

	return saved, err
}

// SetTransactionPIN stores the bcrypt hash of the user's transaction PIN.
func (r *UserWriteRepository) SetTransactionPIN(ctx context.Context, userID uuid.UUID, pinHash string) error {
	query := `
		UPDATE users
		SET transaction_pin_hash = $2, failed_pin_attempts = 0, updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, userID, pinHash)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return err
}

// RecordFailedPIN increments the consecutive-failure counter and returns the new count.
func (r *UserWriteRepository) RecordFailedPIN(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `
		UPDATE users
		SET failed_pin_attempts = failed_pin_attempts + 1, updated_at = NOW()
		WHERE user_id = $1
		RETURNING failed_pin_attempts
	`

	var count int
	err := sqlx.GetContext(ctx, r.executor(ctx), &count, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", count,
		"error", err,
	)

	return count, err
}

// ResetFailedPIN clears the consecutive-failure counter after a correct entry.
func (r *UserWriteRepository) ResetFailedPIN(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE users
		SET failed_pin_attempts = 0, updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return err
}

// Lock flags the account as locked until the given instant.
func (r *UserWriteRepository) Lock(ctx context.Context, userID uuid.UUID, until time.Time, reason string) error {
	query := `
		UPDATE users
		SET locked_until = $2, lock_reason = $3, updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, userID, until, reason)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, until, reason},
		"error", err,
	)

	return err
}
