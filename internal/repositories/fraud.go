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

// FraudCheckWriterRepository persists the immutable risk evaluation audit trail.
type FraudCheckWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFraudCheckWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FraudCheckWriterRepository {
	return &FraudCheckWriterRepository{db: db, txGetter: txGetter}
}

func (r *FraudCheckWriterRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save appends one audit row. Audit rows are never updated.
func (r *FraudCheckWriterRepository) Save(ctx context.Context, check models.FraudCheckDB) error {
	query := `
		INSERT INTO fraud_checks (check_id, user_id, reference, risk_score, checks, action, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	args := []any{check.CheckID, check.UserID, check.Reference, check.RiskScore, check.Checks, check.Action}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{check.UserID, check.Reference, check.RiskScore, check.Action},
		"error", err,
	)

	return err
}

// PinAttemptRepository logs transaction PIN entries and counts recent failures.
type PinAttemptRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPinAttemptRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PinAttemptRepository {
	return &PinAttemptRepository{db: db, txGetter: txGetter}
}

func (r *PinAttemptRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save appends one PIN attempt.
func (r *PinAttemptRepository) Save(ctx context.Context, userID uuid.UUID, success bool) error {
	query := `
		INSERT INTO pin_attempts (attempt_id, user_id, success, created_at)
		VALUES ($1, $2, $3, NOW())
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, uuid.New(), userID, success)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, success},
		"error", err,
	)

	return err
}

// CountRecentFailures counts failed attempts in the sliding window starting at since.
func (r *PinAttemptRepository) CountRecentFailures(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM pin_attempts
		WHERE user_id = $1 AND success = FALSE AND created_at >= $2
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, since)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, since},
		"result", count,
		"error", err,
	)

	return count, err
}

// LoginEventRepository logs logins with coarse geolocation.
type LoginEventRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLoginEventRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LoginEventRepository {
	return &LoginEventRepository{db: db, txGetter: txGetter}
}

func (r *LoginEventRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save appends one login event.
func (r *LoginEventRepository) Save(ctx context.Context, event models.LoginEventDB) error {
	query := `
		INSERT INTO login_events (event_id, user_id, ip, latitude, longitude, device_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	args := []any{uuid.New(), event.UserID, event.IP, event.Latitude, event.Longitude, event.DeviceID}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{event.UserID, event.IP, event.DeviceID},
		"error", err,
	)

	return err
}

// GetLastWithLocation returns the most recent login event carrying coordinates.
// Returns nil when the user has no located logins yet.
func (r *LoginEventRepository) GetLastWithLocation(ctx context.Context, userID uuid.UUID) (*models.LoginEventDB, error) {
	const query = `
		SELECT event_id, user_id, ip, latitude, longitude, device_id, created_at
		FROM login_events
		WHERE user_id = $1 AND latitude IS NOT NULL AND longitude IS NOT NULL
		ORDER BY created_at DESC
		LIMIT 1
	`

	var event models.LoginEventDB
	err := r.db.GetContext(ctx, &event, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &event, nil
}

// DeviceRepository tracks device fingerprints per user.
type DeviceRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewDeviceRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *DeviceRepository {
	return &DeviceRepository{db: db, txGetter: txGetter}
}

func (r *DeviceRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Touch upserts a fingerprint and reports whether it was seen for the first time.
func (r *DeviceRepository) Touch(ctx context.Context, userID uuid.UUID, fingerprint string) (bool, error) {
	query := `
		INSERT INTO devices (device_id, user_id, fingerprint, first_seen, last_seen)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id, fingerprint)
		DO UPDATE SET last_seen = NOW()
		RETURNING first_seen = last_seen
	`

	var isNew bool
	err := sqlx.GetContext(ctx, r.executor(ctx), &isNew, query, uuid.New(), userID, fingerprint)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, fingerprint},
		"result", isNew,
		"error", err,
	)

	return isNew, err
}
