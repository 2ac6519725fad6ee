package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Aioflcu/paylink/internal/logger"
	"github.com/Aioflcu/paylink/internal/models"
)

// ErrPointsGuard is returned when a redemption would push a point balance negative.
var ErrPointsGuard = errors.New("points guard violated")

// RewardWriterRepository mutates point balances and records reward events.
type RewardWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRewardWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RewardWriterRepository {
	return &RewardWriterRepository{db: db, txGetter: txGetter}
}

func (r *RewardWriterRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// AddPoints adjusts the user's point balance by delta (negative for redemptions)
// in a single guarded statement and returns the new total.
func (r *RewardWriterRepository) AddPoints(ctx context.Context, userID uuid.UUID, delta int64) (int64, error) {
	query := `
		UPDATE users
		SET reward_points = reward_points + $2, updated_at = NOW()
		WHERE user_id = $1 AND reward_points + $2 >= 0
		RETURNING reward_points
	`

	var total int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &total, query, userID, delta)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, delta},
		"result", total,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrPointsGuard
		}
		return 0, err
	}
	return total, nil
}

// SaveEvent appends one reward ledger row.
func (r *RewardWriterRepository) SaveEvent(ctx context.Context, event models.RewardEventDB) error {
	query := `
		INSERT INTO reward_events (event_id, user_id, kind, category, points, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	args := []any{uuid.New(), event.UserID, event.Kind, event.Category, event.Points, event.Reference}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{event.UserID, event.Kind, event.Category, event.Points},
		"error", err,
	)

	return err
}

// SaveRedemption records a redeemed catalog item.
func (r *RewardWriterRepository) SaveRedemption(ctx context.Context, redemption models.RedemptionDB) error {
	query := `
		INSERT INTO redemptions (redemption_id, user_id, item, points, value, kind, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`
	args := []any{
		redemption.RedemptionID, redemption.UserID, redemption.Item, redemption.Points,
		redemption.Value, redemption.Kind, redemption.ExpiresAt,
	}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{redemption.UserID, redemption.Item, redemption.Points},
		"error", err,
	)

	return err
}

// RewardReaderRepository handles reward read operations.
type RewardReaderRepository struct {
	db *sqlx.DB
}

func NewRewardReaderRepository(db *sqlx.DB) *RewardReaderRepository {
	return &RewardReaderRepository{db: db}
}

// GetPoints returns the user's current point balance.
func (r *RewardReaderRepository) GetPoints(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `SELECT reward_points FROM users WHERE user_id = $1`

	var points int64
	err := r.db.GetContext(ctx, &points, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", points,
		"error", err,
	)

	return points, err
}

// ListEvents returns the most recent reward events for a user.
func (r *RewardReaderRepository) ListEvents(ctx context.Context, userID uuid.UUID, limit int) ([]models.RewardEventDB, error) {
	const query = `
		SELECT event_id, user_id, kind, category, points, reference, created_at
		FROM reward_events
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var events []models.RewardEventDB
	err := r.db.SelectContext(ctx, &events, query, userID, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(events),
		"error", err,
	)

	return events, err
}
