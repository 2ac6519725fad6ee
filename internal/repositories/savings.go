package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Aioflcu/paylink/internal/logger"
	"github.com/Aioflcu/paylink/internal/models"
)

// SavingsWriterRepository handles savings plan write operations.
type SavingsWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSavingsWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SavingsWriterRepository {
	return &SavingsWriterRepository{db: db, txGetter: txGetter}
}

func (r *SavingsWriterRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new savings plan.
func (r *SavingsWriterRepository) Save(ctx context.Context, plan models.SavingsPlanDB) error {
	query := `
		INSERT INTO savings_plans
			(plan_id, user_id, plan_name, target_amount, current_amount, initial_amount,
			 interest_rate, interval, lock_days, withdrawal_count, max_withdrawals,
			 maturity_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`
	args := []any{
		plan.PlanID, plan.UserID, plan.PlanName, plan.TargetAmount, plan.CurrentAmount,
		plan.InitialAmount, plan.InterestRate, plan.Interval, plan.LockDays,
		plan.WithdrawalCount, plan.MaxWithdrawals, plan.MaturityDate,
	}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{plan.PlanID, plan.UserID, plan.PlanName, plan.InitialAmount},
		"error", err,
	)

	return err
}

// ApplyAccrual writes the lazily computed interest into the plan principal and
// stamps updated_at so the next accrual window starts from the given instant.
func (r *SavingsWriterRepository) ApplyAccrual(ctx context.Context, planID uuid.UUID, newAmount float64, asOf time.Time) error {
	query := `
		UPDATE savings_plans
		SET current_amount = $2, updated_at = $3
		WHERE plan_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, planID, newAmount, asOf)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{planID, newAmount, asOf},
		"error", err,
	)

	return err
}

// RecordWithdrawal decrements the plan balance and bumps the withdrawal counter.
func (r *SavingsWriterRepository) RecordWithdrawal(ctx context.Context, planID uuid.UUID, newAmount float64) error {
	query := `
		UPDATE savings_plans
		SET current_amount = $2, withdrawal_count = withdrawal_count + 1, updated_at = NOW()
		WHERE plan_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, planID, newAmount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{planID, newAmount},
		"error", err,
	)

	return err
}

// Delete removes a plan. The refund to the main wallet is the caller's job and
// runs in the same request transaction.
func (r *SavingsWriterRepository) Delete(ctx context.Context, planID uuid.UUID) error {
	query := `DELETE FROM savings_plans WHERE plan_id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query, planID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{planID},
		"error", err,
	)

	return err
}

// SavingsReaderRepository handles savings plan read operations.
type SavingsReaderRepository struct {
	db *sqlx.DB
}

func NewSavingsReaderRepository(db *sqlx.DB) *SavingsReaderRepository {
	return &SavingsReaderRepository{db: db}
}

// GetByID returns a plan by id.
func (r *SavingsReaderRepository) GetByID(ctx context.Context, planID uuid.UUID) (*models.SavingsPlanDB, error) {
	const query = `
		SELECT plan_id, user_id, plan_name, target_amount, current_amount, initial_amount,
		       interest_rate, interval, lock_days, withdrawal_count, max_withdrawals,
		       maturity_date, created_at, updated_at
		FROM savings_plans
		WHERE plan_id = $1
	`

	var plan models.SavingsPlanDB
	err := r.db.GetContext(ctx, &plan, query, planID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{planID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &plan, nil
}

// ListByUserID returns all plans belonging to a user.
func (r *SavingsReaderRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.SavingsPlanDB, error) {
	const query = `
		SELECT plan_id, user_id, plan_name, target_amount, current_amount, initial_amount,
		       interest_rate, interval, lock_days, withdrawal_count, max_withdrawals,
		       maturity_date, created_at, updated_at
		FROM savings_plans
		WHERE user_id = $1
		ORDER BY created_at
	`

	var plans []models.SavingsPlanDB
	err := r.db.SelectContext(ctx, &plans, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(plans),
		"error", err,
	)

	return plans, err
}
