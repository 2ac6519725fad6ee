package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Aioflcu/paylink/internal/logger"
	"github.com/Aioflcu/paylink/internal/models"
)

var (
	// ErrPlanNotFound is returned when a plan does not exist or belongs to
	// another user.
	ErrPlanNotFound = errors.New("savings plan not found")

	// ErrPlanLocked is returned for withdrawals before the lock period ends.
	ErrPlanLocked = errors.New("savings plan is still locked")

	// ErrMaxWithdrawalsExceeded is returned once the per-plan withdrawal cap
	// is reached, regardless of amount.
	ErrMaxWithdrawalsExceeded = errors.New("maximum withdrawals exceeded")

	// ErrInsufficientPlanBalance is returned when a withdrawal exceeds the
	// accrued plan balance.
	ErrInsufficientPlanBalance = errors.New("insufficient plan balance")

	// ErrInvalidInterval is returned for an unknown compounding interval.
	ErrInvalidInterval = errors.New("invalid savings interval")
)

// SavingsWriter defines savings plan write operations.
type SavingsWriter interface {
	Save(ctx context.Context, plan models.SavingsPlanDB) error
	ApplyAccrual(ctx context.Context, planID uuid.UUID, newAmount float64, asOf time.Time) error
	RecordWithdrawal(ctx context.Context, planID uuid.UUID, newAmount float64) error
	Delete(ctx context.Context, planID uuid.UUID) error
}

// SavingsReader defines savings plan read operations.
type SavingsReader interface {
	GetByID(ctx context.Context, planID uuid.UUID) (*models.SavingsPlanDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.SavingsPlanDB, error)
}

// LedgerMover moves money between the main wallet and a plan.
type LedgerMover interface {
	Debit(ctx context.Context, userID uuid.UUID, amount float64, category, reference string) (models.TransactionDB, error)
	Credit(ctx context.Context, userID uuid.UUID, amount float64, category, reference string) (models.TransactionDB, error)
}

// SavingsService manages locked savings plans with lazy interest accrual.
type SavingsService struct {
	writer SavingsWriter
	reader SavingsReader
	ledger LedgerMover
	now    func() time.Time
}

// NewSavingsService creates a new SavingsService.
func NewSavingsService(writer SavingsWriter, reader SavingsReader, ledger LedgerMover) *SavingsService {
	return &SavingsService{
		writer: writer,
		reader: reader,
		ledger: ledger,
		now:    time.Now,
	}
}

// AccrueInterest computes compound interest earned on a principal since the
// last accrual: P * ((1 + r/100/f)^days - 1), rounded to 2 decimals. f is the
// compounding frequency for the interval. Returns 0 for an unknown interval
// or a non-positive day count.
func AccrueInterest(principal, annualRate float64, interval string, days int) float64 {
	f := models.CompoundingFrequency(interval)
	if f == 0 || days <= 0 || principal <= 0 {
		return 0
	}
	interest := principal * (math.Pow(1+annualRate/100/float64(f), float64(days)) - 1)
	return math.Round(interest*100) / 100
}

// CreatePlan debits the initial amount from the main wallet and opens a plan.
func (s *SavingsService) CreatePlan(ctx context.Context, userID uuid.UUID, name string, target, initial, rate float64, interval string, lockDays int) (*models.SavingsPlanDB, error) {
	if models.CompoundingFrequency(interval) == 0 {
		return nil, ErrInvalidInterval
	}
	if initial <= 0 {
		return nil, ErrInvalidAmount
	}

	planID := uuid.New()
	reference := fmt.Sprintf("savings-open-%s", planID)

	if _, err := s.ledger.Debit(ctx, userID, initial, models.CategorySavings, reference); err != nil {
		return nil, err
	}

	now := s.now()
	plan := models.SavingsPlanDB{
		PlanID:          planID,
		UserID:          userID,
		PlanName:        name,
		TargetAmount:    target,
		CurrentAmount:   initial,
		InitialAmount:   initial,
		InterestRate:    rate,
		Interval:        interval,
		LockDays:        lockDays,
		WithdrawalCount: 0,
		MaxWithdrawals:  models.DefaultMaxWithdrawals,
		MaturityDate:    now.AddDate(0, 0, lockDays),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.writer.Save(ctx, plan); err != nil {
		logger.Log.Errorw("failed to save savings plan", "userID", userID, "plan", name, "error", err)
		// Put the money back; the debit already committed its ledger row,
		// so the refund gets its own.
		if _, cerr := s.ledger.Credit(ctx, userID, initial, models.CategoryRefund, reference+"-refund"); cerr != nil {
			logger.Log.Errorw("failed to refund plan principal", "userID", userID, "amount", initial, "error", cerr)
		}
		return nil, err
	}

	return &plan, nil
}

// ListPlans returns all plans of a user.
func (s *SavingsService) ListPlans(ctx context.Context, userID uuid.UUID) ([]models.SavingsPlanDB, error) {
	return s.reader.ListByUserID(ctx, userID)
}

func (s *SavingsService) getOwnedPlan(ctx context.Context, userID, planID uuid.UUID) (*models.SavingsPlanDB, error) {
	plan, err := s.reader.GetByID(ctx, planID)
	if err != nil {
		return nil, ErrPlanNotFound
	}
	if plan.UserID != userID {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

// accrue applies pending interest to the plan in place. Interest is computed
// lazily from whole days since the last accrual, never on a schedule.
func (s *SavingsService) accrue(ctx context.Context, plan *models.SavingsPlanDB) error {
	now := s.now()
	days := int(now.Sub(plan.UpdatedAt).Hours() / 24)
	interest := AccrueInterest(plan.CurrentAmount, plan.InterestRate, plan.Interval, days)
	if interest <= 0 {
		return nil
	}

	newAmount := plan.CurrentAmount + interest
	if err := s.writer.ApplyAccrual(ctx, plan.PlanID, newAmount, now); err != nil {
		logger.Log.Errorw("failed to apply accrual", "planID", plan.PlanID, "interest", interest, "error", err)
		return err
	}

	plan.CurrentAmount = newAmount
	plan.UpdatedAt = now
	return nil
}

// Withdraw moves part of a plan balance back to the main wallet. Interest is
// accrued first; the lock window and withdrawal cap are checked before any
// money moves.
func (s *SavingsService) Withdraw(ctx context.Context, userID, planID uuid.UUID, amount float64) (*models.SavingsPlanDB, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	plan, err := s.getOwnedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if now.Before(plan.CreatedAt.AddDate(0, 0, plan.LockDays)) {
		return nil, ErrPlanLocked
	}
	if plan.WithdrawalCount >= plan.MaxWithdrawals {
		return nil, ErrMaxWithdrawalsExceeded
	}

	if err := s.accrue(ctx, plan); err != nil {
		return nil, err
	}

	if amount > plan.CurrentAmount {
		return nil, ErrInsufficientPlanBalance
	}

	newAmount := plan.CurrentAmount - amount
	if err := s.writer.RecordWithdrawal(ctx, plan.PlanID, newAmount); err != nil {
		logger.Log.Errorw("failed to record withdrawal", "planID", plan.PlanID, "error", err)
		return nil, err
	}

	reference := fmt.Sprintf("savings-wd-%s-%d", plan.PlanID, plan.WithdrawalCount+1)
	if _, err := s.ledger.Credit(ctx, userID, amount, models.CategorySavings, reference); err != nil {
		return nil, err
	}

	plan.CurrentAmount = newAmount
	plan.WithdrawalCount++
	return plan, nil
}

// DeletePlan closes a plan and refunds its full balance, including interest
// accrued up to the deletion instant, to the main wallet. No penalty applies.
func (s *SavingsService) DeletePlan(ctx context.Context, userID, planID uuid.UUID) (float64, error) {
	plan, err := s.getOwnedPlan(ctx, userID, planID)
	if err != nil {
		return 0, err
	}

	if err := s.accrue(ctx, plan); err != nil {
		return 0, err
	}

	refund := plan.CurrentAmount
	if err := s.writer.Delete(ctx, plan.PlanID); err != nil {
		logger.Log.Errorw("failed to delete plan", "planID", plan.PlanID, "error", err)
		return 0, err
	}

	if refund > 0 {
		reference := fmt.Sprintf("savings-close-%s", plan.PlanID)
		if _, err := s.ledger.Credit(ctx, userID, refund, models.CategoryRefund, reference); err != nil {
			return 0, err
		}
	}

	return refund, nil
}
