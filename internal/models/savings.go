package models

import (
	"time"

	"github.com/google/uuid"
)

// Savings plan compounding intervals.
const (
	IntervalDaily   = "daily"
	IntervalWeekly  = "weekly"
	IntervalMonthly = "monthly"
)

// DefaultMaxWithdrawals caps withdrawals per plan lifetime.
const DefaultMaxWithdrawals = 3

// CompoundingFrequency maps an interval to periods per year.
// Returns 0 for an unknown interval.
func CompoundingFrequency(interval string) int {
	switch interval {
	case IntervalDaily:
		return 365
	case IntervalWeekly:
		return 52
	case IntervalMonthly:
		return 12
	default:
		return 0
	}
}

// SavingsPlanDB represents a locked savings plan row.
type SavingsPlanDB struct {
	PlanID          uuid.UUID `json:"plan_id" db:"plan_id"`
	UserID          uuid.UUID `json:"user_id" db:"user_id"`
	PlanName        string    `json:"plan_name" db:"plan_name"`
	TargetAmount    float64   `json:"target_amount" db:"target_amount"`
	CurrentAmount   float64   `json:"current_amount" db:"current_amount"`
	InitialAmount   float64   `json:"initial_amount" db:"initial_amount"`
	InterestRate    float64   `json:"interest_rate" db:"interest_rate"` // annual percent
	Interval        string    `json:"interval" db:"interval"`
	LockDays        int       `json:"lock_days" db:"lock_days"`
	WithdrawalCount int       `json:"withdrawal_count" db:"withdrawal_count"`
	MaxWithdrawals  int       `json:"max_withdrawals" db:"max_withdrawals"`
	MaturityDate    time.Time `json:"maturity_date" db:"maturity_date"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
