package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID             uuid.UUID  `json:"user_id" db:"user_id"`                           // Primary key
	Username           string     `json:"username" db:"username"`                         // Unique username
	Email              string     `json:"email" db:"email"`                               // User email
	PasswordHash       string     `json:"-" db:"password_hash"`                           // Hashed login password
	TransactionPINHash *string    `json:"-" db:"transaction_pin_hash"`                    // Hashed transaction PIN, nil until set
	RewardPoints       int64      `json:"reward_points" db:"reward_points"`               // Accumulated reward points
	FailedPINAttempts  int        `json:"failed_pin_attempts" db:"failed_pin_attempts"`   // Consecutive failed PIN entries
	LockedUntil        *time.Time `json:"locked_until,omitempty" db:"locked_until"`       // Account locked until this instant, nil if unlocked
	LockReason         *string    `json:"lock_reason,omitempty" db:"lock_reason"`         // Why the account is locked
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`
}

// Locked reports whether the account lock is active at the given instant.
func (u *UserDB) Locked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}
