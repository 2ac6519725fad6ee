package models

import (
	"time"

	"github.com/google/uuid"
)

// Reward event kinds.
const (
	RewardAward  = "award"
	RewardRedeem = "redeem"
)

// Redemption kinds.
const (
	RedemptionDiscount = "discount"
	RedemptionAirtime  = "airtime"
	RedemptionData     = "data"
	RedemptionCashback = "cashback"
)

// RewardEventDB records one point movement for a user.
type RewardEventDB struct {
	EventID   uuid.UUID `json:"event_id" db:"event_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Kind      string    `json:"kind" db:"kind"` // award or redeem
	Category  string    `json:"category" db:"category"`
	Points    int64     `json:"points" db:"points"`
	Reference string    `json:"reference" db:"reference"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RedemptionDB records a catalog item redeemed by a user.
type RedemptionDB struct {
	RedemptionID uuid.UUID  `json:"redemption_id" db:"redemption_id"`
	UserID       uuid.UUID  `json:"user_id" db:"user_id"`
	Item         string     `json:"item" db:"item"`
	Points       int64      `json:"points" db:"points"`
	Value        float64    `json:"value" db:"value"`
	Kind         string     `json:"kind" db:"kind"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty" db:"expires_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// RedemptionResult is returned to the caller after a successful redemption.
type RedemptionResult struct {
	Item            string     `json:"item"`
	PointsSpent     int64      `json:"points_spent"`
	RemainingPoints int64      `json:"remaining_points"`
	Kind            string     `json:"kind"`
	Value           float64    `json:"value"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}
