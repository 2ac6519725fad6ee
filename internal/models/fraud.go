package models

import (
	"time"

	"github.com/google/uuid"
)

// Risk actions, ordered by severity.
const (
	ActionAllow      = "allow"
	ActionReview     = "review"
	ActionRequire2FA = "require_2fa"
	ActionBlock      = "block"
)

// RiskCheck is the outcome of a single independent risk rule.
type RiskCheck struct {
	Name      string `json:"name"`
	Triggered bool   `json:"triggered"`
	Weight    int    `json:"weight"`
	Detail    string `json:"detail,omitempty"`
}

// RiskAssessment is the result of scoring one transaction context.
type RiskAssessment struct {
	RiskScore int         `json:"risk_score"` // 0..100
	Checks    []RiskCheck `json:"checks"`
	Action    string      `json:"action"`
}

// FraudCheckDB is the immutable audit record written for every evaluation.
type FraudCheckDB struct {
	CheckID   uuid.UUID `json:"check_id" db:"check_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Reference string    `json:"reference" db:"reference"`
	RiskScore int       `json:"risk_score" db:"risk_score"`
	Checks    []byte    `json:"-" db:"checks"` // JSON-encoded []RiskCheck
	Action    string    `json:"action" db:"action"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TransactionContext carries the data the risk scorer needs for one evaluation.
type TransactionContext struct {
	Reference         string
	Category          string
	Amount            float64
	DeviceFingerprint string
	Latitude          *float64
	Longitude         *float64
	Timestamp         time.Time
}
