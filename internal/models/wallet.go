package models

import (
	"time"

	"github.com/google/uuid"
)

// Wallet kinds. Every user has one wallet of each kind.
const (
	WalletMain    = "main"
	WalletSavings = "savings"
)

// MinSavingsReserve is the floor a savings wallet must keep after a
// savings-to-main transfer, in naira.
const MinSavingsReserve = 500.0

// WalletDB represents a single-currency (NGN) wallet row.
type WalletDB struct {
	WalletID  uuid.UUID `json:"wallet_id" db:"wallet_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Kind      string    `json:"kind" db:"kind"` // main or savings
	Balance   float64   `json:"balance" db:"balance"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
