package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction types.
const (
	TxCredit = "credit"
	TxDebit  = "debit"
)

// Transaction statuses. A row is appended as pending or success and the only
// mutation ever applied afterwards is the pending -> success|failed transition.
const (
	TxPending = "pending"
	TxSuccess = "success"
	TxFailed  = "failed"
)

// Transaction categories.
const (
	CategoryAirtime     = "airtime"
	CategoryData        = "data"
	CategoryElectricity = "electricity"
	CategoryCable       = "cable"
	CategoryFunding     = "funding"
	CategoryTransfer    = "transfer"
	CategorySavings     = "savings"
	CategoryCashback    = "cashback"
	CategoryReversal    = "reversal"
	CategoryRefund      = "refund"
)

// TransactionDB is an append-only ledger row recording one money movement.
type TransactionDB struct {
	TransactionID uuid.UUID  `json:"transaction_id" db:"transaction_id"`
	UserID        uuid.UUID  `json:"user_id" db:"user_id"`
	Type          string     `json:"type" db:"type"`         // credit or debit
	Category      string     `json:"category" db:"category"` // airtime, data, ...
	Amount        float64    `json:"amount" db:"amount"`
	Reference     string     `json:"reference" db:"reference"` // unique idempotency key
	Status        string     `json:"status" db:"status"`
	BalanceBefore float64    `json:"balance_before" db:"balance_before"`
	BalanceAfter  float64    `json:"balance_after" db:"balance_after"`
	ProviderRef   *string    `json:"provider_ref,omitempty" db:"provider_ref"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty" db:"resolved_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// TransactionEvent is the message published to Kafka for every ledger movement.
type TransactionEvent struct {
	TransactionID string  `json:"transaction_id"`
	Timestamp     int64   `json:"timestamp"` // Unix seconds
	UserID        string  `json:"user_id"`
	Type          string  `json:"type"`
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	Reference     string  `json:"reference"`
	Status        string  `json:"status"`
}

// TransferRecord describes a completed transfer between a user's wallets.
type TransferRecord struct {
	Reference   string  `json:"reference"`
	FromKind    string  `json:"from"`
	ToKind      string  `json:"to"`
	Amount      float64 `json:"amount"`
	FromBalance float64 `json:"from_balance"`
	ToBalance   float64 `json:"to_balance"`
}
