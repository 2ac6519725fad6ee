package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Aioflcu/paylink/internal/facades"
	"github.com/Aioflcu/paylink/internal/logger"
	"github.com/Aioflcu/paylink/internal/models"
)

var (
	// ErrTransactionBlocked is returned when the risk scorer blocks the
	// transaction outright. No money moves.
	ErrTransactionBlocked = errors.New("transaction blocked by risk policy")

	// ErrTwoFactorRequired is returned when the risk scorer demands a second
	// factor the request did not carry. No money moves.
	ErrTwoFactorRequired = errors.New("two-factor verification required")

	// ErrProviderPending is returned when the provider outcome is unknown.
	// The debit stands as pending until an operator resolves it.
	ErrProviderPending = errors.New("provider outcome unknown, transaction pending")

	// ErrUnsupportedCategory is returned for a purchase category the
	// aggregator cannot fulfil.
	ErrUnsupportedCategory = errors.New("unsupported purchase category")

	// ErrNotPending is returned when resolving a transaction that is not in
	// the pending state.
	ErrNotPending = errors.New("transaction is not pending")
)

// PINVerifier checks the transaction PIN before any money moves.
type PINVerifier interface {
	VerifyTransactionPIN(ctx context.Context, userID uuid.UUID, pin string) error
}

// RiskScorer gates transactions.
type RiskScorer interface {
	Score(ctx context.Context, userID uuid.UUID, tc models.TransactionContext) (models.RiskAssessment, error)
}

// PurchaseLedger is the slice of the ledger the saga drives.
type PurchaseLedger interface {
	DebitPending(ctx context.Context, userID uuid.UUID, amount float64, category, reference string) (models.TransactionDB, error)
	Credit(ctx context.Context, userID uuid.UUID, amount float64, category, reference string) (models.TransactionDB, error)
	Settle(ctx context.Context, reference, status string, providerRef *string) error
}

// BillProvider is the aggregator the purchases are fulfilled through.
type BillProvider interface {
	PurchaseAirtime(ctx context.Context, reference, network, phone string, amount float64) (string, error)
	PurchaseData(ctx context.Context, reference, network, phone, planCode string, amount float64) (string, error)
	PayElectricity(ctx context.Context, reference, disco, meterNumber, meterType string, amount float64) (providerRef, token string, err error)
	PayCable(ctx context.Context, reference, provider, smartcard, planCode string, amount float64) (string, error)
	ValidateMeter(ctx context.Context, disco, meterNumber, meterType string) (bool, string, error)
	ValidateSmartcard(ctx context.Context, provider, smartcard string) (bool, string, error)
}

// TransactionReader looks up ledger rows for the admin resolve path.
type TransactionReader interface {
	GetByReference(ctx context.Context, reference string) (*models.TransactionDB, error)
}

// PurchaseRequest carries everything one bill purchase needs.
type PurchaseRequest struct {
	Category string
	Amount   float64
	PIN      string

	// Category-specific delivery details.
	Network   string // airtime, data
	Phone     string // airtime, data
	PlanCode  string // data, cable
	Disco     string // electricity
	Meter     string // electricity
	MeterType string // electricity: prepaid or postpaid
	Provider  string // cable
	Smartcard string // cable

	// Risk inputs.
	DeviceFingerprint string
	Latitude          *float64
	Longitude         *float64

	// Set when the caller already passed a second-factor challenge.
	TwoFactorVerified bool
}

// Receipt is the outcome of a purchase attempt.
type Receipt struct {
	Reference     string  `json:"reference"`
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	ProviderRef   string  `json:"provider_ref,omitempty"`
	Token         string  `json:"token,omitempty"` // prepaid electricity token
	RiskAction    string  `json:"risk_action"`
	PointsAwarded int64   `json:"points_awarded"`
	NewBalance    float64 `json:"new_balance"`
}

// PurchaseService runs the debit -> provider -> settle saga. A declined
// provider call is compensated with an automatic reversal credit; an unknown
// outcome leaves the transaction pending for operator resolution.
type PurchaseService struct {
	pins     PINVerifier
	risk     RiskScorer
	ledger   PurchaseLedger
	provider BillProvider
	txReader TransactionReader
	rewards  RewardAwarder
	now      func() time.Time
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(
	pins PINVerifier,
	risk RiskScorer,
	ledger PurchaseLedger,
	provider BillProvider,
	txReader TransactionReader,
	rewards RewardAwarder,
) *PurchaseService {
	return &PurchaseService{
		pins:     pins,
		risk:     risk,
		ledger:   ledger,
		provider: provider,
		txReader: txReader,
		rewards:  rewards,
		now:      time.Now,
	}
}

func (s *PurchaseService) fulfil(ctx context.Context, reference string, req PurchaseRequest) (providerRef, token string, err error) {
	switch req.Category {
	case models.CategoryAirtime:
		providerRef, err = s.provider.PurchaseAirtime(ctx, reference, req.Network, req.Phone, req.Amount)
	case models.CategoryData:
		providerRef, err = s.provider.PurchaseData(ctx, reference, req.Network, req.Phone, req.PlanCode, req.Amount)
	case models.CategoryElectricity:
		providerRef, token, err = s.provider.PayElectricity(ctx, reference, req.Disco, req.Meter, req.MeterType, req.Amount)
	case models.CategoryCable:
		providerRef, err = s.provider.PayCable(ctx, reference, req.Provider, req.Smartcard, req.PlanCode, req.Amount)
	default:
		err = ErrUnsupportedCategory
	}
	return providerRef, token, err
}

// Purchase executes one bill payment end to end.
func (s *PurchaseService) Purchase(ctx context.Context, userID uuid.UUID, req PurchaseRequest) (*Receipt, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if _, ok := map[string]struct{}{
		models.CategoryAirtime: {}, models.CategoryData: {},
		models.CategoryElectricity: {}, models.CategoryCable: {},
	}[req.Category]; !ok {
		return nil, ErrUnsupportedCategory
	}

	if err := s.pins.VerifyTransactionPIN(ctx, userID, req.PIN); err != nil {
		return nil, err
	}

	reference := uuid.NewString()
	assessment, err := s.risk.Score(ctx, userID, models.TransactionContext{
		Reference:         reference,
		Category:          req.Category,
		Amount:            req.Amount,
		DeviceFingerprint: req.DeviceFingerprint,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		Timestamp:         s.now(),
	})
	if err != nil {
		logger.Log.Errorw("risk evaluation failed", "userID", userID, "reference", reference, "error", err)
		return nil, err
	}

	switch assessment.Action {
	case models.ActionBlock:
		logger.Log.Warnw("purchase blocked", "userID", userID, "reference", reference, "score", assessment.RiskScore)
		return nil, ErrTransactionBlocked
	case models.ActionRequire2FA:
		if !req.TwoFactorVerified {
			return nil, ErrTwoFactorRequired
		}
	}

	txn, err := s.ledger.DebitPending(ctx, userID, req.Amount, req.Category, reference)
	if err != nil {
		return nil, err
	}

	receipt := &Receipt{
		Reference:  reference,
		Category:   req.Category,
		Amount:     req.Amount,
		RiskAction: assessment.Action,
		NewBalance: txn.BalanceAfter,
	}

	providerRef, token, err := s.fulfil(ctx, reference, req)
	if err != nil {
		if errors.Is(err, facades.ErrProviderTimeout) {
			// Outcome unknown: leave the row pending, never re-credit blind.
			logger.Log.Warnw("provider timeout, transaction left pending", "userID", userID, "reference", reference)
			receipt.Status = models.TxPending
			return receipt, ErrProviderPending
		}

		// Definitive decline: settle as failed and put the money back.
		if serr := s.ledger.Settle(ctx, reference, models.TxFailed, nil); serr != nil {
			logger.Log.Errorw("failed to settle declined purchase", "reference", reference, "error", serr)
		}
		reversal, rerr := s.ledger.Credit(ctx, userID, req.Amount, models.CategoryReversal, fmt.Sprintf("%s-rev", reference))
		if rerr != nil {
			logger.Log.Errorw("failed to reverse declined purchase", "reference", reference, "error", rerr)
		} else {
			receipt.NewBalance = reversal.BalanceAfter
		}

		receipt.Status = models.TxFailed
		return receipt, err
	}

	if serr := s.ledger.Settle(ctx, reference, models.TxSuccess, &providerRef); serr != nil {
		logger.Log.Errorw("failed to settle successful purchase", "reference", reference, "error", serr)
	}

	points := int64(0)
	if s.rewards != nil {
		points, err = s.rewards.Award(ctx, userID, req.Category, req.Amount, reference)
		if err != nil {
			logger.Log.Errorw("failed to award points", "userID", userID, "reference", reference, "error", err)
			points = 0
		}
	}

	receipt.Status = models.TxSuccess
	receipt.ProviderRef = providerRef
	receipt.Token = token
	receipt.PointsAwarded = points
	return receipt, nil
}

// ValidateMeter resolves a meter number through the aggregator.
func (s *PurchaseService) ValidateMeter(ctx context.Context, disco, meterNumber, meterType string) (bool, string, error) {
	return s.provider.ValidateMeter(ctx, disco, meterNumber, meterType)
}

// ValidateSmartcard resolves a smartcard number through the aggregator.
func (s *PurchaseService) ValidateSmartcard(ctx context.Context, provider, smartcard string) (bool, string, error) {
	return s.provider.ValidateSmartcard(ctx, provider, smartcard)
}

// ResolvePending settles a stuck pending transaction after an operator
// confirmed the real outcome with the provider. A failed outcome triggers
// the reversal credit the automatic path would have applied.
func (s *PurchaseService) ResolvePending(ctx context.Context, reference string, succeeded bool, providerRef *string) error {
	txn, err := s.txReader.GetByReference(ctx, reference)
	if err != nil {
		return err
	}
	if txn.Status != models.TxPending {
		return ErrNotPending
	}

	if succeeded {
		if err := s.ledger.Settle(ctx, reference, models.TxSuccess, providerRef); err != nil {
			return err
		}
		if s.rewards != nil {
			if _, err := s.rewards.Award(ctx, txn.UserID, txn.Category, txn.Amount, reference); err != nil {
				logger.Log.Errorw("failed to award points on resolution", "reference", reference, "error", err)
			}
		}
		return nil
	}

	if err := s.ledger.Settle(ctx, reference, models.TxFailed, providerRef); err != nil {
		return err
	}
	if _, err := s.ledger.Credit(ctx, txn.UserID, txn.Amount, models.CategoryReversal, fmt.Sprintf("%s-rev", reference)); err != nil {
		logger.Log.Errorw("failed to reverse resolved purchase", "reference", reference, "error", err)
		return err
	}
	return nil
}
