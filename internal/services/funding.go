package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Aioflcu/paylink/internal/logger"
	"github.com/Aioflcu/paylink/internal/models"
)

// ErrUnknownFundingReference is returned for a webhook reference this service
// never issued.
var ErrUnknownFundingReference = errors.New("unknown funding reference")

// CollectionProvider initializes and verifies wallet funding collections.
type CollectionProvider interface {
	InitTransaction(ctx context.Context, reference, customerEmail string, amount float64) (checkoutURL, providerRef string, err error)
	VerifyTransaction(ctx context.Context, reference string) (float64, error)
}

// FundingService handles wallet top-ups through the collection provider.
// The funding reference encodes the user id, so webhook confirmation needs
// no extra lookup table, and the ledger's unique reference makes repeated
// webhook deliveries idempotent.
type FundingService struct {
	users    UserReader
	provider CollectionProvider
	ledger   WalletCrediter
}

// NewFundingService creates a new FundingService.
func NewFundingService(users UserReader, provider CollectionProvider, ledger WalletCrediter) *FundingService {
	return &FundingService{
		users:    users,
		provider: provider,
		ledger:   ledger,
	}
}

func fundingReference(userID uuid.UUID) string {
	return fmt.Sprintf("fund:%s:%s", userID, uuid.NewString())
}

func userIDFromFundingReference(reference string) (uuid.UUID, error) {
	parts := strings.Split(reference, ":")
	if len(parts) != 3 || parts[0] != "fund" {
		return uuid.Nil, ErrUnknownFundingReference
	}
	userID, err := uuid.Parse(parts[1])
	if err != nil {
		return uuid.Nil, ErrUnknownFundingReference
	}
	return userID, nil
}

// InitFunding starts a collection and returns the hosted checkout URL.
func (s *FundingService) InitFunding(ctx context.Context, userID uuid.UUID, amount float64) (checkoutURL, reference string, err error) {
	if amount <= 0 {
		return "", "", ErrInvalidAmount
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user for funding", "userID", userID, "error", err)
		return "", "", err
	}

	reference = fundingReference(userID)
	checkoutURL, providerRef, err := s.provider.InitTransaction(ctx, reference, user.Email, amount)
	if err != nil {
		logger.Log.Errorw("failed to init funding", "userID", userID, "amount", amount, "error", err)
		return "", "", err
	}

	logger.Log.Infow("funding initialized", "userID", userID, "reference", reference, "provider_ref", providerRef)
	return checkoutURL, reference, nil
}

// ConfirmFunding handles the provider webhook. The paid amount is always
// re-queried from the provider; the webhook body is a hint, not a source of
// truth. Returns the credited transaction, or ErrDuplicateReference when the
// webhook was already processed.
func (s *FundingService) ConfirmFunding(ctx context.Context, reference string) (*models.TransactionDB, error) {
	userID, err := userIDFromFundingReference(reference)
	if err != nil {
		return nil, err
	}

	amount, err := s.provider.VerifyTransaction(ctx, reference)
	if err != nil {
		logger.Log.Errorw("funding verification failed", "reference", reference, "error", err)
		return nil, err
	}

	txn, err := s.ledger.Credit(ctx, userID, amount, models.CategoryFunding, reference)
	if err != nil {
		if errors.Is(err, ErrDuplicateReference) {
			logger.Log.Infow("funding webhook replay ignored", "reference", reference)
			return nil, ErrDuplicateReference
		}
		return nil, err
	}

	return &txn, nil
}
