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
	"github.com/Aioflcu/paylink/internal/repositories"
)

var (
	// ErrInvalidRedemption is returned for an unknown catalog item or a
	// redemption missing required delivery details.
	ErrInvalidRedemption = errors.New("invalid redemption")

	// ErrInsufficientPoints is returned when the point balance cannot cover
	// the catalog item.
	ErrInsufficientPoints = errors.New("insufficient reward points")
)

// rewardRate defines points earned per amount unit for a category.
type rewardRate struct {
	PerUnit float64 // naira per rate application
	Rate    int64   // points per unit
}

// Static per-category award table. Categories not listed award nothing.
var rewardRates = map[string]rewardRate{
	models.CategoryAirtime:     {PerUnit: 100, Rate: 1},
	models.CategoryData:        {PerUnit: 100, Rate: 1},
	models.CategoryElectricity: {PerUnit: 500, Rate: 2},
	models.CategoryCable:       {PerUnit: 500, Rate: 2},
}

// CatalogItem is one fixed redemption option.
type CatalogItem struct {
	Points     int64
	Value      float64
	Kind       string
	ExpiryDays int // 0 means no expiry
}

// RedemptionCatalog is the fixed set of redeemable items.
var RedemptionCatalog = map[string]CatalogItem{
	"discount_50": {Points: 500, Value: 50, Kind: models.RedemptionDiscount, ExpiryDays: 30},
	"airtime_100": {Points: 1000, Value: 100, Kind: models.RedemptionAirtime},
	"data_200mb":  {Points: 1500, Value: 200, Kind: models.RedemptionData},
	"cashback_50": {Points: 500, Value: 50, Kind: models.RedemptionCashback},
}

// PointsFor returns the points awarded for a category and amount:
// floor(amount / perUnit) * rate. Pure and deterministic.
func PointsFor(category string, amount float64) int64 {
	rate, ok := rewardRates[category]
	if !ok || amount <= 0 {
		return 0
	}
	return int64(math.Floor(amount/rate.PerUnit)) * rate.Rate
}

// RewardWriter mutates point balances and appends reward records.
type RewardWriter interface {
	AddPoints(ctx context.Context, userID uuid.UUID, delta int64) (int64, error)
	SaveEvent(ctx context.Context, event models.RewardEventDB) error
	SaveRedemption(ctx context.Context, redemption models.RedemptionDB) error
}

// RewardReader reads point balances and history.
type RewardReader interface {
	GetPoints(ctx context.Context, userID uuid.UUID) (int64, error)
	ListEvents(ctx context.Context, userID uuid.UUID, limit int) ([]models.RewardEventDB, error)
}

// WalletCrediter credits cashback redemptions straight to the main wallet.
type WalletCrediter interface {
	Credit(ctx context.Context, userID uuid.UUID, amount float64, category, reference string) (models.TransactionDB, error)
}

// RedemptionFulfiller delivers airtime/data redemptions through the bill
// aggregator without touching the wallet.
type RedemptionFulfiller interface {
	PurchaseAirtime(ctx context.Context, reference, network, phone string, amount float64) (string, error)
	PurchaseData(ctx context.Context, reference, network, phone, planCode string, amount float64) (string, error)
}

// RedeemRequest carries delivery details for kinds that need them.
type RedeemRequest struct {
	Item     string
	Network  string // airtime/data delivery
	Phone    string // airtime/data delivery
	PlanCode string // data delivery
}

// RewardService accrues and redeems loyalty points.
type RewardService struct {
	writer    RewardWriter
	reader    RewardReader
	wallet    WalletCrediter
	fulfiller RedemptionFulfiller
	now       func() time.Time
}

// NewRewardService creates a new RewardService.
func NewRewardService(writer RewardWriter, reader RewardReader, wallet WalletCrediter, fulfiller RedemptionFulfiller) *RewardService {
	return &RewardService{
		writer:    writer,
		reader:    reader,
		wallet:    wallet,
		fulfiller: fulfiller,
		now:       time.Now,
	}
}

// Award converts a settled purchase into points. Zero-point categories write
// nothing and return 0.
func (s *RewardService) Award(ctx context.Context, userID uuid.UUID, category string, amount float64, reference string) (int64, error) {
	points := PointsFor(category, amount)
	if points == 0 {
		return 0, nil
	}

	if _, err := s.writer.AddPoints(ctx, userID, points); err != nil {
		logger.Log.Errorw("failed to add points", "userID", userID, "points", points, "error", err)
		return 0, err
	}

	if err := s.writer.SaveEvent(ctx, models.RewardEventDB{
		UserID:    userID,
		Kind:      models.RewardAward,
		Category:  category,
		Points:    points,
		Reference: reference,
	}); err != nil {
		logger.Log.Errorw("failed to save reward event", "userID", userID, "reference", reference, "error", err)
		return 0, err
	}

	return points, nil
}

// Points returns the user's current balance.
func (s *RewardService) Points(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.reader.GetPoints(ctx, userID)
}

// History returns the most recent reward events.
func (s *RewardService) History(ctx context.Context, userID uuid.UUID, limit int) ([]models.RewardEventDB, error) {
	return s.reader.ListEvents(ctx, userID, limit)
}

// Redeem spends points on a catalog item and dispatches its side effect:
// cashback credits the wallet, airtime/data purchase through the aggregator,
// discounts mint a voucher with an expiry.
func (s *RewardService) Redeem(ctx context.Context, userID uuid.UUID, req RedeemRequest) (*models.RedemptionResult, error) {
	item, ok := RedemptionCatalog[req.Item]
	if !ok {
		return nil, ErrInvalidRedemption
	}
	if (item.Kind == models.RedemptionAirtime || item.Kind == models.RedemptionData) && (req.Phone == "" || req.Network == "") {
		return nil, ErrInvalidRedemption
	}

	remaining, err := s.writer.AddPoints(ctx, userID, -item.Points)
	if err != nil {
		if errors.Is(err, repositories.ErrPointsGuard) {
			return nil, ErrInsufficientPoints
		}
		logger.Log.Errorw("failed to deduct points", "userID", userID, "item", req.Item, "error", err)
		return nil, err
	}

	redemptionID := uuid.New()
	reference := fmt.Sprintf("redeem-%s", redemptionID)

	refundPoints := func() {
		if _, err := s.writer.AddPoints(ctx, userID, item.Points); err != nil {
			logger.Log.Errorw("failed to refund points after fulfillment failure", "userID", userID, "item", req.Item, "error", err)
		}
	}

	var expiresAt *time.Time
	switch item.Kind {
	case models.RedemptionCashback:
		if _, err := s.wallet.Credit(ctx, userID, item.Value, models.CategoryCashback, reference); err != nil {
			refundPoints()
			return nil, err
		}
	case models.RedemptionAirtime:
		if _, err := s.fulfiller.PurchaseAirtime(ctx, reference, req.Network, req.Phone, item.Value); err != nil {
			refundPoints()
			return nil, err
		}
	case models.RedemptionData:
		if _, err := s.fulfiller.PurchaseData(ctx, reference, req.Network, req.Phone, req.PlanCode, item.Value); err != nil {
			refundPoints()
			return nil, err
		}
	case models.RedemptionDiscount:
		t := s.now().AddDate(0, 0, item.ExpiryDays)
		expiresAt = &t
	}

	if err := s.writer.SaveEvent(ctx, models.RewardEventDB{
		UserID:    userID,
		Kind:      models.RewardRedeem,
		Category:  item.Kind,
		Points:    -item.Points,
		Reference: reference,
	}); err != nil {
		logger.Log.Errorw("failed to save redeem event", "userID", userID, "reference", reference, "error", err)
	}

	if err := s.writer.SaveRedemption(ctx, models.RedemptionDB{
		RedemptionID: redemptionID,
		UserID:       userID,
		Item:         req.Item,
		Points:       item.Points,
		Value:        item.Value,
		Kind:         item.Kind,
		ExpiresAt:    expiresAt,
	}); err != nil {
		logger.Log.Errorw("failed to save redemption", "userID", userID, "reference", reference, "error", err)
	}

	return &models.RedemptionResult{
		Item:            req.Item,
		PointsSpent:     item.Points,
		RemainingPoints: remaining,
		Kind:            item.Kind,
		Value:           item.Value,
		ExpiresAt:       expiresAt,
	}, nil
}
