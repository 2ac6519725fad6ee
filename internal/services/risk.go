package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Aioflcu/paylink/internal/logger"
	"github.com/Aioflcu/paylink/internal/models"
)

// Check weights. Checks are independent and contribute additively; the total
// is capped at 100, which keeps the score monotonic in the triggered set.
const (
	weightAccountLocked = 100
	weightLocationJump  = 30
	weightLargePurchase = 25
	weightFailedPINs    = 20
	weightNewDevice     = 15
)

// Score thresholds mapping to actions.
const (
	reviewThreshold = 30
	twoFAThreshold  = 60
	blockThreshold  = 85
)

const (
	// A jump implying travel faster than this is physically impossible.
	maxTravelSpeedKmh = 900.0

	// Absolute large-purchase threshold in naira, and the multiple of the
	// rolling average that flags an anomaly.
	largePurchaseAbsolute = 100000.0
	largePurchaseMultiple = 5.0

	// Rolling average window: last n successful debits.
	rollingWindow = 20

	// Failed PIN sliding window.
	pinFailureWindow = 30 * time.Minute
	pinFailureLimit  = 3

	earthRadiusKm = 6371.0
)

// TransactionAverager derives the purchase-size baseline from the ledger.
type TransactionAverager interface {
	RollingAverage(ctx context.Context, userID uuid.UUID, n int) (float64, error)
}

// LocationReader returns the last login event that carried coordinates.
type LocationReader interface {
	GetLastWithLocation(ctx context.Context, userID uuid.UUID) (*models.LoginEventDB, error)
}

// PinFailureCounter counts failed PIN entries in a sliding window.
type PinFailureCounter interface {
	CountRecentFailures(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
}

// BaselineCache caches risk baselines between evaluations.
type BaselineCache interface {
	GetRollingAverage(ctx context.Context, userID uuid.UUID) (float64, error)
	SetRollingAverage(ctx context.Context, userID uuid.UUID, avg float64) error
	GetLastLocation(ctx context.Context, userID uuid.UUID) (lat, lon float64, at time.Time, err error)
	SetLastLocation(ctx context.Context, userID uuid.UUID, lat, lon float64, at time.Time) error
}

// FraudCheckWriter persists the audit record of each evaluation.
type FraudCheckWriter interface {
	Save(ctx context.Context, check models.FraudCheckDB) error
}

// RiskService scores transactions with independent weighted checks. A data
// error inside a check downgrades that check to "not triggered" rather than
// failing the evaluation; a purchase should not be blocked by a broken
// baseline query.
type RiskService struct {
	users   UserReader
	txns    TransactionAverager
	logins  LocationReader
	pins    PinFailureCounter
	devices DeviceToucher
	cache   BaselineCache
	audits  FraudCheckWriter
	now     func() time.Time
}

// NewRiskService creates a new RiskService.
func NewRiskService(
	users UserReader,
	txns TransactionAverager,
	logins LocationReader,
	pins PinFailureCounter,
	devices DeviceToucher,
	cache BaselineCache,
	audits FraudCheckWriter,
) *RiskService {
	return &RiskService{
		users:   users,
		txns:    txns,
		logins:  logins,
		pins:    pins,
		devices: devices,
		cache:   cache,
		audits:  audits,
		now:     time.Now,
	}
}

// Haversine returns the great-circle distance between two points in km.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// ActionForScore maps a risk score to the gating action.
func ActionForScore(score int) string {
	switch {
	case score >= blockThreshold:
		return models.ActionBlock
	case score >= twoFAThreshold:
		return models.ActionRequire2FA
	case score >= reviewThreshold:
		return models.ActionReview
	default:
		return models.ActionAllow
	}
}

func (s *RiskService) checkAccountLocked(ctx context.Context, userID uuid.UUID) models.RiskCheck {
	check := models.RiskCheck{Name: "account_locked", Weight: weightAccountLocked}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("account lock check failed", "userID", userID, "error", err)
		return check
	}
	if user.Locked(s.now()) {
		check.Triggered = true
		if user.LockReason != nil {
			check.Detail = *user.LockReason
		}
	}
	return check
}

func (s *RiskService) checkLocationJump(ctx context.Context, userID uuid.UUID, tc models.TransactionContext) models.RiskCheck {
	check := models.RiskCheck{Name: "location_jump", Weight: weightLocationJump}

	if tc.Latitude == nil || tc.Longitude == nil {
		return check
	}

	lastLat, lastLon, lastAt, err := s.cache.GetLastLocation(ctx, userID)
	if err != nil {
		event, err := s.logins.GetLastWithLocation(ctx, userID)
		if err != nil {
			logger.Log.Errorw("location baseline query failed", "userID", userID, "error", err)
			return check
		}
		if event == nil {
			return check
		}
		lastLat, lastLon, lastAt = *event.Latitude, *event.Longitude, event.CreatedAt

		if err := s.cache.SetLastLocation(ctx, userID, lastLat, lastLon, lastAt); err != nil {
			logger.Log.Errorw("failed to cache location baseline", "userID", userID, "error", err)
		}
	}

	distance := Haversine(lastLat, lastLon, *tc.Latitude, *tc.Longitude)
	elapsed := tc.Timestamp.Sub(lastAt).Hours()
	if elapsed <= 0 {
		elapsed = 1.0 / 3600 // clamp to one second
	}

	speed := distance / elapsed
	if speed > maxTravelSpeedKmh {
		check.Triggered = true
		check.Detail = fmt.Sprintf("%.0f km in %.2f h implies %.0f km/h", distance, elapsed, speed)
	}
	return check
}

func (s *RiskService) checkLargePurchase(ctx context.Context, userID uuid.UUID, amount float64) models.RiskCheck {
	check := models.RiskCheck{Name: "large_purchase", Weight: weightLargePurchase}

	if amount > largePurchaseAbsolute {
		check.Triggered = true
		check.Detail = fmt.Sprintf("amount %.2f exceeds absolute threshold", amount)
		return check
	}

	avg, err := s.cache.GetRollingAverage(ctx, userID)
	if err != nil {
		avg, err = s.txns.RollingAverage(ctx, userID, rollingWindow)
		if err != nil {
			logger.Log.Errorw("rolling average query failed", "userID", userID, "error", err)
			return check
		}
		if err := s.cache.SetRollingAverage(ctx, userID, avg); err != nil {
			logger.Log.Errorw("failed to cache rolling average", "userID", userID, "error", err)
		}
	}

	if avg > 0 && amount > largePurchaseMultiple*avg {
		check.Triggered = true
		check.Detail = fmt.Sprintf("amount %.2f exceeds %.0fx rolling average %.2f", amount, largePurchaseMultiple, avg)
	}
	return check
}

func (s *RiskService) checkFailedPINs(ctx context.Context, userID uuid.UUID) models.RiskCheck {
	check := models.RiskCheck{Name: "failed_pins", Weight: weightFailedPINs}

	count, err := s.pins.CountRecentFailures(ctx, userID, s.now().Add(-pinFailureWindow))
	if err != nil {
		logger.Log.Errorw("pin failure count query failed", "userID", userID, "error", err)
		return check
	}
	if count >= pinFailureLimit {
		check.Triggered = true
		check.Detail = fmt.Sprintf("%d failed PIN entries in window", count)
	}
	return check
}

func (s *RiskService) checkNewDevice(ctx context.Context, userID uuid.UUID, fingerprint string) models.RiskCheck {
	check := models.RiskCheck{Name: "new_device", Weight: weightNewDevice}

	if fingerprint == "" {
		return check
	}

	isNew, err := s.devices.Touch(ctx, userID, fingerprint)
	if err != nil {
		logger.Log.Errorw("device check failed", "userID", userID, "error", err)
		return check
	}
	if isNew {
		check.Triggered = true
		check.Detail = "fingerprint not seen before"
	}
	return check
}

// Score evaluates a transaction context and returns the gating decision.
// Every evaluation is written to the fraud audit trail regardless of outcome.
func (s *RiskService) Score(ctx context.Context, userID uuid.UUID, tc models.TransactionContext) (models.RiskAssessment, error) {
	checks := []models.RiskCheck{
		s.checkAccountLocked(ctx, userID),
		s.checkLocationJump(ctx, userID, tc),
		s.checkLargePurchase(ctx, userID, tc.Amount),
		s.checkFailedPINs(ctx, userID),
		s.checkNewDevice(ctx, userID, tc.DeviceFingerprint),
	}

	score := 0
	for _, c := range checks {
		if c.Triggered {
			score += c.Weight
		}
	}
	if score > 100 {
		score = 100
	}

	assessment := models.RiskAssessment{
		RiskScore: score,
		Checks:    checks,
		Action:    ActionForScore(score),
	}

	encoded, err := json.Marshal(checks)
	if err != nil {
		logger.Log.Errorw("failed to encode checks for audit", "userID", userID, "error", err)
		encoded = []byte("[]")
	}

	if err := s.audits.Save(ctx, models.FraudCheckDB{
		CheckID:   uuid.New(),
		UserID:    userID,
		Reference: tc.Reference,
		RiskScore: score,
		Checks:    encoded,
		Action:    assessment.Action,
	}); err != nil {
		logger.Log.Errorw("failed to save fraud check audit", "userID", userID, "reference", tc.Reference, "error", err)
	}

	logger.Log.Infow("risk evaluation",
		"userID", userID,
		"reference", tc.Reference,
		"score", score,
		"action", assessment.Action,
	)

	return assessment, nil
}
