package repositories

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Aioflcu/paylink/internal/logger"
)

// RiskBaselineCacheRepository caches per-user risk baselines in Redis so a
// score evaluation does not rescan the ledger and login history on every call.
type RiskBaselineCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached baselines
}

// NewRiskBaselineCacheRepository creates a new repository instance with the given TTL.
func NewRiskBaselineCacheRepository(client *redis.Client, expiration time.Duration) *RiskBaselineCacheRepository {
	return &RiskBaselineCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetRollingAverage fetches the cached rolling average debit amount for a user.
func (r *RiskBaselineCacheRepository) GetRollingAverage(ctx context.Context, userID uuid.UUID) (float64, error) {
	key := fmt.Sprintf("risk:avg:%s", userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return 0, fmt.Errorf("rolling average not found in cache for %s", userID)
		}
		return 0, err
	}

	avg, err := strconv.ParseFloat(val, 64)
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return 0, err
	}

	logger.Log.Infow(
		"key", key,
		"value", val,
		"result", avg,
		"error", nil,
	)

	return avg, nil
}

// SetRollingAverage caches the rolling average debit amount with expiration.
func (r *RiskBaselineCacheRepository) SetRollingAverage(ctx context.Context, userID uuid.UUID, avg float64) error {
	key := fmt.Sprintf("risk:avg:%s", userID)
	err := r.client.Set(ctx, key, strconv.FormatFloat(avg, 'f', -1, 64), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"avg", avg,
		"result", "ok",
		"error", err,
	)

	return err
}

// GetLastLocation fetches the cached last known coordinates for a user.
func (r *RiskBaselineCacheRepository) GetLastLocation(ctx context.Context, userID uuid.UUID) (lat, lon float64, at time.Time, err error) {
	key := fmt.Sprintf("risk:loc:%s", userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return 0, 0, time.Time{}, fmt.Errorf("location not found in cache for %s", userID)
		}
		return 0, 0, time.Time{}, err
	}

	parts := strings.Split(val, ",")
	if len(parts) != 3 {
		return 0, 0, time.Time{}, fmt.Errorf("malformed cached location %q", val)
	}
	lat, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, time.Time{}, err
	}
	lon, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, time.Time{}, err
	}
	unix, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return 0, 0, time.Time{}, err
	}

	logger.Log.Infow(
		"key", key,
		"value", val,
		"error", nil,
	)

	return lat, lon, time.Unix(unix, 0), nil
}

// SetLastLocation caches the last known coordinates with expiration.
func (r *RiskBaselineCacheRepository) SetLastLocation(ctx context.Context, userID uuid.UUID, lat, lon float64, at time.Time) error {
	key := fmt.Sprintf("risk:loc:%s", userID)
	val := fmt.Sprintf("%s,%s,%d",
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64),
		at.Unix(),
	)
	err := r.client.Set(ctx, key, val, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"value", val,
		"result", "ok",
		"error", err,
	)

	return err
}
