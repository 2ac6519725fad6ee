package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Aioflcu/paylink/internal/jwt"
	"github.com/Aioflcu/paylink/internal/logger"
	"github.com/Aioflcu/paylink/internal/models"
)

const defaultRewardHistoryLimit = 50

// RewardsTokener defines only the methods needed by the rewards handlers.
type RewardsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RewardsReader defines the interface that the service must implement.
type RewardsReader interface {
	Points(ctx context.Context, userID uuid.UUID) (int64, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]models.RewardEventDB, error)
}

// RewardsResponse represents the reward point balance and history
// swagger:model RewardsResponse
type RewardsResponse struct {
	// Current point balance
	// default: 1250
	Points int64 `json:"points"`

	// Most recent point movements, newest first
	History []models.RewardEventDB `json:"history"`
}

// RewardsErrorResponse represents an error response for rewards operations
// swagger:model RewardsErrorResponse
type RewardsErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewRewardsHandler returns an HTTP handler that returns points and history.
// @Summary Get reward points
// @Description Returns the user's reward point balance and recent point movements.
// @Tags rewards
// @Produce json
// @Success 200 {object} handlers.RewardsResponse "Points and history"
// @Failure 401 {object} handlers.RewardsErrorResponse "Unauthorized"
// @Router /rewards [get]
// @Security BearerAuth
func NewRewardsHandler(
	svc RewardsReader,
	tokenGetter RewardsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RewardsErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RewardsErrorResponse{Error: "Unauthorized"})
			return
		}

		points, err := svc.Points(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get points", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RewardsErrorResponse{Error: "Internal server error"})
			return
		}

		history, err := svc.History(ctx, claims.UserID, defaultRewardHistoryLimit)
		if err != nil {
			logger.Log.Errorw("failed to get reward history", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RewardsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RewardsResponse{
			Points:  points,
			History: history,
		})
	}
}
