package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Aioflcu/paylink/internal/logger"
	"github.com/Aioflcu/paylink/internal/models"
	"github.com/Aioflcu/paylink/internal/services"
)

// Redeemer defines the interface that the service must implement.
type Redeemer interface {
	Redeem(ctx context.Context, userID uuid.UUID, req services.RedeemRequest) (*models.RedemptionResult, error)
}

// RedeemRequest represents the JSON body for redeeming a catalog item
// swagger:model RedeemRequest
type RedeemRequest struct {
	// Catalog item key
	// required: true
	// default: airtime_100
	Item string `json:"item"`

	// Network operator for airtime/data delivery
	Network string `json:"network,omitempty"`

	// Recipient phone number for airtime/data delivery
	Phone string `json:"phone,omitempty"`

	// Provider plan code for data delivery
	PlanCode string `json:"plan_code,omitempty"`
}

// RedeemResponse represents a successful redemption
// swagger:model RedeemResponse
type RedeemResponse struct {
	Redemption models.RedemptionResult `json:"redemption"`
}

// NewRedeemHandler returns an HTTP handler that redeems reward points.
// @Summary Redeem reward points
// @Description Spends points on a fixed catalog item. Cashback credits the main wallet, airtime and data are delivered through the bill aggregator, discounts mint a voucher with an expiry. Points are refunded when delivery fails.
// @Tags rewards
// @Accept json
// @Produce json
// @Param request body handlers.RedeemRequest true "Redeem Request"
// @Success 200 {object} handlers.RedeemResponse "Redemption completed"
// @Failure 400 {object} handlers.RewardsErrorResponse "Unknown item / insufficient points"
// @Failure 401 {object} handlers.RewardsErrorResponse "Unauthorized"
// @Router /rewards/redeem [post]
// @Security BearerAuth
func NewRedeemHandler(
	svc Redeemer,
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

		var req RedeemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RewardsErrorResponse{Error: "Invalid request body"})
			return
		}

		result, err := svc.Redeem(ctx, claims.UserID, services.RedeemRequest{
			Item:     req.Item,
			Network:  req.Network,
			Phone:    req.Phone,
			PlanCode: req.PlanCode,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRedemption):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RewardsErrorResponse{Error: "Unknown item or missing delivery details"})
			case errors.Is(err, services.ErrInsufficientPoints):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RewardsErrorResponse{Error: "Insufficient points"})
			default:
				logger.Log.Errorw("failed to redeem", "userID", claims.UserID, "item", req.Item, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RewardsErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RedeemResponse{Redemption: *result})
	}
}
