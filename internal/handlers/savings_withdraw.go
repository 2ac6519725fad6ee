package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Aioflcu/paylink/internal/logger"
	"github.com/Aioflcu/paylink/internal/models"
	"github.com/Aioflcu/paylink/internal/services"
)

// PlanWithdrawer defines the interface that the service must implement.
type PlanWithdrawer interface {
	Withdraw(ctx context.Context, userID, planID uuid.UUID, amount float64) (*models.SavingsPlanDB, error)
}

// WithdrawPlanRequest represents the JSON body for a plan withdrawal
// swagger:model WithdrawPlanRequest
type WithdrawPlanRequest struct {
	// Amount to withdraw to the main wallet
	// required: true
	// default: 2000.0
	Amount float64 `json:"amount"`
}

// NewWithdrawPlanHandler returns an HTTP handler that withdraws from a plan.
// @Summary Withdraw from savings plan
// @Description Accrues pending interest, then moves funds back to the main wallet. Rejected while the plan is locked or once the withdrawal cap is reached.
// @Tags savings
// @Accept json
// @Produce json
// @Param planID path string true "Plan ID"
// @Param request body handlers.WithdrawPlanRequest true "Withdraw Request"
// @Success 200 {object} handlers.PlanResponse "Plan after withdrawal"
// @Failure 400 {object} handlers.SavingsErrorResponse "Locked / cap reached / insufficient balance"
// @Failure 401 {object} handlers.SavingsErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.SavingsErrorResponse "Plan not found"
// @Router /savings/{planID}/withdraw [post]
// @Security BearerAuth
func NewWithdrawPlanHandler(
	svc PlanWithdrawer,
	tokenGetter SavingsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SavingsErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SavingsErrorResponse{Error: "Unauthorized"})
			return
		}

		planID, err := uuid.Parse(chi.URLParam(r, "planID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SavingsErrorResponse{Error: "Invalid plan ID"})
			return
		}

		var req WithdrawPlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SavingsErrorResponse{Error: "Invalid request body"})
			return
		}

		plan, err := svc.Withdraw(ctx, claims.UserID, planID, req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPlanNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SavingsErrorResponse{Error: "Plan not found"})
			case errors.Is(err, services.ErrPlanLocked):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SavingsErrorResponse{Error: "Plan is still locked"})
			case errors.Is(err, services.ErrMaxWithdrawalsExceeded):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SavingsErrorResponse{Error: "Maximum withdrawals exceeded"})
			case errors.Is(err, services.ErrInsufficientPlanBalance), errors.Is(err, services.ErrInvalidAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SavingsErrorResponse{Error: "Invalid or excessive amount"})
			default:
				logger.Log.Errorw("failed to withdraw from plan", "userID", claims.UserID, "planID", planID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SavingsErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PlanResponse{Plan: *plan})
	}
}
