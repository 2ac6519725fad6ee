package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Aioflcu/paylink/internal/logger"
	"github.com/Aioflcu/paylink/internal/services"
)

// PlanDeleter defines the interface that the service must implement.
type PlanDeleter interface {
	DeletePlan(ctx context.Context, userID, planID uuid.UUID) (float64, error)
}

// DeletePlanResponse represents a successful plan closure
// swagger:model DeletePlanResponse
type DeletePlanResponse struct {
	// Success message
	// default: Plan closed
	Message string `json:"message"`

	// Amount refunded to the main wallet, including accrued interest
	Refunded float64 `json:"refunded"`
}

// NewDeletePlanHandler returns an HTTP handler that closes a savings plan.
// @Summary Close savings plan
// @Description Closes a plan and refunds its full balance, including interest accrued to the moment of closure, to the main wallet.
// @Tags savings
// @Produce json
// @Param planID path string true "Plan ID"
// @Success 200 {object} handlers.DeletePlanResponse "Plan closed"
// @Failure 401 {object} handlers.SavingsErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.SavingsErrorResponse "Plan not found"
// @Router /savings/{planID} [delete]
// @Security BearerAuth
func NewDeletePlanHandler(
	svc PlanDeleter,
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

		refunded, err := svc.DeletePlan(ctx, claims.UserID, planID)
		if err != nil {
			if errors.Is(err, services.ErrPlanNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SavingsErrorResponse{Error: "Plan not found"})
				return
			}
			logger.Log.Errorw("failed to delete plan", "userID", claims.UserID, "planID", planID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SavingsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeletePlanResponse{
			Message:  "Plan closed",
			Refunded: refunded,
		})
	}
}
