package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Aioflcu/paylink/internal/logger"
	"github.com/Aioflcu/paylink/internal/models"
)

// PlanLister defines the interface that the service must implement.
type PlanLister interface {
	ListPlans(ctx context.Context, userID uuid.UUID) ([]models.SavingsPlanDB, error)
}

// PlansResponse represents the user's savings plans
// swagger:model PlansResponse
type PlansResponse struct {
	Plans []models.SavingsPlanDB `json:"plans"`
}

// NewListPlansHandler returns an HTTP handler that lists savings plans.
// @Summary List savings plans
// @Description Returns all savings plans of the authenticated user.
// @Tags savings
// @Produce json
// @Success 200 {object} handlers.PlansResponse "Savings plans"
// @Failure 401 {object} handlers.SavingsErrorResponse "Unauthorized"
// @Router /savings [get]
// @Security BearerAuth
func NewListPlansHandler(
	svc PlanLister,
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

		plans, err := svc.ListPlans(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list plans", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SavingsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PlansResponse{Plans: plans})
	}
}
