package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Aioflcu/paylink/internal/jwt"
	"github.com/Aioflcu/paylink/internal/logger"
	"github.com/Aioflcu/paylink/internal/models"
	"github.com/Aioflcu/paylink/internal/services"
)

// SavingsTokener defines only the methods needed by the savings handlers.
type SavingsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// PlanCreator defines the interface that the service must implement.
type PlanCreator interface {
	CreatePlan(ctx context.Context, userID uuid.UUID, name string, target, initial, rate float64, interval string, lockDays int) (*models.SavingsPlanDB, error)
}

// CreatePlanRequest represents the JSON body for opening a savings plan
// swagger:model CreatePlanRequest
type CreatePlanRequest struct {
	// Plan name
	// required: true
	// default: School fees
	Name string `json:"name"`

	// Target amount in naira
	// default: 100000.0
	Target float64 `json:"target"`

	// Initial deposit, debited from the main wallet
	// required: true
	// default: 10000.0
	Initial float64 `json:"initial"`

	// Annual interest rate in percent
	// required: true
	// default: 5.0
	Rate float64 `json:"rate"`

	// Compounding interval: daily, weekly or monthly
	// required: true
	// default: monthly
	Interval string `json:"interval"`

	// Days the principal is locked for
	// required: true
	// default: 30
	LockDays int `json:"lock_days"`
}

// PlanResponse represents a savings plan
// swagger:model PlanResponse
type PlanResponse struct {
	Plan models.SavingsPlanDB `json:"plan"`
}

// SavingsErrorResponse represents an error response for savings operations
// swagger:model SavingsErrorResponse
type SavingsErrorResponse struct {
	// Error message
	// default: Insufficient funds
	Error string `json:"error"`
}

// NewCreatePlanHandler returns an HTTP handler that opens a savings plan.
// @Summary Create savings plan
// @Description Opens a locked savings plan, debiting the initial deposit from the main wallet. Interest compounds at the chosen interval.
// @Tags savings
// @Accept json
// @Produce json
// @Param request body handlers.CreatePlanRequest true "Create Plan Request"
// @Success 201 {object} handlers.PlanResponse "Plan created"
// @Failure 400 {object} handlers.SavingsErrorResponse "Invalid request / insufficient funds"
// @Failure 401 {object} handlers.SavingsErrorResponse "Unauthorized"
// @Router /savings [post]
// @Security BearerAuth
func NewCreatePlanHandler(
	svc PlanCreator,
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

		var req CreatePlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SavingsErrorResponse{Error: "Invalid request body"})
			return
		}

		plan, err := svc.CreatePlan(ctx, claims.UserID, req.Name, req.Target, req.Initial, req.Rate, req.Interval, req.LockDays)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount), errors.Is(err, services.ErrInvalidInterval):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SavingsErrorResponse{Error: "Invalid amount or interval"})
			case errors.Is(err, services.ErrInsufficientFunds):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SavingsErrorResponse{Error: "Insufficient funds"})
			default:
				logger.Log.Errorw("failed to create plan", "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SavingsErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(PlanResponse{Plan: *plan})
	}
}
