package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Aioflcu/paylink/internal/jwt"
	"github.com/Aioflcu/paylink/internal/logger"
)

// BalanceTokener defines only the methods needed by this handler.
type BalanceTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// BalanceReader defines the interface that the service must implement.
type BalanceReader interface {
	Balances(ctx context.Context, userID uuid.UUID) (main, savings float64, err error)
}

// BalanceResponse represents the user's wallet balances
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Main wallet balance
	// default: 12500.0
	Main float64 `json:"main"`

	// Savings wallet balance
	// default: 3000.0
	Savings float64 `json:"savings"`
}

// BalanceErrorResponse represents an error response for the balance query
// swagger:model BalanceErrorResponse
type BalanceErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewBalanceHandler returns an HTTP handler that retrieves wallet balances.
// @Summary Get wallet balances
// @Description Returns the main and savings wallet balances of the authenticated user.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "User balances"
// @Failure 401 {object} handlers.BalanceErrorResponse "Unauthorized"
// @Router /balance [get]
// @Security BearerAuth
func NewBalanceHandler(
	svc BalanceReader,
	tokenGetter BalanceTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Unauthorized"})
			return
		}

		main, savings, err := svc.Balances(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get balances", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BalanceResponse{Main: main, Savings: savings})
	}
}
