package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Aioflcu/paylink/internal/jwt"
	"github.com/Aioflcu/paylink/internal/logger"
	"github.com/Aioflcu/paylink/internal/services"
)

// PinTokener defines only the methods needed by this handler.
type PinTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// PinSetter defines the interface that the service must implement.
type PinSetter interface {
	SetTransactionPIN(ctx context.Context, userID uuid.UUID, pin string) error
}

// SetPinRequest represents the JSON body for setting a transaction PIN
// swagger:model SetPinRequest
type SetPinRequest struct {
	// 4-6 digit transaction PIN
	// required: true
	// default: 4321
	PIN string `json:"pin"`
}

// SetPinResponse represents a successful PIN update response
// swagger:model SetPinResponse
type SetPinResponse struct {
	// Success message
	// default: Transaction PIN updated
	Message string `json:"message"`
}

// SetPinErrorResponse represents an error response for setting a PIN
// swagger:model SetPinErrorResponse
type SetPinErrorResponse struct {
	// Error message
	// default: PIN must be 4 to 6 digits
	Error string `json:"error"`
}

// NewSetPinHandler returns an HTTP handler for setting the transaction PIN.
// @Summary Set transaction PIN
// @Description Stores a 4-6 digit transaction PIN, hashed before storing. The PIN guards every purchase.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.SetPinRequest true "Set PIN Request"
// @Success 200 {object} handlers.SetPinResponse "Transaction PIN updated"
// @Failure 400 {object} handlers.SetPinErrorResponse "PIN must be 4 to 6 digits"
// @Failure 401 {object} handlers.SetPinErrorResponse "Unauthorized"
// @Router /pin [post]
// @Security BearerAuth
func NewSetPinHandler(
	svc PinSetter,
	tokenGetter PinTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SetPinErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SetPinErrorResponse{Error: "Unauthorized"})
			return
		}

		var req SetPinRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SetPinErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := svc.SetTransactionPIN(ctx, claims.UserID, req.PIN); err != nil {
			if errors.Is(err, services.ErrInvalidPIN) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SetPinErrorResponse{Error: "PIN must be 4 to 6 digits"})
				return
			}
			logger.Log.Errorw("failed to set transaction PIN", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SetPinErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SetPinResponse{Message: "Transaction PIN updated"})
	}
}
