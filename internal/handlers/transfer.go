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

// TransferTokener defines only the methods needed by this handler.
type TransferTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Transferer defines the interface that the service must implement.
type Transferer interface {
	Transfer(ctx context.Context, userID uuid.UUID, fromKind, toKind string, amount float64) (models.TransferRecord, error)
}

// TransferRequest represents the JSON body for a wallet-to-wallet transfer
// swagger:model TransferRequest
type TransferRequest struct {
	// Source wallet: main or savings
	// required: true
	// default: main
	From string `json:"from"`

	// Destination wallet: main or savings
	// required: true
	// default: savings
	To string `json:"to"`

	// Amount to move
	// required: true
	// default: 1000.0
	Amount float64 `json:"amount"`
}

// TransferResponse represents a successful transfer response
// swagger:model TransferResponse
type TransferResponse struct {
	// Success message
	// default: Transfer completed
	Message string `json:"message"`

	// Transfer reference
	Reference string `json:"reference"`

	// Source wallet balance after the transfer
	FromBalance float64 `json:"from_balance"`

	// Destination wallet balance after the transfer
	ToBalance float64 `json:"to_balance"`
}

// TransferErrorResponse represents an error response for a transfer
// swagger:model TransferErrorResponse
type TransferErrorResponse struct {
	// Error message
	// default: Insufficient funds
	Error string `json:"error"`
}

// NewTransferHandler returns an HTTP handler for transfers between the user's
// own wallets.
// @Summary Transfer between wallets
// @Description Moves funds between the main and savings wallets. A savings-to-main transfer must leave the savings wallet at or above the minimum reserve.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.TransferRequest true "Transfer Request"
// @Success 200 {object} handlers.TransferResponse "Transfer completed"
// @Failure 400 {object} handlers.TransferErrorResponse "Invalid transfer / insufficient funds"
// @Failure 401 {object} handlers.TransferErrorResponse "Unauthorized"
// @Router /transfer [post]
// @Security BearerAuth
func NewTransferHandler(
	svc Transferer,
	tokenGetter TransferTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Unauthorized"})
			return
		}

		var req TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Invalid request body"})
			return
		}

		record, err := svc.Transfer(ctx, claims.UserID, req.From, req.To, req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount), errors.Is(err, services.ErrInvalidTransfer):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Invalid transfer"})
			case errors.Is(err, services.ErrInsufficientFunds):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Insufficient funds"})
			case errors.Is(err, services.ErrBelowMinimumReserve):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Savings balance would fall below minimum reserve"})
			default:
				logger.Log.Errorw("failed to transfer", "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransferResponse{
			Message:     "Transfer completed",
			Reference:   record.Reference,
			FromBalance: record.FromBalance,
			ToBalance:   record.ToBalance,
		})
	}
}
