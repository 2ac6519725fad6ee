package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/Aioflcu/paylink/internal/jwt"
	"github.com/Aioflcu/paylink/internal/logger"
	"github.com/Aioflcu/paylink/internal/models"
)

const defaultHistoryLimit = 50

// TransactionsTokener defines only the methods needed by this handler.
type TransactionsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TransactionLister defines the interface that the repository must implement.
type TransactionLister interface {
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.TransactionDB, error)
}

// TransactionsResponse represents the transaction history
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	// Most recent transactions, newest first
	Transactions []models.TransactionDB `json:"transactions"`
}

// TransactionsErrorResponse represents an error response for history
// swagger:model TransactionsErrorResponse
type TransactionsErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewTransactionsHandler returns an HTTP handler that lists ledger rows.
// @Summary List transactions
// @Description Returns the user's most recent ledger rows, newest first. Limit defaults to 50.
// @Tags wallet
// @Produce json
// @Param limit query int false "Maximum rows to return"
// @Success 200 {object} handlers.TransactionsResponse "Transaction history"
// @Failure 401 {object} handlers.TransactionsErrorResponse "Unauthorized"
// @Router /transactions [get]
// @Security BearerAuth
func NewTransactionsHandler(
	repo TransactionLister,
	tokenGetter TransactionsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: "Unauthorized"})
			return
		}

		limit := defaultHistoryLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		txns, err := repo.ListByUserID(ctx, claims.UserID, limit)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransactionsResponse{Transactions: txns})
	}
}
