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

// FundTokener defines only the methods needed by this handler.
type FundTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// FundingInitializer defines the interface that the service must implement.
type FundingInitializer interface {
	InitFunding(ctx context.Context, userID uuid.UUID, amount float64) (checkoutURL, reference string, err error)
}

// FundRequest represents the JSON body for initializing a wallet top-up
// swagger:model FundRequest
type FundRequest struct {
	// Amount to fund in naira
	// required: true
	// default: 5000.0
	Amount float64 `json:"amount"`
}

// FundResponse represents a successful funding initialization
// swagger:model FundResponse
type FundResponse struct {
	// Hosted checkout URL to complete the payment
	CheckoutURL string `json:"checkout_url"`

	// Funding reference, echoed back by the payment webhook
	Reference string `json:"reference"`
}

// FundErrorResponse represents an error response for funding
// swagger:model FundErrorResponse
type FundErrorResponse struct {
	// Error message
	// default: Invalid amount
	Error string `json:"error"`
}

// NewFundHandler returns an HTTP handler that initializes a wallet top-up.
// @Summary Fund wallet
// @Description Initializes a collection with the payment provider and returns the hosted checkout URL. The wallet is credited when the provider webhook confirms payment.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.FundRequest true "Fund Request"
// @Success 200 {object} handlers.FundResponse "Funding initialized"
// @Failure 400 {object} handlers.FundErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.FundErrorResponse "Unauthorized"
// @Router /fund [post]
// @Security BearerAuth
func NewFundHandler(
	svc FundingInitializer,
	tokenGetter FundTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(FundErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(FundErrorResponse{Error: "Unauthorized"})
			return
		}

		var req FundRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FundErrorResponse{Error: "Invalid request body"})
			return
		}

		checkoutURL, reference, err := svc.InitFunding(ctx, claims.UserID, req.Amount)
		if err != nil {
			if errors.Is(err, services.ErrInvalidAmount) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(FundErrorResponse{Error: "Invalid amount"})
				return
			}
			logger.Log.Errorw("failed to init funding", "userID", claims.UserID, "amount", req.Amount, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(FundErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FundResponse{
			CheckoutURL: checkoutURL,
			Reference:   reference,
		})
	}
}
