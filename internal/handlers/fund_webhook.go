package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Aioflcu/paylink/internal/logger"
	"github.com/Aioflcu/paylink/internal/models"
	"github.com/Aioflcu/paylink/internal/services"
)

// FundingConfirmer defines the interface that the service must implement.
type FundingConfirmer interface {
	ConfirmFunding(ctx context.Context, reference string) (*models.TransactionDB, error)
}

// FundWebhookRequest represents the payment provider webhook body. Only the
// reference is trusted; the paid amount is re-queried from the provider.
// swagger:model FundWebhookRequest
type FundWebhookRequest struct {
	// Funding reference issued at initialization
	// required: true
	PaymentReference string `json:"paymentReference"`
}

// FundWebhookResponse represents the webhook acknowledgement
// swagger:model FundWebhookResponse
type FundWebhookResponse struct {
	// Acknowledgement message
	// default: Processed
	Message string `json:"message"`
}

// FundWebhookErrorResponse represents an error response for the webhook
// swagger:model FundWebhookErrorResponse
type FundWebhookErrorResponse struct {
	// Error message
	// default: Unknown reference
	Error string `json:"error"`
}

// NewFundWebhookHandler returns an HTTP handler for the payment provider
// webhook. Redelivered webhooks are acknowledged without crediting twice.
// @Summary Confirm wallet funding
// @Description Handles the payment provider webhook. The payment is re-verified against the provider before the wallet is credited. Safe to redeliver.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.FundWebhookRequest true "Webhook body"
// @Success 200 {object} handlers.FundWebhookResponse "Processed"
// @Failure 400 {object} handlers.FundWebhookErrorResponse "Unknown reference"
// @Router /fund/webhook [post]
func NewFundWebhookHandler(svc FundingConfirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req FundWebhookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FundWebhookErrorResponse{Error: "Invalid request body"})
			return
		}

		if _, err := svc.ConfirmFunding(ctx, req.PaymentReference); err != nil {
			switch {
			case errors.Is(err, services.ErrDuplicateReference):
				// Already credited on a previous delivery.
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(FundWebhookResponse{Message: "Already processed"})
			case errors.Is(err, services.ErrUnknownFundingReference):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(FundWebhookErrorResponse{Error: "Unknown reference"})
			default:
				logger.Log.Errorw("failed to confirm funding", "reference", req.PaymentReference, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FundWebhookErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FundWebhookResponse{Message: "Processed"})
	}
}
