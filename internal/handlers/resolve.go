package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Aioflcu/paylink/internal/logger"
	"github.com/Aioflcu/paylink/internal/services"
)

// PendingResolver defines the interface that the service must implement.
type PendingResolver interface {
	ResolvePending(ctx context.Context, reference string, succeeded bool, providerRef *string) error
}

// ResolveRequest represents the JSON body for resolving a pending transaction
// swagger:model ResolveRequest
type ResolveRequest struct {
	// Ledger reference of the pending transaction
	// required: true
	Reference string `json:"reference"`

	// Confirmed outcome
	// required: true
	Succeeded bool `json:"succeeded"`

	// Provider reference, when known
	ProviderRef *string `json:"provider_ref,omitempty"`
}

// ResolveResponse represents a successful resolution
// swagger:model ResolveResponse
type ResolveResponse struct {
	// Success message
	// default: Transaction resolved
	Message string `json:"message"`
}

// ResolveErrorResponse represents an error response for resolution
// swagger:model ResolveErrorResponse
type ResolveErrorResponse struct {
	// Error message
	// default: Transaction is not pending
	Error string `json:"error"`
}

// NewResolveHandler returns an HTTP handler that settles a pending
// transaction after an operator confirmed the outcome with the provider.
// @Summary Resolve a pending transaction
// @Description Settles a transaction stuck pending after a provider timeout. A failed outcome triggers the reversal credit.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body handlers.ResolveRequest true "Resolution"
// @Success 200 {object} handlers.ResolveResponse "Transaction resolved"
// @Failure 400 {object} handlers.ResolveErrorResponse "Unknown reference / not pending"
// @Router /admin/transactions/resolve [post]
// @Security BearerAuth
func NewResolveHandler(svc PendingResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResolveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ResolveErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := svc.ResolvePending(r.Context(), req.Reference, req.Succeeded, req.ProviderRef); err != nil {
			if errors.Is(err, services.ErrNotPending) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ResolveErrorResponse{Error: "Transaction is not pending"})
				return
			}
			logger.Log.Errorw("failed to resolve transaction", "reference", req.Reference, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ResolveErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ResolveResponse{Message: "Transaction resolved"})
	}
}
