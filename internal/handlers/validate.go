package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Aioflcu/paylink/internal/logger"
)

// CustomerValidator defines the interface that the service must implement.
type CustomerValidator interface {
	ValidateMeter(ctx context.Context, disco, meterNumber, meterType string) (bool, string, error)
	ValidateSmartcard(ctx context.Context, provider, smartcard string) (bool, string, error)
}

// ValidateMeterRequest represents the JSON body for a meter lookup
// swagger:model ValidateMeterRequest
type ValidateMeterRequest struct {
	// Distribution company
	// required: true
	// default: ikeja-electric
	Disco string `json:"disco"`

	// Meter number
	// required: true
	Meter string `json:"meter"`

	// Meter type: prepaid or postpaid
	// required: true
	// default: prepaid
	MeterType string `json:"meter_type"`
}

// ValidateSmartcardRequest represents the JSON body for a smartcard lookup
// swagger:model ValidateSmartcardRequest
type ValidateSmartcardRequest struct {
	// Cable TV provider
	// required: true
	// default: dstv
	Provider string `json:"provider"`

	// Smartcard number
	// required: true
	Smartcard string `json:"smartcard"`
}

// ValidateResponse represents a customer lookup result
// swagger:model ValidateResponse
type ValidateResponse struct {
	// Whether the number resolved to a customer
	Valid bool `json:"valid"`

	// Customer name on record, when valid
	CustomerName string `json:"customer_name,omitempty"`
}

// ValidateErrorResponse represents an error response for a lookup
// swagger:model ValidateErrorResponse
type ValidateErrorResponse struct {
	// Error message
	// default: Validation failed
	Error string `json:"error"`
}

// NewValidateMeterHandler returns an HTTP handler that resolves a meter
// number to the customer on record before the user pays.
// @Summary Validate electricity meter
// @Description Resolves a meter number through the bill aggregator and returns the customer name on record.
// @Tags purchase
// @Accept json
// @Produce json
// @Param request body handlers.ValidateMeterRequest true "Meter lookup"
// @Success 200 {object} handlers.ValidateResponse "Lookup result"
// @Failure 400 {object} handlers.ValidateErrorResponse "Invalid request"
// @Router /validate/meter [post]
// @Security BearerAuth
func NewValidateMeterHandler(svc CustomerValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ValidateMeterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ValidateErrorResponse{Error: "Invalid request body"})
			return
		}

		valid, name, err := svc.ValidateMeter(r.Context(), req.Disco, req.Meter, req.MeterType)
		if err != nil {
			logger.Log.Errorw("meter validation failed", "disco", req.Disco, "error", err)
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(ValidateErrorResponse{Error: "Validation failed"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ValidateResponse{Valid: valid, CustomerName: name})
	}
}

// NewValidateSmartcardHandler returns an HTTP handler that resolves a
// smartcard number to the customer on record.
// @Summary Validate cable smartcard
// @Description Resolves a smartcard number through the bill aggregator and returns the customer name on record.
// @Tags purchase
// @Accept json
// @Produce json
// @Param request body handlers.ValidateSmartcardRequest true "Smartcard lookup"
// @Success 200 {object} handlers.ValidateResponse "Lookup result"
// @Failure 400 {object} handlers.ValidateErrorResponse "Invalid request"
// @Router /validate/smartcard [post]
// @Security BearerAuth
func NewValidateSmartcardHandler(svc CustomerValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ValidateSmartcardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ValidateErrorResponse{Error: "Invalid request body"})
			return
		}

		valid, name, err := svc.ValidateSmartcard(r.Context(), req.Provider, req.Smartcard)
		if err != nil {
			logger.Log.Errorw("smartcard validation failed", "provider", req.Provider, "error", err)
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(ValidateErrorResponse{Error: "Validation failed"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ValidateResponse{Valid: valid, CustomerName: name})
	}
}
