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

// PurchaseTokener defines only the methods needed by this handler.
type PurchaseTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Purchaser defines the interface that the service must implement.
type Purchaser interface {
	Purchase(ctx context.Context, userID uuid.UUID, req services.PurchaseRequest) (*services.Receipt, error)
}

// PurchaseBody represents the JSON body for a bill purchase
// swagger:model PurchaseBody
type PurchaseBody struct {
	// Amount in naira
	// required: true
	// default: 500.0
	Amount float64 `json:"amount"`

	// Transaction PIN
	// required: true
	PIN string `json:"pin"`

	// Network operator (airtime, data)
	// default: MTN
	Network string `json:"network,omitempty"`

	// Recipient phone number (airtime, data)
	Phone string `json:"phone,omitempty"`

	// Provider plan code (data, cable)
	PlanCode string `json:"plan_code,omitempty"`

	// Distribution company (electricity)
	Disco string `json:"disco,omitempty"`

	// Meter number (electricity)
	Meter string `json:"meter,omitempty"`

	// Meter type: prepaid or postpaid (electricity)
	MeterType string `json:"meter_type,omitempty"`

	// Cable TV provider (cable)
	Provider string `json:"provider,omitempty"`

	// Smartcard number (cable)
	Smartcard string `json:"smartcard,omitempty"`

	// Device fingerprint, feeds the risk scorer
	DeviceFingerprint string `json:"device_fingerprint,omitempty"`

	// Device latitude
	Latitude *float64 `json:"latitude,omitempty"`

	// Device longitude
	Longitude *float64 `json:"longitude,omitempty"`

	// Set after completing a second-factor challenge
	TwoFactorVerified bool `json:"two_factor_verified,omitempty"`
}

// PurchaseResponse represents the outcome of a purchase
// swagger:model PurchaseResponse
type PurchaseResponse struct {
	// Ledger reference
	Reference string `json:"reference"`

	// Final status: success, failed or pending
	Status string `json:"status"`

	// Provider reference, set on success
	ProviderRef string `json:"provider_ref,omitempty"`

	// Prepaid electricity token, set for prepaid meters
	Token string `json:"token,omitempty"`

	// Reward points awarded
	PointsAwarded int64 `json:"points_awarded"`

	// Main wallet balance after the purchase
	NewBalance float64 `json:"new_balance"`
}

// PurchaseErrorResponse represents an error response for a purchase
// swagger:model PurchaseErrorResponse
type PurchaseErrorResponse struct {
	// Error message
	// default: Insufficient funds
	Error string `json:"error"`

	// Ledger reference when money moved before the failure
	Reference string `json:"reference,omitempty"`
}

// NewPurchaseHandler returns an HTTP handler for one purchase category. The
// same handler body serves airtime, data, electricity and cable routes.
// @Summary Purchase a bill product
// @Description Verifies the transaction PIN, scores the transaction for fraud, debits the main wallet and fulfils through the bill aggregator. A declined fulfilment is automatically reversed; an unknown outcome stays pending until resolved.
// @Tags purchase
// @Accept json
// @Produce json
// @Param request body handlers.PurchaseBody true "Purchase Request"
// @Success 200 {object} handlers.PurchaseResponse "Purchase succeeded"
// @Failure 400 {object} handlers.PurchaseErrorResponse "Invalid request / insufficient funds"
// @Failure 401 {object} handlers.PurchaseErrorResponse "Unauthorized / invalid PIN"
// @Failure 402 {object} handlers.PurchaseErrorResponse "Provider declined, debit reversed"
// @Failure 403 {object} handlers.PurchaseErrorResponse "Blocked by risk policy / 2FA required"
// @Failure 423 {object} handlers.PurchaseErrorResponse "Account locked"
// @Router /purchase/{category} [post]
// @Security BearerAuth
func NewPurchaseHandler(
	category string,
	svc Purchaser,
	tokenGetter PurchaseTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Unauthorized"})
			return
		}

		var body PurchaseBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Invalid request body"})
			return
		}

		receipt, err := svc.Purchase(ctx, claims.UserID, services.PurchaseRequest{
			Category:          category,
			Amount:            body.Amount,
			PIN:               body.PIN,
			Network:           body.Network,
			Phone:             body.Phone,
			PlanCode:          body.PlanCode,
			Disco:             body.Disco,
			Meter:             body.Meter,
			MeterType:         body.MeterType,
			Provider:          body.Provider,
			Smartcard:         body.Smartcard,
			DeviceFingerprint: body.DeviceFingerprint,
			Latitude:          body.Latitude,
			Longitude:         body.Longitude,
			TwoFactorVerified: body.TwoFactorVerified,
		})
		if err != nil {
			reference := ""
			if receipt != nil {
				reference = receipt.Reference
			}

			switch {
			case errors.Is(err, services.ErrInvalidAmount), errors.Is(err, services.ErrUnsupportedCategory):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Invalid amount or category"})
			case errors.Is(err, services.ErrInvalidPIN), errors.Is(err, services.ErrPINNotSet):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Invalid transaction PIN"})
			case errors.Is(err, services.ErrAccountLocked):
				w.WriteHeader(http.StatusLocked)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Account is locked"})
			case errors.Is(err, services.ErrTransactionBlocked):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Transaction blocked"})
			case errors.Is(err, services.ErrTwoFactorRequired):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Two-factor verification required"})
			case errors.Is(err, services.ErrInsufficientFunds):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Insufficient funds"})
			case errors.Is(err, services.ErrProviderPending):
				w.WriteHeader(http.StatusAccepted)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{
					Error:     "Provider outcome unknown, transaction pending",
					Reference: reference,
				})
			default:
				// Includes a definitive provider decline: the debit was reversed.
				logger.Log.Errorw("purchase failed", "userID", claims.UserID, "category", category, "error", err)
				w.WriteHeader(http.StatusPaymentRequired)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{
					Error:     "Purchase declined, debit reversed",
					Reference: reference,
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PurchaseResponse{
			Reference:     receipt.Reference,
			Status:        receipt.Status,
			ProviderRef:   receipt.ProviderRef,
			Token:         receipt.Token,
			PointsAwarded: receipt.PointsAwarded,
			NewBalance:    receipt.NewBalance,
		})
	}
}
