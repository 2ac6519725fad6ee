package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Aioflcu/paylink/internal/logger"
)

var (
	// ErrProviderDeclined means the aggregator definitively rejected the
	// request (non-2xx with a parseable body). Funds must be reversed.
	ErrProviderDeclined = errors.New("provider declined transaction")

	// ErrProviderTimeout means the outcome is unknown. The transaction stays
	// pending for admin resolution.
	ErrProviderTimeout = errors.New("provider timed out")
)

// PayFlexFacade is an HTTP client for the bill-payment aggregator.
// All purchase requests carry the ledger reference so replays are
// deduplicated on the provider side too.
type PayFlexFacade struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewPayFlexFacade creates a facade with its own timeout-bounded client.
func NewPayFlexFacade(baseURL, apiKey string, timeout time.Duration) *PayFlexFacade {
	return &PayFlexFacade{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type payflexResponse struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Message   string `json:"message"`
	Token     string `json:"token,omitempty"` // electricity prepaid token
}

func (f *PayFlexFacade) post(ctx context.Context, path string, body any) (*payflexResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.apiKey)

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("payflex request failed", "path", path, "error", err)
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return nil, ErrProviderTimeout
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrProviderTimeout
		}
		return nil, err
	}
	defer resp.Body.Close()

	var out payflexResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		logger.Log.Errorw("payflex response decode failed", "path", path, "status", resp.StatusCode, "error", err)
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Log.Warnw("payflex declined", "path", path, "status", resp.StatusCode, "message", out.Message)
		return nil, fmt.Errorf("%w: %s", ErrProviderDeclined, out.Message)
	}

	return &out, nil
}

// PurchaseAirtime tops up a phone number. Returns the provider reference.
func (f *PayFlexFacade) PurchaseAirtime(ctx context.Context, reference, network, phone string, amount float64) (string, error) {
	resp, err := f.post(ctx, "/topup/airtime", map[string]any{
		"reference": reference,
		"network":   network,
		"phone":     phone,
		"amount":    amount,
	})
	if err != nil {
		return "", err
	}
	return resp.Reference, nil
}

// PurchaseData buys a data bundle. Returns the provider reference.
func (f *PayFlexFacade) PurchaseData(ctx context.Context, reference, network, phone, planCode string, amount float64) (string, error) {
	resp, err := f.post(ctx, "/data/buy", map[string]any{
		"reference": reference,
		"network":   network,
		"phone":     phone,
		"plan_code": planCode,
		"amount":    amount,
	})
	if err != nil {
		return "", err
	}
	return resp.Reference, nil
}

// PayElectricity settles a DISCO bill. Returns the provider reference and,
// for prepaid meters, the recharge token.
func (f *PayFlexFacade) PayElectricity(ctx context.Context, reference, disco, meterNumber, meterType string, amount float64) (providerRef, token string, err error) {
	resp, err := f.post(ctx, "/bill/electricity", map[string]any{
		"reference":  reference,
		"disco":      disco,
		"meter":      meterNumber,
		"meter_type": meterType,
		"amount":     amount,
	})
	if err != nil {
		return "", "", err
	}
	return resp.Reference, resp.Token, nil
}

// PayCable renews a cable TV subscription. Returns the provider reference.
func (f *PayFlexFacade) PayCable(ctx context.Context, reference, provider, smartcard, planCode string, amount float64) (string, error) {
	resp, err := f.post(ctx, "/bill/cable", map[string]any{
		"reference": reference,
		"provider":  provider,
		"smartcard": smartcard,
		"plan_code": planCode,
		"amount":    amount,
	})
	if err != nil {
		return "", err
	}
	return resp.Reference, nil
}

type payflexValidation struct {
	Valid        bool   `json:"valid"`
	CustomerName string `json:"customer_name"`
}

func (f *PayFlexFacade) get(ctx context.Context, path string, params url.Values) (*payflexValidation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+f.apiKey)

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("payflex request failed", "path", path, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("payflex validation failed with status %d", resp.StatusCode)
	}

	var out payflexValidation
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidateMeter resolves a meter number to the registered customer name.
func (f *PayFlexFacade) ValidateMeter(ctx context.Context, disco, meterNumber, meterType string) (bool, string, error) {
	params := url.Values{}
	params.Set("disco", disco)
	params.Set("meter", meterNumber)
	params.Set("meter_type", meterType)

	resp, err := f.get(ctx, "/validate/meter", params)
	if err != nil {
		return false, "", err
	}
	return resp.Valid, resp.CustomerName, nil
}

// ValidateSmartcard resolves a smartcard number to the registered customer name.
func (f *PayFlexFacade) ValidateSmartcard(ctx context.Context, provider, smartcard string) (bool, string, error) {
	params := url.Values{}
	params.Set("provider", provider)
	params.Set("smartcard", smartcard)

	resp, err := f.get(ctx, "/validate/smartcard", params)
	if err != nil {
		return false, "", err
	}
	return resp.Valid, resp.CustomerName, nil
}
