package facades

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Aioflcu/paylink/internal/logger"
)

// ErrFundingNotPaid is returned when a funding reference has not been settled
// on the collection provider side.
var ErrFundingNotPaid = errors.New("funding reference not paid")

// MonnifyFacade is an HTTP client for the wallet-funding collection provider.
type MonnifyFacade struct {
	baseURL      string
	apiKey       string
	clientSecret string
	contractCode string
	client       *http.Client
}

// NewMonnifyFacade creates a facade with its own timeout-bounded client.
func NewMonnifyFacade(baseURL, apiKey, clientSecret, contractCode string, timeout time.Duration) *MonnifyFacade {
	return &MonnifyFacade{
		baseURL:      baseURL,
		apiKey:       apiKey,
		clientSecret: clientSecret,
		contractCode: contractCode,
		client:       &http.Client{Timeout: timeout},
	}
}

func (f *MonnifyFacade) basicAuth() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(f.apiKey+":"+f.clientSecret))
}

type monnifyInitResponse struct {
	RequestSuccessful bool `json:"requestSuccessful"`
	ResponseBody      struct {
		CheckoutURL          string `json:"checkoutUrl"`
		TransactionReference string `json:"transactionReference"`
	} `json:"responseBody"`
	ResponseMessage string `json:"responseMessage"`
}

// InitTransaction initializes a funding collection and returns the hosted
// checkout URL alongside the provider transaction reference.
func (f *MonnifyFacade) InitTransaction(ctx context.Context, reference, customerEmail string, amount float64) (checkoutURL, providerRef string, err error) {
	payload, err := json.Marshal(map[string]any{
		"amount":             amount,
		"customerEmail":      customerEmail,
		"paymentReference":   reference,
		"currencyCode":       "NGN",
		"contractCode":       f.contractCode,
		"paymentDescription": "wallet funding",
	})
	if err != nil {
		return "", "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/merchant/transactions/init-transaction", bytes.NewReader(payload))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", f.basicAuth())

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("monnify init request failed", "reference", reference, "error", err)
		return "", "", err
	}
	defer resp.Body.Close()

	var out monnifyInitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !out.RequestSuccessful {
		logger.Log.Warnw("monnify init rejected", "reference", reference, "status", resp.StatusCode, "message", out.ResponseMessage)
		return "", "", fmt.Errorf("monnify init failed: %s", out.ResponseMessage)
	}

	return out.ResponseBody.CheckoutURL, out.ResponseBody.TransactionReference, nil
}

type monnifyStatusResponse struct {
	RequestSuccessful bool `json:"requestSuccessful"`
	ResponseBody      struct {
		PaymentStatus string  `json:"paymentStatus"`
		AmountPaid    float64 `json:"amountPaid"`
	} `json:"responseBody"`
}

// VerifyTransaction confirms a funding reference was settled and returns the
// paid amount. Webhook payloads are never trusted without this re-query.
func (f *MonnifyFacade) VerifyTransaction(ctx context.Context, reference string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		f.baseURL+"/merchant/transactions/query?paymentReference="+reference, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", f.basicAuth())

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("monnify verify request failed", "reference", reference, "error", err)
		return 0, err
	}
	defer resp.Body.Close()

	var out monnifyStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !out.RequestSuccessful {
		return 0, fmt.Errorf("monnify verify failed with status %d", resp.StatusCode)
	}
	if out.ResponseBody.PaymentStatus != "PAID" {
		return 0, ErrFundingNotPaid
	}

	return out.ResponseBody.AmountPaid, nil
}
