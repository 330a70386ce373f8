package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/spec-kit/hospital-portal/pkg/util"
)

// PaystackClient talks to the Paystack transaction API.
type PaystackClient struct {
	baseURL   string
	secretKey string
	http      *http.Client
}

// NewPaystackClient builds a client with a bounded request timeout.
func NewPaystackClient(baseURL, secretKey string) *PaystackClient {
	return &PaystackClient{
		baseURL:   baseURL,
		secretKey: secretKey,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

// InitializeRequest is the payload for transaction initialization. Amount is
// in the currency's minor unit (kobo for NGN).
type InitializeRequest struct {
	Email       string `json:"email"`
	Amount      uint64 `json:"amount"`
	Reference   string `json:"reference"`
	CallbackURL string `json:"callback_url"`
}

// Authorization is the caller-facing result of a successful initialization.
type Authorization struct {
	AuthorizationURL string `json:"authorization_url"`
	Reference        string `json:"reference"`
}

type initializeResponse struct {
	Data struct {
		AuthorizationURL string `json:"authorization_url"`
	} `json:"data"`
}

// InitializeTransaction starts a Paystack payment and returns the
// authorization URL the payer is redirected to.
func (c *PaystackClient) InitializeTransaction(ctx context.Context, req InitializeRequest) (*Authorization, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("failed to send request to Paystack: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, apperrors.NewInternalError(fmt.Errorf("Paystack API returned an error: %s", string(msg)))
	}

	var parsed initializeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("Failed to parse Paystack response: %v", err))
	}
	if parsed.Data.AuthorizationURL == "" {
		return nil, apperrors.NewParsingError("Missing 'authorization_url' in Paystack response")
	}

	return &Authorization{
		AuthorizationURL: parsed.Data.AuthorizationURL,
		Reference:        req.Reference,
	}, nil
}
