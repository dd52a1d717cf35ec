// Package gateway talks to the external card/payment processor.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrDeclined = errors.New("payment declined")

type ChargeRequest struct {
	Reference   string          `json:"reference"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	MethodType  string          `json:"method_type"`
	MethodToken string          `json:"method_token,omitempty"`
	CustomerID  uint            `json:"customer_id"`
	Description string          `json:"description"`

	// IdempotencyKey goes out as the Idempotency-Key header. Retries of the
	// same attempt reuse it so the processor charges at most once.
	IdempotencyKey string `json:"-"`
}

type ChargeResult struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}

type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// RestGateway submits charges to an HTTP payment processor.
type RestGateway struct {
	client *resty.Client
}

func NewRestGateway(baseURL, apiKey string, timeout time.Duration) *RestGateway {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}
	return &RestGateway{client: client}
}

func (g *RestGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	var result ChargeResult
	request := g.client.R().SetContext(ctx)
	if req.IdempotencyKey != "" {
		request.SetHeader("Idempotency-Key", req.IdempotencyKey)
	}
	resp, err := request.
		SetBody(req).
		SetResult(&result).
		SetError(&result).
		Post("/charges")
	if err != nil {
		return nil, fmt.Errorf("payment gateway request failed: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusPaymentRequired, resp.StatusCode() == http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("%w: %s", ErrDeclined, result.Message)
	case resp.IsError():
		return nil, fmt.Errorf("payment gateway returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	if result.Status != "APPROVED" {
		return nil, fmt.Errorf("%w: gateway status %q", ErrDeclined, result.Status)
	}
	if result.TransactionID == "" {
		return nil, fmt.Errorf("payment gateway response missing transaction id")
	}
	return &result, nil
}

// OfflineGateway approves every charge. It stands in when no processor is
// configured.
type OfflineGateway struct{}

func (OfflineGateway) Charge(_ context.Context, req ChargeRequest) (*ChargeResult, error) {
	return &ChargeResult{
		TransactionID: "offline-" + uuid.NewString(),
		Status:        "APPROVED",
		Message:       "approved without processor for " + req.Reference,
	}, nil
}
