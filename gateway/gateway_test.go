package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type receivedCharge struct {
	ChargeRequest
	IdempotencyHeader string
}

func newProcessor(t *testing.T, status int, body map[string]any) (*httptest.Server, *receivedCharge) {
	t.Helper()
	var received receivedCharge
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/charges", r.URL.Path)
		assert.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))
		received.IdempotencyHeader = r.Header.Get("Idempotency-Key")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received.ChargeRequest))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &received
}

func TestRestGateway_ChargeApproved(t *testing.T) {
	srv, received := newProcessor(t, http.StatusOK, map[string]any{
		"transaction_id": "txn-42",
		"status":         "APPROVED",
	})
	gw := NewRestGateway(srv.URL, "secret-key", 5*time.Second)

	result, err := gw.Charge(context.Background(), ChargeRequest{
		Reference:      "ORDER-7",
		Amount:         decimal.RequireFromString("35.00"),
		Currency:       "USD",
		MethodType:     "CARD",
		MethodToken:    "tok_visa_4242",
		IdempotencyKey: "ORDER-7-attempt-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "txn-42", result.TransactionID)
	assert.Equal(t, "ORDER-7", received.Reference)
	assert.True(t, decimal.NewFromInt(35).Equal(received.Amount))
	assert.Equal(t, "CARD", received.MethodType)
	assert.Equal(t, "tok_visa_4242", received.MethodToken)
	assert.Equal(t, "ORDER-7-attempt-1", received.IdempotencyHeader)
}

func TestRestGateway_NoIdempotencyHeaderWithoutKey(t *testing.T) {
	srv, received := newProcessor(t, http.StatusOK, map[string]any{"transaction_id": "txn-43", "status": "APPROVED"})
	gw := NewRestGateway(srv.URL, "secret-key", 5*time.Second)

	_, err := gw.Charge(context.Background(), ChargeRequest{Reference: "ORDER-11", Amount: decimal.NewFromInt(1)})
	require.NoError(t, err)
	assert.Empty(t, received.IdempotencyHeader)
	assert.Empty(t, received.MethodToken)
}

func TestRestGateway_ChargeDeclined(t *testing.T) {
	srv, _ := newProcessor(t, http.StatusPaymentRequired, map[string]any{
		"status":  "DECLINED",
		"message": "insufficient funds",
	})
	gw := NewRestGateway(srv.URL, "secret-key", 5*time.Second)

	_, err := gw.Charge(context.Background(), ChargeRequest{Reference: "ORDER-8", Amount: decimal.NewFromInt(10)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeclined)
	assert.Contains(t, err.Error(), "insufficient funds")
}

func TestRestGateway_ServerError(t *testing.T) {
	srv, _ := newProcessor(t, http.StatusInternalServerError, map[string]any{"message": "boom"})
	gw := NewRestGateway(srv.URL, "secret-key", 5*time.Second)

	_, err := gw.Charge(context.Background(), ChargeRequest{Reference: "ORDER-9", Amount: decimal.NewFromInt(10)})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDeclined)
}

func TestRestGateway_UnexpectedStatusIsDecline(t *testing.T) {
	srv, _ := newProcessor(t, http.StatusOK, map[string]any{"transaction_id": "txn-1", "status": "HELD"})
	gw := NewRestGateway(srv.URL, "secret-key", 5*time.Second)

	_, err := gw.Charge(context.Background(), ChargeRequest{Reference: "ORDER-10", Amount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, ErrDeclined)
}

func TestOfflineGateway_Approves(t *testing.T) {
	result, err := OfflineGateway{}.Charge(context.Background(), ChargeRequest{Reference: "ORDER-1"})
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", result.Status)
	assert.NotEmpty(t, result.TransactionID)
}
