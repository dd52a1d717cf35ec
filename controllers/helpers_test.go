package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kariqs/storefront-api/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name   string
		err    error
		status int
		detail bool
	}{
		{"not found", fmt.Errorf("order 9: %w", services.ErrNotFound), http.StatusNotFound, true},
		{"invalid", services.ErrUnknownStatus, http.StatusBadRequest, true},
		{"insufficient stock", services.ErrInsufficientStock, http.StatusConflict, true},
		{"empty cart", services.ErrEmptyCart, http.StatusConflict, true},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(rec)
			respondWithServiceError(ctx, "Operation failed", tt.err)

			assert.Equal(t, tt.status, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tt.detail {
				assert.Equal(t, "Operation failed", body["message"])
				assert.Equal(t, tt.err.Error(), body["error"])
			} else {
				assert.Equal(t, msgInternalServerError, body["message"])
				assert.NotContains(t, rec.Body.String(), "connection refused")
			}
		})
	}
}

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for raw, want := range map[string]uint{"12": 12, "0": 0, "-3": 0, "x": 0} {
		rec := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(rec)
		ctx.Params = gin.Params{{Key: "id", Value: raw}}

		id, ok := parseIDParam(ctx, "id")
		assert.Equal(t, want, id, raw)
		assert.Equal(t, want != 0, ok, raw)
		if !ok {
			assert.Equal(t, http.StatusBadRequest, rec.Code, raw)
		}
	}
}
