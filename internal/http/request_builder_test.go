//go:build !integration

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VirusAlex/CashCleanerSimulator/internal/domain/dto"
	"github.com/VirusAlex/CashCleanerSimulator/internal/i18n"
	"github.com/VirusAlex/CashCleanerSimulator/internal/middleware"
)

func jsonContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/optimize", bytes.NewReader([]byte(body)))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestRequestBuilder_Bind(t *testing.T) {
	c, _ := jsonContext(t, `{"amount": 750000, "currency": "USD"}`)

	var req dto.OptimizeRequest
	require.NoError(t, NewRequestBuilder(c).Bind(&req))
	assert.Equal(t, int64(750000), req.Amount)
	assert.Equal(t, "USD", req.Currency)
}

func TestRequestBuilder_BindError(t *testing.T) {
	c, _ := jsonContext(t, `{"amount": "not a number"}`)

	var req dto.OptimizeRequest
	assert.Error(t, NewRequestBuilder(c).Bind(&req))
}

func TestBuildRequestAndValidate(t *testing.T) {
	c, _ := jsonContext(t, `{"amount": 1000, "currency": "USD", "max_variants": 3}`)

	req, err := BuildRequestAndValidate[dto.OptimizeRequest](c)
	require.NoError(t, err)
	assert.Equal(t, 3, req.MaxVariants)
}

func TestBuildRequestAndValidate_ValidationFailure(t *testing.T) {
	c, _ := jsonContext(t, `{"amount": 1000, "currency": "USD", "budget_ms": -5}`)

	_, err := BuildRequestAndValidate[dto.OptimizeRequest](c)
	require.Error(t, err)

	var vErr *dto.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "budget_ms", vErr.Field)
}

func TestUnmarshalFromReader(t *testing.T) {
	req, err := UnmarshalFromReader[dto.OptimizeRequest](strings.NewReader(`{"amount": 42, "currency": "EUR"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(42), req.Amount)
	assert.Equal(t, "EUR", req.Currency)
}

func TestUnmarshalFromBytes_Error(t *testing.T) {
	_, err := UnmarshalFromBytes[dto.OptimizeRequest]([]byte("{broken"))
	assert.Error(t, err)
}

func TestResponseBuilder_Success(t *testing.T) {
	c, w := jsonContext(t, "")
	c.Set(string(middleware.RequestIDKey), "builder-req-1")

	NewResponseBuilder(c).SuccessOK(gin.H{"feasible": true})

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "builder-req-1", resp.RequestID)
	assert.False(t, resp.Timestamp.IsZero())
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["feasible"])
}

func TestResponseBuilder_SuccessCreated(t *testing.T) {
	c, w := jsonContext(t, "")

	NewResponseBuilder(c).SuccessCreated(gin.H{"version": 2})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestResponseBuilder_Error_Localized(t *testing.T) {
	c, w := jsonContext(t, "")
	c.Request.Header.Set("Accept-Language", "de")

	NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
	assert.NotEmpty(t, resp.Message)
	assert.True(t, c.IsAborted())
}

func TestResponseBuilder_ErrorWithMessage(t *testing.T) {
	c, w := jsonContext(t, "")

	NewResponseBuilder(c).ErrorWithMessage(http.StatusBadRequest, "amount: must be a non-negative integer", nil)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "amount: must be a non-negative integer", resp.Message)
}

func TestResponsePooling_NoStateLeak(t *testing.T) {
	// A pooled response must not leak fields into the next use.
	c1, w1 := jsonContext(t, "")
	c1.Set(string(middleware.RequestIDKey), "first")
	NewResponseBuilder(c1).SuccessOK("payload")
	require.Contains(t, w1.Body.String(), "first")

	c2, w2 := jsonContext(t, "")
	NewResponseBuilder(c2).SuccessOK("other")

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp))
	assert.Empty(t, resp.RequestID)
	assert.Equal(t, "other", resp.Data)
}
