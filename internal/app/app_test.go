//go:build !integration

package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VirusAlex/CashCleanerSimulator/config"
	"github.com/VirusAlex/CashCleanerSimulator/internal/domain/dto"
	"github.com/VirusAlex/CashCleanerSimulator/internal/domain/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() config.Config {
	cfg := config.Config{}
	cfg.Server.Port = "8080"
	cfg.Server.RateLimit = 100
	cfg.Server.RateWindow = time.Minute
	cfg.Engine.SearchDeadline = 200 * time.Millisecond
	cfg.Engine.MaxNodes = 100_000
	cfg.Engine.CandidatePool = 256
	cfg.Engine.DefaultMaxVariants = 5
	cfg.Cache.Size = 100
	cfg.Cache.TTL = time.Minute
	return cfg
}

func TestInitializeServices(t *testing.T) {
	components := InitializeServices(testConfig())

	require.NotNil(t, components.Optimizer)
	profiles := components.Optimizer.Profiles()
	assert.NotEmpty(t, profiles)
}

func TestInitializeRouter_WithoutDatabase(t *testing.T) {
	serviceComponents := InitializeServices(testConfig())

	routerComponents := InitializeRouter(serviceComponents, nil, testConfig())

	require.NotNil(t, routerComponents.HealthHandler)
	assert.NotNil(t, routerComponents.Config.Optimizer)
	assert.Nil(t, routerComponents.Config.StockService)
	assert.Nil(t, routerComponents.Config.AuthService)
	assert.Nil(t, routerComponents.Config.LoggingService)
	assert.Equal(t, 100, routerComponents.Config.RateLimit)
}

func TestInitializeApp_ServesOptimizeRequests(t *testing.T) {
	// Without MONGODB_ENABLED the app runs purely in-memory.
	router := InitializeApp(testConfig())

	payload, err := json.Marshal(dto.OptimizeRequest{Amount: 750000, Currency: "USD"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/optimize", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data model.OptimizeResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Feasible)
	assert.NotEmpty(t, resp.Data.Variants)
}

func TestInitializeApp_HealthAndCurrencies(t *testing.T) {
	router := InitializeApp(testConfig())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/currencies", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "USD")
}

func TestInitializeApp_StockUnavailableWithoutDatabase(t *testing.T) {
	router := InitializeApp(testConfig())

	payload := []byte(`{"levels": {"100": 1}}`)
	req := httptest.NewRequest(http.MethodPut, "/api/stock/USD", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Without persistence the stock routes are not registered.
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_OnShutdownHooksRun(t *testing.T) {
	srv := NewServer(gin.New(), "0")

	var order []string
	srv.OnShutdown(func() { order = append(order, "first") })
	srv.OnShutdown(func() { order = append(order, "second") })

	require.NoError(t, srv.Shutdown())
	assert.Equal(t, []string{"first", "second"}, order)
}
