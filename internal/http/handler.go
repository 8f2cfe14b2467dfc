package http

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VirusAlex/CashCleanerSimulator/internal/domain/dto"
	"github.com/VirusAlex/CashCleanerSimulator/internal/domain/model"
	"github.com/VirusAlex/CashCleanerSimulator/internal/i18n"
	"github.com/VirusAlex/CashCleanerSimulator/internal/metrics"
	"github.com/VirusAlex/CashCleanerSimulator/internal/middleware"
	"github.com/VirusAlex/CashCleanerSimulator/internal/service"
)

// stockCacheEntry holds one cached stock snapshot.
type stockCacheEntry struct {
	levels    []service.StockEntry
	unit      string
	expiresAt time.Time
}

// stockCache provides thread-safe per-currency caching of persisted stock levels.
type stockCache struct {
	mu      sync.RWMutex
	entries map[string]stockCacheEntry
	ttl     time.Duration
}

// newStockCache creates a new stock cache with the given TTL.
func newStockCache(ttl time.Duration) *stockCache {
	return &stockCache{
		entries: make(map[string]stockCacheEntry),
		ttl:     ttl,
	}
}

// get returns the cached stock for a currency, or false when expired/empty.
func (c *stockCache) get(currency string) ([]service.StockEntry, string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[currency]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, "", false
	}
	return entry.levels, entry.unit, true
}

// set stores stock levels for a currency with TTL.
func (c *stockCache) set(currency string, levels []service.StockEntry, unit string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[currency] = stockCacheEntry{
		levels:    levels,
		unit:      unit,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// invalidate clears the cache for all currencies.
func (c *stockCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]stockCacheEntry)
}

// Handler provides HTTP handlers for cash optimization routes.
type Handler struct {
	optimizer    service.Optimizer
	stockService service.StockService
	stockCache   *stockCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithStockCacheTTL sets the TTL for persisted stock caching.
func WithStockCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.stockCache = newStockCache(ttl)
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(optimizer service.Optimizer, stockService service.StockService, opts ...HandlerOption) *Handler {
	h := &Handler{
		optimizer:    optimizer,
		stockService: stockService,
		stockCache:   newStockCache(30 * time.Second), // Default 30s cache
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// getPersistedStock retrieves the active stock levels for a currency from
// cache or database. Returns nil when no configuration exists, which the
// engine treats as unlimited stock.
func (h *Handler) getPersistedStock(ctx context.Context, currency string) ([]service.StockEntry, string) {
	if levels, unit, ok := h.stockCache.get(currency); ok {
		return levels, unit
	}

	if h.stockService == nil {
		return nil, ""
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	config, err := h.stockService.GetActive(ctx, currency)
	if err != nil || config == nil || len(config.Levels) == 0 {
		return nil, ""
	}

	levels := parseStockLevels(config.Levels)
	h.stockCache.set(currency, levels, config.Unit)
	return levels, config.Unit
}

// parseStockLevels converts persisted string-keyed levels to stock entries.
// Entries with malformed denomination keys are skipped.
func parseStockLevels(levels map[string]int64) []service.StockEntry {
	entries := make([]service.StockEntry, 0, len(levels))
	for key, count := range levels {
		denom, err := strconv.ParseInt(key, 10, 64)
		if err != nil || denom <= 0 {
			continue
		}
		entries = append(entries, service.StockEntry{Denomination: denom, Count: count})
	}
	return entries
}

// InvalidateStockCache invalidates the persisted stock cache.
// Call this when stock levels are updated.
func (h *Handler) InvalidateStockCache() {
	h.stockCache.invalidate()
	h.optimizer.InvalidateCache()
}

// Optimize handles POST /api/optimize requests.
//
// @Summary      Compute cash packing variants
// @Description  Computes the ranked ways to physically package a cash amount into bundles and blocks, respecting per-denomination stock ceilings. Variants are ranked by handling effort, block compactness, average denomination and stock balance.
// @Tags         Optimize
// @Accept       json
// @Produce      json
// @Param        request body dto.OptimizeRequest true "Amount and constraints"
// @Success      200 {object} dto.SuccessResponse "Ranked variants, or a structured infeasibility report"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/optimize [post]
func (h *Handler) Optimize(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			metrics.RecordOptimization(0, "validation_error", 0)
			builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "optimize", "Cash optimization requested", map[string]interface{}{
				"amount":           req.Amount,
				"currency":         req.Currency,
				"has_custom_stock": len(req.Stock) > 0,
			})
		}
	}

	engineReq := service.OptimizeRequest{
		Amount:      req.Amount,
		Currency:    req.Currency,
		MaxVariants: req.MaxVariants,
		Budget:      time.Duration(req.BudgetMs) * time.Millisecond,
	}

	if len(req.Stock) > 0 {
		// Use stock ceilings from the request
		entries, err := requestStockEntries(req.Stock)
		if err != nil {
			metrics.RecordOptimization(0, "validation_error", 0)
			builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
			return
		}
		engineReq.Stock = entries
		engineReq.StockUnit = parseStockUnit(req.StockUnit)
	} else {
		// Use cached persisted stock or unlimited defaults
		levels, unit := h.getPersistedStock(c.Request.Context(), req.Currency)
		engineReq.Stock = levels
		engineReq.StockUnit = parseStockUnit(unit)
	}

	start := time.Now()
	result, err := h.optimizer.Optimize(c.Request.Context(), engineReq)
	duration := time.Since(start)

	if err != nil {
		if vErr, ok := err.(*service.ValidationError); ok {
			metrics.RecordOptimization(duration, "validation_error", 0)
			builder.ErrorWithMessage(http.StatusBadRequest, vErr.Error(), vErr)
			return
		}
		metrics.RecordOptimization(duration, "error", 0)
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	status := "success"
	if !result.Feasible {
		status = "infeasible"
	}
	metrics.RecordOptimization(duration, status, len(result.Variants))
	builder.SuccessOK(result)
}

// requestStockEntries converts request stock map keys to typed entries.
func requestStockEntries(stock map[string]int64) ([]service.StockEntry, error) {
	entries := make([]service.StockEntry, 0, len(stock))
	for key, count := range stock {
		denom, err := strconv.ParseInt(key, 10, 64)
		if err != nil || denom <= 0 {
			return nil, &dto.ValidationError{Field: "stock", Message: "denomination " + key + " is not a positive integer"}
		}
		entries = append(entries, service.StockEntry{Denomination: denom, Count: count})
	}
	return entries, nil
}

// parseStockUnit maps the wire-level unit string to the engine type.
func parseStockUnit(unit string) model.StockUnit {
	if unit == "bills" {
		return model.StockUnitBills
	}
	return model.StockUnitBundles
}

// Currencies handles GET /api/currencies requests.
//
// @Summary      List supported currencies
// @Description  Returns the registered currency profiles with their denominations and packaging sizes
// @Tags         Optimize
// @Produce      json
// @Success      200 {object} dto.SuccessResponse
// @Router       /api/currencies [get]
func (h *Handler) Currencies(c *gin.Context) {
	builder := NewResponseBuilder(c)

	profiles := h.optimizer.Profiles()
	infos := make([]dto.CurrencyInfo, len(profiles))
	for i, p := range profiles {
		infos[i] = dto.CurrencyInfo{
			Code:          p.Code,
			Denominations: p.Denominations,
			BundleSize:    p.BundleSize,
			BlockSize:     p.BlockSize,
		}
	}

	builder.SuccessOK(dto.CurrenciesResponse{Currencies: infos})
}
