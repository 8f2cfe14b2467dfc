package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VirusAlex/CashCleanerSimulator/internal/domain/dto"
	"github.com/VirusAlex/CashCleanerSimulator/internal/i18n"
	"github.com/VirusAlex/CashCleanerSimulator/internal/middleware"
	"github.com/VirusAlex/CashCleanerSimulator/internal/service"
)

// StockHandler provides HTTP handlers for stock level management.
type StockHandler struct {
	stockService service.StockService
	handler      *Handler
}

// NewStockHandler creates a new StockHandler.
// The optimize handler is needed to invalidate its stock cache on updates.
func NewStockHandler(stockService service.StockService, handler *Handler) *StockHandler {
	return &StockHandler{
		stockService: stockService,
		handler:      handler,
	}
}

// GetStock handles GET /api/stock/:currency requests.
//
// @Summary      Get active stock levels
// @Description  Returns the active per-denomination stock ceilings for a currency
// @Tags         Stock
// @Produce      json
// @Param        currency path string true "Currency code"
// @Success      200 {object} dto.SuccessResponse
// @Failure      404 {object} dto.ErrorResponse "No stock configuration for the currency"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/stock/{currency} [get]
func (h *StockHandler) GetStock(c *gin.Context) {
	builder := NewResponseBuilder(c)
	currency := c.Param("currency")

	config, err := h.stockService.GetActive(c.Request.Context(), currency)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if config == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	builder.SuccessOK(dto.StockResponse{
		Currency:  config.Currency,
		Levels:    config.Levels,
		Unit:      config.Unit,
		UpdatedAt: config.UpdatedAt,
	})
}

// UpdateStock handles PUT /api/stock/:currency requests.
//
// @Summary      Update stock levels
// @Description  Replaces the per-denomination stock ceilings for a currency. The previous configuration is kept in history.
// @Tags         Stock
// @Accept       json
// @Produce      json
// @Param        currency path string true "Currency code"
// @Param        request body dto.UpdateStockRequest true "New stock levels"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid levels"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/stock/{currency} [put]
func (h *StockHandler) UpdateStock(c *gin.Context) {
	builder := NewResponseBuilder(c)
	currency := c.Param("currency")

	var req dto.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	createdBy := req.CreatedBy
	if createdBy == "" {
		if email, exists := c.Get("user_email"); exists {
			createdBy, _ = email.(string)
		}
	}

	config, err := h.stockService.Update(c.Request.Context(), currency, req.Levels, req.Unit, createdBy)
	if err != nil {
		if err == service.ErrRepositoryNotConfigured {
			builder.ErrorWithMessage(http.StatusServiceUnavailable, "stock persistence is not configured", err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	// Stale snapshots must not outlive an update
	if h.handler != nil {
		h.handler.InvalidateStockCache()
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "update_stock", "Stock levels updated", map[string]interface{}{
				"currency": currency,
				"version":  config.Version,
				"levels":   len(config.Levels),
			})
		}
	}

	builder.SuccessOK(dto.StockResponse{
		Currency:  config.Currency,
		Levels:    config.Levels,
		Unit:      config.Unit,
		UpdatedAt: config.UpdatedAt,
	})
}

// StockHistory handles GET /api/stock/:currency/history requests.
//
// @Summary      List stock configuration history
// @Description  Returns past stock configurations for a currency, newest first
// @Tags         Stock
// @Produce      json
// @Param        currency path string true "Currency code"
// @Param        limit query int false "Maximum number of entries" default(10)
// @Success      200 {object} dto.SuccessResponse
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/stock/{currency}/history [get]
func (h *StockHandler) StockHistory(c *gin.Context) {
	builder := NewResponseBuilder(c)
	currency := c.Param("currency")

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	configs, err := h.stockService.History(c.Request.Context(), currency, limit)
	if err != nil {
		if err == service.ErrRepositoryNotConfigured {
			builder.ErrorWithMessage(http.StatusServiceUnavailable, "stock persistence is not configured", err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(gin.H{"currency": currency, "history": configs})
}
