package http

import (
	"github.com/gin-gonic/gin"

	"github.com/VirusAlex/CashCleanerSimulator/internal/service"
)

// OptimizeRoutes handles optimization and stock route registration.
type OptimizeRoutes struct {
	handler      *Handler
	stockHandler *StockHandler
}

// NewOptimizeRoutes creates a new OptimizeRoutes instance.
func NewOptimizeRoutes(optimizer service.Optimizer, stockService service.StockService) *OptimizeRoutes {
	handler := NewHandler(optimizer, stockService)

	var stockHandler *StockHandler
	if stockService != nil {
		stockHandler = NewStockHandler(stockService, handler)
	}

	return &OptimizeRoutes{
		handler:      handler,
		stockHandler: stockHandler,
	}
}

// RegisterPublicRoutes registers the routes that never require authentication.
func (r *OptimizeRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/optimize", r.handler.Optimize)
	rg.GET("/currencies", r.handler.Currencies)

	if r.stockHandler != nil {
		rg.GET("/stock/:currency", r.stockHandler.GetStock)
		rg.GET("/stock/:currency/history", r.stockHandler.StockHistory)
	}
}

// RegisterProtectedRoutes registers the routes that mutate state.
// When authentication is disabled these are registered on the public group.
func (r *OptimizeRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	if r.stockHandler != nil {
		rg.PUT("/stock/:currency", r.stockHandler.UpdateStock)
	}
}
