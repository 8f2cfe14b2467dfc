// Package app provides router configuration.
package app

import (
	"context"

	"github.com/VirusAlex/CashCleanerSimulator/config"
	"github.com/VirusAlex/CashCleanerSimulator/internal/http"
	"github.com/VirusAlex/CashCleanerSimulator/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	serviceComponents *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	var stockService service.StockService
	var authService service.AuthService

	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		if dbComponents.StockRepo != nil {
			stockService = service.NewStockService(dbComponents.StockRepo)
		}
		if dbComponents.UserRepo != nil && cfg.Auth.JWTSecret != "" {
			authService = service.NewAuthService(dbComponents.UserRepo, cfg.Auth)
		}
	}

	healthHandler := http.NewHealthHandler()
	if dbComponents != nil {
		if db := dbComponents.DB; db != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(func() error {
				return db.HealthCheck(context.Background())
			}))
		}
		if dbComponents.StockCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_stock", dbComponents.StockCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		EnableAuth:     cfg.Auth.Enabled,
		APIKeys:        cfg.Auth.APIKeys,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		LoggingService: loggingService,
		StockService:   stockService,
		AuthService:    authService,
		Optimizer:      serviceComponents.Optimizer,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
