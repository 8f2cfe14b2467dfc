// Package app provides service initialization.
package app

import (
	"github.com/VirusAlex/CashCleanerSimulator/config"
	"github.com/VirusAlex/CashCleanerSimulator/internal/service"
)

// ServiceComponents holds engine-related components.
type ServiceComponents struct {
	Optimizer service.Optimizer
}

// InitializeServices initializes the optimization engine.
func InitializeServices(cfg config.Config) *ServiceComponents {
	var opts []service.Option

	if cfg.Engine.SearchDeadline > 0 || cfg.Engine.MaxNodes > 0 {
		opts = append(opts, service.WithSearchBudget(cfg.Engine.SearchDeadline, cfg.Engine.MaxNodes))
	}
	if cfg.Engine.CandidatePool > 0 {
		opts = append(opts, service.WithCandidatePool(cfg.Engine.CandidatePool))
	}
	if cfg.Engine.DefaultMaxVariants > 0 {
		opts = append(opts, service.WithDefaultVariants(cfg.Engine.DefaultMaxVariants))
	}
	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	optimizer := service.NewOptimizerService(opts...)

	return &ServiceComponents{
		Optimizer: optimizer,
	}
}
