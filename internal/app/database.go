// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/VirusAlex/CashCleanerSimulator/config"
	"github.com/VirusAlex/CashCleanerSimulator/internal/circuitbreaker"
	"github.com/VirusAlex/CashCleanerSimulator/internal/repository"
	"github.com/VirusAlex/CashCleanerSimulator/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                  *repository.MongoDB
	StockRepo           repository.StockRepositoryInterface
	UserRepo            repository.UserRepositoryInterface
	LoggingService      service.LoggingService
	StockCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker  *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and creates the
// repositories and services that depend on it.
// Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.Config) *DatabaseComponents {
	dbCfg := cfg.Database
	if !dbCfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(dbCfg.URI, dbCfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	ttlDays := int(dbCfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	stockCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: dbCfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: dbCfg.CircuitBreakerSuccessThreshold,
		Timeout:          dbCfg.CircuitBreakerTimeout,
		Name:             "mongodb-stock",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: dbCfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: dbCfg.CircuitBreakerSuccessThreshold,
		Timeout:          dbCfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	stockRepo := repository.NewStockRepository(db)
	stockRepoWithCB := repository.NewStockRepositoryWithCircuitBreaker(stockRepo, stockCB)

	userRepo := repository.NewUserRepository(db)

	// Seed the bootstrap account so the service is usable right after first start
	if cfg.Auth.BootstrapEmail != "" {
		authService := service.NewAuthService(userRepo, cfg.Auth)
		if err := authService.EnsureBootstrapUser(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Failed to ensure bootstrap user")
		}
	}

	return &DatabaseComponents{
		DB:                  db,
		StockRepo:           stockRepoWithCB,
		UserRepo:            userRepo,
		LoggingService:      loggingService,
		StockCircuitBreaker: stockCB,
		LogsCircuitBreaker:  logsCB,
	}
}
