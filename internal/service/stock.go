package service

import (
	"context"
	"errors"

	"github.com/VirusAlex/CashCleanerSimulator/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// StockService provides stock level operations.
type StockService interface {
	GetActive(ctx context.Context, currency string) (*repository.StockConfig, error)
	Update(ctx context.Context, currency string, levels map[string]int64, unit, createdBy string) (*repository.StockConfig, error)
	History(ctx context.Context, currency string, limit int) ([]repository.StockConfig, error)
}

// StockServiceImpl implements StockService.
type StockServiceImpl struct {
	stockRepo repository.StockRepositoryInterface
}

// NewStockService creates a new stock service.
func NewStockService(stockRepo repository.StockRepositoryInterface) StockService {
	if stockRepo == nil {
		return &StockServiceImpl{}
	}
	return &StockServiceImpl{
		stockRepo: stockRepo,
	}
}

func (s *StockServiceImpl) GetActive(ctx context.Context, currency string) (*repository.StockConfig, error) {
	if s.stockRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.stockRepo.GetActive(ctx, currency)
}

func (s *StockServiceImpl) Update(ctx context.Context, currency string, levels map[string]int64, unit, createdBy string) (*repository.StockConfig, error) {
	if s.stockRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.stockRepo.Create(ctx, currency, levels, unit, createdBy)
}

func (s *StockServiceImpl) History(ctx context.Context, currency string, limit int) ([]repository.StockConfig, error) {
	if s.stockRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.stockRepo.History(ctx, currency, limit)
}
