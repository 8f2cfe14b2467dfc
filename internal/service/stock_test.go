//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VirusAlex/CashCleanerSimulator/internal/repository"
)

// fakeStockRepo records calls and returns canned configs.
type fakeStockRepo struct {
	active  *repository.StockConfig
	history []repository.StockConfig
	err     error

	lastCurrency  string
	lastLevels    map[string]int64
	lastUnit      string
	lastCreatedBy string
	lastLimit     int
}

func (f *fakeStockRepo) GetActive(_ context.Context, currency string) (*repository.StockConfig, error) {
	f.lastCurrency = currency
	return f.active, f.err
}

func (f *fakeStockRepo) Create(_ context.Context, currency string, levels map[string]int64, unit, createdBy string) (*repository.StockConfig, error) {
	f.lastCurrency = currency
	f.lastLevels = levels
	f.lastUnit = unit
	f.lastCreatedBy = createdBy
	if f.err != nil {
		return nil, f.err
	}
	return &repository.StockConfig{Currency: currency, Levels: levels, Unit: unit, CreatedBy: createdBy, Active: true, Version: 1}, nil
}

func (f *fakeStockRepo) History(_ context.Context, currency string, limit int) ([]repository.StockConfig, error) {
	f.lastCurrency = currency
	f.lastLimit = limit
	return f.history, f.err
}

func TestStockService_NilRepository(t *testing.T) {
	svc := NewStockService(nil)

	_, err := svc.GetActive(context.Background(), "USD")
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)

	_, err = svc.Update(context.Background(), "USD", map[string]int64{"100": 5}, "bundles", "ops@example.com")
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)

	_, err = svc.History(context.Background(), "USD", 10)
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
}

func TestStockService_GetActive(t *testing.T) {
	repo := &fakeStockRepo{active: &repository.StockConfig{Currency: "EUR", Version: 3}}
	svc := NewStockService(repo)

	cfg, err := svc.GetActive(context.Background(), "EUR")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, 3, cfg.Version)
	assert.Equal(t, "EUR", repo.lastCurrency)
}

func TestStockService_GetActive_NoActiveConfig(t *testing.T) {
	svc := NewStockService(&fakeStockRepo{})

	cfg, err := svc.GetActive(context.Background(), "USD")
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestStockService_Update(t *testing.T) {
	repo := &fakeStockRepo{}
	svc := NewStockService(repo)

	levels := map[string]int64{"100": 12, "50": 0}
	cfg, err := svc.Update(context.Background(), "USD", levels, "bundles", "ops@example.com")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "USD", repo.lastCurrency)
	assert.Equal(t, levels, repo.lastLevels)
	assert.Equal(t, "bundles", repo.lastUnit)
	assert.Equal(t, "ops@example.com", repo.lastCreatedBy)
	assert.True(t, cfg.Active)
}

func TestStockService_Update_RepositoryError(t *testing.T) {
	repoErr := errors.New("write failed")
	svc := NewStockService(&fakeStockRepo{err: repoErr})

	_, err := svc.Update(context.Background(), "USD", nil, "bills", "")
	assert.ErrorIs(t, err, repoErr)
}

func TestStockService_History(t *testing.T) {
	repo := &fakeStockRepo{history: []repository.StockConfig{{Version: 2}, {Version: 1}}}
	svc := NewStockService(repo)

	history, err := svc.History(context.Background(), "JPY", 25)
	require.NoError(t, err)
	assert.Len(t, history, 2)
	assert.Equal(t, "JPY", repo.lastCurrency)
	assert.Equal(t, 25, repo.lastLimit)
}
