// Package repository provides interfaces for repository operations.
package repository

import (
	"context"
)

// StockRepositoryInterface defines the interface for stock repository operations.
type StockRepositoryInterface interface {
	GetActive(ctx context.Context, currency string) (*StockConfig, error)
	Create(ctx context.Context, currency string, levels map[string]int64, unit, createdBy string) (*StockConfig, error)
	History(ctx context.Context, currency string, limit int) ([]StockConfig, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
