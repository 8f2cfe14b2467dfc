//go:build !integration

package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptimizeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     OptimizeRequest
		wantErr *ValidationError
	}{
		{
			name: "minimal valid request",
			req:  OptimizeRequest{Amount: 750_000, Currency: "USD"},
		},
		{
			name: "full valid request",
			req: OptimizeRequest{
				Amount:      750_000,
				Currency:    "USD",
				Stock:       map[string]int64{"100": 40, "50": 20},
				StockUnit:   "bills",
				MaxVariants: 10,
				BudgetMs:    200,
			},
		},
		{
			name: "zero amount is valid",
			req:  OptimizeRequest{Amount: 0, Currency: "USD"},
		},
		{
			name:    "negative amount",
			req:     OptimizeRequest{Amount: -1, Currency: "USD"},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "missing currency",
			req:     OptimizeRequest{Amount: 100},
			wantErr: ErrInvalidCurrency,
		},
		{
			name:    "unknown stock unit",
			req:     OptimizeRequest{Amount: 100, Currency: "USD", StockUnit: "crates"},
			wantErr: ErrInvalidStockUnit,
		},
		{
			name:    "negative max variants",
			req:     OptimizeRequest{Amount: 100, Currency: "USD", MaxVariants: -1},
			wantErr: ErrInvalidMaxVariants,
		},
		{
			name:    "max variants over ceiling",
			req:     OptimizeRequest{Amount: 100, Currency: "USD", MaxVariants: 101},
			wantErr: ErrInvalidMaxVariants,
		},
		{
			name:    "negative budget",
			req:     OptimizeRequest{Amount: 100, Currency: "USD", BudgetMs: -5},
			wantErr: ErrInvalidBudget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateStockRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       UpdateStockRequest
		wantField string
	}{
		{
			name: "valid request",
			req:  UpdateStockRequest{Levels: map[string]int64{"100": 40}, Unit: "bundles"},
		},
		{
			name: "unit optional",
			req:  UpdateStockRequest{Levels: map[string]int64{"100": 40}},
		},
		{
			name:      "empty levels",
			req:       UpdateStockRequest{},
			wantField: "levels",
		},
		{
			name:      "unknown unit",
			req:       UpdateStockRequest{Levels: map[string]int64{"100": 40}, Unit: "crates"},
			wantField: "unit",
		},
		{
			name:      "negative count",
			req:       UpdateStockRequest{Levels: map[string]int64{"100": -1}},
			wantField: "levels",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "amount", Message: "must be a non-negative integer"}
	assert.Equal(t, "amount: must be a non-negative integer", err.Error())
}
