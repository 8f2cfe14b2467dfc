//go:build !integration

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VirusAlex/CashCleanerSimulator/internal/domain/model"
)

func TestNewCatalog(t *testing.T) {
	tests := []struct {
		name     string
		profiles []model.CurrencyProfile
		wantErr  bool
	}{
		{
			name: "valid profile",
			profiles: []model.CurrencyProfile{
				{Code: "USD", Denominations: []int64{100, 50}, BundleSize: 100, BlockSize: 30},
			},
		},
		{
			name: "code is trimmed and uppercased",
			profiles: []model.CurrencyProfile{
				{Code: " usd ", Denominations: []int64{100}, BundleSize: 100, BlockSize: 30},
			},
		},
		{
			name: "empty code",
			profiles: []model.CurrencyProfile{
				{Code: "", Denominations: []int64{100}, BundleSize: 100, BlockSize: 30},
			},
			wantErr: true,
		},
		{
			name: "duplicate code",
			profiles: []model.CurrencyProfile{
				{Code: "USD", Denominations: []int64{100}, BundleSize: 100, BlockSize: 30},
				{Code: "usd", Denominations: []int64{50}, BundleSize: 100, BlockSize: 30},
			},
			wantErr: true,
		},
		{
			name: "zero bundle size",
			profiles: []model.CurrencyProfile{
				{Code: "USD", Denominations: []int64{100}, BundleSize: 0, BlockSize: 30},
			},
			wantErr: true,
		},
		{
			name: "zero block size",
			profiles: []model.CurrencyProfile{
				{Code: "USD", Denominations: []int64{100}, BundleSize: 100, BlockSize: 0},
			},
			wantErr: true,
		},
		{
			name: "no denominations",
			profiles: []model.CurrencyProfile{
				{Code: "USD", Denominations: nil, BundleSize: 100, BlockSize: 30},
			},
			wantErr: true,
		},
		{
			name: "negative denomination",
			profiles: []model.CurrencyProfile{
				{Code: "USD", Denominations: []int64{100, -50}, BundleSize: 100, BlockSize: 30},
			},
			wantErr: true,
		},
		{
			name: "duplicate denomination",
			profiles: []model.CurrencyProfile{
				{Code: "USD", Denominations: []int64{100, 100}, BundleSize: 100, BlockSize: 30},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCatalog(tt.profiles...)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, c)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, c)
			}
		})
	}
}

func TestNewCatalog_SortsDenominationsDescending(t *testing.T) {
	c, err := NewCatalog(model.CurrencyProfile{
		Code:          "USD",
		Denominations: []int64{10, 100, 50, 20},
		BundleSize:    100,
		BlockSize:     30,
	})
	require.NoError(t, err)

	p, err := c.ProfileFor("USD")
	require.NoError(t, err)
	assert.Equal(t, []int64{100, 50, 20, 10}, p.Denominations)
}

func TestCatalog_ProfileFor(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		name    string
		code    string
		want    string
		wantErr error
	}{
		{name: "exact match", code: "USD", want: "USD"},
		{name: "lowercase", code: "usd", want: "USD"},
		{name: "surrounding spaces", code: " eur ", want: "EUR"},
		{name: "unknown code", code: "XXX", wantErr: ErrUnknownCurrency},
		{name: "empty code", code: "", wantErr: ErrUnknownCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := c.ProfileFor(tt.code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Code)
		})
	}
}

func TestCatalog_Profiles_RegistrationOrder(t *testing.T) {
	c := DefaultCatalog()
	profiles := c.Profiles()

	require.Len(t, profiles, 3)
	assert.Equal(t, "USD", profiles[0].Code)
	assert.Equal(t, "EUR", profiles[1].Code)
	assert.Equal(t, "JPY", profiles[2].Code)
}
