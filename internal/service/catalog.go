// Package service contains the business logic for the cash packing service.
package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/VirusAlex/CashCleanerSimulator/internal/domain/model"
)

const (
	// DefaultBundleSize is the standard number of bills per bundle.
	DefaultBundleSize = 100
	// DefaultBlockSize is the standard number of bundles per block.
	DefaultBlockSize = 30
)

// defaultProfiles are the currency profiles registered out of the box.
var defaultProfiles = []model.CurrencyProfile{
	{Code: "USD", Denominations: []int64{100, 50, 20, 10}, BundleSize: DefaultBundleSize, BlockSize: DefaultBlockSize},
	{Code: "EUR", Denominations: []int64{100, 50, 20}, BundleSize: DefaultBundleSize, BlockSize: DefaultBlockSize},
	{Code: "JPY", Denominations: []int64{10000, 5000, 1000}, BundleSize: DefaultBundleSize, BlockSize: DefaultBlockSize},
}

// Catalog is the registry of currency profiles. It is populated once at
// startup and read-only afterwards, so concurrent lookups need no locking.
type Catalog struct {
	profiles map[string]model.CurrencyProfile
	order    []string
}

// NewCatalog builds a catalog from the given profiles.
// Profiles are validated and denominations sorted descending.
func NewCatalog(profiles ...model.CurrencyProfile) (*Catalog, error) {
	c := &Catalog{profiles: make(map[string]model.CurrencyProfile, len(profiles))}
	for _, p := range profiles {
		code := strings.ToUpper(strings.TrimSpace(p.Code))
		if code == "" {
			return nil, fmt.Errorf("currency profile without a code")
		}
		if _, exists := c.profiles[code]; exists {
			return nil, fmt.Errorf("duplicate currency profile %q", code)
		}
		if p.BundleSize <= 0 || p.BlockSize <= 0 {
			return nil, fmt.Errorf("currency %q: bundle and block sizes must be positive", code)
		}
		if len(p.Denominations) == 0 {
			return nil, fmt.Errorf("currency %q: no denominations", code)
		}
		denoms := make([]int64, len(p.Denominations))
		copy(denoms, p.Denominations)
		sort.Slice(denoms, func(i, j int) bool { return denoms[i] > denoms[j] })
		for i, d := range denoms {
			if d <= 0 {
				return nil, fmt.Errorf("currency %q: denomination must be positive, got %d", code, d)
			}
			if i > 0 && denoms[i-1] == d {
				return nil, fmt.Errorf("currency %q: duplicate denomination %d", code, d)
			}
		}
		p.Code = code
		p.Denominations = denoms
		c.profiles[code] = p
		c.order = append(c.order, code)
	}
	return c, nil
}

// DefaultCatalog returns a catalog with the standard currency profiles.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultProfiles...)
	if err != nil {
		// Static profiles are known-good; failing here is a programming error.
		panic(err)
	}
	return c
}

// ProfileFor returns the profile registered for the currency code.
// Returns ErrUnknownCurrency if the code is not registered.
func (c *Catalog) ProfileFor(code string) (model.CurrencyProfile, error) {
	p, ok := c.profiles[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return model.CurrencyProfile{}, ErrUnknownCurrency
	}
	return p, nil
}

// Profiles returns all registered profiles in registration order.
func (c *Catalog) Profiles() []model.CurrencyProfile {
	out := make([]model.CurrencyProfile, 0, len(c.order))
	for _, code := range c.order {
		out = append(out, c.profiles[code])
	}
	return out
}
