// Package model defines the core domain entities for the cash packing service.
package model

// CurrencyProfile describes how a currency is physically packaged:
// the bill face values it circulates in, how many bills form a bundle,
// and how many bundles form a sealed block.
//
// @Description Currency packaging profile
// @Example {"code": "USD", "denominations": [100, 50, 20, 10], "bundle_size": 100, "block_size": 30}
type CurrencyProfile struct {
	// Code is the ISO-style currency code (e.g. "USD")
	Code string `json:"code" example:"USD"`
	// Denominations lists bill face values in descending order
	Denominations []int64 `json:"denominations" example:"100,50,20,10"`
	// BundleSize is the number of bills per bundle
	BundleSize int `json:"bundle_size" example:"100"`
	// BlockSize is the number of bundles per block
	BlockSize int `json:"block_size" example:"30"`
}

// BillsPerBlock returns the number of individual bills in one full block.
func (p CurrencyProfile) BillsPerBlock() int {
	return p.BundleSize * p.BlockSize
}

// BundleValue returns the monetary value of one bundle of the given denomination.
func (p CurrencyProfile) BundleValue(denomination int64) int64 {
	return denomination * int64(p.BundleSize)
}

// BlockValue returns the monetary value of one full block of the given denomination.
func (p CurrencyProfile) BlockValue(denomination int64) int64 {
	return denomination * int64(p.BillsPerBlock())
}

// HasDenomination reports whether the profile contains the given face value.
func (p CurrencyProfile) HasDenomination(denomination int64) bool {
	for _, d := range p.Denominations {
		if d == denomination {
			return true
		}
	}
	return false
}

// StockUnit identifies the unit in which a stock ceiling is expressed.
type StockUnit string

const (
	// StockUnitBundles means stock counts are whole bundles.
	StockUnitBundles StockUnit = "bundles"
	// StockUnitBills means stock counts are individual bills.
	StockUnitBills StockUnit = "bills"
)

// Valid reports whether the unit is one of the supported values.
func (u StockUnit) Valid() bool {
	return u == StockUnitBundles || u == StockUnitBills
}

// Stock maps a denomination to its maximum available bill count.
// A missing entry means the denomination is unlimited.
type Stock map[int64]int64

// Limit returns the bill ceiling for the denomination and whether one exists.
func (s Stock) Limit(denomination int64) (int64, bool) {
	if s == nil {
		return 0, false
	}
	limit, ok := s[denomination]
	return limit, ok
}
