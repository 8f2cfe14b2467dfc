package model

import (
	"fmt"
	"strconv"
	"strings"
)

// DenominationCount holds the physical packaging of one denomination
// inside a candidate configuration.
//
// @Description Per-denomination packaging breakdown
// @Example {"denomination": 100, "blocks": 2, "bundles": 5, "loose_bills": 0}
type DenominationCount struct {
	// Denomination is the bill face value
	Denomination int64 `json:"denomination" example:"100"`
	// Blocks is the count of full sealed blocks of this denomination
	Blocks int `json:"blocks" example:"2"`
	// Bundles is the count of loose bundles outside any block
	Bundles int `json:"bundles" example:"5"`
	// LooseBills is the count of individual bills outside any bundle
	LooseBills int `json:"loose_bills" example:"0"`
}

// Bills returns the total bill count of this denomination under the profile.
func (dc DenominationCount) Bills(p CurrencyProfile) int64 {
	return int64(dc.Blocks)*int64(p.BillsPerBlock()) +
		int64(dc.Bundles)*int64(p.BundleSize) +
		int64(dc.LooseBills)
}

// Value returns the monetary value contributed by this denomination.
func (dc DenominationCount) Value(p CurrencyProfile) int64 {
	return dc.Denomination * dc.Bills(p)
}

// Units returns the number of physical objects to hand over for this
// denomination: blocks plus loose bundles plus loose bills.
func (dc DenominationCount) Units() int {
	return dc.Blocks + dc.Bundles + dc.LooseBills
}

// Configuration is one candidate packing of a requested amount.
// Counts are aligned with the profile's denominations (descending order)
// and the configuration is read-only once produced by the enumerator.
type Configuration struct {
	Counts []DenominationCount `json:"counts"`
}

// TotalValue returns the monetary value of the whole configuration.
func (c Configuration) TotalValue(p CurrencyProfile) int64 {
	var total int64
	for _, dc := range c.Counts {
		total += dc.Value(p)
	}
	return total
}

// TotalUnits returns the total number of physical objects across denominations.
func (c Configuration) TotalUnits() int {
	units := 0
	for _, dc := range c.Counts {
		units += dc.Units()
	}
	return units
}

// TotalBills returns the total bill count across denominations.
func (c Configuration) TotalBills(p CurrencyProfile) int64 {
	var bills int64
	for _, dc := range c.Counts {
		bills += dc.Bills(p)
	}
	return bills
}

// BlockBills returns the number of bills sealed inside full blocks.
func (c Configuration) BlockBills(p CurrencyProfile) int64 {
	var bills int64
	for _, dc := range c.Counts {
		bills += int64(dc.Blocks) * int64(p.BillsPerBlock())
	}
	return bills
}

// Key returns a canonical identity for the configuration, used to
// suppress duplicates reached through different search orders.
func (c Configuration) Key() string {
	var b strings.Builder
	for i, dc := range c.Counts {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(strconv.Itoa(dc.Blocks))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(dc.Bundles))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(dc.LooseBills))
	}
	return b.String()
}

// Compare orders configurations canonically: positions follow descending
// denominations and at the first differing position the larger count wins.
// Returns -1 if c sorts before o, 1 if after, 0 if identical.
func (c Configuration) Compare(o Configuration) int {
	for i := range c.Counts {
		if i >= len(o.Counts) {
			return -1
		}
		a, b := c.Counts[i], o.Counts[i]
		switch {
		case a.Blocks != b.Blocks:
			if a.Blocks > b.Blocks {
				return -1
			}
			return 1
		case a.Bundles != b.Bundles:
			if a.Bundles > b.Bundles {
				return -1
			}
			return 1
		case a.LooseBills != b.LooseBills:
			if a.LooseBills > b.LooseBills {
				return -1
			}
			return 1
		}
	}
	if len(o.Counts) > len(c.Counts) {
		return 1
	}
	return 0
}

// Validate checks the configuration's invariants: the packaged value matches
// the requested amount exactly and no denomination exceeds its stock ceiling.
// A violation here is a defect in the enumerator, never a user error.
func (c Configuration) Validate(p CurrencyProfile, amount int64, stock Stock) error {
	if got := c.TotalValue(p); got != amount {
		return fmt.Errorf("configuration value %d does not match requested amount %d", got, amount)
	}
	for _, dc := range c.Counts {
		if dc.Blocks < 0 || dc.Bundles < 0 || dc.LooseBills < 0 {
			return fmt.Errorf("negative count for denomination %d", dc.Denomination)
		}
		if limit, ok := stock.Limit(dc.Denomination); ok {
			if used := dc.Bills(p); used > limit {
				return fmt.Errorf("denomination %d uses %d bills, stock ceiling is %d", dc.Denomination, used, limit)
			}
		}
	}
	return nil
}

// ScoreVector is the fixed multi-criteria quality of a configuration.
// Vectors compare lexicographically field by field; see Less for the
// orientation of each criterion.
//
// @Description Multi-criteria score of a packing variant
type ScoreVector struct {
	// TotalUnits is the count of physical objects handed over (fewer is better)
	TotalUnits int `json:"total_units" example:"14"`
	// BlockBills is the count of bills sealed in full blocks (more is better)
	BlockBills int64 `json:"block_bills" example:"6000"`
	// AvgDenomination is the value-weighted average bill face value (higher is better)
	AvgDenomination float64 `json:"avg_denomination" example:"87.5"`
	// StockSpread is the sum of squared stock utilization ratios (lower is better)
	StockSpread float64 `json:"stock_spread" example:"0.41"`
}

// Less reports whether v scores strictly better than o.
func (v ScoreVector) Less(o ScoreVector) bool {
	if v.TotalUnits != o.TotalUnits {
		return v.TotalUnits < o.TotalUnits
	}
	if v.BlockBills != o.BlockBills {
		return v.BlockBills > o.BlockBills
	}
	if v.AvgDenomination != o.AvgDenomination {
		return v.AvgDenomination > o.AvgDenomination
	}
	return v.StockSpread < o.StockSpread
}
