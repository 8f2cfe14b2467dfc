package service

import (
	"github.com/VirusAlex/CashCleanerSimulator/internal/domain/model"
)

// ScoredConfiguration pairs a configuration with its computed score.
// Produced by Score, consumed by rank.
type ScoredConfiguration struct {
	Config model.Configuration
	Score  model.ScoreVector
}

// Score computes the quality vector of a configuration. It is deterministic
// and side-effect free: equal inputs always produce equal vectors, which the
// ranker relies on for reproducible ordering.
//
// The criteria, in lexicographic priority:
//  1. fewest physical units to hand over;
//  2. most bills sealed in audit-ready full blocks;
//  3. highest value-weighted average denomination (prefer larger bills);
//  4. most even stock utilization, as the final tie-break.
func Score(cfg model.Configuration, profile model.CurrencyProfile, stock model.Stock) model.ScoreVector {
	v := model.ScoreVector{
		TotalUnits: cfg.TotalUnits(),
		BlockBills: cfg.BlockBills(profile),
	}

	var totalBills, weighted int64
	for _, dc := range cfg.Counts {
		bills := dc.Bills(profile)
		totalBills += bills
		weighted += bills * dc.Denomination
	}
	if totalBills > 0 {
		v.AvgDenomination = float64(weighted) / float64(totalBills)
	}

	for _, dc := range cfg.Counts {
		limit, ok := stock.Limit(dc.Denomination)
		if !ok || limit <= 0 {
			continue
		}
		ratio := float64(dc.Bills(profile)) / float64(limit)
		v.StockSpread += ratio * ratio
	}
	return v
}
