//go:build !integration

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VirusAlex/CashCleanerSimulator/internal/domain/model"
)

// testProfile keeps the arithmetic small: bundles of 10 bills,
// blocks of 2 bundles, so one block holds 20 bills.
var testProfile = model.CurrencyProfile{
	Code:          "TST",
	Denominations: []int64{100, 50},
	BundleSize:    10,
	BlockSize:     2,
}

func collectConfigs(t *testing.T, profile model.CurrencyProfile, stock model.Stock, amount int64, mode Mode) []model.Configuration {
	t.Helper()
	en := newEnumerator(profile, stock, NewBudget(0, 0))
	var out []model.Configuration
	err := en.enumerate(amount, mode, func(cfg model.Configuration) bool {
		out = append(out, cfg)
		return true
	})
	require.NoError(t, err)
	return out
}

func TestEnumerate_IdealMode(t *testing.T) {
	// 2000 = 2 bundles of 100, or 1 bundle of 100 + 2 bundles of 50,
	// or 4 bundles of 50. All three contain at least one full block.
	configs := collectConfigs(t, testProfile, nil, 2000, ModeIdeal)
	require.Len(t, configs, 3)

	for _, cfg := range configs {
		assert.Equal(t, int64(2000), cfg.TotalValue(testProfile))
		blocks := 0
		loose := 0
		for _, dc := range cfg.Counts {
			blocks += dc.Blocks
			loose += dc.LooseBills
		}
		assert.GreaterOrEqual(t, blocks, 1, "ideal packings must contain a block")
		assert.Zero(t, loose, "ideal packings never contain loose bills")
	}
}

func TestEnumerate_IdealMode_FiltersBlocklessPackings(t *testing.T) {
	// 1500 = 1+1 bundles (no block, filtered) or 3 bundles of 50
	// (one block plus one bundle).
	configs := collectConfigs(t, testProfile, nil, 1500, ModeIdeal)
	require.Len(t, configs, 1)
	assert.Equal(t, 1, configs[0].Counts[1].Blocks)
	assert.Equal(t, 1, configs[0].Counts[1].Bundles)
}

func TestEnumerate_LooseMode(t *testing.T) {
	configs := collectConfigs(t, testProfile, nil, 1500, ModeLoose)
	require.Len(t, configs, 2)

	for _, cfg := range configs {
		assert.Equal(t, int64(1500), cfg.TotalValue(testProfile))
		for _, dc := range cfg.Counts {
			assert.Zero(t, dc.Blocks, "loose packings never contain blocks")
			assert.Zero(t, dc.LooseBills)
		}
	}
}

func TestEnumerate_PartialMode_RegroupsCanonically(t *testing.T) {
	// 150 only packs as one bill of 100 plus one bill of 50.
	configs := collectConfigs(t, testProfile, nil, 150, ModePartial)
	require.Len(t, configs, 1)

	cfg := configs[0]
	assert.Equal(t, 1, cfg.Counts[0].LooseBills)
	assert.Equal(t, 1, cfg.Counts[1].LooseBills)
	assert.Zero(t, cfg.Counts[0].Blocks)
	assert.Zero(t, cfg.Counts[0].Bundles)
}

func TestEnumerate_StockCeilingExcludesBranches(t *testing.T) {
	// Only 10 bills of 100 available: the two-bundle packing is gone.
	stock := model.Stock{100: 10}
	configs := collectConfigs(t, testProfile, stock, 2000, ModeLoose)
	require.Len(t, configs, 2)

	for _, cfg := range configs {
		assert.LessOrEqual(t, cfg.Counts[0].Bills(testProfile), int64(10))
		assert.NoError(t, cfg.Validate(testProfile, 2000, stock))
	}
}

func TestEnumerate_ZeroStockMeansNoSolutions(t *testing.T) {
	stock := model.Stock{100: 0, 50: 0}
	configs := collectConfigs(t, testProfile, stock, 2000, ModePartial)
	assert.Empty(t, configs)
}

func TestEnumerate_DuplicatesSuppressedAcrossModes(t *testing.T) {
	en := newEnumerator(testProfile, nil, NewBudget(0, 0))

	seen := make(map[string]int)
	run := func(mode Mode) {
		err := en.enumerate(2000, mode, func(cfg model.Configuration) bool {
			seen[cfg.Key()]++
			return true
		})
		require.NoError(t, err)
	}
	run(ModeIdeal)
	run(ModePartial)

	for key, count := range seen {
		assert.Equal(t, 1, count, "configuration %s emitted more than once", key)
	}
}

func TestEnumerate_BudgetExceeded(t *testing.T) {
	en := newEnumerator(testProfile, nil, NewBudget(0, 2))
	err := en.enumerate(2000, ModePartial, func(model.Configuration) bool { return true })
	assert.ErrorIs(t, err, ErrBudgetExceeded)
}

func TestEnumerate_YieldStopsSearch(t *testing.T) {
	en := newEnumerator(testProfile, nil, NewBudget(0, 0))
	calls := 0
	err := en.enumerate(2000, ModeIdeal, func(model.Configuration) bool {
		calls++
		return false
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestEnumerate_InfeasibleAmount(t *testing.T) {
	// 75 is not reachable with bills of 100 and 50.
	configs := collectConfigs(t, testProfile, nil, 75, ModePartial)
	assert.Empty(t, configs)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "ideal", ModeIdeal.String())
	assert.Equal(t, "loose", ModeLoose.String())
	assert.Equal(t, "partial", ModePartial.String())
	assert.Equal(t, "unknown", Mode(42).String())
}
