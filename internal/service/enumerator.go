package service

import (
	"github.com/VirusAlex/CashCleanerSimulator/internal/domain/model"
)

// Mode selects which packaging shapes the enumerator searches over.
type Mode int

const (
	// ModeIdeal searches packings of full sealed blocks supplemented by loose
	// bundles for the remainder that cannot fill a block. At least one block
	// must be used; individual bills never are.
	ModeIdeal Mode = iota
	// ModeLoose searches packings of loose bundles only, with no block packaging.
	ModeLoose
	// ModePartial extends the search down to individual bills, canonically
	// regrouped into blocks, bundles and loose bills per denomination.
	ModePartial
)

// String returns a human-readable mode name for logs and metrics.
func (m Mode) String() string {
	switch m {
	case ModeIdeal:
		return "ideal"
	case ModeLoose:
		return "loose"
	case ModePartial:
		return "partial"
	default:
		return "unknown"
	}
}

// maxSuffixValue caps suffix-value computations so that unlimited stock
// never overflows int64 arithmetic.
const maxSuffixValue = int64(1) << 62

// enumerator runs bounded depth-first searches over one currency profile.
// It owns a per-request seen-set so that duplicate configurations reached
// through different recursion orders, or re-discovered by a later mode,
// are emitted only once. Instances live for a single optimize call.
type enumerator struct {
	profile model.CurrencyProfile
	stock   model.Stock
	budget  *Budget
	seen    map[string]struct{}
}

func newEnumerator(profile model.CurrencyProfile, stock model.Stock, budget *Budget) *enumerator {
	return &enumerator{
		profile: profile,
		stock:   stock,
		budget:  budget,
		seen:    make(map[string]struct{}),
	}
}

// frame is one level of the explicit DFS stack. Using an explicit stack
// instead of recursion keeps the node-budget check at a single place and
// avoids stack-depth concerns for currencies with many denominations.
type frame struct {
	pos    int   // denomination index, descending face values
	remain int64 // amount still to cover before this denomination's choice
	next   int   // candidate unit count to try next (descending)
}

// enumerate produces every configuration that packs amount exactly under the
// stock ceilings, in the shapes allowed by mode. Configurations stream through
// yield; returning false from yield stops the search without error. The
// sequence is finite and non-restartable. Returns ErrBudgetExceeded when the
// budget ran out before the space was exhausted.
func (e *enumerator) enumerate(amount int64, mode Mode, yield func(model.Configuration) bool) error {
	n := len(e.profile.Denominations)
	if n == 0 || amount < 0 {
		return nil
	}

	unitValues := make([]int64, n)  // monetary value of one search unit
	unitBills := int64(1)           // bills consumed per search unit
	if mode != ModePartial {
		unitBills = int64(e.profile.BundleSize)
	}
	for i, d := range e.profile.Denominations {
		unitValues[i] = d * unitBills
	}

	// maxStock[i] is the stock-imposed unit ceiling, -1 when unlimited.
	maxStock := make([]int64, n)
	for i, d := range e.profile.Denominations {
		if limit, ok := e.stock.Limit(d); ok {
			maxStock[i] = limit / unitBills
		} else {
			maxStock[i] = -1
		}
	}

	// suffixValue[i] is the largest amount denominations i..n-1 can still
	// cover; branches whose remainder exceeds it are dead and pruned.
	suffixValue := make([]int64, n+1)
	for i := n - 1; i >= 0; i-- {
		if maxStock[i] < 0 {
			suffixValue[i] = maxSuffixValue
			continue
		}
		v := suffixValue[i+1] + unitValues[i]*maxStock[i]
		if v > maxSuffixValue || v < 0 {
			v = maxSuffixValue
		}
		suffixValue[i] = v
	}
	if amount > suffixValue[0] {
		return nil
	}

	maxUnits := func(pos int, remain int64) int64 {
		m := remain / unitValues[pos]
		if maxStock[pos] >= 0 && maxStock[pos] < m {
			m = maxStock[pos]
		}
		return m
	}

	counts := make([]int64, n)
	stack := make([]frame, 0, n)
	stack = append(stack, frame{pos: 0, remain: amount, next: int(maxUnits(0, amount))})

	for len(stack) > 0 {
		if !e.budget.Visit() {
			return ErrBudgetExceeded
		}
		f := &stack[len(stack)-1]

		if f.pos == n-1 {
			// Last denomination: the remainder either divides exactly or the
			// whole branch is dead. No iteration needed.
			need := f.remain / unitValues[f.pos]
			if f.remain%unitValues[f.pos] == 0 && need <= maxUnits(f.pos, f.remain) {
				counts[f.pos] = need
				if !e.emit(counts, mode, yield) {
					return nil
				}
			}
			stack = stack[:len(stack)-1]
			continue
		}

		if f.next < 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		c := int64(f.next)
		f.next--
		remain := f.remain - c*unitValues[f.pos]
		if remain > suffixValue[f.pos+1] {
			// Lower counts only grow the remainder; the frame is exhausted.
			stack = stack[:len(stack)-1]
			continue
		}
		counts[f.pos] = c
		stack = append(stack, frame{pos: f.pos + 1, remain: remain, next: int(maxUnits(f.pos+1, remain))})
	}
	return nil
}

// emit regroups raw unit counts into a Configuration, filters shapes that do
// not belong to the mode, suppresses duplicates and hands the result to yield.
// Returns false when the consumer wants the search stopped.
func (e *enumerator) emit(counts []int64, mode Mode, yield func(model.Configuration) bool) bool {
	cfg := model.Configuration{Counts: make([]model.DenominationCount, len(counts))}
	totalBlocks := 0
	for i, d := range e.profile.Denominations {
		dc := model.DenominationCount{Denomination: d}
		switch mode {
		case ModeIdeal:
			dc.Blocks = int(counts[i] / int64(e.profile.BlockSize))
			dc.Bundles = int(counts[i] % int64(e.profile.BlockSize))
		case ModeLoose:
			dc.Bundles = int(counts[i])
		case ModePartial:
			bills := counts[i]
			perBlock := int64(e.profile.BillsPerBlock())
			dc.Blocks = int(bills / perBlock)
			bills %= perBlock
			dc.Bundles = int(bills / int64(e.profile.BundleSize))
			dc.LooseBills = int(bills % int64(e.profile.BundleSize))
		}
		totalBlocks += dc.Blocks
		cfg.Counts[i] = dc
	}
	if mode == ModeIdeal && totalBlocks == 0 {
		// Pure bundle packings belong to the loose mode.
		return true
	}
	key := cfg.Key()
	if _, dup := e.seen[key]; dup {
		return true
	}
	e.seen[key] = struct{}{}
	return yield(cfg)
}
