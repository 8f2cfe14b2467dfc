package model

// InfeasibleReason explains why an optimization produced no variants.
type InfeasibleReason string

const (
	// ReasonNoCombination means no exact packing exists under the given stock.
	ReasonNoCombination InfeasibleReason = "no_combination"
	// ReasonBudgetExceeded means the search budget ran out before any packing was found.
	ReasonBudgetExceeded InfeasibleReason = "budget_exceeded"
)

// Variant is a display-ready packing selected into the final result set.
//
// @Description One ranked packing variant with its score
type Variant struct {
	// Breakdown lists the per-denomination packaging, descending by face value
	Breakdown []DenominationCount `json:"breakdown"`
	// Blocks is the total count of full blocks across denominations
	Blocks int `json:"blocks" example:"2"`
	// Bundles is the total count of loose bundles across denominations
	Bundles int `json:"bundles" example:"15"`
	// LooseBills is the total count of individual loose bills
	LooseBills int `json:"loose_bills" example:"0"`
	// TotalValue is the monetary value of the variant (always the requested amount)
	TotalValue int64 `json:"total_value" example:"750000"`
	// Score is the variant's quality vector
	Score ScoreVector `json:"score"`
}

// NewVariant builds a Variant from a configuration and its score.
func NewVariant(cfg Configuration, score ScoreVector, p CurrencyProfile) Variant {
	v := Variant{
		Breakdown:  cfg.Counts,
		TotalValue: cfg.TotalValue(p),
		Score:      score,
	}
	for _, dc := range cfg.Counts {
		v.Blocks += dc.Blocks
		v.Bundles += dc.Bundles
		v.LooseBills += dc.LooseBills
	}
	return v
}

// OptimizeResult is the outcome of one optimization request: either a ranked
// list of variants or a structured infeasibility report. Infeasibility and a
// spent budget are normal outcomes, not errors.
//
// @Description Result of a cash packing optimization
type OptimizeResult struct {
	// Amount is the requested amount
	Amount int64 `json:"amount" example:"750000"`
	// Currency is the requested currency code
	Currency string `json:"currency" example:"USD"`
	// Feasible reports whether at least one exact packing was found
	Feasible bool `json:"feasible" example:"true"`
	// Reason is set when Feasible is false
	Reason InfeasibleReason `json:"reason,omitempty" example:"no_combination"`
	// BudgetExceeded reports that the search stopped early; the variant list
	// is then best-effort rather than exhaustive
	BudgetExceeded bool `json:"budget_exceeded" example:"false"`
	// Variants is the ranked list of packings, best first
	Variants []Variant `json:"variants"`
}

// Infeasible builds an infeasibility result carrying whatever partial
// variants were discovered before the search stopped.
func Infeasible(amount int64, currency string, reason InfeasibleReason, partial []Variant) OptimizeResult {
	if partial == nil {
		partial = []Variant{}
	}
	return OptimizeResult{
		Amount:         amount,
		Currency:       currency,
		Feasible:       false,
		Reason:         reason,
		BudgetExceeded: reason == ReasonBudgetExceeded,
		Variants:       partial,
	}
}
