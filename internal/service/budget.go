package service

import "time"

// budgetCheckCadence is how many node visits pass between wall-clock checks.
// Reading the clock on every recursion step would dominate small searches.
const budgetCheckCadence = 64

// Budget bounds one enumeration call by wall-clock deadline and node count.
// It is owned by a single optimization request and never shared or persisted.
type Budget struct {
	deadline time.Time
	maxNodes int64
	nodes    int64
}

// NewBudget creates a budget. A zero duration means no deadline and a
// negative one an already-expired deadline; maxNodes <= 0 means no node
// ceiling.
func NewBudget(d time.Duration, maxNodes int64) *Budget {
	b := &Budget{maxNodes: maxNodes}
	if d != 0 {
		b.deadline = time.Now().Add(d)
	}
	return b
}

// Visit records one search node and reports whether the budget still holds.
func (b *Budget) Visit() bool {
	b.nodes++
	if b.maxNodes > 0 && b.nodes > b.maxNodes {
		return false
	}
	if !b.deadline.IsZero() && b.nodes%budgetCheckCadence == 0 && time.Now().After(b.deadline) {
		return false
	}
	return true
}

// Nodes returns the number of nodes visited so far.
func (b *Budget) Nodes() int64 {
	return b.nodes
}
