package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/VirusAlex/CashCleanerSimulator/internal/domain/model"
	"github.com/VirusAlex/CashCleanerSimulator/internal/service/cache"
)

const (
	// EngineMaxVariants is the engine-wide ceiling on variants per request.
	EngineMaxVariants = 100
	// DefaultMaxVariants is used when a request does not specify a limit.
	DefaultMaxVariants = 5
	// DefaultSearchDeadline bounds one enumeration call by wall clock.
	DefaultSearchDeadline = 500 * time.Millisecond
	// DefaultMaxNodes bounds one enumeration call by visited search nodes.
	DefaultMaxNodes = 2_000_000
	// defaultCandidatePool caps how many configurations are collected for
	// scoring; beyond it the enumeration stops without error.
	defaultCandidatePool = 512
)

// ValidationError describes a rejected input field. It fails fast, before
// any search starts.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// StockEntry is one caller-supplied stock ceiling before normalization.
type StockEntry struct {
	Denomination int64
	Count        int64
}

// OptimizeRequest carries the validated inputs of one optimization call.
type OptimizeRequest struct {
	Amount   int64
	Currency string
	// Stock lists per-denomination ceilings; empty means unlimited everywhere.
	Stock []StockEntry
	// StockUnit says whether Stock counts are bundles or bills.
	// Empty defaults to bundles, matching cash-vault inventory practice.
	StockUnit model.StockUnit
	// MaxVariants limits the ranked output; 0 means DefaultMaxVariants.
	MaxVariants int
	// Budget overrides the configured wall-clock deadline when positive.
	// It is clamped to the configured deadline, never extended past it.
	Budget time.Duration
}

// Optimizer defines the single entry point of the packing engine.
type Optimizer interface {
	Optimize(ctx context.Context, req OptimizeRequest) (model.OptimizeResult, error)
	Profiles() []model.CurrencyProfile
	// InvalidateCache clears the result cache (useful when default stock changes).
	InvalidateCache()
}

// Option configures an OptimizerService.
type Option func(*OptimizerService)

// OptimizerService wires the catalog, enumerator, scorer and ranker together
// and enforces the search budget. One Optimize call is single-threaded and
// shares no mutable state with concurrent calls.
type OptimizerService struct {
	catalog         *Catalog
	deadline        time.Duration
	maxNodes        int64
	poolSize        int
	defaultVariants int
	cache           cache.Cache
}

// NewOptimizerService creates a new OptimizerService with the given options.
func NewOptimizerService(opts ...Option) *OptimizerService {
	s := &OptimizerService{
		catalog:         DefaultCatalog(),
		deadline:        DefaultSearchDeadline,
		maxNodes:        DefaultMaxNodes,
		poolSize:        defaultCandidatePool,
		defaultVariants: DefaultMaxVariants,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCatalog replaces the default currency catalog.
func WithCatalog(c *Catalog) Option {
	return func(s *OptimizerService) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithSearchBudget sets the per-request wall-clock deadline and node ceiling.
func WithSearchBudget(deadline time.Duration, maxNodes int64) Option {
	return func(s *OptimizerService) {
		if deadline > 0 {
			s.deadline = deadline
		}
		if maxNodes > 0 {
			s.maxNodes = maxNodes
		}
	}
}

// WithCandidatePool sets how many configurations are collected for scoring.
func WithCandidatePool(size int) Option {
	return func(s *OptimizerService) {
		if size > 0 {
			s.poolSize = size
		}
	}
}

// WithDefaultVariants sets how many variants are returned when a request
// does not specify a limit.
func WithDefaultVariants(n int) Option {
	return func(s *OptimizerService) {
		if n > 0 && n <= EngineMaxVariants {
			s.defaultVariants = n
		}
	}
}

// WithCache enables result caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *OptimizerService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *OptimizerService) {
		s.cache = c
	}
}

// Profiles returns the registered currency profiles.
func (s *OptimizerService) Profiles() []model.CurrencyProfile {
	return s.catalog.Profiles()
}

// InvalidateCache clears the result cache.
func (s *OptimizerService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// Optimize computes the ranked packing variants for the request.
// It returns a *ValidationError for rejected input, otherwise an
// OptimizeResult that is either feasible or a structured infeasibility
// report. Budget exhaustion is reported inside the result, never as an error.
func (s *OptimizerService) Optimize(ctx context.Context, req OptimizeRequest) (model.OptimizeResult, error) {
	profile, stock, err := s.validate(&req)
	if err != nil {
		return model.OptimizeResult{}, err
	}

	if req.Amount == 0 {
		// Nothing to pack: a single all-zero variant, by definition feasible.
		return s.emptyResult(profile), nil
	}

	key := fingerprint(req)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			return cached, nil
		}
	}

	deadline := req.Budget
	if deadline <= 0 || deadline > s.deadline {
		deadline = s.deadline
	}
	if ctxDeadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(ctxDeadline); remaining < deadline {
			deadline = remaining
		}
	}

	budget := NewBudget(deadline, s.maxNodes)
	en := newEnumerator(profile, stock, budget)

	pool := make([]model.Configuration, 0, s.poolSize)
	collect := func(mode Mode) error {
		return en.enumerate(req.Amount, mode, func(cfg model.Configuration) bool {
			pool = append(pool, cfg)
			return len(pool) < s.poolSize
		})
	}

	budgetExceeded := false
	if err := collect(ModeIdeal); errors.Is(err, ErrBudgetExceeded) {
		budgetExceeded = true
	}
	if len(pool) == 0 && !budgetExceeded {
		if err := collect(ModeLoose); errors.Is(err, ErrBudgetExceeded) {
			budgetExceeded = true
		}
	}
	if !budgetExceeded && len(pool) < s.poolSize {
		if err := collect(ModePartial); errors.Is(err, ErrBudgetExceeded) {
			budgetExceeded = true
		}
	}

	if len(pool) == 0 {
		reason := model.ReasonNoCombination
		if budgetExceeded {
			reason = model.ReasonBudgetExceeded
		}
		result := model.Infeasible(req.Amount, profile.Code, reason, nil)
		if s.cache != nil && !budgetExceeded {
			s.cache.Set(key, result)
		}
		return result, nil
	}

	scored := make([]ScoredConfiguration, len(pool))
	for i, cfg := range pool {
		scored[i] = ScoredConfiguration{Config: cfg, Score: Score(cfg, profile, stock)}
	}
	ranked := rank(scored, req.MaxVariants)

	variants := make([]model.Variant, 0, len(ranked))
	for _, sc := range ranked {
		// A selected configuration violating its own invariant is a defect
		// in the enumerator and must surface, not be swallowed.
		if err := sc.Config.Validate(profile, req.Amount, stock); err != nil {
			return model.OptimizeResult{}, fmt.Errorf("internal invariant violation: %w", err)
		}
		variants = append(variants, model.NewVariant(sc.Config, sc.Score, profile))
	}

	result := model.OptimizeResult{
		Amount:         req.Amount,
		Currency:       profile.Code,
		Feasible:       true,
		BudgetExceeded: budgetExceeded,
		Variants:       variants,
	}
	if s.cache != nil && !budgetExceeded {
		// Budget-truncated results depend on machine load; caching them
		// would pin a degraded answer.
		s.cache.Set(key, result)
	}
	return result, nil
}

// validate checks the request, applies defaults and normalizes the stock
// constraint to bill counts keyed by denomination.
func (s *OptimizerService) validate(req *OptimizeRequest) (model.CurrencyProfile, model.Stock, error) {
	if req.Amount < 0 {
		return model.CurrencyProfile{}, nil, &ValidationError{Field: "amount", Message: "must not be negative"}
	}
	profile, err := s.catalog.ProfileFor(req.Currency)
	if err != nil {
		return model.CurrencyProfile{}, nil, &ValidationError{Field: "currency", Message: fmt.Sprintf("currency %q is not registered", req.Currency)}
	}

	if req.MaxVariants < 0 {
		return model.CurrencyProfile{}, nil, &ValidationError{Field: "max_variants", Message: "must not be negative"}
	}
	if req.MaxVariants == 0 {
		req.MaxVariants = s.defaultVariants
	}
	if req.MaxVariants > EngineMaxVariants {
		return model.CurrencyProfile{}, nil, &ValidationError{Field: "max_variants", Message: fmt.Sprintf("must not exceed %d", EngineMaxVariants)}
	}

	if req.Budget < 0 {
		return model.CurrencyProfile{}, nil, &ValidationError{Field: "budget_ms", Message: "must not be negative"}
	}

	unit := req.StockUnit
	if unit == "" {
		unit = model.StockUnitBundles
	}
	if !unit.Valid() {
		return model.CurrencyProfile{}, nil, &ValidationError{Field: "stock_unit", Message: fmt.Sprintf("unknown unit %q", req.StockUnit)}
	}
	req.StockUnit = unit

	var stock model.Stock
	if len(req.Stock) > 0 {
		stock = make(model.Stock, len(req.Stock))
		for _, entry := range req.Stock {
			if !profile.HasDenomination(entry.Denomination) {
				return model.CurrencyProfile{}, nil, &ValidationError{
					Field:   "stock",
					Message: fmt.Sprintf("denomination %d is not valid for %s", entry.Denomination, profile.Code),
				}
			}
			if entry.Count < 0 {
				return model.CurrencyProfile{}, nil, &ValidationError{
					Field:   "stock",
					Message: fmt.Sprintf("denomination %d: count must not be negative", entry.Denomination),
				}
			}
			bills := entry.Count
			if unit == model.StockUnitBundles {
				bills = entry.Count * int64(profile.BundleSize)
			}
			stock[entry.Denomination] = bills
		}
	}
	req.Currency = profile.Code
	return profile, stock, nil
}

// emptyResult is the zero-amount success: one variant with all-zero counts.
func (s *OptimizerService) emptyResult(profile model.CurrencyProfile) model.OptimizeResult {
	cfg := model.Configuration{Counts: make([]model.DenominationCount, len(profile.Denominations))}
	for i, d := range profile.Denominations {
		cfg.Counts[i] = model.DenominationCount{Denomination: d}
	}
	return model.OptimizeResult{
		Currency: profile.Code,
		Feasible: true,
		Variants: []model.Variant{model.NewVariant(cfg, model.ScoreVector{}, profile)},
	}
}

// fingerprint builds the canonical cache key of a validated request.
func fingerprint(req OptimizeRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%d|%d|%s", req.Currency, req.Amount, req.MaxVariants, req.StockUnit)
	entries := make([]StockEntry, len(req.Stock))
	copy(entries, req.Stock)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Denomination > entries[j].Denomination })
	for _, e := range entries {
		fmt.Fprintf(&b, "|%d=%d", e.Denomination, e.Count)
	}
	return b.String()
}
