// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// OptimizeRequest represents the JSON request body for the cash optimization endpoint.
//
// The Amount field is required and must be a non-negative integer in the
// smallest currency unit. Stock is optional and maps denomination values to
// available counts; denominations absent from the map are unlimited.
//
// @Description Request to compute optimal cash packing variants for an amount
// @Example {"amount": 750000, "currency": "USD"}
// @Example {"amount": 750000, "currency": "USD", "stock": {"100": 40, "50": 20}, "stock_unit": "bundles", "max_variants": 5}
type OptimizeRequest struct {
	// Amount is the cash amount to package, in whole currency units.
	Amount int64 `json:"amount" binding:"gte=0" example:"750000" minimum:"0"`
	// Currency is the ISO-style currency code identifying the denomination profile.
	Currency string `json:"currency" binding:"required" example:"USD"`
	// Stock maps denomination values to available counts.
	// Denominations not listed are treated as unlimited.
	Stock map[string]int64 `json:"stock,omitempty" swaggertype:"object"`
	// StockUnit says whether stock counts are bundles or individual bills.
	// Defaults to "bundles".
	StockUnit string `json:"stock_unit,omitempty" example:"bundles" enums:"bundles,bills"`
	// MaxVariants caps how many ranked variants are returned.
	// Defaults to 5, maximum 100.
	MaxVariants int `json:"max_variants,omitempty" example:"5" minimum:"1" maximum:"100"`
	// BudgetMs optionally tightens the search deadline in milliseconds.
	// Cannot exceed the server-configured deadline.
	BudgetMs int64 `json:"budget_ms,omitempty" example:"200" minimum:"1"`
} // @name OptimizeRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidAmount is returned when amount is negative.
	ErrInvalidAmount = &ValidationError{
		Field:   "amount",
		Message: "must be a non-negative integer",
	}
	// ErrInvalidCurrency is returned when currency is empty.
	ErrInvalidCurrency = &ValidationError{
		Field:   "currency",
		Message: "is required",
	}
	// ErrInvalidStockUnit is returned when stock_unit is not a known unit.
	ErrInvalidStockUnit = &ValidationError{
		Field:   "stock_unit",
		Message: "must be \"bundles\" or \"bills\"",
	}
	// ErrInvalidMaxVariants is returned when max_variants is out of range.
	ErrInvalidMaxVariants = &ValidationError{
		Field:   "max_variants",
		Message: "must be between 1 and 100",
	}
	// ErrInvalidBudget is returned when budget_ms is negative.
	ErrInvalidBudget = &ValidationError{
		Field:   "budget_ms",
		Message: "must be a positive number of milliseconds",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *OptimizeRequest) Validate() error {
	if r.Amount < 0 {
		return ErrInvalidAmount
	}
	if r.Currency == "" {
		return ErrInvalidCurrency
	}
	if r.StockUnit != "" && r.StockUnit != "bundles" && r.StockUnit != "bills" {
		return ErrInvalidStockUnit
	}
	if r.MaxVariants < 0 || r.MaxVariants > 100 {
		return ErrInvalidMaxVariants
	}
	if r.BudgetMs < 0 {
		return ErrInvalidBudget
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// UpdateStockRequest represents the JSON request body for updating stock levels.
type UpdateStockRequest struct {
	// Levels maps denomination values to available counts.
	Levels map[string]int64 `json:"levels" binding:"required" swaggertype:"object"`
	// Unit says whether the counts are bundles or individual bills.
	Unit string `json:"unit,omitempty" example:"bundles" enums:"bundles,bills"`
	// CreatedBy is the identifier of who created this configuration.
	CreatedBy string `json:"created_by,omitempty"`
} // @name UpdateStockRequest

// Validate performs custom validation on the stock update request.
func (r *UpdateStockRequest) Validate() error {
	if len(r.Levels) == 0 {
		return &ValidationError{Field: "levels", Message: "must contain at least one denomination"}
	}
	if r.Unit != "" && r.Unit != "bundles" && r.Unit != "bills" {
		return &ValidationError{Field: "unit", Message: "must be \"bundles\" or \"bills\""}
	}
	for _, count := range r.Levels {
		if count < 0 {
			return &ValidationError{Field: "levels", Message: "counts must be non-negative"}
		}
	}
	return nil
}
