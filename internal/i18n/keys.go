// Package i18n provides internationalization support for the cash packing service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates invalid login credentials.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyValidationAmount indicates invalid amount validation.
	ErrKeyValidationAmount = "error.validation.amount"
	// ErrKeyValidationStock indicates invalid stock validation.
	ErrKeyValidationStock = "error.validation.stock"
	// ErrKeyUnknownCurrency indicates an unsupported currency code.
	ErrKeyUnknownCurrency = "error.unknown_currency"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Outcome message translation keys.
const (
	// ResultKeyInfeasible indicates the amount cannot be packaged with the given stock.
	ResultKeyInfeasible = "result.infeasible"
	// ResultKeyBudgetExceeded indicates the search ended before exhausting the space.
	ResultKeyBudgetExceeded = "result.budget_exceeded"
	// SuccessKeyOptimized indicates successful variant computation.
	SuccessKeyOptimized = "success.optimized"
	// SuccessKeyStockUpdated indicates successful stock update.
	SuccessKeyStockUpdated = "success.stock_updated"
)
