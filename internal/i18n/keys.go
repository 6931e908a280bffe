package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyForbidden          = "error.forbidden"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyInvalidToken       = "error.invalid_token"
	ErrKeyTokenRequired      = "error.token_required"
	ErrKeyTimeout            = "error.timeout"

	// ErrKeyUnknownProduct is used when a product id is not in the catalog.
	ErrKeyUnknownProduct = "error.unknown_product"
	// ErrKeyDuplicateProduct is used when a catalog repeats a product id.
	ErrKeyDuplicateProduct = "error.duplicate_product"
	// ErrKeyInvalidQuantity is used for non-positive quantities.
	ErrKeyInvalidQuantity = "error.invalid_quantity"
	// ErrKeyInvalidMass is used for non-positive unit masses.
	ErrKeyInvalidMass = "error.invalid_mass"
	// ErrKeyEmptyOrder is used for orders without lines.
	ErrKeyEmptyOrder = "error.empty_order"
	// ErrKeyCatalogLoaded is used when the catalog is loaded twice.
	ErrKeyCatalogLoaded = "error.catalog_already_loaded"
	// ErrKeyCatalogNotLoaded is used when stock or orders arrive before the catalog.
	ErrKeyCatalogNotLoaded = "error.catalog_not_loaded"
	// ErrKeyLedgerUnavailable is used when shipment history needs MongoDB.
	ErrKeyLedgerUnavailable = "error.ledger_unavailable"
	// ErrKeyLogsUnavailable is used when the operations log needs MongoDB.
	ErrKeyLogsUnavailable = "error.logs_unavailable"
	// ErrKeyIdempotencyInFlight is used when the same Idempotency-Key is still being processed.
	ErrKeyIdempotencyInFlight = "error.idempotency_in_flight"
	// ErrKeyIdempotencyMismatch is used when an Idempotency-Key is reused with another body.
	ErrKeyIdempotencyMismatch = "error.idempotency_mismatch"
)

// Success message translation keys.
const (
	SuccessKeyCatalogLoaded  = "success.catalog_loaded"
	SuccessKeyRestocked      = "success.restocked"
	SuccessKeyOrderProcessed = "success.order_processed"
	SuccessKeyTokenIssued    = "success.token_issued"
)
