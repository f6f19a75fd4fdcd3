package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Endpoint errors
	ErrEndpointNotFound = errors.New("endpoint not found")
	ErrEndpointGone     = errors.New("endpoint expired or quota exhausted")
	ErrInvalidQuota     = errors.New("invalid max requests")
	ErrInvalidRetention = errors.New("invalid retention days")
	ErrInvalidExpiry    = errors.New("expiry must be in the future")

	// Captured request errors
	ErrRequestNotFound = errors.New("captured request not found")

	// Export errors
	ErrInvalidExportFormat = errors.New("unsupported export format")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
