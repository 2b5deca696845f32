package ports

import "errors"

// Standard application-level errors.
// Adapters wrap parse and I/O failures with these so callers can map them.
var (
	ErrInvalidRequest     = errors.New("invalid request parameters or format")
	ErrUnknownRiskMode    = errors.New("unknown risk mode")
	ErrConfigurationError = errors.New("invalid or missing configuration")
	ErrExportFailed       = errors.New("failed to export calculation")
)
