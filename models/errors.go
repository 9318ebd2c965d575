package models

import "errors"

// Error taxonomy for the whole service. Repositories and services wrap one of
// these sentinels; the handler boundary maps them to HTTP statuses.
var (
	ErrValidation     = errors.New("validation failed")
	ErrAuthentication = errors.New("authentication required")
	ErrForbidden      = errors.New("insufficient permissions")
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("resource conflict")
	ErrStorage        = errors.New("storage failure")
)
