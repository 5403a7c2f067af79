package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrRecalculationRunning indicates a period recalculation is already in progress
// and the new request was rejected rather than queued.
var ErrRecalculationRunning = errors.New("period recalculation already in progress")
