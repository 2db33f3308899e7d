package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Wrapped with fmt.Errorf("...: %w") by the layers above.

var (
	// Configuration errors
	ErrInvalidDigitRange = errors.New("invalid digit range: need 1 <= digits_min <= digits_max <= 9")
	ErrInvalidLayout     = errors.New("invalid layout: padding and tasks per row must not be negative")

	// Worksheet errors
	ErrInvalidWorksheetCount = errors.New("worksheet count must be at least 1")
	ErrUnknownTaskType       = errors.New("unknown task type")
	ErrNoTaskTypes           = errors.New("at least one task type is required")
	ErrEmptyFilename         = errors.New("output filename is empty")

	// History errors
	ErrRunNotFound = errors.New("generation run not found")
)
