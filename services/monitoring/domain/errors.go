package domain

import "errors"

// Sentinel errors for the monitoring service. Callers match them with
// errors.Is after any amount of %w wrapping.
var (
	ErrSegmentNotFound = errors.New("road segment not found")
	ErrReadingNotFound = errors.New("speed reading not found")

	// ErrSourceUnavailable aborts an import run when the source itself
	// cannot be opened or read. Row-level problems never carry it.
	ErrSourceUnavailable = errors.New("import source unavailable")
)
