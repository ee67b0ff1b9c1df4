package domain

import "errors"

var (
	// ErrFetchFailed signals that every fetch strategy was exhausted. The
	// pipeline recovers by substituting the static seed document.
	ErrFetchFailed = errors.New("content fetch failed")

	// ErrEmptyDocument signals that extracted content fell below the minimum
	// length threshold. Treated exactly like a fetch failure.
	ErrEmptyDocument = errors.New("document body below minimum length")

	// ErrSynthesis signals a missing or malformed dimension result. Fatal for
	// the current analysis; callers emit an ErrorReport instead of a Report.
	ErrSynthesis = errors.New("dimension results incomplete")
)
