package analysis

import "errors"

var (
	// ErrNoResume is returned when an operation needs a resume but the
	// session has none.
	ErrNoResume = errors.New("no resume in session")

	// ErrInvalidInput flags validation failures in incoming payloads.
	ErrInvalidInput = errors.New("invalid input")
)
