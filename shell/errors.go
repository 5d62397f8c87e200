package shell

import "errors"

var (
	// ErrConnectionFailed is returned when a connection could not be established within the retry budget.
	ErrConnectionFailed = errors.New("could not establish connection after retries")

	// ErrInvalidMaxAttempts is returned when max attempts are not positive.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")

	// ErrNegativeDelay is returned when the retry delay is negative.
	ErrNegativeDelay = errors.New("retry delay must not be negative")
)
