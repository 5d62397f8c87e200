package pythagoras

import "errors"

var (
	// ErrInvalidInput is the umbrella error for every input line that is not exactly three integers.
	ErrInvalidInput = errors.New("expected three integers separated by spaces")

	// ErrWrongTokenCount is returned when the line does not contain exactly three tokens.
	ErrWrongTokenCount = errors.New("wrong number of values")

	// ErrNotAnInteger is returned when a token is not a base-10 integer within the int64 range.
	ErrNotAnInteger = errors.New("value is not an integer")
)
