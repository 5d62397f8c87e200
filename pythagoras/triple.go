package pythagoras

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const expectedTokenCount = 3

// Triple holds three integers in the order they were entered.
type Triple struct {
	A int64
	B int64
	C int64
}

// String renders the values in their original order, comma separated.
func (t Triple) String() string {
	return fmt.Sprintf("%d, %d, %d", t.A, t.B, t.C)
}

// ParseInput parses exactly three whitespace-separated integers from one line of input.
func ParseInput(line string) (Triple, error) {
	tokens := strings.Fields(line)
	if len(tokens) != expectedTokenCount {
		return Triple{}, errors.Join(
			ErrInvalidInput,
			fmt.Errorf("%w: got %d, want %d", ErrWrongTokenCount, len(tokens), expectedTokenCount),
		)
	}

	values := make([]int64, 0, expectedTokenCount)
	for _, token := range tokens {
		value, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return Triple{}, errors.Join(ErrInvalidInput, fmt.Errorf("%w: %q", ErrNotAnInteger, token))
		}

		values = append(values, value)
	}

	return Triple{A: values[0], B: values[1], C: values[2]}, nil
}
