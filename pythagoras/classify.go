package pythagoras

import (
	"fmt"
	"math/big"
	"slices"
)

// Result is the outcome of Classify.
// Equation, Sum and Square are only set when IsTriple is true.
type Result struct {
	IsTriple bool
	Equation string
	Sum      *big.Int
	Square   *big.Int
}

// Classify reports whether a, b and c form a Pythagorean triple in any order.
//
// The values are sorted to (x, y, z) with x ≤ y ≤ z and checked against x² + y² = z².
// When they do, the equation is written with the original values, and the one equal to z goes
// to the right-hand side. a is checked first, then b, otherwise c is used.
func Classify(a, b, c int64) Result {
	sorted := []int64{a, b, c}
	slices.Sort(sorted)
	x, y, z := sorted[0], sorted[1], sorted[2]

	sum := new(big.Int).Add(square(x), square(y))
	zSquared := square(z)

	if sum.Cmp(zSquared) != 0 {
		return Result{}
	}

	return Result{
		IsTriple: true,
		Equation: equation(a, b, c, z),
		Sum:      sum,
		Square:   zSquared,
	}
}

func square(v int64) *big.Int {
	n := big.NewInt(v)
	return n.Mul(n, n)
}

func equation(a, b, c, z int64) string {
	switch z {
	case a:
		return fmt.Sprintf("%d²+%d²=%d²", b, c, a)
	case b:
		return fmt.Sprintf("%d²+%d²=%d²", a, c, b)
	default:
		return fmt.Sprintf("%d²+%d²=%d²", a, b, c)
	}
}
