// Package pythagoras decides whether three integers form a Pythagorean triple and renders the verdict.
//
// The three operations are pure:
//   - ParseInput turns one line of console input into a Triple
//   - Classify sorts the values and checks x² + y² = z²
//   - Render assembles the sentence shown to the user, using localized texts
//
// Usage:
//
//	triple, err := pythagoras.ParseInput("3 4 5")
//	if err != nil {
//		// errors.Is(err, pythagoras.ErrInvalidInput)
//	}
//
//	result := pythagoras.Classify(triple.A, triple.B, triple.C)
//	fmt.Println(pythagoras.Render(triple, result, texts))
//
// Classification only depends on the multiset of the three values. Zero and negative values go
// through the same formula, so (0, 0, 0) and (-3, 4, 5) are triples. Squares are computed with
// math/big, so no int64 input overflows.
package pythagoras
