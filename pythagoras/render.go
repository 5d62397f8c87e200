package pythagoras

import "fmt"

// Keys of the localized texts used by Render. They must stay equal to the keys in package localization.
const (
	KeyNumbers      = "numbers"
	KeyAreTriple    = "are_triple"
	KeyAreNotTriple = "are_not_triple"
	KeyBecause      = "because"
)

// Texts looks up localized texts by key.
type Texts interface {
	Text(key string) string
}

// Decorations wraps parts of the rendered sentence, e.g. with terminal colors.
// Nil functions leave their part untouched.
type Decorations struct {
	Numbers func(string) string
	Verdict func(string) string
}

func (d Decorations) numbers(s string) string {
	if d.Numbers == nil {
		return s
	}
	return d.Numbers(s)
}

func (d Decorations) verdict(s string) string {
	if d.Verdict == nil {
		return s
	}
	return d.Verdict(s)
}

// Render builds the verdict sentence for the given triple and its classification result.
//
//	Numbers 3, 4, 5, are a Pythagorean triple. Because 3²+4²=5² (25=25).
//	Numbers 1, 2, 3, are not a Pythagorean triple.
func Render(t Triple, r Result, texts Texts) string {
	return RenderDecorated(t, r, texts, Decorations{})
}

// RenderDecorated is Render with the numbers and the verdict passed through deco.
func RenderDecorated(t Triple, r Result, texts Texts, deco Decorations) string {
	numbers := deco.numbers(t.String())

	if !r.IsTriple {
		return fmt.Sprintf("%s %s, %s.", texts.Text(KeyNumbers), numbers, deco.verdict(texts.Text(KeyAreNotTriple)))
	}

	return fmt.Sprintf(
		"%s %s, %s. %s %s (%s=%s).",
		texts.Text(KeyNumbers), numbers, deco.verdict(texts.Text(KeyAreTriple)),
		texts.Text(KeyBecause), r.Equation, r.Sum.String(), r.Square.String(),
	)
}
