package localization

// Message keys of the triple checker interface.
const (
	KeyTitle        = "title"
	KeyEnterNumbers = "enter_numbers"
	KeyNumbers      = "numbers"
	KeyAreTriple    = "are_triple"
	KeyAreNotTriple = "are_not_triple"
	KeyBecause      = "because"
	KeyResultIs     = "result_is"
	KeyErrorValue   = "error_value"
	KeyErrorGeneral = "error_general"
)

// SourceLocale is the language of the source texts. Localizing into it needs no translation.
const SourceLocale = "en"

var orderedKeys = []string{
	KeyTitle,
	KeyEnterNumbers,
	KeyNumbers,
	KeyAreTriple,
	KeyAreNotTriple,
	KeyBecause,
	KeyResultIs,
	KeyErrorValue,
	KeyErrorGeneral,
}

var sourceTexts = map[string]string{
	KeyTitle:        "Interface language",
	KeyEnterNumbers: "Enter three integers a, b, c: ",
	KeyNumbers:      "Numbers",
	KeyAreTriple:    "are a Pythagorean triple",
	KeyAreNotTriple: "are not a Pythagorean triple",
	KeyBecause:      "Because",
	KeyResultIs:     "The result is",
	KeyErrorValue:   "Error: Please enter three integers separated by spaces.",
	KeyErrorGeneral: "An error occurred",
}

// Keys returns the message keys in the order they are translated.
func Keys() []string {
	keys := make([]string, len(orderedKeys))
	copy(keys, orderedKeys)

	return keys
}

// SourceText returns the English text for key, or an empty string for an unknown key.
func SourceText(key string) string {
	return sourceTexts[key]
}

// Texts maps message keys to localized strings.
type Texts map[string]string

// SourceTexts returns a fresh copy of the English texts.
func SourceTexts() Texts {
	texts := make(Texts, len(sourceTexts))
	for key, text := range sourceTexts {
		texts[key] = text
	}

	return texts
}

// Text returns the localized text for key.
// Missing keys fall back to the English source, unknown keys to the key itself.
func (t Texts) Text(key string) string {
	if text, ok := t[key]; ok && text != "" {
		return text
	}

	if text, ok := sourceTexts[key]; ok {
		return text
	}

	return key
}
