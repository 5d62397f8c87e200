package localization

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LanguageName returns the English display name of a locale code, e.g. "Turkish" for "tr".
// Codes that cannot be parsed or have no known name render as "Unknown (<code>)".
func LanguageName(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return unknownLanguage(locale)
	}

	name := display.English.Languages().Name(tag)
	if name == "" {
		return unknownLanguage(locale)
	}

	return name
}

func unknownLanguage(locale string) string {
	return fmt.Sprintf("Unknown (%s)", strings.TrimSpace(locale))
}
