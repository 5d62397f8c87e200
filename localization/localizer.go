package localization

import (
	"context"
	"errors"
	"strings"
)

const (
	logMsgTranslationFailed = "translation warning, using source text"
	logMsgTranslationEmpty  = "translation warning, empty result, using source text"
	logMsgLocalized         = "interface texts localized"
	logMsgNoBackend         = "no translation backend configured, using source texts"
	logAttrKey              = "key"
	logAttrLocale           = "locale"
	logAttrError            = "error"
	logAttrFallbacks        = "fallbacks"
)

// ErrEmptyTranslation is returned by translators that received an empty result.
var ErrEmptyTranslation = errors.New("translation result is empty")

// Logger interface for translation warnings and summaries.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Translator translates one text from English into the target locale.
type Translator interface {
	Translate(ctx context.Context, text, targetLocale string) (string, error)
}

// TranslatorFunc adapts a plain function to the Translator interface.
type TranslatorFunc func(ctx context.Context, text, targetLocale string) (string, error)

// Translate calls f.
func (f TranslatorFunc) Translate(ctx context.Context, text, targetLocale string) (string, error) {
	return f(ctx, text, targetLocale)
}

// IdentityTranslator returns every text unchanged. It is used when no translation backend is configured.
type IdentityTranslator struct{}

// Translate returns text as is.
func (IdentityTranslator) Translate(_ context.Context, text, _ string) (string, error) {
	return text, nil
}

// Localizer builds localized Texts by translating the source texts key by key.
type Localizer struct {
	translator Translator
	logger     Logger
}

// Option defines a functional option for configuring Localizer.
type Option func(*Localizer)

// WithLogger sets the logger that receives translation warnings.
func WithLogger(logger Logger) Option {
	return func(l *Localizer) {
		l.logger = logger
	}
}

// NewLocalizer creates a Localizer. A nil translator behaves like IdentityTranslator.
func NewLocalizer(translator Translator, options ...Option) Localizer {
	if translator == nil {
		translator = IdentityTranslator{}
	}

	l := Localizer{translator: translator}

	for _, option := range options {
		option(&l)
	}

	return l
}

// Localize returns the texts for locale. Keys are translated sequentially in the order of Keys.
// A key whose translation fails or comes back empty keeps its English source text.
// For the source locale no translation is requested at all.
// Without a translation backend every other locale gets the source texts and one warning.
func (l Localizer) Localize(ctx context.Context, locale string) Texts {
	locale = strings.ToLower(strings.TrimSpace(locale))

	if locale == "" || locale == SourceLocale {
		return SourceTexts()
	}

	if _, ok := l.translator.(IdentityTranslator); ok {
		l.warn(logMsgNoBackend, logAttrLocale, locale)
		return SourceTexts()
	}

	texts := make(Texts, len(orderedKeys))
	fallbacks := 0

	for _, key := range orderedKeys {
		source := sourceTexts[key]

		translated, err := l.translator.Translate(ctx, source, locale)
		switch {
		case err != nil:
			l.warn(logMsgTranslationFailed, logAttrKey, key, logAttrLocale, locale, logAttrError, err.Error())
			translated = source
			fallbacks++

		case strings.TrimSpace(translated) == "":
			l.warn(logMsgTranslationEmpty, logAttrKey, key, logAttrLocale, locale)
			translated = source
			fallbacks++
		}

		texts[key] = preserveTrailingSpace(source, translated)
	}

	if l.logger != nil {
		l.logger.Debug(logMsgLocalized, logAttrLocale, locale, logAttrFallbacks, fallbacks)
	}

	return texts
}

func (l Localizer) warn(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Warn(msg, args...)
	}
}

// preserveTrailingSpace keeps the prompt separator of the source text, which translators tend to drop.
func preserveTrailingSpace(source, translated string) string {
	if strings.HasSuffix(source, " ") && !strings.HasSuffix(translated, " ") {
		return translated + " "
	}

	return translated
}
