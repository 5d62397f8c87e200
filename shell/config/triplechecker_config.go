package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	envTripleLocale     = "TRIPLE_LOCALE"
	envTranslator       = "TRANSLATOR"
	envOpenAIAPIKey     = "OPENAI_API_KEY"
	envOpenAIBaseURL    = "OPENAI_BASE_URL"
	envOpenAIModel      = "OPENAI_MODEL"
	envOpenAITimeout    = "OPENAI_TIMEOUT"
	envRedisAddr        = "REDIS_ADDR"
	envRedisPassword    = "REDIS_PASSWORD"
	envRedisDB          = "REDIS_DB"
	envRedisTTL         = "REDIS_TTL"
	envRedisPrefix      = "REDIS_PREFIX"
	defaultTripleLocale = "tr"
	defaultOpenAIModel  = "gpt-4o-mini"
	defaultOpenAITime   = 30 * time.Second
	defaultRedisTTL     = 30 * 24 * time.Hour
	defaultRedisPrefix  = "translation"

	// TranslatorOpenAI selects the chat-completion translator.
	TranslatorOpenAI = "openai"

	// TranslatorNone keeps the English source texts.
	TranslatorNone = "none"
)

// ErrUnknownTranslator is returned for a TRANSLATOR value other than "openai" or "none".
var ErrUnknownTranslator = errors.New("unknown translator")

// OpenAIConfig holds the settings of the chat-completion translation backend.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// RedisConfig holds the settings of the translation cache. An empty Addr disables the cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
	Prefix   string
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// TripleCheckerConfig is the configuration of the triple checker console program.
type TripleCheckerConfig struct {
	Locale     string
	Translator string
	OpenAI     OpenAIConfig
	Redis      RedisConfig
}

// TripleCheckerFromEnv reads the triple checker configuration.
// TRANSLATOR defaults to "openai" when OPENAI_API_KEY is set and to "none" otherwise.
func TripleCheckerFromEnv() (TripleCheckerConfig, error) {
	openAITimeout, err := durationFromEnv(envOpenAITimeout, defaultOpenAITime)
	if err != nil {
		return TripleCheckerConfig{}, err
	}

	redisDB, err := intFromEnv(envRedisDB, 0)
	if err != nil {
		return TripleCheckerConfig{}, err
	}

	redisTTL, err := durationFromEnv(envRedisTTL, defaultRedisTTL)
	if err != nil {
		return TripleCheckerConfig{}, err
	}

	apiKey := stringFromEnv(envOpenAIAPIKey, "")

	defaultTranslator := TranslatorNone
	if apiKey != "" {
		defaultTranslator = TranslatorOpenAI
	}

	translator := strings.ToLower(stringFromEnv(envTranslator, defaultTranslator))
	if translator != TranslatorOpenAI && translator != TranslatorNone {
		return TripleCheckerConfig{}, errors.Join(ErrUnknownTranslator, fmt.Errorf("%s=%q", envTranslator, translator))
	}

	return TripleCheckerConfig{
		Locale:     strings.ToLower(stringFromEnv(envTripleLocale, defaultTripleLocale)),
		Translator: translator,
		OpenAI: OpenAIConfig{
			APIKey:  apiKey,
			BaseURL: stringFromEnv(envOpenAIBaseURL, ""),
			Model:   stringFromEnv(envOpenAIModel, defaultOpenAIModel),
			Timeout: openAITimeout,
		},
		Redis: RedisConfig{
			Addr:     stringFromEnv(envRedisAddr, ""),
			Password: stringFromEnv(envRedisPassword, ""),
			DB:       redisDB,
			TTL:      redisTTL,
			Prefix:   stringFromEnv(envRedisPrefix, defaultRedisPrefix),
		},
	}, nil
}
