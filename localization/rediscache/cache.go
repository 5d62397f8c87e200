// Package rediscache provides a localization.Translator decorator that keeps translations in Redis.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"github.com/AntonStoeckl/library-coursework/localization"
)

const (
	defaultTTL    = 30 * 24 * time.Hour
	defaultPrefix = "translation"

	logMsgCacheReadFailed  = "translation cache read failed, calling translator"
	logMsgCacheWriteFailed = "translation cache write failed"
	logMsgCacheBadEntry    = "translation cache entry unreadable, calling translator"
	logMsgCacheHit         = "translation cache hit"
	logAttrKey             = "cache_key"
	logAttrLocale          = "locale"
	logAttrError           = "error"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrMissingAddr is returned by Dial when no Redis address is given.
var ErrMissingAddr = errors.New("redis cache: address is required")

// Entry is the JSON document stored per cached translation.
type Entry struct {
	Text     string    `json:"text"`
	Locale   string    `json:"locale"`
	CachedAt time.Time `json:"cached_at"`
}

// Translator answers from Redis when it can and asks the inner translator otherwise.
type Translator struct {
	client *redis.Client
	inner  localization.Translator
	ttl    time.Duration
	prefix string
	logger localization.Logger
	now    func() time.Time
}

// Option defines a functional option for configuring Translator.
type Option func(*Translator)

// WithTTL sets how long entries live. Non-positive values keep the default.
func WithTTL(ttl time.Duration) Option {
	return func(t *Translator) {
		if ttl > 0 {
			t.ttl = ttl
		}
	}
}

// WithPrefix sets the key prefix. An empty prefix keeps the default.
func WithPrefix(prefix string) Option {
	return func(t *Translator) {
		if prefix != "" {
			t.prefix = prefix
		}
	}
}

// WithLogger sets the logger for cache failures and hits.
func WithLogger(logger localization.Logger) Option {
	return func(t *Translator) {
		t.logger = logger
	}
}

// WithClock replaces the time source used for the cached_at field.
func WithClock(now func() time.Time) Option {
	return func(t *Translator) {
		t.now = now
	}
}

// New wraps inner with a cache living in client.
func New(client *redis.Client, inner localization.Translator, options ...Option) *Translator {
	t := &Translator{
		client: client,
		inner:  inner,
		ttl:    defaultTTL,
		prefix: defaultPrefix,
		now:    time.Now,
	}

	for _, option := range options {
		option(t)
	}

	return t
}

// Dial creates a Redis client for addr and wraps inner with it.
func Dial(addr, password string, db int, inner localization.Translator, options ...Option) (*Translator, error) {
	if addr == "" {
		return nil, ErrMissingAddr
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return New(client, inner, options...), nil
}

// Key returns the Redis key under which the translation of text into locale is stored.
func (t *Translator) Key(text, locale string) string {
	return fmt.Sprintf("%s:%s:%s", t.prefix, locale, uuid.NewSHA1(uuid.NameSpaceOID, []byte(text)))
}

// Translate implements localization.Translator.
func (t *Translator) Translate(ctx context.Context, text, targetLocale string) (string, error) {
	key := t.Key(text, targetLocale)

	if cached, ok := t.lookup(ctx, key, targetLocale); ok {
		return cached, nil
	}

	translated, err := t.inner.Translate(ctx, text, targetLocale)
	if err != nil {
		return "", err
	}

	t.store(ctx, key, translated, targetLocale)

	return translated, nil
}

// Close closes the underlying Redis client.
func (t *Translator) Close() error {
	if t == nil || t.client == nil {
		return nil
	}

	return t.client.Close()
}

func (t *Translator) lookup(ctx context.Context, key, locale string) (string, bool) {
	raw, err := t.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return "", false
	}

	if err != nil {
		t.warn(logMsgCacheReadFailed, key, locale, err)
		return "", false
	}

	var entry Entry
	if err = json.Unmarshal(raw, &entry); err != nil || entry.Text == "" {
		if err == nil {
			err = localization.ErrEmptyTranslation
		}
		t.warn(logMsgCacheBadEntry, key, locale, err)

		return "", false
	}

	if t.logger != nil {
		t.logger.Debug(logMsgCacheHit, logAttrKey, key, logAttrLocale, locale)
	}

	return entry.Text, true
}

func (t *Translator) store(ctx context.Context, key, text, locale string) {
	payload, err := json.Marshal(Entry{Text: text, Locale: locale, CachedAt: t.now().UTC()})
	if err != nil {
		t.warn(logMsgCacheWriteFailed, key, locale, err)
		return
	}

	if err = t.client.Set(ctx, key, payload, t.ttl).Err(); err != nil {
		t.warn(logMsgCacheWriteFailed, key, locale, err)
	}
}

func (t *Translator) warn(msg, key, locale string, err error) {
	if t.logger == nil {
		return
	}

	t.logger.Warn(msg, logAttrKey, key, logAttrLocale, locale, logAttrError, err.Error())
}
