package rediscache_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-coursework/localization"
	"github.com/AntonStoeckl/library-coursework/localization/rediscache"
	"github.com/AntonStoeckl/library-coursework/testutil/helper"
)

type countingTranslator struct {
	calls  int
	answer string
	err    error
}

func (c *countingTranslator) Translate(_ context.Context, text, _ string) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}

	return c.answer + ":" + text, nil
}

func newCache(t *testing.T, inner localization.Translator, options ...rediscache.Option) (*rediscache.Translator, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	cache := rediscache.New(client, inner, options...)

	t.Cleanup(func() {
		_ = cache.Close()
	})

	return cache, server
}

func Test_Translate_MissCallsInnerAndStoresEntry(t *testing.T) {
	// setup
	inner := &countingTranslator{answer: "tr"}
	fixedNow := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cache, server := newCache(t, inner, rediscache.WithClock(func() time.Time { return fixedNow }))

	// act
	translated, err := cache.Translate(context.Background(), "Numbers", "tr")

	// assert
	require.NoError(t, err)
	assert.Equal(t, "tr:Numbers", translated)
	assert.Equal(t, 1, inner.calls)

	raw, err := server.Get(cache.Key("Numbers", "tr"))
	require.NoError(t, err)

	var entry rediscache.Entry
	require.NoError(t, jsoniter.Unmarshal([]byte(raw), &entry))
	assert.Equal(t, "tr:Numbers", entry.Text)
	assert.Equal(t, "tr", entry.Locale)
	assert.True(t, fixedNow.Equal(entry.CachedAt))
	assert.Equal(t, 30*24*time.Hour, server.TTL(cache.Key("Numbers", "tr")))
}

func Test_Translate_HitSkipsInner(t *testing.T) {
	// setup
	inner := &countingTranslator{answer: "tr"}
	cache, _ := newCache(t, inner)
	ctx := context.Background()

	// arrange
	_, err := cache.Translate(ctx, "Because", "tr")
	require.NoError(t, err)

	// act
	translated, err := cache.Translate(ctx, "Because", "tr")

	// assert
	require.NoError(t, err)
	assert.Equal(t, "tr:Because", translated)
	assert.Equal(t, 1, inner.calls)
}

func Test_Translate_InnerErrorIsNotCached(t *testing.T) {
	inner := &countingTranslator{err: errors.New("quota exceeded")}
	cache, server := newCache(t, inner)

	_, err := cache.Translate(context.Background(), "Numbers", "de")

	assert.Error(t, err)
	assert.False(t, server.Exists(cache.Key("Numbers", "de")))
}

func Test_Translate_RedisFailureFallsBackToInner(t *testing.T) {
	// setup
	logHandler := helper.NewTestLogHandler(false)
	inner := &countingTranslator{answer: "uk"}
	cache, server := newCache(t, inner, rediscache.WithLogger(slog.New(logHandler)))

	// arrange
	server.SetError("READONLY")

	// act
	translated, err := cache.Translate(context.Background(), "Numbers", "uk")

	// assert
	require.NoError(t, err)
	assert.Equal(t, "uk:Numbers", translated)
	assert.Equal(t, 1, inner.calls)
	assert.Len(t, logHandler.RecordsAtLevel(slog.LevelWarn), 2)
}

func Test_Translate_CorruptEntryIsReplaced(t *testing.T) {
	// setup
	inner := &countingTranslator{answer: "fr"}
	cache, server := newCache(t, inner)
	key := cache.Key("Numbers", "fr")

	// arrange
	require.NoError(t, server.Set(key, "{not json"))

	// act
	translated, err := cache.Translate(context.Background(), "Numbers", "fr")

	// assert
	require.NoError(t, err)
	assert.Equal(t, "fr:Numbers", translated)
	raw, err := server.Get(key)
	require.NoError(t, err)
	assert.Contains(t, raw, `"text":"fr:Numbers"`)
}

func Test_Key_UsesPrefixLocaleAndStableHash(t *testing.T) {
	cache := rediscache.New(nil, localization.IdentityTranslator{}, rediscache.WithPrefix("i18n"))

	key := cache.Key("Numbers", "tr")

	assert.True(t, strings.HasPrefix(key, "i18n:tr:"))
	assert.Equal(t, key, cache.Key("Numbers", "tr"))
	assert.NotEqual(t, key, cache.Key("Numbers", "uk"))
	assert.NotEqual(t, key, cache.Key("Because", "tr"))
}

func Test_WithTTL_IsApplied(t *testing.T) {
	cache, server := newCache(t, localization.IdentityTranslator{}, rediscache.WithTTL(time.Hour))

	_, err := cache.Translate(context.Background(), "Numbers", "tr")

	require.NoError(t, err)
	assert.Equal(t, time.Hour, server.TTL(cache.Key("Numbers", "tr")))
}

func Test_Dial_RequiresAddress(t *testing.T) {
	_, err := rediscache.Dial("", "", 0, localization.IdentityTranslator{})

	assert.ErrorIs(t, err, rediscache.ErrMissingAddr)
}
