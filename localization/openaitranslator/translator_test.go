package openaitranslator_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-coursework/localization"
	"github.com/AntonStoeckl/library-coursework/localization/openaitranslator"
)

func chatServer(t *testing.T, answer string, captured *openai.ChatCompletionRequest) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}

		if captured != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 0,
			"model":   "test-model",
			"choices": []map[string]any{
				{
					"index":         0,
					"message":       map[string]any{"role": "assistant", "content": answer},
					"finish_reason": "stop",
				},
			},
		})
	}))

	t.Cleanup(server.Close)

	return server
}

func Test_New_RequiresAPIKey(t *testing.T) {
	_, err := openaitranslator.New(openaitranslator.Config{APIKey: "  "})

	assert.ErrorIs(t, err, openaitranslator.ErrMissingAPIKey)
}

func Test_Translate_SendsSystemAndUserMessages(t *testing.T) {
	// arrange
	var captured openai.ChatCompletionRequest
	server := chatServer(t, "  Sayılar \n", &captured)

	translator, err := openaitranslator.New(openaitranslator.Config{
		APIKey:  "sk-test",
		BaseURL: server.URL + "/v1",
		Model:   "test-model",
	})
	require.NoError(t, err)

	// act
	translated, err := translator.Translate(context.Background(), "Numbers", "tr")

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Sayılar", translated)
	assert.Equal(t, "test-model", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[0].Content, "Turkish")
	assert.Equal(t, openai.ChatMessageRoleUser, captured.Messages[1].Role)
	assert.Equal(t, "Numbers", captured.Messages[1].Content)
}

func Test_Translate_EmptyAnswerIsAnError(t *testing.T) {
	server := chatServer(t, "   ", nil)

	translator, err := openaitranslator.New(openaitranslator.Config{APIKey: "sk-test", BaseURL: server.URL + "/v1"})
	require.NoError(t, err)

	_, err = translator.Translate(context.Background(), "Numbers", "tr")

	assert.ErrorIs(t, err, localization.ErrEmptyTranslation)
}

func Test_Translate_ServerErrorIsReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}))
	t.Cleanup(server.Close)

	translator, err := openaitranslator.New(openaitranslator.Config{APIKey: "sk-test", BaseURL: server.URL + "/v1"})
	require.NoError(t, err)

	_, err = translator.Translate(context.Background(), "Numbers", "tr")

	assert.Error(t, err)
}

func Test_Translator_PlugsIntoLocalizer(t *testing.T) {
	server := chatServer(t, "Çeviri", nil)

	translator, err := openaitranslator.New(openaitranslator.Config{APIKey: "sk-test", BaseURL: server.URL + "/v1"})
	require.NoError(t, err)

	texts := localization.NewLocalizer(translator).Localize(context.Background(), "tr")

	assert.Equal(t, "Çeviri", texts.Text(localization.KeyBecause))
	assert.Equal(t, "Çeviri ", texts.Text(localization.KeyEnterNumbers))
}

func Test_SystemPrompt_NamesTheLanguage(t *testing.T) {
	assert.Contains(t, openaitranslator.SystemPrompt("uk"), "Ukrainian (uk)")
}
