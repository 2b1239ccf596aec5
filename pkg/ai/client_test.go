package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/inkwell/pkg/core"
)

// staticKeys is a KeySource returning a fixed key.
type staticKeys struct {
	key string
}

func (s staticKeys) Get(ctx context.Context) (string, bool) {
	return s.key, s.key != ""
}

func completionHandler(t *testing.T, content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, DefaultModel, req.Model)
		assert.Equal(t, DefaultTemperature, req.Temperature)
		assert.Equal(t, DefaultMaxTokens, req.MaxTokens)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Contains(t, req.Messages[1].Content, "Please enhance the following text:")

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}
}

func TestEnhanceReturnsTrimmedCompletion(t *testing.T) {
	server := httptest.NewServer(completionHandler(t, "\n  A much better note.  \n"))
	defer server.Close()

	client := NewClient(Config{APIKey: "sk-test", BaseURL: server.URL})

	got, err := client.Enhance(context.Background(), "a note")
	require.NoError(t, err)
	assert.Equal(t, "A much better note.", got)
}

func TestEnhanceUsesKeySource(t *testing.T) {
	server := httptest.NewServer(completionHandler(t, "rewritten"))
	defer server.Close()

	client := NewClient(Config{Keys: staticKeys{key: "sk-test"}, BaseURL: server.URL})

	got, err := client.Enhance(context.Background(), "a note")
	require.NoError(t, err)
	assert.Equal(t, "rewritten", got)
}

func TestEnhanceMissingCredential(t *testing.T) {
	// No server: the client must fail before any network call.
	client := NewClient(Config{BaseURL: "http://127.0.0.1:0"})

	_, err := client.Enhance(context.Background(), "a note")
	assert.ErrorIs(t, err, core.ErrMissingCredential)

	_, err = NewClient(Config{Keys: staticKeys{}, BaseURL: "http://127.0.0.1:0"}).Enhance(context.Background(), "a note")
	assert.ErrorIs(t, err, core.ErrMissingCredential)
}

func TestEnhanceProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "Incorrect API key provided"},
		})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "sk-test", BaseURL: server.URL})

	_, err := client.Enhance(context.Background(), "a note")
	var enhErr *core.EnhancementError
	require.ErrorAs(t, err, &enhErr)
	assert.Equal(t, http.StatusUnauthorized, enhErr.StatusCode)
	assert.Equal(t, "Incorrect API key provided", enhErr.Message)
}

func TestEnhanceProviderErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "sk-test", BaseURL: server.URL})

	_, err := client.Enhance(context.Background(), "a note")
	var enhErr *core.EnhancementError
	require.ErrorAs(t, err, &enhErr)
	assert.Equal(t, "failed to enhance text", enhErr.Message)
}

func TestEnhanceMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "sk-test", BaseURL: server.URL})

	_, err := client.Enhance(context.Background(), "a note")
	var enhErr *core.EnhancementError
	require.ErrorAs(t, err, &enhErr)
}

func TestEnhanceNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "sk-test", BaseURL: server.URL})

	_, err := client.Enhance(context.Background(), "a note")
	var enhErr *core.EnhancementError
	require.ErrorAs(t, err, &enhErr)
	assert.Equal(t, "no completion returned", enhErr.Message)
}

func TestEnhanceTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Closed on purpose: connection refused.

	client := NewClient(Config{APIKey: "sk-test", BaseURL: server.URL})

	_, err := client.Enhance(context.Background(), "a note")
	var enhErr *core.EnhancementError
	require.ErrorAs(t, err, &enhErr)
	assert.NotNil(t, errors.Unwrap(enhErr))
}

func TestExplicitKeyWinsOverSource(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "ok"}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(Config{Keys: staticKeys{key: "sk-stored"}, BaseURL: server.URL})

	_, err := client.EnhanceWithKey(context.Background(), "a note", "sk-explicit")
	require.NoError(t, err)
	assert.Equal(t, "Bearer sk-explicit", gotAuth)
}
