package candidate

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRemoteSource(randomWordURL, wiktionaryBaseURL string) *RemoteSource {
	source := NewRemoteSource(randomWordURL, wiktionaryBaseURL, NewOfflineSource(rand.New(rand.NewSource(1))))
	source.retryAttempts = 1
	return source
}

func TestRemoteSourcePickFromRandomWordEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "fr", r.URL.Query().Get("lang"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["bonjour"]`))
	}))
	defer server.Close()

	source := newTestRemoteSource(server.URL, "http://unused.invalid")
	defer func() {
		_ = source.Close()
	}()

	word, err := source.Pick(context.Background(), "fr")
	require.NoError(t, err)
	assert.Equal(t, "bonjour", word)
}

func TestRemoteSourceFallsBackToWiktionary(t *testing.T) {
	randomWord := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer randomWord.Close()

	wiktionary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/w/api.php", r.URL.Path)
		assert.Equal(t, "query", r.URL.Query().Get("action"))
		assert.Equal(t, "random", r.URL.Query().Get("list"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"query":{"random":[{"id":123,"title":"palabra"}]}}`))
	}))
	defer wiktionary.Close()

	source := newTestRemoteSource(randomWord.URL, wiktionary.URL)
	defer func() {
		_ = source.Close()
	}()

	word, err := source.Pick(context.Background(), "es")
	require.NoError(t, err)
	assert.Equal(t, "palabra", word)
}

func TestRemoteSourceDegradesToOfflineList(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer failing.Close()

	source := newTestRemoteSource(failing.URL, failing.URL)
	defer func() {
		_ = source.Close()
	}()

	word, err := source.Pick(context.Background(), "es")
	require.NoError(t, err)
	assert.NotEmpty(t, word, "Pick must always return a word")
}

func TestRemoteSourceEmptyRandomWordResponseTriesWiktionary(t *testing.T) {
	randomWord := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer randomWord.Close()

	wiktionary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"query":{"random":[{"id":1,"title":"wort"}]}}`))
	}))
	defer wiktionary.Close()

	source := newTestRemoteSource(randomWord.URL, wiktionary.URL)
	defer func() {
		_ = source.Close()
	}()

	word, err := source.Pick(context.Background(), "de")
	require.NoError(t, err)
	assert.Equal(t, "wort", word)
}

func TestRouterPick(t *testing.T) {
	offline := NewOfflineSource(rand.New(rand.NewSource(3)))

	wiktionary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"query":{"random":[{"id":1,"title":"mot"}]}}`))
	}))
	defer wiktionary.Close()
	randomWord := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["mot"]`))
	}))
	defer randomWord.Close()

	remote := newTestRemoteSource(randomWord.URL, wiktionary.URL)
	defer func() {
		_ = remote.Close()
	}()
	router := NewRouter(offline, remote)

	english, err := router.Pick(context.Background(), "en")
	require.NoError(t, err)
	assert.True(t, len(english) > 1, "offline words are real words")

	french, err := router.Pick(context.Background(), "fr")
	require.NoError(t, err)
	assert.Equal(t, "mot", french)

	unset, err := router.Pick(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, unset)
}
