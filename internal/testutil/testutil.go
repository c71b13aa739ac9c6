// Package testutil provides shared test helpers for creating config files
// and word state fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dailywordwidget/dailyword/internal/dictionary/dictapi"
	"github.com/dailywordwidget/dailyword/internal/store"
	"github.com/dailywordwidget/dailyword/internal/wordday"
)

// SetupTestConfig creates a minimal config file and all required directories
// for testing. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dirs := []string{"state", "dictionaries", "widget"}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`storage:
  backend: yaml
  state_directory: %s
dictionary:
  base_url: https://dictionary.example.com/api
  cache_directory: %s
candidates:
  random_word_url: https://random.example.com/word
  wiktionary_base_url: https://{lang}.wiktionary.example.com
widget:
  shared_directory: %s
`,
		filepath.Join(tmpDir, "state"),
		filepath.Join(tmpDir, "dictionaries"),
		filepath.Join(tmpDir, "widget"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// StateOption configures optional fields when creating a word state fixture.
type StateOption func(*wordday.DailyWord)

// WithLanguage sets the word's language.
func WithLanguage(code string) StateOption {
	return func(word *wordday.DailyWord) {
		word.Language = code
	}
}

// WithDate sets the word's date.
func WithDate(date time.Time) StateOption {
	return func(word *wordday.DailyWord) {
		word.Date = date
	}
}

// CreateWordState writes a state file with one stored word and returns it.
// By default the word is today's English "serendipity".
func CreateWordState(t *testing.T, stateDir string, opts ...StateOption) wordday.DailyWord {
	t.Helper()

	word := wordday.DailyWord{
		Word:         "serendipity",
		Definition:   "a fortunate accident",
		PartOfSpeech: "noun",
		Date:         time.Now(),
		Language:     "en",
	}
	for _, opt := range opts {
		opt(&word)
	}

	require.NoError(t, store.NewYAMLStore(stateDir).SaveDailyWord(&word))
	return word
}

// NewEntry creates a dictionary entry with one meaning and one definition.
func NewEntry(word, partOfSpeech, definition string) dictapi.Entry {
	return dictapi.Entry{
		Word: word,
		Meanings: []dictapi.Meaning{
			{
				PartOfSpeech: partOfSpeech,
				Definitions:  []dictapi.Definition{{Definition: definition}},
			},
		},
	}
}
