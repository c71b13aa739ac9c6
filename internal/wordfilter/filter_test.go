package wordfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dailywordwidget/dailyword/internal/dictionary/dictapi"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		word string
		want string
	}{
		{name: "Lowercase word unchanged", word: "serendipity", want: "serendipity"},
		{name: "Case folded and digits stripped", word: "Café123", want: "caf"},
		{name: "Inner apostrophe kept", word: "don't", want: "don't"},
		{name: "Leading and trailing apostrophes trimmed", word: "'twas'", want: "twas"},
		{name: "Hyphen stripped", word: "well-known", want: "wellknown"},
		{name: "Empty input", word: "", want: ""},
		{name: "Only symbols", word: "123!?", want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.word))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, word := range []string{"Café123", "don't", "'round", "Hello, World!", "œuvre"} {
		once := Normalize(word)
		assert.Equal(t, once, Normalize(once), "word %q", word)
	}
}

func TestIsCommonWord(t *testing.T) {
	tests := []struct {
		name string
		word string
		want bool
	}{
		{name: "Article", word: "the", want: true},
		{name: "Possessive of stopword", word: "the's", want: true},
		{name: "Plural of stopword", word: "others", want: true},
		{name: "Uncommon word", word: "serendipity", want: false},
		{name: "Mixed case stopword", word: "The", want: true},
		{name: "Empty string", word: "", want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsCommonWord(tc.word))
		})
	}
}

func TestIsInteresting(t *testing.T) {
	nounEntry := func(word, definition string) dictapi.Entry {
		return dictapi.Entry{
			Word: word,
			Meanings: []dictapi.Meaning{
				{
					PartOfSpeech: "noun",
					Definitions:  []dictapi.Definition{{Definition: definition}},
				},
			},
		}
	}

	tests := []struct {
		name  string
		entry dictapi.Entry
		want  bool
	}{
		{
			name:  "Interesting noun",
			entry: nounEntry("serendipity", "the occurrence of fortunate discoveries by accident"),
			want:  true,
		},
		{
			name:  "Short word rejected regardless of meanings",
			entry: nounEntry("cat", "a small domesticated carnivorous mammal"),
			want:  false,
		},
		{
			name:  "Stopword rejected",
			entry: nounEntry("because", "for the reason that"),
			want:  false,
		},
		{
			name:  "Digits in raw word rejected",
			entry: nounEntry("word123", "a word with digits in it"),
			want:  false,
		},
		{
			name:  "Uppercase raw word rejected",
			entry: nounEntry("Serendipity", "the occurrence of fortunate discoveries by accident"),
			want:  false,
		},
		{
			// "pronoun" matches the "noun" marker by substring.
			name: "Pronoun part of speech accepted",
			entry: dictapi.Entry{
				Word: "whomever",
				Meanings: []dictapi.Meaning{
					{PartOfSpeech: "pronoun", Definitions: []dictapi.Definition{{Definition: "objective case of whoever"}}},
				},
			},
			want: true,
		},
		{
			name: "Preposition part of speech rejected",
			entry: dictapi.Entry{
				Word: "underneath",
				Meanings: []dictapi.Meaning{
					{PartOfSpeech: "preposition", Definitions: []dictapi.Definition{{Definition: "directly below or beneath something"}}},
				},
			},
			want: false,
		},
		{
			name:  "Too short definition rejected",
			entry: nounEntry("quixotic", "odd"),
			want:  false,
		},
		{
			name:  "Offline placeholder definition accepted",
			entry: dictapi.NewPlaceholder("quixotic"),
			want:  true,
		},
		{
			name:  "No meanings passes vacuously",
			entry: dictapi.Entry{Word: "serendipity"},
			want:  true,
		},
		{
			name: "Meaning without definitions accepted",
			entry: dictapi.Entry{
				Word:     "ephemeral",
				Meanings: []dictapi.Meaning{{PartOfSpeech: "adjective"}},
			},
			want: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsInteresting(tc.entry))
		})
	}
}
