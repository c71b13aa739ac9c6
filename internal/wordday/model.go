// Package wordday resolves, caches and refreshes the word of the day.
package wordday

import (
	"time"

	"github.com/dailywordwidget/dailyword/internal/dictionary/dictapi"
	"github.com/dailywordwidget/dailyword/internal/language"
)

// NoDefinitionPlaceholder fills the definition when the source entry has none.
const NoDefinitionPlaceholder = "No definition available"

// DailyWord is the single display and persistence record for one calendar
// day and one language. It is overwritten on refresh, never mutated.
type DailyWord struct {
	Word         string    `json:"word" yaml:"word" db:"word"`
	Definition   string    `json:"definition" yaml:"definition" db:"definition"`
	Phonetic     string    `json:"phonetic,omitempty" yaml:"phonetic,omitempty" db:"phonetic"`
	PartOfSpeech string    `json:"partOfSpeech,omitempty" yaml:"part_of_speech,omitempty" db:"part_of_speech"`
	Example      string    `json:"example,omitempty" yaml:"example,omitempty" db:"example"`
	Date         time.Time `json:"date" yaml:"date" db:"date"`
	Language     string    `json:"language,omitempty" yaml:"language,omitempty" db:"language"`
}

// FromEntry converts a dictionary entry into the display record, taking the
// first meaning's part of speech and the first definition's text and example.
func FromEntry(entry dictapi.Entry, languageCode string, now time.Time) DailyWord {
	if languageCode == "" {
		languageCode = language.DefaultCode
	}
	word := DailyWord{
		Word:       entry.Word,
		Definition: NoDefinitionPlaceholder,
		Phonetic:   entry.PhoneticText(),
		Date:       now,
		Language:   languageCode,
	}
	if meaning := entry.FirstMeaning(); meaning != nil {
		word.PartOfSpeech = meaning.PartOfSpeech
		if definition := meaning.FirstDefinition(); definition != nil {
			if definition.Definition != "" {
				word.Definition = definition.Definition
			}
			word.Example = definition.Example
		}
	}
	return word
}

// BuiltinFallback is the hardcoded last resort when every lookup and
// fallback fails. It is never persisted.
func BuiltinFallback(now time.Time) DailyWord {
	return DailyWord{
		Word:       "hello",
		Definition: "a greeting or expression of goodwill",
		Date:       now,
		Language:   language.DefaultCode,
	}
}

// FallbackWord is the deterministic word tried once when all retries
// exhaust for a language.
func FallbackWord(languageCode string) string {
	if languageCode == "" || languageCode == language.DefaultCode {
		return "hello"
	}
	return "bonjour"
}
