// Package wordfilter classifies and cleans candidate word strings.
package wordfilter

import (
	"strings"

	"github.com/dailywordwidget/dailyword/internal/dictionary/dictapi"
)

const (
	// minNormalizedLength excludes very short words to prefer less common vocabulary.
	minNormalizedLength = 5
	// minDefinitionLength is lenient so offline placeholder definitions still pass.
	minDefinitionLength = 10
)

// partOfSpeechMarkers accepts nouns, verbs, adjectives and adverbs while
// excluding pronouns, determiners, conjunctions and prepositions.
var partOfSpeechMarkers = []string{"noun", "verb", "adject", "adv"}

// Normalize lowercases word, strips every character outside [a-z'] and trims
// leading and trailing apostrophes. Idempotent.
func Normalize(word string) string {
	var builder strings.Builder
	for _, r := range strings.ToLower(word) {
		if (r >= 'a' && r <= 'z') || r == '\'' {
			builder.WriteRune(r)
		}
	}
	return strings.Trim(builder.String(), "'")
}

// IsCommonWord reports whether the normalized form of word, or that form with
// a trailing plural s or possessive 's stripped, is an English stopword.
func IsCommonWord(word string) bool {
	normalized := Normalize(word)
	if normalized == "" {
		return false
	}
	if _, ok := englishStopWords[normalized]; ok {
		return true
	}
	if stripped, ok := strings.CutSuffix(normalized, "'s"); ok {
		if _, common := englishStopWords[stripped]; common {
			return true
		}
	}
	if stripped, ok := strings.CutSuffix(normalized, "s"); ok {
		if _, common := englishStopWords[stripped]; common {
			return true
		}
	}
	return false
}

// IsLatinScript reports whether the raw word consists only of lowercase
// Latin letters, apostrophes and hyphens. Digits, symbols, uppercase and
// non Latin scripts all fail.
func IsLatinScript(word string) bool {
	for _, r := range word {
		if (r < 'a' || r > 'z') && r != '\'' && r != '-' {
			return false
		}
	}
	return true
}

// IsInteresting reports whether an English dictionary entry is worth showing
// as the word of the day: uncommon, long enough, Latin script only and, when
// a meaning exists, a substantive part of speech with a non-trivial
// definition. Entries without meanings pass vacuously; callers treat a
// missing entry as a failure upstream.
func IsInteresting(entry dictapi.Entry) bool {
	normalized := Normalize(entry.Word)
	if normalized == "" {
		return false
	}
	if IsCommonWord(normalized) {
		return false
	}
	if len(normalized) < minNormalizedLength {
		return false
	}
	if !IsLatinScript(entry.Word) {
		return false
	}

	meaning := entry.FirstMeaning()
	if meaning == nil {
		return true
	}
	pos := strings.ToLower(meaning.PartOfSpeech)
	matched := false
	for _, marker := range partOfSpeechMarkers {
		if strings.Contains(pos, marker) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	if definition := meaning.FirstDefinition(); definition != nil {
		if definition.Definition != "" && len(definition.Definition) < minDefinitionLength {
			return false
		}
	}
	return true
}
