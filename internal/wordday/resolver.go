package wordday

import (
	"context"
	"log/slog"
	"time"

	"github.com/dailywordwidget/dailyword/internal/candidate"
	"github.com/dailywordwidget/dailyword/internal/dictionary/dictapi"
	"github.com/dailywordwidget/dailyword/internal/language"
	"github.com/dailywordwidget/dailyword/internal/wordfilter"
)

//go:generate mockgen -source=resolver.go -destination=../mocks/wordday/mock_resolver.go -package=mock_wordday

// DefinitionLookup resolves a word to its dictionary entry. A nil entry with
// a nil error means the word has no entry and another candidate should be
// tried.
type DefinitionLookup interface {
	Lookup(ctx context.Context, word, languageCode string) (*dictapi.Entry, error)
}

const (
	// DefaultMaxRetries is the English retry budget.
	DefaultMaxRetries = 10
	// nonEnglishMaxRetries clamps the budget for other languages, whose
	// upstream corpora are smaller and rate limits tighter.
	nonEnglishMaxRetries = 5

	defaultRetryDelay = 500 * time.Millisecond
)

// Resolver drives candidate source, definition lookup and interestingness
// filter in a bounded, strictly sequential retry loop.
type Resolver struct {
	source     candidate.Source
	lookup     DefinitionLookup
	maxRetries int
	retryDelay time.Duration
	sleep      func(time.Duration)
}

func NewResolver(source candidate.Source, lookup DefinitionLookup) *Resolver {
	return &Resolver{
		source:     source,
		lookup:     lookup,
		maxRetries: DefaultMaxRetries,
		retryDelay: defaultRetryDelay,
		sleep:      time.Sleep,
	}
}

// ResolveDailyEntry returns an accepted dictionary entry for a language, or
// nil when the retries and the deterministic fallback word are all
// exhausted. It never returns an error: every failure below it is recovered
// into a retry or the fallback.
//
// The interestingness gate applies only to English. Other languages accept
// the first non-nil entry because the Latin-script-only gate would reject
// nearly all of their vocabulary.
func (r *Resolver) ResolveDailyEntry(ctx context.Context, languageCode string) (*dictapi.Entry, error) {
	english := languageCode == "" || languageCode == language.DefaultCode
	maxRetries := r.maxRetries
	if !english && maxRetries > nonEnglishMaxRetries {
		maxRetries = nonEnglishMaxRetries
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		entry := r.attempt(ctx, languageCode, english)
		if entry != nil {
			return entry, nil
		}
		// Wait a bit before retrying to avoid rate limiting.
		r.sleep(r.retryDelay)
	}

	slog.Default().Warn("Retries exhausted, trying the deterministic fallback word",
		"language", languageCode,
		"attempts", maxRetries)
	entry, err := r.lookup.Lookup(ctx, FallbackWord(languageCode), languageCode)
	if err != nil || entry == nil {
		return nil, nil
	}
	if english && !wordfilter.IsInteresting(*entry) {
		return nil, nil
	}
	return entry, nil
}

func (r *Resolver) attempt(ctx context.Context, languageCode string, english bool) *dictapi.Entry {
	word, err := r.source.Pick(ctx, languageCode)
	if err != nil {
		slog.Default().Warn("Candidate source failed", "language", languageCode, "error", err)
		return nil
	}
	entry, err := r.lookup.Lookup(ctx, word, languageCode)
	if err != nil {
		slog.Default().Warn("Definition lookup failed", "word", word, "error", err)
		return nil
	}
	if entry == nil {
		return nil
	}
	if english && !wordfilter.IsInteresting(*entry) {
		slog.Default().Debug("Rejected uninteresting entry", "word", entry.Word)
		return nil
	}
	return entry
}
