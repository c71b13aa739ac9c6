// Package candidate produces raw candidate word strings for definition
// lookup, from a bundled offline list or remote random word endpoints.
package candidate

import "context"

//go:generate mockgen -source=source.go -destination=../mocks/candidate/mock_source.go -package=mock_candidate

// Source proposes a candidate word for a language. Implementations always
// return a non-empty word: every failure mode degrades to a fallback value
// instead of an error. The error return exists for decorating
// implementations and tests.
type Source interface {
	Pick(ctx context.Context, languageCode string) (string, error)
}
