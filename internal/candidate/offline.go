package candidate

import (
	"context"
	_ "embed"
	"math/rand"
	"strings"

	"github.com/dailywordwidget/dailyword/internal/wordfilter"
)

//go:embed words.txt
var wordListData string

// maxFilteredDraws bounds how often a draw may be rejected by the local
// filters before any word is accepted, so Pick always terminates.
const maxFilteredDraws = 20

// OfflineSource draws uniformly at random from the bundled English word
// list. It needs no network and is the absolute fallback for every other
// source.
type OfflineSource struct {
	words []string
	rng   *rand.Rand
}

// NewOfflineSource creates an OfflineSource around an injected random
// source so tests can seed it deterministically.
func NewOfflineSource(rng *rand.Rand) *OfflineSource {
	lines := strings.Split(strings.TrimSpace(wordListData), "\n")
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		if word := strings.TrimSpace(line); word != "" {
			words = append(words, word)
		}
	}
	return &OfflineSource{
		words: words,
		rng:   rng,
	}
}

// Pick draws up to maxFilteredDraws random words, requiring each to
// normalize to a non-empty, uncommon, longer-than-four, Latin-only form.
// When every draw fails the filters it returns one more unfiltered draw.
func (s *OfflineSource) Pick(_ context.Context, _ string) (string, error) {
	for i := 0; i < maxFilteredDraws; i++ {
		word := s.words[s.rng.Intn(len(s.words))]
		normalized := wordfilter.Normalize(word)
		if normalized == "" {
			continue
		}
		if wordfilter.IsCommonWord(normalized) {
			continue
		}
		if len(normalized) <= 4 {
			continue
		}
		if !wordfilter.IsLatinScript(word) {
			continue
		}
		return word, nil
	}
	return s.words[s.rng.Intn(len(s.words))], nil
}
