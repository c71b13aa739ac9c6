package candidate

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailywordwidget/dailyword/internal/wordfilter"
)

func TestOfflineSourcePick(t *testing.T) {
	source := NewOfflineSource(rand.New(rand.NewSource(42)))
	require.NotEmpty(t, source.words)

	for i := 0; i < 50; i++ {
		word, err := source.Pick(context.Background(), "en")
		require.NoError(t, err)
		normalized := wordfilter.Normalize(word)
		assert.NotEmpty(t, normalized)
		assert.False(t, wordfilter.IsCommonWord(normalized), "word %q", word)
		assert.Greater(t, len(normalized), 4, "word %q", word)
		assert.True(t, wordfilter.IsLatinScript(word), "word %q", word)
	}
}

func TestOfflineSourcePickIsDeterministicWithSeed(t *testing.T) {
	first := NewOfflineSource(rand.New(rand.NewSource(7)))
	second := NewOfflineSource(rand.New(rand.NewSource(7)))

	for i := 0; i < 10; i++ {
		a, err := first.Pick(context.Background(), "en")
		require.NoError(t, err)
		b, err := second.Pick(context.Background(), "en")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestOfflineSourcePickTerminatesWhenEveryDrawFailsFilters(t *testing.T) {
	// A list of stopwords fails every filtered draw, so the unfiltered
	// final draw has to kick in.
	source := &OfflineSource{
		words: []string{"the", "and", "their"},
		rng:   rand.New(rand.NewSource(1)),
	}

	word, err := source.Pick(context.Background(), "en")
	require.NoError(t, err)
	assert.Contains(t, source.words, word)
}
