package wordday_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dailywordwidget/dailyword/internal/dictionary/dictapi"
	mock_wordday "github.com/dailywordwidget/dailyword/internal/mocks/wordday"
	"github.com/dailywordwidget/dailyword/internal/testutil"
	"github.com/dailywordwidget/dailyword/internal/wordday"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var noon = time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

func TestNeedsRefresh(t *testing.T) {
	cached := &wordday.DailyWord{Word: "serendipity", Language: "en", Date: noon}

	tests := []struct {
		name     string
		selected string
		setup    func(store *mock_wordday.MockStore)
		now      time.Time
		want     bool
	}{
		{
			name:     "No prior update",
			selected: "en",
			setup: func(store *mock_wordday.MockStore) {
				store.EXPECT().LastUpdate().Return(time.Time{}, false, nil)
			},
			now:  noon,
			want: true,
		},
		{
			name:     "Same day same language",
			selected: "en",
			setup: func(store *mock_wordday.MockStore) {
				store.EXPECT().LastUpdate().Return(noon.Add(-2*time.Hour), true, nil)
				store.EXPECT().DailyWord().Return(cached, nil)
			},
			now:  noon,
			want: false,
		},
		{
			name:     "Date rollover",
			selected: "en",
			setup: func(store *mock_wordday.MockStore) {
				store.EXPECT().LastUpdate().Return(noon, true, nil)
			},
			now:  noon.AddDate(0, 0, 1),
			want: true,
		},
		{
			name:     "Language change on the same day",
			selected: "fr",
			setup: func(store *mock_wordday.MockStore) {
				store.EXPECT().LastUpdate().Return(noon.Add(-time.Hour), true, nil)
				store.EXPECT().DailyWord().Return(cached, nil)
			},
			now:  noon,
			want: true,
		},
		{
			name:     "Cached word without a language counts as English",
			selected: "en",
			setup: func(store *mock_wordday.MockStore) {
				store.EXPECT().LastUpdate().Return(noon.Add(-time.Hour), true, nil)
				store.EXPECT().DailyWord().Return(&wordday.DailyWord{Word: "serendipity", Date: noon}, nil)
			},
			now:  noon,
			want: false,
		},
		{
			name:     "Storage error counts as stale",
			selected: "en",
			setup: func(store *mock_wordday.MockStore) {
				store.EXPECT().LastUpdate().Return(time.Time{}, false, assert.AnError)
			},
			now:  noon,
			want: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mock_wordday.NewMockStore(ctrl)
			tc.setup(store)

			service := wordday.NewService(store, nil, nil, nil, fixedClock{now: tc.now})
			assert.Equal(t, tc.want, service.NeedsRefresh(tc.selected))
		})
	}
}

func TestCurrentWordFastPathDoesNoFetching(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_wordday.NewMockStore(ctrl)
	resolver := mock_wordday.NewMockEntryResolver(ctrl)
	lookup := mock_wordday.NewMockDefinitionLookup(ctrl)
	bridge := mock_wordday.NewMockWidgetBridge(ctrl)

	cached := &wordday.DailyWord{Word: "serendipity", Definition: "a fortunate accident", Language: "en", Date: noon}
	store.EXPECT().SelectedLanguage().Return("en", nil)
	store.EXPECT().DailyWord().Return(cached, nil).AnyTimes()
	store.EXPECT().LastUpdate().Return(noon.Add(-time.Hour), true, nil)
	bridge.EXPECT().UpdateWidget(*cached).Return(nil)
	bridge.EXPECT().ReloadWidget().Return(nil)

	service := wordday.NewService(store, resolver, lookup, bridge, fixedClock{now: noon})
	got := service.CurrentWord(context.Background())
	assert.Equal(t, *cached, got)
}

func TestCurrentWordRefreshesWhenStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_wordday.NewMockStore(ctrl)
	resolver := mock_wordday.NewMockEntryResolver(ctrl)
	lookup := mock_wordday.NewMockDefinitionLookup(ctrl)
	bridge := mock_wordday.NewMockWidgetBridge(ctrl)

	stale := &wordday.DailyWord{Word: "quixotic", Language: "en", Date: noon.AddDate(0, 0, -1)}
	store.EXPECT().SelectedLanguage().Return("en", nil)
	store.EXPECT().DailyWord().Return(stale, nil).AnyTimes()
	store.EXPECT().LastUpdate().Return(noon.AddDate(0, 0, -1), true, nil)

	entry := &dictapi.Entry{
		Word:     "ephemeral",
		Phonetic: "/ɪˈfɛm(ə)ɹəl/",
		Meanings: []dictapi.Meaning{
			{
				PartOfSpeech: "adjective",
				Definitions: []dictapi.Definition{
					{Definition: "lasting for a very short time", Example: "fashions are ephemeral"},
				},
			},
		},
	}
	resolver.EXPECT().ResolveDailyEntry(gomock.Any(), "en").Return(entry, nil)

	var saved *wordday.DailyWord
	store.EXPECT().SaveDailyWord(gomock.Any()).DoAndReturn(func(word *wordday.DailyWord) error {
		saved = word
		return nil
	})
	bridge.EXPECT().UpdateWidget(gomock.Any()).Return(nil)
	bridge.EXPECT().ReloadWidget().Return(nil)

	service := wordday.NewService(store, resolver, lookup, bridge, fixedClock{now: noon})
	got := service.CurrentWord(context.Background())

	require.NotNil(t, saved)
	assert.Equal(t, *saved, got)
	assert.Equal(t, "ephemeral", got.Word)
	assert.Equal(t, "lasting for a very short time", got.Definition)
	assert.Equal(t, "adjective", got.PartOfSpeech)
	assert.Equal(t, "fashions are ephemeral", got.Example)
	assert.Equal(t, "/ɪˈfɛm(ə)ɹəl/", got.Phonetic)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, noon, got.Date)
}

func TestRefreshFallsBackToDeterministicWord(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_wordday.NewMockStore(ctrl)
	resolver := mock_wordday.NewMockEntryResolver(ctrl)
	lookup := mock_wordday.NewMockDefinitionLookup(ctrl)

	store.EXPECT().SelectedLanguage().Return("fr", nil)
	resolver.EXPECT().ResolveDailyEntry(gomock.Any(), "fr").Return(nil, nil)
	entry := testutil.NewEntry("bonjour", "interjection", "formule de salutation")
	fallback := &entry
	lookup.EXPECT().Lookup(gomock.Any(), "bonjour", "fr").Return(fallback, nil)
	store.EXPECT().SaveDailyWord(gomock.Any()).Return(nil)

	service := wordday.NewService(store, resolver, lookup, nil, fixedClock{now: noon})
	got, err := service.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bonjour", got.Word)
	assert.Equal(t, "fr", got.Language)
}

func TestRefreshTotalFailureReturnsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_wordday.NewMockStore(ctrl)
	resolver := mock_wordday.NewMockEntryResolver(ctrl)
	lookup := mock_wordday.NewMockDefinitionLookup(ctrl)

	store.EXPECT().SelectedLanguage().Return("en", nil)
	resolver.EXPECT().ResolveDailyEntry(gomock.Any(), "en").Return(nil, nil)
	lookup.EXPECT().Lookup(gomock.Any(), "hello", "en").Return(nil, nil)

	service := wordday.NewService(store, resolver, lookup, nil, fixedClock{now: noon})
	_, err := service.Refresh(context.Background())
	assert.Error(t, err)
}

func TestCurrentWordTotalFailureReturnsBuiltinWithoutPersisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_wordday.NewMockStore(ctrl)
	resolver := mock_wordday.NewMockEntryResolver(ctrl)
	lookup := mock_wordday.NewMockDefinitionLookup(ctrl)
	bridge := mock_wordday.NewMockWidgetBridge(ctrl)

	store.EXPECT().SelectedLanguage().Return("en", nil)
	store.EXPECT().DailyWord().Return(nil, nil).AnyTimes()
	resolver.EXPECT().ResolveDailyEntry(gomock.Any(), "en").Return(nil, nil)
	lookup.EXPECT().Lookup(gomock.Any(), "hello", "en").Return(nil, nil)
	// SaveDailyWord must not be called: the builtin word is never persisted.
	bridge.EXPECT().UpdateWidget(gomock.Any()).Return(nil)
	bridge.EXPECT().ReloadWidget().Return(nil)

	service := wordday.NewService(store, resolver, lookup, bridge, fixedClock{now: noon})
	got := service.CurrentWord(context.Background())
	assert.Equal(t, wordday.BuiltinFallback(noon), got)
}

func TestCurrentWordFallsBackToCachedWordOnRefreshFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_wordday.NewMockStore(ctrl)
	resolver := mock_wordday.NewMockEntryResolver(ctrl)
	lookup := mock_wordday.NewMockDefinitionLookup(ctrl)

	cached := &wordday.DailyWord{Word: "quixotic", Language: "en", Date: noon.AddDate(0, 0, -1)}
	store.EXPECT().SelectedLanguage().Return("en", nil)
	store.EXPECT().DailyWord().Return(cached, nil).AnyTimes()
	store.EXPECT().LastUpdate().Return(noon.AddDate(0, 0, -1), true, nil)
	resolver.EXPECT().ResolveDailyEntry(gomock.Any(), "en").Return(nil, nil)
	lookup.EXPECT().Lookup(gomock.Any(), "hello", "en").Return(nil, nil)

	service := wordday.NewService(store, resolver, lookup, nil, fixedClock{now: noon})
	got := service.CurrentWord(context.Background())
	assert.Equal(t, *cached, got, "yesterday's word beats the hardcoded builtin")
}

func TestFromEntry(t *testing.T) {
	tests := []struct {
		name     string
		entry    dictapi.Entry
		language string
		want     wordday.DailyWord
	}{
		{
			name: "Full entry",
			entry: dictapi.Entry{
				Word:     "serendipity",
				Phonetic: "/ˌsɛɹəndɪpɪti/",
				Meanings: []dictapi.Meaning{
					{
						PartOfSpeech: "noun",
						Definitions: []dictapi.Definition{
							{Definition: "a fortunate accident", Example: "pure serendipity"},
						},
					},
				},
			},
			language: "en",
			want: wordday.DailyWord{
				Word:         "serendipity",
				Definition:   "a fortunate accident",
				Phonetic:     "/ˌsɛɹəndɪpɪti/",
				PartOfSpeech: "noun",
				Example:      "pure serendipity",
				Date:         noon,
				Language:     "en",
			},
		},
		{
			name:     "Entry without meanings gets the placeholder definition",
			entry:    dictapi.Entry{Word: "serendipity"},
			language: "en",
			want: wordday.DailyWord{
				Word:       "serendipity",
				Definition: wordday.NoDefinitionPlaceholder,
				Date:       noon,
				Language:   "en",
			},
		},
		{
			name:     "Empty language defaults to English",
			entry:    dictapi.Entry{Word: "hello"},
			language: "",
			want: wordday.DailyWord{
				Word:       "hello",
				Definition: wordday.NoDefinitionPlaceholder,
				Date:       noon,
				Language:   "en",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, wordday.FromEntry(tc.entry, tc.language, noon))
		})
	}
}
