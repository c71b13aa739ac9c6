package wordday

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dailywordwidget/dailyword/internal/dictionary/dictapi"
	"github.com/dailywordwidget/dailyword/internal/language"
)

//go:generate mockgen -source=service.go -destination=../mocks/wordday/mock_service.go -package=mock_wordday

// Store is the persistence slot for the current word, the last update
// timestamp and the selected language. There is no history: a refresh
// overwrites the single record.
type Store interface {
	DailyWord() (*DailyWord, error)
	SaveDailyWord(word *DailyWord) error
	LastUpdate() (time.Time, bool, error)
	SelectedLanguage() (string, error)
	SaveSelectedLanguage(code string) error
	Clear() error
}

// EntryResolver produces an accepted dictionary entry, or nil on total
// failure.
type EntryResolver interface {
	ResolveDailyEntry(ctx context.Context, languageCode string) (*dictapi.Entry, error)
}

// WidgetBridge mirrors produced words into the platform widget. Failures
// are logged, never propagated: widget updates are not critical.
type WidgetBridge interface {
	UpdateWidget(word DailyWord) error
	ReloadWidget() error
}

// Clock abstracts wall clock reads so date rollover tests need no sleeping.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Service owns the daily refresh and cache invalidation policy.
type Service struct {
	store    Store
	resolver EntryResolver
	lookup   DefinitionLookup
	bridge   WidgetBridge
	clock    Clock
}

// NewService creates a Service. bridge may be nil when no widget exists.
func NewService(store Store, resolver EntryResolver, lookup DefinitionLookup, bridge WidgetBridge, clock Clock) *Service {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Service{
		store:    store,
		resolver: resolver,
		lookup:   lookup,
		bridge:   bridge,
		clock:    clock,
	}
}

// NeedsRefresh reports whether the cached word must be replaced: no prior
// update, a calendar date rollover in local time, or a language change.
// Storage errors count as stale so the word gets refetched.
func (s *Service) NeedsRefresh(selectedLanguage string) bool {
	lastUpdate, ok, err := s.store.LastUpdate()
	if err != nil {
		slog.Default().Warn("Failed to read the last update date", "error", err)
		return true
	}
	if !ok {
		return true
	}

	now := s.clock.Now()
	lastY, lastM, lastD := lastUpdate.Local().Date()
	nowY, nowM, nowD := now.Local().Date()
	if lastY != nowY || lastM != nowM || lastD != nowD {
		return true
	}

	word, err := s.store.DailyWord()
	if err != nil {
		slog.Default().Warn("Failed to read the cached word", "error", err)
		return true
	}
	if word == nil {
		return true
	}
	wordLanguage := word.Language
	if wordLanguage == "" {
		wordLanguage = language.DefaultCode
	}
	return wordLanguage != selectedLanguage
}

// CurrentWord returns today's word for the selected language, refreshing it
// when stale. On the fast path, same day and same language, no network call
// happens. It never fails: the worst case is the hardcoded builtin greeting.
func (s *Service) CurrentWord(ctx context.Context) DailyWord {
	word, err := s.currentWord(ctx)
	if err == nil {
		return word
	}
	slog.Default().Error("Failed to get the current word", "error", err)

	if cached, cacheErr := s.store.DailyWord(); cacheErr == nil && cached != nil {
		return *cached
	}
	fallback := BuiltinFallback(s.clock.Now())
	s.pushWidget(fallback)
	return fallback
}

func (s *Service) currentWord(ctx context.Context) (DailyWord, error) {
	selectedLanguage, err := s.store.SelectedLanguage()
	if err != nil {
		return DailyWord{}, fmt.Errorf("store.SelectedLanguage > %w", err)
	}
	if selectedLanguage == "" {
		selectedLanguage = language.DefaultCode
	}

	existing, err := s.store.DailyWord()
	if err != nil {
		return DailyWord{}, fmt.Errorf("store.DailyWord > %w", err)
	}
	if existing != nil && !s.NeedsRefresh(selectedLanguage) {
		s.pushWidget(*existing)
		return *existing, nil
	}
	return s.fetchAndSave(ctx, selectedLanguage)
}

// Refresh force-fetches a new word for the selected language and persists
// it. Unlike CurrentWord, persistence failures surface to the caller so an
// explicit user action can report them.
func (s *Service) Refresh(ctx context.Context) (DailyWord, error) {
	selectedLanguage, err := s.store.SelectedLanguage()
	if err != nil {
		return DailyWord{}, fmt.Errorf("store.SelectedLanguage > %w", err)
	}
	if selectedLanguage == "" {
		selectedLanguage = language.DefaultCode
	}
	return s.fetchAndSave(ctx, selectedLanguage)
}

func (s *Service) fetchAndSave(ctx context.Context, languageCode string) (DailyWord, error) {
	entry, err := s.resolver.ResolveDailyEntry(ctx, languageCode)
	if err != nil {
		return DailyWord{}, fmt.Errorf("resolver.ResolveDailyEntry > %w", err)
	}
	if entry == nil {
		// One last synthetic fallback before giving up.
		fallbackEntry, err := s.lookup.Lookup(ctx, FallbackWord(languageCode), languageCode)
		if err != nil {
			return DailyWord{}, fmt.Errorf("lookup.Lookup > %w", err)
		}
		if fallbackEntry == nil {
			return DailyWord{}, fmt.Errorf("no definition found for language %s", languageCode)
		}
		entry = fallbackEntry
	}

	word := FromEntry(*entry, languageCode, s.clock.Now())
	if err := s.store.SaveDailyWord(&word); err != nil {
		return DailyWord{}, fmt.Errorf("store.SaveDailyWord > %w", err)
	}
	s.pushWidget(word)
	return word, nil
}

func (s *Service) pushWidget(word DailyWord) {
	if s.bridge == nil {
		return
	}
	if err := s.bridge.UpdateWidget(word); err != nil {
		slog.Default().Warn("Failed to update the widget", "error", err)
		return
	}
	if err := s.bridge.ReloadWidget(); err != nil {
		slog.Default().Warn("Failed to reload the widget", "error", err)
	}
}
