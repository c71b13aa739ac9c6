// Package store provides persistence backends for the daily word state.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dailywordwidget/dailyword/internal/wordday"
)

const stateFileName = "state.yml"

// state is the on-disk shape of the single daily word slot.
type state struct {
	Word             *wordday.DailyWord `yaml:"word,omitempty"`
	LastUpdate       *time.Time         `yaml:"last_update,omitempty"`
	SelectedLanguage string             `yaml:"selected_language,omitempty"`
}

// YAMLStore keeps the daily word state in a single state.yml file. Every
// write rewrites the whole file, there is no history.
type YAMLStore struct {
	rootDir string
}

// NewYAMLStore creates a YAMLStore rooted at rootDir.
func NewYAMLStore(rootDir string) *YAMLStore {
	return &YAMLStore{rootDir: rootDir}
}

func (s *YAMLStore) filePath() string {
	return filepath.Join(s.rootDir, stateFileName)
}

func (s *YAMLStore) read() (state, error) {
	var st state
	data, err := os.ReadFile(s.filePath())
	if os.IsNotExist(err) {
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("os.ReadFile > %w", err)
	}
	if err := yaml.Unmarshal(data, &st); err != nil {
		return st, fmt.Errorf("yaml.Unmarshal > %w", err)
	}
	return st, nil
}

func (s *YAMLStore) write(st state) error {
	if err := os.MkdirAll(s.rootDir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("yaml.Marshal > %w", err)
	}
	if err := os.WriteFile(s.filePath(), data, 0644); err != nil {
		return fmt.Errorf("os.WriteFile > %w", err)
	}
	return nil
}

// DailyWord returns the stored word, or nil when none has been saved.
func (s *YAMLStore) DailyWord() (*wordday.DailyWord, error) {
	st, err := s.read()
	if err != nil {
		return nil, err
	}
	return st.Word, nil
}

// SaveDailyWord overwrites the stored word and stamps the last update with
// the word's date.
func (s *YAMLStore) SaveDailyWord(word *wordday.DailyWord) error {
	st, err := s.read()
	if err != nil {
		return err
	}
	st.Word = word
	st.LastUpdate = &word.Date
	return s.write(st)
}

// LastUpdate returns the last refresh timestamp. ok is false when no word
// has ever been saved.
func (s *YAMLStore) LastUpdate() (time.Time, bool, error) {
	st, err := s.read()
	if err != nil {
		return time.Time{}, false, err
	}
	if st.LastUpdate == nil {
		return time.Time{}, false, nil
	}
	return *st.LastUpdate, true, nil
}

// SelectedLanguage returns the stored language code, empty when unset.
func (s *YAMLStore) SelectedLanguage() (string, error) {
	st, err := s.read()
	if err != nil {
		return "", err
	}
	return st.SelectedLanguage, nil
}

// SaveSelectedLanguage stores the language code without touching the word.
func (s *YAMLStore) SaveSelectedLanguage(code string) error {
	st, err := s.read()
	if err != nil {
		return err
	}
	st.SelectedLanguage = code
	return s.write(st)
}

// Clear removes the state file entirely.
func (s *YAMLStore) Clear() error {
	err := os.Remove(s.filePath())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("os.Remove > %w", err)
	}
	return nil
}
