// Package widget mirrors the current word into a shared file another
// process renders from.
package widget

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dailywordwidget/dailyword/internal/wordday"
)

const sharedFileName = "widget.json"

// sharedState is the on-disk shape of the widget mirror. isPlaying is an
// ephemeral playback flag, it never feeds back into word selection.
type sharedState struct {
	Word       *wordday.DailyWord `json:"word,omitempty"`
	IsPlaying  bool               `json:"isPlaying"`
	UpdatedAt  time.Time          `json:"updatedAt"`
	ReloadedAt time.Time          `json:"reloadedAt,omitempty"`
}

// SharedStore reads and writes the widget mirror file.
type SharedStore struct {
	rootDir string
	clock   wordday.Clock
}

// NewSharedStore creates a SharedStore rooted at rootDir.
func NewSharedStore(rootDir string) *SharedStore {
	return &SharedStore{rootDir: rootDir, clock: wordday.SystemClock{}}
}

func (s *SharedStore) filePath() string {
	return filepath.Join(s.rootDir, sharedFileName)
}

func (s *SharedStore) read() (sharedState, error) {
	var st sharedState
	data, err := os.ReadFile(s.filePath())
	if os.IsNotExist(err) {
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("os.ReadFile > %w", err)
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return st, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return st, nil
}

func (s *SharedStore) write(st sharedState) error {
	if err := os.MkdirAll(s.rootDir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent > %w", err)
	}
	if err := os.WriteFile(s.filePath(), data, 0644); err != nil {
		return fmt.Errorf("os.WriteFile > %w", err)
	}
	return nil
}

// Word returns the mirrored word, or nil when nothing has been pushed yet.
func (s *SharedStore) Word() (*wordday.DailyWord, error) {
	st, err := s.read()
	if err != nil {
		return nil, err
	}
	return st.Word, nil
}

// SetWord overwrites the mirrored word and stamps the update time.
func (s *SharedStore) SetWord(word wordday.DailyWord) error {
	st, err := s.read()
	if err != nil {
		return err
	}
	st.Word = &word
	st.UpdatedAt = s.clock.Now()
	return s.write(st)
}

// MarkReloaded stamps the reload time so the rendering process can pick up
// the change.
func (s *SharedStore) MarkReloaded() error {
	st, err := s.read()
	if err != nil {
		return err
	}
	st.ReloadedAt = s.clock.Now()
	return s.write(st)
}

// Playing returns the ephemeral playback flag.
func (s *SharedStore) Playing() (bool, error) {
	st, err := s.read()
	if err != nil {
		return false, err
	}
	return st.IsPlaying, nil
}

// SetPlaying flips the ephemeral playback flag.
func (s *SharedStore) SetPlaying(playing bool) error {
	st, err := s.read()
	if err != nil {
		return err
	}
	st.IsPlaying = playing
	return s.write(st)
}
