package widget

import (
	"fmt"
	"log/slog"

	"github.com/dailywordwidget/dailyword/internal/wordday"
)

// Bridge is the full widget surface: the word mirror plus phonetic
// playback controls. The playback flag lives in the shared store only,
// actual audio output belongs to the rendering process.
type Bridge interface {
	UpdateWidget(word wordday.DailyWord) error
	ReloadWidget() error
	IsPlaying() (bool, error)
	PlayPhonetic(text string) error
	StopPhonetic() error
}

// SharedStoreBridge implements Bridge on top of the shared mirror file.
type SharedStoreBridge struct {
	store *SharedStore
}

// NewSharedStoreBridge creates a SharedStoreBridge.
func NewSharedStoreBridge(store *SharedStore) *SharedStoreBridge {
	return &SharedStoreBridge{store: store}
}

// UpdateWidget mirrors the word into the shared file.
func (b *SharedStoreBridge) UpdateWidget(word wordday.DailyWord) error {
	if err := b.store.SetWord(word); err != nil {
		return fmt.Errorf("store.SetWord > %w", err)
	}
	return nil
}

// ReloadWidget signals the rendering process to re-render.
func (b *SharedStoreBridge) ReloadWidget() error {
	if err := b.store.MarkReloaded(); err != nil {
		return fmt.Errorf("store.MarkReloaded > %w", err)
	}
	return nil
}

// IsPlaying reports the ephemeral playback flag.
func (b *SharedStoreBridge) IsPlaying() (bool, error) {
	playing, err := b.store.Playing()
	if err != nil {
		return false, fmt.Errorf("store.Playing > %w", err)
	}
	return playing, nil
}

// PlayPhonetic raises the playback flag. Audio output is up to the
// rendering process.
func (b *SharedStoreBridge) PlayPhonetic(text string) error {
	slog.Default().Info("Playing phonetic", "text", text)
	if err := b.store.SetPlaying(true); err != nil {
		return fmt.Errorf("store.SetPlaying > %w", err)
	}
	return nil
}

// StopPhonetic lowers the playback flag.
func (b *SharedStoreBridge) StopPhonetic() error {
	if err := b.store.SetPlaying(false); err != nil {
		return fmt.Errorf("store.SetPlaying > %w", err)
	}
	return nil
}
