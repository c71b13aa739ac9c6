package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileCache stores raw dictionary API responses on disk, one JSON file per
// language and word, so repeated lookups cost no network call.
type FileCache struct {
	rootDir string
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func (cache *FileCache) filePath(languageCode, word string) string {
	return filepath.Join(cache.rootDir, languageCode, word+".json")
}

// Read returns the cached response body for a word, and whether one exists.
func (cache *FileCache) Read(languageCode, word string) ([]byte, bool) {
	contents, err := os.ReadFile(cache.filePath(languageCode, word))
	if err != nil {
		return nil, false
	}
	return contents, true
}

// Write stores a response body for a word, creating the language directory
// on first use.
func (cache *FileCache) Write(languageCode, word string, contents []byte) error {
	dir := filepath.Join(cache.rootDir, languageCode)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	if err := os.WriteFile(cache.filePath(languageCode, word), contents, 0644); err != nil {
		return fmt.Errorf("os.WriteFile > %w", err)
	}
	return nil
}
