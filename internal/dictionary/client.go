// Package dictionary resolves words to structured entries against the Free
// Dictionary API, with an on-disk response cache and an offline-safe
// placeholder fallback.
package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/dailywordwidget/dailyword/internal/dictionary/dictapi"
	"github.com/dailywordwidget/dailyword/internal/wordfilter"
)

type Client struct {
	baseURL    string
	httpClient *resty.Client
	fileCache  *FileCache
}

// NewClient creates a dictionary client. cacheDirectory may be empty to
// disable the response cache.
func NewClient(baseURL, cacheDirectory string) *Client {
	var fileCache *FileCache
	if cacheDirectory != "" {
		fileCache = NewFileCache(cacheDirectory)
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: resty.New(),
		fileCache:  fileCache,
	}
}

// Lookup resolves a word to its first dictionary entry for a language.
//
// A nil entry with a nil error means the word genuinely has no entry (404 or
// an empty normalized form) and the caller should try another word. When the
// API is unreachable or answers with an unexpected status, a synthetic
// placeholder entry is returned instead of an error so callers never see a
// hard failure from this path.
func (c *Client) Lookup(ctx context.Context, word, languageCode string) (*dictapi.Entry, error) {
	normalized := wordfilter.Normalize(word)
	if normalized == "" {
		return nil, nil
	}

	if c.fileCache != nil {
		if contents, ok := c.fileCache.Read(languageCode, normalized); ok {
			if entry, err := firstEntry(contents); err == nil {
				return entry, nil
			}
			// Corrupt cache file, fall through to the network.
		}
	}

	res, err := c.httpClient.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s/%s/%s", c.baseURL, languageCode, normalized))
	if err != nil {
		slog.Default().Warn("Dictionary lookup failed, using offline placeholder",
			"word", normalized,
			"language", languageCode,
			"error", err)
		placeholder := dictapi.NewPlaceholder(normalized)
		return &placeholder, nil
	}
	if res.StatusCode() == http.StatusNotFound {
		// Not found. Let the caller retry with another word.
		return nil, nil
	}
	if res.StatusCode() != http.StatusOK {
		slog.Default().Warn("Dictionary lookup returned an unexpected status, using offline placeholder",
			"word", normalized,
			"language", languageCode,
			"status", res.StatusCode())
		placeholder := dictapi.NewPlaceholder(normalized)
		return &placeholder, nil
	}

	entry, err := firstEntry(res.Body())
	if err != nil {
		slog.Default().Warn("Dictionary response could not be parsed, using offline placeholder",
			"word", normalized,
			"language", languageCode,
			"error", err)
		placeholder := dictapi.NewPlaceholder(normalized)
		return &placeholder, nil
	}
	if entry != nil && c.fileCache != nil {
		// Placeholders are never cached, only live responses reach this point.
		if err := c.fileCache.Write(languageCode, normalized, res.Body()); err != nil {
			slog.Default().Warn("Failed to cache dictionary response",
				"word", normalized,
				"error", err)
		}
	}
	return entry, nil
}

func firstEntry(contents []byte) (*dictapi.Entry, error) {
	var entries []dictapi.Entry
	if err := json.Unmarshal(contents, &entries); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}
