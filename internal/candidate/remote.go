package candidate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

const defaultRetryAttempts = 3

// langToken is replaced with the ISO 639-1 code inside the Wiktionary base URL.
const langToken = "{lang}"

// RemoteSource asks a language-scoped random word endpoint for a candidate,
// with the language's Wiktionary random title query as a secondary source.
// When both remotes fail it degrades to the fallback source, so Pick never
// fails hard. Non-English words drawn from the English fallback list will
// likely miss a definition downstream, which is an accepted tradeoff.
type RemoteSource struct {
	httpClient        *resty.Client
	randomWordURL     string
	wiktionaryBaseURL string
	fallback          Source
	retryAttempts     uint
}

func NewRemoteSource(randomWordURL, wiktionaryBaseURL string, fallback Source) *RemoteSource {
	return &RemoteSource{
		httpClient:        resty.New(),
		randomWordURL:     randomWordURL,
		wiktionaryBaseURL: wiktionaryBaseURL,
		fallback:          fallback,
		retryAttempts:     defaultRetryAttempts,
	}
}

func (s *RemoteSource) Close() error {
	return s.httpClient.Close()
}

func (s *RemoteSource) Pick(ctx context.Context, languageCode string) (string, error) {
	word, err := s.randomWord(ctx, languageCode)
	if err == nil && word != "" {
		return word, nil
	}
	if err != nil {
		slog.Default().Warn("Random word endpoint failed, trying Wiktionary",
			"language", languageCode,
			"error", err)
	}

	word, err = s.wiktionaryRandomTitle(ctx, languageCode)
	if err == nil && word != "" {
		return word, nil
	}
	if err != nil {
		slog.Default().Warn("Wiktionary random title failed, degrading to the offline English list",
			"language", languageCode,
			"error", err)
	}

	return s.fallback.Pick(ctx, languageCode)
}

func (s *RemoteSource) randomWord(ctx context.Context, languageCode string) (string, error) {
	var word string
	if err := retry.Do(
		func() error {
			response, err := s.httpClient.R().
				SetContext(ctx).
				SetQueryParam("lang", languageCode).
				SetResult(&[]string{}).
				Get(s.randomWordURL)
			if err != nil {
				return fmt.Errorf("httpClient.Get > %w", err)
			}
			if response.IsError() {
				return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
			}
			words := response.Result().(*[]string)
			if words == nil || len(*words) == 0 {
				return retry.Unrecoverable(fmt.Errorf("empty random word response"))
			}
			word = (*words)[0]
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(s.retryAttempts),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return "", err
	}
	return word, nil
}

type wiktionaryRandomResponse struct {
	Query struct {
		Random []struct {
			Title string `json:"title"`
		} `json:"random"`
	} `json:"query"`
}

func (s *RemoteSource) wiktionaryRandomTitle(ctx context.Context, languageCode string) (string, error) {
	url := strings.ReplaceAll(s.wiktionaryBaseURL, langToken, languageCode) + "/w/api.php"

	var title string
	if err := retry.Do(
		func() error {
			response, err := s.httpClient.R().
				SetContext(ctx).
				SetQueryParams(map[string]string{
					"action":      "query",
					"list":        "random",
					"rnnamespace": "0",
					"rnlimit":     "1",
					"format":      "json",
					"origin":      "*",
				}).
				SetResult(&wiktionaryRandomResponse{}).
				Get(url)
			if err != nil {
				return fmt.Errorf("httpClient.Get > %w", err)
			}
			if response.IsError() {
				return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
			}
			body := response.Result().(*wiktionaryRandomResponse)
			if body == nil || len(body.Query.Random) == 0 {
				return retry.Unrecoverable(fmt.Errorf("empty wiktionary random response"))
			}
			title = body.Query.Random[0].Title
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(s.retryAttempts),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return "", err
	}
	return title, nil
}
