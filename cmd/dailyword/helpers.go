package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dailywordwidget/dailyword/internal/candidate"
	"github.com/dailywordwidget/dailyword/internal/config"
	"github.com/dailywordwidget/dailyword/internal/database"
	"github.com/dailywordwidget/dailyword/internal/dictionary"
	"github.com/dailywordwidget/dailyword/internal/store"
	"github.com/dailywordwidget/dailyword/internal/widget"
	"github.com/dailywordwidget/dailyword/internal/wordday"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newStore(cfg *config.Config) (wordday.Store, func() error, error) {
	if cfg.Storage.Backend == "db" {
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database.Open > %w", err)
		}
		if err := database.Migrate(db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("database.Migrate > %w", err)
		}
		return store.NewDBStore(db), db.Close, nil
	}
	return store.NewYAMLStore(cfg.Storage.StateDirectory), func() error { return nil }, nil
}

// newService wires the whole word pipeline. The returned cleanup closes the
// remote client and the store.
func newService(cfg *config.Config) (*wordday.Service, func(), error) {
	wordStore, closeStore, err := newStore(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("newStore > %w", err)
	}

	lookup := dictionary.NewClient(cfg.Dictionary.BaseURL, cfg.Dictionary.CacheDirectory)
	offline := candidate.NewOfflineSource(rand.New(rand.NewSource(time.Now().UnixNano())))
	remote := candidate.NewRemoteSource(cfg.Candidates.RandomWordURL, cfg.Candidates.WiktionaryBaseURL, offline)
	source := candidate.NewRouter(offline, remote)

	resolver := wordday.NewResolver(source, lookup)
	bridge := widget.NewSharedStoreBridge(widget.NewSharedStore(cfg.Widget.SharedDirectory))
	service := wordday.NewService(wordStore, resolver, lookup, bridge, nil)

	cleanup := func() {
		_ = remote.Close()
		_ = closeStore()
	}
	return service, cleanup, nil
}
