package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dailywordwidget/dailyword/internal/cli"
	"github.com/dailywordwidget/dailyword/internal/dictionary"
	"github.com/dailywordwidget/dailyword/internal/language"
	"github.com/dailywordwidget/dailyword/internal/wordday"
)

func newWordCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "word",
		Short: "Show and manage the word of the day",
	}

	rootCommand.AddCommand(&cobra.Command{
		Use:   "current",
		Short: "Show today's word, fetching it when stale",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			service, cleanup, err := newService(cfg)
			if err != nil {
				return fmt.Errorf("newService > %w", err)
			}
			defer cleanup()

			word := service.CurrentWord(cmd.Context())
			return cli.NewWordCardRenderer(os.Stdout).Render(word)
		},
	})

	rootCommand.AddCommand(&cobra.Command{
		Use:   "refresh",
		Short: "Force-fetch a new word for today",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			service, cleanup, err := newService(cfg)
			if err != nil {
				return fmt.Errorf("newService > %w", err)
			}
			defer cleanup()

			word, err := service.Refresh(cmd.Context())
			if err != nil {
				return fmt.Errorf("service.Refresh > %w", err)
			}
			return cli.NewWordCardRenderer(os.Stdout).Render(word)
		},
	})

	rootCommand.AddCommand(&cobra.Command{
		Use:   "lookup",
		Short: "Look up a word's definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			wordStore, closeStore, err := newStore(cfg)
			if err != nil {
				return fmt.Errorf("newStore > %w", err)
			}
			defer func() {
				_ = closeStore()
			}()

			languageCode, err := wordStore.SelectedLanguage()
			if err != nil {
				return fmt.Errorf("store.SelectedLanguage > %w", err)
			}
			if languageCode == "" {
				languageCode = language.DefaultCode
			}

			lookup := dictionary.NewClient(cfg.Dictionary.BaseURL, cfg.Dictionary.CacheDirectory)
			entry, err := lookup.Lookup(cmd.Context(), args[0], languageCode)
			if err != nil {
				return fmt.Errorf("lookup.Lookup > %w", err)
			}
			if entry == nil {
				return fmt.Errorf("no definition found for %q", args[0])
			}

			word := wordday.FromEntry(*entry, languageCode, wordday.SystemClock{}.Now())
			return cli.NewWordCardRenderer(os.Stdout).Render(word)
		},
	})

	rootCommand.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the stored word and language",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			wordStore, closeStore, err := newStore(cfg)
			if err != nil {
				return fmt.Errorf("newStore > %w", err)
			}
			defer func() {
				_ = closeStore()
			}()

			if err := wordStore.Clear(); err != nil {
				return fmt.Errorf("store.Clear > %w", err)
			}
			fmt.Println("Cleared the stored state")
			return nil
		},
	})

	return &rootCommand
}
