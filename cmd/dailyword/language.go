package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dailywordwidget/dailyword/internal/language"
)

func newLanguageCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "language",
		Short: "Show and change the word language",
	}

	rootCommand.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the supported languages",
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

			selected, err := wordStore.SelectedLanguage()
			if err != nil {
				return fmt.Errorf("store.SelectedLanguage > %w", err)
			}
			if selected == "" {
				selected = language.DefaultCode
			}

			for _, lang := range language.Supported {
				marker := " "
				if lang.Code == selected {
					marker = "*"
				}
				fmt.Printf("%s %s %s (%s) [%s]\n", marker, lang.Flag, lang.Name, lang.NativeName, lang.Code)
			}
			return nil
		},
	})

	rootCommand.AddCommand(&cobra.Command{
		Use:   "set",
		Short: "Select the language for new words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			if !language.IsSupported(code) {
				return fmt.Errorf("unsupported language code %q, see \"language list\"", code)
			}

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

			if err := wordStore.SaveSelectedLanguage(code); err != nil {
				return fmt.Errorf("store.SaveSelectedLanguage > %w", err)
			}

			lang := language.ByCode(code)
			fmt.Printf("Selected %s %s, the next refresh picks a %s word\n", lang.Flag, lang.Name, lang.Name)
			return nil
		},
	})

	return &rootCommand
}
