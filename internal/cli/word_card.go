// Package cli renders daily words for the terminal.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/dailywordwidget/dailyword/internal/language"
	"github.com/dailywordwidget/dailyword/internal/wordday"
)

// WordCardRenderer writes a word card to a terminal writer.
type WordCardRenderer struct {
	writer io.Writer
	bold   *color.Color
	italic *color.Color
	faint  *color.Color
}

// NewWordCardRenderer creates a renderer writing to writer.
func NewWordCardRenderer(writer io.Writer) *WordCardRenderer {
	return &WordCardRenderer{
		writer: writer,
		bold:   color.New(color.Bold),
		italic: color.New(color.Italic),
		faint:  color.New(color.Faint),
	}
}

// Render prints a single word card.
func (r *WordCardRenderer) Render(word wordday.DailyWord) error {
	lang := language.ByCode(word.Language)

	header := r.bold.Sprint(word.Word)
	if word.Phonetic != "" {
		header += " " + r.italic.Sprint(word.Phonetic)
	}
	if _, err := fmt.Fprintln(r.writer, header); err != nil {
		return fmt.Errorf("fmt.Fprintln > %w", err)
	}

	if word.PartOfSpeech != "" {
		if _, err := fmt.Fprintln(r.writer, r.faint.Sprint(word.PartOfSpeech)); err != nil {
			return fmt.Errorf("fmt.Fprintln > %w", err)
		}
	}
	if _, err := fmt.Fprintln(r.writer, word.Definition); err != nil {
		return fmt.Errorf("fmt.Fprintln > %w", err)
	}
	if word.Example != "" {
		if _, err := fmt.Fprintf(r.writer, "%s %s\n", r.faint.Sprint("e.g."), word.Example); err != nil {
			return fmt.Errorf("fmt.Fprintf > %w", err)
		}
	}

	if _, err := fmt.Fprintf(r.writer, "%s %s %s\n",
		lang.Flag, lang.Name, r.faint.Sprint(word.Date.Local().Format("2006-01-02"))); err != nil {
		return fmt.Errorf("fmt.Fprintf > %w", err)
	}
	return nil
}
