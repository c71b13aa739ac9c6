package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(nil, slog.LevelDebug))
		})
	}
}

func TestNewWordCommand(t *testing.T) {
	cmd := newWordCommand()

	assert.Equal(t, "word", cmd.Use)
	assert.True(t, cmd.HasSubCommands())

	subcommands := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		subcommands = append(subcommands, sub.Use)
	}
	assert.ElementsMatch(t, []string{"current", "refresh", "lookup", "clear"}, subcommands)
}

func TestNewLanguageCommand(t *testing.T) {
	cmd := newLanguageCommand()

	assert.Equal(t, "language", cmd.Use)
	assert.True(t, cmd.HasSubCommands())

	subcommands := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		subcommands = append(subcommands, sub.Use)
	}
	assert.ElementsMatch(t, []string{"list", "set"}, subcommands)
}
