package main

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/studylog/internal/testutil"
)

// useTestConfig points the package-level config flag at a fresh test config
// and returns the directory holding the entries and reports subdirectories.
func useTestConfig(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	previous := configFile
	configFile = testutil.SetupTestConfig(t, tmpDir)
	t.Cleanup(func() {
		configFile = previous
	})
	return tmpDir
}

func runCommand(t *testing.T, command *cobra.Command, args ...string) (string, error) {
	t.Helper()

	previous := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		color.NoColor = previous
	})

	var out bytes.Buffer
	command.SetOut(&out)
	command.SetErr(&out)
	command.SetArgs(args)
	err := command.Execute()
	return out.String(), err
}

func entriesDirectory(tmpDir string) string {
	return filepath.Join(tmpDir, "entries")
}

func TestSetupLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(previous)
	})

	setupLogger(false)
	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelInfo))

	setupLogger(true)
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))
}

func TestLoadConfig(t *testing.T) {
	tmpDir := useTestConfig(t)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, entriesDirectory(tmpDir), cfg.Journal.EntriesDirectory)
	assert.Equal(t, filepath.Join(tmpDir, "reports"), cfg.Outputs.ReportDirectory)
}
