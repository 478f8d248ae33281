// Package testutil provides shared test helpers for creating config files and journal fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/studylog/internal/journal"
)

// SetupTestConfig creates a minimal config file and the required directories
// for testing. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	for _, d := range []string{"entries", "reports"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`journal:
  entries_directory: %s
outputs:
  report_directory: %s
`,
		filepath.Join(tmpDir, "entries"),
		filepath.Join(tmpDir, "reports"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// EntryOption configures optional fields when creating an entry fixture.
type EntryOption func(*journal.Entry)

// WithTags sets the tags of the entry fixture.
func WithTags(tags ...string) EntryOption {
	return func(e *journal.Entry) {
		e.Tags = tags
	}
}

// WithScore sets the effectiveness score of the entry fixture.
func WithScore(score int) EntryOption {
	return func(e *journal.Entry) {
		e.EffectivenessScore = score
	}
}

// WithKind sets the effectiveness kind of the entry fixture.
func WithKind(kind journal.EffectivenessKind) EntryOption {
	return func(e *journal.Entry) {
		e.EffectivenessKind = kind
	}
}

// WithBody sets the body of the entry fixture.
func WithBody(body string) EntryOption {
	return func(e *journal.Entry) {
		e.Body = body
	}
}

// NewEntry creates a valid entry fixture for the given date and title.
func NewEntry(t *testing.T, date time.Time, title string, opts ...EntryOption) journal.Entry {
	t.Helper()

	entry := journal.Entry{
		Date:               journal.NewDate(date),
		Title:              title,
		DurationMinutes:    30,
		EffectivenessScore: 3,
		EffectivenessKind:  journal.KindDeepenedUnderstanding,
		Body:               "Worked through the official docs.\n",
	}
	for _, opt := range opts {
		opt(&entry)
	}
	return entry
}

// WriteEntryFile writes an entry fixture into the journal directory.
func WriteEntryFile(t *testing.T, dir string, entry journal.Entry) string {
	t.Helper()

	raw, err := journal.FormatEntryFile(entry)
	require.NoError(t, err)
	path := filepath.Join(dir, entry.ID()+".md")
	require.NoError(t, os.WriteFile(path, raw, 0644))
	return path
}
