package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/studylog/internal/journal"
	"github.com/at-ishikawa/studylog/internal/testutil"
)

func TestSortFlag_Set(t *testing.T) {
	tests := []struct {
		value   string
		want    SortFlag
		wantErr bool
	}{
		{value: "asc", want: SortAscending},
		{value: "desc", want: SortDescending},
		{value: "newest", wantErr: true},
		{value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var flag SortFlag
			err := flag.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, flag)
		})
	}
}

func TestKindFlag_Set(t *testing.T) {
	var flag KindFlag

	require.NoError(t, flag.Set("deepened understanding"))
	assert.Equal(t, "deepened understanding", flag.String())

	err := flag.Set("felt productive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid values are")
}

func TestEntriesAddCommand(t *testing.T) {
	tmpDir := useTestConfig(t)

	out, err := runCommand(t, newEntriesAddCommand(),
		"--title", "Jest mock functions",
		"--date", "2025-06-19",
		"--duration", "45",
		"--score", "4",
		"--kind", "deepened understanding",
		"--tag", "jest",
		"--tag", "testing",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Added entry 2025-06-19-jest-mock-functions")

	raw, err := os.ReadFile(filepath.Join(entriesDirectory(tmpDir), "2025-06-19-jest-mock-functions.md"))
	require.NoError(t, err)

	entry, err := journal.ParseEntryFile(raw)
	require.NoError(t, err)
	assert.Equal(t, "Jest mock functions", entry.Title)
	assert.Equal(t, []string{"jest", "testing"}, entry.Tags)
}

func TestEntriesAddCommand_bodyFile(t *testing.T) {
	tmpDir := useTestConfig(t)

	bodyFile := filepath.Join(tmpDir, "body.md")
	require.NoError(t, os.WriteFile(bodyFile, []byte("Notes on jest.fn.\n"), 0644))

	_, err := runCommand(t, newEntriesAddCommand(),
		"--title", "Jest mock functions",
		"--date", "2025-06-19",
		"--duration", "45",
		"--score", "4",
		"--kind", "deepened understanding",
		"--body-file", bodyFile,
	)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(entriesDirectory(tmpDir), "2025-06-19-jest-mock-functions.md"))
	require.NoError(t, err)
	entry, err := journal.ParseEntryFile(raw)
	require.NoError(t, err)
	assert.Equal(t, "Notes on jest.fn.\n", entry.Body)
}

func TestEntriesAddCommand_invalidEntry(t *testing.T) {
	useTestConfig(t)

	_, err := runCommand(t, newEntriesAddCommand(),
		"--title", "Bad score",
		"--date", "2025-06-19",
		"--duration", "45",
		"--score", "6",
		"--kind", "deepened understanding",
	)
	var validationErr *journal.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestEntriesListCommand(t *testing.T) {
	tmpDir := useTestConfig(t)
	dir := entriesDirectory(tmpDir)

	testutil.WriteEntryFile(t, dir, testutil.NewEntry(t,
		time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC), "Next.js navigation"))
	testutil.WriteEntryFile(t, dir, testutil.NewEntry(t,
		time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC), "Jest mocking",
		testutil.WithScore(4), testutil.WithTags("jest")))

	out, err := runCommand(t, newEntriesListCommand())
	require.NoError(t, err)

	// chronological order regardless of file creation order
	assert.Less(t, strings.Index(out, "2025-06-19"), strings.Index(out, "2025-06-25"))
	assert.Contains(t, out, "Jest mocking")
	assert.Contains(t, out, "[jest]")
	assert.Contains(t, out, "Next.js navigation")
	assert.Contains(t, out, "2 entries")
}

func TestEntriesListCommand_descending(t *testing.T) {
	tmpDir := useTestConfig(t)
	dir := entriesDirectory(tmpDir)

	testutil.WriteEntryFile(t, dir, testutil.NewEntry(t,
		time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC), "Jest mocking"))
	testutil.WriteEntryFile(t, dir, testutil.NewEntry(t,
		time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC), "Next.js navigation"))

	out, err := runCommand(t, newEntriesListCommand(), "--sort", "desc")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "2025-06-25"), strings.Index(out, "2025-06-19"))
}

func TestEntriesListCommand_filters(t *testing.T) {
	tmpDir := useTestConfig(t)
	dir := entriesDirectory(tmpDir)

	testutil.WriteEntryFile(t, dir, testutil.NewEntry(t,
		time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC), "Jest mocking",
		testutil.WithScore(4), testutil.WithTags("jest")))
	testutil.WriteEntryFile(t, dir, testutil.NewEntry(t,
		time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC), "Next.js navigation",
		testutil.WithScore(2)))

	out, err := runCommand(t, newEntriesListCommand(), "--min-score", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Jest mocking")
	assert.NotContains(t, out, "Next.js navigation")
}

func TestEntriesListCommand_noEntries(t *testing.T) {
	useTestConfig(t)

	out, err := runCommand(t, newEntriesListCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "No entries found.")
}

func TestEntriesShowCommand(t *testing.T) {
	tmpDir := useTestConfig(t)
	dir := entriesDirectory(tmpDir)

	entry := testutil.NewEntry(t,
		time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC), "Jest mocking",
		testutil.WithBody("Notes on jest.fn.\n"))
	testutil.WriteEntryFile(t, dir, entry)

	out, err := runCommand(t, newEntriesShowCommand(), entry.ID())
	require.NoError(t, err)
	assert.Contains(t, out, "2025-06-19: Jest mocking")
	assert.Contains(t, out, "Duration: 30m")
	assert.Contains(t, out, "Notes on jest.fn.")
}

func TestEntriesShowCommand_notFound(t *testing.T) {
	useTestConfig(t)

	_, err := runCommand(t, newEntriesShowCommand(), "2025-01-01-missing")
	var notFoundErr *journal.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestEntriesRemoveCommand(t *testing.T) {
	tmpDir := useTestConfig(t)
	dir := entriesDirectory(tmpDir)

	entry := testutil.NewEntry(t, time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC), "Jest mocking")
	path := testutil.WriteEntryFile(t, dir, entry)

	out, err := runCommand(t, newEntriesRemoveCommand(), entry.ID())
	require.NoError(t, err)
	assert.Contains(t, out, "Removed entry "+entry.ID())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestEntriesRemoveCommand_notFound(t *testing.T) {
	useTestConfig(t)

	_, err := runCommand(t, newEntriesRemoveCommand(), "2025-01-01-missing")
	var notFoundErr *journal.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}
