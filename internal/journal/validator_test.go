package journal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEntryFile(t *testing.T, directory string, name string, entry Entry) {
	t.Helper()
	raw, err := FormatEntryFile(entry)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(directory, name+".md"), raw, 0644))
}

func TestValidator_Validate(t *testing.T) {
	directory := t.TempDir()

	valid := entryOn(t, "2025-06-19", "Jest mocking")
	valid.Body = "Notes on jest.fn.\n"
	writeEntryFile(t, directory, valid.ID(), valid)

	result, err := NewValidator(directory).Validate()
	require.NoError(t, err)
	assert.False(t, result.HasErrors())
	assert.Empty(t, result.Warnings)
}

func TestValidator_Validate_malformedFile(t *testing.T) {
	directory := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(directory, "broken.md"), []byte("no front matter here\n"), 0644))

	result, err := NewValidator(directory).Validate()
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, "front-matter")
}

func TestValidator_Validate_invariantViolation(t *testing.T) {
	directory := t.TempDir()

	invalid := entryOn(t, "2025-06-19", "Bad score")
	invalid.EffectivenessScore = 6
	writeEntryFile(t, directory, invalid.ID(), invalid)

	result, err := NewValidator(directory).Validate()
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, "effectiveness_score")
}

func TestValidator_Validate_duplicateIdentity(t *testing.T) {
	directory := t.TempDir()

	entry := entryOn(t, "2025-06-19", "Jest mocking")
	entry.Body = "first copy\n"
	writeEntryFile(t, directory, entry.ID(), entry)

	duplicate := entry
	duplicate.Body = "second copy\n"
	writeEntryFile(t, directory, "another-name", duplicate)

	result, err := NewValidator(directory).Validate()
	require.NoError(t, err)

	messages := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		messages = append(messages, e.Message)
	}
	// one file carries both a duplicate and a filename mismatch
	assert.Len(t, result.Errors, 2)
	assert.Contains(t, messages[0], "duplicate entry")
	assert.Contains(t, messages[1], "does not match entry identity")
}

func TestValidator_Validate_filenameMismatch(t *testing.T) {
	directory := t.TempDir()

	entry := entryOn(t, "2025-06-19", "Jest mocking")
	entry.Body = "some notes\n"
	writeEntryFile(t, directory, "misnamed", entry)

	result, err := NewValidator(directory).Validate()
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, `filename "misnamed"`)
}

func TestValidator_Validate_emptyBodyWarning(t *testing.T) {
	directory := t.TempDir()

	entry := entryOn(t, "2025-06-19", "Jest mocking")
	writeEntryFile(t, directory, entry.ID(), entry)

	result, err := NewValidator(directory).Validate()
	require.NoError(t, err)
	assert.False(t, result.HasErrors())
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "entry has no body text", result.Warnings[0].Message)
}
