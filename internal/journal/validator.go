package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileValidationError represents a single validation finding for a journal file.
type FileValidationError struct {
	File     string
	Message  string
	Severity string // "error" or "warning"
}

func (e FileValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

// ValidationResult groups validation findings for a journal directory.
type ValidationResult struct {
	Errors   []FileValidationError
	Warnings []FileValidationError
}

func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

func (r *ValidationResult) AddError(file, message string) {
	r.Errors = append(r.Errors, FileValidationError{File: file, Message: message, Severity: "error"})
}

func (r *ValidationResult) AddWarning(file, message string) {
	r.Warnings = append(r.Warnings, FileValidationError{File: file, Message: message, Severity: "warning"})
}

// Validator checks every entry file in a journal directory against the entry
// invariants. Legacy entries are validated with the same strictness as new
// ones; malformed records are reported, never silently dropped.
type Validator struct {
	directory string
}

// NewValidator creates a validator for the given journal directory.
func NewValidator(directory string) *Validator {
	return &Validator{directory: directory}
}

// Validate scans the journal directory and reports malformed entries,
// invariant violations, duplicate identities, and filename mismatches.
func (v *Validator) Validate() (*ValidationResult, error) {
	result := &ValidationResult{}
	seen := make(map[string]string) // entry ID -> first file

	err := filepath.Walk(v.directory, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".md" {
			return nil
		}

		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			return fmt.Errorf("os.ReadFile(%s) > %w", path, readErr)
		}

		entry, parseErr := ParseEntryFile(raw)
		if parseErr != nil {
			result.AddError(path, parseErr.Error())
			return nil
		}

		if validateErr := entry.Validate(); validateErr != nil {
			result.AddError(path, validateErr.Error())
			return nil
		}

		id := entry.ID()
		if first, ok := seen[id]; ok {
			result.AddError(path, fmt.Sprintf("duplicate entry %q, first seen in %s", id, first))
		} else {
			seen[id] = path
		}

		stem := strings.TrimSuffix(filepath.Base(path), ".md")
		if stem != id {
			result.AddError(path, fmt.Sprintf("filename %q does not match entry identity %q", stem, id))
		}

		if strings.TrimSpace(entry.Body) == "" {
			result.AddWarning(path, "entry has no body text")
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("filepath.Walk(%s) > %w", v.directory, err)
	}

	return result, nil
}
