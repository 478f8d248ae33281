package journal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileRepository persists one Markdown file per entry under a directory.
// The filename stem is the entry ID, e.g. "2025-06-19-jest-mock-functions.md".
type FileRepository struct {
	directory string
}

// NewFileRepository creates a FileRepository for the given journal directory.
func NewFileRepository(directory string) *FileRepository {
	return &FileRepository{directory: directory}
}

// FindAll reads every entry file in the journal directory.
func (r *FileRepository) FindAll(ctx context.Context) ([]Entry, error) {
	var entries []Entry

	err := filepath.Walk(r.directory, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".md" {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("os.ReadFile(%s) > %w", path, err)
		}
		entry, err := ParseEntryFile(raw)
		if err != nil {
			return fmt.Errorf("ParseEntryFile(%s) > %w", path, err)
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("filepath.Walk(%s) > %w", r.directory, err)
	}

	return entries, nil
}

// Create writes the entry to its file. It fails with a *ValidationError if
// the entry is invalid or its file already exists.
func (r *FileRepository) Create(ctx context.Context, entry Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	path := r.entryPath(entry.ID())
	if _, err := os.Stat(path); err == nil {
		return &ValidationError{
			Field:   "id",
			Value:   entry.ID(),
			Message: "an entry with this date and title already exists",
		}
	}

	raw, err := FormatEntryFile(entry)
	if err != nil {
		return fmt.Errorf("FormatEntryFile() > %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}

// BatchCreate writes multiple entries, stopping at the first failure.
func (r *FileRepository) BatchCreate(ctx context.Context, entries []Entry) error {
	for _, entry := range entries {
		if err := r.Create(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

// DeleteByID removes the entry file. It fails with a *NotFoundError if the
// file does not exist.
func (r *FileRepository) DeleteByID(ctx context.Context, id string) error {
	path := r.entryPath(id)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &NotFoundError{ID: id}
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("os.Remove(%s) > %w", path, err)
	}
	return nil
}

// LoadStore reads every entry into a fresh Store.
func (r *FileRepository) LoadStore(ctx context.Context) (*Store, error) {
	entries, err := r.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("FindAll() > %w", err)
	}

	store := NewStore()
	for _, entry := range entries {
		if err := store.Append(entry); err != nil {
			return nil, fmt.Errorf("store.Append(%s) > %w", entry.ID(), err)
		}
	}
	return store, nil
}

func (r *FileRepository) entryPath(id string) string {
	return filepath.Join(r.directory, id+".md")
}

var _ EntryRepository = (*FileRepository)(nil)
