// Package datasync provides import orchestration from journal files to the database.
package datasync

import (
	"context"
	"fmt"
	"io"

	"github.com/at-ishikawa/studylog/internal/journal"
)

// ImportResult tracks counts for an import run.
type ImportResult struct {
	EntriesNew     int
	EntriesSkipped int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	// DryRun reports what would be imported without writing to the database.
	DryRun bool
}

// Importer copies journal entries into the database. Entries are append-only,
// so records already present are skipped, never rewritten.
type Importer struct {
	entryRepo journal.EntryRepository
	writer    io.Writer
}

// NewImporter creates a new Importer writing progress to writer.
func NewImporter(entryRepo journal.EntryRepository, writer io.Writer) *Importer {
	return &Importer{
		entryRepo: entryRepo,
		writer:    writer,
	}
}

// Import inserts the given entries into the database, skipping entries whose
// identity already exists.
func (i *Importer) Import(ctx context.Context, entries []journal.Entry, opts ImportOptions) (*ImportResult, error) {
	existing, err := i.entryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("entryRepo.FindAll() > %w", err)
	}

	existingIDs := make(map[string]struct{}, len(existing))
	for _, entry := range existing {
		existingIDs[entry.ID()] = struct{}{}
	}

	result := &ImportResult{}
	var toCreate []journal.Entry
	for _, entry := range entries {
		id := entry.ID()
		if _, ok := existingIDs[id]; ok {
			result.EntriesSkipped++
			continue
		}

		result.EntriesNew++
		toCreate = append(toCreate, entry)
		if opts.DryRun {
			fmt.Fprintf(i.writer, "[dry-run] would import entry %s\n", id)
			continue
		}
		fmt.Fprintf(i.writer, "importing entry %s\n", id)
	}

	if !opts.DryRun && len(toCreate) > 0 {
		if err := i.entryRepo.BatchCreate(ctx, toCreate); err != nil {
			return nil, fmt.Errorf("entryRepo.BatchCreate() > %w", err)
		}
	}

	return result, nil
}
