package journal

import "context"

// EntryRepository defines operations for persisting journal entries.
type EntryRepository interface {
	FindAll(ctx context.Context) ([]Entry, error)
	Create(ctx context.Context, entry Entry) error
	BatchCreate(ctx context.Context, entries []Entry) error
	DeleteByID(ctx context.Context, id string) error
}
