package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jmoiron/sqlx"
)

// ApplyMigrations executes every .sql file under migrations/ in the given
// filesystem, in lexical order. Files are expected to be idempotent.
func ApplyMigrations(ctx context.Context, db *sqlx.DB, fsys fs.FS) error {
	paths, err := fs.Glob(fsys, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("fs.Glob(migrations) > %w", err)
	}
	sort.Strings(paths)

	for _, path := range paths {
		raw, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("fs.ReadFile(%s) > %w", path, err)
		}
		if _, err := db.ExecContext(ctx, string(raw)); err != nil {
			return fmt.Errorf("apply migration %s: %w", path, err)
		}
	}
	return nil
}
