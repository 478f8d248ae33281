package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/studylog/internal/database"
)

// EntryRecord represents a journal entry row in the database.
type EntryRecord struct {
	ID                 string    `db:"id"`
	Date               time.Time `db:"date"`
	Title              string    `db:"title"`
	DurationMinutes    int       `db:"duration_minutes"`
	EffectivenessScore int       `db:"effectiveness_score"`
	EffectivenessKind  string    `db:"effectiveness_kind"`
	Tags               string    `db:"tags"`
	Body               string    `db:"body"`
	CreatedAt          time.Time `db:"created_at"`
}

func toRecord(entry Entry) EntryRecord {
	return EntryRecord{
		ID:                 entry.ID(),
		Date:               entry.Date.Time,
		Title:              entry.Title,
		DurationMinutes:    entry.DurationMinutes,
		EffectivenessScore: entry.EffectivenessScore,
		EffectivenessKind:  string(entry.EffectivenessKind),
		Tags:               strings.Join(entry.Tags, ","),
		Body:               entry.Body,
	}
}

func fromRecord(record EntryRecord) Entry {
	var tags []string
	if record.Tags != "" {
		tags = strings.Split(record.Tags, ",")
	}
	return Entry{
		Date:               NewDate(record.Date),
		Title:              record.Title,
		DurationMinutes:    record.DurationMinutes,
		EffectivenessScore: record.EffectivenessScore,
		EffectivenessKind:  EffectivenessKind(record.EffectivenessKind),
		Tags:               tags,
		Body:               record.Body,
	}
}

// DBRepository implements EntryRepository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindAll returns all entries ordered by date, insertion order on ties.
func (r *DBRepository) FindAll(ctx context.Context) ([]Entry, error) {
	var records []EntryRecord
	if err := r.db.SelectContext(ctx, &records, "SELECT * FROM entries ORDER BY `date`, created_at"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(entries) > %w", err)
	}

	entries := make([]Entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, fromRecord(record))
	}
	return entries, nil
}

// Create inserts a single entry.
func (r *DBRepository) Create(ctx context.Context, entry Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	record := toRecord(entry)
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO entries (id, `date`, title, duration_minutes, effectiveness_score, effectiveness_kind, tags, body) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		record.ID, record.Date, record.Title, record.DurationMinutes,
		record.EffectivenessScore, record.EffectivenessKind, record.Tags, record.Body)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert entry) > %w", err)
	}
	return nil
}

// BatchCreate inserts multiple entries in a single transaction using a
// multi-row INSERT.
func (r *DBRepository) BatchCreate(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		columns := []string{"id", "`date`", "title", "duration_minutes", "effectiveness_score", "effectiveness_kind", "tags", "body"}
		query := database.BuildMultiRowInsert("entries", columns, len(entries))

		var args []interface{}
		for _, entry := range entries {
			record := toRecord(entry)
			args = append(args, record.ID, record.Date, record.Title, record.DurationMinutes,
				record.EffectivenessScore, record.EffectivenessKind, record.Tags, record.Body)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert entries: %w", err)
		}
		return nil
	})
}

// DeleteByID deletes an entry by identity. It fails with a *NotFoundError
// when no row matches.
func (r *DBRepository) DeleteByID(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("db.ExecContext(delete entry) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return &NotFoundError{ID: id}
	}
	return nil
}

// FindByID returns a single entry, or a *NotFoundError when absent.
func (r *DBRepository) FindByID(ctx context.Context, id string) (*Entry, error) {
	var record EntryRecord
	err := r.db.GetContext(ctx, &record, "SELECT * FROM entries WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(entry) > %w", err)
	}
	entry := fromRecord(record)
	return &entry, nil
}

var _ EntryRepository = (*DBRepository)(nil)
