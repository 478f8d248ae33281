package journal

import (
	"iter"
	"sync"
)

// Store holds the ordered set of entries and guarantees stable chronological
// retrieval: date ascending, ties broken by insertion order. Append and Remove
// are guarded by a mutex; the journal is single-user so no further concurrency
// control is needed.
type Store struct {
	mu      sync.Mutex
	entries []Entry
	ids     map[string]struct{}
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		ids: make(map[string]struct{}),
	}
}

// Append validates the entry and inserts it in chronological position.
// It returns a *ValidationError when an invariant is violated or when an
// entry with the same identity already exists.
func (s *Store) Append(entry Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := entry.ID()
	if _, ok := s.ids[id]; ok {
		return &ValidationError{
			Field:   "id",
			Value:   id,
			Message: "an entry with this date and title already exists",
		}
	}

	// Insert after the last entry with the same or an earlier date so that
	// same-day entries keep insertion order.
	pos := len(s.entries)
	for pos > 0 && s.entries[pos-1].Date.After(entry.Date.Time) {
		pos--
	}
	s.entries = append(s.entries, Entry{})
	copy(s.entries[pos+1:], s.entries[pos:])
	s.entries[pos] = entry
	s.ids[id] = struct{}{}
	return nil
}

// Remove deletes the entry with the given ID wholesale. It returns a
// *NotFoundError and leaves the store unchanged when the ID is unknown.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[id]; !ok {
		return &NotFoundError{ID: id}
	}
	for i, entry := range s.entries {
		if entry.ID() == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	delete(s.ids, id)
	return nil
}

// Get returns the entry with the given ID.
func (s *Store) Get(id string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[id]; !ok {
		return Entry{}, &NotFoundError{ID: id}
	}
	for _, entry := range s.entries {
		if entry.ID() == id {
			return entry, nil
		}
	}
	return Entry{}, &NotFoundError{ID: id}
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// List returns a lazy, restartable sequence of entries matching the filter,
// in date-ascending order with ties in insertion order. The sequence iterates
// over a snapshot, so later Append/Remove calls do not affect it.
func (s *Store) List(filter Filter) iter.Seq[Entry] {
	s.mu.Lock()
	snapshot := make([]Entry, len(s.entries))
	copy(snapshot, s.entries)
	s.mu.Unlock()

	return func(yield func(Entry) bool) {
		for _, entry := range snapshot {
			if !filter.Match(entry) {
				continue
			}
			if !yield(entry) {
				return
			}
		}
	}
}

// All returns every entry as a slice, in chronological order.
func (s *Store) All() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)
	return entries
}
