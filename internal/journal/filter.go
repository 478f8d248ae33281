package journal

// Filter is a declarative query over the journal: a date range, a tag set,
// an effectiveness kind set, and a minimum score. Zero values mean "no
// constraint". A Filter compiles to a pure predicate applied during List.
type Filter struct {
	// From and To bound the entry date, inclusive on both ends.
	From Date
	To   Date

	// Tags matches entries carrying at least one of the given tags.
	Tags []string

	// Kinds matches entries whose effectiveness kind is one of the given set.
	Kinds []EffectivenessKind

	// MinScore matches entries with an effectiveness score of at least this value.
	MinScore int
}

// Match reports whether the entry satisfies every constraint of the filter.
// It is deterministic and has no side effects.
func (f Filter) Match(entry Entry) bool {
	if !f.From.IsZero() && entry.Date.Before(f.From.Time) {
		return false
	}
	if !f.To.IsZero() && entry.Date.After(f.To.Time) {
		return false
	}
	if f.MinScore > 0 && entry.EffectivenessScore < f.MinScore {
		return false
	}
	if len(f.Kinds) > 0 && !containsKind(f.Kinds, entry.EffectivenessKind) {
		return false
	}
	if len(f.Tags) > 0 && !hasAnyTag(entry.Tags, f.Tags) {
		return false
	}
	return true
}

func containsKind(kinds []EffectivenessKind, kind EffectivenessKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func hasAnyTag(entryTags, wanted []string) bool {
	for _, w := range wanted {
		for _, t := range entryTags {
			if t == w {
				return true
			}
		}
	}
	return false
}
