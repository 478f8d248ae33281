// Package journal provides the study journal data model and storage.
package journal

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EffectivenessKind categorizes how a study session helped.
type EffectivenessKind string

const (
	KindDeepenedUnderstanding EffectivenessKind = "deepened understanding"
	KindGeneratedNewIdeas     EffectivenessKind = "generated new ideas"
	KindOrganizedKnowledge    EffectivenessKind = "organized existing knowledge"
	KindIdentifiedGaps        EffectivenessKind = "identified gaps"
)

// EffectivenessKinds lists all valid kinds in display order.
func EffectivenessKinds() []EffectivenessKind {
	return []EffectivenessKind{
		KindDeepenedUnderstanding,
		KindGeneratedNewIdeas,
		KindOrganizedKnowledge,
		KindIdentifiedGaps,
	}
}

// IsValid reports whether the kind belongs to the closed set.
func (k EffectivenessKind) IsValid() bool {
	switch k {
	case KindDeepenedUnderstanding, KindGeneratedNewIdeas, KindOrganizedKnowledge, KindIdentifiedGaps:
		return true
	}
	return false
}

const (
	// MinEffectivenessScore and MaxEffectivenessScore bound the 1-5 self-rating.
	MinEffectivenessScore = 1
	MaxEffectivenessScore = 5
)

// Entry is a single dated learning-log record. Entries are immutable after
// creation: the store only appends or removes whole records.
type Entry struct {
	Date               Date              `yaml:"date"`
	Title              string            `yaml:"title" validate:"required"`
	DurationMinutes    int               `yaml:"duration_minutes" validate:"min=0"`
	EffectivenessScore int               `yaml:"effectiveness_score" validate:"min=1,max=5"`
	EffectivenessKind  EffectivenessKind `yaml:"effectiveness_kind"`
	Tags               []string          `yaml:"tags,omitempty"`

	// Body is opaque free text. It may contain nested code samples and is
	// never parsed or executed.
	Body string `yaml:"-"`
}

// ID returns the entry identity: the date followed by the slugified title,
// e.g. "2025-06-19-jest-mock-functions". It doubles as the persisted filename
// stem.
func (e Entry) ID() string {
	return fmt.Sprintf("%s-%s", e.Date.Format("2006-01-02"), Slugify(e.Title))
}

// Validate checks the invariants of a single entry. It returns a
// *ValidationError describing the first violated field.
func (e Entry) Validate() error {
	if e.Date.IsZero() {
		return &ValidationError{Field: "date", Message: "date is required"}
	}
	if strings.TrimSpace(e.Title) == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if e.DurationMinutes < 0 {
		return &ValidationError{
			Field:   "duration_minutes",
			Value:   fmt.Sprintf("%d", e.DurationMinutes),
			Message: "duration must not be negative",
		}
	}
	if e.EffectivenessScore < MinEffectivenessScore || e.EffectivenessScore > MaxEffectivenessScore {
		return &ValidationError{
			Field:   "effectiveness_score",
			Value:   fmt.Sprintf("%d", e.EffectivenessScore),
			Message: fmt.Sprintf("score must be between %d and %d", MinEffectivenessScore, MaxEffectivenessScore),
		}
	}
	if !e.EffectivenessKind.IsValid() {
		return &ValidationError{
			Field:   "effectiveness_kind",
			Value:   string(e.EffectivenessKind),
			Message: fmt.Sprintf("kind must be one of: %s", joinKinds(EffectivenessKinds())),
		}
	}
	return nil
}

func joinKinds(kinds []EffectivenessKind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a title into a lowercase hyphenated identifier.
func Slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// Date represents a calendar date in YYYY-MM-DD format for YAML serialization.
type Date struct {
	time.Time
}

// NewDate creates a Date from a time.Time, truncated to the calendar day.
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return Date{}, fmt.Errorf("unable to parse date %q: expected YYYY-MM-DD format", value)
	}
	return Date{Time: t}, nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.Format("2006-01-02"), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	// First try the YYYY-MM-DD format
	t, err := time.Parse("2006-01-02", value.Value)
	if err == nil {
		d.Time = t
		return nil
	}

	// Older entries carried full RFC3339 timestamps
	t, err = time.Parse(time.RFC3339, value.Value)
	if err == nil {
		d.Time = t
		return nil
	}

	return fmt.Errorf("unable to parse date '%s': expected YYYY-MM-DD or RFC3339 format", value.Value)
}
