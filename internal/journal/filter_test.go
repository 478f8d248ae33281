package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilter_Match(t *testing.T) {
	entry := Entry{
		Date:               NewDate(time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC)),
		Title:              "React re-rendering",
		DurationMinutes:    60,
		EffectivenessScore: 4,
		EffectivenessKind:  KindGeneratedNewIdeas,
		Tags:               []string{"react", "performance"},
	}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{
			name:   "empty filter matches everything",
			filter: Filter{},
			want:   true,
		},
		{
			name:   "date range containing the entry",
			filter: Filter{From: mustDate(t, "2025-06-01"), To: mustDate(t, "2025-06-30")},
			want:   true,
		},
		{
			name:   "date range boundaries are inclusive",
			filter: Filter{From: mustDate(t, "2025-06-21"), To: mustDate(t, "2025-06-21")},
			want:   true,
		},
		{
			name:   "entry before range",
			filter: Filter{From: mustDate(t, "2025-06-22")},
			want:   false,
		},
		{
			name:   "entry after range",
			filter: Filter{To: mustDate(t, "2025-06-20")},
			want:   false,
		},
		{
			name:   "matching tag",
			filter: Filter{Tags: []string{"react"}},
			want:   true,
		},
		{
			name:   "any of several tags is enough",
			filter: Filter{Tags: []string{"redux", "performance"}},
			want:   true,
		},
		{
			name:   "no matching tag",
			filter: Filter{Tags: []string{"redux"}},
			want:   false,
		},
		{
			name:   "matching kind",
			filter: Filter{Kinds: []EffectivenessKind{KindGeneratedNewIdeas}},
			want:   true,
		},
		{
			name:   "non-matching kind",
			filter: Filter{Kinds: []EffectivenessKind{KindIdentifiedGaps}},
			want:   false,
		},
		{
			name:   "score at threshold",
			filter: Filter{MinScore: 4},
			want:   true,
		},
		{
			name:   "score below threshold",
			filter: Filter{MinScore: 5},
			want:   false,
		},
		{
			name: "all constraints combined",
			filter: Filter{
				From:     mustDate(t, "2025-06-01"),
				To:       mustDate(t, "2025-06-30"),
				Tags:     []string{"react"},
				Kinds:    []EffectivenessKind{KindGeneratedNewIdeas},
				MinScore: 3,
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(entry))
		})
	}
}

func mustDate(t *testing.T, value string) Date {
	t.Helper()
	date, err := ParseDate(value)
	if err != nil {
		t.Fatalf("ParseDate(%s): %v", value, err)
	}
	return date
}
