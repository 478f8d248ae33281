// Package statistics aggregates study journal entries into per-period summaries.
package statistics

import (
	"fmt"
	"sort"

	"github.com/at-ishikawa/studylog/internal/journal"
)

// PeriodStatistics holds study statistics for one month.
type PeriodStatistics struct {
	Period       string // "2025-06"
	Sessions     int    // number of entries
	TotalMinutes int    // sum of session durations
	AverageScore float64
	KindCounts   map[journal.EffectivenessKind]int
}

// AggregateStatistics holds totals across all periods.
type AggregateStatistics struct {
	Sessions     int
	TotalMinutes int
	AverageScore float64
}

// Result holds both per-period and aggregate statistics.
type Result struct {
	Periods   []PeriodStatistics
	Aggregate AggregateStatistics
}

type periodData struct {
	sessions   int
	minutes    int
	scoreTotal int
	kindCounts map[journal.EffectivenessKind]int
}

// Calculate aggregates entries by month. Year and month filters are optional
// (0 means no filter); a month filter requires a year filter.
func Calculate(entries []journal.Entry, year, month int) Result {
	stats := make(map[string]*periodData)

	var totalSessions, totalMinutes, totalScore int
	for _, entry := range entries {
		entryYear := entry.Date.Year()
		entryMonth := int(entry.Date.Month())
		if !matchesFilter(entryYear, entryMonth, year, month) {
			continue
		}

		period := fmt.Sprintf("%d-%02d", entryYear, entryMonth)
		if stats[period] == nil {
			stats[period] = &periodData{
				kindCounts: make(map[journal.EffectivenessKind]int),
			}
		}

		data := stats[period]
		data.sessions++
		data.minutes += entry.DurationMinutes
		data.scoreTotal += entry.EffectivenessScore
		data.kindCounts[entry.EffectivenessKind]++

		totalSessions++
		totalMinutes += entry.DurationMinutes
		totalScore += entry.EffectivenessScore
	}

	periods := make([]PeriodStatistics, 0, len(stats))
	for period, data := range stats {
		periods = append(periods, PeriodStatistics{
			Period:       period,
			Sessions:     data.sessions,
			TotalMinutes: data.minutes,
			AverageScore: float64(data.scoreTotal) / float64(data.sessions),
			KindCounts:   data.kindCounts,
		})
	}

	// Sort by period descending (newest first)
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period > periods[j].Period
	})

	aggregate := AggregateStatistics{
		Sessions:     totalSessions,
		TotalMinutes: totalMinutes,
	}
	if totalSessions > 0 {
		aggregate.AverageScore = float64(totalScore) / float64(totalSessions)
	}

	return Result{
		Periods:   periods,
		Aggregate: aggregate,
	}
}

func matchesFilter(entryYear, entryMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if entryYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return entryMonth == filterMonth
}
