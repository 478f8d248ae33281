// Package report renders study journal digests as Markdown.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/at-ishikawa/studylog/internal/journal"
	"github.com/at-ishikawa/studylog/internal/statistics"
)

// Writer renders filtered journal entries into a Markdown digest file.
type Writer struct {
	outputDirectory string
}

// NewWriter creates a report writer for the given output directory.
func NewWriter(outputDirectory string) *Writer {
	return &Writer{outputDirectory: outputDirectory}
}

// Write renders the entries into a dated Markdown report and returns its path.
// Entries are expected in chronological order, as produced by Store.List.
func (w *Writer) Write(entries []journal.Entry, generatedAt time.Time) (string, error) {
	if err := os.MkdirAll(w.outputDirectory, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", w.outputDirectory, err)
	}

	path := filepath.Join(w.outputDirectory, fmt.Sprintf("report-%s.md", generatedAt.Format("2006-01-02")))
	content := Render(entries, generatedAt)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return path, nil
}

// Render produces the Markdown digest for the entries.
func Render(entries []journal.Entry, generatedAt time.Time) string {
	var sb strings.Builder

	sb.WriteString("# Study journal report\n\n")
	sb.WriteString(fmt.Sprintf("Generated on %s.\n\n", generatedAt.Format("2006-01-02")))

	result := statistics.Calculate(entries, 0, 0)
	sb.WriteString(fmt.Sprintf("%d sessions, %s total", result.Aggregate.Sessions, formatMinutes(result.Aggregate.TotalMinutes)))
	if result.Aggregate.Sessions > 0 {
		sb.WriteString(fmt.Sprintf(", average effectiveness %.1f/5", result.Aggregate.AverageScore))
	}
	sb.WriteString(".\n")

	for _, entry := range entries {
		sb.WriteString("\n## " + entry.Date.Format("2006-01-02") + ": " + entry.Title + "\n\n")
		sb.WriteString(fmt.Sprintf("- Duration: %s\n", formatMinutes(entry.DurationMinutes)))
		sb.WriteString(fmt.Sprintf("- Effectiveness: %d/5 (%s)\n", entry.EffectivenessScore, entry.EffectivenessKind))
		if len(entry.Tags) > 0 {
			sb.WriteString(fmt.Sprintf("- Tags: %s\n", strings.Join(entry.Tags, ", ")))
		}
		if body := strings.TrimSpace(entry.Body); body != "" {
			sb.WriteString("\n" + body + "\n")
		}
	}

	return sb.String()
}

func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh%dm", minutes/60, minutes%60)
}
