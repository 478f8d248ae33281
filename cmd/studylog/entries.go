package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/studylog/internal/journal"
)

type SortFlag string

// Set implements pflag.Value.
func (s *SortFlag) Set(v string) error {
	switch v {
	case string(SortDescending):
		*s = SortDescending
	case string(SortAscending):
		*s = SortAscending
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, SortDescending, SortAscending)
	}
	return nil
}

// String implements pflag.Value.
func (s *SortFlag) String() string {
	if s == nil {
		return ""
	}
	return string(*s)
}

// Type implements pflag.Value.
func (s *SortFlag) Type() string {
	return "SortFlag"
}

const (
	SortDescending SortFlag = "desc"
	SortAscending  SortFlag = "asc"
)

type KindFlag journal.EffectivenessKind

// Set implements pflag.Value.
func (k *KindFlag) Set(v string) error {
	kind := journal.EffectivenessKind(v)
	if !kind.IsValid() {
		var names []string
		for _, valid := range journal.EffectivenessKinds() {
			names = append(names, string(valid))
		}
		return fmt.Errorf("invalid value %q, valid values are: %s", v, strings.Join(names, ", "))
	}
	*k = KindFlag(kind)
	return nil
}

// String implements pflag.Value.
func (k *KindFlag) String() string {
	if k == nil {
		return ""
	}
	return string(*k)
}

// Type implements pflag.Value.
func (k *KindFlag) Type() string {
	return "KindFlag"
}

var (
	_ pflag.Value = (*SortFlag)(nil)
	_ pflag.Value = (*KindFlag)(nil)
)

func newEntriesCommand() *cobra.Command {
	entriesCommands := &cobra.Command{
		Use:   "entries",
		Short: "Append, list, show, and remove journal entries",
	}

	entriesCommands.AddCommand(
		newEntriesAddCommand(),
		newEntriesListCommand(),
		newEntriesShowCommand(),
		newEntriesRemoveCommand(),
	)

	return entriesCommands
}

func newEntriesAddCommand() *cobra.Command {
	var (
		title    string
		dateStr  string
		duration int
		score    int
		kind     KindFlag
		tags     []string
		bodyFile string
	)

	command := &cobra.Command{
		Use:   "add",
		Short: "Append a new study session entry to the journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			date := journal.NewDate(time.Now())
			if dateStr != "" {
				date, err = journal.ParseDate(dateStr)
				if err != nil {
					return err
				}
			}

			var body string
			if bodyFile != "" {
				raw, err := os.ReadFile(bodyFile)
				if err != nil {
					return fmt.Errorf("os.ReadFile(%s) > %w", bodyFile, err)
				}
				body = string(raw)
			}

			entry := journal.Entry{
				Date:               date,
				Title:              title,
				DurationMinutes:    duration,
				EffectivenessScore: score,
				EffectivenessKind:  journal.EffectivenessKind(kind),
				Tags:               tags,
				Body:               body,
			}

			if err := os.MkdirAll(cfg.Journal.EntriesDirectory, 0755); err != nil {
				return fmt.Errorf("os.MkdirAll(%s) > %w", cfg.Journal.EntriesDirectory, err)
			}
			repository := journal.NewFileRepository(cfg.Journal.EntriesDirectory)
			if err := repository.Create(cmd.Context(), entry); err != nil {
				return fmt.Errorf("repository.Create() > %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added entry %s\n", entry.ID())
			return nil
		},
	}

	flags := command.Flags()
	flags.StringVar(&title, "title", "", "Title of the study session")
	flags.StringVar(&dateStr, "date", "", "Date of the session in YYYY-MM-DD format (default: today)")
	flags.IntVar(&duration, "duration", 0, "Time spent in minutes")
	flags.IntVar(&score, "score", 0, "Effectiveness self-rating from 1 to 5")
	flags.Var(&kind, "kind", "Effectiveness kind")
	flags.StringArrayVar(&tags, "tag", nil, "Tag for the entry (repeatable)")
	flags.StringVar(&bodyFile, "body-file", "", "File containing the entry body text")
	_ = command.MarkFlagRequired("title")

	return command
}

func newEntriesListCommand() *cobra.Command {
	var (
		fromStr  string
		toStr    string
		tags     []string
		kind     KindFlag
		minScore int
	)
	sortFlag := SortAscending

	command := &cobra.Command{
		Use:   "list",
		Short: "List journal entries in chronological order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			filter := journal.Filter{
				Tags:     tags,
				MinScore: minScore,
			}
			if fromStr != "" {
				if filter.From, err = journal.ParseDate(fromStr); err != nil {
					return err
				}
			}
			if toStr != "" {
				if filter.To, err = journal.ParseDate(toStr); err != nil {
					return err
				}
			}
			if kind != "" {
				filter.Kinds = []journal.EffectivenessKind{journal.EffectivenessKind(kind)}
			}

			repository := journal.NewFileRepository(cfg.Journal.EntriesDirectory)
			store, err := repository.LoadStore(cmd.Context())
			if err != nil {
				return fmt.Errorf("repository.LoadStore() > %w", err)
			}

			var entries []journal.Entry
			for entry := range store.List(filter) {
				entries = append(entries, entry)
			}
			if sortFlag == SortDescending {
				for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
					entries[i], entries[j] = entries[j], entries[i]
				}
			}

			printEntries(cmd, entries)
			return nil
		},
	}

	flags := command.Flags()
	flags.StringVar(&fromStr, "from", "", "Earliest date to include, YYYY-MM-DD")
	flags.StringVar(&toStr, "to", "", "Latest date to include, YYYY-MM-DD")
	flags.StringArrayVar(&tags, "tag", nil, "Only entries carrying this tag (repeatable)")
	flags.Var(&kind, "kind", "Only entries with this effectiveness kind")
	flags.IntVar(&minScore, "min-score", 0, "Only entries with at least this effectiveness score")
	flags.Var(&sortFlag, "sort", "Sort order for the output. Options: asc, desc")

	return command
}

func printEntries(cmd *cobra.Command, entries []journal.Entry) {
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No entries found.")
		return
	}

	bold := color.New(color.Bold)
	for _, entry := range entries {
		fmt.Fprintf(out, "%s  %s  %3dm  %s",
			entry.Date.Format("2006-01-02"),
			scoreColor(entry.EffectivenessScore).Sprintf("%d/5", entry.EffectivenessScore),
			entry.DurationMinutes,
			bold.Sprint(entry.Title),
		)
		if len(entry.Tags) > 0 {
			fmt.Fprintf(out, "  [%s]", strings.Join(entry.Tags, ", "))
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "\n%d entries\n", len(entries))
}

func scoreColor(score int) *color.Color {
	switch {
	case score >= 4:
		return color.New(color.FgGreen)
	case score >= 3:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func newEntriesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <entry id>",
		Short: "Show a single journal entry including its body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			repository := journal.NewFileRepository(cfg.Journal.EntriesDirectory)
			store, err := repository.LoadStore(cmd.Context())
			if err != nil {
				return fmt.Errorf("repository.LoadStore() > %w", err)
			}

			entry, err := store.Get(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", entry.Date.Format("2006-01-02"), entry.Title)
			fmt.Fprintf(out, "Duration: %dm\n", entry.DurationMinutes)
			fmt.Fprintf(out, "Effectiveness: %d/5 (%s)\n", entry.EffectivenessScore, entry.EffectivenessKind)
			if len(entry.Tags) > 0 {
				fmt.Fprintf(out, "Tags: %s\n", strings.Join(entry.Tags, ", "))
			}
			if entry.Body != "" {
				fmt.Fprintf(out, "\n%s", entry.Body)
			}
			return nil
		},
	}
}

func newEntriesRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <entry id>",
		Short: "Remove a journal entry wholesale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			repository := journal.NewFileRepository(cfg.Journal.EntriesDirectory)
			if err := repository.DeleteByID(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed entry %s\n", args[0])
			return nil
		},
	}
}
