package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/studylog/internal/journal"
	"github.com/at-ishikawa/studylog/internal/statistics"
)

func newStatsCommand() *cobra.Command {
	var year, month int

	command := &cobra.Command{
		Use:   "stats",
		Short: "Show per-month study statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != 0 && year == 0 {
				return fmt.Errorf("--month requires --year")
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			repository := journal.NewFileRepository(cfg.Journal.EntriesDirectory)
			store, err := repository.LoadStore(cmd.Context())
			if err != nil {
				return fmt.Errorf("repository.LoadStore() > %w", err)
			}

			result := statistics.Calculate(store.All(), year, month)
			displayStatistics(cmd, result)
			return nil
		},
	}

	flags := command.Flags()
	flags.IntVar(&year, "year", 0, "Only count sessions in this year")
	flags.IntVar(&month, "month", 0, "Only count sessions in this month (requires --year)")

	return command
}

func displayStatistics(cmd *cobra.Command, result statistics.Result) {
	out := cmd.OutOrStdout()
	if result.Aggregate.Sessions == 0 {
		fmt.Fprintln(out, "No study sessions found.")
		return
	}

	bold := color.New(color.Bold)
	for _, period := range result.Periods {
		fmt.Fprintf(out, "%s  %3d sessions  %5dm  avg %s\n",
			bold.Sprint(period.Period),
			period.Sessions,
			period.TotalMinutes,
			scoreColor(int(period.AverageScore+0.5)).Sprintf("%.1f/5", period.AverageScore),
		)
		for _, kind := range journal.EffectivenessKinds() {
			if count := period.KindCounts[kind]; count > 0 {
				fmt.Fprintf(out, "    %s: %d\n", kind, count)
			}
		}
	}

	fmt.Fprintf(out, "\nTotal: %d sessions, %dm, avg %.1f/5\n",
		result.Aggregate.Sessions, result.Aggregate.TotalMinutes, result.Aggregate.AverageScore)
}
