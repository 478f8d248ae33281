package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/studylog/internal/journal"
	"github.com/at-ishikawa/studylog/internal/pdf"
	"github.com/at-ishikawa/studylog/internal/report"
)

func newReportCommand() *cobra.Command {
	var (
		fromStr     string
		toStr       string
		generatePDF bool
	)

	command := &cobra.Command{
		Use:   "report",
		Short: "Write a Markdown digest of journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			var filter journal.Filter
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

			repository := journal.NewFileRepository(cfg.Journal.EntriesDirectory)
			store, err := repository.LoadStore(cmd.Context())
			if err != nil {
				return fmt.Errorf("repository.LoadStore() > %w", err)
			}

			var entries []journal.Entry
			for entry := range store.List(filter) {
				entries = append(entries, entry)
			}

			writer := report.NewWriter(cfg.Outputs.ReportDirectory)
			path, err := writer.Write(entries, time.Now())
			if err != nil {
				return fmt.Errorf("writer.Write() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote report to %s\n", path)

			if generatePDF {
				pdfPath, err := pdf.ConvertMarkdownToPDF(path)
				if err != nil {
					return fmt.Errorf("pdf.ConvertMarkdownToPDF() > %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote PDF to %s\n", pdfPath)
			}
			return nil
		},
	}

	flags := command.Flags()
	flags.StringVar(&fromStr, "from", "", "Earliest date to include, YYYY-MM-DD")
	flags.StringVar(&toStr, "to", "", "Latest date to include, YYYY-MM-DD")
	flags.BoolVar(&generatePDF, "pdf", false, "Generate PDF output in addition to markdown")

	return command
}
