package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/studylog/internal/journal"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate journal entry files for malformed or out-of-range fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			validator := journal.NewValidator(cfg.Journal.EntriesDirectory)
			result, err := validator.Validate()
			if err != nil {
				return fmt.Errorf("validator.Validate() > %w", err)
			}

			displayValidationResults(cmd, result)

			if result.HasErrors() {
				return fmt.Errorf("validation failed with %d error(s)", len(result.Errors))
			}
			return nil
		},
	}
}

func displayValidationResults(cmd *cobra.Command, result *journal.ValidationResult) {
	out := cmd.OutOrStdout()

	errorColor := color.New(color.FgRed)
	warningColor := color.New(color.FgYellow)

	for _, e := range result.Errors {
		fmt.Fprintf(out, "%s %s\n", errorColor.Sprint("error:"), e.Error())
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(out, "%s %s\n", warningColor.Sprint("warning:"), w.Error())
	}

	if !result.HasErrors() && len(result.Warnings) == 0 {
		fmt.Fprintln(out, "All entries are valid.")
	}
}
