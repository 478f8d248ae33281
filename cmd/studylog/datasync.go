package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/studylog/internal/database"
	"github.com/at-ishikawa/studylog/internal/datasync"
	"github.com/at-ishikawa/studylog/internal/journal"
	"github.com/at-ishikawa/studylog/schemas"
)

func newDatasyncCommand() *cobra.Command {
	datasyncCommands := &cobra.Command{
		Use:   "datasync",
		Short: "Synchronize journal files with the database",
	}

	datasyncCommands.AddCommand(
		newDatasyncMigrateCommand(),
		newDatasyncImportCommand(),
	)

	return datasyncCommands
}

func newDatasyncMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			if err := database.ApplyMigrations(cmd.Context(), db, schemas.Migrations); err != nil {
				return fmt.Errorf("database.ApplyMigrations() > %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
			return nil
		},
	}
}

func newDatasyncImportCommand() *cobra.Command {
	var dryRun bool

	command := &cobra.Command{
		Use:   "import",
		Short: "Import journal entries into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			fileRepo := journal.NewFileRepository(cfg.Journal.EntriesDirectory)
			entries, err := fileRepo.FindAll(ctx)
			if err != nil {
				return fmt.Errorf("fileRepo.FindAll() > %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			importer := datasync.NewImporter(journal.NewDBRepository(db), cmd.OutOrStdout())
			result, err := importer.Import(ctx, entries, datasync.ImportOptions{DryRun: dryRun})
			if err != nil {
				return fmt.Errorf("importer.Import() > %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries, skipped %d already present\n",
				result.EntriesNew, result.EntriesSkipped)
			return nil
		},
	}

	command.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be imported without writing")

	return command
}
