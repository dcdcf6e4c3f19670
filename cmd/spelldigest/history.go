package main

import (
	"fmt"

	"github.com/nao1215/spelldigest/internal/config"
	"github.com/nao1215/spelldigest/internal/database"
	"github.com/spf13/cobra"
)

// defaultHistoryLimit is the number of runs listed when -n is not given.
const defaultHistoryLimit = 20

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show saved runs",
		Long: `History lists the runs saved with 'spelldigest run --save', newest first.

Only final results are stored: the answer, the digested words and the
outcome counts.

Examples:
  # List the 20 most recent runs
  spelldigest history

  # List every run as JSON
  spelldigest history -n 0 --json

  # Show the details of run 3
  spelldigest history --id 3`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", defaultHistoryLimit,
		"Maximum number of runs to list (0 for all)")
	cmd.Flags().Int64P("id", "i", 0,
		"Show the details of a single run")
	cmd.Flags().BoolP("json", "j", false,
		"Output in JSON format")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output in Markdown format")
	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory of the run history database")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	limit, err := flags.GetInt("limit")
	if err != nil {
		return err
	}
	id, err := flags.GetInt64("id")
	if err != nil {
		return err
	}
	jsonOutput, err := flags.GetBool("json")
	if err != nil {
		return err
	}
	markdownOutput, err := flags.GetBool("markdown")
	if err != nil {
		return err
	}
	if jsonOutput && markdownOutput {
		return config.ErrConflictingReportFormats
	}
	dbDir, err := flags.GetString("db-dir")
	if err != nil {
		return err
	}

	// Reading history never creates a database.
	db, err := database.Open(dbDir, database.Options{CreateIfNotExists: false})
	if err != nil {
		return fmt.Errorf("no run history (save runs with 'spelldigest run --save'): %w", err)
	}
	defer db.Close()

	ctx := commandContext(cmd)
	w := newReportWriter(cmd.OutOrStdout(), jsonOutput, markdownOutput)

	if id != 0 {
		record, err := db.GetRun(ctx, id)
		if err != nil {
			return err
		}
		_, err = w.WriteSummary(record.Summary)
		return err
	}

	records, err := db.ListRuns(ctx, limit)
	if err != nil {
		return err
	}
	_, err = w.WriteHistory(records)
	return err
}
