package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/UoEMainLibrary/dspace-additions/internal/config"
	"github.com/UoEMainLibrary/dspace-additions/internal/curation"
	"github.com/UoEMainLibrary/dspace-additions/internal/repository"
	"github.com/UoEMainLibrary/dspace-additions/internal/runlock"
)

var errRunFailed = errors.New("curation finished with status ERROR")

func newRunCommand(ctx *commandContext) *cobra.Command {
	var asTable bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "run <task> <handle>",
		Short: "Perform a curation task on an item, collection, or community",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asTable && asJSON {
				return errors.New("--table and --json are mutually exclusive")
			}
			taskName := strings.TrimSpace(args[0])
			handle := strings.TrimSpace(args[1])

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			task, err := ctx.registry.Resolve(taskName, cfg, logger)
			if err != nil {
				return err
			}

			lock, err := runlock.Acquire(cfg.Paths.StorePath)
			if err != nil {
				return err
			}
			defer lock.Release()

			var result curation.Result
			err = ctx.withStore(func(_ *config.Config, store *repository.Store) error {
				runner := curation.NewRunner(curation.Options{Store: store, Logger: logger})
				var performErr error
				result, performErr = runner.Perform(cmd.Context(), task, handle)
				return performErr
			})
			if err != nil {
				return fmt.Errorf("%s %s: %w", taskName, handle, err)
			}

			if asJSON {
				if err := writeJSON(cmd, result); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				if asTable {
					fmt.Fprintln(out, renderTable(
						[]string{"Handle", "Outcome", "Detail"},
						entryRows(result.Entries),
						nil,
					))
				} else {
					fmt.Fprint(out, result.Report.String())
				}
				fmt.Fprintln(out, renderStatusLine("Status", result.Status, shouldColorize(out)))
			}

			if result.Status == curation.StatusError {
				return errRunFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asTable, "table", false, "Render the report as a table of outcomes")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the run result as JSON")
	return cmd
}

func entryRows(entries []curation.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{entry.Handle, entry.Outcome.String(), entry.Line})
	}
	return rows
}
