package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/UoEMainLibrary/dspace-additions/internal/config"
	"github.com/UoEMainLibrary/dspace-additions/internal/manifest"
	"github.com/UoEMainLibrary/dspace-additions/internal/repository"
	"github.com/UoEMainLibrary/dspace-additions/internal/runlock"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "import <manifest.yaml>",
		Short: "Load communities, collections, and items from a YAML manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.LoadFile(args[0])
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			lock, err := runlock.Acquire(cfg.Paths.StorePath)
			if err != nil {
				return err
			}
			defer lock.Release()

			var summary manifest.Summary
			err = ctx.withStore(func(_ *config.Config, store *repository.Store) error {
				var importErr error
				summary, importErr = manifest.Import(cmd.Context(), store, m)
				return importErr
			})
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}

			if asJSON {
				return writeJSON(cmd, summary)
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"Imported %d communities, %d collections, %d items, %d bitstreams\n",
				summary.Communities, summary.Collections, summary.Items, summary.Bitstreams)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the import summary as JSON")
	return cmd
}
