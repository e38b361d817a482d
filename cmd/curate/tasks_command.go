package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTasksCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "tasks",
		Short:       "List available curation tasks",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			names := ctx.registry.Names()
			rows := make([][]string, 0, len(names))
			for _, name := range names {
				rows = append(rows, []string{name, ctx.registry.Summary(name)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Task", "Description"}, rows, nil))
			return nil
		},
	}
}
