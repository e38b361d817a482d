package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/UoEMainLibrary/dspace-additions/internal/vocab"
)

type vocabEntry struct {
	Key  string   `json:"key"`
	Tags []string `json:"tags"`
}

func newVocabCommand(ctx *commandContext) *cobra.Command {
	var fileName string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Show the key to tags vocabulary loadtags would use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			stop, err := vocab.LoadStopwords(cfg.LoadTags.StopFile)
			if err != nil {
				return err
			}
			vocabulary, err := vocab.Load(cfg.LoadTags.TagsFile, stop)
			if err != nil {
				return err
			}

			var entries []vocabEntry
			if name := strings.TrimSpace(fileName); name != "" {
				key := vocab.Normalize(name)
				tags, _ := vocabulary.Lookup(key)
				entries = append(entries, vocabEntry{Key: key, Tags: tags.Sorted()})
			} else {
				for _, key := range vocabulary.Keys() {
					tags, _ := vocabulary.Lookup(key)
					entries = append(entries, vocabEntry{Key: key, Tags: tags.Sorted()})
				}
			}

			if asJSON {
				return writeJSON(cmd, entries)
			}
			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{entry.Key, strings.Join(entry.Tags, ", ")})
			}
			fmt.Fprintln(out, renderTable([]string{"Key", "Tags"}, rows, nil))
			fmt.Fprintf(out, "%d keys, %d stopwords\n", vocabulary.Len(), stop.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&fileName, "file", "f", "", "Show the tags a file name would receive")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit entries as JSON")
	return cmd
}
