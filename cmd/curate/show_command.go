package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/UoEMainLibrary/dspace-additions/internal/config"
	"github.com/UoEMainLibrary/dspace-additions/internal/repository"
	"github.com/UoEMainLibrary/dspace-additions/internal/services"
	"github.com/UoEMainLibrary/dspace-additions/internal/vocab"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <handle>",
		Short: "Show an item's metadata and files, or list a container's members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handle := strings.TrimSpace(args[0])
			return ctx.withStore(func(cfg *config.Config, store *repository.Store) error {
				container, err := store.Resolve(cmd.Context(), handle)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				switch container.Kind {
				case repository.KindItem:
					return showItem(cmd.Context(), out, cfg, store, container)
				case repository.KindCollection:
					return showCollection(cmd.Context(), out, cfg, store, container)
				case repository.KindCommunity:
					return showCommunity(cmd.Context(), out, store, container)
				default:
					return services.Wrap(services.ErrNotFound, "show", "resolve", fmt.Sprintf("no object with handle %s", handle), nil)
				}
			})
		},
	}
}

func showItem(ctx context.Context, out io.Writer, cfg *config.Config, store *repository.Store, container repository.Container) error {
	item, err := store.Item(ctx, container.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Item %s (read only: %s)\n", item.Handle, yesNo(item.ReadOnly))

	values := item.Metadata()
	rows := make([][]string, 0, len(values))
	for _, v := range values {
		rows = append(rows, []string{v.Field.String(), v.Language, v.Value, strconv.Itoa(v.Place)})
	}
	fmt.Fprintln(out, renderTable([]string{"Field", "Lang", "Value", "Place"}, rows, []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight}))

	bundles, err := store.Bundles(ctx, item.ID, cfg.LoadTags.Bundle)
	if err != nil {
		return err
	}
	var files [][]string
	for _, bundle := range bundles {
		for _, bs := range bundle.Bitstreams {
			files = append(files, []string{bundle.Name, strconv.Itoa(bs.Sequence), bs.Name, vocab.Normalize(bs.Name)})
		}
	}
	if len(files) == 0 {
		fmt.Fprintf(out, "No files in bundle %s\n", cfg.LoadTags.Bundle)
		return nil
	}
	fmt.Fprintln(out, renderTable([]string{"Bundle", "Seq", "File", "Key"}, files, []columnAlignment{alignLeft, alignRight}))
	return nil
}

func showCollection(ctx context.Context, out io.Writer, cfg *config.Config, store *repository.Store, container repository.Container) error {
	items, err := store.CollectionItems(ctx, container.ID)
	if err != nil {
		return err
	}
	field, err := repository.ParseField(cfg.Diacritics.Field)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Collection %s %s\n", container.Handle, container.Name)
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		titles := make([]string, 0, 1)
		for _, v := range item.Values(field) {
			titles = append(titles, v.Value)
		}
		rows = append(rows, []string{item.Handle, strings.Join(titles, "; "), yesNo(item.ReadOnly)})
	}
	fmt.Fprintln(out, renderTable([]string{"Handle", "Title", "Read only"}, rows, nil))
	return nil
}

func showCommunity(ctx context.Context, out io.Writer, store *repository.Store, container repository.Container) error {
	collections, err := store.CommunityCollections(ctx, container.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Community %s %s\n", container.Handle, container.Name)
	rows := make([][]string, 0, len(collections))
	for _, c := range collections {
		rows = append(rows, []string{c.Handle, c.Name})
	}
	fmt.Fprintln(out, renderTable([]string{"Handle", "Name"}, rows, nil))
	return nil
}
