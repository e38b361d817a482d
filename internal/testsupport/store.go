package testsupport

import (
	"context"
	"testing"

	"github.com/UoEMainLibrary/dspace-additions/internal/config"
	"github.com/UoEMainLibrary/dspace-additions/internal/repository"
)

// TitleField is the field item fixture titles are stored in.
var TitleField = repository.Field{Schema: "dc", Element: "title"}

// ItemFixture describes an item to seed. Files land in the ORIGINAL bundle,
// Thumbnails in a THUMBNAIL bundle.
type ItemFixture struct {
	Handle     string
	ReadOnly   bool
	Titles     []string
	Files      []string
	Thumbnails []string
}

// CollectionFixture describes a collection and its items in order.
type CollectionFixture struct {
	Handle string
	Name   string
	Items  []ItemFixture
}

// CommunityFixture describes a community and its collections in order.
type CommunityFixture struct {
	Handle      string
	Name        string
	Collections []CollectionFixture
}

// MustOpenStore opens a repository.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *repository.Store {
	t.Helper()

	store, err := repository.Open(cfg)
	if err != nil {
		t.Fatalf("repository.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SeedCommunity inserts the fixture tree in one transaction.
func SeedCommunity(t testing.TB, store *repository.Store, fixture CommunityFixture) {
	t.Helper()

	err := store.Load(context.Background(), func(tx *repository.Tx) error {
		communityID, err := tx.AddCommunity(fixture.Handle, fixture.Name)
		if err != nil {
			return err
		}
		for ci, col := range fixture.Collections {
			collectionID, err := tx.AddCollection(communityID, col.Handle, col.Name, ci)
			if err != nil {
				return err
			}
			for ii, fx := range col.Items {
				item := &repository.Item{Handle: fx.Handle, Position: ii, ReadOnly: fx.ReadOnly}
				if len(fx.Titles) > 0 {
					item.AddMetadata(TitleField, "en", fx.Titles...)
				}
				itemID, err := tx.AddItem(collectionID, item)
				if err != nil {
					return err
				}
				if err := addBundle(tx, itemID, "ORIGINAL", fx.Files); err != nil {
					return err
				}
				if err := addBundle(tx, itemID, "THUMBNAIL", fx.Thumbnails); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("seed community %s: %v", fixture.Handle, err)
	}
}

func addBundle(tx *repository.Tx, itemID int64, name string, files []string) error {
	if len(files) == 0 {
		return nil
	}
	bitstreams := make([]repository.Bitstream, 0, len(files))
	for _, file := range files {
		bitstreams = append(bitstreams, repository.Bitstream{Name: file})
	}
	_, err := tx.AddBundle(itemID, name, bitstreams)
	return err
}

// MustItem resolves handle and loads the item it names.
func MustItem(t testing.TB, store *repository.Store, handle string) *repository.Item {
	t.Helper()

	ctx := context.Background()
	container, err := store.Resolve(ctx, handle)
	if err != nil {
		t.Fatalf("resolve %s: %v", handle, err)
	}
	if container.Kind != repository.KindItem {
		t.Fatalf("handle %s resolved to %s, want item", handle, container.Kind)
	}
	item, err := store.Item(ctx, container.ID)
	if err != nil {
		t.Fatalf("load item %s: %v", handle, err)
	}
	return item
}

// Values flattens the values of field on item.
func Values(item *repository.Item, field repository.Field) []string {
	var out []string
	for _, mv := range item.Values(field) {
		out = append(out, mv.Value)
	}
	return out
}
