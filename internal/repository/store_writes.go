package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/UoEMainLibrary/dspace-additions/internal/services"
)

// Update persists the item's metadata, replacing what is stored, in a single
// transaction. Read-only items are refused with services.ErrUnauthorized.
func (s *Store) Update(ctx context.Context, item *Item) error {
	if item == nil {
		return services.Wrap(services.ErrValidation, component, "update item", "item is nil", nil)
	}
	if item.ReadOnly {
		return services.Wrap(services.ErrUnauthorized, component, "update item",
			fmt.Sprintf("item %s is read-only", item.Handle), nil)
	}
	ctx = ensureContext(ctx)
	err := retryOnBusy(ctx, func() error {
		return s.inTx(ctx, func(tx *sql.Tx) error {
			query, args, err := sq.Delete("metadata_values").Where(sq.Eq{"item_id": item.ID}).ToSql()
			if err != nil {
				return fmt.Errorf("build delete: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return err
			}
			if len(item.metadata) == 0 {
				return nil
			}
			insert := sq.Insert("metadata_values").
				Columns("item_id", "schema_name", "element", "qualifier", "language", "value", "place")
			for _, mv := range item.metadata {
				insert = insert.Values(item.ID, mv.Field.Schema, mv.Field.Element, mv.Field.Qualifier, mv.Language, mv.Value, mv.Place)
			}
			_, err = execInsert(ctx, tx, insert)
			return err
		})
	})
	if err != nil {
		return dataAccess(fmt.Sprintf("update item %s", item.Handle), err)
	}
	return nil
}

func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// Tx inserts content inside a single transaction opened by Store.Load.
type Tx struct {
	ctx context.Context
	tx  *sql.Tx
}

// Load runs fn inside one transaction; nothing is written if fn fails.
func (s *Store) Load(ctx context.Context, fn func(tx *Tx) error) error {
	ctx = ensureContext(ctx)
	return s.inTx(ctx, func(tx *sql.Tx) error {
		return fn(&Tx{ctx: ctx, tx: tx})
	})
}

// AddCommunity inserts a community and returns its id.
func (t *Tx) AddCommunity(handle, name string) (int64, error) {
	id, err := execInsert(t.ctx, t.tx, sq.Insert("communities").
		Columns("handle", "name").
		Values(handle, name))
	if err != nil {
		return 0, dataAccess(fmt.Sprintf("insert community %s", handle), err)
	}
	return id, nil
}

// AddCollection inserts a collection under communityID.
func (t *Tx) AddCollection(communityID int64, handle, name string, position int) (int64, error) {
	id, err := execInsert(t.ctx, t.tx, sq.Insert("collections").
		Columns("community_id", "handle", "name", "position").
		Values(communityID, handle, name, position))
	if err != nil {
		return 0, dataAccess(fmt.Sprintf("insert collection %s", handle), err)
	}
	return id, nil
}

// AddItem inserts an item under collectionID together with its in-memory metadata.
func (t *Tx) AddItem(collectionID int64, item *Item) (int64, error) {
	readOnly := 0
	if item.ReadOnly {
		readOnly = 1
	}
	id, err := execInsert(t.ctx, t.tx, sq.Insert("items").
		Columns("collection_id", "handle", "position", "read_only").
		Values(collectionID, item.Handle, item.Position, readOnly))
	if err != nil {
		return 0, dataAccess(fmt.Sprintf("insert item %s", item.Handle), err)
	}
	item.ID = id
	item.CollectionID = collectionID
	if len(item.metadata) == 0 {
		return id, nil
	}
	insert := sq.Insert("metadata_values").
		Columns("item_id", "schema_name", "element", "qualifier", "language", "value", "place")
	for _, mv := range item.metadata {
		insert = insert.Values(id, mv.Field.Schema, mv.Field.Element, mv.Field.Qualifier, mv.Language, mv.Value, mv.Place)
	}
	if _, err := execInsert(t.ctx, t.tx, insert); err != nil {
		return 0, dataAccess(fmt.Sprintf("insert metadata for %s", item.Handle), err)
	}
	return id, nil
}

// AddBundle inserts a bundle and its bitstreams. Bitstream sequences follow
// slice order when left at zero.
func (t *Tx) AddBundle(itemID int64, name string, bitstreams []Bitstream) (int64, error) {
	bundleID, err := execInsert(t.ctx, t.tx, sq.Insert("bundles").
		Columns("item_id", "name").
		Values(itemID, name))
	if err != nil {
		return 0, dataAccess(fmt.Sprintf("insert bundle %s", name), err)
	}
	for i, bs := range bitstreams {
		sequence := bs.Sequence
		if sequence == 0 {
			sequence = i + 1
		}
		var handle any
		if bs.Handle != "" {
			handle = bs.Handle
		}
		if _, err := execInsert(t.ctx, t.tx, sq.Insert("bitstreams").
			Columns("bundle_id", "name", "sequence", "handle").
			Values(bundleID, bs.Name, sequence, handle)); err != nil {
			return 0, dataAccess(fmt.Sprintf("insert bitstream %s", bs.Name), err)
		}
	}
	return bundleID, nil
}
