package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Resolve maps a handle to its container. Handles that belong to bitstreams,
// or to nothing, resolve to KindUnknown without error.
func (s *Store) Resolve(ctx context.Context, handle string) (Container, error) {
	ctx = ensureContext(ctx)
	lookups := []struct {
		kind  Kind
		table string
		name  string
	}{
		{KindItem, "items", "''"},
		{KindCollection, "collections", "name"},
		{KindCommunity, "communities", "name"},
	}
	for _, lookup := range lookups {
		query, args, err := sq.Select("id", lookup.name).
			From(lookup.table).
			Where(sq.Eq{"handle": handle}).
			ToSql()
		if err != nil {
			return Container{}, fmt.Errorf("build resolve query: %w", err)
		}
		var (
			id   int64
			name string
		)
		err = s.db.QueryRowContext(ctx, query, args...).Scan(&id, &name)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return Container{}, dataAccess("resolve handle", err)
		}
		return Container{Kind: lookup.kind, ID: id, Handle: handle, Name: name}, nil
	}
	return Container{Kind: KindUnknown, Handle: handle}, nil
}

// Item loads an item and its metadata.
func (s *Store) Item(ctx context.Context, id int64) (*Item, error) {
	ctx = ensureContext(ctx)
	rows, err := queryRows(ctx, s.db, selectItems().Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, dataAccess("load item", err)
	}
	items, err := s.scanItems(ctx, rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, notFound("load item", fmt.Sprintf("item %d", id))
	}
	return items[0], nil
}

// CollectionItems returns the items of a collection in position order.
func (s *Store) CollectionItems(ctx context.Context, collectionID int64) ([]*Item, error) {
	ctx = ensureContext(ctx)
	rows, err := queryRows(ctx, s.db, selectItems().
		Where(sq.Eq{"collection_id": collectionID}).
		OrderBy("position", "id"))
	if err != nil {
		return nil, dataAccess("list collection items", err)
	}
	return s.scanItems(ctx, rows)
}

// CommunityCollections returns the collections of a community in position order.
func (s *Store) CommunityCollections(ctx context.Context, communityID int64) ([]Collection, error) {
	ctx = ensureContext(ctx)
	rows, err := queryRows(ctx, s.db, sq.Select("id", "community_id", "handle", "name", "position").
		From("collections").
		Where(sq.Eq{"community_id": communityID}).
		OrderBy("position", "id"))
	if err != nil {
		return nil, dataAccess("list community collections", err)
	}
	defer rows.Close()

	var collections []Collection
	for rows.Next() {
		var c Collection
		if err := rows.Scan(&c.ID, &c.CommunityID, &c.Handle, &c.Name, &c.Position); err != nil {
			return nil, dataAccess("scan collection", err)
		}
		collections = append(collections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dataAccess("list community collections", err)
	}
	return collections, nil
}

// Bundles returns the item's bundles called name, each with its bitstreams in
// sequence order.
func (s *Store) Bundles(ctx context.Context, itemID int64, name string) ([]Bundle, error) {
	ctx = ensureContext(ctx)
	rows, err := queryRows(ctx, s.db, sq.Select("id", "item_id", "name").
		From("bundles").
		Where(sq.Eq{"item_id": itemID, "name": name}).
		OrderBy("id"))
	if err != nil {
		return nil, dataAccess("list bundles", err)
	}
	var (
		bundles []Bundle
		ids     []int64
	)
	for rows.Next() {
		var b Bundle
		if err := rows.Scan(&b.ID, &b.ItemID, &b.Name); err != nil {
			_ = rows.Close()
			return nil, dataAccess("scan bundle", err)
		}
		bundles = append(bundles, b)
		ids = append(ids, b.ID)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, dataAccess("list bundles", err)
	}
	_ = rows.Close()
	if len(bundles) == 0 {
		return nil, nil
	}

	bitRows, err := queryRows(ctx, s.db, sq.Select("id", "bundle_id", "name", "sequence", "COALESCE(handle, '')").
		From("bitstreams").
		Where(sq.Eq{"bundle_id": ids}).
		OrderBy("bundle_id", "sequence", "id"))
	if err != nil {
		return nil, dataAccess("list bitstreams", err)
	}
	defer bitRows.Close()

	index := make(map[int64]int, len(bundles))
	for i, b := range bundles {
		index[b.ID] = i
	}
	for bitRows.Next() {
		var bs Bitstream
		if err := bitRows.Scan(&bs.ID, &bs.BundleID, &bs.Name, &bs.Sequence, &bs.Handle); err != nil {
			return nil, dataAccess("scan bitstream", err)
		}
		pos := index[bs.BundleID]
		bundles[pos].Bitstreams = append(bundles[pos].Bitstreams, bs)
	}
	if err := bitRows.Err(); err != nil {
		return nil, dataAccess("list bitstreams", err)
	}
	return bundles, nil
}

func selectItems() sq.SelectBuilder {
	return sq.Select("id", "collection_id", "handle", "position", "read_only").From("items")
}

func (s *Store) scanItems(ctx context.Context, rows *sql.Rows) ([]*Item, error) {
	var items []*Item
	for rows.Next() {
		var (
			item     Item
			readOnly int
		)
		if err := rows.Scan(&item.ID, &item.CollectionID, &item.Handle, &item.Position, &readOnly); err != nil {
			_ = rows.Close()
			return nil, dataAccess("scan item", err)
		}
		item.ReadOnly = readOnly != 0
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, dataAccess("list items", err)
	}
	_ = rows.Close()
	if len(items) == 0 {
		return items, nil
	}
	if err := s.loadMetadata(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) loadMetadata(ctx context.Context, items []*Item) error {
	ids := make([]int64, 0, len(items))
	byID := make(map[int64]*Item, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
		byID[item.ID] = item
	}
	rows, err := queryRows(ctx, s.db, sq.Select("item_id", "schema_name", "element", "qualifier", "language", "value", "place").
		From("metadata_values").
		Where(sq.Eq{"item_id": ids}).
		OrderBy("item_id", "schema_name", "element", "qualifier", "place", "id"))
	if err != nil {
		return dataAccess("load metadata", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			itemID int64
			mv     MetadataValue
		)
		if err := rows.Scan(&itemID, &mv.Field.Schema, &mv.Field.Element, &mv.Field.Qualifier, &mv.Language, &mv.Value, &mv.Place); err != nil {
			return dataAccess("scan metadata", err)
		}
		if item := byID[itemID]; item != nil {
			item.metadata = append(item.metadata, mv)
		}
	}
	if err := rows.Err(); err != nil {
		return dataAccess("load metadata", err)
	}
	return nil
}
