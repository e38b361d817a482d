// Package manifest imports a YAML description of communities, collections,
// items, and their files into a repository store.
package manifest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/UoEMainLibrary/dspace-additions/internal/repository"
	"github.com/UoEMainLibrary/dspace-additions/internal/services"
)

// Manifest is the root of an import file.
type Manifest struct {
	Communities []Community `yaml:"communities"`
}

// Community describes an organizational unit.
type Community struct {
	Handle      string       `yaml:"handle"`
	Name        string       `yaml:"name"`
	Collections []Collection `yaml:"collections"`
}

// Collection describes a collection; items keep file order.
type Collection struct {
	Handle string `yaml:"handle"`
	Name   string `yaml:"name"`
	Items  []Item `yaml:"items"`
}

// Item describes a record, its metadata, and its bundles.
type Item struct {
	Handle   string     `yaml:"handle"`
	ReadOnly bool       `yaml:"read_only"`
	Metadata []Metadata `yaml:"metadata"`
	Bundles  []Bundle   `yaml:"bundles"`
}

// Metadata is one value of a schema.element[.qualifier] field.
type Metadata struct {
	Field    string `yaml:"field"`
	Value    string `yaml:"value"`
	Language string `yaml:"language"`
}

// Bundle lists file names in sequence order.
type Bundle struct {
	Name  string   `yaml:"name"`
	Files []string `yaml:"files"`
}

// Summary counts what an import wrote.
type Summary struct {
	Communities int `json:"communities"`
	Collections int `json:"collections"`
	Items       int `json:"items"`
	Bitstreams  int `json:"bitstreams"`
}

// Loader is the store capability Import needs.
type Loader interface {
	Load(ctx context.Context, fn func(tx *repository.Tx) error) error
}

// Parse decodes a manifest and validates it. Unknown keys are rejected.
func Parse(r io.Reader) (*Manifest, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var m Manifest
	if err := decoder.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, services.Wrap(services.ErrValidation, "manifest", "parse", "manifest is empty", nil)
		}
		return nil, services.Wrap(services.ErrValidation, "manifest", "parse", "", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadFile opens and parses path.
func LoadFile(path string) (*Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, services.Wrap(services.ErrNotFound, "manifest", "open", path, err)
	}
	defer file.Close()
	return Parse(file)
}

// Validate checks that handles are present and unique and that metadata
// fields are well formed.
func (m *Manifest) Validate() error {
	seen := make(map[string]string)
	claim := func(handle, what string) error {
		handle = strings.TrimSpace(handle)
		if handle == "" {
			return fmt.Errorf("%s handle is required", what)
		}
		if prev, ok := seen[handle]; ok {
			return fmt.Errorf("handle %s used by both %s and %s", handle, prev, what)
		}
		seen[handle] = what
		return nil
	}
	for _, community := range m.Communities {
		if err := claim(community.Handle, "community"); err != nil {
			return services.Wrap(services.ErrValidation, "manifest", "validate", "", err)
		}
		for _, collection := range community.Collections {
			if err := claim(collection.Handle, "collection"); err != nil {
				return services.Wrap(services.ErrValidation, "manifest", "validate", "", err)
			}
			for _, item := range collection.Items {
				if err := claim(item.Handle, "item"); err != nil {
					return services.Wrap(services.ErrValidation, "manifest", "validate", "", err)
				}
				for _, md := range item.Metadata {
					if _, err := repository.ParseField(md.Field); err != nil {
						return services.Wrap(services.ErrValidation, "manifest", "validate", "item "+item.Handle, err)
					}
				}
				for _, bundle := range item.Bundles {
					if strings.TrimSpace(bundle.Name) == "" {
						return services.Wrap(services.ErrValidation, "manifest", "validate", "item "+item.Handle, errors.New("bundle name is required"))
					}
				}
			}
		}
	}
	return nil
}

// Import writes the manifest in a single transaction.
func Import(ctx context.Context, store Loader, m *Manifest) (Summary, error) {
	var summary Summary
	err := store.Load(ctx, func(tx *repository.Tx) error {
		summary = Summary{}
		for _, community := range m.Communities {
			communityID, err := tx.AddCommunity(community.Handle, community.Name)
			if err != nil {
				return err
			}
			summary.Communities++
			for ci, collection := range community.Collections {
				collectionID, err := tx.AddCollection(communityID, collection.Handle, collection.Name, ci)
				if err != nil {
					return err
				}
				summary.Collections++
				for ii, entry := range collection.Items {
					n, err := importItem(tx, collectionID, ii, entry)
					if err != nil {
						return err
					}
					summary.Items++
					summary.Bitstreams += n
				}
			}
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	return summary, nil
}

func importItem(tx *repository.Tx, collectionID int64, position int, entry Item) (int, error) {
	item := &repository.Item{Handle: entry.Handle, Position: position, ReadOnly: entry.ReadOnly}
	for _, md := range entry.Metadata {
		field, err := repository.ParseField(md.Field)
		if err != nil {
			return 0, err
		}
		item.AddMetadata(field, md.Language, md.Value)
	}
	itemID, err := tx.AddItem(collectionID, item)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, bundle := range entry.Bundles {
		bitstreams := make([]repository.Bitstream, 0, len(bundle.Files))
		for _, name := range bundle.Files {
			bitstreams = append(bitstreams, repository.Bitstream{Name: name})
		}
		if _, err := tx.AddBundle(itemID, bundle.Name, bitstreams); err != nil {
			return 0, err
		}
		count += len(bitstreams)
	}
	return count, nil
}
