package repository

import (
	"fmt"
	"strings"
)

// Field addresses a metadata field as schema.element[.qualifier].
type Field struct {
	Schema    string
	Element   string
	Qualifier string
}

// ParseField parses "dc.title" or "dc.subject.lcsh".
func ParseField(name string) (Field, error) {
	parts := strings.Split(strings.TrimSpace(name), ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Field{}, fmt.Errorf("metadata field %q must be schema.element[.qualifier]", name)
	}
	for _, part := range parts {
		if part == "" {
			return Field{}, fmt.Errorf("metadata field %q has an empty component", name)
		}
	}
	field := Field{Schema: parts[0], Element: parts[1]}
	if len(parts) == 3 {
		field.Qualifier = parts[2]
	}
	return field, nil
}

func (f Field) String() string {
	if f.Qualifier == "" {
		return f.Schema + "." + f.Element
	}
	return f.Schema + "." + f.Element + "." + f.Qualifier
}

// MetadataValue is one value of a metadata field on an item.
type MetadataValue struct {
	Field    Field
	Language string
	Value    string
	Place    int
}

// Metadata returns a copy of every metadata value on the item.
func (i *Item) Metadata() []MetadataValue {
	out := make([]MetadataValue, len(i.metadata))
	copy(out, i.metadata)
	return out
}

// Values returns the values of field in place order.
func (i *Item) Values(field Field) []MetadataValue {
	var out []MetadataValue
	for _, mv := range i.metadata {
		if mv.Field == field {
			out = append(out, mv)
		}
	}
	return out
}

// AddMetadata appends values to field. Places continue after the field's
// existing values.
func (i *Item) AddMetadata(field Field, language string, values ...string) {
	next := 0
	for _, mv := range i.metadata {
		if mv.Field == field && mv.Place >= next {
			next = mv.Place + 1
		}
	}
	for _, value := range values {
		i.metadata = append(i.metadata, MetadataValue{
			Field:    field,
			Language: language,
			Value:    value,
			Place:    next,
		})
		next++
	}
}

// ClearMetadata removes every value of field.
func (i *Item) ClearMetadata(field Field) {
	kept := i.metadata[:0]
	for _, mv := range i.metadata {
		if mv.Field != field {
			kept = append(kept, mv)
		}
	}
	i.metadata = kept
}

// ReplaceMetadata swaps every metadata value on the item for values. It pairs
// with Metadata to roll back in-memory edits after a failed Update.
func (i *Item) ReplaceMetadata(values []MetadataValue) {
	i.metadata = make([]MetadataValue, len(values))
	copy(i.metadata, values)
}
