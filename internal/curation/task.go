package curation

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/UoEMainLibrary/dspace-additions/internal/config"
	"github.com/UoEMainLibrary/dspace-additions/internal/repository"
)

// Store is the repository access a run needs.
type Store interface {
	Resolve(ctx context.Context, handle string) (repository.Container, error)
	Item(ctx context.Context, id int64) (*repository.Item, error)
	CollectionItems(ctx context.Context, collectionID int64) ([]*repository.Item, error)
	CommunityCollections(ctx context.Context, communityID int64) ([]repository.Collection, error)
	Bundles(ctx context.Context, itemID int64, name string) ([]repository.Bundle, error)
	Update(ctx context.Context, item *repository.Item) error
}

// Task is the contract the runner needs from each curation task.
//
// Init is called once per run before traversal and loads whatever per-run
// state the task needs; an error aborts the run. PerformItem processes one
// item; a returned error means the item's contents could not be enumerated
// and stops the enclosing collection branch.
type Task interface {
	Name() string
	Init(ctx context.Context) error
	PerformItem(ctx context.Context, run *Run, item *repository.Item) error
}

// Factory builds a task from configuration.
type Factory func(cfg *config.Config, logger *slog.Logger) (Task, error)

// Registry maps task names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	summaries map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		summaries: make(map[string]string),
	}
}

// Register adds a task factory. Registering a name twice is an error.
func (r *Registry) Register(name, summary string, factory Factory) error {
	if name == "" || factory == nil {
		return fmt.Errorf("register task: name and factory are required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("register task: %q already registered", name)
	}
	r.factories[name] = factory
	r.summaries[name] = summary
	return nil
}

// Resolve builds the task registered under name.
func (r *Registry) Resolve(name string, cfg *config.Config, logger *slog.Logger) (Task, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown task %q (available: %v)", name, r.Names())
	}
	return factory(cfg, logger)
}

// Names returns the registered task names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Summary returns the one-line description registered with name.
func (r *Registry) Summary(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.summaries[name]
}
