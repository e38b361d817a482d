package diacritics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UoEMainLibrary/dspace-additions/internal/config"
	"github.com/UoEMainLibrary/dspace-additions/internal/curation"
	"github.com/UoEMainLibrary/dspace-additions/internal/logging"
	"github.com/UoEMainLibrary/dspace-additions/internal/repository"
	"github.com/UoEMainLibrary/dspace-additions/internal/services"
)

// Name is the registry name of the task.
const Name = "nodiacritics"

// Summary describes the task for listings.
const Summary = "replace curly quotes, guillemets, and long dashes in titles"

// Task cleans one metadata field on every item it visits.
type Task struct {
	field    repository.Field
	language string
	logger   *slog.Logger
}

// New builds the task from the diacritics configuration section.
func New(cfg *config.Config, logger *slog.Logger) (*Task, error) {
	if cfg == nil {
		return nil, services.Wrap(services.ErrConfiguration, Name, "init", "configuration is required", nil)
	}
	field, err := repository.ParseField(cfg.Diacritics.Field)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, Name, "init", "diacritics.field", err)
	}
	return &Task{
		field:    field,
		language: cfg.Diacritics.Language,
		logger:   logging.NewComponentLogger(logger, Name),
	}, nil
}

// Factory adapts New to curation.Factory.
func Factory(cfg *config.Config, logger *slog.Logger) (curation.Task, error) {
	task, err := New(cfg, logger)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Name implements curation.Task.
func (t *Task) Name() string {
	return Name
}

// Init implements curation.Task; the task has no per-run state.
func (t *Task) Init(context.Context) error {
	return nil
}

// PerformItem cleans every value of the field. When any value changes the
// field is rewritten with all values, cleaned, in the configured language
// and the item is persisted once.
func (t *Task) PerformItem(ctx context.Context, run *curation.Run, item *repository.Item) error {
	logger := logging.WithContext(ctx, t.logger)
	values := item.Values(t.field)
	logger.Debug("checking titles", logging.String("item", item.Handle), logging.Int("values", len(values)))

	cleaned := make([]string, 0, len(values))
	var changes []string
	for _, mv := range values {
		fixed := Clean(mv.Value)
		cleaned = append(cleaned, fixed)
		if fixed == mv.Value {
			run.Skipped(item.Handle, "No update required - SKIP")
			continue
		}
		changes = append(changes, fmt.Sprintf("%s = UPDATED TO = %s = SUCCESS", mv.Value, fixed))
	}
	if len(changes) == 0 {
		return nil
	}

	previous := item.Metadata()
	item.ClearMetadata(t.field)
	item.AddMetadata(t.field, t.language, cleaned...)
	if err := run.Store.Update(ctx, item); err != nil {
		item.ReplaceMetadata(previous)
		logger.Debug("title write failed",
			logging.String("item", item.Handle),
			logging.String("error_kind", services.Kind(err)),
			logging.Error(err),
		)
		run.Failed(item.Handle, fmt.Sprintf("Could not update %s on item %s: %v - ERROR", t.field, item.Handle, err))
		return nil
	}
	for _, line := range changes {
		run.Succeeded(item.Handle, line)
	}
	return nil
}
