package tagging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/UoEMainLibrary/dspace-additions/internal/config"
	"github.com/UoEMainLibrary/dspace-additions/internal/curation"
	"github.com/UoEMainLibrary/dspace-additions/internal/logging"
	"github.com/UoEMainLibrary/dspace-additions/internal/repository"
	"github.com/UoEMainLibrary/dspace-additions/internal/services"
	"github.com/UoEMainLibrary/dspace-additions/internal/vocab"
)

// Name is the registry name of the task.
const Name = "loadtags"

// Summary describes the task for listings.
const Summary = "add controlled-vocabulary tags matched from ORIGINAL file names"

// Task appends vocabulary tags to items.
type Task struct {
	settings   config.LoadTags
	field      repository.Field
	logger     *slog.Logger
	vocabulary *vocab.Vocabulary
}

// New builds the task from the loadtags configuration section.
func New(cfg *config.Config, logger *slog.Logger) (*Task, error) {
	if cfg == nil {
		return nil, services.Wrap(services.ErrConfiguration, Name, "init", "configuration is required", nil)
	}
	return &Task{
		settings: cfg.LoadTags,
		field: repository.Field{
			Schema:    cfg.LoadTags.MetadataSchema,
			Element:   cfg.LoadTags.MetadataElement,
			Qualifier: cfg.LoadTags.MetadataQualifier,
		},
		logger: logging.NewComponentLogger(logger, Name),
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

// Field returns the metadata field tags are written to.
func (t *Task) Field() repository.Field {
	return t.field
}

// Init loads the stopwords and then the vocabulary. Both are rebuilt on every
// call so a run always sees the current files.
func (t *Task) Init(ctx context.Context) error {
	stop, err := vocab.LoadStopwords(t.settings.StopFile)
	if err != nil {
		return err
	}
	vocabulary, err := vocab.Load(t.settings.TagsFile, stop)
	if err != nil {
		return err
	}
	t.vocabulary = vocabulary
	logging.WithContext(ctx, t.logger).Debug("vocabulary loaded",
		logging.String("tags_file", t.settings.TagsFile),
		logging.Int("keys", vocabulary.Len()),
		logging.Int("stopwords", stop.Len()),
	)
	return nil
}

// PerformItem applies each matched key's tags once per item.
func (t *Task) PerformItem(ctx context.Context, run *curation.Run, item *repository.Item) error {
	if t.vocabulary == nil {
		return services.Wrap(services.ErrConfiguration, Name, "perform", "task used before Init", nil)
	}
	logger := logging.WithContext(ctx, t.logger)

	bundles, err := run.Store.Bundles(ctx, item.ID, t.settings.Bundle)
	if err != nil {
		return err
	}

	applied := make(map[string]struct{})
	for _, bundle := range bundles {
		for _, bitstream := range bundle.Bitstreams {
			key := vocab.Normalize(bitstream.Name)
			tags, ok := t.vocabulary.Lookup(key)
			if !ok {
				logger.Debug("no vocabulary entry", logging.String("file", bitstream.Name), logging.String("key", key))
				continue
			}
			if _, done := applied[key]; done {
				continue
			}
			applied[key] = struct{}{}
			t.apply(ctx, logger, run, item, tags)
		}
	}
	return nil
}

func (t *Task) apply(ctx context.Context, logger *slog.Logger, run *curation.Run, item *repository.Item, tags vocab.TagSet) {
	values := tags.Sorted()
	previous := item.Metadata()
	item.AddMetadata(t.field, t.settings.Language, values...)

	if err := run.Store.Update(ctx, item); err != nil {
		item.ReplaceMetadata(previous)
		logger.Debug("tag write failed",
			logging.String("item", item.Handle),
			logging.String("error_kind", services.Kind(err)),
			logging.Error(err),
		)
		run.Failed(item.Handle, fmt.Sprintf("Could not add tags to item %s field %s: %v - ERROR", item.Handle, t.field, err))
		return
	}

	logger.Info("tags added",
		logging.String("item", item.Handle),
		logging.String("field", t.field.String()),
		logging.Strings("tags", values),
	)
	run.Succeeded(item.Handle, fmt.Sprintf("Added tags to item %s field %s [%s]", item.Handle, t.field, strings.Join(values, ", ")))
}
