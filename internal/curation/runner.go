package curation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/UoEMainLibrary/dspace-additions/internal/logging"
	"github.com/UoEMainLibrary/dspace-additions/internal/repository"
	"github.com/UoEMainLibrary/dspace-additions/internal/services"
)

// Result is the outcome of one Runner.Perform call.
type Result struct {
	RunID    string        `json:"run_id"`
	Task     string        `json:"task"`
	Handle   string        `json:"handle"`
	Kind     string        `json:"kind"`
	Status   Status        `json:"status"`
	Report   *Report       `json:"-"`
	Entries  []Entry       `json:"entries"`
	Started  time.Time     `json:"started"`
	Duration time.Duration `json:"duration"`
}

// Options configures a Runner.
type Options struct {
	Store  Store
	Logger *slog.Logger
	// NewID overrides run id generation.
	NewID func() string
}

// Runner drives a task across the container a handle names.
type Runner struct {
	store  Store
	logger *slog.Logger
	newID  func() string
}

// NewRunner constructs a runner.
func NewRunner(opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	return &Runner{
		store:  opts.Store,
		logger: logging.NewComponentLogger(logger, "curation"),
		newID:  newID,
	}
}

// Perform runs task against handle. The returned error is non-nil only when
// the run could not start: task initialization or handle resolution failed.
// In that case the status is ERROR and the report is empty.
func (r *Runner) Perform(ctx context.Context, task Task, handle string) (Result, error) {
	if r.store == nil {
		return Result{}, fmt.Errorf("curation store is required")
	}
	if task == nil {
		return Result{}, fmt.Errorf("curation task is required")
	}

	runID := r.newID()
	ctx = services.WithRunID(ctx, runID)
	ctx = services.WithTask(ctx, task.Name())
	ctx = services.WithHandle(ctx, handle)
	logger := logging.WithContext(ctx, r.logger)

	run := newRun(runID, r.store, logger)
	result := Result{RunID: runID, Task: task.Name(), Handle: handle, Started: time.Now()}
	finish := func(status Status) Result {
		result.Status = status
		result.Report = run.Report()
		result.Entries = run.Report().Entries()
		result.Duration = time.Since(result.Started)
		return result
	}

	if err := task.Init(ctx); err != nil {
		logging.ErrorWithContext(logger, "task initialization failed", "task_init",
			logging.Error(err),
			logging.Stack(err),
			logging.String(logging.FieldErrorHint, "check the task configuration and source files"),
		)
		return finish(StatusError), err
	}

	container, err := r.store.Resolve(ctx, handle)
	if err != nil {
		logging.ErrorWithContext(logger, "resolve handle failed", "resolve", logging.Error(err))
		return finish(StatusError), err
	}
	result.Kind = container.Kind.String()

	switch container.Kind {
	case repository.KindItem:
		logger.Info("Using item " + handle)
		item, err := r.store.Item(ctx, container.ID)
		if err != nil {
			r.enumerationFailed(logger, "load item", err)
			break
		}
		r.performItem(ctx, run, task, item)
	case repository.KindCollection:
		logger.Info("Using collection " + handle)
		r.performCollection(ctx, run, task, container.ID, handle)
	case repository.KindCommunity:
		logger.Info("Using community " + handle)
		r.performCommunity(ctx, run, task, container.ID)
	default:
		logger.Info("object is not an item, collection or community")
		run.Skipped(handle, fmt.Sprintf("Object %s is not an item, collection or community - SKIP", handle))
	}

	result = finish(run.Status())
	logger.Info("curation finished",
		logging.String(logging.FieldEventType, "curation_complete"),
		logging.String("status", result.Status.String()),
		logging.Int("lines", run.Report().Len()),
		logging.Int("succeeded", run.Report().Count(StatusSuccess)),
		logging.Int("failed", run.Report().Count(StatusError)),
	)
	return result, nil
}

func (r *Runner) performCommunity(ctx context.Context, run *Run, task Task, communityID int64) {
	collections, err := r.store.CommunityCollections(ctx, communityID)
	if err != nil {
		r.enumerationFailed(run.Logger, "list community collections", err)
		return
	}
	for _, collection := range collections {
		r.performCollection(ctx, run, task, collection.ID, collection.Handle)
	}
}

func (r *Runner) performCollection(ctx context.Context, run *Run, task Task, collectionID int64, handle string) {
	items, err := r.store.CollectionItems(ctx, collectionID)
	if err != nil {
		r.enumerationFailed(run.Logger, "list collection items", err, logging.String("collection", handle))
		return
	}
	for _, item := range items {
		if !r.performItem(ctx, run, task, item) {
			return
		}
	}
}

// performItem reports false when the item's contents could not be enumerated.
func (r *Runner) performItem(ctx context.Context, run *Run, task Task, item *repository.Item) bool {
	itemCtx := services.WithHandle(ctx, item.Handle)
	if err := task.PerformItem(itemCtx, run, item); err != nil {
		r.enumerationFailed(run.Logger, "process item", err, logging.String("item", item.Handle))
		return false
	}
	return true
}

func (r *Runner) enumerationFailed(logger *slog.Logger, operation string, err error, attrs ...logging.Attr) {
	attrs = append(attrs,
		logging.String("operation", operation),
		logging.String(logging.FieldEventType, "enumeration_"+services.Kind(err)),
		logging.String(logging.FieldErrorHint, "traversal of this branch stopped; rerun once the store is readable"),
		logging.Error(err),
	)
	logging.WarnWithContext(logger, "enumeration failed", "enumeration", attrs...)
}
