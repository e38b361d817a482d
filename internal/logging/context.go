package logging

import (
	"context"
	"log/slog"

	"github.com/UoEMainLibrary/dspace-additions/internal/services"
)

const (
	// FieldComponent is the structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the structured logging key for the curation run identifier.
	FieldRunID = "run_id"
	// FieldTask is the structured logging key for the curation task name.
	FieldTask = "task"
	// FieldHandle is the structured logging key for repository handles.
	FieldHandle = "handle"
	// FieldEventType classifies warnings and errors for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint carries the suggested next step for an error.
	FieldErrorHint = "error_hint"
	// FieldStack carries a rendered stack trace.
	FieldStack = "stack"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if id, ok := services.RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if task, ok := services.TaskFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldTask, task))
	}
	if handle, ok := services.HandleFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldHandle, handle))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
