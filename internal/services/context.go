package services

import "context"

type contextKey string

const (
	runIDKey  contextKey = "run_id"
	taskKey   contextKey = "task"
	handleKey contextKey = "handle"
)

// WithRunID annotates context with the curation run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the curation run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, runIDKey)
}

// WithTask annotates context with the curation task name.
func WithTask(ctx context.Context, task string) context.Context {
	if task == "" {
		return ctx
	}
	return context.WithValue(ctx, taskKey, task)
}

// TaskFromContext returns the task name if present.
func TaskFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, taskKey)
}

// WithHandle annotates context with the repository handle being processed.
func WithHandle(ctx context.Context, handle string) context.Context {
	if handle == "" {
		return ctx
	}
	return context.WithValue(ctx, handleKey, handle)
}

// HandleFromContext returns the handle if present.
func HandleFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, handleKey)
}

func stringValue(ctx context.Context, key contextKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
