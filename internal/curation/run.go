package curation

import (
	"log/slog"
)

// Run is the per-invocation state shared between the runner and its task.
type Run struct {
	ID     string
	Store  Store
	Logger *slog.Logger

	report Report
	status Status
}

func newRun(id string, store Store, logger *slog.Logger) *Run {
	return &Run{ID: id, Store: store, Logger: logger, status: StatusSkip}
}

// Succeeded records a successful write and sets the status to SUCCESS.
func (r *Run) Succeeded(handle, line string) {
	r.report.add(handle, StatusSuccess, line)
	r.status = StatusSuccess
}

// Failed records a failed write and sets the status to ERROR.
func (r *Run) Failed(handle, line string) {
	r.report.add(handle, StatusError, line)
	r.status = StatusError
}

// Skipped records a line that leaves the status unchanged.
func (r *Run) Skipped(handle, line string) {
	r.report.add(handle, StatusSkip, line)
}

// Status returns the current status.
func (r *Run) Status() Status {
	return r.status
}

// Report returns the report accumulated so far.
func (r *Run) Report() *Report {
	return &r.report
}
