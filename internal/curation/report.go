package curation

import "strings"

// Entry is one report line with the handle and outcome it describes.
type Entry struct {
	Handle  string `json:"handle"`
	Outcome Status `json:"outcome"`
	Line    string `json:"line"`
}

// Report is the ordered, append-only result log of a run.
type Report struct {
	entries []Entry
}

func (r *Report) add(handle string, outcome Status, line string) {
	r.entries = append(r.entries, Entry{Handle: handle, Outcome: outcome, Line: line})
}

// Entries returns a copy of the report entries in order.
func (r *Report) Entries() []Entry {
	if r == nil {
		return nil
	}
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Lines returns the report text lines in order.
func (r *Report) Lines() []string {
	if r == nil {
		return nil
	}
	lines := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		lines = append(lines, e.Line)
	}
	return lines
}

// Count returns how many entries carry outcome.
func (r *Report) Count(outcome Status) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, e := range r.entries {
		if e.Outcome == outcome {
			n++
		}
	}
	return n
}

// Len returns the number of entries.
func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// String renders every line followed by a newline.
func (r *Report) String() string {
	if r == nil || len(r.entries) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range r.entries {
		b.WriteString(e.Line)
		b.WriteByte('\n')
	}
	return b.String()
}
