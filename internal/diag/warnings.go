package diag

import (
	"fmt"
	"sync"

	"lyra/internal/source"
)

// WarningEntry is one accumulated categorized warning.
type WarningEntry struct {
	Span source.Span
	Msg  string
}

// WarningLog is a run-scoped accumulator for one warning category
// (deprecation, unchecked, inliner). It is the one piece of unit-adjacent
// state shared across units, so it locks internally.
type WarningLog struct {
	mu      sync.Mutex
	label   string
	entries []WarningEntry
}

// NewWarningLog creates an accumulator; label names the category in
// summaries ("deprecation", "unchecked", "inliner").
func NewWarningLog(label string) *WarningLog {
	return &WarningLog{label: label}
}

// Add records one warning occurrence.
func (w *WarningLog) Add(span source.Span, msg string) {
	if w == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.entries = append(w.entries, WarningEntry{Span: span, Msg: msg})
}

// Count returns the number of accumulated warnings.
func (w *WarningLog) Count() int {
	if w == nil {
		return 0
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entries)
}

// Entries returns a snapshot of the accumulated warnings.
func (w *WarningLog) Entries() []WarningEntry {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]WarningEntry, len(w.entries))
	copy(out, w.entries)
	return out
}

// Summary renders the end-of-run line ("3 deprecation warnings").
// Empty logs summarize to the empty string.
func (w *WarningLog) Summary() string {
	n := w.Count()
	switch n {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("1 %s warning", w.label)
	default:
		return fmt.Sprintf("%d %s warnings", n, w.label)
	}
}
