package diag

// Context carries the run-scoped diagnostic plumbing every compilation
// unit delegates to: the active reporter plus the three independent
// categorized warning accumulators.
type Context struct {
	Reporter     Reporter
	Deprecations *WarningLog
	Unchecked    *WarningLog
	Inliner      *WarningLog
}

// NewContext builds a Context around the given reporter with fresh
// accumulators. A nil reporter degrades to NopReporter.
func NewContext(r Reporter) *Context {
	if r == nil {
		r = NopReporter{}
	}
	return &Context{
		Reporter:     r,
		Deprecations: NewWarningLog("deprecation"),
		Unchecked:    NewWarningLog("unchecked"),
		Inliner:      NewWarningLog("inliner"),
	}
}

// Summaries returns the non-empty end-of-run warning summaries in a fixed
// order: deprecation, unchecked, inliner.
func (c *Context) Summaries() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, 3)
	for _, w := range []*WarningLog{c.Deprecations, c.Unchecked, c.Inliner} {
		if s := w.Summary(); s != "" {
			out = append(out, s)
		}
	}
	return out
}
