package unit

import (
	"lyra/internal/diag"
	"lyra/internal/source"
)

// Diagnostics facade. Every method is pure delegation to the run's
// reporter and accumulators; none of them touches unit state. Errors do
// not abort compilation — whether to continue is the run's decision.

// Echo emits an informational message that is always shown.
func (u *Unit) Echo(span source.Span, msg string) {
	u.diags.Reporter.Report(diag.InfoEcho, diag.SevInfo, span, msg, nil)
}

// Comment emits a non-diagnostic annotation for tooling feedback.
func (u *Unit) Comment(span source.Span, msg string) {
	u.diags.Reporter.Report(diag.InfoComment, diag.SevInfo, span, msg, nil)
}

// Error reports a hard failure at span.
func (u *Unit) Error(span source.Span, msg string) {
	u.diags.Reporter.Report(diag.ErrGeneric, diag.SevError, span, msg, nil)
}

// IncompleteInputError reports that the source ended before a construct
// was complete. Interactive front ends treat it as "prompt for more input"
// rather than a terminal syntax error.
func (u *Unit) IncompleteInputError(span source.Span, msg string) {
	u.diags.Reporter.Report(diag.ErrIncompleteInput, diag.SevError, span, msg, nil)
}

// Warning reports an ordinary warning.
func (u *Unit) Warning(span source.Span, msg string) {
	u.diags.Reporter.Report(diag.WarnGeneric, diag.SevWarning, span, msg, nil)
}

// DeprecationWarning reports a warning and accumulates it into the run's
// deprecation registry for end-of-run summarization.
func (u *Unit) DeprecationWarning(span source.Span, msg string) {
	u.diags.Deprecations.Add(span, msg)
	u.diags.Reporter.Report(diag.WarnDeprecation, diag.SevWarning, span, msg, nil)
}

// UncheckedWarning reports a warning about an unchecked operation and
// accumulates it into the run's unchecked registry.
func (u *Unit) UncheckedWarning(span source.Span, msg string) {
	u.diags.Unchecked.Add(span, msg)
	u.diags.Reporter.Report(diag.WarnUnchecked, diag.SevWarning, span, msg, nil)
}

// InlinerWarning reports a missed-inlining warning and accumulates it into
// the run's inliner registry.
func (u *Unit) InlinerWarning(span source.Span, msg string) {
	u.diags.Inliner.Add(span, msg)
	u.diags.Reporter.Report(diag.WarnInliner, diag.SevWarning, span, msg, nil)
}

// Diags exposes the run-scoped diagnostic context the unit delegates to.
func (u *Unit) Diags() *diag.Context {
	return u.diags
}
