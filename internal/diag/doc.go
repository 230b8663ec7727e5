// Package diag defines the diagnostic model shared by all compiler phases.
//
// Diagnostic is the central record: severity, a stable numeric code, a
// message and a primary source span, plus optional notes. Phases emit
// through the Reporter interface so producers stay decoupled from storage
// and formatting; BagReporter collects into a Bag, NopReporter discards,
// SyncReporter serializes a shared reporter when units are processed in
// parallel.
//
// Context bundles the run-scoped pieces a compilation unit's diagnostics
// facade needs: the active reporter and the three categorized warning
// accumulators (deprecation, unchecked, inliner) that are summarized once
// at the end of a run ("3 deprecation warnings").
//
// The package is data-only: no formatting, no IO, no CLI concerns. The
// distinguished code ErrIncompleteInput lets interactive front ends tell
// "the input stopped mid-construct, ask for more" apart from a terminal
// syntax error.
package diag
