// Package unit defines the per-source-file state container that a
// compilation run threads through parsing, resolution, type checking and
// lowering. A Unit owns its tree and caches exclusively; the diagnostics
// reporter and the run-level warning accumulators are the only shared
// pieces, reached through diag.Context.
//
// A Unit is not safe for concurrent use. Runs that process distinct units
// in parallel need no coordination between them.
package unit

import (
	"strings"

	"lyra/internal/ast"
	"lyra/internal/diag"
	"lyra/internal/source"
	"lyra/internal/symbols"
)

// JavaSuffix marks interop sources that skip the Lyra-only phases.
const JavaSuffix = ".java"

// Unit is the state of one source file inside a compilation run.
type Unit struct {
	src   *source.File
	diags *diag.Context

	tree *ast.Tree

	firstXMLLiteral source.Span
	hasXMLLiteral   bool

	dependsOn map[symbols.SymbolID]struct{}
	defines   map[symbols.SymbolID]struct{}

	synthetics  *SyntheticCache
	transformed map[ast.NodeID]ast.NodeID

	pending []func()

	checkedFeatures map[Feature]struct{}

	target    source.Span
	hasTarget bool

	// derived from the source name once at construction; the name never
	// changes afterwards
	isJava bool

	fresh FreshNames
}

// New creates a unit over src. src may be nil (or carry NoFileID) for a
// unit that does not exist; dc may be nil, in which case diagnostics are
// discarded.
func New(src *source.File, dc *diag.Context) *Unit {
	if dc == nil {
		dc = diag.NewContext(nil)
	}
	u := &Unit{
		src:             src,
		diags:           dc,
		tree:            ast.NewTree(),
		dependsOn:       make(map[symbols.SymbolID]struct{}),
		defines:         make(map[symbols.SymbolID]struct{}),
		synthetics:      NewSyntheticCache(),
		transformed:     make(map[ast.NodeID]ast.NodeID),
		checkedFeatures: make(map[Feature]struct{}),
	}
	if src != nil {
		u.isJava = strings.HasSuffix(src.Path, JavaSuffix)
	}
	if !u.Exists() {
		// the sentinel's cache must stay empty no matter who pokes it
		u.synthetics.seal()
	}
	return u
}

// Exists reports whether the unit is backed by an actual source. The check
// is an equality against the NoFileID sentinel and is re-evaluated on every
// call, never cached.
func (u *Unit) Exists() bool {
	return u.src != nil && u.src.ID != source.NoFileID
}

// sourceVirtual re-checks the live source state; unit policies must not
// cache the answer.
func (u *Unit) sourceVirtual() bool {
	return u.Exists() && u.src.IsVirtual()
}

// Source returns the backing source file; nil for the sentinel.
func (u *Unit) Source() *source.File {
	return u.src
}

// IsJavaSource reports whether the source name carries the Java suffix.
// Derived once at construction.
func (u *Unit) IsJavaSource() bool {
	return u.isJava
}

// Tree returns the node storage this unit owns until lowering takes it.
func (u *Unit) Tree() *ast.Tree {
	return u.tree
}

// Resolve translates a span into line/column pairs via the backing source.
func (u *Unit) Resolve(span source.Span) (start, end source.LineCol) {
	if !u.Exists() {
		return source.LineCol{}, source.LineCol{}
	}
	return u.src.LineColAt(span.Start), u.src.LineColAt(span.End)
}

// RecordFirstXMLLiteral notes where the first XML literal of the unit
// starts. The position is write-once: recording a second position is a
// contract violation in the calling phase and panics. Recording on a
// non-existent unit is a no-op.
func (u *Unit) RecordFirstXMLLiteral(span source.Span) {
	if !u.Exists() {
		return
	}
	if u.hasXMLLiteral {
		panic("unit: first XML literal position recorded twice")
	}
	u.firstXMLLiteral = span
	u.hasXMLLiteral = true
}

// FirstXMLLiteral returns the recorded position; ok is false when the unit
// never saw an XML literal.
func (u *Unit) FirstXMLLiteral() (span source.Span, ok bool) {
	return u.firstXMLLiteral, u.hasXMLLiteral
}

// Synthetics returns the unit's synthetic definition cache.
func (u *Unit) Synthetics() *SyntheticCache {
	return u.synthetics
}

// StoreTransformed caches the resolved/typed replacement for a node so
// later phases skip recomputation. No-op for non-existent units.
func (u *Unit) StoreTransformed(orig, replacement ast.NodeID) {
	if !u.Exists() {
		return
	}
	u.transformed[orig] = replacement
}

// Transformed looks up a cached replacement.
func (u *Unit) Transformed(orig ast.NodeID) (ast.NodeID, bool) {
	t, ok := u.transformed[orig]
	return t, ok
}

// Defer queues a zero-argument check to run once compilation of the unit
// concludes. Checks run in registration order. No-op for non-existent
// units: nothing concludes for them, so nothing may be queued.
func (u *Unit) Defer(check func()) {
	if check == nil || !u.Exists() {
		return
	}
	u.pending = append(u.pending, check)
}

// RunPendingChecks executes and drains the deferred checks in order.
func (u *Unit) RunPendingChecks() {
	checks := u.pending
	u.pending = nil
	for _, check := range checks {
		check()
	}
}

// PendingChecks returns the number of queued deferred checks.
func (u *Unit) PendingChecks() int {
	return len(u.pending)
}

// SetTarget bounds type checking to the construct covering span.
// No-op for non-existent units.
func (u *Unit) SetTarget(span source.Span) {
	if !u.Exists() {
		return
	}
	u.target = span
	u.hasTarget = true
}

// ClearTarget restores full-unit checking.
func (u *Unit) ClearTarget() {
	u.target = source.NoSpan
	u.hasTarget = false
}

// Target returns the bounding span of a targeted check; ok is false for
// full-unit checking.
func (u *Unit) Target() (span source.Span, ok bool) {
	return u.target, u.hasTarget
}

// FreshTermName returns a term name unique within this unit. An empty
// prefix selects the default term prefix.
func (u *Unit) FreshTermName(prefix string) string {
	return u.fresh.FreshTermName(prefix)
}

// FreshTypeName returns a type name unique within this unit.
func (u *Unit) FreshTypeName(prefix string) string {
	return u.fresh.FreshTypeName(prefix)
}

func (u *Unit) String() string {
	if !u.Exists() {
		return "<no compilation unit>"
	}
	return u.src.Path
}
