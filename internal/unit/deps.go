package unit

import (
	"sort"

	"lyra/internal/symbols"
)

// Dependency tracking for incremental build tooling.
//
// Units over virtual sources observe permanently empty dependency and
// definition sets. A virtual source is typically produced while expanding a
// real unit; tracking its edges lets a build tool see mutual "needs
// recompile" signals between the real and the generated unit and recompile
// forever. Hiding the edges under-approximates the true dependencies of
// such units but breaks the cycle. The predicate is evaluated on the live
// source state at every call, never cached.

func (u *Unit) tracksSymbols() bool {
	return u.Exists() && !u.sourceVirtual()
}

// AddDependency records an external symbol this unit's code depends on.
// No-op for non-existent or virtual-source units and invalid ids.
func (u *Unit) AddDependency(sym symbols.SymbolID) {
	if !u.tracksSymbols() || !sym.IsValid() {
		return
	}
	u.dependsOn[sym] = struct{}{}
}

// AddDefinition records a top-level symbol this unit defines.
// No-op for non-existent or virtual-source units and invalid ids.
func (u *Unit) AddDefinition(sym symbols.SymbolID) {
	if !u.tracksSymbols() || !sym.IsValid() {
		return
	}
	u.defines[sym] = struct{}{}
}

// Dependencies returns the recorded dependency edges sorted by id, or an
// empty slice whenever the tracking policy hides them.
func (u *Unit) Dependencies() []symbols.SymbolID {
	if !u.tracksSymbols() {
		return nil
	}
	return sortedIDs(u.dependsOn)
}

// Definitions returns the recorded definition edges sorted by id, or an
// empty slice whenever the tracking policy hides them.
func (u *Unit) Definitions() []symbols.SymbolID {
	if !u.tracksSymbols() {
		return nil
	}
	return sortedIDs(u.defines)
}

func sortedIDs(set map[symbols.SymbolID]struct{}) []symbols.SymbolID {
	out := make([]symbols.SymbolID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
