package unit

import (
	"sort"

	"lyra/internal/ast"
	"lyra/internal/symbols"
)

// TraceFunc observes synthetic cache mutations for debugging. The hook is
// side-effect only; the cache contract does not depend on it.
type TraceFunc func(op string, sym symbols.SymbolID)

// SyntheticCache maps a resolved symbol to the compiler-generated tree an
// early phase stashed for it. A later phase retrieves the tree, splices it
// in, and removes the entry. At most one tree is registered per symbol.
type SyntheticCache struct {
	entries map[symbols.SymbolID]ast.NodeID
	trace   TraceFunc
	sealed  bool
}

// NewSyntheticCache creates an empty cache.
func NewSyntheticCache() *SyntheticCache {
	return &SyntheticCache{entries: make(map[symbols.SymbolID]ast.NodeID)}
}

// seal makes every mutation a no-op. The cache of a non-existent unit is
// sealed at construction so the shared NoUnit sentinel stays empty no
// matter what callers do with it.
func (c *SyntheticCache) seal() {
	c.sealed = true
}

// SetTrace installs the mutation observer; nil disables tracing.
func (c *SyntheticCache) SetTrace(fn TraceFunc) {
	c.trace = fn
}

func (c *SyntheticCache) traced(op string, sym symbols.SymbolID) {
	if c.trace != nil {
		c.trace(op, sym)
	}
}

// Put registers tree for sym, replacing any previous entry.
// No-op on a sealed cache.
func (c *SyntheticCache) Put(sym symbols.SymbolID, tree ast.NodeID) {
	if c.sealed {
		return
	}
	c.entries[sym] = tree
	c.traced("put", sym)
}

// Get returns the registered tree; ok is false for absent symbols.
func (c *SyntheticCache) Get(sym symbols.SymbolID) (tree ast.NodeID, ok bool) {
	tree, ok = c.entries[sym]
	return tree, ok
}

// Remove drops the entry for sym; removing an absent entry is a no-op.
func (c *SyntheticCache) Remove(sym symbols.SymbolID) {
	if _, ok := c.entries[sym]; !ok {
		return
	}
	delete(c.entries, sym)
	c.traced("remove", sym)
}

// Keys returns a snapshot of the registered symbols sorted by id, so
// downstream processing stays deterministic.
func (c *SyntheticCache) Keys() []symbols.SymbolID {
	out := make([]symbols.SymbolID, 0, len(c.entries))
	for sym := range c.entries {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clear drops all entries (unit disposal or phase-boundary reset).
func (c *SyntheticCache) Clear() {
	if len(c.entries) == 0 {
		return
	}
	c.entries = make(map[symbols.SymbolID]ast.NodeID)
	c.traced("clear", symbols.NoSymbolID)
}

// Len returns the number of registered entries.
func (c *SyntheticCache) Len() int {
	return len(c.entries)
}
