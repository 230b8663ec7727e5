package symbols

import (
	"fmt"

	"fortio.org/safecast"
)

// Table allocates symbols and resolves ids back to records. One table is
// shared by a whole compilation run; ids are stable for its lifetime.
type Table struct {
	syms []Symbol
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{syms: make([]Symbol, 0, 64)}
}

// Allocate stores the symbol and returns its id. Ids start at 1 so the zero
// value stays the "no symbol" sentinel.
func (t *Table) Allocate(sym Symbol) SymbolID {
	next, err := safecast.Conv[uint32](len(t.syms) + 1)
	if err != nil {
		panic(fmt.Errorf("symbol count overflow: %w", err))
	}
	t.syms = append(t.syms, sym)
	return SymbolID(next)
}

// Get returns the symbol record, or nil for NoSymbolID and unknown ids.
func (t *Table) Get(id SymbolID) *Symbol {
	if !id.IsValid() || int(id) > len(t.syms) {
		return nil
	}
	return &t.syms[id-1]
}

// Name resolves an id to its name; unknown ids yield a diagnostic label
// rather than failing, since callers format arbitrary ids.
func (t *Table) Name(id SymbolID) string {
	if s := t.Get(id); s != nil {
		return s.Name
	}
	return fmt.Sprintf("<sym:%d>", id)
}

// Len returns the number of allocated symbols.
func (t *Table) Len() int {
	return len(t.syms)
}
