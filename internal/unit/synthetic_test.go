package unit

import (
	"testing"

	"lyra/internal/ast"
	"lyra/internal/symbols"
)

func TestSyntheticRoundTrip(t *testing.T) {
	c := NewSyntheticCache()
	sym := symbols.SymbolID(4)

	if _, ok := c.Get(sym); ok {
		t.Fatal("empty cache must miss")
	}

	c.Put(sym, ast.NodeID(11))
	if tree, ok := c.Get(sym); !ok || tree != 11 {
		t.Errorf("Get = %v/%v, want 11/true", tree, ok)
	}

	c.Remove(sym)
	if _, ok := c.Get(sym); ok {
		t.Error("entry must be gone after Remove")
	}
	c.Remove(sym) // absent: no-op
}

func TestSyntheticPutReplaces(t *testing.T) {
	c := NewSyntheticCache()
	sym := symbols.SymbolID(4)

	c.Put(sym, ast.NodeID(1))
	c.Put(sym, ast.NodeID(2))
	if tree, _ := c.Get(sym); tree != 2 {
		t.Errorf("Get = %v, want the replacement 2", tree)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1 (replace, not append)", c.Len())
	}
}

func TestSyntheticKeysSortedSnapshot(t *testing.T) {
	c := NewSyntheticCache()
	c.Put(9, 1)
	c.Put(2, 1)
	c.Put(5, 1)

	keys := c.Keys()
	if len(keys) != 3 || keys[0] != 2 || keys[1] != 5 || keys[2] != 9 {
		t.Errorf("Keys = %v, want [2 5 9]", keys)
	}

	// snapshot, not a live view
	c.Remove(5)
	if len(keys) != 3 {
		t.Error("snapshot mutated by Remove")
	}
}

func TestSyntheticClear(t *testing.T) {
	c := NewSyntheticCache()
	c.Put(1, 1)
	c.Put(2, 2)
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d", c.Len())
	}
	c.Clear() // empty: no-op
}

func TestSyntheticTraceHook(t *testing.T) {
	c := NewSyntheticCache()
	var ops []string
	c.SetTrace(func(op string, sym symbols.SymbolID) {
		ops = append(ops, op)
	})

	c.Put(1, 1)
	c.Get(1) // lookups are not mutations, no trace
	c.Remove(1)
	c.Remove(1) // absent, no trace
	c.Put(2, 2)
	c.Clear()

	want := []string{"put", "remove", "put", "clear"}
	if len(ops) != len(want) {
		t.Fatalf("ops = %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("ops[%d] = %q, want %q", i, ops[i], want[i])
		}
	}
}
