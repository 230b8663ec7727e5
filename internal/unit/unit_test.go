package unit

import (
	"testing"

	"lyra/internal/diag"
	"lyra/internal/source"
	"lyra/internal/symbols"
)

func newTestFiles(t *testing.T) (*source.FileSet, *source.File, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	real := fs.Get(fs.Add("app/main.lyra", []byte("object Main\n"), 0))
	virtual := fs.Get(fs.AddVirtual("<macro:main>", []byte("object Main$gen\n")))
	return fs, real, virtual
}

func TestDependencyTrackingSetSemantics(t *testing.T) {
	_, real, _ := newTestFiles(t)
	u := New(real, nil)

	symA := symbols.SymbolID(7)
	symB := symbols.SymbolID(3)
	u.AddDependency(symA)
	u.AddDependency(symA) // duplicate
	u.AddDependency(symB)
	u.AddDefinition(symA)

	deps := u.Dependencies()
	if len(deps) != 2 || deps[0] != symB || deps[1] != symA {
		t.Errorf("Dependencies() = %v, want [3 7] sorted", deps)
	}
	defs := u.Definitions()
	if len(defs) != 1 || defs[0] != symA {
		t.Errorf("Definitions() = %v, want [7]", defs)
	}
}

func TestVirtualSourceHidesEdges(t *testing.T) {
	_, _, virtual := newTestFiles(t)
	u := New(virtual, nil)

	u.AddDependency(symbols.SymbolID(1))
	u.AddDefinition(symbols.SymbolID(2))

	if got := u.Dependencies(); len(got) != 0 {
		t.Errorf("virtual unit Dependencies() = %v, want empty", got)
	}
	if got := u.Definitions(); len(got) != 0 {
		t.Errorf("virtual unit Definitions() = %v, want empty", got)
	}
}

// the two-unit scenario: identical calls, opposite observations
func TestRealVersusVirtualScenario(t *testing.T) {
	_, real, virtual := newTestFiles(t)
	symA := symbols.SymbolID(10)
	symB := symbols.SymbolID(20)

	u1 := New(real, nil)
	u1.AddDefinition(symA)
	u1.AddDependency(symB)
	if defs := u1.Definitions(); len(defs) != 1 || defs[0] != symA {
		t.Errorf("u1 Definitions() = %v, want [%d]", defs, symA)
	}
	if deps := u1.Dependencies(); len(deps) != 1 || deps[0] != symB {
		t.Errorf("u1 Dependencies() = %v, want [%d]", deps, symB)
	}

	u2 := New(virtual, nil)
	u2.AddDefinition(symA)
	u2.AddDependency(symB)
	if defs := u2.Definitions(); len(defs) != 0 {
		t.Errorf("u2 Definitions() = %v, want empty", defs)
	}
	if deps := u2.Dependencies(); len(deps) != 0 {
		t.Errorf("u2 Dependencies() = %v, want empty", deps)
	}
}

func TestInvalidSymbolIgnored(t *testing.T) {
	_, real, _ := newTestFiles(t)
	u := New(real, nil)
	u.AddDependency(symbols.NoSymbolID)
	if got := u.Dependencies(); len(got) != 0 {
		t.Errorf("NoSymbolID recorded: %v", got)
	}
}

func TestFirstXMLLiteralWriteOnce(t *testing.T) {
	_, real, _ := newTestFiles(t)
	u := New(real, nil)

	if _, ok := u.FirstXMLLiteral(); ok {
		t.Fatal("fresh unit must have no XML literal position")
	}

	p := source.Span{File: real.ID, Start: 4, End: 9}
	u.RecordFirstXMLLiteral(p)
	if got, ok := u.FirstXMLLiteral(); !ok || got != p {
		t.Errorf("FirstXMLLiteral() = %v/%v, want %v/true", got, ok, p)
	}

	defer func() {
		if recover() == nil {
			t.Error("second RecordFirstXMLLiteral must panic")
		}
		if got, _ := u.FirstXMLLiteral(); got != p {
			t.Errorf("first write must win, got %v", got)
		}
	}()
	u.RecordFirstXMLLiteral(source.Span{File: real.ID, Start: 20, End: 22})
}

func TestIsJavaSource(t *testing.T) {
	fs := source.NewFileSet()
	cases := []struct {
		path string
		want bool
	}{
		{"interop/Bridge.java", true},
		{"app/main.lyra", false},
		{"legacy/Thing.scala", false},
		{"java", false},
	}
	for _, tc := range cases {
		f := fs.Get(fs.Add(tc.path, nil, 0))
		if got := New(f, nil).IsJavaSource(); got != tc.want {
			t.Errorf("IsJavaSource(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestSentinel(t *testing.T) {
	if NoUnit.Exists() {
		t.Error("NoUnit.Exists() = true")
	}
	if NoUnit.IsJavaSource() {
		t.Error("NoUnit.IsJavaSource() = true")
	}
	if NoUnit.String() != "<no compilation unit>" {
		t.Errorf("NoUnit.String() = %q", NoUnit.String())
	}

	// mutations are no-ops
	NoUnit.AddDependency(symbols.SymbolID(1))
	NoUnit.AddDefinition(symbols.SymbolID(2))
	NoUnit.RecordFirstXMLLiteral(source.Span{File: 1, Start: 1, End: 2})

	if got := NoUnit.Dependencies(); len(got) != 0 {
		t.Errorf("NoUnit.Dependencies() = %v", got)
	}
	if got := NoUnit.Definitions(); len(got) != 0 {
		t.Errorf("NoUnit.Definitions() = %v", got)
	}
	if _, ok := NoUnit.FirstXMLLiteral(); ok {
		t.Error("NoUnit recorded an XML literal position")
	}
}

// NoUnit is a shared global handed out for unknown registry lookups, so
// every mutator must leave it untouched.
func TestSentinelMutatorsAreNoOps(t *testing.T) {
	NoUnit.Defer(func() { t.Error("a check queued on the sentinel ran") })
	if NoUnit.PendingChecks() != 0 {
		t.Errorf("PendingChecks = %d, want 0", NoUnit.PendingChecks())
	}
	NoUnit.RunPendingChecks()

	NoUnit.SetTarget(source.Span{File: 1, Start: 1, End: 2})
	if _, ok := NoUnit.Target(); ok {
		t.Error("sentinel accepted a target span")
	}

	NoUnit.StoreTransformed(5, 9)
	if _, ok := NoUnit.Transformed(5); ok {
		t.Error("sentinel cached a transformed node")
	}

	if NoUnit.MarkFeatureChecked(FeatureMacros) {
		t.Error("sentinel claimed a fresh feature check")
	}
	if NoUnit.FeatureChecked(FeatureMacros) {
		t.Error("sentinel feature set mutated")
	}

	NoUnit.Synthetics().Put(symbols.SymbolID(1), 1)
	if NoUnit.Synthetics().Len() != 0 {
		t.Errorf("sentinel synthetic cache Len = %d, want 0", NoUnit.Synthetics().Len())
	}
	if _, ok := NoUnit.Synthetics().Get(symbols.SymbolID(1)); ok {
		t.Error("sentinel synthetic cache returned an entry")
	}
}

func TestPendingChecksRunInOrderAndDrain(t *testing.T) {
	_, real, _ := newTestFiles(t)
	u := New(real, nil)

	var order []int
	u.Defer(func() { order = append(order, 1) })
	u.Defer(func() { order = append(order, 2) })
	u.Defer(nil) // ignored
	u.Defer(func() { order = append(order, 3) })

	if u.PendingChecks() != 3 {
		t.Errorf("PendingChecks = %d, want 3", u.PendingChecks())
	}
	u.RunPendingChecks()
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("checks ran as %v, want [1 2 3]", order)
	}
	if u.PendingChecks() != 0 {
		t.Error("checks must drain after running")
	}

	u.RunPendingChecks() // second run is a no-op
	if len(order) != 3 {
		t.Errorf("drained checks ran again: %v", order)
	}
}

func TestTargetSpan(t *testing.T) {
	_, real, _ := newTestFiles(t)
	u := New(real, nil)

	if _, ok := u.Target(); ok {
		t.Error("fresh unit must check the whole file")
	}
	span := source.Span{File: real.ID, Start: 2, End: 8}
	u.SetTarget(span)
	if got, ok := u.Target(); !ok || got != span {
		t.Errorf("Target() = %v/%v", got, ok)
	}
	u.ClearTarget()
	if _, ok := u.Target(); ok {
		t.Error("ClearTarget must restore full-unit checking")
	}
}

func TestTransformedCache(t *testing.T) {
	_, real, _ := newTestFiles(t)
	u := New(real, nil)

	if _, ok := u.Transformed(5); ok {
		t.Error("empty cache must miss")
	}
	u.StoreTransformed(5, 9)
	if got, ok := u.Transformed(5); !ok || got != 9 {
		t.Errorf("Transformed(5) = %v/%v, want 9/true", got, ok)
	}
}

func TestFeatureChecks(t *testing.T) {
	_, real, _ := newTestFiles(t)
	u := New(real, nil)

	if u.FeatureChecked(FeatureMacros) {
		t.Error("feature marked before any check")
	}
	if !u.MarkFeatureChecked(FeatureMacros) {
		t.Error("first mark must report a fresh check")
	}
	if u.MarkFeatureChecked(FeatureMacros) {
		t.Error("second mark must report already-checked")
	}
	if !u.FeatureChecked(FeatureMacros) {
		t.Error("feature lost after marking")
	}
	if u.FeatureChecked(FeatureXMLLiterals) {
		t.Error("unrelated feature marked")
	}
}

func TestResolveDelegatesToSource(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.Add("pos.lyra", []byte("ab\ncd\n"), 0))
	u := New(f, diag.NewContext(nil))

	start, end := u.Resolve(source.Span{File: f.ID, Start: 3, End: 5})
	if start != (source.LineCol{Line: 2, Col: 1}) {
		t.Errorf("start = %+v", start)
	}
	if end != (source.LineCol{Line: 2, Col: 3}) {
		t.Errorf("end = %+v", end)
	}

	if s, e := NoUnit.Resolve(source.Span{}); s != (source.LineCol{}) || e != (source.LineCol{}) {
		t.Error("sentinel Resolve must return zero positions")
	}
}
