package driver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"lyra/internal/diag"
	"lyra/internal/symbols"
)

func TestDepSnapshotHidesVirtualEdges(t *testing.T) {
	r := NewRun(diag.NopReporter{})

	symA := r.Symbols().Allocate(symbols.Symbol{Name: "app.Main", Kind: symbols.SymbolObject})
	symB := r.Symbols().Allocate(symbols.Symbol{Name: "lib.Widget", Kind: symbols.SymbolClass})

	dir := t.TempDir()
	path := filepath.Join(dir, "main.lyra")
	if err := os.WriteFile(path, []byte("object Main\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	real, err := r.AddFile(path)
	if err != nil {
		t.Fatal(err)
	}
	real.AddDefinition(symA)
	real.AddDependency(symB)

	virtual := r.AddVirtual("<macro:main>", []byte("object Main$gen\n"))
	virtual.AddDefinition(symA)
	virtual.AddDependency(symB)

	snap := r.DepSnapshot()
	if len(snap.Units) != 2 {
		t.Fatalf("snapshot has %d units, want 2", len(snap.Units))
	}

	got := snap.Units[0]
	if got.Virtual {
		t.Error("disk unit flagged virtual")
	}
	if len(got.Defines) != 1 || got.Defines[0] != "app.Main" {
		t.Errorf("Defines = %v", got.Defines)
	}
	if len(got.DependsOn) != 1 || got.DependsOn[0] != "lib.Widget" {
		t.Errorf("DependsOn = %v", got.DependsOn)
	}

	gen := snap.Units[1]
	if !gen.Virtual {
		t.Error("virtual unit not flagged")
	}
	if len(gen.Defines) != 0 || len(gen.DependsOn) != 0 {
		t.Errorf("virtual edges leaked: %v / %v", gen.Defines, gen.DependsOn)
	}
}

func TestDepSnapshotRoundTrip(t *testing.T) {
	r := NewRun(diag.NopReporter{})
	sym := r.Symbols().Allocate(symbols.Symbol{Name: "app.Main"})
	r.AddVirtual("<gen>", nil) // rides along with empty edges

	dir := t.TempDir()
	path := filepath.Join(dir, "src.lyra")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	real, err := r.AddFile(path)
	if err != nil {
		t.Fatal(err)
	}
	real.AddDefinition(sym)

	out := filepath.Join(dir, "cache", "deps.mp")
	if err := WriteDepSnapshot(out, r.DepSnapshot()); err != nil {
		t.Fatal(err)
	}

	snap, err := ReadDepSnapshot(out)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Schema != depSnapshotSchemaVersion {
		t.Errorf("schema = %d", snap.Schema)
	}
	if len(snap.Units) != 2 {
		t.Fatalf("units = %d, want 2", len(snap.Units))
	}
	if snap.Units[1].Defines[0] != "app.Main" {
		t.Errorf("Defines = %v", snap.Units[1].Defines)
	}
}

func TestReadDepSnapshotRejectsSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "old.mp")

	stale := DepSnapshot{Schema: depSnapshotSchemaVersion + 1}
	raw, err := msgpack.Marshal(&stale)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err = ReadDepSnapshot(path)
	if !errors.Is(err, ErrSnapshotSchema) {
		t.Errorf("err = %v, want ErrSnapshotSchema", err)
	}
}
