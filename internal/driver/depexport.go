package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/vmihailenco/msgpack/v5"

	"lyra/internal/symbols"
)

// Current schema version - increment when the snapshot format changes.
const depSnapshotSchemaVersion uint16 = 1

// ErrSnapshotSchema is returned when a snapshot on disk was written by an
// incompatible version of the tool.
var ErrSnapshotSchema = errors.New("dependency snapshot schema mismatch")

// UnitEdges is the serialized dependency record of one unit. Virtual units
// appear with empty edge lists: their edges are hidden from incremental
// build tooling so macro-generated sources cannot form recompile cycles.
type UnitEdges struct {
	Path      string
	Virtual   bool
	DependsOn []string
	Defines   []string
}

// DepSnapshot is the build-tool-facing export of a whole run.
type DepSnapshot struct {
	Schema uint16
	Units  []UnitEdges
}

// DepSnapshot collects the dependency/definition edges of every registered
// unit, resolving symbol ids to stable names.
func (r *Run) DepSnapshot() *DepSnapshot {
	snap := &DepSnapshot{
		Schema: depSnapshotSchemaVersion,
		Units:  make([]UnitEdges, 0, len(r.units)),
	}
	for _, u := range r.units {
		if !u.Exists() {
			continue
		}
		snap.Units = append(snap.Units, UnitEdges{
			Path:      u.Source().Path,
			Virtual:   u.Source().IsVirtual(),
			DependsOn: symbolNames(r.syms, u.Dependencies()),
			Defines:   symbolNames(r.syms, u.Definitions()),
		})
	}
	return snap
}

func symbolNames(tbl *symbols.Table, ids []symbols.SymbolID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, tbl.Name(id))
	}
	sort.Strings(out)
	return out
}

// WriteDepSnapshot serializes the snapshot to path. The write is atomic:
// encode into a temp file in the target directory, then rename over path.
func WriteDepSnapshot(path string, snap *DepSnapshot) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(snap); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ReadDepSnapshot loads a snapshot, rejecting incompatible schemas.
func ReadDepSnapshot(path string) (*DepSnapshot, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var snap DepSnapshot
	if err := msgpack.NewDecoder(f).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode dependency snapshot: %w", err)
	}
	if snap.Schema != depSnapshotSchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d",
			ErrSnapshotSchema, snap.Schema, depSnapshotSchemaVersion)
	}
	return &snap, nil
}
