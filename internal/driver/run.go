// Package driver owns the compilation-unit registry for one run: it maps
// submitted sources to units, executes phases over them, and exports
// dependency edges for incremental build tooling.
package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"lyra/internal/diag"
	"lyra/internal/source"
	"lyra/internal/symbols"
	"lyra/internal/unit"
)

// Phase is one compiler pass over a single unit. Phases report through the
// unit's facade and return an error only for infrastructure failures;
// source-level problems go to diagnostics.
type Phase func(ctx context.Context, u *unit.Unit) error

// Run is one compilation run: a FileSet, a symbol table, the diagnostic
// context, and the registry of units created for submitted sources.
type Run struct {
	fset   *source.FileSet
	syms   *symbols.Table
	diags  *diag.Context
	units  []*unit.Unit
	byFile map[source.FileID]*unit.Unit
}

// NewRun creates a run reporting into r. The reporter is wrapped for
// thread safety so phases may execute across units in parallel; the
// categorized warning logs lock internally already.
func NewRun(r diag.Reporter) *Run {
	return &Run{
		fset:   source.NewFileSet(),
		syms:   symbols.NewTable(),
		diags:  diag.NewContext(diag.NewSyncReporter(r)),
		byFile: make(map[source.FileID]*unit.Unit),
	}
}

// FileSet returns the run's file storage.
func (r *Run) FileSet() *source.FileSet { return r.fset }

// Symbols returns the run's symbol table.
func (r *Run) Symbols() *symbols.Table { return r.syms }

// Diags returns the run-scoped diagnostic context.
func (r *Run) Diags() *diag.Context { return r.diags }

// AddFile loads a source from disk and registers a unit for it.
func (r *Run) AddFile(path string) (*unit.Unit, error) {
	id, err := r.fset.Load(path)
	if err != nil {
		return unit.NoUnit, err
	}
	return r.register(id), nil
}

// AddVirtual registers a unit over an in-memory source, typically one
// materialized during macro expansion.
func (r *Run) AddVirtual(name string, content []byte) *unit.Unit {
	return r.register(r.fset.AddVirtual(name, content))
}

func (r *Run) register(id source.FileID) *unit.Unit {
	u := unit.New(r.fset.Get(id), r.diags)
	r.units = append(r.units, u)
	r.byFile[id] = u
	return u
}

// Unit returns the unit registered for id, or unit.NoUnit so callers never
// branch on nil.
func (r *Run) Unit(id source.FileID) *unit.Unit {
	if u, ok := r.byFile[id]; ok {
		return u
	}
	return unit.NoUnit
}

// UnitByPath returns the unit for the latest file registered under path,
// or unit.NoUnit.
func (r *Run) UnitByPath(path string) *unit.Unit {
	if f, ok := r.fset.GetByPath(path); ok {
		return r.Unit(f.ID)
	}
	return unit.NoUnit
}

// Units returns the registry in registration order. READONLY.
func (r *Run) Units() []*unit.Unit {
	return r.units
}

// RunPhases drives every unit through the phases in order, then runs the
// unit's pending end-of-compilation checks and drops leftover synthetic
// definitions. Units are processed in parallel across jobs workers; each
// unit's state is disjoint, so only the shared diagnostic sinks need the
// locking they already have. jobs <= 0 selects GOMAXPROCS.
func (r *Run) RunPhases(ctx context.Context, jobs int, phases ...Phase) error {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, u := range r.units {
		u := u
		g.Go(func() error {
			for _, phase := range phases {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := phase(gctx, u); err != nil {
					return err
				}
			}
			u.RunPendingChecks()
			u.Synthetics().Clear()
			return nil
		})
	}
	return g.Wait()
}
