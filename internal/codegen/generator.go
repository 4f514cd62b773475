// Package codegen turns a validated declaration graph into binding sources.
//
// Every generator reads the frozen graph and writes through one Output, so
// generators never see each other's files and may run concurrently. All
// exported symbol names come from the mangle package.
package codegen

import (
	"context"

	"golang.org/x/sync/errgroup"

	"taihe/internal/ast"
	"taihe/internal/diag"
	"taihe/internal/trace"
)

// Generator produces one family of output files.
type Generator interface {
	Name() string
	Generate(g *ast.Graph, out *Output) error
}

// Config selects the generators to run. A generator pulls in the ones whose
// declarations it includes: the C++ projection needs the C header, author
// stubs and the native bridge need the projection, the bridge needs the
// user bindings.
type Config struct {
	C      bool // <pkg>.abi.h
	CPP    bool // <pkg>.proj.hpp
	Author bool // <pkg>.impl.cpp
	STS    bool // <pkg>.ets
	ANI    bool // <pkg>.ani.cpp
	Dump   bool // <pkg>.taihe + graph.msgpack

	Parallel bool
	Jobs     int // parallel generator limit; 0 means one per generator

	// RuntimeDir holds the runtime headers copied to include/taihe.
	RuntimeDir string
}

// Select returns the generators enabled by cfg in their fixed order.
func Select(cfg Config) []Generator {
	ani := cfg.ANI
	author := cfg.Author
	cpp := cfg.CPP || author || ani
	c := cfg.C || cpp
	sts := cfg.STS || ani

	var gens []Generator
	if c {
		gens = append(gens, abiGen{})
	}
	if cpp {
		gens = append(gens, projGen{})
	}
	if author {
		gens = append(gens, implGen{})
	}
	if sts {
		gens = append(gens, etsGen{})
	}
	if ani {
		gens = append(gens, aniGen{})
	}
	if cfg.Dump {
		gens = append(gens, dumpGen{})
	}
	if cfg.RuntimeDir != "" && (c || ani) {
		gens = append(gens, runtimeGen{dir: cfg.RuntimeDir})
	}
	return gens
}

// Run executes gens against g. Diagnostics from a failing generator are
// emitted in generator order, whether or not the generators ran in parallel,
// and never stop the others. Only non-diagnostic errors are returned.
func Run(ctx context.Context, g *ast.Graph, m *diag.Manager, out *Output, gens []Generator, cfg Config) error {
	tr := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx)
	runOne := func(gen Generator) error {
		span := trace.Begin(tr, trace.ScopeModule, "gen:"+gen.Name(), parent)
		err := gen.Generate(g, out)
		span.End("")
		return err
	}

	if !cfg.Parallel || len(gens) < 2 {
		_, err := diag.Each(m, gens, runOne)
		return err
	}

	results := make([]error, len(gens))
	eg, _ := errgroup.WithContext(ctx)
	if cfg.Jobs > 0 {
		eg.SetLimit(cfg.Jobs)
	}
	for i, gen := range gens {
		eg.Go(func() error {
			results[i] = runOne(gen)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	idx := make([]int, len(gens))
	for i := range idx {
		idx[i] = i
	}
	_, err := diag.Each(m, idx, func(i int) error { return results[i] })
	return err
}

// forEachPackage writes one file per package; the first failure stops the
// generator.
func forEachPackage(g *ast.Graph, fn func(pkg *ast.Package) error) error {
	for _, pkg := range g.Packages() {
		if err := fn(pkg); err != nil {
			return err
		}
	}
	return nil
}
