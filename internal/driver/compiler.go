// Package driver runs the compiler phases
// SCAN → PARSE → VALIDATE → ATTR → GENERATE in order over one set of source
// directories.
//
// A Compiler owns its diagnostics manager and declaration graph; it is used
// for exactly one run.
package driver

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"taihe/internal/ast"
	"taihe/internal/attrs"
	"taihe/internal/codegen"
	"taihe/internal/diag"
	"taihe/internal/observ"
	"taihe/internal/sema"
	"taihe/internal/source"
	"taihe/internal/trace"
)

// Compiler holds the state of one run.
type Compiler struct {
	opts   Options
	diags  *diag.Manager
	fs     *source.FileSet
	graph  *ast.Graph
	timer  *observ.Timer
	out    *codegen.Output
	files  []sourceFile
	ran    bool
	events ProgressSink
}

// New creates a compiler reporting to m.
func New(opts Options, m *diag.Manager) *Compiler {
	events := opts.Progress
	if events == nil {
		events = nopSink{}
	}
	return &Compiler{
		opts:   opts,
		diags:  m,
		fs:     source.NewFileSet(),
		graph:  ast.NewGraph(),
		timer:  observ.NewTimer(),
		events: events,
	}
}

// Graph is the declaration graph, available after the run even when it failed.
func (c *Compiler) Graph() *ast.Graph { return c.graph }

// FileSet holds every source file read by the run.
func (c *Compiler) FileSet() *source.FileSet { return c.fs }

// Timer holds per-phase durations.
func (c *Compiler) Timer() *observ.Timer { return c.timer }

// Output holds the generated files; nil when GENERATE did not run.
func (c *Compiler) Output() *codegen.Output { return c.out }

// Sources lists the files SCAN registered, in registration order.
func (c *Compiler) Sources() []string {
	paths := make([]string, len(c.files))
	for i, f := range c.files {
		paths[i] = f.path
	}
	return paths
}

// Run executes all phases and reports whether no error was emitted.
// A non-diagnostic error inside a phase is a compiler bug and panics.
func (c *Compiler) Run(ctx context.Context) bool {
	if c.ran {
		panic("driver: Compiler.Run called twice")
	}
	c.ran = true

	tr := trace.FromContext(ctx)
	root := trace.Begin(tr, trace.ScopeDriver, "taihec", trace.CurrentSpan(ctx))
	ctx = trace.WithSpan(ctx, root)

	c.phase(ctx, StageScan, c.scan)
	c.phase(ctx, StageParse, c.parse)
	c.phase(ctx, StageValidate, func(context.Context) error {
		return sema.Check(c.graph, c.diags)
	})
	c.phase(ctx, StageAttr, func(context.Context) error {
		st := attrs.Apply(c.graph, attrs.Options{KeepNames: c.opts.KeepNames})
		trace.Point(tr, trace.ScopeModule, "attr", fmt.Sprintf("kept=%d renamed=%d", st.Kept, st.Renamed), trace.CurrentSpan(ctx))
		return nil
	})

	if reason := c.skipGenerate(); reason != "" {
		c.events.OnEvent(Event{Stage: StageGenerate, Status: StatusSkipped})
		trace.Point(tr, trace.ScopePass, "generate", "skipped: "+reason, root.ID())
	} else {
		c.phase(ctx, StageGenerate, c.generate)
	}

	ok := !c.diags.HasErrors()
	detail := "ok"
	if !ok {
		detail = "failed"
	}
	root.WithExtra("errors", strconv.Itoa(c.errorCount())).End(detail)
	return ok
}

func (c *Compiler) skipGenerate() string {
	switch {
	case c.opts.OutputDir == "":
		return "no output directory"
	case c.diags.HasErrors():
		return "errors reported"
	}
	return ""
}

// phase runs fn with timing, tracing and progress around it.
func (c *Compiler) phase(ctx context.Context, stage Stage, fn func(context.Context) error) {
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopePass, string(stage), trace.CurrentSpan(ctx))
	idx := c.timer.Begin(string(stage))
	before := c.errorCount()
	c.events.OnEvent(Event{Stage: stage, Status: StatusWorking})
	start := time.Now()

	if err := fn(trace.WithSpan(ctx, span)); err != nil {
		panic(fmt.Errorf("internal compiler error in %s: %w", stage, err))
	}

	failed := c.errorCount() > before
	note := ""
	if stage == StageScan || stage == StageParse {
		note = strconv.Itoa(len(c.files)) + " files"
	}
	c.timer.End(idx, note, failed)
	status := StatusDone
	if failed {
		status = StatusError
	}
	c.events.OnEvent(Event{Stage: stage, Status: status, Elapsed: time.Since(start)})
	span.End(string(status))
}

func (c *Compiler) errorCount() int {
	return c.diags.Count(diag.LevelError) + c.diags.Count(diag.LevelFatal)
}

func (c *Compiler) generate(ctx context.Context) error {
	cfg := c.opts.Generate
	if cfg.RuntimeDir == "" {
		cfg.RuntimeDir = c.opts.Env.RuntimeHeaders()
	}
	c.out = codegen.NewOutput()
	if err := codegen.Run(ctx, c.graph, c.diags, c.out, codegen.Select(cfg), cfg); err != nil {
		return err
	}
	if c.diags.HasErrors() {
		// a conflicting generator leaves nothing on disk
		return nil
	}
	return c.diags.CaptureError(func() error {
		return c.out.Flush(c.opts.OutputDir)
	})
}
