package driver

import (
	"context"

	"taihe/internal/diag"
	"taihe/internal/parser"
	"taihe/internal/source"
	"taihe/internal/trace"
)

// parse reads and parses every registered file. A bad file is reported and
// skipped; the others still reach the graph.
func (c *Compiler) parse(ctx context.Context) error {
	tr := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx)

	_, err := diag.Each(c.diags, c.files, func(f sourceFile) error {
		span := trace.Begin(tr, trace.ScopeModule, "file:"+f.path, parent)
		c.events.OnEvent(Event{File: f.path, Stage: StageParse, Status: StatusWorking})
		err := c.parseFile(f)
		status := StatusDone
		if err != nil {
			status = StatusError
		}
		c.events.OnEvent(Event{File: f.path, Stage: StageParse, Status: status})
		span.End(string(status))
		return err
	})
	return err
}

func (c *Compiler) parseFile(f sourceFile) error {
	id, err := c.fs.Load(f.path)
	if err != nil {
		return diag.Errorf(diag.SourceReadError, source.PathLoc(f.path), "cannot read source file: %v", err)
	}
	pkg, err := parser.ParseFile(c.fs, c.fs.Get(id), f.pkg)
	if err != nil {
		return err
	}
	c.graph.AddPackage(pkg)
	return nil
}
