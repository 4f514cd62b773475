package driver_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"taihe/internal/ast"
	"taihe/internal/codegen"
	"taihe/internal/diag"
	"taihe/internal/driver"
	"taihe/internal/format"
	"taihe/internal/trace"
)

type run struct {
	ok    bool
	c     *driver.Compiler
	m     *diag.Manager
	out   *bytes.Buffer
	codes []diag.Code
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, text := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func compile(t *testing.T, opts driver.Options) *run {
	t.Helper()
	return compileCtx(t, context.Background(), opts)
}

func compileCtx(t *testing.T, ctx context.Context, opts driver.Options) *run {
	t.Helper()
	r := &run{out: &bytes.Buffer{}}
	r.m = diag.NewManager(r.out, diag.WithObserver(func(d diag.Diagnostic) {
		r.codes = append(r.codes, d.Code())
	}))
	r.c = driver.New(opts, r.m)
	r.ok = r.c.Run(ctx)
	return r
}

func TestInvalidFileIsIsolated(t *testing.T) {
	src := t.TempDir()
	writeFiles(t, src, map[string]string{
		"bad.taihe":  "struct Broken { x: i32 ",
		"good.taihe": "struct Point { x: f64; y: f64; }\nfunction origin(): Point;\n",
	})
	outDir := filepath.Join(t.TempDir(), "out")

	r := compile(t, driver.Options{
		Sources:   []string{src},
		OutputDir: outDir,
		Generate:  codegen.Config{C: true, CPP: true},
	})
	if r.ok || !r.m.HasErrors() {
		t.Fatalf("run succeeded on a broken file:\n%s", r.out)
	}
	if diff := cmp.Diff([]diag.Code{diag.UnexpectedTokenError}, r.codes); diff != "" {
		t.Fatalf("codes (-want +got):\n%s", diff)
	}

	good := r.c.Graph().Package("good")
	if good == nil || r.c.Graph().Package("bad") != nil {
		t.Fatalf("packages = %v", r.c.Graph().Packages())
	}
	text := string(format.PrintPackage(good, format.Options{}))
	if !strings.Contains(text, "struct Point {") || !strings.Contains(text, "function origin(): Point;") {
		t.Fatalf("printed package:\n%s", text)
	}

	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Fatalf("output directory created despite errors: %v", err)
	}
	if r.c.Output() != nil {
		t.Fatalf("generators ran despite errors")
	}
}

func TestUnresolvedTypePrintsPlaceholder(t *testing.T) {
	src := t.TempDir()
	writeFiles(t, src, map[string]string{
		"shapes.taihe": "struct Box { size: Missing; count: i32; }\n",
	})
	r := compile(t, driver.Options{Sources: []string{src}})
	if r.ok {
		t.Fatalf("run succeeded with an unknown type")
	}
	if diff := cmp.Diff([]diag.Code{diag.NotATypeError}, r.codes); diff != "" {
		t.Fatalf("codes (-want +got):\n%s", diff)
	}
	box := r.c.Graph().Package("shapes").Lookup("Box").(*ast.Struct)
	if box.Fields[0].Type.IsResolved() || !box.Fields[1].Type.IsResolved() {
		t.Fatalf("resolution state wrong: %v %v", box.Fields[0].Type.IsResolved(), box.Fields[1].Type.IsResolved())
	}
	got := format.PrintDecl(box, format.Options{})
	if !strings.Contains(got, "size: Missing /* <error type> */;") {
		t.Fatalf("printed:\n%s", got)
	}
}

func TestScanClassifiesEntries(t *testing.T) {
	src := t.TempDir()
	writeFiles(t, src, map[string]string{
		"README.md":      "# docs",
		"bad-name.taihe": "struct A {}",
		"ok.taihe":       "struct A {}",
		"sub/x.taihe":    "struct B {}",
	})
	r := compile(t, driver.Options{Sources: []string{src, src}})
	if !r.ok {
		t.Fatalf("warnings must not fail the run:\n%s", r.out)
	}
	want := []diag.Code{diag.IgnoredFileWarn, diag.PackageNameWarn, diag.IgnoredDirectoryWarn}
	// the directory is listed twice, so every warning repeats
	if diff := cmp.Diff(append(want, want...), r.codes); diff != "" {
		t.Fatalf("codes (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{filepath.Join(src, "ok.taihe")}, r.c.Sources()); diff != "" {
		t.Fatalf("sources (-want +got):\n%s", diff)
	}
	for _, note := range []string{"rename to 'README.taihe'", "rename to 'bad_name.taihe'", "ignoring directory 'sub'"} {
		if !strings.Contains(r.out.String(), note) {
			t.Errorf("output misses %q:\n%s", note, r.out)
		}
	}
}

func TestMissingSourceDirectory(t *testing.T) {
	r := compile(t, driver.Options{Sources: []string{filepath.Join(t.TempDir(), "nope")}})
	if r.ok {
		t.Fatalf("missing directory must fail the run")
	}
	if diff := cmp.Diff([]diag.Code{diag.SourceReadError}, r.codes); diff != "" {
		t.Fatalf("codes (-want +got):\n%s", diff)
	}
}

func TestGenerateWritesFiles(t *testing.T) {
	src := t.TempDir()
	writeFiles(t, src, map[string]string{
		"geo.taihe": "struct Point { x: f64; y: f64; }\nfunction dist(a: Point, b: Point): f64;\n",
		"app.taihe": "use geo;\nfunction center(): geo.Point;\n",
	})
	outDir := t.TempDir()

	var events []driver.Event
	r := compile(t, driver.Options{
		Sources:   []string{src},
		OutputDir: outDir,
		Generate:  codegen.Config{STS: true, C: true, Parallel: true},
		Progress:  driver.SinkFunc(func(e driver.Event) { events = append(events, e) }),
	})
	if !r.ok {
		t.Fatalf("run failed:\n%s", r.out)
	}
	for _, p := range []string{"include/geo.abi.h", "include/app.abi.h", "ets/app.ets", "ets/geo.ets"} {
		if _, err := os.Stat(filepath.Join(outDir, filepath.FromSlash(p))); err != nil {
			t.Errorf("missing %s: %v", p, err)
		}
	}

	var names []string
	for _, p := range r.c.Timer().Phases() {
		names = append(names, p.Name)
	}
	if diff := cmp.Diff([]string{"scan", "parse", "validate", "attr", "generate"}, names); diff != "" {
		t.Fatalf("phases (-want +got):\n%s", diff)
	}

	var stages []driver.Stage
	for _, e := range events {
		if e.File == "" && e.Status != driver.StatusWorking {
			stages = append(stages, e.Stage)
		}
	}
	if diff := cmp.Diff(driver.Stages, stages); diff != "" {
		t.Fatalf("stage events (-want +got):\n%s", diff)
	}
}

func TestAnalysisOnlyRun(t *testing.T) {
	src := t.TempDir()
	writeFiles(t, src, map[string]string{"a.taihe": "enum E { X, Y }\n"})

	var skipped bool
	r := compile(t, driver.Options{
		Sources:  []string{src},
		Generate: codegen.Config{C: true},
		Progress: driver.SinkFunc(func(e driver.Event) {
			if e.Stage == driver.StageGenerate && e.Status == driver.StatusSkipped {
				skipped = true
			}
		}),
	})
	if !r.ok || r.c.Output() != nil || !skipped {
		t.Fatalf("ok=%v output=%v skipped=%v", r.ok, r.c.Output(), skipped)
	}
}

func TestKeepNamesOption(t *testing.T) {
	src := t.TempDir()
	writeFiles(t, src, map[string]string{"a.taihe": "function do_it(some_arg: i32);\n"})
	r := compile(t, driver.Options{Sources: []string{src}, KeepNames: true})
	if !r.ok {
		t.Fatalf("run failed:\n%s", r.out)
	}
	fn := r.c.Graph().Package("a").Lookup("do_it").(*ast.Func)
	if !fn.KeepName || !fn.Params[0].KeepName {
		t.Fatalf("keep_name not propagated: %v %v", fn.KeepName, fn.Params[0].KeepName)
	}
}

func TestTraceSpans(t *testing.T) {
	src := t.TempDir()
	writeFiles(t, src, map[string]string{"a.taihe": "struct S { v: i8; }\n"})

	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDetail, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tr)
	r := compileCtx(t, ctx, driver.Options{Sources: []string{src}})
	if !r.ok {
		t.Fatalf("run failed:\n%s", r.out)
	}
	for _, want := range []string{"→ taihec", "→ parse", "file:" + filepath.Join(src, "a.taihe"), "generate (skipped: no output directory)", "← taihec (ok)"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("trace misses %q:\n%s", want, buf.String())
		}
	}
}

func TestRunTwicePanics(t *testing.T) {
	r := compile(t, driver.Options{})
	if !r.ok {
		t.Fatalf("empty run failed:\n%s", r.out)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("second Run did not panic")
		}
	}()
	r.c.Run(context.Background())
}

func TestPackageName(t *testing.T) {
	tests := map[string]string{
		"ohos.media":  "ohos.media",
		"bad-name":    "bad_name",
		"1st":         "_1st",
		"a..b":        "a.b",
		"café":        "café",
		"cafe\u0301":  "café",
		"x y":         "x_y",
		"Upper_Case9": "Upper_Case9",
	}
	for in, want := range tests {
		if got := driver.PackageName(in); got != want {
			t.Errorf("PackageName(%q) = %q, want %q", in, got, want)
		}
	}
}
