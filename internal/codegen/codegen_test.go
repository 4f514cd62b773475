package codegen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"taihe/internal/ast"
	"taihe/internal/attrs"
	"taihe/internal/diag"
	"taihe/internal/mangle"
	"taihe/internal/parser"
	"taihe/internal/sema"
	"taihe/internal/source"
)

const geoSrc = `
struct Point { x: f64; y: f64; }
enum Kind: u8 { A, B = 5 }
enum Color: String { RED = "red", GREEN }
union Shape { point: Point; empty; }
interface Base { id(): i64; }
interface Reader: Base {
    read_all(max_len: i32): String;
    @get get_size(): i32;
}
function dist(a: Point, b: Point): f64;
@keep_name function make_point(x_val: f64): Point;
@static("Geo") function origin(): Point;
`

const appSrc = `
use geo;
function render(s: geo.Shape, cb: (n: i32) => void): Optional<String>;
@rename("paintAll") function paint_all(r: geo.Reader);
`

func buildGraph(t *testing.T) *ast.Graph {
	t.Helper()
	fs := source.NewFileSet()
	g := ast.NewGraph()
	for _, f := range []struct{ pkg, text string }{{"geo", geoSrc}, {"app", appSrc}} {
		id := fs.AddVirtual(f.pkg+".taihe", []byte(f.text))
		pkg, err := parser.ParseFile(fs, fs.Get(id), f.pkg)
		if err != nil {
			t.Fatalf("parse %s: %v", f.pkg, err)
		}
		g.AddPackage(pkg)
	}
	var sb strings.Builder
	m := diag.NewManager(&sb)
	if err := sema.Check(g, m); err != nil {
		t.Fatalf("internal error: %v", err)
	}
	if m.HasErrors() {
		t.Fatalf("unexpected diagnostics:\n%s", sb.String())
	}
	attrs.Apply(g, attrs.Options{})
	return g
}

func generate(t *testing.T, cfg Config) (*Output, *diag.Manager) {
	t.Helper()
	g := buildGraph(t)
	out := NewOutput()
	m := diag.NewManager(nil)
	if err := Run(context.Background(), g, m, out, Select(cfg), cfg); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out, m
}

func file(t *testing.T, out *Output, path string) string {
	t.Helper()
	data, ok := out.Get(path)
	if !ok {
		t.Fatalf("missing %s; have %v", path, out.Paths())
	}
	return string(data)
}

func wantContains(t *testing.T, text string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(text, w) {
			t.Errorf("missing %q in:\n%s", w, text)
		}
	}
}

func TestSelectOrder(t *testing.T) {
	names := func(gens []Generator) []string {
		out := make([]string, len(gens))
		for i, g := range gens {
			out[i] = g.Name()
		}
		return out
	}
	tests := []struct {
		cfg  Config
		want []string
	}{
		{Config{}, []string{}},
		{Config{C: true, Dump: true}, []string{"abi", "dump"}},
		{Config{Author: true}, []string{"abi", "proj", "impl"}},
		{Config{ANI: true}, []string{"abi", "proj", "ets", "ani"}},
		{Config{STS: true}, []string{"ets"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, names(Select(tt.cfg))); diff != "" {
			t.Errorf("Select(%+v) mismatch (-want +got):\n%s", tt.cfg, diff)
		}
	}
}

func TestAbiSymbolsComeFromMangler(t *testing.T) {
	out, _ := generate(t, Config{C: true})
	h := file(t, out, "include/geo.abi.h")
	wantContains(t, h,
		"struct "+mangle.MustEncode(mangle.KindType, "geo", "Point")+" {",
		"TH_EXPORT double "+mangle.MustEncode(mangle.KindFunc, "geo", "dist")+"(",
		mangle.MustEncode(mangle.KindFunc, "geo", "make_point"),
		mangle.MustEncode(mangle.KindIID, "geo", "Reader"),
		"struct "+mangle.MustEncode(mangle.KindFTable, "geo", "Reader")+" {",
		"struct "+mangle.MustEncode(mangle.KindVTable, "geo", "Reader")+" {",
		mangle.MustEncode(mangle.KindCopy, "geo", "Reader"),
		mangle.MustEncode(mangle.KindDrop, "geo", "Reader"),
		mangle.MustEncode(mangle.KindDynamicCast, "geo", "Reader"),
		mangle.MustEncode(mangle.KindStaticCast, "geo", "Reader", "geo", "Base"),
		"#define "+mangle.MustEncode(mangle.KindUnion, "geo", "Shape", "empty")+" 1",
		"#define "+mangle.MustEncode(mangle.KindType, "geo", "Kind", "B")+" ((uint8_t)5)",
		`"red"`,
	)
	app := file(t, out, "include/app.abi.h")
	wantContains(t, app, `#include "geo.abi.h"`, "struct TOptional")
}

func TestProjectionAndAuthor(t *testing.T) {
	out, _ := generate(t, Config{Author: true})
	proj := file(t, out, "include/geo.proj.hpp")
	wantContains(t, proj,
		"namespace geo {",
		"enum class Kind : uint8_t {",
		"B = 5,",
		"inline double dist(::geo::Point a, ::geo::Point b) {",
		"operator ::geo::Base() const",
	)
	app := file(t, out, "include/app.proj.hpp")
	wantContains(t, app, "::taihe::callback<void(int32_t)> cb", "inline void paintAll(")

	impl := file(t, out, "author/geo.impl.cpp")
	wantContains(t, impl,
		"class ReaderImpl {",
		`"Base::id not implemented"`,
		"TH_EXPORT_CPP_API_"+mangle.MustEncode(mangle.KindFunc, "geo", "dist")+"(dist);",
	)
}

func TestEtsNames(t *testing.T) {
	out, _ := generate(t, Config{STS: true})
	ets := file(t, out, "ets/geo.ets")
	wantContains(t, ets,
		"readAll(maxLen: int): string;",
		"get size(): int;",
		"export native function make_point(x_val: double): Point;",
		"export type Shape = Point | undefined;",
		`GREEN = "GREEN",`,
		"export class Geo {",
		"static native origin(): Point;",
	)
	app := file(t, out, "ets/app.ets")
	wantContains(t, app,
		`import * as geo from "./geo";`,
		"export native function render(s: geo.Shape, cb: ((arg0: int) => void)): (string | undefined);",
		"export native function paintAll(r: geo.Reader): void;",
	)
}

func TestAniBridge(t *testing.T) {
	out, _ := generate(t, Config{ANI: true})
	ani := file(t, out, "ani/geo.ani.cpp")
	wantContains(t, ani,
		"static ani_double "+mangle.MustEncode(mangle.KindBridgeFunc, "geo", "dist")+"(",
		mangle.MustEncode(mangle.KindBridgeMethod, "geo", "Reader", "read_all"),
		`env->FindNamespace("Lgeo;", &ns)`,
		`{"dist", nullptr, reinterpret_cast<void*>(`,
		"extern \"C\" ani_status ANI_GEO_BIND(ani_env* env) {",
	)
}

func TestParallelMatchesSequential(t *testing.T) {
	all := Config{C: true, CPP: true, Author: true, STS: true, ANI: true, Dump: true}
	seq, _ := generate(t, all)
	all.Parallel = true
	par, _ := generate(t, all)

	collect := func(o *Output) map[string]string {
		m := map[string]string{}
		for _, p := range o.Paths() {
			data, _ := o.Get(p)
			m[p] = string(data)
		}
		return m
	}
	if diff := cmp.Diff(collect(seq), collect(par)); diff != "" {
		t.Fatalf("parallel output differs (-seq +par):\n%s", diff)
	}
	if seq.Len() != 13 {
		t.Fatalf("files = %d, want 13: %v", seq.Len(), seq.Paths())
	}
}

func TestDumpSnapshot(t *testing.T) {
	out, _ := generate(t, Config{Dump: true})
	text := file(t, out, "dump/app.taihe")
	wantContains(t, text, "use geo;", "s: geo.Shape", "Optional<String>")

	data, _ := out.Get("dump/graph.msgpack")
	got, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(TakeSnapshot(buildGraph(t)), got); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
	if got.Packages[0].Decls[0].Symbol != mangle.MustEncode(mangle.KindType, "geo", "Point") {
		t.Fatalf("symbol = %q", got.Packages[0].Decls[0].Symbol)
	}
	if got.Packages[1].Uses[0] != "geo" {
		t.Fatalf("uses = %v", got.Packages[1].Uses)
	}
}

type clashGen struct{ name string }

func (c clashGen) Name() string { return c.name }

func (c clashGen) Generate(_ *ast.Graph, out *Output) error {
	return out.Put(c.name, "same.txt", []byte(c.name))
}

func TestOutputConflictIsFatal(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		var codes []diag.Code
		m := diag.NewManager(nil, diag.WithObserver(func(d diag.Diagnostic) {
			codes = append(codes, d.Code())
		}))
		out := NewOutput()
		gens := []Generator{clashGen{"one"}, clashGen{"two"}}
		if err := Run(context.Background(), ast.NewGraph(), m, out, gens, Config{Parallel: parallel}); err != nil {
			t.Fatalf("Run: %v", err)
		}
		if diff := cmp.Diff([]diag.Code{diag.OutputConflictFatal}, codes); diff != "" {
			t.Fatalf("parallel=%v codes (-want +got):\n%s", parallel, diff)
		}
		if !m.HasErrors() || m.MaxLevel() != diag.LevelFatal {
			t.Fatalf("conflict should be fatal")
		}
		if out.Len() != 1 {
			t.Fatalf("files = %d, want 1", out.Len())
		}
	}
}

func TestFlush(t *testing.T) {
	out := NewOutput()
	for _, p := range []string{"b/z.h", "a.h", "b/a.h"} {
		if err := out.Put("test", p, []byte(p)); err != nil {
			t.Fatal(err)
		}
	}
	if diff := cmp.Diff([]string{"a.h", "b/a.h", "b/z.h"}, out.Paths()); diff != "" {
		t.Fatalf("paths (-want +got):\n%s", diff)
	}
	dir := t.TempDir()
	if err := out.Flush(dir); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "b", "z.h"))
	if err != nil || string(data) != "b/z.h" {
		t.Fatalf("read back = %q, %v", data, err)
	}

	// a regular file where a directory is needed
	blocked := filepath.Join(t.TempDir(), "out")
	if err := os.WriteFile(blocked, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	err = out.Flush(blocked)
	var ce *diag.CompileError
	if !errors.As(err, &ce) || ce.Diag.Code() != diag.OutputWriteFatal {
		t.Fatalf("Flush into a file = %v, want OutputWriteFatal", err)
	}
}

func TestCamel(t *testing.T) {
	tests := map[string]string{
		"get_user_name": "getUserName",
		"x":             "x",
		"_private":      "private",
		"Already":       "already",
		"a__b":          "aB",
	}
	for in, want := range tests {
		if got := camel(in); got != want {
			t.Errorf("camel(%q) = %q, want %q", in, got, want)
		}
	}
	if got := pascal("read_all"); got != "ReadAll" {
		t.Errorf("pascal = %q", got)
	}
}

func TestRuntimeHeadersCopied(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{"common.h": "// c", "common.hpp": "// cpp", "notes.txt": "x"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	out, m := generate(t, Config{C: true, RuntimeDir: dir})
	if m.HasErrors() {
		t.Fatalf("unexpected errors: %s", m.Summary())
	}
	if got := file(t, out, "include/taihe/common.hpp"); got != "// cpp" {
		t.Fatalf("common.hpp = %q", got)
	}
	if _, ok := out.Get("include/taihe/notes.txt"); ok {
		t.Fatalf("non-header copied")
	}
}
