package sema_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"taihe/internal/ast"
	"taihe/internal/diag"
	"taihe/internal/parser"
	"taihe/internal/sema"
	"taihe/internal/source"
	"taihe/internal/types"
)

type srcFile struct{ pkg, text string }

type result struct {
	graph *ast.Graph
	diags *diag.Manager
	codes []diag.Code
	out   *bytes.Buffer
}

func check(t *testing.T, files ...srcFile) *result {
	t.Helper()
	fs := source.NewFileSet()
	g := ast.NewGraph()
	for _, f := range files {
		id := fs.AddVirtual(f.pkg+".taihe", []byte(f.text))
		pkg, err := parser.ParseFile(fs, fs.Get(id), f.pkg)
		if err != nil {
			t.Fatalf("parse %s: %v", f.pkg, err)
		}
		g.AddPackage(pkg)
	}
	r := &result{graph: g, out: &bytes.Buffer{}}
	r.diags = diag.NewManager(r.out, diag.WithObserver(func(d diag.Diagnostic) {
		r.codes = append(r.codes, d.Code())
	}))
	if err := sema.Check(g, r.diags); err != nil {
		t.Fatalf("internal error: %v", err)
	}
	return r
}

func (r *result) decl(pkg, name string) ast.Decl {
	return r.graph.Package(pkg).Lookup(name)
}

func TestValidGraphResolves(t *testing.T) {
	r := check(t,
		srcFile{"geo", `
struct Point { x: f64; y: f64; }
enum Kind { A, B }
`},
		srcFile{"app", `
use geo;
use geo as g;
struct Shape { origin: geo.Point; pts: Array<g.Point>; kind: Optional<geo.Kind>; }
interface Base { id(): u64; }
interface Canvas: Base { draw(s: Shape, done: (ok: bool) => void): Map<String, Set<i32>>; }
union U { s: Shape; none; }
function make(): Canvas;
`})
	if len(r.codes) != 0 {
		t.Fatalf("unexpected diagnostics:\n%s", r.out)
	}
	if !r.graph.Frozen() {
		t.Fatal("graph must be frozen")
	}
	for _, d := range r.graph.Decls() {
		for _, ref := range ast.TypeRefs(d) {
			if !ref.IsResolved() {
				t.Errorf("%s: %s unresolved", d.Header().QualifiedName(), ref.Text())
			}
		}
	}

	shape := r.decl("app", "Shape").(*ast.Struct)
	origin, _ := shape.Fields[0].Type.Resolved()
	pts, _ := shape.Fields[1].Type.Resolved()
	if !types.Equal(origin, ast.TypeOf(r.decl("geo", "Point"))) {
		t.Errorf("origin = %v", origin.Repr())
	}
	if !types.Equal(pts, types.Array{Elem: origin}) {
		t.Errorf("pts = %v", pts.Repr())
	}
	canvas := r.decl("app", "Canvas").(*ast.Iface)
	ret, _ := canvas.Methods[0].Return.Resolved()
	if got := ret.Repr(); got != "Map<String, Set<i32>>" {
		t.Errorf("return = %q", got)
	}
	cb, _ := canvas.Methods[0].Params[1].Type.Resolved()
	if got := cb.Repr(); got != "(bool) => void" {
		t.Errorf("callback = %q", got)
	}
}

func TestUnresolvedTypeStaysUnresolved(t *testing.T) {
	r := check(t, srcFile{"p", "struct S { a: Missing; b: i32; c: Array<Gone>; }"})
	if diff := cmp.Diff([]diag.Code{diag.NotATypeError, diag.NotATypeError}, r.codes); diff != "" {
		t.Fatalf("codes (-want +got):\n%s\n%s", diff, r.out)
	}
	s := r.decl("p", "S").(*ast.Struct)
	if s.Fields[0].Type.IsResolved() || !s.Fields[0].Type.IsInvalid() {
		t.Error("a must stay unresolved")
	}
	if !s.Fields[1].Type.IsResolved() {
		t.Error("b must resolve despite the sibling failure")
	}
	if s.Fields[2].Type.IsResolved() {
		t.Error("c must stay unresolved")
	}
	if !r.diags.HasErrors() {
		t.Error("HasErrors must be true")
	}
	if !strings.Contains(r.out.String(), "p.taihe:1:15: error: unknown type 'Missing'") {
		t.Errorf("output:\n%s", r.out)
	}
}

func TestGenericArguments(t *testing.T) {
	r := check(t, srcFile{"p", `
struct S {
	a: Map<i32>;
	b: Array;
	c: Foo<i32>;
	d: Optional<i32, i32>;
}`})
	want := []diag.Code{diag.GenericArgumentsError, diag.GenericArgumentsError, diag.NotATypeError, diag.GenericArgumentsError}
	if diff := cmp.Diff(want, r.codes); diff != "" {
		t.Fatalf("codes (-want +got):\n%s\n%s", diff, r.out)
	}
	if !strings.Contains(r.out.String(), "Map expects 2 type argument(s), got 1") {
		t.Errorf("output:\n%s", r.out)
	}
}

func TestDuplicates(t *testing.T) {
	r := check(t,
		srcFile{"p", "struct S { a: i32; a: i64; }\nenum S { X }\nfunction f(x: i32, x: i32);"},
		srcFile{"p", "struct T {}"},
	)
	want := []diag.Code{diag.DuplicateNameError, diag.DuplicateNameError, diag.DuplicateNameError, diag.DuplicateNameError}
	if diff := cmp.Diff(want, r.codes); diff != "" {
		t.Fatalf("codes (-want +got):\n%s\n%s", diff, r.out)
	}
	out := r.out.String()
	for _, s := range []string{"duplicate package 'p'", "duplicate enum 'S'", "duplicate struct member 'a'", "duplicate parameter 'x'", "note: previously declared here"} {
		if !strings.Contains(out, s) {
			t.Errorf("missing %q in:\n%s", s, out)
		}
	}
}

func TestPackagesAndQualifiedNames(t *testing.T) {
	r := check(t,
		srcFile{"a.b", "struct X {}\nfunction f();"},
		srcFile{"c", `
use a.b as ab;
use nope;
struct Y { x1: ab.X; x2: a.b.X; x3: zz.X; x4: ab.Z; x5: ab.f; }
`})
	want := []diag.Code{diag.PackageNotExistError, diag.PackageNotExistError, diag.NotATypeError, diag.NotATypeError}
	if diff := cmp.Diff(want, r.codes); diff != "" {
		t.Fatalf("codes (-want +got):\n%s\n%s", diff, r.out)
	}
	if !strings.Contains(r.out.String(), "'ab.f' is a function, not a type") {
		t.Errorf("output:\n%s", r.out)
	}
}

func TestInterfaceParents(t *testing.T) {
	r := check(t, srcFile{"p", `
struct S {}
interface A: S {}
interface B: C {}
interface C: B {}
interface D: A {}
`})
	want := []diag.Code{diag.TypeUsageError, diag.RecursiveInclusionError, diag.RecursiveInclusionError}
	if diff := cmp.Diff(want, r.codes); diff != "" {
		t.Fatalf("codes (-want +got):\n%s\n%s", diff, r.out)
	}
	if !strings.Contains(r.out.String(), "interface 'B' inherits from itself") {
		t.Errorf("output:\n%s", r.out)
	}
}

func TestRecursiveInclusion(t *testing.T) {
	r := check(t, srcFile{"p", `
struct A { b: B; }
struct B { a: A; }
struct Node { next: Optional<Node>; kids: Array<Node>; }
union U { u: U; }
union V { list: Vector<V>; }
`})
	want := []diag.Code{diag.RecursiveInclusionError, diag.RecursiveInclusionError, diag.RecursiveInclusionError}
	if diff := cmp.Diff(want, r.codes); diff != "" {
		t.Fatalf("codes (-want +got):\n%s\n%s", diff, r.out)
	}
	if !strings.Contains(r.out.String(), "note: through 'p.B'") {
		t.Errorf("output:\n%s", r.out)
	}
}

func TestEnums(t *testing.T) {
	r := check(t, srcFile{"p", `
enum E { A, B = 5, C }
enum S: String { X, Y = "why" }
enum Small: u8 { Ok = 255, Bad }
enum F: f32 { A }
enum W: i8 { A = "x" }
enum T: String { A = 1 }
`})
	want := []diag.Code{diag.EnumValueError, diag.TypeUsageError, diag.EnumValueError, diag.EnumValueError}
	if diff := cmp.Diff(want, r.codes); diff != "" {
		t.Fatalf("codes (-want +got):\n%s\n%s", diff, r.out)
	}
	e := r.decl("p", "E").(*ast.Enum)
	var got []int64
	for _, it := range e.Items {
		got = append(got, it.Int)
	}
	if diff := cmp.Diff([]int64{0, 5, 6}, got); diff != "" {
		t.Error(diff)
	}
	s := r.decl("p", "S").(*ast.Enum)
	if s.Items[0].Str != "X" || s.Items[1].Str != "why" {
		t.Errorf("string values = %q %q", s.Items[0].Str, s.Items[1].Str)
	}
	if !strings.Contains(r.out.String(), "value 256 of 'Bad' does not fit in u8") {
		t.Errorf("output:\n%s", r.out)
	}
}

func TestAttributes(t *testing.T) {
	r := check(t, srcFile{"p", `
@!namespace("x")
@frobnicate struct A { @rename("b") a: i32; }
@class struct B {}
@rename function f();
@rename(1) function g();
@keep_name("x") enum E { X }
`})
	want := []diag.Code{diag.UnknownAttributeWarn, diag.AttributeArgsError, diag.AttributeArgsError, diag.AttributeArgsError, diag.AttributeArgsError}
	if diff := cmp.Diff(want, r.codes); diff != "" {
		t.Fatalf("codes (-want +got):\n%s\n%s", diff, r.out)
	}
	out := r.out.String()
	for _, s := range []string{
		"warning: unknown attribute '@frobnicate' is ignored",
		"attribute '@class' cannot be applied to a struct",
		"attribute '@rename' takes exactly 1 argument(s), got 0",
		"argument 1 of '@rename' must be a string",
		"attribute '@keep_name' takes no arguments, got 1",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("missing %q in:\n%s", s, out)
		}
	}
}

func TestWarningsAloneAreNotErrors(t *testing.T) {
	r := check(t, srcFile{"p", "@shiny struct A {}"})
	if r.diags.HasErrors() {
		t.Fatal("a warning must not count as error")
	}
	if r.diags.MaxLevel() != diag.LevelWarn {
		t.Fatalf("max level = %v", r.diags.MaxLevel())
	}
}
