package parser_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"taihe/internal/ast"
	"taihe/internal/diag"
	"taihe/internal/parser"
	"taihe/internal/source"
)

func parse(t *testing.T, input string) (*ast.Package, error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("pkg.taihe", []byte(input))
	return parser.ParseFile(fs, fs.Get(id), "pkg")
}

func mustParse(t *testing.T, input string) *ast.Package {
	t.Helper()
	pkg, err := parse(t, input)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return pkg
}

func TestParseUse(t *testing.T) {
	pkg := mustParse(t, "use ohos.media;\nuse ohos.base as b;")
	if len(pkg.Uses) != 2 {
		t.Fatalf("uses = %d", len(pkg.Uses))
	}
	if diff := cmp.Diff([]string{"ohos", "media"}, pkg.Uses[0].Path); diff != "" {
		t.Error(diff)
	}
	if pkg.Uses[1].Alias != "b" {
		t.Errorf("alias = %q", pkg.Uses[1].Alias)
	}
	if got := pkg.Uses[1].Loc.String(); got != "pkg.taihe:2:1" {
		t.Errorf("loc = %q", got)
	}
}

func TestParseStruct(t *testing.T) {
	pkg := mustParse(t, `
@keep_name
struct Point {
	x: f64;
	@rename("why") y: Optional<f64>;
	tags: Map<String, Array<i32>>;
}`)
	s, ok := pkg.Decls[0].(*ast.Struct)
	if !ok {
		t.Fatalf("decl = %T", pkg.Decls[0])
	}
	if s.Name != "Point" || s.Attr("keep_name") == nil {
		t.Fatalf("header = %+v", s.Named)
	}
	var got []string
	for _, f := range s.Fields {
		got = append(got, f.Name+": "+f.Type.Text())
	}
	want := []string{"x: f64", "y: Optional<f64>", "tags: Map<String, Array<i32>>"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
	if arg, _ := s.Fields[1].Attr("rename").StringArg(0); arg != "why" {
		t.Errorf("rename arg = %q", arg)
	}
	if got := s.Fields[2].Type.Loc.String(); got != "pkg.taihe:6:8" {
		t.Errorf("type loc = %q", got)
	}
}

func TestParseEnum(t *testing.T) {
	pkg := mustParse(t, "enum Level: i8 { Low = -1, Mid, High = 0x10, }\nenum Name: String { A = \"a\" }")
	e := pkg.Decls[0].(*ast.Enum)
	if e.Base.Text() != "i8" || len(e.Items) != 3 {
		t.Fatalf("enum = %+v", e)
	}
	if e.Items[0].Value.Raw != "-1" || e.Items[1].Value != nil || e.Items[2].Value.Raw != "0x10" {
		t.Errorf("values = %v %v %v", e.Items[0].Value, e.Items[1].Value, e.Items[2].Value)
	}
	if v, err := e.Items[2].Value.Int(); err != nil || v != 16 {
		t.Errorf("Int() = %d %v", v, err)
	}
	if s, _ := pkg.Decls[1].(*ast.Enum).Items[0].Value.Str(); s != "a" {
		t.Errorf("string value = %q", s)
	}
}

func TestParseUnionIfaceFunc(t *testing.T) {
	pkg := mustParse(t, `
union Value { i: i32; s: String; empty; }
interface Reader: io.Closer, Base {
	read(n: u32): Array<u8>;
	close();
	onData(cb: (chunk: Array<u8>, last: bool) => void): void;
}
function open(path: String): Reader;
`)
	u := pkg.Decls[0].(*ast.Union)
	if len(u.Fields) != 3 || u.Fields[2].Type != nil {
		t.Fatalf("union fields = %+v", u.Fields)
	}
	i := pkg.Decls[1].(*ast.Iface)
	var parents []string
	for _, e := range i.Extends {
		parents = append(parents, e.Text())
	}
	if diff := cmp.Diff([]string{"io.Closer", "Base"}, parents); diff != "" {
		t.Error(diff)
	}
	if i.Methods[1].Return != nil || i.Methods[2].Return != nil {
		t.Error("void methods must have nil return")
	}
	if got := i.Methods[2].Params[0].Type.Text(); got != "(chunk: Array<u8>, last: bool) => void" {
		t.Errorf("callback = %q", got)
	}
	f := pkg.Decls[2].(*ast.Func)
	if f.Name != "open" || f.Return.Text() != "Reader" || f.Params[0].Name != "path" {
		t.Errorf("func = %+v", f)
	}
}

func TestParsePackageAttr(t *testing.T) {
	pkg := mustParse(t, "@!namespace(\"media\")\n@deprecated function f();")
	if len(pkg.Attrs) != 1 || pkg.Attrs[0].Name != "namespace" {
		t.Fatalf("package attrs = %+v", pkg.Attrs)
	}
	f := pkg.Decls[0].(*ast.Func)
	if len(f.Attrs) != 1 || f.Attrs[0].Name != "deprecated" {
		t.Fatalf("decl attrs = %+v", f.Attrs)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
		loc   string
		msg   string
	}{
		{"missing semicolon", "function f()", diag.UnexpectedTokenError, "pkg.taihe:1:13", "expected ';', found end of file"},
		{"bad top level", "let x = 1;", diag.UnexpectedTokenError, "pkg.taihe:1:1", "expected a declaration, found identifier 'let'"},
		{"lex error wins", "struct S { a: $; }", diag.UnexpectedCharError, "pkg.taihe:1:15", "unexpected character '$'"},
		{"unterminated comment", "struct S {}\n/* open", diag.UnterminatedError, "pkg.taihe:2:1", "unterminated block comment"},
		{"string minus", "@rename(-\"x\") struct S {}", diag.InvalidLiteralError, "pkg.taihe:1:10", "'-' before string literal"},
		{"unclosed generic", "struct S { a: Map<String, i32; }", diag.UnexpectedTokenError, "pkg.taihe:1:30", "expected '>', found ';'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.input)
			ce, ok := diag.AsCompileError(err)
			if !ok {
				t.Fatalf("error %v is not a CompileError", err)
			}
			if ce.Diag.Code() != tt.code {
				t.Errorf("code = %v, want %v", ce.Diag.Code(), tt.code)
			}
			if got := ce.Diag.Loc.String(); got != tt.loc {
				t.Errorf("loc = %q, want %q", got, tt.loc)
			}
			if !strings.Contains(ce.Diag.Message, tt.msg) {
				t.Errorf("message = %q, want %q", ce.Diag.Message, tt.msg)
			}
		})
	}
}
