package lexer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"taihe/internal/diag"
	"taihe/internal/lexer"
	"taihe/internal/source"
	"taihe/internal/token"
)

// testReporter собирает все сообщения лексера
type testReporter struct {
	codes []diag.Code
	msgs  []string
}

func (r *testReporter) Report(code diag.Code, _ source.Span, msg string) {
	r.codes = append(r.codes, code)
	r.msgs = append(r.msgs, msg)
}

func lex(t *testing.T, input string) ([]token.Token, *testReporter) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.taihe", []byte(input))
	rep := &testReporter{}
	return lexer.New(fs.Get(id), lexer.Options{Reporter: rep}).All(), rep
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func texts(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out
}

func TestDeclarationTokens(t *testing.T) {
	toks, rep := lex(t, "@rename(\"x\")\nfunction f(cb: (a: i32) => bool): Map<String, f64>;")
	if len(rep.msgs) != 0 {
		t.Fatalf("unexpected errors: %v", rep.msgs)
	}
	want := []token.Kind{
		token.At, token.Ident, token.LParen, token.StringLit, token.RParen,
		token.KwFunction, token.Ident, token.LParen, token.Ident, token.Colon,
		token.LParen, token.Ident, token.Colon, token.Ident, token.RParen, token.FatArrow, token.Ident,
		token.RParen, token.Colon, token.Ident, token.Lt, token.Ident, token.Comma, token.Ident, token.Gt,
		token.Semicolon, token.EOF,
	}
	if diff := cmp.Diff(want, kinds(toks)); diff != "" {
		t.Fatalf("kinds (-want +got):\n%s", diff)
	}
}

func TestCommentsSkipped(t *testing.T) {
	toks, rep := lex(t, "// line\nuse /* block\n spanning */ a.b; // tail")
	if len(rep.msgs) != 0 {
		t.Fatalf("unexpected errors: %v", rep.msgs)
	}
	if diff := cmp.Diff([]string{"use", "a", ".", "b", ";", ""}, texts(toks)); diff != "" {
		t.Fatal(diff)
	}
}

func TestNumbers(t *testing.T) {
	toks, rep := lex(t, "0 42 1_000 0x1F 0b101 0o17 1.5 2e10 3.0E-2")
	if len(rep.msgs) != 0 {
		t.Fatalf("unexpected errors: %v", rep.msgs)
	}
	want := []token.Kind{
		token.IntLit, token.IntLit, token.IntLit, token.IntLit, token.IntLit, token.IntLit,
		token.FloatLit, token.FloatLit, token.FloatLit, token.EOF,
	}
	if diff := cmp.Diff(want, kinds(toks)); diff != "" {
		t.Fatal(diff)
	}
}

func TestSpansMatchText(t *testing.T) {
	input := "enum Color: i32 { Red = -1 }"
	toks, _ := lex(t, input)
	for _, tok := range toks {
		if got := input[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Errorf("span %v covers %q, text is %q", tok.Span, got, tok.Text)
		}
	}
}

func TestUnicodeIdent(t *testing.T) {
	toks, rep := lex(t, "struct Привет_мир {}")
	if len(rep.msgs) != 0 {
		t.Fatalf("unexpected errors: %v", rep.msgs)
	}
	if toks[1].Kind != token.Ident || toks[1].Text != "Привет_мир" {
		t.Fatalf("got %v %q", toks[1].Kind, toks[1].Text)
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"struct $", diag.UnexpectedCharError},
		{"\"abc", diag.UnterminatedError},
		{"\"abc\ndef\"", diag.UnterminatedError},
		{"/* never closed", diag.UnterminatedError},
		{"12abc", diag.InvalidLiteralError},
		{"0x", diag.InvalidLiteralError},
		{"1e+", diag.InvalidLiteralError},
		{"a → b", diag.UnexpectedCharError},
	}
	for _, tt := range tests {
		_, rep := lex(t, tt.input)
		if len(rep.codes) == 0 {
			t.Errorf("%q: no error reported", tt.input)
			continue
		}
		if rep.codes[0] != tt.code {
			t.Errorf("%q: code %v, want %v", tt.input, rep.codes[0], tt.code)
		}
	}
}

func TestFirstErrorAdapter(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("bad.taihe", []byte("struct $ #"))
	first := &lexer.FirstError{Files: fs}
	lexer.New(fs.Get(id), lexer.Options{Reporter: first}).All()
	if first.Err == nil {
		t.Fatal("no error recorded")
	}
	if got := first.Err.Diag.Loc.String(); got != "bad.taihe:1:8" {
		t.Errorf("loc = %q", got)
	}
	if first.Err.Diag.Code() != diag.UnexpectedCharError {
		t.Errorf("code = %v", first.Err.Diag.Code())
	}
}
