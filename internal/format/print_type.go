package format

import (
	"strings"

	"taihe/internal/ast"
)

// ErrorTypeMarker follows the text of a reference that did not resolve.
const ErrorTypeMarker = "/* <error type> */"

// TypeText renders ref for printing. Unresolved references keep their
// written text and get the error marker, so printing never depends on
// VALIDATE having succeeded.
func TypeText(ref *ast.TypeRef, opt Options) string {
	if ref == nil {
		return "void"
	}
	t, ok := ref.Resolved()
	if !ok {
		return ref.Text() + " " + ErrorTypeMarker
	}
	if opt.ShowResolved {
		return t.Repr()
	}
	return ref.Text()
}

func attrText(a *ast.Attr) string {
	if len(a.Args) == 0 {
		return "@" + a.Name
	}
	args := make([]string, len(a.Args))
	for i, l := range a.Args {
		args[i] = l.Raw
	}
	return "@" + a.Name + "(" + strings.Join(args, ", ") + ")"
}

func attrPrefix(attrs []*ast.Attr) string {
	var b strings.Builder
	for _, a := range attrs {
		b.WriteString(attrText(a))
		b.WriteByte(' ')
	}
	return b.String()
}

func (p *printer) params(ps []*ast.Param) string {
	parts := make([]string, len(ps))
	for i, par := range ps {
		parts[i] = attrPrefix(par.Attrs) + par.Name + ": " + TypeText(par.Type, p.opt)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (p *printer) returns(ref *ast.TypeRef) string {
	if ref == nil {
		return ""
	}
	return ": " + TypeText(ref, p.opt)
}
