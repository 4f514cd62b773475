package format

import (
	"strings"

	"taihe/internal/ast"
)

type printer struct {
	w   *Writer
	opt Options
}

// PrintPackage renders pkg as IDL text.
func PrintPackage(pkg *ast.Package, opt Options) []byte {
	opt = opt.withDefaults()
	p := &printer{w: NewWriter(opt), opt: opt}
	p.printPackage(pkg)
	return p.w.Bytes()
}

// PrintDecl renders a single declaration.
func PrintDecl(d ast.Decl, opt Options) string {
	opt = opt.withDefaults()
	p := &printer{w: NewWriter(opt), opt: opt}
	p.printDecl(d)
	return p.w.String()
}

func (p *printer) printPackage(pkg *ast.Package) {
	for _, a := range pkg.Attrs {
		p.w.Line("@!%s", strings.TrimPrefix(attrText(a), "@"))
	}
	if len(pkg.Attrs) > 0 {
		p.w.Blank()
	}
	for _, u := range pkg.Uses {
		if u.Alias != "" {
			p.w.Line("use %s as %s;", strings.Join(u.Path, "."), u.Alias)
		} else {
			p.w.Line("use %s;", strings.Join(u.Path, "."))
		}
	}
	for _, d := range pkg.Decls {
		p.w.Blank()
		p.printDecl(d)
	}
}

func (p *printer) printDecl(d ast.Decl) {
	h := d.Header()
	for _, a := range h.Attrs {
		p.w.Line("%s", attrText(a))
	}
	switch d := d.(type) {
	case *ast.Struct:
		p.w.Block("struct "+d.Name, "", func() {
			for _, f := range d.Fields {
				p.w.Line("%s%s: %s;", attrPrefix(f.Attrs), f.Name, TypeText(f.Type, p.opt))
			}
		})
	case *ast.Enum:
		head := "enum " + d.Name
		if d.Base != nil {
			head += ": " + TypeText(d.Base, p.opt)
		}
		p.w.Block(head, "", func() {
			for _, it := range d.Items {
				if it.Value != nil {
					p.w.Line("%s%s = %s,", attrPrefix(it.Attrs), it.Name, it.Value.Raw)
				} else {
					p.w.Line("%s%s,", attrPrefix(it.Attrs), it.Name)
				}
			}
		})
	case *ast.Union:
		p.w.Block("union "+d.Name, "", func() {
			for _, f := range d.Fields {
				if f.Type != nil {
					p.w.Line("%s%s: %s;", attrPrefix(f.Attrs), f.Name, TypeText(f.Type, p.opt))
				} else {
					p.w.Line("%s%s;", attrPrefix(f.Attrs), f.Name)
				}
			}
		})
	case *ast.Iface:
		head := "interface " + d.Name
		if len(d.Extends) > 0 {
			parents := make([]string, len(d.Extends))
			for i, e := range d.Extends {
				parents[i] = TypeText(e, p.opt)
			}
			head += ": " + strings.Join(parents, ", ")
		}
		p.w.Block(head, "", func() {
			for _, m := range d.Methods {
				p.w.Line("%s%s%s%s;", attrPrefix(m.Attrs), m.Name, p.params(m.Params), p.returns(m.Return))
			}
		})
	case *ast.Func:
		p.w.Line("function %s%s%s;", d.Name, p.params(d.Params), p.returns(d.Return))
	}
}
