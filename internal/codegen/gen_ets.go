package codegen

import (
	"strconv"
	"strings"

	"taihe/internal/ast"
	"taihe/internal/format"
	"taihe/internal/types"
)

// etsGen writes the user-facing bindings <pkg>.ets.
type etsGen struct{}

func (etsGen) Name() string { return "ets" }

func (etsGen) Generate(g *ast.Graph, out *Output) error {
	return forEachPackage(g, func(pkg *ast.Package) error {
		w := format.NewWriter(format.Options{})
		e := etsEmitter{w: w, g: g, ts: etsType{g: g, from: pkg}}
		e.pkg(pkg)
		return out.Put("ets", "ets/"+pkg.Name+".ets", w.Bytes())
	})
}

type etsEmitter struct {
	w  *format.Writer
	g  *ast.Graph
	ts etsType
}

func (e etsEmitter) pkg(pkg *ast.Package) {
	e.w.Line("// generated from %s.taihe; do not edit", pkg.Name)
	for _, dep := range deps(e.g, pkg) {
		e.w.Line("import * as %s from \"./%s\";", etsImportAlias(dep), dep.Name)
	}
	e.w.Blank()
	e.w.Line("loadLibrary(%s);", strconv.Quote(pkg.Name))

	body := func() {
		statics := map[string][]*ast.Func{}
		var classes []string
		for _, d := range pkg.Decls {
			if f, ok := d.(*ast.Func); ok {
				if cls := staticClass(f); cls != "" {
					if _, seen := statics[cls]; !seen {
						classes = append(classes, cls)
					}
					statics[cls] = append(statics[cls], f)
					continue
				}
			}
			e.w.Blank()
			e.decl(d)
		}
		for _, cls := range classes {
			e.w.Blank()
			e.w.Block("export class "+cls, "", func() {
				for _, f := range statics[cls] {
					if f.Attr("ctor") != nil {
						e.w.Line("// constructor")
					}
					e.w.Line("static native %s%s: %s;", userName(&f.Named), e.params(f.Params), e.ts.of(resolved(f.Return)))
				}
			})
		}
	}

	if ns := namespaceAttr(pkg); ns != "" {
		e.w.Blank()
		e.w.Block("export namespace "+ns, "", body)
		return
	}
	body()
}

// staticClass is the class named by @static or @ctor, if any.
func staticClass(f *ast.Func) string {
	for _, name := range []string{"static", "ctor"} {
		if a := f.Attr(name); a != nil {
			if cls, ok := a.StringArg(0); ok {
				return cls
			}
		}
	}
	return ""
}

func (e etsEmitter) params(ps []*ast.Param) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = userName(&p.Named) + ": " + e.ts.of(resolved(p.Type))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (e etsEmitter) deprecated(n *ast.Named) {
	a := n.Attr("deprecated")
	if a == nil {
		return
	}
	if msg, ok := a.StringArg(0); ok {
		e.w.Line("/** @deprecated %s */", msg)
		return
	}
	e.w.Line("/** @deprecated */")
}

func (e etsEmitter) decl(d ast.Decl) {
	h := d.Header()
	e.deprecated(&h.Named)
	switch d := d.(type) {
	case *ast.Struct:
		e.w.Block("export interface "+d.ExportName(), "", func() {
			for _, f := range d.Fields {
				e.w.Line("%s: %s;", userName(&f.Named), e.ts.of(resolved(f.Type)))
			}
		})
	case *ast.Enum:
		head := "export enum " + d.ExportName()
		if d.Attr("const") != nil {
			head = "export const enum " + d.ExportName()
		}
		_, isStr := enumBase(d).(types.String)
		e.w.Block(head, "", func() {
			for _, it := range d.Items {
				if isStr {
					e.w.Line("%s = %s,", it.ExportName(), strconv.Quote(it.Str))
				} else {
					e.w.Line("%s = %d,", it.ExportName(), it.Int)
				}
			}
		})
	case *ast.Union:
		alts := make([]string, 0, len(d.Fields))
		seen := map[string]bool{}
		for _, f := range d.Fields {
			alt := "undefined"
			if f.Type != nil {
				alt = e.ts.of(resolved(f.Type))
			}
			if !seen[alt] {
				seen[alt] = true
				alts = append(alts, alt)
			}
		}
		e.w.Line("export type %s = %s;", d.ExportName(), strings.Join(alts, " | "))
	case *ast.Iface:
		e.iface(d)
	case *ast.Func:
		e.w.Line("export native function %s%s: %s;", userName(&d.Named), e.params(d.Params), e.ts.of(resolved(d.Return)))
	}
}

func (e etsEmitter) iface(d *ast.Iface) {
	supers := make([]string, 0, len(d.Extends))
	for _, ref := range d.Extends {
		supers = append(supers, e.ts.of(resolved(ref)))
	}
	class := d.Attr("class") != nil
	head := "export interface " + d.ExportName()
	prefix := ""
	if class {
		head = "export class " + d.ExportName()
		prefix = "native "
		if len(supers) > 0 {
			head += " implements " + strings.Join(supers, ", ")
		}
	} else if len(supers) > 0 {
		head += " extends " + strings.Join(supers, ", ")
	}

	e.w.Block(head, "", func() {
		for _, m := range d.Methods {
			e.deprecated(&m.Named)
			ret := e.ts.of(resolved(m.Return))
			switch {
			case m.Attr("get") != nil:
				e.w.Line("%sget %s(): %s;", prefix, accessorName(m, "get"), ret)
			case m.Attr("set") != nil:
				e.w.Line("%sset %s%s;", prefix, accessorName(m, "set"), e.params(m.Params))
			default:
				e.w.Line("%s%s%s: %s;", prefix, userName(&m.Named), e.params(m.Params), ret)
			}
		}
	})
}

// accessorName is the property behind a @get/@set method: the attribute's
// argument, or the method name without its get_/set_ prefix.
func accessorName(m *ast.Method, attr string) string {
	if name, ok := m.Attr(attr).StringArg(0); ok {
		return name
	}
	base := strings.TrimPrefix(m.Name, attr+"_")
	if m.KeepName {
		return base
	}
	return camel(base)
}
