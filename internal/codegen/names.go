package codegen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"taihe/internal/ast"
	"taihe/internal/mangle"
)

// pkgSegments splits a dotted package name into mangler segments.
func pkgSegments(pkg *ast.Package) []string {
	return strings.Split(pkg.Name, ".")
}

// symbol mangles the path pkg.decl[.member...] with the given kind.
func symbol(kind mangle.Kind, d ast.Decl, members ...string) string {
	h := d.Header()
	segs := append(pkgSegments(h.Pkg), h.Name)
	segs = append(segs, members...)
	return mangle.MustEncode(kind, segs...)
}

// pkgSymbol mangles a package-level path, e.g. the ANI constructor.
func pkgSymbol(kind mangle.Kind, pkg *ast.Package, names ...string) string {
	return mangle.MustEncode(kind, append(pkgSegments(pkg), names...)...)
}

// guard is the include guard of a generated header.
func guard(pkg *ast.Package, suffix string) string {
	var b strings.Builder
	for _, r := range pkg.Name + "_" + suffix {
		switch {
		case r == '.' || r == '-':
			b.WriteByte('_')
		case r < utf8.RuneSelf:
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// camel converts snake_case to lowerCamelCase: "get_user_name" -> "getUserName".
func camel(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	first := true
	for _, p := range parts {
		if p == "" {
			continue
		}
		if first {
			r, size := utf8.DecodeRuneInString(p)
			b.WriteRune(unicode.ToLower(r))
			b.WriteString(p[size:])
			first = false
			continue
		}
		r, size := utf8.DecodeRuneInString(p)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(p[size:])
	}
	if b.Len() == 0 {
		return name
	}
	return b.String()
}

// pascal converts snake_case to UpperCamelCase.
func pascal(name string) string {
	c := camel(name)
	r, size := utf8.DecodeRuneInString(c)
	return string(unicode.ToUpper(r)) + c[size:]
}

// userName is the name a member or function gets in user-facing bindings.
// @rename wins, then @keep_name; otherwise snake_case becomes camelCase.
func userName(n *ast.Named) string {
	if n.Rename != "" {
		return n.Rename
	}
	if n.KeepName {
		return n.Name
	}
	return camel(n.Name)
}

// cppNamespace is "::a::b" for package "a.b".
func cppNamespace(pkg *ast.Package) string {
	if ns := namespaceAttr(pkg); ns != "" {
		return "::" + strings.ReplaceAll(ns, ".", "::")
	}
	return "::" + strings.Join(pkgSegments(pkg), "::")
}

// namespaceAttr returns the @!namespace("x") override of pkg, if any.
func namespaceAttr(pkg *ast.Package) string {
	for _, a := range pkg.Attrs {
		if a.Name == "namespace" {
			if s, ok := a.StringArg(0); ok {
				return s
			}
		}
	}
	return ""
}
