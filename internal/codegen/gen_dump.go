package codegen

import (
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"taihe/internal/ast"
	"taihe/internal/format"
	"taihe/internal/mangle"
)

// dumpGen writes the resolved IDL of every package and a msgpack snapshot
// of the whole graph, for debugging generators.
type dumpGen struct{}

func (dumpGen) Name() string { return "dump" }

func (dumpGen) Generate(g *ast.Graph, out *Output) error {
	err := forEachPackage(g, func(pkg *ast.Package) error {
		text := format.PrintPackage(pkg, format.Options{ShowResolved: true})
		return out.Put("dump", "dump/"+pkg.Name+".taihe", text)
	})
	if err != nil {
		return err
	}
	data, err := EncodeSnapshot(TakeSnapshot(g))
	if err != nil {
		return err
	}
	return out.Put("dump", "dump/graph.msgpack", data)
}

// Snapshot is the serialised form of a validated graph.
type Snapshot struct {
	Packages []PackageSnap `msgpack:"packages"`
}

type PackageSnap struct {
	Name  string     `msgpack:"name"`
	Uses  []string   `msgpack:"uses,omitempty"`
	Decls []DeclSnap `msgpack:"decls"`
}

type DeclSnap struct {
	ID       uint32       `msgpack:"id"`
	Kind     string       `msgpack:"kind"`
	Name     string       `msgpack:"name"`
	Symbol   string       `msgpack:"symbol"`
	Export   string       `msgpack:"export"`
	KeepName bool         `msgpack:"keep_name,omitempty"`
	Members  []MemberSnap `msgpack:"members,omitempty"`
}

type MemberSnap struct {
	Name string `msgpack:"name"`
	Type string `msgpack:"type,omitempty"`
}

// TakeSnapshot records the graph in package and declaration order.
func TakeSnapshot(g *ast.Graph) Snapshot {
	var snap Snapshot
	for _, pkg := range g.Packages() {
		ps := PackageSnap{Name: pkg.Name, Decls: []DeclSnap{}}
		for _, u := range pkg.Uses {
			use := strings.Join(u.Path, ".")
			if u.Alias != "" {
				use += " as " + u.Alias
			}
			ps.Uses = append(ps.Uses, use)
		}
		for _, d := range pkg.Decls {
			ps.Decls = append(ps.Decls, snapDecl(d))
		}
		snap.Packages = append(snap.Packages, ps)
	}
	return snap
}

func snapDecl(d ast.Decl) DeclSnap {
	h := d.Header()
	kind := mangle.KindType
	if d.Kind() == ast.DeclFunc {
		kind = mangle.KindFunc
	}
	ds := DeclSnap{
		ID:       uint32(h.ID),
		Kind:     d.Kind().String(),
		Name:     h.QualifiedName(),
		Symbol:   symbol(kind, d),
		Export:   h.ExportName(),
		KeepName: h.KeepName,
	}
	typeText := func(ref *ast.TypeRef) string {
		if ref == nil {
			return ""
		}
		return format.TypeText(ref, format.Options{ShowResolved: true})
	}
	switch d := d.(type) {
	case *ast.Struct:
		for _, f := range d.Fields {
			ds.Members = append(ds.Members, MemberSnap{Name: f.Name, Type: typeText(f.Type)})
		}
	case *ast.Enum:
		for _, it := range d.Items {
			ds.Members = append(ds.Members, MemberSnap{Name: it.Name})
		}
	case *ast.Union:
		for _, f := range d.Fields {
			ds.Members = append(ds.Members, MemberSnap{Name: f.Name, Type: typeText(f.Type)})
		}
	case *ast.Iface:
		for _, m := range d.Methods {
			ds.Members = append(ds.Members, MemberSnap{Name: m.Name, Type: typeText(m.Return)})
		}
	case *ast.Func:
		for _, p := range d.Params {
			ds.Members = append(ds.Members, MemberSnap{Name: p.Name, Type: typeText(p.Type)})
		}
	}
	return ds
}

// EncodeSnapshot serialises snap with msgpack.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return nil, fmt.Errorf("encode graph snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot is the inverse of EncodeSnapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode graph snapshot: %w", err)
	}
	return snap, nil
}
