package ast

import (
	"testing"

	"taihe/internal/source"
	"taihe/internal/types"
)

func nameRef(parts ...string) *TypeRef {
	return NewTypeRef(&NameExpr{Parts: parts}, source.Loc{})
}

func TestTypeRefText(t *testing.T) {
	cb := NewTypeRef(&CallbackExpr{
		Params: []*Param{{Named: Named{Name: "x"}, Type: nameRef("i32")}, {Named: Named{Name: "y"}, Type: nameRef("a", "B")}},
		Return: nil,
	}, source.Loc{})
	m := NewTypeRef(&GenericExpr{Name: "Map", Args: []*TypeRef{nameRef("String"), cb}}, source.Loc{})

	want := "Map<String, (x: i32, y: a.B) => void>"
	if got := m.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	var void *TypeRef
	if void.Text() != "void" {
		t.Error("nil ref is void")
	}
}

func TestTypeRefLifecycle(t *testing.T) {
	r := nameRef("i32")
	if r.IsResolved() || r.IsInvalid() {
		t.Fatal("fresh ref must be pending")
	}
	if _, ok := r.Resolved(); ok {
		t.Fatal("pending ref has no type")
	}
	r.Resolve(types.I32)
	got, ok := r.Resolved()
	if !ok || !types.Equal(got, types.I32) {
		t.Fatalf("Resolved() = %v %v", got, ok)
	}
	r.Invalidate()
	if !r.IsResolved() {
		t.Fatal("Invalidate must not undo a resolution")
	}

	bad := nameRef("Nope")
	bad.Invalidate()
	if bad.IsResolved() || !bad.IsInvalid() {
		t.Fatal("invalidated ref state")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("second Resolve must panic")
		}
	}()
	r.Resolve(types.I64)
}
