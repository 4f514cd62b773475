package ast

import (
	"strings"

	"taihe/internal/source"
	"taihe/internal/types"
)

// TypeExpr is the unresolved, textual form of a type reference.
type TypeExpr interface {
	text() string
}

// NameExpr is a possibly qualified name: `i32`, `Color`, `ohos.media.Player`.
type NameExpr struct {
	Parts []string
}

// GenericExpr is `Name<Arg, ...>`.
type GenericExpr struct {
	Name string
	Args []*TypeRef
}

// CallbackExpr is `(x: T, ...) => R`; Return is nil for void.
type CallbackExpr struct {
	Params []*Param
	Return *TypeRef
}

func (e *NameExpr) text() string { return strings.Join(e.Parts, ".") }

func (e *GenericExpr) text() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.Text()
	}
	return e.Name + "<" + strings.Join(args, ", ") + ">"
}

func (e *CallbackExpr) text() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range e.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(p.Type.Text())
	}
	b.WriteString(") => ")
	if e.Return == nil {
		b.WriteString("void")
	} else {
		b.WriteString(e.Return.Text())
	}
	return b.String()
}

type refState uint8

const (
	refPending refState = iota
	refResolved
	refInvalid
)

// TypeRef holds the written form of a type until VALIDATE resolves it.
// Consumers must check IsResolved: on error paths the cell stays unresolved.
type TypeRef struct {
	Expr TypeExpr
	Loc  source.Loc

	state    refState
	resolved types.Type
}

func NewTypeRef(expr TypeExpr, loc source.Loc) *TypeRef {
	return &TypeRef{Expr: expr, Loc: loc}
}

// Text is the reference as written (normalised spacing).
func (r *TypeRef) Text() string {
	if r == nil || r.Expr == nil {
		return "void"
	}
	return r.Expr.text()
}

func (r *TypeRef) IsResolved() bool { return r.state == refResolved }

// IsInvalid reports that resolution was attempted and failed.
func (r *TypeRef) IsInvalid() bool { return r.state == refInvalid }

// Resolved returns the type if resolution succeeded.
func (r *TypeRef) Resolved() (types.Type, bool) {
	if r.state != refResolved {
		return nil, false
	}
	return r.resolved, true
}

// Resolve stores the result. A cell resolves at most once.
func (r *TypeRef) Resolve(t types.Type) {
	if r.state != refPending {
		panic("ast: TypeRef " + r.Text() + " resolved twice")
	}
	if t == nil {
		panic("ast: TypeRef resolved to nil")
	}
	r.state, r.resolved = refResolved, t
}

// Invalidate marks a failed resolution; the diagnostic is the caller's job.
func (r *TypeRef) Invalidate() {
	if r.state == refPending {
		r.state = refInvalid
	}
}
