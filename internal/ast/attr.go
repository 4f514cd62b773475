package ast

import (
	"strconv"
	"strings"

	"taihe/internal/source"
)

type LitKind uint8

const (
	LitInt LitKind = iota + 1
	LitFloat
	LitString
	LitBool
)

func (k LitKind) String() string {
	switch k {
	case LitInt:
		return "integer"
	case LitFloat:
		return "float"
	case LitString:
		return "string"
	case LitBool:
		return "bool"
	}
	return "literal"
}

// Lit is a literal as written, sign included. Values are decoded on demand.
type Lit struct {
	Kind LitKind
	Raw  string
	Loc  source.Loc
}

func (l *Lit) Int() (int64, error) {
	return strconv.ParseInt(l.Raw, 0, 64)
}

func (l *Lit) Float() (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(l.Raw, "_", ""), 64)
}

func (l *Lit) Str() (string, error) {
	return strconv.Unquote(l.Raw)
}

func (l *Lit) Bool() bool { return l.Raw == "true" }

// Attr is `@name` or `@name(args...)`.
type Attr struct {
	Name string
	Args []*Lit
	Loc  source.Loc
}

// StringArg returns the i-th argument if it is a string literal.
func (a *Attr) StringArg(i int) (string, bool) {
	if i >= len(a.Args) || a.Args[i].Kind != LitString {
		return "", false
	}
	s, err := a.Args[i].Str()
	return s, err == nil
}
