package token

import (
	"taihe/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwUse && t.Kind <= KwFalse
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsDeclStart reports whether the token opens a top-level declaration.
func (t Token) IsDeclStart() bool {
	switch t.Kind {
	case KwUse, KwStruct, KwEnum, KwUnion, KwInterface, KwFunction, At:
		return true
	default:
		return false
	}
}
