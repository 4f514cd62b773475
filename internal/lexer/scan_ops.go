package lexer

import (
	"strconv"

	"taihe/internal/diag"
	"taihe/internal/token"
)

var punct = [256]token.Kind{
	'{': token.LBrace,
	'}': token.RBrace,
	'(': token.LParen,
	')': token.RParen,
	'<': token.Lt,
	'>': token.Gt,
	',': token.Comma,
	';': token.Semicolon,
	':': token.Colon,
	'.': token.Dot,
	'@': token.At,
	'!': token.Bang,
	'=': token.Assign,
	'-': token.Minus,
}

func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()
	if b == '=' && lx.cursor.Eat('>') {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.FatArrow, Span: sp, Text: "=>"}
	}
	sp := lx.cursor.SpanFrom(start)
	if k := punct[b]; k != token.Invalid {
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}
	return lx.invalid(diag.UnexpectedCharError, sp, "unexpected character "+quoteRune(rune(b)))
}

func quoteRune(r rune) string {
	return strconv.QuoteRune(r)
}
