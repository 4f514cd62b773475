package lexer

import (
	"taihe/internal/diag"
	"taihe/internal/token"
)

// "..." с escape-последовательностями; их значение разбирает парсер через
// strconv.Unquote. Перевод строки внутри литерала — ошибка.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
		case '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				continue
			}
		case '\n':
			return lx.invalid(diag.UnterminatedError, lx.cursor.SpanFrom(start), "newline in string literal")
		}
		lx.cursor.Bump()
	}
	return lx.invalid(diag.UnterminatedError, lx.cursor.SpanFrom(start), "unterminated string literal")
}
