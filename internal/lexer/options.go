package lexer

import (
	"taihe/internal/diag"
	"taihe/internal/source"
)

// Reporter — тонкий интерфейс: лексер только сообщает код, span и текст.
// Превращать span в Loc и решать, прерывать ли разбор, — дело вызывающего.
type Reporter interface {
	Report(code diag.Code, span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // может быть nil — тогда ошибки игнорируем (но продолжаем лексить)
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sp, msg)
	}
}
