package parser

import (
	"taihe/internal/diag"
	"taihe/internal/source"
	"taihe/internal/token"
)

// advance — съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// eat съедает токен, если он нужного вида.
func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// expect — ожидаем конкретный токен, иначе ошибка разбора.
func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if p.at(k) {
		return p.advance(), nil
	}
	return token.Token{}, p.unexpected(k.String())
}

func (p *Parser) expectIdent(what string) (token.Token, error) {
	if p.at(token.Ident) {
		return p.advance(), nil
	}
	return token.Token{}, p.unexpected(what)
}

// unexpected строит ошибку для текущего токена. Ошибка лексера важнее:
// Invalid-токен — лишь её следствие.
func (p *Parser) unexpected(want string) error {
	if p.lexErr.Err != nil {
		return p.lexErr.Err
	}
	tok := p.lx.Peek()
	found := tok.Kind.String()
	if tok.Kind == token.Ident {
		found = "identifier '" + tok.Text + "'"
	}
	return diag.Errorf(diag.UnexpectedTokenError, p.loc(p.diagSpan(tok)), "expected %s, found %s", want, found)
}

// diagSpan — для EOF указываем сразу за последним съеденным токеном.
func (p *Parser) diagSpan(tok token.Token) source.Span {
	if tok.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return tok.Span
}

func (p *Parser) loc(sp source.Span) source.Loc {
	return p.fs.Loc(sp)
}

// spanFrom покрывает всё от start до последнего съеденного токена.
func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.lastSpan)
}
