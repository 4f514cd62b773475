package parser

import (
	"taihe/internal/ast"
	"taihe/internal/token"
)

// use a.b.c;  |  use a.b.c as d;
func (p *Parser) parseUse() (*ast.Use, error) {
	start := p.advance().Span // 'use'
	path, err := p.parseDotted("package name")
	if err != nil {
		return nil, err
	}
	use := &ast.Use{Path: path}
	if p.eat(token.KwAs) {
		alias, err := p.expectIdent("alias name")
		if err != nil {
			return nil, err
		}
		use.Alias = alias.Text
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	use.Loc = p.loc(p.spanFrom(start))
	return use, nil
}

func (p *Parser) parseDotted(what string) ([]string, error) {
	first, err := p.expectIdent(what)
	if err != nil {
		return nil, err
	}
	parts := []string{first.Text}
	for p.eat(token.Dot) {
		next, err := p.expectIdent(what)
		if err != nil {
			return nil, err
		}
		parts = append(parts, next.Text)
	}
	return parts, nil
}
