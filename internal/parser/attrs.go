package parser

import (
	"taihe/internal/ast"
	"taihe/internal/diag"
	"taihe/internal/source"
	"taihe/internal/token"
)

// parseAttrs разбирает ноль или больше `@name` / `@name(args)`.
func (p *Parser) parseAttrs() ([]*ast.Attr, error) {
	var attrs []*ast.Attr
	for p.at(token.At) {
		attr, err := p.parseAttrRest(p.advance().Span)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

// parseAttrRest разбирает имя и аргументы; '@' (и '!') уже съедены.
func (p *Parser) parseAttrRest(start source.Span) (*ast.Attr, error) {
	name, err := p.expectIdent("attribute name")
	if err != nil {
		return nil, err
	}
	attr := &ast.Attr{Name: name.Text}
	if p.eat(token.LParen) {
		for !p.at(token.RParen) {
			lit, err := p.parseLit()
			if err != nil {
				return nil, err
			}
			attr.Args = append(attr.Args, lit)
			if !p.eat(token.Comma) {
				break
			}
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
	}
	attr.Loc = p.loc(p.spanFrom(start))
	return attr, nil
}

// parseLit: число (со знаком), строка, true/false.
func (p *Parser) parseLit() (*ast.Lit, error) {
	start := p.lx.Peek().Span
	neg := p.eat(token.Minus)
	tok := p.lx.Peek()
	var kind ast.LitKind
	switch tok.Kind {
	case token.IntLit:
		kind = ast.LitInt
	case token.FloatLit:
		kind = ast.LitFloat
	case token.StringLit:
		kind = ast.LitString
	case token.KwTrue, token.KwFalse:
		kind = ast.LitBool
	default:
		return nil, p.unexpected("a literal")
	}
	if neg && (kind == ast.LitString || kind == ast.LitBool) {
		return nil, diag.Errorf(diag.InvalidLiteralError, p.loc(tok.Span), "'-' before %s literal", kind)
	}
	p.advance()
	raw := tok.Text
	if neg {
		raw = "-" + raw
	}
	lit := &ast.Lit{Kind: kind, Raw: raw, Loc: p.loc(p.spanFrom(start))}
	if kind == ast.LitString {
		if _, err := lit.Str(); err != nil {
			return nil, diag.Errorf(diag.InvalidLiteralError, lit.Loc, "invalid string literal: %v", err)
		}
	}
	return lit, nil
}
