package parser

import (
	"taihe/internal/ast"
	"taihe/internal/token"
)

// parseType:
//
//	Type     = Callback | Name { "." Name } [ "<" Type { "," Type } ">" ]
//	Callback = "(" Params ")" "=>" ( Type | "void" )
func (p *Parser) parseType() (*ast.TypeRef, error) {
	start := p.lx.Peek().Span
	if p.at(token.LParen) {
		params, err := p.parseParams()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.FatArrow); err != nil {
			return nil, err
		}
		ret, err := p.parseReturnType()
		if err != nil {
			return nil, err
		}
		expr := &ast.CallbackExpr{Params: params, Return: ret}
		return ast.NewTypeRef(expr, p.loc(p.spanFrom(start))), nil
	}

	parts, err := p.parseDotted("type name")
	if err != nil {
		return nil, err
	}
	if len(parts) > 1 || !p.at(token.Lt) {
		return ast.NewTypeRef(&ast.NameExpr{Parts: parts}, p.loc(p.spanFrom(start))), nil
	}

	p.advance() // '<'
	expr := &ast.GenericExpr{Name: parts[0]}
	for {
		arg, err := p.parseType()
		if err != nil {
			return nil, err
		}
		expr.Args = append(expr.Args, arg)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.Gt); err != nil {
		return nil, err
	}
	return ast.NewTypeRef(expr, p.loc(p.spanFrom(start))), nil
}

// parseReturnType понимает `void` как отсутствие результата.
func (p *Parser) parseReturnType() (*ast.TypeRef, error) {
	if tok := p.lx.Peek(); tok.Kind == token.Ident && tok.Text == "void" {
		p.advance()
		return nil, nil
	}
	return p.parseType()
}
