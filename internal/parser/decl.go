package parser

import (
	"taihe/internal/ast"
	"taihe/internal/token"
)

// header съедает ключевое слово и имя декларации.
func (p *Parser) header(attrs []*ast.Attr) (ast.DeclHeader, error) {
	p.advance() // keyword
	name, err := p.expectIdent("declaration name")
	if err != nil {
		return ast.DeclHeader{}, err
	}
	return ast.DeclHeader{Named: ast.Named{Name: name.Text, Loc: p.loc(name.Span), Attrs: attrs}}, nil
}

// member разбирает атрибуты и имя члена.
func (p *Parser) member(what string) (ast.Named, error) {
	attrs, err := p.parseAttrs()
	if err != nil {
		return ast.Named{}, err
	}
	name, err := p.expectIdent(what)
	if err != nil {
		return ast.Named{}, err
	}
	return ast.Named{Name: name.Text, Loc: p.loc(name.Span), Attrs: attrs}, nil
}

// struct Name { field: Type; ... }
func (p *Parser) parseStruct(attrs []*ast.Attr) (ast.Decl, error) {
	h, err := p.header(attrs)
	if err != nil {
		return nil, err
	}
	d := &ast.Struct{DeclHeader: h}
	err = p.block(func() error {
		named, err := p.member("field name")
		if err != nil {
			return err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return err
		}
		ty, err := p.parseType()
		if err != nil {
			return err
		}
		d.Fields = append(d.Fields, &ast.Field{Named: named, Type: ty})
		_, err = p.expect(token.Semicolon)
		return err
	})
	return d, err
}

// enum Name [: Base] { A [= lit], ... }
func (p *Parser) parseEnum(attrs []*ast.Attr) (ast.Decl, error) {
	h, err := p.header(attrs)
	if err != nil {
		return nil, err
	}
	d := &ast.Enum{DeclHeader: h}
	if p.eat(token.Colon) {
		if d.Base, err = p.parseType(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}
	for !p.at(token.RBrace) {
		named, err := p.member("enum item name")
		if err != nil {
			return nil, err
		}
		item := &ast.EnumItem{Named: named}
		if p.eat(token.Assign) {
			if item.Value, err = p.parseLit(); err != nil {
				return nil, err
			}
		}
		d.Items = append(d.Items, item)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return d, nil
}

// union Name { tag: Type; bare; }
func (p *Parser) parseUnion(attrs []*ast.Attr) (ast.Decl, error) {
	h, err := p.header(attrs)
	if err != nil {
		return nil, err
	}
	d := &ast.Union{DeclHeader: h}
	err = p.block(func() error {
		named, err := p.member("union field name")
		if err != nil {
			return err
		}
		f := &ast.UnionField{Named: named}
		if p.eat(token.Colon) {
			if f.Type, err = p.parseType(); err != nil {
				return err
			}
		}
		d.Fields = append(d.Fields, f)
		_, err = p.expect(token.Semicolon)
		return err
	})
	return d, err
}

// interface Name [: Parent, ...] { method(params) [: Ret]; }
func (p *Parser) parseIface(attrs []*ast.Attr) (ast.Decl, error) {
	h, err := p.header(attrs)
	if err != nil {
		return nil, err
	}
	d := &ast.Iface{DeclHeader: h}
	if p.eat(token.Colon) {
		for {
			parent, err := p.parseType()
			if err != nil {
				return nil, err
			}
			d.Extends = append(d.Extends, parent)
			if !p.eat(token.Comma) {
				break
			}
		}
	}
	err = p.block(func() error {
		named, err := p.member("method name")
		if err != nil {
			return err
		}
		m := &ast.Method{Named: named}
		if m.Params, m.Return, err = p.parseSignature(); err != nil {
			return err
		}
		d.Methods = append(d.Methods, m)
		_, err = p.expect(token.Semicolon)
		return err
	})
	return d, err
}

// function name(params) [: Ret];
func (p *Parser) parseFunc(attrs []*ast.Attr) (ast.Decl, error) {
	h, err := p.header(attrs)
	if err != nil {
		return nil, err
	}
	d := &ast.Func{DeclHeader: h}
	if d.Params, d.Return, err = p.parseSignature(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return d, nil
}

// block разбирает `{ item* }`, вызывая item до закрывающей скобки.
func (p *Parser) block(item func() error) error {
	if _, err := p.expect(token.LBrace); err != nil {
		return err
	}
	for !p.atOr(token.RBrace, token.EOF) {
		if err := item(); err != nil {
			return err
		}
	}
	_, err := p.expect(token.RBrace)
	return err
}

// parseSignature: `(params) [: Ret]`; отсутствие типа или `void` — nil.
func (p *Parser) parseSignature() ([]*ast.Param, *ast.TypeRef, error) {
	params, err := p.parseParams()
	if err != nil {
		return nil, nil, err
	}
	if !p.eat(token.Colon) {
		return params, nil, nil
	}
	ret, err := p.parseReturnType()
	return params, ret, err
}

func (p *Parser) parseParams() ([]*ast.Param, error) {
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	var params []*ast.Param
	for !p.at(token.RParen) {
		named, err := p.member("parameter name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return nil, err
		}
		ty, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, &ast.Param{Named: named, Type: ty})
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return params, nil
}
