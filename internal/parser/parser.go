// Package parser turns one .taihe source file into an ast.Package.
//
// Parsing stops at the first syntax error, which is returned as a
// *diag.CompileError; the caller decides whether other files go on.
package parser

import (
	"slices"

	"taihe/internal/ast"
	"taihe/internal/lexer"
	"taihe/internal/source"
	"taihe/internal/token"
)

// Parser — состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	lexErr   *lexer.FirstError
	fs       *source.FileSet
	file     *source.File
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseFile parses file as the package pkgName.
func ParseFile(fs *source.FileSet, file *source.File, pkgName string) (*ast.Package, error) {
	rep := &lexer.FirstError{Files: fs}
	p := &Parser{
		lx:     lexer.New(file, lexer.Options{Reporter: rep}),
		lexErr: rep,
		fs:     fs,
		file:   file,
	}
	pkg := &ast.Package{Name: pkgName, File: file}
	if err := p.parseItems(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// parseItems — основной цикл верхнего уровня: пока не EOF — parseItem.
func (p *Parser) parseItems(pkg *ast.Package) error {
	for !p.at(token.EOF) {
		if err := p.parseItem(pkg); err != nil {
			return err
		}
	}
	// незакрытый комментарий в конце файла даёт EOF вместе с ошибкой
	if p.lexErr.Err != nil {
		return p.lexErr.Err
	}
	return nil
}

// parseItem выбирает по первому токену нужный распознаватель top-level конструкции.
func (p *Parser) parseItem(pkg *ast.Package) error {
	if p.at(token.KwUse) {
		use, err := p.parseUse()
		if err != nil {
			return err
		}
		pkg.Uses = append(pkg.Uses, use)
		return nil
	}

	var attrs []*ast.Attr
	if p.at(token.At) {
		start := p.advance().Span
		pkgLevel := p.eat(token.Bang)
		attr, err := p.parseAttrRest(start)
		if err != nil {
			return err
		}
		if pkgLevel {
			pkg.Attrs = append(pkg.Attrs, attr)
			return nil
		}
		attrs = append(attrs, attr)
	}
	more, err := p.parseAttrs()
	if err != nil {
		return err
	}
	attrs = append(attrs, more...)

	var decl ast.Decl
	switch p.lx.Peek().Kind {
	case token.KwStruct:
		decl, err = p.parseStruct(attrs)
	case token.KwEnum:
		decl, err = p.parseEnum(attrs)
	case token.KwUnion:
		decl, err = p.parseUnion(attrs)
	case token.KwInterface:
		decl, err = p.parseIface(attrs)
	case token.KwFunction:
		decl, err = p.parseFunc(attrs)
	default:
		return p.unexpected("a declaration")
	}
	if err != nil {
		return err
	}
	pkg.Decls = append(pkg.Decls, decl)
	return nil
}
