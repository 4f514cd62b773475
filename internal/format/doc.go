// Package format prints declarations back as IDL text and provides the
// indenting Writer the code generators emit through.
//
// Назначение: печать ast.Package (отладочный дамп, тесты) и общий Writer.
// Не делает: разбора, IO, решений о раскладке файлов.
// Зависимости: internal/ast.
package format
