// Package fuzztests holds Go fuzz harnesses for the front half of the
// compiler (source -> lexer -> parser) and the symbol mangler. They guard
// against panics, hangs and lost information on arbitrary input.
//
// Не делает: генерацию корпусов, запись файлов, запуск CLI.
package fuzztests
