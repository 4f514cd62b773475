// Package token defines lexical token kinds for .taihe sources.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Attributes are lexed as '@' (Kind: At) + Ident; no per-attribute token kinds.
//   - Built-in type names (i32, String, Map, ...) are identifiers.
//     They are recognized by the semantic layer, not the lexer.
//   - Comments never reach the token stream.
package token
