package token

var keywords = map[string]Kind{
	"use":       KwUse,
	"as":        KwAs,
	"struct":    KwStruct,
	"enum":      KwEnum,
	"union":     KwUnion,
	"interface": KwInterface,
	"function":  KwFunction,
	"true":      KwTrue,
	"false":     KwFalse,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
