package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit is a decimal or 0x/0b/0o integer literal, without sign.
	IntLit
	// FloatLit is a decimal literal with a fraction or exponent.
	FloatLit
	// StringLit is a double-quoted string literal; Text keeps the quotes.
	StringLit

	KwUse       // use
	KwAs        // as
	KwStruct    // struct
	KwEnum      // enum
	KwUnion     // union
	KwInterface // interface
	KwFunction  // function
	KwTrue      // true
	KwFalse     // false

	LBrace    // {
	RBrace    // }
	LParen    // (
	RParen    // )
	Lt        // <
	Gt        // >
	Comma     // ,
	Semicolon // ;
	Colon     // :
	Dot       // .
	At        // @
	Bang      // !
	Assign    // =
	Minus     // -
	FatArrow  // =>
)

var kindNames = [...]string{
	Invalid:     "invalid",
	EOF:         "end of file",
	Ident:       "identifier",
	IntLit:      "integer literal",
	FloatLit:    "float literal",
	StringLit:   "string literal",
	KwUse:       "'use'",
	KwAs:        "'as'",
	KwStruct:    "'struct'",
	KwEnum:      "'enum'",
	KwUnion:     "'union'",
	KwInterface: "'interface'",
	KwFunction:  "'function'",
	KwTrue:      "'true'",
	KwFalse:     "'false'",
	LBrace:      "'{'",
	RBrace:      "'}'",
	LParen:      "'('",
	RParen:      "')'",
	Lt:          "'<'",
	Gt:          "'>'",
	Comma:       "','",
	Semicolon:   "';'",
	Colon:       "':'",
	Dot:         "'.'",
	At:          "'@'",
	Bang:        "'!'",
	Assign:      "'='",
	Minus:       "'-'",
	FatArrow:    "'=>'",
}

// String returns the human readable name used in parser messages.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
