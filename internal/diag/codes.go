package diag

import "fmt"

// Code is the closed set of diagnostic kinds. The level of a diagnostic is a
// property of its code and never changes after construction.
type Code uint16

const (
	UnknownCode Code = 0

	// Attached notes.
	Note Code = 100

	// Scanning source directories.
	IgnoredDirectoryWarn Code = 1001
	IgnoredFileWarn      Code = 1002
	PackageNameWarn      Code = 1003
	SourceReadError      Code = 1004

	// Parsing.
	UnexpectedCharError  Code = 2001
	UnterminatedError    Code = 2002
	UnexpectedTokenError Code = 2003
	InvalidLiteralError  Code = 2004

	// Semantic analysis.
	DuplicateNameError      Code = 3001
	NotATypeError           Code = 3002
	GenericArgumentsError   Code = 3003
	PackageNotExistError    Code = 3004
	TypeUsageError          Code = 3005
	RecursiveInclusionError Code = 3006
	EnumValueError          Code = 3007
	UnknownAttributeWarn    Code = 3008
	AttributeArgsError      Code = 3009

	// Code generation.
	OutputConflictFatal Code = 4001
	OutputWriteFatal    Code = 4002
)

type codeInfo struct {
	level Level
	title string
}

var codeTable = map[Code]codeInfo{
	UnknownCode: {LevelError, "unknown error"},
	Note:        {LevelNote, "note"},

	IgnoredDirectoryWarn: {LevelWarn, "directory ignored"},
	IgnoredFileWarn:      {LevelWarn, "file ignored"},
	PackageNameWarn:      {LevelWarn, "package name is not normalized"},
	SourceReadError:      {LevelError, "cannot read source"},

	UnexpectedCharError:  {LevelError, "unexpected character"},
	UnterminatedError:    {LevelError, "unterminated literal or comment"},
	UnexpectedTokenError: {LevelError, "unexpected token"},
	InvalidLiteralError:  {LevelError, "invalid literal"},

	DuplicateNameError:      {LevelError, "duplicate name"},
	NotATypeError:           {LevelError, "not a type"},
	GenericArgumentsError:   {LevelError, "wrong generic arguments"},
	PackageNotExistError:    {LevelError, "package does not exist"},
	TypeUsageError:          {LevelError, "invalid type usage"},
	RecursiveInclusionError: {LevelError, "recursive inclusion"},
	EnumValueError:          {LevelError, "invalid enum value"},
	UnknownAttributeWarn:    {LevelWarn, "unknown attribute"},
	AttributeArgsError:      {LevelError, "invalid attribute arguments"},

	OutputConflictFatal: {LevelFatal, "conflicting generated output"},
	OutputWriteFatal:    {LevelFatal, "cannot write generated output"},
}

// Level returns the fixed level of the code.
func (c Code) Level() Level {
	if info, ok := codeTable[c]; ok {
		return info.level
	}
	return LevelError
}

// ID returns the stable short identifier, e.g. SEM3002.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 100 && ic < 1000:
		return fmt.Sprintf("NTE%04d", ic)
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SCN%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("GEN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	if info, ok := codeTable[c]; ok {
		return info.title
	}
	return codeTable[UnknownCode].title
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
