package source

import "fmt"

// Range is a resolved region of a file. Stop is inclusive.
type Range struct {
	Start LineCol
	Stop  LineCol
}

// Loc is the location attached to a diagnostic: a file and, optionally, a
// range inside it. The zero Loc means "no location".
type Loc struct {
	File  *File
	Range *Range
}

// PathLoc builds a location for a path that is not (or cannot be) loaded,
// e.g. a directory entry met while scanning.
func PathLoc(path string) Loc {
	return Loc{File: &File{ID: NoFileID, Path: normalizePath(path), Flags: FilePathOnly}}
}

// IsZero reports whether the location carries no information at all.
func (l Loc) IsZero() bool {
	return l.File == nil
}

// HasRange reports whether the location points into the file contents.
func (l Loc) HasRange() bool {
	return l.File != nil && l.Range != nil
}

func (l Loc) String() string {
	if l.File == nil {
		return ""
	}
	if l.Range == nil {
		return l.File.Path
	}
	return fmt.Sprintf("%s:%d:%d", l.File.Path, l.Range.Start.Line, l.Range.Start.Col)
}
