package diag

// Level defines the importance of a diagnostic. Levels are totally ordered.
type Level uint8

const (
	// LevelNone is the max level of a manager that has seen nothing yet.
	LevelNone Level = iota
	// LevelNote is informational and only ever attached to another diagnostic.
	LevelNote
	// LevelWarn never raises HasErrors.
	LevelWarn
	LevelError
	// LevelFatal behaves like LevelError; it exists for sink prioritisation.
	LevelFatal
)

// String returns the level word used in rendered headers.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelNote:
		return "note"
	case LevelWarn:
		return "warning"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	}
	return "unknown"
}

// IsError reports whether the level withholds code generation.
func (l Level) IsError() bool {
	return l >= LevelError
}
