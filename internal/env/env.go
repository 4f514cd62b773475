// Package env describes the process the compiler runs in. It is built once
// in main and passed down; nothing below main reads the process state
// directly.
package env

import (
	"io"
	"os"
	"path/filepath"

	"golang.org/x/term"
)

// Mode says where resources come from.
type Mode uint8

const (
	// ModeDev runs from a source checkout without bundled resources.
	ModeDev Mode = iota
	// ModeInstalled runs from an installation with share/taihe next to bin/.
	ModeInstalled
)

func (m Mode) String() string {
	if m == ModeInstalled {
		return "installed"
	}
	return "dev"
}

// Environment is everything the driver needs to know about the process.
type Environment struct {
	Stderr      io.Writer
	Interactive bool   // Stderr is a terminal
	Mode        Mode
	ResourceDir string // share/taihe root, empty in dev mode
	CacheDir    string
}

// RuntimeHeaders is the directory of runtime headers copied next to the
// generated C and C++ sources, or "" when there is none.
func (e Environment) RuntimeHeaders() string {
	if e.ResourceDir == "" {
		return ""
	}
	dir := filepath.Join(e.ResourceDir, "include", "taihe")
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		return ""
	}
	return dir
}

// Lookup abstracts the process state Discover reads, for tests.
type Lookup struct {
	Getenv     func(string) string
	Executable func() (string, error)
	CacheRoot  func() (string, error)
}

// OS reads the real process state.
var OS = Lookup{
	Getenv:     os.Getenv,
	Executable: os.Executable,
	CacheRoot:  os.UserCacheDir,
}

// Discover builds the environment for a run writing to stderr.
//
// TAIHE_ROOT selects the resource root explicitly. Otherwise the compiler
// is "installed" when <exe>/../share/taihe exists.
func Discover(stderr *os.File, look Lookup) Environment {
	e := Environment{Stderr: io.Discard}
	if stderr != nil {
		e.Stderr = stderr
		e.Interactive = term.IsTerminal(int(stderr.Fd())) // #nosec G115 -- fd fits in int
	}

	if root := look.Getenv("TAIHE_ROOT"); root != "" {
		e.Mode = ModeInstalled
		e.ResourceDir = root
	} else if exe, err := look.Executable(); err == nil {
		share := filepath.Join(filepath.Dir(filepath.Dir(exe)), "share", "taihe")
		if st, err := os.Stat(share); err == nil && st.IsDir() {
			e.Mode = ModeInstalled
			e.ResourceDir = share
		}
	}

	if dir := look.Getenv("TAIHE_CACHE_DIR"); dir != "" {
		e.CacheDir = dir
	} else if root, err := look.CacheRoot(); err == nil {
		e.CacheDir = filepath.Join(root, "taihe")
	}
	return e
}
