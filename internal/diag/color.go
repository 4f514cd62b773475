package diag

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ColorDecider chooses whether output written to w is colourised.
type ColorDecider func(w io.Writer) bool

// AutoColor enables colour only for interactive terminals and honours NO_COLOR.
func AutoColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- fd fits in int
}

// AlwaysColor forces colour on.
func AlwaysColor(io.Writer) bool { return true }

// NeverColor forces colour off.
func NeverColor(io.Writer) bool { return false }

// ParseColorMode maps the CLI spelling (auto|on|off) to a decider.
func ParseColorMode(mode string) (ColorDecider, bool) {
	switch mode {
	case "auto", "":
		return AutoColor, true
	case "on", "always":
		return AlwaysColor, true
	case "off", "never":
		return NeverColor, true
	}
	return nil, false
}
