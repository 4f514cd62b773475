package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"taihe/internal/source"
)

// Renderer turns diagnostics into text:
//
//	<location>: <level>: <message>
//	<source line(s)>
//	<caret row(s)>
type Renderer struct {
	Color     bool
	ShowCodes bool
}

func (r *Renderer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func (r *Renderer) levelStyle(l Level) *color.Color {
	switch l {
	case LevelNote:
		return r.paint(color.FgCyan, color.Bold)
	case LevelWarn:
		return r.paint(color.FgYellow, color.Bold)
	case LevelError:
		return r.paint(color.FgRed, color.Bold)
	case LevelFatal:
		return r.paint(color.FgMagenta, color.Bold)
	}
	return r.paint(color.Reset)
}

// Render writes d followed by each of its notes.
func (r *Renderer) Render(w io.Writer, d Diagnostic) {
	label := d.Level().String()
	if r.ShowCodes {
		label = fmt.Sprintf("%s[%s]", label, d.Code().ID())
	}
	r.renderEntry(w, d.Level(), label, d.Loc, d.Message)
	for _, n := range d.Notes {
		r.renderEntry(w, LevelNote, LevelNote.String(), n.Loc, n.Msg)
	}
}

// RenderString is Render into a string.
func (r *Renderer) RenderString(d Diagnostic) string {
	var b strings.Builder
	r.Render(&b, d)
	return b.String()
}

func (r *Renderer) renderEntry(w io.Writer, level Level, label string, loc source.Loc, msg string) {
	style := r.levelStyle(level)
	var b strings.Builder
	if s := loc.String(); s != "" {
		b.WriteString(r.paint(color.Bold).Sprint(s))
		b.WriteString(": ")
	}
	b.WriteString(style.Sprint(label))
	b.WriteString(": ")
	b.WriteString(msg)
	b.WriteByte('\n')
	if loc.HasRange() && loc.File.Flags&source.FilePathOnly == 0 {
		writeSnippet(&b, loc, style)
	}
	// sink errors are not the compiler's problem
	_, _ = io.WriteString(w, b.String())
}

func writeSnippet(b *strings.Builder, loc source.Loc, style *color.Color) {
	rng := loc.Range
	for line := rng.Start.Line; line <= rng.Stop.Line; line++ {
		text := loc.File.GetLine(line)
		from, to := 1, len(text)
		if line == rng.Start.Line {
			from = int(rng.Start.Col)
		}
		if line == rng.Stop.Line {
			to = int(rng.Stop.Col)
		}
		b.WriteString(text)
		b.WriteByte('\n')
		if to < from {
			if line != rng.Start.Line && line != rng.Stop.Line {
				b.WriteByte('\n')
				continue
			}
			to = from
		}
		b.WriteString(caretPadding(text, from))
		b.WriteString(style.Sprint(strings.Repeat("^", caretWidth(text, from, to))))
		b.WriteByte('\n')
	}
}

// caretPadding reproduces tabs so the carets line up with the source.
func caretPadding(text string, col int) string {
	prefix := text[:min(col-1, len(text))]
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	if extra := col - 1 - len(prefix); extra > 0 {
		b.WriteString(strings.Repeat(" ", extra))
	}
	return b.String()
}

// caretWidth counts display columns for the byte columns [from, to].
func caretWidth(text string, from, to int) int {
	lo := min(from-1, len(text))
	hi := min(to, len(text))
	width := 0
	if lo < hi {
		width = runewidth.StringWidth(text[lo:hi])
	}
	// columns past the end of the line (the newline itself)
	if to > len(text) {
		width += to - max(len(text), from-1)
	}
	return max(width, 1)
}
