package format

import (
	"fmt"
)

// Options control indentation.
type Options struct {
	IndentWidth int
	UseTabs     bool
	// ShowResolved prints resolved types by their canonical representation
	// instead of the text written in the source.
	ShowResolved bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 4
	}
	return o
}

// Writer accumulates output and indents every line it starts.
type Writer struct {
	opt         Options
	buf         []byte
	indentLevel int
	atLineStart bool
}

// NewWriter creates a new writer.
func NewWriter(opt Options) *Writer {
	return &Writer{
		opt:         opt.withDefaults(),
		atLineStart: true,
	}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) String() string {
	return string(w.buf)
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	if w.opt.UseTabs {
		for range w.indentLevel {
			w.buf = append(w.buf, '\t')
		}
	} else {
		for range w.indentLevel * w.opt.IndentWidth {
			w.buf = append(w.buf, ' ')
		}
	}
	w.atLineStart = false
}

// WriteString writes s; a line start inside s is not re-indented.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	if s[0] != '\n' {
		w.writeIndent()
	}
	w.buf = append(w.buf, s...)
	w.atLineStart = s[len(s)-1] == '\n'
}

// Printf writes a formatted fragment.
func (w *Writer) Printf(format string, args ...any) {
	w.WriteString(fmt.Sprintf(format, args...))
}

// Line writes a formatted fragment and ends the line.
func (w *Writer) Line(format string, args ...any) {
	w.Printf(format, args...)
	w.Newline()
}

// Newline ends the current line.
func (w *Writer) Newline() {
	w.buf = append(w.buf, '\n')
	w.atLineStart = true
}

// Blank writes an empty line unless the output already ends with one or is empty.
func (w *Writer) Blank() {
	n := len(w.buf)
	if n == 0 || (n >= 2 && w.buf[n-1] == '\n' && w.buf[n-2] == '\n') {
		return
	}
	if w.buf[n-1] != '\n' {
		w.buf = append(w.buf, '\n')
	}
	w.buf = append(w.buf, '\n')
	w.atLineStart = true
}

// IndentPush increases the indentation level.
func (w *Writer) IndentPush() {
	w.indentLevel++
}

// IndentPop decreases the indentation level.
func (w *Writer) IndentPop() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}

// Block writes `head {`, runs body one level deeper and closes with `tail`.
func (w *Writer) Block(head, tail string, body func()) {
	w.Line("%s {", head)
	w.IndentPush()
	body()
	w.IndentPop()
	w.Line("}%s", tail)
}
