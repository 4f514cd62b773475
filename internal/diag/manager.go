package diag

import (
	"fmt"
	"io"
	"strings"
)

// Manager renders diagnostics to a sink and tracks the highest level seen
// since the last reset. One manager belongs to one compiler run.
type Manager struct {
	sink     io.Writer
	renderer Renderer
	observer func(Diagnostic)
	maxLevel Level
	counts   [LevelFatal + 1]int
}

// Option configures a Manager.
type Option func(*Manager)

// WithColor plugs in the colour decision. It is evaluated once, against the sink.
func WithColor(decide ColorDecider) Option {
	return func(m *Manager) {
		if decide != nil {
			m.renderer.Color = decide(m.sink)
		}
	}
}

// WithCodes adds the code ID to every header.
func WithCodes(show bool) Option {
	return func(m *Manager) { m.renderer.ShowCodes = show }
}

// WithObserver registers a callback invoked for every emitted diagnostic
// after it has been rendered.
func WithObserver(fn func(Diagnostic)) Option {
	return func(m *Manager) { m.observer = fn }
}

// NewManager creates a manager writing to sink. Colour is off unless an
// option turns it on.
func NewManager(sink io.Writer, opts ...Option) *Manager {
	if sink == nil {
		sink = io.Discard
	}
	m := &Manager{sink: sink}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Emit renders d and its notes and raises the max level.
func (m *Manager) Emit(d Diagnostic) {
	m.renderer.Render(m.sink, d)
	level := d.Level()
	m.counts[level]++
	m.counts[LevelNote] += len(d.Notes)
	if level > m.maxLevel {
		m.maxLevel = level
	}
	if m.observer != nil {
		m.observer(d)
	}
}

// CaptureError runs fn and absorbs a returned *CompileError by emitting it.
// Any other error is returned untouched; panics are not recovered.
func (m *Manager) CaptureError(fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}
	if ce, ok := AsCompileError(err); ok {
		m.Emit(ce.Diag)
		return nil
	}
	return err
}

// ForEach applies fn to every item. A *CompileError from one item is emitted
// and the loop continues with the next item; stop=true aborts the loop. Any
// other error aborts and is returned. ok is true iff no item failed.
func ForEach[T any](m *Manager, items []T, fn func(T) (stop bool, err error)) (ok bool, err error) {
	ok = true
	for _, item := range items {
		var stop bool
		captured := false
		cerr := m.CaptureError(func() error {
			var ferr error
			stop, ferr = fn(item)
			if ferr != nil {
				if _, isDiag := AsCompileError(ferr); isDiag {
					captured = true
				}
			}
			return ferr
		})
		if cerr != nil {
			return false, cerr
		}
		if captured {
			ok = false
		}
		if stop {
			break
		}
	}
	return ok, nil
}

// Each is ForEach for callbacks that never stop early.
func Each[T any](m *Manager, items []T, fn func(T) error) (bool, error) {
	return ForEach(m, items, func(item T) (bool, error) {
		return false, fn(item)
	})
}

// MaxLevel returns the highest level emitted since the last reset.
func (m *Manager) MaxLevel() Level {
	return m.maxLevel
}

// ResetMaxLevel forgets the levels seen so far. Counters are kept.
func (m *Manager) ResetMaxLevel() {
	m.maxLevel = LevelNone
}

// HasErrors reports whether an error or fatal diagnostic was emitted since
// the last reset.
func (m *Manager) HasErrors() bool {
	return m.maxLevel.IsError()
}

// Count returns how many diagnostics of the level were emitted overall.
func (m *Manager) Count(l Level) int {
	if int(l) >= len(m.counts) {
		return 0
	}
	return m.counts[l]
}

// Summary renders a one-line tally, e.g. "2 errors, 1 warning".
// It is empty when nothing above note level was emitted.
func (m *Manager) Summary() string {
	var parts []string
	plural := func(n int, word string) string {
		if n == 1 {
			return fmt.Sprintf("1 %s", word)
		}
		return fmt.Sprintf("%d %ss", n, word)
	}
	if n := m.counts[LevelFatal]; n > 0 {
		parts = append(parts, plural(n, "fatal error"))
	}
	if n := m.counts[LevelError]; n > 0 {
		parts = append(parts, plural(n, "error"))
	}
	if n := m.counts[LevelWarn]; n > 0 {
		parts = append(parts, plural(n, "warning"))
	}
	return strings.Join(parts, ", ")
}
