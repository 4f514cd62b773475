// Package mangle flattens a declaration path into one linker-safe symbol and
// back again. Independent generators derive the same name from the same path
// without sharing state.
//
// The format is
//
//	strings.Join(segments, "_") + "_" + kind + positions
//
// where positions lists, as delta-coded VLQ digits, the underscore slots of
// the joined string that belong inside a segment rather than between two.
package mangle

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoSegments = errors.New("mangle: no segments")

// DecodeError describes a malformed mangled name.
type DecodeError struct {
	Name   string
	Reason string
	Offset int
}

func (e *DecodeError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("mangle: %s at %d", e.Reason, e.Offset)
	}
	return fmt.Sprintf("mangle: cannot decode %q: %s", e.Name, e.Reason)
}

// Encode mangles segments with the given kind marker.
func Encode(segments []string, kind Kind) (string, error) {
	if len(segments) == 0 {
		return "", ErrNoSegments
	}
	if !kind.Valid() {
		return "", fmt.Errorf("mangle: invalid kind %q", byte(kind))
	}

	var b strings.Builder
	suffix := []byte{byte(kind)}
	slot, prev := 0, 0
	for i, seg := range segments {
		if i > 0 {
			b.WriteByte('_')
			slot++ // separator
		}
		b.WriteString(seg)
		for j := 0; j < len(seg); j++ {
			if seg[j] != '_' {
				continue
			}
			var err error
			if suffix, err = appendVLQ(suffix, slot-prev); err != nil {
				return "", err
			}
			prev = slot
			slot++
		}
	}
	b.WriteByte('_')
	b.Write(suffix)
	return b.String(), nil
}

// MustEncode is Encode for paths built from a validated declaration graph.
func MustEncode(kind Kind, segments ...string) string {
	name, err := Encode(segments, kind)
	if err != nil {
		panic(err)
	}
	return name
}

// Decode reverses Encode.
func Decode(name string) ([]string, Kind, error) {
	fail := func(reason string) ([]string, Kind, error) {
		return nil, 0, &DecodeError{Name: name, Reason: reason}
	}

	sep := strings.LastIndexByte(name, '_')
	if sep < 0 {
		return fail("no separator")
	}
	suffix := name[sep+1:]
	if len(suffix) < 1 {
		return fail("missing kind marker")
	}
	kind := Kind(suffix[0])
	if !kind.Valid() {
		return fail(fmt.Sprintf("unknown kind marker %q", suffix[0]))
	}
	deltas, err := decodeVLQ(suffix[1:])
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			return fail(de.Reason)
		}
		return nil, 0, err
	}

	parts := strings.Split(name[:sep], "_")
	special := make(map[int]bool, len(deltas))
	pos := 0
	for i, d := range deltas {
		if i > 0 && d == 0 {
			return fail("repeated underscore position")
		}
		pos += d
		if pos >= len(parts)-1 {
			return fail("underscore position out of range")
		}
		special[pos] = true
	}

	segments := []string{parts[0]}
	for gap, part := range parts[1:] {
		if special[gap] {
			segments[len(segments)-1] += "_" + part
			continue
		}
		segments = append(segments, part)
	}
	return segments, kind, nil
}
