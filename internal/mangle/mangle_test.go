package mangle

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeKnownNames(t *testing.T) {
	tests := []struct {
		segments []string
		kind     Kind
		want     string
	}{
		{[]string{"ohos", "foo", "Bar"}, KindType, "ohos_foo_Bar_t"},
		{[]string{"a", "b_c"}, KindFunc, "a_b_c_f1"},
		{[]string{"a_b", "c"}, KindFunc, "a_b_c_f0"},
		{[]string{"my_pkg", "do_it"}, KindFunc, "my_pkg_do_it_f02"},
		{[]string{"x", "a__b"}, KindVTable, "x_a__b_V11"},
		// one special underscore at slot 17: delta 17 = 0x11 -> units 1|0x10, 1
		{[]string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o", "p", "q", "r_s"}, KindCopy,
			"a_b_c_d_e_f_g_h_i_j_k_l_m_n_o_p_q_r_s_ch1"},
	}
	for _, tt := range tests {
		got, err := Encode(tt.segments, tt.kind)
		if err != nil {
			t.Fatalf("Encode(%v): %v", tt.segments, err)
		}
		if got != tt.want {
			t.Errorf("Encode(%v, %v) = %q, want %q", tt.segments, tt.kind, got, tt.want)
		}
	}
}

func TestDistinctBoundaries(t *testing.T) {
	a := MustEncode(KindFunc, "a", "b_c")
	b := MustEncode(KindFunc, "a_b", "c")
	if a == b {
		t.Fatalf("segment boundaries lost: both encode to %q", a)
	}
}

func TestDeterministic(t *testing.T) {
	segs := []string{"ohos", "multimedia_x", "Player__impl"}
	first := MustEncode(KindDynamicCast, segs...)
	for range 10 {
		if got := MustEncode(KindDynamicCast, segs...); got != first {
			t.Fatalf("non-deterministic output %q vs %q", got, first)
		}
	}
}

func randomSegment(r *rand.Rand) string {
	const alphabet = "abcXYZ019_"
	n := 1 + r.IntN(8)
	var b strings.Builder
	for range n {
		b.WriteByte(alphabet[r.IntN(len(alphabet))])
	}
	return b.String()
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := range 2000 {
		segs := make([]string, 1+r.IntN(6))
		for j := range segs {
			segs[j] = randomSegment(r)
		}
		kinds := Kinds()
		kind := kinds[i%len(kinds)]

		name, err := Encode(segs, kind)
		if err != nil {
			t.Fatalf("Encode(%q): %v", segs, err)
		}
		gotSegs, gotKind, err := Decode(name)
		if err != nil {
			t.Fatalf("Decode(%q): %v", name, err)
		}
		if gotKind != kind {
			t.Fatalf("Decode(%q) kind = %v, want %v", name, gotKind, kind)
		}
		if diff := cmp.Diff(segs, gotSegs); diff != "" {
			t.Fatalf("round trip of %q via %q (-want +got):\n%s", segs, name, diff)
		}
	}
}

func TestLongSpecialRun(t *testing.T) {
	seg := strings.Repeat("_", 300)
	name := MustEncode(KindIID, "p", seg, "q")
	segs, kind, err := Decode(name)
	if err != nil || kind != KindIID {
		t.Fatalf("Decode: %v %v", kind, err)
	}
	if diff := cmp.Diff([]string{"p", seg, "q"}, segs); diff != "" {
		t.Fatal(diff)
	}
}

func TestEncodeErrors(t *testing.T) {
	if _, err := Encode(nil, KindFunc); !errors.Is(err, ErrNoSegments) {
		t.Errorf("empty segments: %v", err)
	}
	if _, err := Encode([]string{"a"}, Kind('z')); err == nil {
		t.Error("invalid kind accepted")
	}
	if _, err := appendVLQ(nil, -1); !errors.Is(err, ErrNegativeDelta) {
		t.Errorf("negative delta: %v", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, name := range []string{
		"nosep",     // no separator
		"abc_",      // no marker
		"abc_z",     // unknown marker
		"abc_fx",    // not a digit
		"abc_fG",    // upper case is not a digit
		"abc_fg",    // dangling continuation
		"a_b_f5",    // position past the last gap
		"a_b_c_f00", // repeated position
	} {
		if _, _, err := Decode(name); err == nil {
			t.Errorf("Decode(%q) succeeded", name)
		} else {
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Errorf("Decode(%q) error %T is not a DecodeError", name, err)
			}
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		byMarker, err := ParseKind(string(rune(k)))
		if err != nil || byMarker != k {
			t.Errorf("ParseKind(%q) = %v, %v", string(rune(k)), byMarker, err)
		}
		byName, err := ParseKind(k.String())
		if err != nil || byName != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), byName, err)
		}
	}
	if _, err := ParseKind("nope"); err == nil {
		t.Error("unknown kind accepted")
	}
}
