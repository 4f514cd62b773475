package fuzztests

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"taihe/internal/mangle"
)

func FuzzMangleRoundTrip(f *testing.F) {
	f.Add("a/b_c", byte('f'))
	f.Add("x__y/_z_/w", byte('V'))
	f.Add("ohos.geo/Point/__init__", byte('t'))
	f.Fuzz(func(t *testing.T, path string, marker byte) {
		kind := mangle.Kind(marker)
		if !kind.Valid() {
			return
		}
		segs := strings.Split(path, "/")
		for _, s := range segs {
			if s == "" {
				return
			}
		}
		name, err := mangle.Encode(segs, kind)
		if err != nil {
			return
		}
		gotSegs, gotKind, err := mangle.Decode(name)
		if err != nil {
			t.Fatalf("Decode(%q): %v", name, err)
		}
		if gotKind != kind {
			t.Fatalf("kind = %v, want %v", gotKind, kind)
		}
		if diff := cmp.Diff(segs, gotSegs); diff != "" {
			t.Fatalf("segments (-want +got):\n%s", diff)
		}
	})
}

func FuzzDemangleNoPanic(f *testing.F) {
	f.Add("a_b_f")
	f.Add("__")
	f.Add("x_F0z")
	f.Fuzz(func(t *testing.T, name string) {
		_, _, _ = mangle.Decode(name)
	})
}
