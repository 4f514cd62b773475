package fuzztests

import "testing"

const maxFuzzInput = 1 << 16 // 64 KiB

var idlSeeds = []string{
	"",
	"struct Point { x: f64; y: f64; }\n",
	"use geo;\nuse a.b as c;\nfunction center(p: geo.Point): Optional<String>;\n",
	"@keep_name\nenum Color: String { RED = \"red\", GREEN }\n",
	"enum Flags: i8 { A = 1, B, C = -3 }\n",
	"union Value { i: i32; s: String; empty; }\n",
	"interface Shape: Base { area(): f64; @get name(): String; }\n",
	"function on(cb: (x: i32) => bool): Map<String, Array<i64>>;\n",
	"/* block */ // line\nstruct S { a: Vector<Set<u8>>; }\n",
	"struct {\n",
	"enum E { A = 0x7fffffffffffffffff }",
	"\"unterminated",
}

func addSeeds(f *testing.F) {
	for _, s := range idlSeeds {
		f.Add([]byte(s))
	}
}

func clamp(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
