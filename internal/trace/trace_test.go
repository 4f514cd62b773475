package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelPhase, ScopePass, true},
		{LevelPhase, ScopeModule, false},
		{LevelDetail, ScopeModule, true},
		{LevelDebug, ScopeModule, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if l, err := ParseLevel("Detail"); err != nil || l != LevelDetail {
		t.Fatalf("ParseLevel(Detail) = %v, %v", l, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if f, err := ParseFormat("ndjson"); err != nil || f != FormatNDJSON {
		t.Fatalf("ParseFormat(ndjson) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestStreamText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)

	drv := Begin(tr, ScopeDriver, "run", 0)
	pass := Begin(tr, ScopePass, "parse", drv.ID())
	file := Begin(tr, ScopeModule, "file:a.taihe", pass.ID())
	file.End("")
	pass.WithExtra("files", "2").WithExtra("errors", "0").End("ok")
	drv.End("")

	out := buf.String()
	if strings.Contains(out, "file:a.taihe") {
		t.Fatalf("module span leaked at phase level:\n%s", out)
	}
	if !strings.Contains(out, "← parse (ok) {errors=0, files=2}") {
		t.Fatalf("missing parse end line:\n%s", out)
	}
	if n := strings.Count(out, "\n"); n != 4 {
		t.Fatalf("lines = %d, want 4:\n%s", n, out)
	}
}

func TestStreamNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelDetail, Format: FormatNDJSON, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	Point(tr, ScopeModule, "skip", "dir", 7)

	var ev map[string]any
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatalf("bad json %q: %v", buf.String(), err)
	}
	if ev["kind"] != "point" || ev["name"] != "skip" || ev["parent_id"] != float64(7) {
		t.Fatalf("event = %v", ev)
	}
}

func TestNopAndContext(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr != Nop {
		t.Fatalf("New(off) = %v, %v", tr, err)
	}
	if FromContext(context.Background()) != Nop {
		t.Fatalf("empty context should yield Nop")
	}
	s := Begin(Nop, ScopeDriver, "run", 0)
	if s.ID() != 0 {
		t.Fatalf("nop span id = %d", s.ID())
	}
	s.WithExtra("k", "v").End("")

	var buf bytes.Buffer
	st := NewStreamTracer(&buf, LevelDebug, FormatText)
	ctx := WithTracer(context.Background(), st)
	if FromContext(ctx) != Tracer(st) {
		t.Fatalf("tracer not carried by context")
	}
	span := Begin(st, ScopePass, "scan", 0)
	if CurrentSpan(WithSpan(ctx, span)) != span.ID() {
		t.Fatalf("span id not carried by context")
	}
}
