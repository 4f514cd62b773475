package ui

import (
	"strings"
	"testing"

	"taihe/internal/driver"
)

func TestApplyEvents(t *testing.T) {
	m := NewProgressModel("build", nil).(*progressModel)

	m.applyEvent(driver.Event{File: "idl/a.taihe", Stage: driver.StageScan, Status: driver.StatusQueued})
	m.applyEvent(driver.Event{File: "idl/a.taihe", Stage: driver.StageParse, Status: driver.StatusWorking})
	m.applyEvent(driver.Event{Stage: driver.StageScan, Status: driver.StatusDone})
	m.applyEvent(driver.Event{Stage: driver.StageParse, Status: driver.StatusError})

	if len(m.files) != 1 || m.files[0].status != "parsing" {
		t.Fatalf("files = %+v", m.files)
	}
	if got := m.fraction(); got != 0.4 {
		t.Fatalf("fraction = %v, want 0.4", got)
	}

	view := m.View()
	for _, want := range []string{"build", "scan", "validate", "idl/a.taihe"} {
		if !strings.Contains(view, want) {
			t.Errorf("view misses %q:\n%s", want, view)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("a/very/long/path.taihe", 10); got != "a/ve..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("界界界", 3); got != "界" {
		t.Fatalf("wide truncate = %q", got)
	}
}
