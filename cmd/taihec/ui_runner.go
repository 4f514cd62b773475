package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"taihe/internal/driver"
	"taihe/internal/env"
	"taihe/internal/ui"
)

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "", "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

func shouldUseTUI(mode uiMode, e env.Environment) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return e.Interactive
	}
}

// runWithUI runs the compiler on its own goroutine while the progress view
// owns the terminal.
func runWithUI(ctx context.Context, out io.Writer, opts driver.Options, build func(driver.Options) *driver.Compiler) (*driver.Compiler, bool, error) {
	events := make(chan driver.Event, 256)
	type outcome struct {
		c  *driver.Compiler
		ok bool
	}
	done := make(chan outcome, 1)

	go func() {
		defer close(events)
		opts.Progress = driver.ChannelSink{Ch: events}
		c := build(opts)
		done <- outcome{c: c, ok: c.Run(ctx)}
	}()

	program := tea.NewProgram(ui.NewProgressModel("taihec build", events), tea.WithOutput(out))
	_, uiErr := program.Run()
	// keep draining so the driver never blocks on a dead view
	for range events {
	}
	res := <-done
	return res.c, res.ok, uiErr
}
