// Package ui renders a live view of a compiler run in the terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"taihe/internal/driver"
)

type progressModel struct {
	title   string
	events  <-chan driver.Event
	spinner spinner.Model
	prog    progress.Model
	stages  []stageItem
	files   []fileItem
	index   map[string]int
	width   int
	done    bool
}

type stageItem struct {
	stage  driver.Stage
	status driver.Status
}

type fileItem struct {
	path   string
	status string
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that follows the driver's
// progress events until the channel is closed.
func NewProgressModel(title string, events <-chan driver.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	stages := make([]stageItem, len(driver.Stages))
	for i, s := range driver.Stages {
		stages[i] = stageItem{stage: s, status: driver.StatusQueued}
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		stages:  stages,
		index:   make(map[string]int),
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(driver.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := m.title
	if m.done {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	for _, s := range m.stages {
		status := string(s.status)
		b.WriteString(fmt.Sprintf("  %s %s\n", styleStatus(status).Render(fmt.Sprintf("%8s", status)), s.stage))
	}

	if len(m.files) > 0 {
		b.WriteString("\n")
		nameWidth := max(m.width-14, 20)
		for _, f := range m.files {
			status := styleStatus(f.status).Render(fmt.Sprintf("%8s", f.status))
			b.WriteString(fmt.Sprintf("  %s %s\n", status, truncate(f.path, nameWidth)))
		}
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev driver.Event) tea.Cmd {
	if ev.File != "" {
		idx, ok := m.index[ev.File]
		if !ok {
			idx = len(m.files)
			m.index[ev.File] = idx
			m.files = append(m.files, fileItem{path: ev.File})
		}
		m.files[idx].status = fileLabel(ev.Status)
		return nil
	}
	for i := range m.stages {
		if m.stages[i].stage == ev.Stage {
			m.stages[i].status = ev.Status
		}
	}
	return m.prog.SetPercent(m.fraction())
}

// fraction is the share of stages that have finished.
func (m *progressModel) fraction() float64 {
	finished := 0
	for _, s := range m.stages {
		switch s.status {
		case driver.StatusDone, driver.StatusError, driver.StatusSkipped:
			finished++
		}
	}
	return float64(finished) / float64(len(m.stages))
}

func fileLabel(status driver.Status) string {
	if status == driver.StatusWorking {
		return "parsing"
	}
	return string(status)
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "done":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "error":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "working", "parsing":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	case "skipped":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
