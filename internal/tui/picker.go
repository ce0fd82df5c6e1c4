package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/experiment"
	"github.com/san-kum/numlab/internal/report"
	"github.com/san-kum/numlab/internal/viz"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type state int

const (
	stateMenu state = iota
	stateReport
)

type model struct {
	state   state
	cursor  int
	drivers []*experiment.Driver
	cfg     *config.Config

	plot   bool
	report *report.Report
	lines  []string
	offset int
	err    error

	// onRun receives every finished report, e.g. to persist it.
	onRun func(*report.Report) error

	width  int
	height int
}

func newModel(reg *experiment.Registry, cfg *config.Config, onRun func(*report.Report) error) model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return model{
		state:   stateMenu,
		drivers: reg.List(),
		cfg:     cfg,
		onRun:   onRun,
		width:   80,
		height:  24,
	}
}

func (m model) Init() tea.Cmd { return nil }

type reportMsg struct {
	report *report.Report
	err    error
}

func (m model) runSelected() tea.Cmd {
	d := m.drivers[m.cursor]
	cfg := m.cfg
	onRun := m.onRun
	return func() tea.Msg {
		r, err := d.Execute(context.Background(), cfg)
		if err == nil && onRun != nil {
			err = onRun(r)
		}
		return reportMsg{report: r, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case reportMsg:
		m.report = msg.report
		m.err = msg.err
		m.offset = 0
		m.state = stateReport
		m.layout()
		return m, nil
	}
	return m, nil
}

func (m *model) layout() {
	m.lines = nil
	if m.report == nil {
		return
	}
	var buf bytes.Buffer
	_ = viz.Render(&buf, m.report, viz.Options{Plot: m.plot, PlotWidth: max(m.width-16, 20)})
	m.lines = strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateReport:
		return m.reportKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.drivers)-1 {
			m.cursor++
		}
	case "p":
		m.plot = !m.plot
	case "enter", " ":
		if len(m.drivers) == 0 {
			return m, nil
		}
		return m, m.runSelected()
	}
	return m, nil
}

func (m model) reportKey(msg tea.KeyMsg) (model, tea.Cmd) {
	page := m.pageSize()
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.state = stateMenu
		m.report = nil
		m.err = nil
		return m, tea.ClearScreen
	case "up", "k":
		m.offset = max(m.offset-1, 0)
	case "down", "j":
		m.offset = min(m.offset+1, max(len(m.lines)-page, 0))
	case "pgup", "b":
		m.offset = max(m.offset-page, 0)
	case "pgdown", "f", " ":
		m.offset = min(m.offset+page, max(len(m.lines)-page, 0))
	case "p":
		m.plot = !m.plot
		m.layout()
		m.offset = 0
	case "r":
		return m, m.runSelected()
	}
	return m, nil
}

func (m model) pageSize() int {
	return max(m.height-4, 5)
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateReport:
		return m.viewReport()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("            " + cyan.Render("n u m l a b") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")

	family := ""
	for i, d := range m.drivers {
		if d.Family != family {
			family = d.Family
			b.WriteString("\n    " + magenta.Render(family) + "\n")
		}
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-16s", d.Name)) + dim.Render(d.Title) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-16s", d.Name)) + dimmer.Render(d.Title) + "\n")
		}
	}

	plot := "off"
	if m.plot {
		plot = "on"
	}
	b.WriteString("\n")
	b.WriteString(dim.Render(fmt.Sprintf("      ↑↓ select   enter run   p plots (%s)   q quit", plot)) + "\n")

	return b.String()
}

func (m model) viewReport() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString("\n   " + red.Render("error: "+m.err.Error()) + "\n")
	}

	page := m.pageSize()
	end := min(m.offset+page, len(m.lines))
	for _, line := range m.lines[m.offset:end] {
		b.WriteString("   " + line + "\n")
	}

	pos := ""
	if len(m.lines) > page {
		pos = fmt.Sprintf("  %d-%d/%d", m.offset+1, end, len(m.lines))
	}
	b.WriteString("\n" + dim.Render("   ↑↓ scroll  p plots  r rerun  esc back"+pos) + "\n")

	return b.String()
}

// Run starts the picker. onRun, when non-nil, receives every report the
// user produces.
func Run(reg *experiment.Registry, cfg *config.Config, onRun func(*report.Report) error) error {
	p := tea.NewProgram(newModel(reg, cfg, onRun), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
