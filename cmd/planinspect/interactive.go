package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/memplan/offline"
	"github.com/wippyai/memplan/report"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateBrowse modelState = iota
	stateLookup
)

type interactiveModel struct {
	planner  *offline.Planner
	reporter *report.Capture
	filename string
	result   string
	failed   bool
	table    table.Model
	input    textinput.Model
	state    modelState
}

func newInteractiveModel(filename string, p *offline.Planner) *interactiveModel {
	rows := make([]table.Row, 0, p.BufferCount())
	for i, off := range p.All() {
		rows = append(rows, table.Row{
			strconv.Itoa(i),
			strconv.Itoa(off),
			fmt.Sprintf("0x%08x", uint32(off)),
		})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Index", Width: 8},
			{Title: "Offset", Width: 12},
			{Title: "Hex", Width: 12},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, 16)),
	)

	ti := textinput.New()
	ti.Placeholder = "buffer index"
	ti.Prompt = "index: "
	ti.CharLimit = 12
	ti.Width = 20

	return &interactiveModel{
		planner:  p,
		reporter: report.NewCapture(),
		filename: filename,
		table:    t,
		input:    ti,
		state:    stateBrowse,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateBrowse {
				return m, tea.Quit
			}

		case "/":
			if m.state == stateBrowse {
				m.state = stateLookup
				m.table.Blur()
				m.input.SetValue("")
				return m, m.input.Focus()
			}

		case "esc":
			if m.state == stateLookup {
				m.state = stateBrowse
				m.input.Blur()
				m.table.Focus()
				return m, nil
			}

		case "enter":
			if m.state == stateLookup {
				m.lookup(m.input.Value())
				m.state = stateBrowse
				m.input.Blur()
				m.table.Focus()
				return m, nil
			}
			if row := m.table.SelectedRow(); row != nil {
				m.lookup(row[0])
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.state == stateLookup {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.table, cmd = m.table.Update(msg)
	}
	return m, cmd
}

// lookup resolves a typed or selected index and records the outcome.
func (m *interactiveModel) lookup(value string) {
	idx, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		m.result = fmt.Sprintf("invalid index %q", value)
		m.failed = true
		return
	}

	off, err := m.planner.OffsetForBuffer(m.reporter, idx)
	if err != nil {
		m.result = m.reporter.Last()
		m.failed = true
		return
	}
	m.result = fmt.Sprintf("buffer %d -> offset %d", idx, off)
	m.failed = false
	if idx < len(m.table.Rows()) {
		m.table.SetCursor(idx)
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Plan Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "buffers: %d   maximum memory size: %d\n\n", m.planner.BufferCount(), m.planner.MaximumMemorySize())

	if m.planner.BufferCount() == 0 {
		b.WriteString("Plan is empty.\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.state == stateLookup {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter resolve • esc back"))
		return b.String()
	}

	if m.result != "" {
		if m.failed {
			b.WriteString(errorStyle.Render(m.result))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ select • enter resolve • / lookup • q quit"))

	return b.String()
}

func runInteractive(filename string, p *offline.Planner) error {
	prog := tea.NewProgram(newInteractiveModel(filename, p), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
