package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/xpulp-testgen/driver"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectVariant modelState = iota
	stateInputOperands
	stateShowResult
)

type interactiveModel struct {
	err      error
	drv      *driver.Driver
	eval     *evaluation
	variants []driver.Variant
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
}

func newInteractiveModel(drv *driver.Driver, variants []driver.Variant) *interactiveModel {
	return &interactiveModel{
		drv:      drv,
		variants: variants,
		state:    stateSelectVariant,
	}
}

type evalResultMsg struct {
	err  error
	eval *evaluation
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputOperands {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectVariant && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectVariant && m.selected < len(m.variants)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectVariant:
				if len(m.variants) == 0 {
					return m, nil
				}
				m.prepareInputs()
				m.state = stateInputOperands
				return m, textinput.Blink

			case stateInputOperands:
				return m, m.evaluate

			case stateShowResult:
				m.reset()
			}

		case "tab":
			if m.state == stateInputOperands {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputOperands:
				m.state = stateSelectVariant
				m.inputs = nil
			case stateShowResult:
				m.reset()
			}
		}

	case evalResultMsg:
		m.eval = msg.eval
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputOperands {
		cmds := make([]tea.Cmd, 0, len(m.inputs))
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) reset() {
	m.state = stateSelectVariant
	m.inputs = nil
	m.eval = nil
	m.err = nil
}

func (m *interactiveModel) prepareInputs() {
	v := m.variants[m.selected]
	spec := v.Kind.Spec()

	src1 := textinput.New()
	src1.Prompt = "src1: "
	src1.Placeholder = v.Src1.String()
	src1.Width = 40
	src1.Focus()

	src2 := textinput.New()
	src2.Prompt = spec.Param + ": "
	src2.Placeholder = v.Src2.String()
	src2.Width = 40

	m.inputs = []textinput.Model{src1, src2}
	m.focusIdx = 0
}

func (m *interactiveModel) evaluate() tea.Msg {
	v := m.variants[m.selected]
	ev, err := evaluate(m.drv, v, m.inputs[0].Value(), m.inputs[1].Value())
	return evalResultMsg{eval: ev, err: err}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("PULP SIMD test vectors"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectVariant:
		if len(m.variants) == 0 {
			b.WriteString("No variants selected.\n\n")
			b.WriteString(helpStyle.Render("q quit"))
			break
		}
		b.WriteString("Select an instruction:\n\n")
		for i, v := range m.variants {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + formatVariant(v)))
			} else {
				b.WriteString("  " + formatVariant(v))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter evaluate • q quit"))

	case stateInputOperands:
		v := m.variants[m.selected]
		fmt.Fprintf(&b, "Evaluating %s\n\n", opStyle.Render(v.Mnemonic))
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter evaluate • esc back"))

	case stateShowResult:
		v := m.variants[m.selected]
		fmt.Fprintf(&b, "Result of %s:\n\n", opStyle.Render(v.Mnemonic))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			ev := m.eval
			b.WriteString(resultStyle.Render(ev.line))
			b.WriteString("\n\n")
			fmt.Fprintf(&b, "src1   %s\n", formatLanes(ev.src1Lanes))
			fmt.Fprintf(&b, "src2   %s\n", formatLanes(ev.src2Lanes))
			fmt.Fprintf(&b, "result %s = 0x%08x (%d)", formatLanes(ev.resLanes), ev.res, ev.value)
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func formatVariant(v driver.Variant) string {
	return fmt.Sprintf("%-16s %s %s", v.Mnemonic, typeStyle.Render(v.Kind.String()), v.Width)
}

func runInteractive(cfg driver.Config, variants []driver.Variant) error {
	drv, err := driver.New(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(newInteractiveModel(drv, variants), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
