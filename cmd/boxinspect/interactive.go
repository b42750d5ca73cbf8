package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	all      []sample
	visible  []sample
	filter   textinput.Model
	result   string
	selected int
}

func newInteractiveModel(samples []sample) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.Prompt = "/ "
	ti.Focus()

	return &interactiveModel{
		all:     samples,
		visible: samples,
		filter:  ti,
	}
}

type roundMsg struct {
	err   error
	name  string
	stats roundStats
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) runSelected() tea.Msg {
	s := m.visible[m.selected]
	stats, err := s.round()
	return roundMsg{name: s.name, stats: stats, err: err}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down":
			if m.selected < len(m.visible)-1 {
				m.selected++
			}
			return m, nil
		case "enter":
			if len(m.visible) == 0 {
				return m, nil
			}
			return m, m.runSelected
		}

	case roundMsg:
		m.err = msg.err
		if msg.err == nil {
			m.result = msg.name + ": " + msg.stats.String()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.visible = filterSamples(m.all, m.filter.Value())
	if m.selected >= len(m.visible) {
		m.selected = max(len(m.visible)-1, 0)
	}
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("box storage inspector"))
	b.WriteString("\n\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	for i, s := range m.visible {
		line := fmt.Sprintf("%-16s %-7s size=%-3d align=%d", s.name, s.desc.Storage, s.desc.Size, s.desc.Align)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteByte('\n')
	} else if m.result != "" {
		b.WriteString(resultStyle.Render(m.result))
		b.WriteByte('\n')
	}

	b.WriteString(helpStyle.Render("↑/↓ select • enter run round • type to filter • esc quit"))
	return b.String()
}

func runInteractive(samples []sample) error {
	p := tea.NewProgram(newInteractiveModel(samples))
	_, err := p.Run()
	return err
}
