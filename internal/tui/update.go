package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages (required by tea.Model interface)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case calculatedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.report, m.err = msg.report, msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// digits and editing keys belong to the focused field
	if isAmountEdit(msg) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		calc := m.calculate()
		return m, tea.Batch(cmd, calc)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Next):
		cmd := m.setFocus((m.focus + 1) % fieldCount)
		return m, cmd

	case key.Matches(msg, m.keys.Prev):
		cmd := m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, cmd

	case key.Matches(msg, m.keys.SelfEmployed):
		m.selfEmployed = !m.selfEmployed

	case key.Matches(msg, m.keys.Married):
		m.married = !m.married

	case key.Matches(msg, m.keys.Reverse):
		m.reverse = !m.reverse

	case key.Matches(msg, m.keys.NextYear):
		m.yearIdx = (m.yearIdx + 1) % len(m.years)

	case key.Matches(msg, m.keys.PrevYear):
		m.yearIdx = (m.yearIdx + len(m.years) - 1) % len(m.years)

	default:
		return m, nil
	}

	cmd := m.calculate()
	return m, cmd
}

func (m *Model) setFocus(field int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = field
	return m.inputs[m.focus].Focus()
}

func isAmountEdit(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd:
		return true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if !unicode.IsDigit(r) {
				return false
			}
		}
		return len(msg.Runes) > 0
	}
	return false
}
