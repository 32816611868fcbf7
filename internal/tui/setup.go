package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwolczyk/copilot-meter/internal/config"
	"github.com/mwolczyk/copilot-meter/internal/core"
)

// setupState holds the plan picker. It is rebuilt from scratch on every
// entry into the setup view, including settings re-entry.
type setupState struct {
	cursor      int
	customInput bool
	input       string
	status      string
}

func newSetupState() setupState {
	return setupState{}
}

func (m Model) handleSetupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.setup.customInput {
		return m.handleCustomQuotaKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.setup.cursor > 0 {
			m.setup.cursor--
		}
		return m, nil

	case "down", "j":
		if m.setup.cursor < len(core.PlanOptions)-1 {
			m.setup.cursor++
		}
		return m, nil

	case "enter":
		opt := core.PlanOptions[m.setup.cursor]
		if opt.Name == core.PlanCustom {
			m.setup.customInput = true
			m.setup.input = ""
			m.setup.status = ""
			return m, nil
		}
		return m, m.saveConfigCmd(config.Config{Quota: opt.Quota, Plan: opt.Name})
	}
	return m, nil
}

func (m Model) handleCustomQuotaKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.setup.customInput = false
		m.setup.input = ""
		m.setup.status = ""
		return m, nil

	case "enter":
		quota, err := strconv.Atoi(m.setup.input)
		if err != nil || quota <= 0 {
			m.setup.status = "enter a positive number"
			return m, nil
		}
		return m, m.saveConfigCmd(config.Config{Quota: float64(quota), Plan: core.PlanCustom})

	case "backspace":
		if len(m.setup.input) > 0 {
			m.setup.input = m.setup.input[:len(m.setup.input)-1]
		}
		m.setup.status = ""
		return m, nil

	default:
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				if r >= '0' && r <= '9' {
					m.setup.input += string(r)
				}
			}
			m.setup.status = ""
		}
		return m, nil
	}
}
