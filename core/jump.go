package core

import tea "github.com/charmbracelet/bubbletea"

type JumpTarget struct {
	Key   string
	Label string
}

type JumpTargetProvider interface {
	JumpTargets() []JumpTarget
	JumpToTarget(m *Model, key string) (bool, tea.Cmd)
}

func (m *Model) activateJumpPicker() tea.Cmd {
	if len(m.tabs) == 0 || m.OpenJumpPickerModal == nil {
		return nil
	}
	provider, ok := m.tabs[m.activeTab].(JumpTargetProvider)
	if !ok {
		m.SetStatus("No jump targets on this tab")
		return nil
	}
	targets := provider.JumpTargets()
	if len(targets) == 0 {
		m.SetStatus("No jump targets on this tab")
		return nil
	}
	m.screens.Push(m.OpenJumpPickerModal(m, targets))
	return nil
}
