package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case DataLoadedMsg:
		if msg.Err != nil {
			m.SetError(msg.Err)
		} else {
			m.SetStatus("Data loaded: " + msg.Key)
		}
		return m, nil
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case TabSwitchMsg:
		return m, m.SwitchTab(msg.Index)
	case JumpTargetSelectedMsg:
		if len(m.tabs) == 0 {
			return m, nil
		}
		provider, ok := m.tabs[m.activeTab].(JumpTargetProvider)
		if !ok {
			return m, nil
		}
		handled, cmd := provider.JumpToTarget(&m, msg.Key)
		if handled {
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		if top := m.screens.Top(); top != nil {
			next, cmd, pop := top.Update(msg)
			if pop {
				m.screens.Pop()
				return m, cmd
			}
			if next != nil {
				m.screens.items[len(m.screens.items)-1] = next
			}
			return m, cmd
		}

		if m.menu.OpenIndex() >= 0 {
			return m.handleMenuKey(msg)
		}

		scope := m.ActiveScope()
		if m.keys.IsAction(msg, "quit", scope) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.keys.IsAction(msg, "jump", scope) {
			return m, m.activateJumpPicker()
		}
		if m.keys.IsAction(msg, "menu", scope) {
			m.menu.ToggleAt(0)
			m.SetStatus("Menu open")
			return m, nil
		}
		if len(m.tabs) > 0 {
			if handler, ok := m.tabs[m.activeTab].(PaneKeyHandler); ok {
				handled, cmd := handler.HandlePaneKey(&m, msg)
				if handled {
					return m, cmd
				}
			}
		}
		if m.keys.IsAction(msg, "open-command-palette", scope) && m.OpenCommandModal != nil {
			m.screens.Push(m.OpenCommandModal(&m, scope))
			return m, nil
		}
		for i := range m.tabs {
			if m.keys.IsAction(msg, fmt.Sprintf("switch-tab-%d", i+1), scope) {
				return m, m.SwitchTab(i)
			}
		}
		if len(m.tabs) > 0 {
			return m, m.tabs[m.activeTab].Update(&m, msg)
		}
	}

	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.screens.Pop()
			return m, cmd
		}
		if next != nil {
			m.screens.items[len(m.screens.items)-1] = next
		}
		return m, cmd
	}
	if len(m.tabs) > 0 {
		return m, m.tabs[m.activeTab].Update(&m, msg)
	}
	return m, nil
}

// handleMenuKey owns every key while a submenu is open. Keys that are not
// menu navigation close all submenus, mirroring a click outside the menu.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.menu.CloseAll()
		m.SetStatus("Menu closed")
		return m, nil
	case "left":
		m.menu.MoveItem(-1)
		return m, nil
	case "right":
		m.menu.MoveItem(1)
		return m, nil
	case "up":
		m.menu.MoveCursor(-1)
		return m, nil
	case "down":
		m.menu.MoveCursor(1)
		return m, nil
	case "enter":
		entry, ok := m.menu.Select()
		if !ok {
			return m, nil
		}
		if entry.Action.TabIndex >= 0 {
			m.SetStatus("Switched to " + entry.Label)
			return m, m.SwitchTab(entry.Action.TabIndex)
		}
		if entry.Action.CommandID != "" {
			return m, m.commands.Execute(entry.Action.CommandID, &m)
		}
		return m, nil
	default:
		m.menu.CloseAll()
		return m, nil
	}
}
