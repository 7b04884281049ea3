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
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case CommandExecuteMsg:
		cmd := m.commands.Execute(msg.CommandID, &m)
		return m, cmd
	case TabSwitchMsg:
		m.SwitchTab(msg.Index)
		return m, nil
	case NavigateMsg:
		m.Navigate(msg.Path)
		return m, nil
	case JumpTargetSelectedMsg:
		if len(m.tabs) == 0 {
			return m, nil
		}
		provider, ok := m.tabs[m.activeTab].(JumpTargetProvider)
		if !ok {
			return m, nil
		}
		_, cmd := provider.JumpToTarget(&m, msg.Key)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if top := m.screens.Top(); top != nil {
		return m.updateTopScreen(top, msg)
	}
	if len(m.tabs) > 0 {
		cmd := m.tabs[m.activeTab].Update(&m, msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if top := m.screens.Top(); top != nil {
		return m.updateTopScreen(top, msg)
	}
	if len(m.tabs) == 0 {
		return m, nil
	}

	if m.capturingText() {
		if handler, ok := m.tabs[m.activeTab].(PaneKeyHandler); ok && msg.Type == tea.KeyEsc {
			if handled, cmd := handler.HandlePaneKey(&m, msg); handled {
				return m, cmd
			}
		}
		cmd := m.tabs[m.activeTab].Update(&m, msg)
		return m, cmd
	}

	scope := m.ActiveScope()
	if m.keys.IsAction(msg, "quit", scope) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.keys.IsAction(msg, "jump", scope) {
		cmd := m.activateJumpPicker()
		return m, cmd
	}
	if handler, ok := m.tabs[m.activeTab].(PaneKeyHandler); ok {
		if handled, cmd := handler.HandlePaneKey(&m, msg); handled {
			return m, cmd
		}
	}
	if m.keys.IsAction(msg, "open-command-palette", scope) && m.OpenCommandModal != nil {
		m.screens.Push(m.OpenCommandModal(&m, scope))
		return m, nil
	}
	for i := range m.tabs {
		if m.keys.IsAction(msg, fmt.Sprintf("switch-tab-%d", i+1), scope) {
			m.SwitchTab(i)
			m.SetStatus(m.tabs[i].Title())
			return m, nil
		}
	}
	cmd := m.tabs[m.activeTab].Update(&m, msg)
	return m, cmd
}

func (m Model) updateTopScreen(top Screen, msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd, pop := top.Update(msg)
	if pop {
		m.screens.Pop()
		return m, cmd
	}
	m.screens.replaceTop(next)
	return m, cmd
}

func (m *Model) activateJumpPicker() tea.Cmd {
	if len(m.tabs) == 0 || m.OpenJumpPickerModal == nil {
		return nil
	}
	provider, ok := m.tabs[m.activeTab].(JumpTargetProvider)
	if !ok {
		return StatusCmd("No jump targets in " + m.tabs[m.activeTab].Title())
	}
	targets := provider.JumpTargets()
	if len(targets) == 0 {
		return StatusCmd("No jump targets in " + m.tabs[m.activeTab].Title())
	}
	m.screens.Push(m.OpenJumpPickerModal(m, targets))
	return nil
}
