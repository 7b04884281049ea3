package core

import tea "github.com/charmbracelet/bubbletea"

// JumpTarget is a pane reachable through the jump picker.
type JumpTarget struct {
	Key   string
	Label string
}

type JumpTargetProvider interface {
	JumpTargets() []JumpTarget
	JumpToTarget(m *Model, key string) (bool, tea.Cmd)
}

type JumpTargetSelectedMsg struct {
	Key string
}
