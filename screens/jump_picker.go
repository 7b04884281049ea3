package screens

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/venturedesk/core"
)

// JumpPickerScreen lists the active tab's panes. Typing a pane's key jumps
// straight to it; other input filters the list.
type JumpPickerScreen struct {
	targetByK map[string]core.JumpTarget
	picker    *core.Picker
}

func NewJumpPickerScreen(targets []core.JumpTarget) *JumpPickerScreen {
	items := make([]core.PickerItem, 0, len(targets))
	targetByK := make(map[string]core.JumpTarget, len(targets))
	for _, target := range targets {
		key := normalizeJumpKey(target.Key)
		if key == "" {
			continue
		}
		target.Key = key
		targetByK[key] = target
		items = append(items, core.PickerItem{
			ID:    key,
			Label: fmt.Sprintf("[%s] %s", key, target.Label),
		})
	}
	return &JumpPickerScreen{targetByK: targetByK, picker: core.NewPicker("Jump to pane", items)}
}

func (s *JumpPickerScreen) Title() string { return s.picker.Title() }
func (s *JumpPickerScreen) Scope() string { return core.ScopeJumpPicker }

func (s *JumpPickerScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	keyName := strings.ToLower(strings.TrimSpace(keyMsg.String()))
	if target, found := s.targetByK[keyName]; found && s.picker.Query() == "" {
		return s, selectJump(target.Key), true
	}
	result := s.picker.HandleKey(keyName)
	switch result.Action {
	case core.PickerActionCancelled:
		return s, nil, true
	case core.PickerActionSelected:
		return s, selectJump(result.Item.ID), true
	default:
		return s, nil, false
	}
}

func selectJump(key string) tea.Cmd {
	return func() tea.Msg { return core.JumpTargetSelectedMsg{Key: key} }
}

func (s *JumpPickerScreen) View(width, height int) string {
	q := strings.TrimSpace(s.picker.Query())
	if q == "" {
		q = "(type a pane key to jump)"
	}
	lines := []string{s.picker.Title(), "Filter: " + q, ""}
	items := s.picker.Items()
	if len(items) == 0 {
		lines = append(lines, "  No jump targets")
	}
	cursor := s.picker.Cursor()
	for i, item := range items {
		prefix := "  "
		if i == cursor {
			prefix = "> "
		}
		lines = append(lines, prefix+item.Label)
	}
	lines = append(lines, "", "Enter selects row. Esc cancels.")
	return core.ClipHeight(core.TrimToWidth(strings.Join(lines, "\n"), max(20, width)), max(6, height))
}

func normalizeJumpKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	r := []rune(k)
	if len(r) != 1 || (!unicode.IsLetter(r[0]) && !unicode.IsDigit(r[0])) {
		return ""
	}
	return k
}
