package screens

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/venturedesk/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAlertSwallowsKeysUntilDismissed(t *testing.T) {
	s := NewAlertScreen("", "Availability slot added successfully!", nil)
	if s.Title() != "Notice" {
		t.Fatalf("blank title should default to Notice, got %q", s.Title())
	}
	if _, _, pop := s.Update(runeKey("q")); pop {
		t.Fatalf("q should not dismiss the alert")
	}
	if _, _, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter}); !pop {
		t.Fatalf("enter should dismiss the alert")
	}
	if _, _, pop := s.Update(tea.KeyMsg{Type: tea.KeyEsc}); !pop {
		t.Fatalf("esc should dismiss the alert")
	}
	if !strings.Contains(s.View(60, 10), "Availability slot added successfully!") {
		t.Fatalf("view should contain the message")
	}
}

func TestAlertFollowsReboundKeys(t *testing.T) {
	bindings := core.ApplyActionKeybindings(core.DefaultKeyBindings(), map[string][]string{"select": {"o"}})
	s := NewAlertScreen("Export", "Calendar exported!", core.NewKeyRegistry(bindings))
	if _, _, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter}); pop {
		t.Fatalf("enter is no longer bound and should not dismiss")
	}
	if _, _, pop := s.Update(runeKey("o")); !pop {
		t.Fatalf("o is bound to select and should dismiss")
	}
	if _, _, pop := s.Update(tea.KeyMsg{Type: tea.KeyEsc}); !pop {
		t.Fatalf("esc is still bound to close")
	}
	if view := s.View(60, 10); !strings.Contains(view, "o/esc to dismiss") {
		t.Fatalf("hint should list the bound keys, got %q", view)
	}
}

func TestAlertBlocksModelUntilDismissed(t *testing.T) {
	m := core.NewModel(nil, nil, nil, nil, core.AppData{})
	m.OpenAlertModal = func(_ *core.Model, title, message string) core.Screen {
		return NewAlertScreen(title, message, nil)
	}
	m.Alert("Export", "Calendar exported! In a real app, this would download a file.")
	if m.ScreenDepth() != 1 || m.ActiveScope() != core.ScopeAlert {
		t.Fatalf("alert should be on top, scope %q", m.ActiveScope())
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if next.(core.Model).ScreenDepth() != 0 {
		t.Fatalf("enter should close the alert")
	}
}

func TestCommandScreenSelectsFirstMatch(t *testing.T) {
	reg := core.NewCommandRegistry([]core.Command{
		{ID: "nav.calendar", Name: "Go to Meeting Scheduler"},
		{ID: "calendar.export", Name: "Export calendar"},
	})
	m := core.NewModel(nil, nil, reg, nil, core.AppData{})
	s := NewCommandScreenFor(&m, "tab:x")

	for _, r := range "export" {
		s.Update(runeKey(string(r)))
	}
	id, ok := s.Selected()
	if !ok || id != "calendar.export" {
		t.Fatalf("selected = %q ok=%v, want calendar.export", id, ok)
	}
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop || cmd == nil {
		t.Fatalf("enter should close the palette with a command")
	}
	if msg, ok := cmd().(core.CommandExecuteMsg); !ok || msg.CommandID != "calendar.export" {
		t.Fatalf("unexpected message %#v", cmd())
	}
}

func TestCommandScreenDisabledReportsReason(t *testing.T) {
	reg := core.NewCommandRegistry([]core.Command{
		{ID: "x", Name: "Blocked", Disabled: func(*core.Model) (bool, string) { return true, "not now" }},
	})
	m := core.NewModel(nil, nil, reg, nil, core.AppData{})
	s := NewCommandScreenFor(&m, "tab:x")
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop {
		t.Fatalf("enter should close the palette")
	}
	if msg := cmd().(core.StatusMsg); msg.Text != "not now" {
		t.Fatalf("status = %q, want not now", msg.Text)
	}
}

func TestJumpPickerDirectKeyAndFilter(t *testing.T) {
	targets := []core.JumpTarget{
		{Key: "c", Label: "Select Date"},
		{Key: "M", Label: "Scheduled Meetings"},
		{Key: "!", Label: "Ignored"},
	}
	s := NewJumpPickerScreen(targets)
	if got := len(s.picker.Items()); got != 2 {
		t.Fatalf("items = %d, want 2", got)
	}

	_, cmd, pop := s.Update(runeKey("m"))
	if !pop {
		t.Fatalf("pane key should jump immediately")
	}
	if msg := cmd().(core.JumpTargetSelectedMsg); msg.Key != "m" {
		t.Fatalf("jump key = %q, want m", msg.Key)
	}

	s = NewJumpPickerScreen(targets)
	_, _, pop = s.Update(runeKey("x"))
	if pop {
		t.Fatalf("unknown key should filter, not close")
	}
	if _, _, pop := s.Update(tea.KeyMsg{Type: tea.KeyEsc}); !pop {
		t.Fatalf("esc should cancel")
	}
}
