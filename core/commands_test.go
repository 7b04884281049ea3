package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestSearchFiltersByScopeAndDisabled(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Alpha", Scopes: []string{"tab:a"}},
		{ID: "b", Name: "Beta", Scopes: []string{"tab:b"}, Disabled: func(m *Model) (bool, string) { return true, "blocked" }},
	})
	m := NewModel(nil, nil, reg, nil, AppData{})
	resA := reg.Search("", "tab:a", &m)
	if len(resA) != 1 || resA[0].CommandID != "a" {
		t.Fatalf("expected only command a in tab:a, got %+v", resA)
	}
	resB := reg.Search("", "tab:b", &m)
	if len(resB) != 1 || !resB[0].Disabled || resB[0].Reason != "blocked" {
		t.Fatalf("expected disabled command in tab:b, got %+v", resB)
	}
}

func TestSearchToleratesOneTypo(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "calendar.export", Name: "Export calendar", Description: "Export meetings"},
		{ID: "nav.security", Name: "Go to Security"},
	})
	m := NewModel(nil, nil, reg, nil, AppData{})

	res := reg.Search("expirt", "pane:calendar:date", &m)
	require.Len(t, res, 1)
	require.Equal(t, "calendar.export", res[0].CommandID)

	res = reg.Search("go sec", "pane:calendar:date", &m)
	require.Len(t, res, 1)
	require.Equal(t, "nav.security", res[0].CommandID)

	require.Empty(t, reg.Search("zzz", "pane:calendar:date", &m))
}

func TestSearchOrdersEnabledBeforeDisabled(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Aardvark", Disabled: func(*Model) (bool, string) { return true, "" }},
		{ID: "z", Name: "Zebra"},
	})
	m := NewModel(nil, nil, reg, nil, AppData{})
	res := reg.Search("", "tab:x", &m)
	require.Len(t, res, 2)
	require.Equal(t, "z", res[0].CommandID)
	require.Equal(t, "a", res[1].CommandID)
}

func TestExecuteDisabledReportsReason(t *testing.T) {
	ran := false
	reg := NewCommandRegistry([]Command{
		{ID: "x", Name: "X", Execute: func(*Model) tea.Cmd { ran = true; return nil }, Disabled: func(*Model) (bool, string) { return true, "" }},
	})
	m := NewModel(nil, nil, reg, nil, AppData{})
	cmd := reg.Execute("x", &m)
	require.NotNil(t, cmd)
	require.False(t, ran)
	require.Equal(t, StatusMsg{Text: "command is disabled"}, cmd())

	cmd = reg.Execute("missing", &m)
	require.Equal(t, StatusMsg{Text: "Unknown command: missing"}, cmd())
}
