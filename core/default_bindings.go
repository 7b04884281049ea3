package core

import (
	"fmt"
	"strings"
)

// Scopes used by the default bindings.
const (
	ScopeAnyPane          = "pane:*"
	ScopeCalendarPanes    = "pane:calendar:*"
	ScopeCalendarDate     = "pane:calendar:date"
	ScopeCalendarForm     = "pane:calendar:form"
	ScopeCalendarMeetings = "pane:calendar:meetings"
	ScopeCalendarStats    = "pane:calendar:stats"
	ScopeAlert            = "screen:alert"
	ScopeCommand          = "screen:command"
	ScopeJumpPicker       = "screen:jump-picker"
)

// MaxTabs is the number of switch-tab-N actions bound by default.
const MaxTabs = 6

func DefaultKeyBindings() []KeyBinding {
	bindings := []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{"tab:*", ScopeAnyPane}},
		{Keys: []string{"v"}, Action: "jump", Description: "jump", Scopes: []string{ScopeAnyPane}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{"tab:*", ScopeAnyPane}},
		{Keys: []string{"1-6"}, Action: "switch-tab-help", Description: "views", Scopes: []string{"tab:*", ScopeAnyPane}},
		{Keys: []string{"left", "right", "up", "down"}, Action: "pane-nav", Description: "panes", Scopes: []string{ScopeAnyPane}, Hidden: true},
		{Keys: []string{"enter"}, Action: "pane-focus", Description: "focus", Scopes: []string{ScopeAnyPane}},
		{Keys: []string{"esc"}, Action: "pane-blur", Description: "unfocus", Scopes: []string{ScopeAnyPane}},

		{Keys: []string{"e"}, Action: "calendar-export", Description: "export", Scopes: []string{ScopeCalendarPanes}},
		{Keys: []string{"t"}, Action: "calendar-today", Description: "today", Scopes: []string{ScopeCalendarDate}},
		{Keys: []string{"pgup"}, Action: "calendar-prev-month", Description: "prev month", Scopes: []string{ScopeCalendarDate}},
		{Keys: []string{"pgdown"}, Action: "calendar-next-month", Description: "next month", Scopes: []string{ScopeCalendarDate}},
		{Keys: []string{"tab"}, Action: "form-next-field", Description: "next field", Scopes: []string{ScopeCalendarForm}},
		{Keys: []string{"shift+tab"}, Action: "form-prev-field", Description: "prev field", Scopes: []string{ScopeCalendarForm}, Hidden: true},
		{Keys: []string{"enter", "ctrl+s"}, Action: "form-submit", Description: "add slot", Scopes: []string{ScopeCalendarForm}},
		{Keys: []string{"j", "down"}, Action: "list-down", Description: "next", Scopes: []string{ScopeCalendarMeetings}},
		{Keys: []string{"k", "up"}, Action: "list-up", Description: "prev", Scopes: []string{ScopeCalendarMeetings}},
		{Keys: []string{"a"}, Action: "meeting-accept", Description: "accept", Scopes: []string{ScopeCalendarMeetings}},
		{Keys: []string{"d"}, Action: "meeting-decline", Description: "decline", Scopes: []string{ScopeCalendarMeetings}},

		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{ScopeAlert, ScopeCommand, ScopeJumpPicker}},
		{Keys: []string{"enter"}, Action: "select", Description: "ok", Scopes: []string{ScopeAlert, ScopeCommand, ScopeJumpPicker}},
	}
	for i := 1; i <= MaxTabs; i++ {
		bindings = append(bindings, KeyBinding{
			Keys:   []string{fmt.Sprint(i)},
			Action: fmt.Sprintf("switch-tab-%d", i),
			Scopes: []string{"tab:*", ScopeAnyPane},
			Hidden: true,
		})
	}
	return bindings
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
			Hidden:      b.Hidden,
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
