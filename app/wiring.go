package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/venturedesk/core"
	"github.com/jask/venturedesk/internal/calendar"
	"github.com/jask/venturedesk/internal/config"
	"github.com/jask/venturedesk/screens"
	"github.com/jask/venturedesk/tabs"
)

// Deps carries what the views need from startup.
type Deps struct {
	Config config.Config
	Book   *calendar.Book
	Log    *zap.Logger
	Now    func() time.Time
}

func (d Deps) now() func() time.Time {
	if d.Now == nil {
		return time.Now
	}
	return d.Now
}

// Tabs returns the routed views in tab-bar order.
func Tabs(d Deps) []core.Tab {
	book := d.Book
	if book == nil {
		book = calendar.NewBook(nil)
	}
	// The dashboard keeps its own copy; later scheduler changes do not reach it.
	overview := calendar.NewBook(book.Meetings())
	return []core.Tab{
		tabs.NewDashboardTab(overview, d.now(), d.Config.UI.DateFormat),
		tabs.NewCalendarTab(book, tabs.CalendarOptions{
			DateFormat: d.Config.UI.DateFormat,
			Draft:      d.Config.Draft(),
			Durations:  d.Config.Calendar.Durations,
			Now:        d.now(),
		}),
		tabs.NewVideoCallTab(),
		tabs.NewDocumentsTab(),
		tabs.NewPaymentsTab(),
		tabs.NewSecurityTab(),
	}
}

// NewModel wires tabs, bindings, commands and screens, then routes to the
// configured start route.
func NewModel(d Deps) core.Model {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	all := Tabs(d)
	m := core.NewModel(all,
		core.NewKeyRegistry(KeyBindings(d.Config.Keybindings, log)),
		core.NewCommandRegistry(nil),
		log,
		core.AppData{User: d.Config.User.Name},
	)
	ConfigureModel(&m)
	RegisterCommands(m.CommandRegistry(), all)
	route := d.Config.UI.StartRoute
	if route == "" {
		route = "/"
	}
	m.Navigate(route)
	return m
}

// KeyBindings returns the default bindings with the configured per-action
// keys applied. Overrides for actions that have no binding are dropped.
func KeyBindings(overrides map[string][]string, log *zap.Logger) []core.KeyBinding {
	defaults := core.DefaultKeyBindings()
	known := core.DefaultKeybindingsByAction(defaults)
	apply := make(map[string][]string, len(overrides))
	for action, keys := range overrides {
		if _, ok := known[action]; !ok {
			log.Warn("unknown keybinding action", zap.String("action", action))
			continue
		}
		apply[action] = keys
	}
	return core.ApplyActionKeybindings(defaults, apply)
}

func ConfigureModel(m *core.Model) {
	if m == nil {
		return
	}
	m.OpenAlertModal = func(model *core.Model, title, message string) core.Screen {
		return screens.NewAlertScreen(title, message, model.Keys())
	}
	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		return screens.NewCommandScreenFor(model, scope)
	}
	m.OpenJumpPickerModal = func(_ *core.Model, targets []core.JumpTarget) core.Screen {
		return screens.NewJumpPickerScreen(targets)
	}
}

// RegisterCommands adds a navigation command per tab plus the scheduler
// commands.
func RegisterCommands(reg *core.CommandRegistry, all []core.Tab) {
	for _, t := range all {
		route := t.Route()
		reg.Register(core.Command{
			ID:          "nav" + route,
			Name:        "Go to " + t.Title(),
			Description: route,
			Execute: func(m *core.Model) tea.Cmd {
				m.Navigate(route)
				return nil
			},
		})
	}

	calendarTab := func() *tabs.CalendarTab {
		for _, t := range all {
			if ct, ok := t.(*tabs.CalendarTab); ok {
				return ct
			}
		}
		return nil
	}
	reg.Register(core.Command{
		ID:          "calendar.export",
		Name:        "Export calendar",
		Description: "Collate every meeting into export rows",
		Execute: func(m *core.Model) tea.Cmd {
			return calendarTab().Export(m)
		},
		Disabled: func(*core.Model) (bool, string) {
			if calendarTab() == nil {
				return true, "no scheduler view"
			}
			return false, ""
		},
	})
	reg.Register(core.Command{
		ID:          "app.quit",
		Name:        "Quit",
		Description: "Leave VentureDesk",
		Execute: func(*core.Model) tea.Cmd {
			return tea.Quit
		},
	})
}
