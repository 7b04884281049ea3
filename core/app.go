package core

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/venturedesk/widgets"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Tab is a routed top-level view.
type Tab interface {
	ID() string
	Title() string
	Route() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

type PaneKeyHandler interface {
	HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd)
	ActivePaneTitle() string
}

// TextCapturer is implemented by tabs that can hold a focused text field.
// While CapturingText is true, printable keys bypass global bindings.
type TextCapturer interface {
	CapturingText() bool
}

type AppData struct {
	AppName string
	User    string
}

type Model struct {
	width               int
	height              int
	tabs                []Tab
	activeTab           int
	screens             ScreenStack
	keys                *KeyRegistry
	commands            *CommandRegistry
	status              string
	statusErr           bool
	quitting            bool
	Data                AppData
	Log                 *zap.Logger
	OpenCommandModal    func(m *Model, scope string) Screen
	OpenJumpPickerModal func(m *Model, targets []JumpTarget) Screen
	OpenAlertModal      func(m *Model, title, message string) Screen
}

func NewModel(tabs []Tab, keys *KeyRegistry, commands *CommandRegistry, log *zap.Logger, data AppData) Model {
	if keys == nil {
		keys = NewKeyRegistry(nil)
	}
	if commands == nil {
		commands = NewCommandRegistry(nil)
	}
	if log == nil {
		log = zap.NewNop()
	}
	if data.AppName == "" {
		data.AppName = "VentureDesk"
	}
	return Model{
		tabs:      tabs,
		keys:      keys,
		commands:  commands,
		Log:       log,
		Data:      data,
		status:    "Ready",
		activeTab: 0,
		width:     100,
		height:    32,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if len(m.tabs) == 0 {
		return "app"
	}
	return m.tabs[m.activeTab].Scope()
}

func (m Model) ActiveTab() Tab {
	if len(m.tabs) == 0 {
		return nil
	}
	return m.tabs[m.activeTab]
}

func (m Model) Tabs() []Tab {
	return m.tabs
}

func (m *Model) SwitchTab(index int) {
	if index < 0 || index >= len(m.tabs) {
		return
	}
	if index != m.activeTab {
		m.Logger().Debug("tab switched", zap.String("route", m.tabs[index].Route()))
	}
	m.activeTab = index
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m Model) ScreenDepth() int {
	return m.screens.Len()
}

func (m Model) TopScreen() Screen {
	return m.screens.Top()
}

// Alert pushes a blocking notification. Without an alert factory the
// message lands on the status bar instead.
func (m *Model) Alert(title, message string) {
	if m.OpenAlertModal == nil {
		m.SetStatus(message)
		return
	}
	m.screens.Push(m.OpenAlertModal(m, title, message))
}

// Logger falls back to a no-op logger on zero-value models.
func (m *Model) Logger() *zap.Logger {
	if m.Log == nil {
		return zap.NewNop()
	}
	return m.Log
}

func (m *Model) Keys() *KeyRegistry {
	if m.keys == nil {
		m.keys = NewKeyRegistry(nil)
	}
	return m.keys
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m Model) capturingText() bool {
	if len(m.tabs) == 0 {
		return false
	}
	tc, ok := m.tabs[m.activeTab].(TextCapturer)
	return ok && tc.CapturingText()
}
