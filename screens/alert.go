package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/venturedesk/core"
)

var (
	alertTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	alertHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	alertOKStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#2563eb")).Padding(0, 2)
)

// AlertScreen is a blocking notification. Keys bound to select or close
// in the alert scope dismiss it; every other key is swallowed.
type AlertScreen struct {
	title   string
	message string
	keys    *core.KeyRegistry
}

// NewAlertScreen builds an alert. A nil registry uses the default bindings.
func NewAlertScreen(title, message string, keys *core.KeyRegistry) *AlertScreen {
	if strings.TrimSpace(title) == "" {
		title = "Notice"
	}
	if keys == nil {
		keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	return &AlertScreen{title: title, message: message, keys: keys}
}

func (s *AlertScreen) Title() string   { return s.title }
func (s *AlertScreen) Scope() string   { return core.ScopeAlert }
func (s *AlertScreen) Message() string { return s.message }

func (s *AlertScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	if s.keys.IsAction(km, "select", core.ScopeAlert) || s.keys.IsAction(km, "close", core.ScopeAlert) {
		return s, nil, true
	}
	return s, nil, false
}

func (s *AlertScreen) View(width, height int) string {
	inner := max(20, min(width, 64))
	body := lipgloss.NewStyle().Width(inner).Render(s.message)
	lines := []string{
		alertTitleStyle.Render(s.title),
		"",
		body,
		"",
		alertOKStyle.Render("OK") + "  " + alertHintStyle.Render(s.dismissHint()),
	}
	return core.ClipHeight(core.TrimToWidth(strings.Join(lines, "\n"), max(20, width)), max(4, height))
}

func (s *AlertScreen) dismissHint() string {
	keys := append(s.keys.KeysFor("select", core.ScopeAlert), s.keys.KeysFor("close", core.ScopeAlert)...)
	if len(keys) == 0 {
		return ""
	}
	return strings.Join(keys, "/") + " to dismiss"
}
