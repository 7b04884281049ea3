package tabs

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/venturedesk/core"
	"github.com/jask/venturedesk/widgets"
)

// Pane is one selectable region of a tab.
type Pane interface {
	ID() string
	Title() string
	Scope() string
	JumpKey() byte
	Focusable() bool
	Update(m *core.Model, msg tea.Msg) tea.Cmd
	View(width, height int, selected, focused bool) string
	OnFocus() tea.Cmd
	OnBlur() tea.Cmd
}

// StaticPane renders fixed text. The stub views are built from these.
type StaticPane struct {
	id     string
	title  string
	scope  string
	jump   byte
	focus  bool
	text   string
	height int
}

func NewStaticPane(id, title, scope string, jumpKey byte, focusable bool, text string, height int) *StaticPane {
	return &StaticPane{id: id, title: title, scope: scope, jump: jumpKey, focus: focusable, text: text, height: height}
}

func (p *StaticPane) ID() string                          { return p.id }
func (p *StaticPane) Title() string                       { return p.title }
func (p *StaticPane) Scope() string                       { return p.scope }
func (p *StaticPane) JumpKey() byte                       { return p.jump }
func (p *StaticPane) Focusable() bool                     { return p.focus }
func (p *StaticPane) Update(*core.Model, tea.Msg) tea.Cmd { return nil }
func (p *StaticPane) OnFocus() tea.Cmd                    { return nil }
func (p *StaticPane) OnBlur() tea.Cmd                     { return nil }
func (p *StaticPane) View(width, height int, selected, focused bool) string {
	return widgets.Pane{Title: p.title, Height: p.height, Content: p.text, Selected: selected, Focused: focused}.Render(width, height)
}

// PaneHost tracks which pane is selected and which, if any, is focused.
// Arrow keys move the selection, enter focuses, esc releases focus.
type PaneHost struct {
	panes    []Pane
	selected int
	focused  int
}

func NewPaneHost(panes ...Pane) PaneHost {
	seen := make(map[byte]string, len(panes))
	for _, pane := range panes {
		if pane == nil {
			continue
		}
		key := normalizePaneJumpKey(pane.JumpKey())
		if key == 0 {
			panic(fmt.Sprintf("pane %q must declare a single alphanumeric jump key", pane.ID()))
		}
		if other, exists := seen[key]; exists {
			panic(fmt.Sprintf("duplicate jump key %q across panes %q and %q", string(key), other, pane.ID()))
		}
		seen[key] = pane.ID()
	}
	return PaneHost{panes: panes, selected: 0, focused: -1}
}

func (h *PaneHost) Scope() string {
	if idx := h.activeIndex(); idx >= 0 {
		return h.panes[idx].Scope()
	}
	return ""
}

func (h *PaneHost) ActivePaneTitle() string {
	if idx := h.activeIndex(); idx >= 0 {
		return h.panes[idx].Title()
	}
	return ""
}

// ActiveID returns the focused pane's ID, or the selected pane's when
// nothing is focused.
func (h *PaneHost) ActiveID() string {
	if idx := h.activeIndex(); idx >= 0 {
		return h.panes[idx].ID()
	}
	return ""
}

func (h *PaneHost) IsFocused(id string) bool {
	return h.focused >= 0 && h.focused < len(h.panes) && h.panes[h.focused].ID() == id
}

func (h *PaneHost) activeIndex() int {
	if h.focused >= 0 && h.focused < len(h.panes) {
		return h.focused
	}
	if h.selected >= 0 && h.selected < len(h.panes) {
		return h.selected
	}
	return -1
}

func (h *PaneHost) UpdateActive(m *core.Model, msg tea.Msg) tea.Cmd {
	idx := h.activeIndex()
	if idx < 0 {
		return nil
	}
	return h.panes[idx].Update(m, msg)
}

func (h *PaneHost) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if len(h.panes) == 0 {
		return false, nil
	}
	if h.focused >= 0 && h.focused < len(h.panes) {
		if msg.String() == "esc" {
			return true, h.unfocus(m)
		}
		// A focused pane receives navigation keys directly.
		return false, nil
	}
	switch msg.String() {
	case "left", "up":
		return true, h.move(m, -1)
	case "right", "down":
		return true, h.move(m, 1)
	case "enter":
		return true, h.focusSelected(m)
	default:
		return false, nil
	}
}

func (h *PaneHost) move(m *core.Model, delta int) tea.Cmd {
	if len(h.panes) <= 1 {
		return nil
	}
	prev := h.selected
	h.selected = (h.selected + delta + len(h.panes)) % len(h.panes)
	if prev == h.selected {
		return nil
	}
	m.SetStatus("Selected pane: " + h.panes[h.selected].Title())
	return nil
}

func (h *PaneHost) focusSelected(m *core.Model) tea.Cmd {
	if h.selected < 0 || h.selected >= len(h.panes) {
		return nil
	}
	if !h.panes[h.selected].Focusable() {
		m.SetStatus(h.panes[h.selected].Title() + " is read-only")
		return nil
	}
	h.focused = h.selected
	m.SetStatus("Focused pane: " + h.panes[h.focused].Title())
	return h.panes[h.focused].OnFocus()
}

func (h *PaneHost) unfocus(m *core.Model) tea.Cmd {
	if h.focused < 0 || h.focused >= len(h.panes) {
		return nil
	}
	idx := h.focused
	h.focused = -1
	m.SetStatus("Pane unfocused: " + h.panes[idx].Title())
	return h.panes[idx].OnBlur()
}

type paneWidget struct {
	pane     Pane
	selected bool
	focused  bool
}

func (w paneWidget) Render(width, height int) string {
	return w.pane.View(width, height, w.selected, w.focused)
}

func (h *PaneHost) BuildPane(id string) widgets.Widget {
	for idx, p := range h.panes {
		if p.ID() == id {
			return paneWidget{pane: p, selected: idx == h.selected, focused: idx == h.focused}
		}
	}
	return widgets.Pane{Title: "Missing Pane", Height: 10, Content: id}
}

func (h *PaneHost) JumpTargets() []core.JumpTarget {
	out := make([]core.JumpTarget, 0, len(h.panes))
	for _, pane := range h.panes {
		if pane == nil || !pane.Focusable() {
			continue
		}
		out = append(out, core.JumpTarget{
			Key:   string(normalizePaneJumpKey(pane.JumpKey())),
			Label: pane.Title(),
		})
	}
	return out
}

func (h *PaneHost) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	jumpKey := normalizeJumpTargetKey(key)
	if jumpKey == 0 {
		return false, nil
	}
	target := -1
	for idx, pane := range h.panes {
		if pane != nil && pane.Focusable() && normalizePaneJumpKey(pane.JumpKey()) == jumpKey {
			target = idx
			break
		}
	}
	if target < 0 {
		return false, nil
	}

	prevFocused := h.focused
	h.selected = target
	h.focused = target
	m.SetStatus("Focused pane: " + h.panes[target].Title())
	if prevFocused == target {
		return true, nil
	}
	if prevFocused >= 0 && prevFocused < len(h.panes) {
		return true, tea.Batch(h.panes[prevFocused].OnBlur(), h.panes[target].OnFocus())
	}
	return true, h.panes[target].OnFocus()
}

func normalizePaneJumpKey(key byte) byte {
	r := rune(key)
	if key == 0 || (!unicode.IsLetter(r) && !unicode.IsDigit(r)) {
		return 0
	}
	return byte(unicode.ToLower(r))
}

func normalizeJumpTargetKey(key string) byte {
	key = strings.TrimSpace(strings.ToLower(key))
	if len(key) != 1 {
		return 0
	}
	return normalizePaneJumpKey(key[0])
}

// paneTab supplies the core.Tab plumbing shared by every pane-hosted view.
type paneTab struct {
	host PaneHost
}

func (t *paneTab) Scope() string           { return t.host.Scope() }
func (t *paneTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *paneTab) JumpTargets() []core.JumpTarget {
	return t.host.JumpTargets()
}
func (t *paneTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}
func (t *paneTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}
func (t *paneTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return t.host.UpdateActive(m, msg)
}
