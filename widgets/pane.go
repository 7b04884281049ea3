package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	paneBorderIdle     = lipgloss.Color("#6c7086")
	paneBorderSelected = lipgloss.Color("#89b4fa")
	paneBorderFocused  = lipgloss.Color("#a6e3a1")
	paneTitleColor     = lipgloss.Color("#cdd6f4")
)

// Pane draws a rounded box with the title inset in the top border.
// Height <= 0 fills the available height.
type Pane struct {
	Title    string
	Height   int
	Content  string
	Selected bool
	Focused  bool
}

func (p Pane) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	h := p.Height
	if h <= 0 || (height > 0 && h > height) {
		h = height
	}
	h = max(3, h)
	width = max(4, width)

	border := paneBorderIdle
	titlePrefix := "  "
	if p.Selected {
		border = paneBorderSelected
		titlePrefix = "▶ "
	}
	if p.Focused {
		border = paneBorderFocused
		titlePrefix = "● "
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(paneTitleColor).Bold(true)

	innerWidth := width - 2
	contentWidth := max(1, innerWidth-2)

	title := strings.TrimSpace(titlePrefix + p.Title)
	titleText := " " + title + " "
	if ansi.StringWidth(titleText) > innerWidth {
		titleText = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭"+strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)+"╮")

	innerHeight := h - 2
	contentLines := strings.Split(p.Content, "\n")
	rows := make([]string, 0, h)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows, v+" "+padRightANSI(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}
