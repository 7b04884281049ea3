package widgets

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const monthGridCellWidth = 4

var (
	gridHeaderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	gridWeekdayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	gridDayStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	gridMarkedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	gridTodayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#1d4ed8")).Background(lipgloss.Color("#dbeafe"))
	gridSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#3b82f6")).Bold(true)
)

// MonthGrid renders the month containing Selected, Sunday first. Days for
// which Marked returns true carry a dot.
type MonthGrid struct {
	Selected time.Time
	Today    time.Time
	Marked   func(day time.Time) bool
}

func (g MonthGrid) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return fitCanvas(strings.Join(g.Lines(), "\n"), width, height)
}

// Lines returns the header, the weekday row and one row per week.
func (g MonthGrid) Lines() []string {
	sel := g.Selected
	first := time.Date(sel.Year(), sel.Month(), 1, 0, 0, 0, 0, sel.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	lines := []string{gridHeaderStyle.Render(fmt.Sprintf("%s %d", sel.Month(), sel.Year()))}
	names := make([]string, 0, 7)
	for _, wd := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		names = append(names, fmt.Sprintf("%-*s", monthGridCellWidth, " "+wd))
	}
	lines = append(lines, gridWeekdayStyle.Render(strings.TrimRight(strings.Join(names, ""), " ")))

	row := make([]string, 0, 7)
	for i := 0; i < int(first.Weekday()); i++ {
		row = append(row, strings.Repeat(" ", monthGridCellWidth))
	}
	for d := 1; d <= daysInMonth; d++ {
		day := first.AddDate(0, 0, d-1)
		row = append(row, g.cell(day))
		if len(row) == 7 {
			lines = append(lines, strings.Join(row, ""))
			row = row[:0]
		}
	}
	if len(row) > 0 {
		lines = append(lines, strings.Join(row, ""))
	}
	return lines
}

func (g MonthGrid) cell(day time.Time) string {
	mark := " "
	marked := g.Marked != nil && g.Marked(day)
	if marked {
		mark = "•"
	}
	text := fmt.Sprintf(" %2d", day.Day())
	style := gridDayStyle
	switch {
	case sameDate(day, g.Selected):
		style = gridSelectedStyle
	case marked:
		style = gridMarkedStyle
	case !g.Today.IsZero() && sameDate(day, g.Today):
		style = gridTodayStyle
	}
	return style.Render(text) + gridMarkedStyle.Render(mark)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
