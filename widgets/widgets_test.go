package widgets

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string {
	return w.text
}

func TestHStackRespectsRatios(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Ratios: []float64{0.75, 0.25}, Gap: 1}
	out := h.Render(21, 2)
	lines := strings.Split(out, "\n")
	if len(lines) == 0 {
		t.Fatalf("expected output")
	}
	if idx := strings.Index(lines[0], "B"); idx != 16 {
		t.Fatalf("second column starts at %d, want 16: %q", idx, lines[0])
	}
}

func TestVStackSpacing(t *testing.T) {
	v := VStack{Widgets: []Widget{fixedWidget{"top"}, fixedWidget{"bottom"}}, Spacing: 1}
	out := v.Render(20, 6)
	if !strings.Contains(out, "top") || !strings.Contains(out, "bottom") {
		t.Fatalf("expected both widgets in output")
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("line count = %d, want 6", len(lines))
	}
	if !strings.HasPrefix(lines[4], "bottom") {
		t.Fatalf("bottom widget should start after first block and spacer, got %q", lines[4])
	}
}

func TestSplitSizesTreatsNonPositiveRatiosAsOne(t *testing.T) {
	got := splitSizes(10, 2, []float64{0, 1})
	if got[0]+got[1] != 10 || got[0] != 5 {
		t.Fatalf("unexpected split %v", got)
	}
}

func TestRenderPopupOverlaysWithoutDroppingBase(t *testing.T) {
	base := strings.Join([]string{
		"row-0................",
		"row-1................",
		"row-2................",
		"row-3................",
		"row-4................",
		"row-5................",
		"row-6................",
		"row-7................",
		"row-8................",
	}, "\n")
	out := RenderPopup(base, "Popup", 20, 9)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("line count = %d, want 9", len(lines))
	}
	if !strings.Contains(out, "Popup") {
		t.Fatalf("expected popup content in output")
	}
	if !strings.Contains(lines[0], "row-0") {
		t.Fatalf("expected top base row preserved, got %q", lines[0])
	}
	if !strings.Contains(lines[8], "row-8") {
		t.Fatalf("expected bottom base row preserved, got %q", lines[8])
	}
}

func TestPaneRendersTitleAndContent(t *testing.T) {
	out := ansi.Strip(Pane{Title: "Meeting Stats", Content: "Pending 2"}.Render(30, 5))
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("line count = %d, want 5", len(lines))
	}
	if !strings.Contains(lines[0], "Meeting Stats") {
		t.Fatalf("title missing from border: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Pending 2") {
		t.Fatalf("content missing: %q", lines[1])
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 30 {
			t.Fatalf("line %d width = %d, want 30", i, w)
		}
	}
}

func TestPaneFocusPrefix(t *testing.T) {
	out := ansi.Strip(Pane{Title: "Form", Focused: true}.Render(20, 3))
	if !strings.Contains(out, "● Form") {
		t.Fatalf("expected focus marker, got %q", out)
	}
}

func TestMonthGridLayout(t *testing.T) {
	sel := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC) // March 1st 2026 is a Sunday
	marked := time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)
	g := MonthGrid{
		Selected: sel,
		Today:    sel,
		Marked:   func(d time.Time) bool { return sameDate(d, marked) },
	}
	lines := g.Lines()
	for i := range lines {
		lines[i] = ansi.Strip(lines[i])
	}
	if lines[0] != "March 2026" {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], " Su  Mo") {
		t.Fatalf("weekday row = %q", lines[1])
	}
	// 31 days starting Sunday: five week rows
	if len(lines) != 7 {
		t.Fatalf("line count = %d, want 7", len(lines))
	}
	if !strings.HasPrefix(lines[2], "  1 ") {
		t.Fatalf("first week should start with the 1st: %q", lines[2])
	}
	if !strings.Contains(lines[3], " 11•") {
		t.Fatalf("expected marker on the 11th: %q", lines[3])
	}
	if strings.Contains(lines[3], " 10•") {
		t.Fatalf("unexpected marker on the 10th: %q", lines[3])
	}
}

func TestMonthGridOffsetsFirstWeek(t *testing.T) {
	g := MonthGrid{Selected: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)} // Wednesday
	first := ansi.Strip(g.Lines()[2])
	if !strings.HasPrefix(first, strings.Repeat(" ", 12)+"  1") {
		t.Fatalf("april should start on wednesday column: %q", first)
	}
}
