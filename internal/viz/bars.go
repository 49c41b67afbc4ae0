package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortlab/internal/trace"
)

// BarHeights scales values to [1, rows] against the largest value. Non
// positive values get an empty column.
func BarHeights(values []int, rows int) []int {
	peak := 0
	for _, v := range values {
		peak = max(peak, v)
	}
	out := make([]int, len(values))
	if peak == 0 || rows <= 0 {
		return out
	}
	for i, v := range values {
		if v <= 0 {
			continue
		}
		out[i] = max((v*rows+peak-1)/peak, 1)
	}
	return out
}

// barWidth picks a column width that keeps n bars within cols cells.
func barWidth(n, cols int) int {
	switch {
	case n == 0:
		return 1
	case n*3 <= cols:
		return 2
	default:
		return 1
	}
}

// RenderBars draws s as a vertical bar chart rows tall, coloring each bar
// by its highlight.
func RenderBars(s trace.Step, rows, cols int, t Theme) string {
	heights := BarHeights(s.Values(), rows)
	hl := Highlights(s)
	w := barWidth(len(heights), cols)

	styles := make(map[Highlight]lipgloss.Style)
	for _, h := range []Highlight{HighlightDefault, HighlightSorted, HighlightComparing, HighlightSwapping, HighlightPivot} {
		styles[h] = lipgloss.NewStyle().Foreground(t.Color(h))
	}
	block := strings.Repeat("█", w)
	blank := strings.Repeat(" ", w)

	var b strings.Builder
	for r := rows; r >= 1; r-- {
		for i, h := range heights {
			if h >= r {
				b.WriteString(styles[hl[i]].Render(block))
			} else {
				b.WriteString(blank)
			}
			if w > 1 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
