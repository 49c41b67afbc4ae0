package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	subtle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))

	statusPlaying = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	statusPaused  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))

	metricLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899")).Width(12)
	metricValue = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ccff")).Bold(true)

	keyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

// ProgressBar renders percent in [0, 1] as a bar of width cells.
func ProgressBar(percent float64, width int, t Theme) string {
	filled := int(percent * float64(width))
	filled = min(max(filled, 0), width)

	done := lipgloss.NewStyle().Foreground(t.Sorted).Render(strings.Repeat("█", filled))
	rest := subtle.Render(strings.Repeat("░", width-filled))
	return done + rest
}

// Separator is a horizontal rule with a centered diamond.
func Separator(width int) string {
	if width < 8 {
		return subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	return subtle.Render(strings.Repeat("─", mid-3) + " ◆ " + strings.Repeat("─", width-mid-3))
}

// keyHints renders alternating key / description pairs.
func keyHints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(keyStyle.Render(pairs[i]))
		b.WriteString(hintStyle.Render(" " + pairs[i+1]))
	}
	return b.String()
}

// legend shows one colored swatch per highlight.
func legend(t Theme) string {
	entries := []Highlight{HighlightComparing, HighlightSwapping, HighlightPivot, HighlightSorted}
	parts := make([]string, len(entries))
	for i, h := range entries {
		parts[i] = lipgloss.NewStyle().Foreground(t.Color(h)).Render("■") + " " + subtle.Render(h.String())
	}
	return strings.Join(parts, "  ")
}
