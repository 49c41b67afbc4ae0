package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortlab/internal/trace"
)

// MaxHeapTreeSize bounds the tree view; wider heaps do not fit a terminal.
const MaxHeapTreeSize = 31

const heapCell = 4

// RenderHeapTree lays the array out as a binary tree, one line per level,
// nodes colored like bars.
func RenderHeapTree(s trace.Step, t Theme) string {
	n := len(s.Array)
	if n == 0 {
		return ""
	}
	if n > MaxHeapTreeSize {
		return subtle.Render(fmt.Sprintf("heap of %d nodes is too wide to draw (max %d)", n, MaxHeapTreeSize))
	}

	depth := 0
	for (1<<depth)-1 < n {
		depth++
	}
	width := (1 << (depth - 1)) * heapCell

	lines := make([]string, 0, depth)
	for level := range depth {
		first := (1 << level) - 1
		slots := 1 << level
		slot := width / slots

		var b strings.Builder
		for k := 0; k < slots && first+k < n; k++ {
			i := first + k
			label := fmt.Sprintf("%d", s.Array[i].Value)
			pad := slot - len(label)
			left := max(pad/2, 0)
			b.WriteString(strings.Repeat(" ", left))
			b.WriteString(lipgloss.NewStyle().Foreground(t.Color(HighlightOf(s, i))).Render(label))
			b.WriteString(strings.Repeat(" ", max(pad-left, 0)))
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return strings.Join(lines, "\n")
}
