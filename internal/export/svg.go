package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sortlab/internal/trace"
	"github.com/san-kum/sortlab/internal/viz"
)

// StepSVG draws s as a bar chart, each bar filled with its highlight color.
func StepSVG(s trace.Step, width, height int, theme viz.Theme) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, theme.Backdrop))

	n := len(s.Array)
	if n > 0 {
		peak := 0
		for _, it := range s.Array {
			peak = max(peak, it.Value)
		}
		if peak == 0 {
			peak = 1
		}

		slot := float64(width) / float64(n)
		gap := slot * 0.1
		for i, it := range s.Array {
			h := float64(max(it.Value, 0)) / float64(peak) * float64(height) * 0.95
			x := float64(i)*slot + gap/2
			y := float64(height) - h
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"><title>%d</title></rect>
`, x, y, slot-gap, h, theme.Color(viz.HighlightOf(s, i)), it.Value))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesSVG draws values as a polyline over their index, for example a
// metric series across a trace.
func SeriesSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		minY = min(minY, v)
		maxY = max(maxY, v)
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	rangeY *= 1.2
	stepX := float64(width) / float64(len(values)-1)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range values {
		x := float64(i) * stepX
		y := float64(height) - (v-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
