// Package diagram renders parsed structures for terminals and image files.
package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/strucware/strut/internal/model"
)

// ElevationProfile plots the number of nodes at each floor level as a
// terminal graph, low floors first.
func ElevationProfile(st *model.Structure) string {
	levels := st.FloorLevels()
	if len(levels) == 0 {
		return "  (no nodes)\n"
	}

	counts := make([]float64, len(levels))
	for _, n := range st.Nodes {
		for i, level := range levels {
			if n.Y >= level-model.FloorTolerance && n.Y <= level+model.FloorTolerance {
				counts[i]++
				break
			}
		}
	}

	graph := asciigraph.Plot(counts,
		asciigraph.Height(10),
		asciigraph.Caption("nodes per floor level (ascending elevation)"),
	)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(graph)
	sb.WriteString("\n\n")
	for i, level := range levels {
		sb.WriteString(fmt.Sprintf("  level %d: elevation %.2f, %d node(s)\n", i+1, level, int(counts[i])))
	}
	return sb.String()
}

// SummaryBox draws a bordered box around a title and content lines.
func SummaryBox(title string, lines []string) string {
	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	var sb strings.Builder
	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))
	return sb.String()
}

// GeometryLines formats a geometry summary as box content.
func GeometryLines(summary model.GeometrySummary) []string {
	b := summary.Bounds
	return []string{
		fmt.Sprintf("Extent X: %.2f  Y: %.2f  Z: %.2f", b.Width(), b.Height(), b.Depth()),
		fmt.Sprintf("Floors: %d", summary.FloorCount),
		fmt.Sprintf("Max span: %.2f", summary.MaxSpan),
		fmt.Sprintf("Typical span: %.2f", summary.TypicalSpan),
	}
}
