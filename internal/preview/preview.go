// Package preview draws a generated layout in the terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"river-stream/internal/layout"
)

const empty = '.'

const labels = "0123456789abcdefghijklmnopqrstuvwxyz"

var palette = []lipgloss.Color{"36", "220", "75", "167", "35", "141", "209", "245"}

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleFrame = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
)

// Label returns the rune drawn for view i. Views past the label set share '*'.
func Label(i int) rune {
	if i < len(labels) {
		return rune(labels[i])
	}
	return '*'
}

// Grid scales the layout onto a cols x rows character grid. Later views are
// drawn over earlier ones; cells no view covers hold '.'. A non-positive grid
// size yields an empty grid.
func Grid(l layout.GeneratedLayout, usableWidth, usableHeight uint32, cols, rows int) [][]rune {
	if cols <= 0 || rows <= 0 {
		return [][]rune{}
	}
	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = make([]rune, cols)
		for c := range grid[r] {
			grid[r][c] = empty
		}
	}
	if usableWidth == 0 || usableHeight == 0 {
		return grid
	}

	for i, v := range l.Views {
		c0 := scale(int64(v.X), usableWidth, cols)
		c1 := scale(int64(v.X)+int64(v.Width), usableWidth, cols)
		r0 := scale(int64(v.Y), usableHeight, rows)
		r1 := scale(int64(v.Y)+int64(v.Height), usableHeight, rows)
		for r := r0; r < r1; r++ {
			for c := c0; c < c1; c++ {
				grid[r][c] = Label(i)
			}
		}
	}
	return grid
}

// scale maps a coordinate in [0, size] onto [0, cells], clamping anything
// outside the usable area.
func scale(v int64, size uint32, cells int) int {
	if v <= 0 {
		return 0
	}
	if v >= int64(size) {
		return cells
	}
	return int(v * int64(cells) / int64(size))
}

// Render draws the layout with a title, the grid and one line per view.
func Render(l layout.GeneratedLayout, usableWidth, usableHeight uint32, cols, rows int) string {
	grid := Grid(l, usableWidth, usableHeight, cols, rows)

	var lines []string
	for _, row := range grid {
		var b strings.Builder
		for _, cell := range row {
			b.WriteString(styleCell(cell).Render(string(cell)))
		}
		lines = append(lines, b.String())
	}

	var out strings.Builder
	out.WriteString(styleTitle.Render(l.LayoutName))
	out.WriteString(styleDim.Render(fmt.Sprintf("  %dx%d, %d views", usableWidth, usableHeight, len(l.Views))))
	out.WriteString("\n")
	out.WriteString(styleFrame.Render(strings.Join(lines, "\n")))
	out.WriteString("\n")
	for i, v := range l.Views {
		role := "stack"
		if i == 0 {
			role = "main"
		}
		fmt.Fprintf(&out, "%s  %-5s %s\n", styleCell(Label(i)).Render(string(Label(i))), role, v)
	}
	return out.String()
}

func styleCell(r rune) lipgloss.Style {
	if r == empty {
		return styleDim
	}
	idx := strings.IndexRune(labels, r)
	if idx < 0 {
		idx = len(palette) - 1
	}
	return lipgloss.NewStyle().Foreground(palette[idx%len(palette)])
}
