package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"river-stream/internal/layout"
)

func gridString(g [][]rune) string {
	lines := make([]string, len(g))
	for i, row := range g {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

func TestGridFullHDFourViews(t *testing.T) {
	l := layout.NewEngine().Generate(4, 1920, 1080, "DP-1")
	g := Grid(l, 1920, 1080, 12, 6)

	assert.Equal(t, strings.Join([]string{
		"11........22",
		"110000000022",
		"110000000022",
		"110000000033",
		"110000000033",
		"11........33",
	}, "\n"), gridString(g))
}

func TestGridEmpty(t *testing.T) {
	g := Grid(layout.GeneratedLayout{}, 0, 0, 4, 2)
	assert.Equal(t, "....\n....", gridString(g))
}

func TestGridNonPositiveSize(t *testing.T) {
	l := layout.NewEngine().Generate(3, 1920, 1080, "DP-1")
	for _, size := range [][2]int{{-1, 6}, {12, -1}, {0, 6}, {12, 0}} {
		assert.Empty(t, Grid(l, 1920, 1080, size[0], size[1]), "cols=%d rows=%d", size[0], size[1])
	}
	assert.NotPanics(t, func() { Render(l, 1920, 1080, -1, -1) })
}

func TestGridClampsOverhang(t *testing.T) {
	l := layout.GeneratedLayout{Views: []layout.Rectangle{{X: -50, Y: -50, Width: 300, Height: 300}}}
	g := Grid(l, 100, 100, 4, 2)
	assert.Equal(t, "0000\n0000", gridString(g))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, '0', Label(0))
	assert.Equal(t, 'a', Label(10))
	assert.Equal(t, '*', Label(100))
}

func TestRender(t *testing.T) {
	l := layout.NewEngine().Generate(2, 1920, 1080, "DP-1")
	out := Render(l, 1920, 1080, 24, 8)

	assert.Contains(t, out, "stream for output DP-1")
	assert.Contains(t, out, "1920x1080, 2 views")
	assert.Contains(t, out, "main  (320,180 1280x720)")
	assert.Contains(t, out, "stack (1600,0 320x1080)")
}
