package race

import (
	"strings"
	"sync"

	"github.com/lixenwraith/ascii-race/terminal"
)

// gridSurface records writes into an in-memory screen for assertions
type gridSurface struct {
	mu     sync.Mutex
	cells  [][]rune
	writes int
}

func newGridSurface(width, height int) *gridSurface {
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(" ", width))
	}
	return &gridSurface{cells: cells}
}

func (g *gridSurface) WriteAt(x, y int, text string, _ terminal.Color) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.writes++
	if y < 0 || y >= len(g.cells) {
		return
	}
	row := g.cells[y]
	for i, r := range []rune(text) {
		if col := x + i; col >= 0 && col < len(row) {
			row[col] = r
		}
	}
}

func (g *gridSurface) Blank(x, y, n int) {
	g.WriteAt(x, y, strings.Repeat(" ", n), terminal.ColorDefault)
}

func (g *gridSurface) Row(y int) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return string(g.cells[y])
}

func (g *gridSurface) Writes() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.writes
}
