package sigil

import "strings"

// Grid is an immutable H×W character grid.
type Grid struct {
	cells [][]rune
}

func newGrid(w, h int) [][]rune {
	cells := make([][]rune, h)
	for y := range cells {
		cells[y] = make([]rune, w)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}
	return cells
}

func (g Grid) Width() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

func (g Grid) Height() int { return len(g.cells) }

// At returns the glyph at column x, row y, or a space when out of bounds.
func (g Grid) At(x, y int) rune {
	if y < 0 || y >= len(g.cells) || x < 0 || x >= len(g.cells[y]) {
		return ' '
	}
	return g.cells[y][x]
}

// Rows returns one string per row, each exactly Width runes long.
func (g Grid) Rows() []string {
	rows := make([]string, len(g.cells))
	for i, row := range g.cells {
		rows[i] = string(row)
	}
	return rows
}

// String joins the rows with newlines, without a trailing newline.
func (g Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// Mirrored reports whether every column x equals column W-1-x outside the
// centre column.
func (g Grid) Mirrored() bool {
	w := g.Width()
	for _, row := range g.cells {
		for x := 0; x < w/2; x++ {
			if row[x] != row[w-1-x] {
				return false
			}
		}
	}
	return true
}

// Corners returns the four corner glyphs clockwise from top-left.
func (g Grid) Corners() [4]rune {
	w, h := g.Width(), g.Height()
	return [4]rune{g.At(0, 0), g.At(w-1, 0), g.At(w-1, h-1), g.At(0, h-1)}
}
