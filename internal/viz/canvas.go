package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Cell is one terminal character with its composited colours.
type Cell struct {
	Rune rune
	FG   colorful.Color
	BG   colorful.Color
}

// Canvas is a terminal-cell implementation of anim.Surface. One cell spans
// Pitch logical pixels on both axes; paint with an alpha below 1 is blended
// over whatever the cell already holds.
type Canvas struct {
	Width, Height int
	Pitch         float64
	Grid          [][]Cell

	base  colorful.Color
	fill  colorful.Color
	alpha float64
	font  float64
}

func NewCanvas(w, h int, pitch float64) *Canvas {
	if pitch <= 0 {
		pitch = 1
	}
	c := &Canvas{
		Pitch: pitch,
		base:  colorful.Color{},
		fill:  colorful.Color{R: 1, G: 1, B: 1},
		alpha: 1,
	}
	c.alloc(w, h)
	return c
}

func (c *Canvas) alloc(w, h int) {
	c.Width, c.Height = max(1, w), max(1, h)
	c.Grid = make([][]Cell, c.Height)
	for i := range c.Grid {
		c.Grid[i] = make([]Cell, c.Width)
	}
	c.reset(0, 0, c.Width, c.Height)
}

func (c *Canvas) reset(col0, row0, col1, row1 int) {
	for row := max(0, row0); row < min(c.Height, row1); row++ {
		for col := max(0, col0); col < min(c.Width, col1); col++ {
			c.Grid[row][col] = Cell{Rune: ' ', FG: c.base, BG: c.base}
		}
	}
}

// SetBase sets the colour cells return to when cleared. Invalid hex is
// ignored.
func (c *Canvas) SetBase(hex string) {
	if col, err := colorful.Hex(hex); err == nil {
		c.base = col
	}
}

// span converts a logical extent to a half-open cell range.
func (c *Canvas) span(p, length float64) (int, int) {
	return int(math.Floor(p / c.Pitch)), int(math.Ceil((p + length) / c.Pitch))
}

func (c *Canvas) Clear(x, y, w, h float64) {
	col0, col1 := c.span(x, w)
	row0, row1 := c.span(y, h)
	c.reset(col0, row0, col1, row1)
}

func (c *Canvas) SetFillColor(hex string) {
	if col, err := colorful.Hex(hex); err == nil {
		c.fill = col
	}
}

func (c *Canvas) SetAlpha(alpha float64) {
	c.alpha = math.Max(0, math.Min(1, alpha))
}

func (c *Canvas) FillRect(x, y, w, h float64) {
	col0, col1 := c.span(x, w)
	row0, row1 := c.span(y, h)
	for row := max(0, row0); row < min(c.Height, row1); row++ {
		for col := max(0, col0); col < min(c.Width, col1); col++ {
			cell := &c.Grid[row][col]
			cell.BG = cell.BG.BlendRgb(c.fill, c.alpha).Clamped()
			cell.FG = cell.BG
		}
	}
}

// SetFont records the requested size; terminals have a single font.
func (c *Canvas) SetFont(size float64, family string) { c.font = size }

// FillText writes the first rune of s into the cell containing (x, y).
func (c *Canvas) FillText(s string, x, y float64) {
	col := int(math.Floor(x / c.Pitch))
	row := int(math.Floor(y / c.Pitch))
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return
	}
	r := ' '
	for _, first := range s {
		r = first
		break
	}
	cell := &c.Grid[row][col]
	cell.Rune = r
	cell.FG = cell.BG.BlendRgb(c.fill, c.alpha).Clamped()
}

// SetBacking reallocates the grid to cover width×height device pixels.
func (c *Canvas) SetBacking(width, height int, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	cols := int(math.Ceil(float64(width) / scale / c.Pitch))
	rows := int(math.Ceil(float64(height) / scale / c.Pitch))
	if cols == c.Width && rows == c.Height {
		return
	}
	c.alloc(cols, rows)
}

// Plain returns the glyphs without colour.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for i, row := range c.Grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			b.WriteRune(cell.Rune)
		}
	}
	return b.String()
}

// String renders the grid with truecolor styles, merging runs of cells that
// share colours.
func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && sameColors(row[j], row[start]) {
				continue
			}
			b.WriteString(styleFor(row[start]).Render(runString(row[start:j])))
			start = j
		}
	}
	return b.String()
}

func sameColors(a, b Cell) bool {
	return a.FG.Hex() == b.FG.Hex() && a.BG.Hex() == b.BG.Hex()
}

func styleFor(cell Cell) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(cell.FG.Hex())).
		Background(lipgloss.Color(cell.BG.Hex()))
}

func runString(cells []Cell) string {
	rs := make([]rune, len(cells))
	for i, cell := range cells {
		rs[i] = cell.Rune
	}
	return string(rs)
}
