// Package export writes sigils and terminal frames as standalone SVG.
package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/foxjammin/sigilry/internal/sigil"
	"github.com/foxjammin/sigilry/internal/theme"
	"github.com/foxjammin/sigilry/internal/viz"
)

// glyphAspect is the advance of a monospace glyph relative to its size.
const glyphAspect = 0.6

func header(sb *strings.Builder, width, height float64, background string) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))
}

// SigilToSVG lays the grid out as one text element per row in the theme's
// accent colour. Size is the font size in pixels.
func SigilToSVG(g sigil.Grid, t theme.Theme, size float64) string {
	if g.Width() == 0 || size <= 0 {
		return ""
	}
	pad := size
	width := float64(g.Width())*size*glyphAspect + 2*pad
	height := float64(g.Height())*size + 2*pad

	var sb strings.Builder
	header(&sb, width, height, string(t.Background))
	sb.WriteString(fmt.Sprintf(`<g fill="%s" font-family="%s" font-size="%.1f" xml:space="preserve">
`, t.Accent, html.EscapeString(t.FontMono), size))

	for i, row := range g.Rows() {
		y := pad + float64(i+1)*size
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" textLength="%.1f">%s</text>
`, pad, y, float64(g.Width())*size*glyphAspect, html.EscapeString(row)))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// CanvasToSVG converts a terminal canvas to SVG, one rect per cell
// background and one text element per glyph.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil || scale <= 0 {
		return ""
	}

	cellW := scale * glyphAspect
	width := float64(canvas.Width) * cellW
	height := float64(canvas.Height) * scale

	var sb strings.Builder
	header(&sb, width, height, "#000000")
	sb.WriteString(fmt.Sprintf(`<g font-family="monospace" font-size="%.1f">
`, scale))

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			cell := canvas.Grid[row][col]
			x := float64(col) * cellW
			y := float64(row) * scale
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, y, cellW, scale, cell.BG.Hex()))
			if cell.Rune == ' ' || cell.Rune == 0 {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s">%s</text>
`, x, y+scale*0.8, cell.FG.Hex(), html.EscapeString(string(cell.Rune))))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
