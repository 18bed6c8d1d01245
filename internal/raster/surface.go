// Package raster implements the animation surface on an in-memory image
// using gogpu/gg, for PNG snapshots of the glyph field.
package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"
)

// Surface draws onto a gg context. Logical coordinates are multiplied by
// the backing scale before they reach the pixmap.
type Surface struct {
	dc     *gg.Context
	source *text.FontSource
	faces  map[float64]text.Face
	face   text.Face

	fill  gg.RGBA
	alpha float64
	scale float64
}

// New allocates a width×height device-pixel surface with the Go Mono font.
func New(width, height int) (*Surface, error) {
	source, err := text.NewFontSource(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: load mono font: %w", err)
	}
	return &Surface{
		dc:     gg.NewContext(max(1, width), max(1, height)),
		source: source,
		faces:  make(map[float64]text.Face),
		fill:   gg.RGBA{A: 1},
		alpha:  1,
		scale:  1,
	}, nil
}

func (s *Surface) Clear(x, y, w, h float64) {
	x0, y0 := int(x*s.scale), int(y*s.scale)
	x1, y1 := int((x+w)*s.scale), int((y+h)*s.scale)
	if x0 <= 0 && y0 <= 0 && x1 >= s.dc.Width() && y1 >= s.dc.Height() {
		s.dc.Clear()
		return
	}
	x0, y0 = max(0, x0), max(0, y0)
	x1, y1 = min(s.dc.Width(), x1), min(s.dc.Height(), y1)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.dc.SetPixel(px, py, gg.Transparent)
		}
	}
}

func (s *Surface) SetFillColor(color string) { s.fill = gg.Hex(color) }

func (s *Surface) SetAlpha(alpha float64) { s.alpha = alpha }

func (s *Surface) FillRect(x, y, w, h float64) {
	s.applyPaint()
	s.dc.DrawRectangle(x*s.scale, y*s.scale, w*s.scale, h*s.scale)
	_ = s.dc.Fill()
}

// SetFont selects Go Mono at size logical pixels; the family is ignored
// because only one monospace face is embedded.
func (s *Surface) SetFont(size float64, family string) {
	px := size * s.scale
	face, ok := s.faces[px]
	if !ok {
		face = s.source.Face(px)
		s.faces[px] = face
	}
	s.face = face
	s.dc.SetFont(face)
}

// FillText draws with the top of the em box at y.
func (s *Surface) FillText(str string, x, y float64) {
	if s.face == nil {
		return
	}
	s.applyPaint()
	baseline := y*s.scale + s.face.Metrics().Ascent
	s.dc.DrawString(str, x*s.scale, baseline)
}

func (s *Surface) SetBacking(width, height int, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	if scale != s.scale {
		s.faces = make(map[float64]text.Face)
		s.face = nil
	}
	s.scale = scale
	_ = s.dc.Resize(max(1, width), max(1, height))
}

func (s *Surface) applyPaint() {
	s.dc.SetRGBA(s.fill.R, s.fill.G, s.fill.B, s.fill.A*s.alpha)
}

func (s *Surface) Width() int  { return s.dc.Width() }
func (s *Surface) Height() int { return s.dc.Height() }

func (s *Surface) Image() image.Image { return s.dc.Image() }

func (s *Surface) EncodePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}

func (s *Surface) Close() error {
	s.faces = nil
	s.face = nil
	if err := s.source.Close(); err != nil {
		return err
	}
	return s.dc.Close()
}
