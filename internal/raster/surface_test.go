package raster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/foxjammin/sigilry/internal/anim"
	"github.com/foxjammin/sigilry/internal/theme"
)

func newSurface(t *testing.T, w, h int) *Surface {
	t.Helper()
	s, err := New(w, h)
	if err != nil {
		t.Fatalf("new surface: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSetBackingResizes(t *testing.T) {
	s := newSurface(t, 10, 10)
	s.SetBacking(64, 32, 2)
	if s.Width() != 64 || s.Height() != 32 {
		t.Errorf("expected 64x32, got %dx%d", s.Width(), s.Height())
	}
}

func TestFillRectPaintsPixels(t *testing.T) {
	s := newSurface(t, 20, 20)
	s.SetFillColor("#ff0000")
	s.SetAlpha(1)
	s.FillRect(0, 0, 20, 20)

	r, g, b, a := s.Image().At(10, 10).RGBA()
	if r>>8 < 250 || g>>8 > 5 || b>>8 > 5 || a>>8 < 250 {
		t.Errorf("expected opaque red, got %d %d %d %d", r>>8, g>>8, b>>8, a>>8)
	}

	s.Clear(0, 0, 20, 20)
	if _, _, _, a := s.Image().At(10, 10).RGBA(); a != 0 {
		t.Errorf("expected cleared pixel, got alpha %d", a)
	}
}

func TestClearRegion(t *testing.T) {
	s := newSurface(t, 20, 20)
	s.SetFillColor("#00ff00")
	s.FillRect(0, 0, 20, 20)
	s.Clear(0, 0, 5, 5)

	if _, _, _, a := s.Image().At(2, 2).RGBA(); a != 0 {
		t.Error("pixel inside cleared region should be transparent")
	}
	if _, _, _, a := s.Image().At(15, 15).RGBA(); a == 0 {
		t.Error("pixel outside cleared region should keep its paint")
	}
}

func TestRendererFrameEncodesPNG(t *testing.T) {
	s := newSurface(t, 1, 1)
	ticks := anim.NewManualTicks()
	r := anim.New(s, ticks, anim.WithTheme(theme.Terminal))
	r.OnResize(160, 90, 1)
	r.Start()
	ticks.Advance(anim.FramePeriod60 * 6)
	defer r.Close()

	if r.Stats().Draws != 1 {
		t.Fatalf("expected one frame, got %d", r.Stats().Draws)
	}

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 90 {
		t.Errorf("expected 160x90, got %dx%d", b.Dx(), b.Dy())
	}
	if _, _, _, a := img.At(80, 45).RGBA(); a == 0 {
		t.Error("expected the tint to cover the frame")
	}
}
