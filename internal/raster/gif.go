package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"time"
)

// ErrNoFrames is returned when encoding a recording that captured nothing.
var ErrNoFrames = errors.New("raster: no frames recorded")

// Recorder collects surface snapshots into an animated GIF.
type Recorder struct {
	frames []*image.Paletted
	delay  int
}

// NewRecorder records frames that are shown for period each.
func NewRecorder(period time.Duration) *Recorder {
	return &Recorder{delay: max(1, int(period/(10*time.Millisecond)))}
}

// Capture quantizes the surface's current image onto the Plan 9 palette.
func (r *Recorder) Capture(s *Surface) {
	src := s.Image()
	b := src.Bounds()
	img := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.Plan9)
	draw.FloydSteinberg.Draw(img, img.Bounds(), src, b.Min)
	r.frames = append(r.frames, img)
}

func (r *Recorder) Len() int { return len(r.frames) }

func (r *Recorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, f := range r.frames {
		anim.Image = append(anim.Image, f)
		anim.Delay = append(anim.Delay, r.delay)
	}
	return gif.EncodeAll(w, &anim)
}

func (r *Recorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
