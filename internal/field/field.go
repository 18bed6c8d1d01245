// Package field samples the braided-band scalar field that drives the
// animated glyph backdrop, and discretises it through a glyph ramp.
package field

import "math"

// Scale is the pixel distance that maps to one unit of field space.
const Scale = 220.0

// Sample evaluates the field at pixel position (x, y) and time t. The result
// is the mean of three sinusoids and so stays within [-1, 1].
func Sample(x, y, t float64) float64 {
	nx := x / Scale
	ny := y / Scale
	a := math.Sin((nx*7.0 + t*0.8) + math.Sin(ny*2.2))
	b := math.Cos((ny*6.5 - t*0.7) + math.Cos(nx*2.0))
	c := math.Sin((nx+ny)*6.0 + t*1.2)
	return (a + b + c) / 3
}

// Normalize maps a field value into [0, 1].
func Normalize(v float64) float64 {
	return Clamp01((v + 1) / 2)
}

func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Vignette fades towards the nearest edge on either axis. Surfaces without
// area have no interior, so the factor is 0.
func Vignette(x, y, w, h, gain float64) float64 {
	if w <= 0 || h <= 0 {
		return 0
	}
	edgeX := math.Min(x/w, 1-x/w)
	edgeY := math.Min(y/h, 1-y/h)
	return Clamp01(math.Min(edgeX, edgeY) * gain)
}

// Profile samples one row of the field every step pixels across width.
func Profile(y, t, width, step float64) []float64 {
	if step <= 0 || width <= 0 {
		return nil
	}
	out := make([]float64, 0, int(width/step)+1)
	for x := 0.0; x < width; x += step {
		out = append(out, Sample(x, y, t))
	}
	return out
}
