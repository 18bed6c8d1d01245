package anim_test

import "github.com/foxjammin/sigilry/internal/anim"

type textOp struct {
	s     string
	x, y  float64
	alpha float64
	color string
	size  float64
	font  string
}

type rectOp struct {
	x, y, w, h float64
	alpha      float64
	color      string
}

// recorder is an anim.Surface that keeps every operation.
type recorder struct {
	color string
	alpha float64
	size  float64
	font  string

	clears  int
	rects   []rectOp
	texts   []textOp
	backing [][3]float64
}

var _ anim.Surface = (*recorder)(nil)

func (r *recorder) Clear(x, y, w, h float64) {
	r.clears++
	r.texts = r.texts[:0]
	r.rects = r.rects[:0]
}

func (r *recorder) SetFillColor(c string)           { r.color = c }
func (r *recorder) SetAlpha(a float64)              { r.alpha = a }
func (r *recorder) SetFont(size float64, f string) { r.size, r.font = size, f }

func (r *recorder) FillRect(x, y, w, h float64) {
	r.rects = append(r.rects, rectOp{x, y, w, h, r.alpha, r.color})
}

func (r *recorder) FillText(s string, x, y float64) {
	r.texts = append(r.texts, textOp{s, x, y, r.alpha, r.color, r.size, r.font})
}

func (r *recorder) SetBacking(w, h int, scale float64) {
	r.backing = append(r.backing, [3]float64{float64(w), float64(h), scale})
}

// hostEvents is an Observer standing in for a host's visibility and resize
// callbacks.
type hostEvents struct {
	listener anim.Listener
	released int
}

func (h *hostEvents) Observe(l anim.Listener) func() {
	h.listener = l
	return func() { h.released++ }
}
