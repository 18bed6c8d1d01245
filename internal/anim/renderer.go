package anim

import (
	"log/slog"
	"math"
	"time"

	"github.com/foxjammin/sigilry/internal/field"
)

const (
	tokenAccent   = "accent"
	tokenMuted    = "muted"
	tokenFontMono = "font-mono"

	fallbackAccent = "#6dff95"
	fallbackMuted  = "#88b39a"
	fallbackFont   = "monospace"

	// PauseDisabledReason explains why the pause control is inert.
	PauseDisabledReason = "Disabled due to reduced motion preference"
)

// Renderer schedules and draws the glyph field.
type Renderer struct {
	surface Surface
	ticks   TickSource
	theme   ThemeProvider
	cfg     Config
	log     *slog.Logger

	observers []Observer
	releases  []func()

	running       bool
	visible       bool
	reducedMotion bool

	started bool
	pending bool
	closed  bool

	t    float64
	last time.Duration

	width, height float64
	dpr           float64

	stats Stats
}

// Option configures a Renderer.
type Option func(*Renderer)

func WithTheme(p ThemeProvider) Option {
	return func(r *Renderer) { r.theme = p }
}

func WithConfig(cfg Config) Option {
	return func(r *Renderer) { r.cfg = cfg }
}

// WithReducedMotion is read once at construction. When set the renderer
// starts stopped and the pause control is disabled.
func WithReducedMotion(reduced bool) Option {
	return func(r *Renderer) { r.reducedMotion = reduced }
}

func WithObservers(obs ...Observer) Option {
	return func(r *Renderer) { r.observers = append(r.observers, obs...) }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

// New builds a renderer. A nil surface or tick source yields an inactive
// renderer whose methods do nothing.
func New(surface Surface, ticks TickSource, opts ...Option) *Renderer {
	r := &Renderer{
		surface: surface,
		ticks:   ticks,
		cfg:     DefaultConfig(),
		log:     nopLogger(),
		visible: true,
		dpr:     1,
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.cfg.Validate(); err != nil {
		r.log.Warn("falling back to default animation config", "err", err)
		r.cfg = DefaultConfig()
	}

	if !r.Active() {
		r.log.Debug("drawing surface or tick source unavailable, animation inactive")
		r.observers = nil
		return r
	}

	r.running = !r.reducedMotion
	for _, o := range r.observers {
		if o == nil {
			continue
		}
		if release := o.Observe(r); release != nil {
			r.releases = append(r.releases, release)
		}
	}
	r.log.Debug("renderer ready", "reduced_motion", r.reducedMotion, "fps", r.cfg.FPS, "observers", len(r.releases))
	return r
}

// Active reports whether the renderer has the capabilities it needs.
func (r *Renderer) Active() bool {
	return r != nil && r.surface != nil && r.ticks != nil
}

func (r *Renderer) usable() bool { return r.Active() && !r.closed }

// Start begins animation, or paints a single static frame when the
// renderer is stopped or hidden.
func (r *Renderer) Start() {
	if !r.usable() || r.started {
		return
	}
	r.started = true
	if r.running && r.visible {
		r.request()
		return
	}
	r.draw()
}

// SetRunning is the user pause toggle. It is ignored while reduced motion
// is in effect.
func (r *Renderer) SetRunning(running bool) {
	if !r.usable() || !r.PauseEnabled() {
		return
	}
	r.running = running
	r.log.Debug("running changed", "running", running)
	if r.started && r.running && r.visible {
		r.request()
	}
}

// Toggle flips the pause state and returns the new running value.
func (r *Renderer) Toggle() bool {
	r.SetRunning(!r.Running())
	return r.Running()
}

// OnVisibilityChange records whether the surface is on screen.
func (r *Renderer) OnVisibilityChange(visible bool) {
	if !r.usable() {
		return
	}
	r.visible = visible
	r.log.Debug("visibility changed", "visible", visible)
	if r.started && r.running && r.visible {
		r.request()
	}
}

// OnResize reconfigures the backing store and redraws at once, outside the
// throttle.
func (r *Renderer) OnResize(width, height, dpr float64) {
	if !r.usable() {
		return
	}
	r.width = math.Max(0, width)
	r.height = math.Max(0, height)
	r.dpr = math.Max(1, math.Floor(dpr))
	if math.IsNaN(r.dpr) {
		r.dpr = 1
	}

	bw := max(1, int(math.Floor(r.width*r.dpr)))
	bh := max(1, int(math.Floor(r.height*r.dpr)))
	r.surface.SetBacking(bw, bh, r.dpr)
	r.log.Debug("resized", "width", r.width, "height", r.height, "dpr", r.dpr, "backing_w", bw, "backing_h", bh)

	if !r.started || !r.visible {
		return
	}
	// A stopped renderer in reduced-motion mode still owns a static frame
	// that the new backing store has wiped.
	if r.running || r.reducedMotion {
		r.stats.ResizeDraws++
		r.draw()
	}
}

// Close releases observers and ignores any further ticks. It is safe to
// call more than once.
func (r *Renderer) Close() {
	if !r.Active() || r.closed {
		return
	}
	r.closed = true
	for i := len(r.releases) - 1; i >= 0; i-- {
		r.releases[i]()
	}
	r.releases = nil
	r.log.Debug("renderer closed", "draws", r.stats.Draws)
}

func (r *Renderer) budget() time.Duration {
	return time.Second / time.Duration(r.cfg.FPS)
}

func (r *Renderer) request() {
	if r.pending || r.closed {
		return
	}
	r.pending = true
	r.ticks.Request(r.frame)
}

func (r *Renderer) frame(now time.Duration) {
	r.pending = false
	if r.closed || !r.running || !r.visible {
		return
	}
	r.stats.Ticks++
	if now-r.last < r.budget() {
		r.stats.Throttled++
		r.request()
		return
	}
	r.last = now
	r.t += r.cfg.TimeStep
	r.draw()
	r.request()
}

// Draw paints one frame at the current clock without advancing it.
func (r *Renderer) Draw() {
	if !r.usable() {
		return
	}
	r.draw()
}

func (r *Renderer) draw() {
	w, h := r.width, r.height
	accent := r.token(tokenAccent, fallbackAccent)
	muted := r.token(tokenMuted, fallbackMuted)
	font := r.token(tokenFontMono, fallbackFont)

	s := r.surface
	s.Clear(0, 0, w, h)

	cell := r.CellSize()
	s.SetFont(cell, font)

	// background tint
	s.SetFillColor(muted)
	s.SetAlpha(r.cfg.TintAlpha)
	s.FillRect(0, 0, w, h)

	s.SetAlpha(r.cfg.GlyphAlpha)
	s.SetFillColor(accent)
	for y := 0.0; y < h+cell; y += cell {
		for x := 0.0; x < w+cell; x += cell {
			ch := r.cfg.Ramp.At(x, y, r.t)
			vignette := field.Vignette(x, y, w, h, r.cfg.VignetteGain)
			s.SetAlpha(r.cfg.BaseAlpha + r.cfg.AlphaGain*vignette)
			s.FillText(string(ch), x, y)
		}
	}
	s.SetAlpha(1)
	r.stats.Draws++
}

func (r *Renderer) token(name, fallback string) string {
	if r.theme == nil {
		return fallback
	}
	if v := r.theme.Lookup(name); v != "" {
		return v
	}
	return fallback
}

// CellSize is the glyph pitch in logical pixels, never below MinCell.
func (r *Renderer) CellSize() float64 {
	if r == nil {
		return DefaultMinCell
	}
	cell := r.cfg.MinCell
	if r.cfg.CellDivisor > 0 {
		cell = math.Max(cell, math.Floor(math.Min(r.width, r.height)/r.cfg.CellDivisor))
	}
	return cell
}

func (r *Renderer) Running() bool { return r != nil && r.running }
func (r *Renderer) Visible() bool { return r != nil && r.visible }

// Paused mirrors the pressed state of a pause button.
func (r *Renderer) Paused() bool { return !r.Running() }

// PauseEnabled is false when the reduced-motion preference was set.
func (r *Renderer) PauseEnabled() bool { return r != nil && !r.reducedMotion }

// Animating reports whether further frames will be scheduled.
func (r *Renderer) Animating() bool {
	return r.usable() && r.running && r.visible
}

// Time returns the simulation clock.
func (r *Renderer) Time() float64 {
	if r == nil {
		return 0
	}
	return r.t
}

// Size returns the logical surface size and device pixel ratio.
func (r *Renderer) Size() (width, height, dpr float64) {
	if r == nil {
		return 0, 0, 1
	}
	return r.width, r.height, r.dpr
}

func (r *Renderer) Config() Config {
	if r == nil {
		return DefaultConfig()
	}
	return r.cfg
}

func (r *Renderer) Stats() Stats {
	if r == nil {
		return Stats{}
	}
	return r.stats
}
