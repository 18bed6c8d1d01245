package anim

import "time"

// Surface is the drawing context the renderer paints on. Coordinates are
// logical pixels; implementations scale them to their backing resolution.
type Surface interface {
	Clear(x, y, w, h float64)
	SetFillColor(color string)
	SetAlpha(alpha float64)
	FillRect(x, y, w, h float64)
	SetFont(size float64, family string)
	// FillText draws s with its top edge at y.
	FillText(s string, x, y float64)
	// SetBacking resizes the backing store to width×height device pixels
	// at the given logical-to-device scale.
	SetBacking(width, height int, scale float64)
}

// ThemeProvider resolves named tokens such as "accent" to concrete values.
// An empty result means the token is unknown.
type ThemeProvider interface {
	Lookup(token string) string
}

// FrameFunc receives a monotonic timestamp for one scheduling opportunity.
type FrameFunc func(now time.Duration)

// TickSource delivers a single future scheduling opportunity per Request.
type TickSource interface {
	Request(fn FrameFunc)
}

// Listener receives host events.
type Listener interface {
	OnVisibilityChange(visible bool)
	OnResize(width, height, dpr float64)
}

// Observer is an event source that a renderer subscribes to at
// construction. The returned func unsubscribes; it may be nil.
type Observer interface {
	Observe(l Listener) (release func())
}

// ObserverFunc adapts a function to [Observer].
type ObserverFunc func(l Listener) func()

func (f ObserverFunc) Observe(l Listener) func() { return f(l) }
