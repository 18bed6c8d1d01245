package viz

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/foxjammin/sigilry/internal/anim"
)

type frameMsg time.Time

// frameTicks turns renderer frame requests into bubbletea ticks. At most one
// tick is in flight; requests made meanwhile ride on it.
type frameTicks struct {
	start     time.Time
	period    time.Duration
	queue     []anim.FrameFunc
	scheduled bool
}

func newFrameTicks(period time.Duration) *frameTicks {
	return &frameTicks{start: time.Now(), period: period}
}

func (f *frameTicks) Request(fn anim.FrameFunc) {
	f.queue = append(f.queue, fn)
}

func (f *frameTicks) deliver(at time.Time) {
	f.scheduled = false
	queue := f.queue
	f.queue = nil
	now := at.Sub(f.start)
	for _, fn := range queue {
		fn(now)
	}
}

func (f *frameTicks) cmd() tea.Cmd {
	if len(f.queue) == 0 || f.scheduled {
		return nil
	}
	f.scheduled = true
	return tea.Tick(f.period, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// hostEvents fans terminal focus and size messages out to subscribed
// renderers.
type hostEvents struct {
	listeners map[int]anim.Listener
	next      int
}

func newHostEvents() *hostEvents {
	return &hostEvents{listeners: make(map[int]anim.Listener)}
}

func (h *hostEvents) Observe(l anim.Listener) func() {
	id := h.next
	h.next++
	h.listeners[id] = l
	return func() { delete(h.listeners, id) }
}

func (h *hostEvents) visibility(visible bool) {
	for _, l := range h.listeners {
		l.OnVisibilityChange(visible)
	}
}

func (h *hostEvents) resize(w, hgt, dpr float64) {
	for _, l := range h.listeners {
		l.OnResize(w, hgt, dpr)
	}
}
