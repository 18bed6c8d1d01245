package anim

import "time"

// FramePeriod60 is the interval of a 60 Hz display.
const FramePeriod60 = time.Second / 60

// ManualTicks is a synthetic [TickSource] advanced explicitly by the caller.
// Requests made while a tick is being delivered wait for the next Advance.
type ManualTicks struct {
	now   time.Duration
	queue []FrameFunc
}

func NewManualTicks() *ManualTicks { return &ManualTicks{} }

func (m *ManualTicks) Request(fn FrameFunc) {
	m.queue = append(m.queue, fn)
}

// Advance moves the clock by d and delivers every pending request.
func (m *ManualTicks) Advance(d time.Duration) {
	m.now += d
	queue := m.queue
	m.queue = nil
	for _, fn := range queue {
		fn(m.now)
	}
}

// Run advances n times by period.
func (m *ManualTicks) Run(n int, period time.Duration) {
	for i := 0; i < n; i++ {
		m.Advance(period)
	}
}

func (m *ManualTicks) Now() time.Duration { return m.now }
func (m *ManualTicks) Pending() int       { return len(m.queue) }
