package anim

// Stats counts scheduler activity since construction.
type Stats struct {
	Ticks       int // opportunities seen while animating
	Throttled   int // opportunities skipped by the frame budget
	Draws       int // frames painted, including static and resize draws
	ResizeDraws int
}

// AcceptRate is the fraction of animating ticks that produced a frame.
func (s Stats) AcceptRate() float64 {
	if s.Ticks == 0 {
		return 0
	}
	return float64(s.Ticks-s.Throttled) / float64(s.Ticks)
}
