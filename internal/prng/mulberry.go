package prng

import (
	"math/rand/v2"
	"time"
)

const (
	increment = 0x6D2B79F5
	scale     = 1 << 32
)

// Source yields uniform values in [0, 1).
type Source interface {
	Next() float64
}

// Mulberry32 is an additive-recurrence generator with avalanche mixing.
// The zero value is a valid generator seeded with 0.
type Mulberry32 struct {
	state uint32
}

func New(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Uint32 advances the counter and returns the mixed 32-bit output.
func (m *Mulberry32) Uint32() uint32 {
	m.state += increment
	z := m.state
	z = (z ^ z>>15) * (z | 1)
	z ^= z + (z^z>>7)*(z|61)
	return z ^ z>>14
}

// Next returns the next value in [0, 1).
func (m *Mulberry32) Next() float64 {
	return float64(m.Uint32()) / scale
}

// State reports the raw counter, mostly useful for debugging draw order.
func (m *Mulberry32) State() uint32 { return m.state }

// NewSeed mixes wall-clock milliseconds with a runtime random draw.
func NewSeed() uint32 {
	ms := uint64(time.Now().UnixMilli())
	return uint32(ms) ^ rand.Uint32()
}
