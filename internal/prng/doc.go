// Package prng provides the deterministic random source behind sigil
// generation.
//
// [Mulberry32] keeps a single 32-bit counter. Every draw adds a fixed odd
// increment and avalanches the result, so a seed fully determines an
// unbounded stream of values:
//
//	r := prng.New(42)
//	v := r.Next() // [0, 1)
//
// All arithmetic wraps at 32 bits on every platform.
package prng
