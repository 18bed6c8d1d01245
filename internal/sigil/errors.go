package sigil

import (
	"errors"
	"strconv"
)

var (
	// ErrEvenWidth indicates a grid without a true centre column.
	ErrEvenWidth = errors.New("sigil: width must be odd")

	// ErrTooSmall indicates a grid below 3x3.
	ErrTooSmall = errors.New("sigil: grid must be at least 3x3")

	// ErrEmptyGlyphs indicates an empty fill or spine glyph set.
	ErrEmptyGlyphs = errors.New("sigil: glyph set is empty")

	// ErrGlyphWidth indicates a glyph that does not occupy exactly one column.
	ErrGlyphWidth = errors.New("sigil: glyph is not single-width")

	// ErrProbability indicates a probability constant outside [0, 1].
	ErrProbability = errors.New("sigil: probability out of range")
)

// ErrBroken indicates a generated grid that fails a generator guarantee.
var ErrBroken = errors.New("sigil: broken grid")

// SeedError attaches the offending seed to a verification failure.
type SeedError struct {
	Seed    uint32
	Problem string
}

func (e *SeedError) Error() string {
	return "sigil: seed " + strconv.FormatUint(uint64(e.Seed), 10) + ": " + e.Problem
}

func (e *SeedError) Unwrap() error { return ErrBroken }
