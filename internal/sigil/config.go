package sigil

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

const (
	DefaultWidth       = 23
	DefaultHeight      = 11
	DefaultGlyphs      = `/\|_-+=*#@`
	DefaultSpineGlyphs = "|+"
	DefaultCorner      = '+'
	DefaultFillBase    = 0.08
	DefaultFillGain    = 0.48
	DefaultSpineChance = 0.55
)

// Config fixes the grid shape, glyph sets and probability constants.
// Changing any field changes output, but never the order of the passes.
type Config struct {
	Width       int
	Height      int
	Glyphs      []rune
	SpineGlyphs []rune
	Corner      rune
	FillBase    float64
	FillGain    float64
	SpineChance float64
}

func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Glyphs:      []rune(DefaultGlyphs),
		SpineGlyphs: []rune(DefaultSpineGlyphs),
		Corner:      DefaultCorner,
		FillBase:    DefaultFillBase,
		FillGain:    DefaultFillGain,
		SpineChance: DefaultSpineChance,
	}
}

// Validate checks that the config can produce a fixed-width symmetric grid.
func (c Config) Validate() error {
	if c.Width < 3 || c.Height < 3 {
		return fmt.Errorf("%w: got %dx%d", ErrTooSmall, c.Width, c.Height)
	}
	if c.Width%2 == 0 {
		return fmt.Errorf("%w: got %d", ErrEvenWidth, c.Width)
	}
	if len(c.Glyphs) == 0 {
		return fmt.Errorf("%w: fill", ErrEmptyGlyphs)
	}
	if len(c.SpineGlyphs) == 0 {
		return fmt.Errorf("%w: spine", ErrEmptyGlyphs)
	}
	for _, set := range [][]rune{c.Glyphs, c.SpineGlyphs, {c.Corner}} {
		for _, r := range set {
			if runewidth.RuneWidth(r) != 1 {
				return fmt.Errorf("%w: %q", ErrGlyphWidth, r)
			}
		}
	}
	for name, p := range map[string]float64{
		"fill_base":    c.FillBase,
		"fill_gain":    c.FillGain,
		"spine_chance": c.SpineChance,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: %s=%v", ErrProbability, name, p)
		}
	}
	return nil
}
