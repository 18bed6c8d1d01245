package anim

import (
	"errors"
	"fmt"

	"github.com/foxjammin/sigilry/internal/field"
)

const (
	DefaultFPS          = 12
	DefaultTimeStep     = 0.15
	DefaultMinCell      = 11
	DefaultCellDivisor  = 34
	DefaultBaseAlpha    = 0.12
	DefaultAlphaGain    = 0.78
	DefaultVignetteGain = 2.1
	DefaultTintAlpha    = 0.18
	DefaultGlyphAlpha   = 0.9
)

// ErrInvalidConfig indicates an unusable animation setting.
var ErrInvalidConfig = errors.New("anim: invalid config")

// Config holds the draw and throttle constants.
type Config struct {
	FPS          int
	TimeStep     float64
	MinCell      float64
	CellDivisor  float64
	BaseAlpha    float64
	AlphaGain    float64
	VignetteGain float64
	TintAlpha    float64
	GlyphAlpha   float64
	Ramp         field.Ramp
}

func DefaultConfig() Config {
	return Config{
		FPS:          DefaultFPS,
		TimeStep:     DefaultTimeStep,
		MinCell:      DefaultMinCell,
		CellDivisor:  DefaultCellDivisor,
		BaseAlpha:    DefaultBaseAlpha,
		AlphaGain:    DefaultAlphaGain,
		VignetteGain: DefaultVignetteGain,
		TintAlpha:    DefaultTintAlpha,
		GlyphAlpha:   DefaultGlyphAlpha,
		Ramp:         field.DefaultRamp,
	}
}

func (c Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if c.MinCell < 1 {
		return fmt.Errorf("%w: min cell must be at least 1, got %v", ErrInvalidConfig, c.MinCell)
	}
	if c.Ramp.Len() == 0 {
		return fmt.Errorf("%w: empty glyph ramp", ErrInvalidConfig)
	}
	for name, a := range map[string]float64{
		"base_alpha":  c.BaseAlpha,
		"tint_alpha":  c.TintAlpha,
		"glyph_alpha": c.GlyphAlpha,
	} {
		if a < 0 || a > 1 {
			return fmt.Errorf("%w: %s=%v outside [0,1]", ErrInvalidConfig, name, a)
		}
	}
	return nil
}
