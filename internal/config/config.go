package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/foxjammin/sigilry/internal/anim"
	"github.com/foxjammin/sigilry/internal/field"
	"github.com/foxjammin/sigilry/internal/sigil"
	"github.com/foxjammin/sigilry/internal/theme"
)

type Config struct {
	Theme         string          `yaml:"theme"`
	Seed          *uint32         `yaml:"seed,omitempty"`
	ReducedMotion bool            `yaml:"reduced_motion"`
	Sigil         SigilConfig     `yaml:"sigil"`
	Animation     AnimationConfig `yaml:"animation"`
}

type SigilConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Glyphs      string  `yaml:"glyphs"`
	SpineGlyphs string  `yaml:"spine_glyphs"`
	Corner      string  `yaml:"corner"`
	FillBase    float64 `yaml:"fill_base"`
	FillGain    float64 `yaml:"fill_gain"`
	SpineChance float64 `yaml:"spine_chance"`
}

type AnimationConfig struct {
	FPS          int     `yaml:"fps"`
	TimeStep     float64 `yaml:"time_step"`
	MinCell      float64 `yaml:"min_cell"`
	CellDivisor  float64 `yaml:"cell_divisor"`
	BaseAlpha    float64 `yaml:"base_alpha"`
	AlphaGain    float64 `yaml:"alpha_gain"`
	VignetteGain float64 `yaml:"vignette_gain"`
	TintAlpha    float64 `yaml:"tint_alpha"`
	GlyphAlpha   float64 `yaml:"glyph_alpha"`
	Ramp         string  `yaml:"ramp"`
}

// envOverrides are applied after the file. Unset variables leave the
// pointers nil.
type envOverrides struct {
	Theme         *string `env:"SIGILRY_THEME"`
	FPS           *int    `env:"SIGILRY_FPS"`
	ReducedMotion *bool   `env:"SIGILRY_REDUCED_MOTION"`
	Seed          *uint32 `env:"SIGILRY_SEED"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme: theme.Terminal.Name,
		Sigil: SigilConfig{
			Width:       sigil.DefaultWidth,
			Height:      sigil.DefaultHeight,
			Glyphs:      sigil.DefaultGlyphs,
			SpineGlyphs: sigil.DefaultSpineGlyphs,
			Corner:      string(sigil.DefaultCorner),
			FillBase:    sigil.DefaultFillBase,
			FillGain:    sigil.DefaultFillGain,
			SpineChance: sigil.DefaultSpineChance,
		},
		Animation: AnimationConfig{
			FPS:          anim.DefaultFPS,
			TimeStep:     anim.DefaultTimeStep,
			MinCell:      anim.DefaultMinCell,
			CellDivisor:  anim.DefaultCellDivisor,
			BaseAlpha:    anim.DefaultBaseAlpha,
			AlphaGain:    anim.DefaultAlphaGain,
			VignetteGain: anim.DefaultVignetteGain,
			TintAlpha:    anim.DefaultTintAlpha,
			GlyphAlpha:   anim.DefaultGlyphAlpha,
			Ramp:         string(field.DefaultRamp),
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overlays the SIGILRY_* environment variables.
func (c *Config) ApplyEnv() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if o.Theme != nil {
		c.Theme = *o.Theme
	}
	if o.FPS != nil {
		c.Animation.FPS = *o.FPS
	}
	if o.ReducedMotion != nil {
		c.ReducedMotion = *o.ReducedMotion
	}
	if o.Seed != nil {
		seed := *o.Seed
		c.Seed = &seed
	}
	return nil
}

func (c *Config) Validate() error {
	if !theme.Valid(c.Theme) {
		return fmt.Errorf("%w: %q (have %v)", ErrUnknownTheme, c.Theme, theme.Names())
	}
	sc, err := c.SigilConfig()
	if err != nil {
		return err
	}
	if err := sc.Validate(); err != nil {
		return err
	}
	return c.AnimConfig().Validate()
}

// SigilConfig converts the sigil section to generator settings.
func (c *Config) SigilConfig() (sigil.Config, error) {
	s := c.Sigil
	if utf8.RuneCountInString(s.Corner) != 1 {
		return sigil.Config{}, fmt.Errorf("%w: %q", ErrCorner, s.Corner)
	}
	corner, _ := utf8.DecodeRuneInString(s.Corner)
	return sigil.Config{
		Width:       s.Width,
		Height:      s.Height,
		Glyphs:      []rune(s.Glyphs),
		SpineGlyphs: []rune(s.SpineGlyphs),
		Corner:      corner,
		FillBase:    s.FillBase,
		FillGain:    s.FillGain,
		SpineChance: s.SpineChance,
	}, nil
}

func (c *Config) AnimConfig() anim.Config {
	a := c.Animation
	return anim.Config{
		FPS:          a.FPS,
		TimeStep:     a.TimeStep,
		MinCell:      a.MinCell,
		CellDivisor:  a.CellDivisor,
		BaseAlpha:    a.BaseAlpha,
		AlphaGain:    a.AlphaGain,
		VignetteGain: a.VignetteGain,
		TintAlpha:    a.TintAlpha,
		GlyphAlpha:   a.GlyphAlpha,
		Ramp:         field.Ramp(a.Ramp),
	}
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	if c.Seed != nil {
		seed := *c.Seed
		cp.Seed = &seed
	}
	return &cp
}
