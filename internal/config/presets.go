package config

import (
	"fmt"
	"sort"

	"github.com/foxjammin/sigilry/internal/theme"
)

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"calm": func() *Config {
		c := DefaultConfig()
		c.Theme = theme.Obsidian.Name
		c.Animation.FPS = 8
		c.Animation.TimeStep = 0.08
		c.Animation.BaseAlpha = 0.08
		c.Animation.AlphaGain = 0.5
		c.Sigil.FillGain = 0.36
		return c
	}(),
	"dense": func() *Config {
		c := DefaultConfig()
		c.Animation.MinCell = 8
		c.Animation.CellDivisor = 60
		c.Sigil.Width = 31
		c.Sigil.Height = 15
		c.Sigil.FillBase = 0.15
		return c
	}(),
	// One glyph per terminal cell: the cell size never grows with the
	// surface.
	"terminal": func() *Config {
		c := DefaultConfig()
		c.Animation.CellDivisor = 0
		return c
	}(),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

// Resolve loads path if non-empty, otherwise the named preset, then applies
// the environment and validates.
func Resolve(path, preset string) (*Config, error) {
	var cfg *Config
	switch {
	case path != "":
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case preset != "":
		cfg = GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
		}
	default:
		cfg = DefaultConfig()
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
