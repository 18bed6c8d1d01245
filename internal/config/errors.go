package config

import "errors"

var (
	// ErrUnknownTheme indicates a theme name with no built-in palette.
	ErrUnknownTheme = errors.New("config: unknown theme")

	// ErrCorner indicates a corner glyph that is not exactly one rune.
	ErrCorner = errors.New("config: corner must be a single glyph")

	// ErrUnknownPreset indicates a preset name that is not registered.
	ErrUnknownPreset = errors.New("config: unknown preset")
)
