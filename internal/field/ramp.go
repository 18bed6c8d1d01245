package field

// DefaultRamp orders glyphs from empty to dense.
const DefaultRamp Ramp = " .:-=+*#%@"

// Ramp discretises a [0, 1] value into one of its glyphs.
type Ramp string

// Glyph picks floor(v01*(n-1)); out-of-range input is clamped.
func (r Ramp) Glyph(v01 float64) rune {
	glyphs := []rune(string(r))
	if len(glyphs) == 0 {
		return ' '
	}
	i := int(Clamp01(v01) * float64(len(glyphs)-1))
	return glyphs[i]
}

// At samples the field and returns the glyph for that position.
func (r Ramp) At(x, y, t float64) rune {
	return r.Glyph(Normalize(Sample(x, y, t)))
}

func (r Ramp) Len() int { return len([]rune(string(r))) }
