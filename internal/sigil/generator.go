package sigil

import (
	"math"

	"github.com/foxjammin/sigilry/internal/prng"
)

// Generator turns seeds into sigils. It is safe to share between callers
// because every Generate call owns its random source.
type Generator struct {
	cfg Config
}

func NewGenerator(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg}, nil
}

var defaultGenerator = &Generator{cfg: DefaultConfig()}

// Generate builds a 23×11 sigil with the default constants.
func Generate(seed uint32) Grid {
	return defaultGenerator.Generate(seed)
}

func (g *Generator) Config() Config { return g.cfg }

// Generate is pure: the same seed always yields the same grid.
//
// Draw order is part of the output contract:
//  1. mirror pass, rows top to bottom, columns 0..W/2: one draw for the
//     fill test and, when filled, one draw for the glyph;
//  2. spine pass, rows 1..H-2 of the centre column: one draw for the
//     spine test and, when taken, one draw for the spine glyph;
//  3. corners, no draws.
func (g *Generator) Generate(seed uint32) Grid {
	return g.generate(prng.New(seed))
}

func (g *Generator) generate(rng prng.Source) Grid {
	c := g.cfg
	cells := newGrid(c.Width, c.Height)

	g.mirrorPass(cells, rng)
	g.spinePass(cells, rng)

	last := c.Width - 1
	cells[0][0] = c.Corner
	cells[0][last] = c.Corner
	cells[c.Height-1][0] = c.Corner
	cells[c.Height-1][last] = c.Corner

	return Grid{cells: cells}
}

func (g *Generator) mirrorPass(cells [][]rune, rng prng.Source) {
	c := g.cfg
	cx := float64(c.Width-1) / 2
	cy := float64(c.Height-1) / 2

	for y := 0; y < c.Height; y++ {
		for x := 0; x <= c.Width/2; x++ {
			dx := math.Abs(float64(x) - cx)
			dy := math.Abs(float64(y) - cy)
			weight := math.Max(0, 1-dx/cx) * math.Max(0, 1-dy/cy)

			// denser towards the centre
			fill := c.FillBase + c.FillGain*weight
			ch := ' '
			if rng.Next() < fill {
				ch = pick(c.Glyphs, rng.Next())
			}
			cells[y][x] = ch
			cells[y][c.Width-1-x] = ch
		}
	}
}

func (g *Generator) spinePass(cells [][]rune, rng prng.Source) {
	c := g.cfg
	mid := c.Width / 2
	for y := 1; y < c.Height-1; y++ {
		if rng.Next() < c.SpineChance {
			cells[y][mid] = pick(c.SpineGlyphs, rng.Next())
		}
	}
}

func pick(set []rune, v float64) rune {
	i := int(v * float64(len(set)))
	if i >= len(set) {
		i = len(set) - 1
	}
	return set[i]
}
