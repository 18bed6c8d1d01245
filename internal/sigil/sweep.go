package sigil

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// Verify regenerates seed twice and checks determinism, mirror symmetry
// and the corner glyphs. It returns a *SeedError on the first failure.
func (g *Generator) Verify(seed uint32) error {
	a, b := g.Generate(seed), g.Generate(seed)
	if a.String() != b.String() {
		return &SeedError{Seed: seed, Problem: "same seed produced different grids"}
	}
	if !a.Mirrored() {
		return &SeedError{Seed: seed, Problem: "grid is not mirrored about the centre column"}
	}
	for i, c := range a.Corners() {
		if c != g.cfg.Corner {
			return &SeedError{Seed: seed, Problem: fmt.Sprintf("corner %d is %q, want %q", i, c, g.cfg.Corner)}
		}
	}
	return nil
}

// Sweep verifies count consecutive seeds starting at start, wrapping at
// 2^32. Seeds are split into chunks checked in parallel; the failure with
// the lowest offset is returned.
func (g *Generator) Sweep(ctx context.Context, start uint32, count int) error {
	if count <= 0 {
		return nil
	}
	errs := make([]error, count)
	parallelFor(count, 256, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			errs[i] = g.Verify(start + uint32(i))
		}
	})

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// parallelFor runs fn over [0, n) in contiguous chunks of at least minChunk.
func parallelFor(n, minChunk int, fn func(start, end int)) {
	workers := runtime.GOMAXPROCS(0)
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}
	workers = max(1, min(workers, n/minChunk))
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(n, start+chunkSize)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
