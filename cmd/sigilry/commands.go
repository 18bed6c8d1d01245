package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/foxjammin/sigilry/internal/anim"
	"github.com/foxjammin/sigilry/internal/config"
	"github.com/foxjammin/sigilry/internal/export"
	"github.com/foxjammin/sigilry/internal/raster"
	"github.com/foxjammin/sigilry/internal/sigil"
	"github.com/foxjammin/sigilry/internal/theme"
	"github.com/foxjammin/sigilry/internal/viz"
)

func newGenerator(cfg *config.Config) (*sigil.Generator, error) {
	sc, err := cfg.SigilConfig()
	if err != nil {
		return nil, err
	}
	return sigil.NewGenerator(sc)
}

func runSigil(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}
	s := pickSeed(cmd, cfg)
	g := gen.Generate(s)

	fmt.Println(g.String())
	fmt.Printf("seed: %d\n", s)

	if svgOut != "" {
		doc := export.SigilToSVG(g, theme.Get(cfg.Theme), svgSize)
		if err := os.WriteFile(svgOut, []byte(doc), 0644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		fmt.Printf("svg written to %s\n", svgOut)
	}
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}
	s := pickSeed(cmd, cfg)

	if verifyCount > 1 {
		started := time.Now()
		if err := gen.Sweep(cmd.Context(), s, verifyCount); err != nil {
			return err
		}
		fmt.Printf("ok    %d seeds from %d in %s\n", verifyCount, s, time.Since(started).Round(time.Millisecond))
		return nil
	}
	if err := gen.Verify(s); err != nil {
		return err
	}
	fmt.Printf("ok    seed %d: deterministic, mirrored, corners %q\n", s, gen.Config().Corner)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := cfg.SigilConfig()
	if err != nil {
		return err
	}
	ac := cfg.AnimConfig()
	// The terminal canvas has a fixed cell pitch.
	ac.CellDivisor = 0

	opts := viz.Options{
		Anim:          ac,
		Sigil:         sc,
		Theme:         cfg.Theme,
		RandomSeed:    cfg.Seed == nil,
		ReducedMotion: cfg.ReducedMotion,
		Logger:        newLogger(),
	}
	if cfg.Seed != nil {
		opts.Seed = *cfg.Seed
	}
	return viz.Run(opts)
}

// renderFrame draws a single frame at field time t onto a cols×rows canvas.
func renderFrame(cfg *config.Config, cols, rows int, t float64) *viz.Canvas {
	ac := cfg.AnimConfig()
	ac.CellDivisor = 0
	// One accepted frame advances the clock by exactly TimeStep.
	ac.TimeStep = t

	themes := theme.NewSwitcher(cfg.Theme)
	canvas := viz.NewCanvas(cols, rows, ac.MinCell)
	canvas.SetBase(themes.Lookup(theme.TokenBackground))

	ticks := anim.NewManualTicks()
	r := anim.New(canvas, ticks, anim.WithConfig(ac), anim.WithTheme(themes), anim.WithLogger(newLogger()))
	defer r.Close()
	r.OnResize(float64(cols)*ac.MinCell, float64(rows)*ac.MinCell, 1)
	r.Start()
	ticks.Advance(time.Second)
	return canvas
}

func runFrame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if width < 1 || height < 1 {
		return fmt.Errorf("frame size must be positive, got %dx%d", width, height)
	}
	canvas := renderFrame(cfg, width, height, atTime)

	switch {
	case svgOut != "":
		if err := os.WriteFile(svgOut, []byte(export.CanvasToSVG(canvas, 14)), 0644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		fmt.Printf("svg written to %s\n", svgOut)
	case plain:
		fmt.Println(canvas.Plain())
	default:
		fmt.Println(canvas.String())
	}
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger()

	surface, err := raster.New(1, 1)
	if err != nil {
		return err
	}
	defer surface.Close()

	ticks := anim.NewManualTicks()
	r := anim.New(surface, ticks,
		anim.WithConfig(cfg.AnimConfig()),
		anim.WithTheme(theme.NewSwitcher(cfg.Theme)),
		anim.WithLogger(logger))
	defer r.Close()

	r.OnResize(float64(width), float64(height), dpr)
	r.Start()

	period := time.Second / time.Duration(cfg.Animation.FPS)
	var rec *raster.Recorder
	if gifFile != "" {
		rec = raster.NewRecorder(period)
	}
	for i := 0; i < max(1, numFrames); i++ {
		ticks.Advance(period)
		if rec != nil {
			rec.Capture(surface)
		}
	}

	if err := surface.SavePNG(outFile); err != nil {
		return err
	}
	logger.Info("snapshot saved", "path", outFile, "t", r.Time(), "draws", r.Stats().Draws)
	fmt.Printf("png written to %s (%dx%d, t=%.2f)\n", outFile, surface.Width(), surface.Height(), r.Time())

	if rec != nil {
		if err := rec.Save(gifFile); err != nil {
			return err
		}
		fmt.Printf("gif written to %s (%d frames)\n", gifFile, rec.Len())
	}
	return nil
}

func listThemes(cmd *cobra.Command, args []string) error {
	for _, t := range theme.Themes {
		swatch := lipgloss.NewStyle().Background(t.Background).Foreground(t.Accent).Render(" ## ")
		fmt.Printf("%s %-10s %s\n", swatch, t.Name, t.Label)
	}
	return nil
}
