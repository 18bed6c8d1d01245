package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/foxjammin/sigilry/internal/config"
	"github.com/foxjammin/sigilry/internal/prng"
)

var (
	configFile string
	preset     string
	verbose    bool

	seed        uint32
	verifyCount int
	svgOut      string
	svgSize     float64

	themeName     string
	frameRate     int
	reducedMotion bool

	width     int
	height    int
	atTime    float64
	plain     bool
	outFile   string
	gifFile   string
	dpr       float64
	numFrames int
)

// main registers the commands and runs the live view when no subcommand is
// given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "sigilry",
		Short:         "seeded sigils and an animated glyph field",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runLive,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	addLiveFlags(rootCmd)

	sigilCmd := &cobra.Command{
		Use:   "sigil",
		Short: "print a sigil and its seed",
		Args:  cobra.NoArgs,
		RunE:  runSigil,
	}
	sigilCmd.Flags().Uint32Var(&seed, "seed", 0, "sigil seed (random when unset)")
	sigilCmd.Flags().StringVar(&svgOut, "svg", "", "also write the sigil as svg")
	sigilCmd.Flags().Float64Var(&svgSize, "svg-size", 18, "svg font size")
	sigilCmd.Flags().StringVar(&themeName, "theme", "", "theme for svg output")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "check determinism, symmetry and corners for a seed",
		Args:  cobra.NoArgs,
		RunE:  runVerify,
	}
	verifyCmd.Flags().Uint32Var(&seed, "seed", 0, "sigil seed (random when unset)")
	verifyCmd.Flags().IntVar(&verifyCount, "count", 1, "verify this many consecutive seeds")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animated glyph field with a sigil panel",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addLiveFlags(liveCmd)

	frameCmd := &cobra.Command{
		Use:   "frame",
		Short: "render one field frame to stdout",
		Args:  cobra.NoArgs,
		RunE:  runFrame,
	}
	frameCmd.Flags().IntVar(&width, "width", 80, "columns")
	frameCmd.Flags().IntVar(&height, "height", 24, "rows")
	frameCmd.Flags().Float64Var(&atTime, "t", 0, "field time")
	frameCmd.Flags().BoolVar(&plain, "plain", false, "glyphs only, no colour")
	frameCmd.Flags().StringVar(&svgOut, "svg", "", "write the frame as svg instead")
	frameCmd.Flags().StringVar(&themeName, "theme", "", "colour theme")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render the field to png (and optionally gif)",
		Args:  cobra.NoArgs,
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().StringVarP(&outFile, "out", "o", "sigilry.png", "png output path")
	snapshotCmd.Flags().StringVar(&gifFile, "gif", "", "record every frame to this gif")
	snapshotCmd.Flags().IntVar(&width, "width", 1280, "logical width")
	snapshotCmd.Flags().IntVar(&height, "height", 720, "logical height")
	snapshotCmd.Flags().Float64Var(&dpr, "dpr", 1, "device pixel ratio")
	snapshotCmd.Flags().IntVar(&numFrames, "frames", 1, "accepted frames to run before saving")
	snapshotCmd.Flags().StringVar(&themeName, "theme", "", "colour theme")

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list themes",
		Args:  cobra.NoArgs,
		RunE:  listThemes,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(sigilCmd, verifyCmd, liveCmd, frameCmd, snapshotCmd, themesCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addLiveFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&themeName, "theme", "", "colour theme")
	cmd.Flags().IntVar(&frameRate, "fps", 0, "frame budget (config value when 0)")
	cmd.Flags().BoolVar(&reducedMotion, "reduced-motion", false, "draw a single static frame")
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig resolves file, preset and environment, then applies the
// command's flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Resolve(configFile, preset)
	if err != nil {
		return nil, err
	}
	if f := cmd.Flags().Lookup("theme"); f != nil && f.Changed {
		cfg.Theme = themeName
	}
	if f := cmd.Flags().Lookup("fps"); f != nil && f.Changed {
		cfg.Animation.FPS = frameRate
	}
	if f := cmd.Flags().Lookup("reduced-motion"); f != nil && f.Changed {
		cfg.ReducedMotion = reducedMotion
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// pickSeed prefers --seed, then the config, then a fresh seed.
func pickSeed(cmd *cobra.Command, cfg *config.Config) uint32 {
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		return seed
	}
	if cfg.Seed != nil {
		return *cfg.Seed
	}
	return prng.NewSeed()
}
