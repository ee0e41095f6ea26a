package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/simforge/meshbatch/internal/config"
)

// version and commit are set at build time via -ldflags.
var (
	version = "0.1.0-dev"
	commit  = "unknown"
)

// Flag storage. Defaults mirror config.DefaultConfig; flags only override
// the layered config when explicitly set (checked via Changed).
var (
	cfgFile       string
	flagConverter string
	flagVerbose   bool
	flagColor     string
	flagLogFile   string

	flagSubdirs          string
	flagMakeInstanceable bool
	flagCollision        string
	flagMass             float64
	flagMaxLen           int
	flagEnvSize          int
	flagGridSize         int
	flagDryRun           bool
	flagForce            bool
)

var rootCmd = &cobra.Command{
	Use:   "meshbatch INPUT_DIR OUTPUT_DIR",
	Short: "Batch-convert 3D asset files to USD",
	Long: TitleStyle.Render("meshbatch") + SubtitleStyle.Render(" - 3D asset to USD batch converter") + `

meshbatch walks an input tree of mesh files (.glb, .obj, .fbx), derives a
mirrored output location for each, and drives an external mesh-to-USD
converter once per file with a single-line progress display.

Numbered top-level subdirectories can be narrowed with a compact range
spec: two endpoints sharing a prefix, separated by "..", upper endpoint
exclusive.

` + SubtitleStyle.Render("Examples:") + `
  meshbatch ./assets ./usd
  meshbatch --subdirs 000-000..000-010 ./assets ./usd
  meshbatch --collision-approximation convexHull --mass 2.5 ./assets ./usd
  meshbatch expand 000-000..000-010`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
}

func init() {
	// Assigned here rather than in the literal above to avoid an
	// initialization cycle (runConvert -> applyFlags -> rootCmd).
	rootCmd.RunE = runConvert
	defaults := config.DefaultConfig()

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/meshbatch/config.toml)")
	pf.StringVar(&flagConverter, "converter", defaults.ConverterCmd, "external mesh-to-USD converter command")
	pf.BoolVarP(&flagVerbose, "verbose", "v", defaults.Verbose, "enable verbose output")
	pf.StringVar(&flagColor, "color", string(defaults.ColorMode), "color output: auto | always | never")
	pf.StringVar(&flagLogFile, "log-file", "", "append plain-text log lines to this file")

	f := rootCmd.Flags()
	f.StringVar(&flagSubdirs, "subdirs", "",
		"range of top-level subdirectory names to include, exclusive of the endpoint (e.g. '000-000..000-010'); all subdirectories when omitted")
	f.BoolVar(&flagMakeInstanceable, "make-instanceable", defaults.MakeInstanceable,
		"make the converted assets instanceable for efficient cloning")
	f.StringVar(&flagCollision, "collision-approximation", string(defaults.CollisionApproximation),
		"collision mesh approximation: none | convexHull | convexDecomposition | meshSimplification")
	f.Float64Var(&flagMass, "mass", defaults.MassKg,
		"mass (in kg) to assign to converted assets; no mass properties when 0")
	f.IntVar(&flagMaxLen, "max-len", defaults.MaxLen, "max side length the shape is rescaled to")
	f.IntVar(&flagEnvSize, "env-size", defaults.EnvSize, "environment size forwarded to the converter")
	f.IntVar(&flagGridSize, "grid-size", defaults.GridSize, "occupancy grid resolution forwarded to the converter")
	f.BoolVar(&flagDryRun, "dry-run", false, "log what would be converted without running the converter")
	f.BoolVar(&flagForce, "force", false, "convert even when the destination already exists")

	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(checkCmd)
}

// Execute runs the CLI through fang for styled help, version, and signal
// handling. Called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func versionString() string {
	if commit == "unknown" {
		return version
	}
	return version + " (" + commit + ")"
}

// loadConfig layers defaults, config file, environment, and explicitly set
// CLI flags into one Config.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cfg, err
	}
	applyFlags(&cfg)
	return cfg, nil
}

// applyFlags overrides cfg with every flag the user actually set. Flags win
// over both the config file and environment variables.
func applyFlags(cfg *config.Config) {
	pf := rootCmd.PersistentFlags()
	if pf.Changed("converter") {
		cfg.ConverterCmd = flagConverter
	}
	if pf.Changed("verbose") {
		cfg.Verbose = flagVerbose
	}
	if pf.Changed("color") {
		cfg.ColorMode = config.ColorMode(flagColor)
	}
	if pf.Changed("log-file") {
		cfg.LogFile = flagLogFile
	}

	f := rootCmd.Flags()
	if f.Changed("subdirs") {
		cfg.Subdirs = flagSubdirs
	}
	if f.Changed("make-instanceable") {
		cfg.MakeInstanceable = flagMakeInstanceable
	}
	if f.Changed("collision-approximation") {
		cfg.CollisionApproximation = config.CollisionMode(flagCollision)
	}
	if f.Changed("mass") {
		cfg.MassKg = flagMass
	}
	if f.Changed("max-len") {
		cfg.MaxLen = flagMaxLen
	}
	if f.Changed("env-size") {
		cfg.EnvSize = flagEnvSize
	}
	if f.Changed("grid-size") {
		cfg.GridSize = flagGridSize
	}
	if f.Changed("dry-run") {
		cfg.DryRun = flagDryRun
	}
	if flagForce {
		cfg.SkipExisting = false
	}
}
