// Package config holds runtime configuration: defaults, layered loading
// (config file, environment, CLI flags), and validation.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// --- Enum types for validated string fields ---

// CollisionMode selects the collision-mesh approximation requested from the
// external converter. "none" disables the collision mesh entirely.
type CollisionMode string

const (
	CollisionNone                CollisionMode = "none"
	CollisionConvexHull          CollisionMode = "convexHull"
	CollisionConvexDecomposition CollisionMode = "convexDecomposition"
	CollisionMeshSimplification  CollisionMode = "meshSimplification"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// layered by [Load], and finally overridden by CLI flags before being passed
// (by pointer) to packages that need it.
type Config struct {
	// Paths (set from positional args).
	InputDir  string
	OutputDir string

	// Batch selection.
	Subdirs string // Optional range spec over top-level subdirectories.

	// Converter settings.
	ConverterCmd           string        // External converter command. Default: "mesh2usd".
	MakeInstanceable       bool          // Make converted assets instanceable for cloning.
	CollisionApproximation CollisionMode // Default: "none".
	MassKg                 float64       // Mass to assign; <= 0 means no mass properties.

	// Normalization and occupancy-grid parameters forwarded to the converter.
	MaxLen   int // Max side length the shape is rescaled to. Default: 8.
	EnvSize  int // Environment size. Default: 20.
	GridSize int // Occupancy grid resolution. Default: 20.

	// Behavior flags.
	DryRun       bool
	SkipExisting bool // Default: true. Cleared by --force.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with the stock conversion parameters.
// Used as the base before [Load] and flag overrides.
func DefaultConfig() Config {
	return Config{
		ConverterCmd:           "mesh2usd",
		MakeInstanceable:       false,
		CollisionApproximation: CollisionNone,
		MassKg:                 0,
		MaxLen:                 8,
		EnvSize:                20,
		GridSize:               20,
		DryRun:                 false,
		SkipExisting:           true,
		Verbose:                false,
		ColorMode:              ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and numeric parameters, and requires both
// directory paths when checkOnly is false.
func (c *Config) Validate(checkOnly bool) error {
	switch c.CollisionApproximation {
	case CollisionNone, CollisionConvexHull, CollisionConvexDecomposition, CollisionMeshSimplification:
		// valid
	default:
		return fmt.Errorf("invalid collision approximation %q (use none, convexHull, convexDecomposition or meshSimplification)",
			c.CollisionApproximation)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.ConverterCmd == "" {
		return errors.New("converter command must not be empty")
	}
	if c.MaxLen <= 0 || c.EnvSize <= 0 || c.GridSize <= 0 {
		return errors.New("max-len, env-size and grid-size must be positive")
	}

	if checkOnly {
		return nil
	}
	if c.InputDir == "" || c.OutputDir == "" {
		return errors.New("need exactly input_dir and output_dir")
	}
	return nil
}

// ValidatePaths ensures the resolved output directory is not inside (or equal
// to) the resolved input directory. This prevents the pipeline from
// recursively discovering its own output files. Both arguments must be
// absolute, symlink-resolved paths.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	sep := string(filepath.Separator)
	if outputAbs == inputAbs || strings.HasPrefix(outputAbs+sep, inputAbs+sep) {
		return errors.New("output directory must not be inside input directory")
	}
	return nil
}
