// Package check provides system diagnostics (the check subcommand) and
// pre-batch dependency validation for the external mesh converter.
package check

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/simforge/meshbatch/internal/config"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// RunCheck runs the interactive check flow: converter availability, version
// probe, and a summary of the active conversion parameters. Informational
// only, it does not stop on failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")

	checkConverter(cfg, log)

	log.Info("Recognized input formats: .glb, .obj, .fbx")
	log.Info("Normalization: max side %d, env %d, grid %d", cfg.MaxLen, cfg.EnvSize, cfg.GridSize)
	log.Info("Collision approximation: %s", cfg.CollisionApproximation)
	if cfg.MakeInstanceable {
		log.Info("Instanceable assets: enabled")
	}
}

// CheckDeps verifies the converter command is runnable before the batch
// starts; the pipeline fails fast on a missing binary rather than erroring
// on the first file.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath(cfg.ConverterCmd); err != nil {
		return fmt.Errorf("converter %q not found on PATH", cfg.ConverterCmd)
	}
	return nil
}

// checkConverter verifies the converter is on PATH and logs its version.
func checkConverter(cfg *config.Config, log Logger) {
	path, err := exec.LookPath(cfg.ConverterCmd)
	if err != nil {
		log.Error("converter %q not found on PATH", cfg.ConverterCmd)
		return
	}
	log.Success("converter: %s", path)

	out, err := exec.Command(cfg.ConverterCmd, "--version").Output()
	if err != nil {
		log.Warn("converter found but --version failed: %v", err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Info("  %s", firstLine)
}
