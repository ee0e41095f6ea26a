package convert

import (
	"strconv"

	"github.com/simforge/meshbatch/internal/config"
)

// BuildArgs constructs the complete converter argument slice for one asset.
// The command contract is positional source and destination after the
// option flags; mass properties are only requested when a mass was given.
func BuildArgs(cfg *config.Config, src, dst string) []string {
	args := make([]string, 0, 16)

	args = append(args, cfg.ConverterCmd,
		"--max-len", strconv.Itoa(cfg.MaxLen),
		"--env-size", strconv.Itoa(cfg.EnvSize),
		"--grid-size", strconv.Itoa(cfg.GridSize),
		"--collision-approximation", string(cfg.CollisionApproximation),
	)

	if cfg.MakeInstanceable {
		args = append(args, "--make-instanceable")
	}
	if cfg.MassKg > 0 {
		args = append(args, "--mass", strconv.FormatFloat(cfg.MassKg, 'f', -1, 64))
	}

	args = append(args, src, dst)
	return args
}
