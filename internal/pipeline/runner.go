// Package pipeline orchestrates file discovery, range-spec filtering, and
// the progress-guarded per-file conversion loop.
package pipeline

import (
	"context"
	"os"

	"github.com/simforge/meshbatch/internal/logging"
	"github.com/simforge/meshbatch/internal/progress"
)

// ItemStatus reports what the per-item function did with a file.
type ItemStatus int

const (
	StatusConverted ItemStatus = iota
	StatusSkipped
)

// ItemResult carries the per-item outcome back to the stats accumulator.
type ItemResult struct {
	Status     ItemStatus
	InputBytes int64
}

// PerItem processes one discovered asset file. A returned error aborts the
// remaining batch: there is no skip-and-continue or checkpoint/resume here,
// the first failure surfaces to the caller with the batch unfinished.
type PerItem func(path string) (ItemResult, error)

// Run drives the sequential batch loop. The total is reported once up
// front; after each item the progress bar advances. For the duration of the
// loop the logger's terminal output is routed through the bar's line-safe
// writer, and the previous writer is reinstated on every exit path, normal
// completion, per-item failure, or cancellation alike.
func Run(ctx context.Context, log *logging.Logger, jobs []string, perItem PerItem) (RunStats, error) {
	stats := RunStats{Total: len(jobs)}

	log.Info("Number of files to convert: %d", len(jobs))

	bar := progress.New(os.Stdout, len(jobs))
	restore := log.SwapOutput(bar)
	defer restore()
	defer bar.Finish()

	for _, path := range jobs {
		if err := ctx.Err(); err != nil {
			log.Warn("Interrupted")
			return stats, err
		}

		res, err := perItem(path)
		if err != nil {
			return stats, err
		}

		switch res.Status {
		case StatusSkipped:
			stats.Skipped++
		default:
			stats.Converted++
			stats.InputBytes += res.InputBytes
		}
		bar.Advance()
	}

	return stats, nil
}
