package convert

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/simforge/meshbatch/internal/config"
)

// stderrTailLines bounds how much converter output is carried into an error.
const stderrTailLines = 20

// Converter converts one source asset into a destination USD file.
type Converter interface {
	Convert(ctx context.Context, src, dst string) error
}

// ExecConverter shells out to the configured external converter command for
// each asset. Diagnostic output from the converter is tee'd to the diag
// writer when verbose, so it flows through the progress guard instead of
// hitting the terminal directly.
type ExecConverter struct {
	cfg  *config.Config
	diag func() io.Writer
}

// NewExecConverter wires an ExecConverter to cfg. diag yields the current
// diagnostic sink (the logger's swappable writer); it is re-queried per run
// because the batch loop swaps it.
func NewExecConverter(cfg *config.Config, diag func() io.Writer) *ExecConverter {
	return &ExecConverter{cfg: cfg, diag: diag}
}

// Convert validates src, creates the destination directory, and runs the
// converter. Stderr is captured; on failure the trimmed tail is included in
// the returned error.
func (c *ExecConverter) Convert(ctx context.Context, src, dst string) error {
	src, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	if fi, err := os.Stat(src); err != nil || fi.IsDir() {
		return fmt.Errorf("invalid mesh file path: %s", src)
	}
	dst, err = filepath.Abs(dst)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	args := BuildArgs(c.cfg, src, dst)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if c.cfg.Verbose && c.diag != nil {
		cmd.Stderr = io.MultiWriter(&stderrBuf, c.diag())
	} else {
		cmd.Stderr = &stderrBuf
	}

	if err := cmd.Run(); err != nil {
		if tail := stderrTail(stderrBuf.String()); tail != "" {
			return fmt.Errorf("convert %q: %w\n%s", src, err, tail)
		}
		return fmt.Errorf("convert %q: %w", src, err)
	}
	return nil
}

// stderrTail returns the last stderrTailLines lines of s, trimmed.
func stderrTail(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > stderrTailLines {
		lines = lines[len(lines)-stderrTailLines:]
	}
	return strings.Join(lines, "\n")
}
