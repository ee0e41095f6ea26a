// Package progress renders a single-line terminal progress bar for the
// batch loop. The bar doubles as an io.Writer: diagnostic lines written
// through it clear the bar, print, and redraw, so interleaved output never
// corrupts the progress line. When the destination is not a TTY the bar
// degrades to plain pass-through writes and renders nothing.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/simforge/meshbatch/internal/display"
	"github.com/simforge/meshbatch/internal/term"
)

const barCells = 30

var (
	fillStyle  = lipgloss.NewStyle().Foreground(display.ColorPrimary)
	emptyStyle = lipgloss.NewStyle().Foreground(display.ColorMuted)
	countStyle = lipgloss.NewStyle().Foreground(display.ColorMuted)
)

// Bar is a sequential single-line progress indicator. All methods are safe
// for use from one goroutine; the mutex only guards against writer swaps
// racing a redraw.
type Bar struct {
	mu      sync.Mutex
	out     io.Writer
	total   int
	done    int
	enabled bool
	drawn   bool
	start   time.Time
}

// New builds a Bar writing to out. Rendering is enabled only when out is a
// terminal; otherwise Write passes through and Advance is silent.
func New(out io.Writer, total int) *Bar {
	enabled := false
	if f, ok := out.(*os.File); ok {
		enabled = term.IsTerminal(f)
	}
	return &Bar{out: out, total: total, enabled: enabled, start: time.Now()}
}

// Advance marks one item complete and redraws the bar.
func (b *Bar) Advance() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.done++
	b.redraw()
}

// Finish clears the bar and terminates the line. Safe to call when nothing
// was drawn.
func (b *Bar) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.enabled || !b.drawn {
		return
	}
	fmt.Fprintf(b.out, "\r\x1b[2K%s\n", b.render())
	b.drawn = false
}

// Write is the line-safe diagnostic primitive: it clears the progress line,
// emits p (newline-terminated), and redraws the bar underneath.
func (b *Bar) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.enabled {
		return b.out.Write(p)
	}
	if b.drawn {
		if _, err := io.WriteString(b.out, "\r\x1b[2K"); err != nil {
			return 0, err
		}
		b.drawn = false
	}
	n, err := b.out.Write(p)
	if err != nil {
		return n, err
	}
	if len(p) > 0 && p[len(p)-1] != '\n' {
		if _, err := io.WriteString(b.out, "\n"); err != nil {
			return n, err
		}
	}
	b.redraw()
	return n, nil
}

func (b *Bar) redraw() {
	if !b.enabled {
		return
	}
	fmt.Fprintf(b.out, "\r\x1b[2K%s", b.render())
	b.drawn = true
}

func (b *Bar) render() string {
	filled := 0
	pct := 100
	if b.total > 0 {
		filled = b.done * barCells / b.total
		pct = b.done * 100 / b.total
	}
	if filled > barCells {
		filled = barCells
	}

	bar := fillStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", barCells-filled))
	elapsed := time.Since(b.start).Round(time.Second)
	count := countStyle.Render(fmt.Sprintf(" %d/%d (%d%%) %s", b.done, b.total, pct, elapsed))
	return bar + count
}
