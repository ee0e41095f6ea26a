// Package logging provides leveled, optionally colored logging with an
// optional plain-text file sink, backed by charmbracelet/log.
//
// The terminal sink is swappable at runtime via [Logger.SwapOutput]; the
// batch runner uses this to route diagnostic lines through the progress
// bar's line-safe writer for the duration of the loop.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/simforge/meshbatch/internal/config"
	"github.com/simforge/meshbatch/internal/display"
	"github.com/simforge/meshbatch/internal/term"
)

// SuccessLevel sits between Info and Warn so it stays visible at the
// default level filter.
const SuccessLevel = charmlog.Level(2)

const timeFormat = "2006-01-02 15:04:05"

// Logger provides the leveled printf-style API used across meshbatch. All
// terminal output goes through a single swappable writer (the "output
// primitive"); the optional file sink always receives plain text.
type Logger struct {
	mu       sync.Mutex
	cl       *charmlog.Logger
	out      io.Writer
	file     *os.File
	filePath string
	verbose  bool
}

// NewLogger builds a Logger writing to os.Stdout and optionally to
// cfg.LogFile. Call Close when done if LogFile was set. term.Configure must
// have run first so the color profile is settled.
func NewLogger(cfg *config.Config) (*Logger, error) {
	cl := charmlog.NewWithOptions(os.Stdout, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
	})
	cl.SetStyles(levelStyles())
	if term.Enabled() {
		cl.SetColorProfile(termenv.ANSI256)
	} else {
		cl.SetColorProfile(termenv.Ascii)
	}
	if cfg.Verbose {
		cl.SetLevel(charmlog.DebugLevel)
	}

	l := &Logger{cl: cl, out: os.Stdout, verbose: cfg.Verbose}

	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		l.filePath = cfg.LogFile
	}
	return l, nil
}

// levelStyles builds the charm level styles from the shared palette.
func levelStyles() *charmlog.Styles {
	styles := charmlog.DefaultStyles()
	styles.Levels[charmlog.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").Bold(true).Foreground(display.ColorDebug)
	styles.Levels[charmlog.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").Bold(true).Foreground(display.ColorInfo)
	styles.Levels[SuccessLevel] = lipgloss.NewStyle().
		SetString("SUCCESS").Bold(true).Foreground(display.ColorSuccess)
	styles.Levels[charmlog.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").Bold(true).Foreground(display.ColorWarn)
	styles.Levels[charmlog.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").Bold(true).Foreground(display.ColorError)
	return styles
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// SwapOutput routes all terminal log output through w and returns a restore
// function that reinstates the previous writer. The restore must run on
// every exit path; callers defer it immediately.
func (l *Logger) SwapOutput(w io.Writer) (restore func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	prev := l.out
	l.out = w
	l.cl.SetOutput(w)
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.out = prev
		l.cl.SetOutput(prev)
	}
}

// Writer returns the current terminal sink. External process output that
// should not corrupt the progress line is tee'd here.
func (l *Logger) Writer() io.Writer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.out
}

func (l *Logger) logf(level charmlog.Level, name, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.cl.Logf(level, "%s", msg)
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		ts := time.Now().Format(timeFormat)
		_, _ = io.WriteString(l.file, ts+" ["+name+"] "+msg+"\n")
	}
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(charmlog.InfoLevel, "INFO", format, args...)
}

// Success logs at SUCCESS level.
func (l *Logger) Success(format string, args ...interface{}) {
	l.logf(SuccessLevel, "SUCCESS", format, args...)
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(charmlog.WarnLevel, "WARN", format, args...)
}

// Error logs at ERROR level.
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(charmlog.ErrorLevel, "ERROR", format, args...)
}

// Debug logs at DEBUG level; no-op unless the logger was built verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.logf(charmlog.DebugLevel, "DEBUG", format, args...)
}
