package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/vvka-141/treewalk/pkg/treewalk"
)

// ConsoleLogger writes log messages to a writer, stderr by default.
// Prefixes are colored when the writer is a terminal.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	writer  io.Writer
	color   bool
	mu      sync.Mutex
}

// NewConsoleLogger creates a new ConsoleLogger writing to stderr.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerTo(os.Stderr, verbose)
}

// NewConsoleLoggerTo creates a ConsoleLogger writing to w.
// A nil writer discards everything.
func NewConsoleLoggerTo(w io.Writer, verbose bool) *ConsoleLogger {
	if w == nil {
		w = io.Discard
	}
	return &ConsoleLogger{
		verbose: verbose,
		writer:  w,
		color:   isTerminal(w),
	}
}

// isTerminal reports whether w is a file attached to a TTY.
// NO_COLOR disables color regardless.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || color.NoColor {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(color.New(color.FgHiBlack), "[VERBOSE] ", format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write(nil, "", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(color.New(color.FgRed, color.Bold), "[ERROR] ", format, args)
}

func (l *ConsoleLogger) write(c *color.Color, prefix, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if prefix != "" && l.color && c != nil {
		c.EnableColor()
		prefix = c.Sprint(prefix)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.writer, prefix+msg+"\n")
}

var _ treewalk.Logger = (*ConsoleLogger)(nil)
