// Package logging provides jsondp's process-wide logger: a thin wrapper
// around the standard log.Logger that colors level prefixes the same way
// the command-line tools color status indicators (github.com/fatih/color),
// rather than pulling in a structured logging library.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
)

var (
	infoPrefix  = color.New(color.FgCyan).SprintFunc()
	warnPrefix  = color.New(color.FgYellow).SprintFunc()
	errorPrefix = color.New(color.FgRed).SprintFunc()
)

// Logger writes level-prefixed lines to an underlying *log.Logger.
type Logger struct {
	l *log.Logger
}

// New returns a Logger writing to w with the standard date/time prefix.
func New(w io.Writer) *Logger {
	return &Logger{l: log.New(w, "", log.Ldate|log.Ltime)}
}

// Default returns a Logger writing to stderr.
func Default() *Logger {
	return New(os.Stderr)
}

func (g *Logger) Info(format string, args ...any) {
	g.l.Output(2, fmt.Sprintf("%s %s", infoPrefix("INFO"), fmt.Sprintf(format, args...)))
}

func (g *Logger) Warn(format string, args ...any) {
	g.l.Output(2, fmt.Sprintf("%s %s", warnPrefix("WARN"), fmt.Sprintf(format, args...)))
}

func (g *Logger) Error(format string, args ...any) {
	g.l.Output(2, fmt.Sprintf("%s %s", errorPrefix("ERROR"), fmt.Sprintf(format, args...)))
}

// DisableColors turns off ANSI coloring of the level prefixes, for non-TTY
// or machine-readable contexts.
func DisableColors() {
	color.NoColor = true
}
