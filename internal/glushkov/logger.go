package glushkov

import (
	"fmt"
	"io"
	"os"
)

// Logger prints the intermediate results of a conversion when enabled.
// A nil *Logger is valid and silent.
type Logger struct {
	enabled bool
	out     io.Writer
}

func NewLogger(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		out:     os.Stderr,
	}
}

func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Log prints a formatted message if the logger is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.Enabled() {
		fmt.Fprintf(l.out, "[glushkov] "+format+"\n", args...)
	}
}

// Section prints a section header if the logger is enabled.
func (l *Logger) Section(name string) {
	if l.Enabled() {
		fmt.Fprintf(l.out, "\n[glushkov] === %s ===\n", name)
	}
}

func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}
