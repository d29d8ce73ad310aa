package run

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type colorFunc func(a ...interface{}) string

// Logger reports per-line conditions on standard error, separate from
// program output on standard output.
type Logger struct {
	stderr io.Writer
	red    colorFunc
	green  colorFunc
}

func NewLogger(stderr io.Writer) *Logger {
	return &Logger{
		red:    color.New(color.FgRed).SprintFunc(),
		green:  color.New(color.FgGreen).SprintFunc(),
		stderr: stderr,
	}
}

// MarkerNotFound reports a removal request against a line that carries no
// recognized suppression comment. index is zero-based; the message shows
// a one-based line number.
func (l *Logger) MarkerNotFound(file string, index int) {
	fmt.Fprintf(l.stderr, "%s no ignore comment is found\n%s:%d\n", l.red("ERROR"), file, index+1)
}

// Success confirms a completed in-place run.
func (l *Logger) Success(message string) {
	fmt.Fprintf(l.stderr, "%s %s\n", l.green("INFO"), message)
}
