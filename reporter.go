package argparse

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ParseError wraps an error raised while parsing the command line of Prog
type ParseError struct {
	Prog string
	Err  error
}

// Error returns the message prefixed with the program name, e.g. "prog: unknown option '-x'"
func (e *ParseError) Error() string {
	if e.Prog == "" {
		return e.Err.Error()
	}

	return e.Prog + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Reporter receives every parse error. The error returned by Report is returned by Parse.
type Reporter interface {
	Report(err *ParseError) error
}

// RaisingReporter hands parse errors back to the caller of Parse
type RaisingReporter struct{}

// Report returns err unchanged
func (RaisingReporter) Report(err *ParseError) error {
	return err
}

// TerminatingReporter prints parse errors and exits the process with status 1
type TerminatingReporter struct {
	out  io.Writer
	exit func(int)
}

// NewTerminatingReporter creates a reporter writing to out, or to stderr when out is nil
func NewTerminatingReporter(out io.Writer) *TerminatingReporter {
	if out == nil {
		out = os.Stderr
	}

	return &TerminatingReporter{out: out, exit: os.Exit}
}

// WithExitFunc replaces os.Exit
func (r *TerminatingReporter) WithExitFunc(exit func(int)) *TerminatingReporter {
	r.exit = exit

	return r
}

// Report writes "prog: error: message" and exits. When the exit function returns,
// err is returned.
func (r *TerminatingReporter) Report(err *ParseError) error {
	label := "error:"
	if r.isTerminal() {
		c := color.New(color.FgRed, color.Bold)
		c.EnableColor()
		label = c.Sprint(label)
	}
	if err.Prog != "" {
		fmt.Fprintf(r.out, "%s: %s %s\n", err.Prog, label, err.Err)
	} else {
		fmt.Fprintf(r.out, "%s %s\n", label, err.Err)
	}
	r.exit(1)

	return err
}

func (r *TerminatingReporter) isTerminal() bool {
	f, ok := r.out.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
