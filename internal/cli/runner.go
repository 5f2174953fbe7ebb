// Package cli maps the tada command line onto list operations.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/tui"
)

// Version is reported by --version and the first-run header.
var Version = "2.6.0"

// Options wires the runner to its environment. Zero fields fall back to
// the process defaults.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Dir is searched for a local todo.lst. Empty means the working directory.
	Dir string
	// Confirmer answers y/N questions. Nil picks one based on Stdin.
	Confirmer tui.Confirmer
	// Browse runs the interactive browser. Nil means tui.Browse.
	Browse func(*model.Key, tui.Options) (bool, error)
}

func (o Options) withDefaults() Options {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Dir == "" {
		if wd, err := os.Getwd(); err == nil {
			o.Dir = wd
		}
	}
	if o.Browse == nil {
		o.Browse = tui.Browse
	}
	return o
}

// errReported marks a failure the command already explained to the user.
var errReported = errors.New("failed")

// usageError marks bad arguments or flags.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// Run executes one command line and returns an exit code (0 ok, 1 error,
// 2 usage).
func Run(args []string, opt Options) int {
	opt = opt.withDefaults()
	a := &app{opt: opt}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(opt.Stdin)
	root.SetOut(opt.Stdout)
	root.SetErr(opt.Stderr)

	err := root.Execute()
	var uerr usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &uerr):
		fmt.Fprintf(opt.Stderr, "Error: %v\nRun 'tada --help' for usage.\n", uerr.err)
		return 2
	case errors.Is(err, errReported):
		return 1
	}
	if a.out != nil {
		a.out.Status(statusErr("Error:", err))
	} else {
		fmt.Fprintf(opt.Stderr, "Error: %v\n", err)
	}
	return 1
}

// nargs validates the positional argument count as a usage error.
func nargs(lo, hi int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.RangeArgs(lo, hi)(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}
