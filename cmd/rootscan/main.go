// Command rootscan prints the distinct roots of a built-in function over an interval.
//
// The bounds of the interval are read from the --lower and --upper flags or, when
// a flag is missing, prompted for on the terminal.
//
// Exit status is 1 if the lower bound cannot be parsed, 2 if the upper bound cannot
// be parsed and 3 for any other error.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	exitLowerBound = 1
	exitUpperBound = 2
	exitFailure    = 3
)

// exitError is an error that terminates the command with a given status.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns its exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		return exitFailure
	}

	return 0
}
