package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sghaida/gopatterns/internal/catalog"
	"github.com/sghaida/gopatterns/internal/config"
)

// usageError marks errors caused by how the command was invoked.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// run executes the CLI and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "config:", err)
		return 2
	}
	return newApp(cfg, catalog.Builtin(), stdout, stderr).execute(args)
}

// exitCode maps a command error onto the documented exit codes.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var usage usageError
	var unknown catalog.UnknownDemoError
	if errors.As(err, &usage) || errors.As(err, &unknown) {
		return 2
	}
	return 1
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
