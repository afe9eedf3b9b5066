// Command frontier classifies alternatives by Pareto and Slater dominance
// and renders annotated charts of the result.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/frontier/internal/cli"
	fterrors "github.com/matzehuels/frontier/pkg/errors"
)

// Exit codes.
const (
	exitOK       = 0
	exitError    = 1
	exitUsage    = 2
	exitCanceled = 130 // shell convention for SIGINT
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	cancel()
	os.Exit(code)
}

// run executes the command line and maps its outcome to an exit code.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	root := newRoot(stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	code := exitCode(err)
	if code != exitOK && code != exitCanceled {
		fmt.Fprintln(stderr, "Error:", fterrors.UserMessage(err))
	}
	return code
}

// newRoot builds the root command with the --verbose flag wired to the
// logger. The level is only known after flag parsing, so it is applied in a
// pre-run hook that then defers to the CLI's own.
func newRoot(stderr io.Writer) *cobra.Command {
	var verbose bool

	c := cli.New(stderr, cli.LogInfo)
	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	next := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if next != nil {
			return next(cmd, args)
		}
		return nil
	}
	return root
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, context.Canceled):
		return exitCanceled
	case fterrors.Is(err, fterrors.ErrCodeInvalidInput),
		fterrors.Is(err, fterrors.ErrCodeInvalidChart),
		fterrors.Is(err, fterrors.ErrCodeInvalidFormat),
		fterrors.Is(err, fterrors.ErrCodeInvalidSize):
		return exitUsage
	default:
		return exitError
	}
}
