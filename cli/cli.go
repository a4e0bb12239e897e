// Package cli implements the gcd command line front-end.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alextanhongpin/errors/cause"
	"github.com/alextanhongpin/errors/codes"
	"github.com/spf13/cobra"

	"github.com/alextanhongpin/gcd/types/number"
)

// ErrUsage is returned when no numbers are given.
var ErrUsage = cause.New(codes.BadRequest, "gcd/usage", "Usage: gcd NUMBER ...")

// Execute runs the command with the process arguments and exits with its
// status code.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes the command with args, excluding the program name, and
// returns the process exit code. Failures are reported as one line on
// stderr.
func Run(args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when the args are nil.
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, Message(err))
		return 1
	}

	return 0
}

// Message returns the user facing text of err.
func Message(err error) string {
	var c *cause.Error
	if errors.As(err, &c) {
		return c.Message
	}

	return err.Error()
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gcd NUMBER ...",
		Short: "Print the greatest common divisor of positive integers",
		Args:  cobra.ArbitraryArgs,
		// Every argument is a number token, including ones that look like flags.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := number.ParseUint64s(args)
			if err != nil {
				return err
			}

			g, ok := number.GCDList(ns...)
			if !ok {
				return ErrUsage
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "The greatest common divisor of %s is %d\n", number.FormatList(ns), g)
			return err
		},
	}
}
