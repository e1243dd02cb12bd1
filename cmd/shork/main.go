// Command shork is the CLI front end for the lexer/parser/evaluator
// pipeline: a bare invocation starts an interactive REPL, while
// `shork run <files...>` evaluates each file as a standalone expression.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.shork.dev/cmd/shork/internal/repl"
	"go.shork.dev/cmd/shork/internal/runner"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shork",
		Short: "shork evaluates a small expression language",
		RunE: func(cmd *cobra.Command, args []string) error {
			repl.Start(cmd.InOrStdin(), cmd.OutOrStdout())
			return nil
		},
	}

	root.AddCommand(newRunCmd())

	return root
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file...>",
		Short: "evaluate one or more source files concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context(), args, cmd.OutOrStdout())
		},
	}
}
