// SPDX-License-Identifier: Apache-2.0

// Command tensorir is a thin CLI driver over the grammar, internal/lower,
// and internal/ir packages: parse prints the parsed grammar tree, eval
// lowers a source file to its canonical IR form, and repl starts an
// interactive session.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"tensorir/grammar"
	"tensorir/internal/errors"
	"tensorir/internal/ir"
	"tensorir/internal/lower"
	"tensorir/repl"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tensorir",
		Short: "A construction-time IR for tensor expressions",
	}

	root.AddCommand(newParseCmd())
	root.AddCommand(newEvalCmd())
	root.AddCommand(newReplCmd())
	return root
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "print the parsed grammar tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := grammar.ParseFile(args[0])
			if err != nil {
				return err
			}
			pretty.Println(program)
			return nil
		},
	}
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <file>",
		Short: "lower a source file and print the resulting IR expressions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			program, err := grammar.ParseString(args[0], string(source))
			if err != nil {
				return err
			}

			exprs, errs := lower.NewBuilder().Lower(program)
			if len(errs) > 0 {
				reportLoweringErrors(args[0], string(source), errs)
				return fmt.Errorf("%d error(s) during lowering", len(errs))
			}

			for _, e := range exprs {
				fmt.Println(ir.Print(e))
			}
			return nil
		},
	}
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "start an interactive tensorir session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repl.Start(os.Stdin, os.Stdout)
			return nil
		},
	}
}

// reportLoweringErrors renders each lowering error with the Rust-like
// caret reporter when it is a structured errors.CompilerError, falling
// back to a plain colored line otherwise.
func reportLoweringErrors(filename, source string, errs []error) {
	reporter := errors.NewErrorReporter(filename, source)
	for _, err := range errs {
		if ce, ok := err.(errors.CompilerError); ok {
			fmt.Print(reporter.FormatError(ce))
			continue
		}
		color.Red("error: %s", err)
	}
}
