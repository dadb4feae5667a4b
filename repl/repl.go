// SPDX-License-Identifier: Apache-2.0

// Package repl is an interactive session over the grammar/internal/lower/
// internal/ir pipeline: each line is parsed and lowered against a variable
// environment that persists across lines, and the resulting IR expression
// is printed in its canonical form.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"tensorir/grammar"
	"tensorir/internal/errors"
	"tensorir/internal/ir"
	"tensorir/internal/lower"
)

const prompt = "tensorir> "

// Start runs the read-eval-print loop, reading lines through liner, which
// reads the process's own standard input (the in argument is not read), and
// writing results and diagnostics to out.
func Start(in io.Reader, out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	builder := lower.NewBuilder()
	lineNo := 1

	for {
		text, err := line.Prompt(prompt)
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Fprintln(out, "goodbye")
			return
		}
		if err != nil {
			fmt.Fprintf(out, "error: %s\n", err)
			return
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		line.AppendHistory(text)

		filename := fmt.Sprintf("<repl:%d>", lineNo)
		lineNo++

		program, err := grammar.ParseString(filename, text)
		if err != nil {
			fmt.Fprintf(out, "syntax error: %s\n", err)
			continue
		}

		exprs, errs := builder.Lower(program)
		for _, lerr := range errs {
			printError(out, filename, text, lerr)
		}
		for _, e := range exprs {
			fmt.Fprintln(out, ir.Print(e))
		}
	}
}

func printError(out io.Writer, filename, source string, err error) {
	if ce, ok := err.(errors.CompilerError); ok {
		reporter := errors.NewErrorReporter(filename, source)
		fmt.Fprint(out, reporter.FormatError(ce))
		return
	}
	fmt.Fprintf(out, "error: %s\n", err)
}
