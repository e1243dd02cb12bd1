// Package repl implements the interactive read-eval-print loop for shork.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"go.shork.dev/pkg"
)

const prompt = "shork$ "

var (
	errorColor  = color.New(color.FgRed)
	resultColor = color.New(color.FgYellow)
)

// Start runs the REPL until the user types "exit" (case-insensitive,
// trimmed) or input reaches EOF. Each line is lexed, parsed and evaluated
// independently — the REPL holds no state across lines, since the
// expression grammar has no variables or declarations.
func Start(in io.Reader, out io.Writer) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		Stdin:       io.NopCloser(in),
		Stdout:      out,
		HistoryFile: "",
	})
	if err != nil {
		fmt.Fprintln(out, "shork: failed to start the line editor:", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.EqualFold(line, "exit") {
			return
		}

		evalLine(out, line)
	}
}

func evalLine(out io.Writer, line string) {
	defer func() {
		if r := recover(); r != nil {
			errorColor.Fprintf(out, "[interpreter error] %v\n", r)
		}
	}()

	reporter := shork.NewStderrReporter()

	tokens, diags := shork.Scan(line, reporter)
	if len(diags) > 0 {
		displayAll(reporter, diags)
		return
	}

	parser := shork.NewParser(line, tokens, reporter)
	ast, diags := parser.Parse()
	if len(diags) > 0 {
		displayAll(reporter, diags)
		return
	}

	evaluator := shork.NewEvaluator(ast, line, reporter)
	value, diag := evaluator.Evaluate()
	if diag != nil {
		displayAll(reporter, []shork.Diagnostic{*diag})
		return
	}

	resultColor.Fprintf(out, "%s\n", value.String())
}

func displayAll(reporter *shork.StderrReporter, diags []shork.Diagnostic) {
	for _, d := range diags {
		reporter.DisplayError(d)
	}
}
