// Package runner implements shork's batch file-evaluation mode.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"go.shork.dev/pkg"
)

// result holds one file's outcome, kept separate from the shared output
// writer so concurrent evaluations never interleave their printing.
type result struct {
	path  string
	value string
	diags []shork.Diagnostic
}

// Run lexes, parses and evaluates every path concurrently — each file
// owns its own lexer, parser, evaluator and reporter, per the
// single-threaded-per-pipeline contract — and prints results in input
// order once all have finished.
func Run(ctx context.Context, paths []string, out io.Writer) error {
	results := make([]result, len(paths))

	g, _ := errgroup.WithContext(ctx)

	for i, path := range paths {
		i, path := i, path

		g.Go(func() error {
			r, err := evalFile(path)
			if err != nil {
				return err
			}

			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	hadErrors := false
	for _, r := range results {
		fmt.Fprintf(out, "%s:\n", r.path)

		if len(r.diags) > 0 {
			reporter := shork.NewStderrReporter()
			for _, d := range r.diags {
				reporter.DisplayError(d)
			}
			hadErrors = true
			continue
		}

		fmt.Fprintf(out, "  %s\n", r.value)
	}

	if hadErrors {
		return fmt.Errorf("shork run: one or more files failed to evaluate")
	}

	return nil
}

func evalFile(path string) (result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return result{}, fmt.Errorf("shork run: %w", err)
	}

	reporter := shork.NewStderrReporter()
	src := string(source)

	tokens, diags := shork.Scan(src, reporter)
	if len(diags) > 0 {
		return result{path: path, diags: diags}, nil
	}

	parser := shork.NewParser(src, tokens, reporter)
	ast, diags := parser.Parse()
	if len(diags) > 0 {
		return result{path: path, diags: diags}, nil
	}

	evaluator := shork.NewEvaluator(ast, src, reporter)
	value, diag := evaluator.Evaluate()
	if diag != nil {
		return result{path: path, diags: []shork.Diagnostic{*diag}}, nil
	}

	return result{path: path, value: value.String()}, nil
}
