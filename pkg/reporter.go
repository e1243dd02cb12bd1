package shork

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Reporter is the capability the lexer, parser and evaluator depend on to
// surface diagnostics. The core never talks to a concrete sink directly.
type Reporter interface {
	// AddError enqueues a diagnostic.
	AddError(d Diagnostic)
	// GetErrors returns every diagnostic enqueued so far, in order.
	GetErrors() []Diagnostic
	// DisplayError writes a single diagnostic to the reporter's sink.
	DisplayError(d Diagnostic)
}

// StderrReporter is the default Reporter: it queues diagnostics in memory
// and renders them to stderr, falling back to stdout if the stderr write
// fails.
type StderrReporter struct {
	errors []Diagnostic
	out    io.Writer
	fall   io.Writer
}

// NewStderrReporter creates an empty reporter writing to os.Stderr, with
// os.Stdout as the fallback sink.
func NewStderrReporter() *StderrReporter {
	return &StderrReporter{
		out:  os.Stderr,
		fall: os.Stdout,
	}
}

func (r *StderrReporter) AddError(d Diagnostic) {
	r.errors = append(r.errors, d)
}

func (r *StderrReporter) GetErrors() []Diagnostic {
	return r.errors
}

func (r *StderrReporter) DisplayError(d Diagnostic) {
	rendered := render(d)

	if _, err := io.WriteString(r.out, rendered); err != nil {
		fmt.Fprintf(r.fall, "While printing an error, another error occurred:\n%v\n", err)
		fmt.Fprintf(r.fall, "The error above was caused by this error message:\n%s", rendered)
	}
}

// render formats a Diagnostic per the spec's bit-exact layout:
//
//	<Kind> at line <L>:
//	    <L> | <trimmed line>
//	       <padding>^----- Here
//	<message>
//
// The rendered text begins with a newline, so each diagnostic is preceded
// by an empty line. Padding before '^' is Column spaces plus
// len(strconv.Itoa(Line))-1 spaces. Kind is colorized unless NO_COLOR is
// set.
func render(d Diagnostic) string {
	kindStr := kindLabel(d.Kind)

	var arrow strings.Builder
	for i := 0; i < d.Column; i++ {
		arrow.WriteByte(' ')
	}
	for i := 1; i < len(strconv.Itoa(d.Line)); i++ {
		arrow.WriteByte(' ')
	}
	arrow.WriteString("^----- Here")

	return fmt.Sprintf("\n%s at line %d:\n    %d | %s\n       %s\n%s\n",
		kindStr, d.Line, d.Line, d.LineText, arrow.String(), d.Message)
}

// kindLabel colorizes a Kind's label the way original_source colors
// ErrorType: warnings in yellow, everything else in red. Colorization is
// suppressed whenever NO_COLOR is set to any value, matching fatih/color's
// own convention plus the spec's explicit requirement.
func kindLabel(k Kind) string {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return k.String()
	}

	if k == Warning {
		return color.New(color.FgYellow).Sprint(k.String())
	}

	return color.New(color.FgRed).Sprint(k.String())
}
