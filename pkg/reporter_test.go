package shork

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStderrReporterQueuesErrors(t *testing.T) {
	r := NewStderrReporter()
	d := NewDiagnostic(LexicalError, 0, "@", "invalid symbol '@'")

	r.AddError(d)

	assert.Equal(t, []Diagnostic{d}, r.GetErrors())
}

func TestRenderFormatIsBitExact(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	d := Diagnostic{
		Kind:     SyntaxError,
		Line:     12,
		Column:   5,
		LineText: "1 +",
		Message:  "expected an expression",
	}

	got := render(d)

	padding := strings.Repeat(" ", d.Column) + strings.Repeat(" ", len(strconv.Itoa(d.Line))-1)
	want := fmt.Sprintf("\nSyntax Error at line %d:\n    %d | %s\n       %s^----- Here\n%s\n", d.Line, d.Line, d.LineText, padding, d.Message)

	assert.Equal(t, want, got)
}

func TestKindLabelRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, "Warning", kindLabel(Warning))
}

func TestStderrReporterFallsBackOnWriteFailure(t *testing.T) {
	var fallback bytes.Buffer

	r := &StderrReporter{out: failingWriter{}, fall: &fallback}
	r.DisplayError(NewDiagnostic(SyntaxError, 0, "x", "boom"))

	assert.Contains(t, fallback.String(), "another error occurred")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

var errWriteFailed = assertErr("write failed")

type assertErr string

func (e assertErr) Error() string { return string(e) }
