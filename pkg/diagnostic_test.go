package shork

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDiagnosticResolvesLineAndColumn(t *testing.T) {
	source := "foo\nbar\nbaz"

	cases := []struct {
		name     string
		pos      int
		wantLine int
		wantCol  int
		wantText string
	}{
		{"start of source", 0, 0, 1, "foo"},
		{"mid first line", 1, 0, 2, "foo"},
		{"start of second line", 4, 1, 1, "bar"},
		{"start of third line", 8, 2, 1, "baz"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDiagnostic(SyntaxError, tc.pos, source, "bad")
			assert.Equal(t, tc.wantLine, d.Line)
			assert.Equal(t, tc.wantCol, d.Column)
			assert.Equal(t, tc.wantText, d.LineText)
		})
	}
}

func TestNewDiagnosticClampsPastEndOfSource(t *testing.T) {
	d := NewDiagnostic(ReadingError, 1000, "short", "unreadable position")
	assert.Equal(t, "unreadable position", d.Message)
}

func TestNewDiagnosticTrimsLeadingWhitespace(t *testing.T) {
	d := NewDiagnostic(Warning, 4, "x\n   indented", "note")
	assert.Equal(t, "indented", d.LineText)
}

func TestDiagnosticErrorImplementsErrorInterface(t *testing.T) {
	d := NewDiagnostic(TypeError, 0, "1 + true", "type mismatch")
	assert.Equal(t, "Type Error at line 0: type mismatch", d.Error())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Warning", Warning.String())
	assert.Equal(t, "Lexical Error", LexicalError.String())
	assert.Contains(t, Kind(99).String(), "Kind(99)")
}
