package parser

import (
	"testing"

	"github.com/quickaccount/reportdsl/internal/testutil"
	"github.com/quickaccount/reportdsl/internal/types"
	"github.com/quickaccount/reportdsl/report"
)

func render(input string, code string, offset int) *report.Diagnostic {
	return renderDiagnostic([]rune(input), types.NewParseError(code, offset))
}

func TestRenderMidLine(t *testing.T) {
	d := render("ab\ncdef", types.DiagUnexpectedSyntax, 5)

	testutil.Equal(t, 2, d.Line, "line")
	testutil.Equal(t, 3, d.Column, "column")
	testutil.Equal(t, "cdef", d.LineText, "line text")
	testutil.Equal(t, "--^", d.Indicator, "indicator")
	testutil.Equal(t, "Unexpected syntax", d.Message, "message from code")
}

func TestRenderFirstCharacter(t *testing.T) {
	d := render("abc", types.DiagInvalidRange, 0)

	testutil.Equal(t, 1, d.Line, "line")
	testutil.Equal(t, 1, d.Column, "column")
	testutil.Equal(t, "abc", d.LineText, "line text")
	testutil.Equal(t, "^", d.Indicator, "caret under the first character")
}

func TestRenderAtEndOfInput(t *testing.T) {
	d := render("abc", types.DiagUnexpectedEOF, 3)

	testutil.Equal(t, 1, d.Line, "line")
	testutil.Equal(t, 4, d.Column, "column one past the line")
	testutil.Equal(t, "---", d.Indicator, "dashes with no caret")
}

func TestRenderPastEndOfInput(t *testing.T) {
	d := render("abc", types.DiagUnexpectedEOF, 7)

	testutil.Equal(t, 1, d.Line, "line")
	testutil.Equal(t, 4, d.Column, "column clamps to consumed input")
	testutil.Equal(t, "---", d.Indicator, "no caret")
}

func TestRenderEmptyLine(t *testing.T) {
	d := render("a\n\nb", types.DiagUnexpectedSyntax, 2)

	testutil.Equal(t, 2, d.Line, "line")
	testutil.Equal(t, 1, d.Column, "column")
	testutil.Equal(t, "", d.LineText, "empty line")
	testutil.Equal(t, "", d.Indicator, "no indicator on an empty line")
}

func TestRenderEmptyInput(t *testing.T) {
	d := render("", types.DiagUnexpectedEOF, 0)

	testutil.Equal(t, 1, d.Line, "line")
	testutil.Equal(t, 1, d.Column, "column")
	testutil.Equal(t, "", d.LineText, "no line text")
	testutil.Equal(t, "", d.Indicator, "no indicator")
}

func TestRenderLastLineWithoutNewline(t *testing.T) {
	d := render("a\nbc", types.DiagInvalidRange, 3)

	testutil.Equal(t, 2, d.Line, "line")
	testutil.Equal(t, 2, d.Column, "column")
	testutil.Equal(t, "bc", d.LineText, "line text")
	testutil.Equal(t, "-^", d.Indicator, "indicator")
}

func TestRenderMultibyteColumn(t *testing.T) {
	// column and caret count characters, not bytes
	d := render("åå.x\n", types.DiagInvalidRangeSyntax, 2)

	testutil.Equal(t, 1, d.Line, "line")
	testutil.Equal(t, 3, d.Column, "column in runes")
	testutil.Equal(t, "--^", d.Indicator, "indicator in runes")
}
