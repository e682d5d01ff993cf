package parser

import (
	"strings"

	"github.com/quickaccount/reportdsl/internal/types"
	"github.com/quickaccount/reportdsl/report"
)

// renderDiagnostic converts a raw error signal plus the cursor offset it
// was raised at into the caret diagnostic.
//
// It replays the source up to (not including) the offset, counting newlines
// to find the zero-based line number and the offset where that line begins;
// characters since the line start give the zero-based column. It then
// re-scans from the line start to the next newline to reconstruct the
// source line and builds the parallel indicator: a '-' under every
// character strictly before the offset, a '^' under the character at the
// offset, nothing after.
//
// Offsets at or past the end of input are tolerated: the indicator is all
// dashes with no caret, or a caret on an empty line.
func renderDiagnostic(src []rune, perr *types.ParseError) *report.Diagnostic {
	offset := perr.Offset

	consumed := offset
	if consumed > len(src) {
		consumed = len(src)
	}

	line, col, lineStart := 0, 0, 0
	for i := 0; i < consumed; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
			col = 0
		} else {
			col++
		}
	}

	var text, indicator strings.Builder
	for i := lineStart; i < len(src); i++ {
		if src[i] == '\n' {
			break
		}
		text.WriteRune(src[i])
		if i < offset {
			indicator.WriteByte('-')
		} else if i == offset {
			indicator.WriteByte('^')
		}
	}

	return &report.Diagnostic{
		Code:      perr.Code,
		Message:   perr.Message(),
		Line:      line + 1,
		Column:    col + 1,
		Offset:    offset,
		LineText:  text.String(),
		Indicator: indicator.String(),
	}
}
