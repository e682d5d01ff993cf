package report

import "fmt"

// Diagnostic pinpoints the first grammar violation in a failed parse.
// It is built once per failing parse; there is no multi-error batching.
//
// Error() renders the compiler-style block the original tooling emits:
//
//	line: 5, pos: 22
//	                6020.6100 => Office Supplies
//	---------------------^
//
//	ERROR: Invalid range syntax
type Diagnostic struct {
	Code      string `json:"code"`      // stable code, e.g. "invalid-range-syntax"
	Message   string `json:"message"`   // human-readable description
	Line      int    `json:"line"`      // 1-based line number
	Column    int    `json:"column"`    // 1-based column number
	Offset    int    `json:"offset"`    // absolute character offset of the violation
	LineText  string `json:"lineText"`  // source line containing the violation
	Indicator string `json:"indicator"` // '-' padding with '^' under the offending character
}

// Error renders the diagnostic as the formatted multi-line block. The exact
// layout, including the leading and trailing newlines, is part of the
// output contract.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("\nline: %d, pos: %d\n%s\n%s\n\nERROR: %s\n",
		d.Line, d.Column, d.LineText, d.Indicator, d.Message)
}

// String returns the same rendering as Error.
func (d *Diagnostic) String() string {
	return d.Error()
}
