package types

// Diagnostic codes emitted by the grammar engine. Centralizing these
// prevents silent breakage from typos in string literals.

// Range parsing codes.
const (
	DiagInvalidRangeSyntax = "invalid-range-syntax"
	DiagInvalidRange       = "invalid-range"
	DiagSyntaxAfterEquals  = "syntax-after-equals"
	DiagUnexpectedSyntax   = "unexpected-syntax"
	DiagUnexpectedEOF      = "unexpected-eof"
	DiagRangeOverflow      = "range-overflow"
)

// Block terminator codes.
const (
	DiagExpectedCloseArrow      = "expected-close-arrow"
	DiagExpectedArrowAfterParen = "expected-arrow-after-paren"
)

// Structural codes.
const (
	DiagNestingTooDeep = "nesting-too-deep"
)

// diagMessages maps each code to the message shown in the rendered
// diagnostic. The wording of the first seven is part of the output
// contract; downstream tooling matches on it.
var diagMessages = map[string]string{
	DiagInvalidRangeSyntax:      "Invalid range syntax",
	DiagInvalidRange:            "Invalid range",
	DiagSyntaxAfterEquals:       "Invalid syntax after =",
	DiagUnexpectedSyntax:        "Unexpected syntax",
	DiagUnexpectedEOF:           "Unexpected EOF",
	DiagRangeOverflow:           "Range bound overflows 32-bit account number",
	DiagExpectedCloseArrow:      "Expected >",
	DiagExpectedArrowAfterParen: "Expected => after )",
	DiagNestingTooDeep:          "Nesting too deep",
}

// DiagMessage returns the human-readable message for a diagnostic code.
// Unknown codes fall back to the code itself.
func DiagMessage(code string) string {
	if msg, ok := diagMessages[code]; ok {
		return msg
	}
	return code
}

// AllDiagnosticCodes returns all known diagnostic codes grouped by the
// grammar construct that emits them.
func AllDiagnosticCodes() []DiagCodeInfo {
	return []DiagCodeInfo{
		{Code: DiagInvalidRangeSyntax, Construct: "range"},
		{Code: DiagInvalidRange, Construct: "range"},
		{Code: DiagSyntaxAfterEquals, Construct: "range"},
		{Code: DiagUnexpectedSyntax, Construct: "range"},
		{Code: DiagUnexpectedEOF, Construct: "range"},
		{Code: DiagRangeOverflow, Construct: "range"},
		{Code: DiagExpectedCloseArrow, Construct: "terminator"},
		{Code: DiagExpectedArrowAfterParen, Construct: "terminator"},
		{Code: DiagNestingTooDeep, Construct: "block"},
	}
}

// DiagCodeInfo describes a diagnostic code and the construct that emits it.
type DiagCodeInfo struct {
	Code      string
	Construct string
}
