package reportdsl

import "github.com/quickaccount/reportdsl/report"

// Type aliases for public API - all types come from the report subpackage.

// Span is one parenthesized group of ranges and nested groups.
type Span = report.Span

// Range is one account-number interval line.
type Range = report.Range

// SumType is the tagged summary-row descriptor of a span.
type SumType = report.SumType

// SumKind distinguishes SumTotal from SubTotal summaries.
type SumKind = report.SumKind

// Diagnostic is the rendered error for a failed parse.
type Diagnostic = report.Diagnostic

// SumKind constants.
const (
	SumTotal = report.SumTotal
	SubTotal = report.SubTotal
)
