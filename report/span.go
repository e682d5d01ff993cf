// Package report defines the syntax tree produced by parsing a report
// definition, plus the diagnostic type returned for malformed input.
//
// The tree is a forest of Spans. A Span is one parenthesized group: an
// optional header title, the account ranges listed inside the parentheses,
// any nested groups, and the summary row after the closing parenthesis.
// Optional texts (span name, summary label) use "" for absent; trimming
// rules guarantee a present value is never empty.
package report

import "strconv"

// SumKind distinguishes a top-level span's summary row from a nested one's.
type SumKind int

const (
	// SumTotal tags the summary of a span at the top level of the document.
	SumTotal SumKind = iota
	// SubTotal tags the summary of a span nested inside another span.
	SubTotal
)

// String returns a human-readable name for the kind.
func (k SumKind) String() string {
	switch k {
	case SumTotal:
		return "total"
	case SubTotal:
		return "subtotal"
	default:
		return "unknown"
	}
}

// SumType is the tagged summary-row descriptor of a span. The kind is
// determined purely by nesting depth, never by syntax.
type SumType struct {
	Kind  SumKind `json:"kind"`
	Label string  `json:"label,omitempty"` // "" = absent
}

// Range represents one account-number interval line like
// "3010..4000 => Other sales".
//
// No ordering between From and To is enforced, and overlapping ranges
// across spans are not detected; both are left to the consumer.
type Range struct {
	Title string `json:"title"`
	From  uint32 `json:"from"`
	To    uint32 `json:"to"`
}

// String returns the range in source form.
func (r Range) String() string {
	s := strconv.FormatUint(uint64(r.From), 10) + ".." + strconv.FormatUint(uint64(r.To), 10)
	if r.Title != "" {
		s += " => " + r.Title
	}
	return s
}

// Span is one parenthesized group of ranges and nested groups.
// Ranges and Subspans preserve source order; either may be empty.
type Span struct {
	Name     string  `json:"name,omitempty"` // "" = absent
	Ranges   []Range `json:"ranges,omitempty"`
	Subspans []Span  `json:"subspans,omitempty"`
	Sum      SumType `json:"sum"`
}

// RangeCount returns the number of ranges in the span and all spans nested
// below it.
func (s Span) RangeCount() int {
	n := len(s.Ranges)
	for _, sub := range s.Subspans {
		n += sub.RangeCount()
	}
	return n
}

// Depth returns the height of the span's subtree: 1 for a span with no
// subspans.
func (s Span) Depth() int {
	max := 0
	for _, sub := range s.Subspans {
		if d := sub.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}
