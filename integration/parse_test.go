// Package integration provides whole-document tests against the public API.
//
// These tests parse complete report definitions and make assertions against
// the resulting span forest and against the exact rendered diagnostics,
// including indentation-sensitive caret placement. The inputs mirror the
// documents the DSL was designed around: a small profit-and-loss layout
// with sales, material, labor and other-costs groups.
package integration

import (
	"errors"
	"strings"
	"testing"

	"github.com/quickaccount/reportdsl"
	"github.com/quickaccount/reportdsl/report"
	"github.com/stretchr/testify/require"
)

const fullDocument = `
Sales (
    3010..3010 => Webshop
    3010..4000 => Other sales
) => Sum sales

(
    4000..5000 => Material
) => Sum material

(
    5000..5000 => Direct labor
    5010..6000 => Other labor costs
) => Sum labor costs

Other costs (
    6000..6010 => Leasing
    (
        6020..6100 => Office supplies
        6100..6200 => Consumables
    ) => Sum miscellaneous costs
) => Sum other costs
`

func TestParseFullDocument(t *testing.T) {
	spans, err := reportdsl.Parse(fullDocument)
	require.NoError(t, err)
	require.Len(t, spans, 4)

	sales := spans[0]
	require.Equal(t, "Sales", sales.Name)
	require.Equal(t, []report.Range{
		{Title: "Webshop", From: 3010, To: 3010},
		{Title: "Other sales", From: 3010, To: 4000},
	}, sales.Ranges)
	require.Empty(t, sales.Subspans)
	require.Equal(t, report.SumTotal, sales.Sum.Kind)
	require.Equal(t, "Sum sales", sales.Sum.Label)

	material := spans[1]
	require.Equal(t, "", material.Name)
	require.Equal(t, []report.Range{{Title: "Material", From: 4000, To: 5000}}, material.Ranges)
	require.Equal(t, "Sum material", material.Sum.Label)

	labor := spans[2]
	require.Equal(t, "", labor.Name)
	require.Len(t, labor.Ranges, 2)
	require.Equal(t, "Sum labor costs", labor.Sum.Label)

	other := spans[3]
	require.Equal(t, "Other costs", other.Name)
	require.Equal(t, []report.Range{{Title: "Leasing", From: 6000, To: 6010}}, other.Ranges)
	require.Equal(t, report.SumTotal, other.Sum.Kind)
	require.Equal(t, "Sum other costs", other.Sum.Label)

	require.Len(t, other.Subspans, 1)
	misc := other.Subspans[0]
	require.Equal(t, "", misc.Name)
	require.Equal(t, []report.Range{
		{Title: "Office supplies", From: 6020, To: 6100},
		{Title: "Consumables", From: 6100, To: 6200},
	}, misc.Ranges)
	require.Equal(t, report.SubTotal, misc.Sum.Kind)
	require.Equal(t, "Sum miscellaneous costs", misc.Sum.Label)
}

func TestRangeCountMatchesRangeLines(t *testing.T) {
	spans, err := reportdsl.Parse(fullDocument)
	require.NoError(t, err)

	total := 0
	for _, span := range spans {
		total += span.RangeCount()
	}
	require.Equal(t, strings.Count(fullDocument, ".."), total)
}

func TestRangeErrorRendering(t *testing.T) {
	input := "\n        (\n" +
		"            6000..6010 => Leasing\n" +
		"            (\n" +
		"                6020.6100 => Office Supplies\n" +
		"                6100..6200 => Consumables\n" +
		"            ) => Sum miscellaneous costs\n" +
		"        ) == Sum other costs\n" +
		"        "

	want := "\nline: 5, pos: 22\n" +
		"                6020.6100 => Office Supplies\n" +
		"---------------------^\n" +
		"\nERROR: Invalid range syntax\n"

	_, err := reportdsl.Parse(input)
	require.Error(t, err)
	require.Equal(t, want, err.Error())
}

func TestTerminatorErrorRendering(t *testing.T) {
	input := "\n        Other costs (\n" +
		"            6000..6010 => Leasing\n" +
		"            (\n" +
		"                6020..6100 => Office supplies\n" +
		"                6100..6200 => Consumables\n" +
		"            ) => Sum miscellaneous costs\n" +
		"        ) == Sum other costs\n" +
		"        "

	want := "\nline: 8, pos: 12\n" +
		"        ) == Sum other costs\n" +
		"-----------^\n" +
		"\nERROR: Expected >\n"

	_, err := reportdsl.Parse(input)
	require.Error(t, err)
	require.Equal(t, want, err.Error())
}

func TestDiagnosticFields(t *testing.T) {
	_, err := reportdsl.Parse("(\n6020.6100 => X\n) => S\n")
	require.Error(t, err)

	var diag *reportdsl.Diagnostic
	require.ErrorAs(t, err, &diag)
	require.Equal(t, "invalid-range-syntax", diag.Code)
	require.Equal(t, "Invalid range syntax", diag.Message)
	require.Equal(t, 2, diag.Line)
	require.Equal(t, 6, diag.Column)
	require.Equal(t, "6020.6100 => X", diag.LineText)
	require.Equal(t, "-----^", diag.Indicator)
}

func TestNoPartialForestOnFailure(t *testing.T) {
	// the first group is well formed; the error in the second must
	// suppress the whole result
	input := "(\n1..2 => ok\n) => fine\n(\n3.4 => bad\n) => broken\n"

	spans, err := reportdsl.Parse(input)
	require.Error(t, err)
	require.Nil(t, spans)
}

func TestDeepNestingThroughPublicAPI(t *testing.T) {
	const depth = 300

	var b strings.Builder
	for i := 0; i < depth; i++ {
		b.WriteString("(\n")
	}
	b.WriteString("100..200 => leaf\n")
	for i := 0; i < depth; i++ {
		b.WriteString(") => level\n")
	}

	spans, err := reportdsl.Parse(b.String())
	require.NoError(t, err)
	require.Len(t, spans, 1)
	require.Equal(t, depth, spans[0].Depth())

	_, err = reportdsl.Parse(b.String(), reportdsl.WithMaxDepth(depth-1))
	require.Error(t, err)
	var diag *reportdsl.Diagnostic
	require.True(t, errors.As(err, &diag))
	require.Equal(t, "nesting-too-deep", diag.Code)
}

func TestIndependentParsesShareNothing(t *testing.T) {
	// parsers own their cursors; concurrent parses of different inputs
	// must not interfere
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := reportdsl.Parse(fullDocument)
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, <-done)
	}
}
