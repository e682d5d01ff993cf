// Package reportdsl parses the QuickAccount report-definition language.
//
// The DSL describes a hierarchical financial-report structure: nested
// groups ("spans") of account-number ranges, each range carrying a display
// title, each span carrying an optional header title and a summary label.
//
//	Sales (
//	    3010..3010 => Webshop
//	    3010..4000 => Other sales
//	) => Sum sales
//
// Groups nest to arbitrary depth:
//
//	Other costs (
//	    6000..6010 => Leasing
//	    (
//	        6020..6100 => Office supplies
//	        6100..6200 => Consumables
//	    ) => Sum misc. costs
//	) => Sum other costs
//
// Parse consumes a complete in-memory document and returns the span forest,
// or an error that renders as a compiler-style caret diagnostic pinpointing
// the first offending character. Rendering the tree into report layouts is
// left to consumers.
package reportdsl

import (
	"log/slog"

	"github.com/quickaccount/reportdsl/internal/parser"
	"github.com/quickaccount/reportdsl/internal/types"
)

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-construct iteration logging (header scans, ranges, spans).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = types.LevelTrace

// DefaultMaxDepth is the block nesting limit used when WithMaxDepth is not
// given. Parsing is recursive, one call frame per nesting level; the limit
// turns call-stack exhaustion on pathological input into the
// nesting-too-deep diagnostic.
const DefaultMaxDepth = 1000

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

type parseConfig struct {
	logger   *slog.Logger
	maxDepth int
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) ParseOption {
	return func(c *parseConfig) { c.logger = logger }
}

// WithMaxDepth overrides the block nesting limit.
// Values below 1 are ignored.
func WithMaxDepth(depth int) ParseOption {
	return func(c *parseConfig) {
		if depth >= 1 {
			c.maxDepth = depth
		}
	}
}

// Parse parses a complete report definition and returns the top-level span
// forest in source order.
//
// On failure the returned error is a *Diagnostic whose Error() is the
// formatted multi-line block (line, column, source line, caret indicator,
// message). The first grammar violation aborts the parse; there is no
// partial forest and no multi-error collection.
//
// Example:
//
//	spans, err := reportdsl.Parse(definition,
//	    reportdsl.WithLogger(slog.Default()),
//	)
func Parse(input string, opts ...ParseOption) ([]Span, error) {
	cfg := parseConfig{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := parser.New(input, cfg.logger, cfg.maxDepth)
	spans, diag := p.Parse()
	if diag != nil {
		return nil, diag
	}
	return spans, nil
}
