// Package parser implements the grammar engine for report definitions.
//
// The grammar is consumed scannerless: block titles are undelimited free
// text, so whether "Sales (" is a header or the tail of an enclosing
// construct can only be decided by looking ahead for the next structural
// character. Each nesting level runs the same four-step sequence — header,
// ranges, nested blocks, terminator — recursively.
//
// The first grammar violation anywhere in the recursion aborts the whole
// parse. Procedures report it as a tagged ParseError carrying the cursor
// offset; Parse alone converts it into a rendered diagnostic. "Not present"
// (a nil result with a nil error) is not an error: it terminates the
// caller's loop or lets it try the next grammar alternative.
package parser

import (
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/quickaccount/reportdsl/internal/cursor"
	"github.com/quickaccount/reportdsl/internal/types"
	"github.com/quickaccount/reportdsl/report"
)

// Parser consumes a complete in-memory report definition and produces the
// span forest. A Parser owns its cursor exclusively; it is single-use and
// not safe for concurrent use, but independent parsers share nothing.
type Parser struct {
	cur      *cursor.Cursor
	maxDepth int
	types.Logger
}

// New returns a Parser over the given source text. Pass nil for logger to
// disable logging. maxDepth bounds block nesting; exceeding it yields the
// nesting-too-deep diagnostic instead of exhausting the call stack.
func New(input string, logger *slog.Logger, maxDepth int) *Parser {
	p := &Parser{
		cur:      cursor.New(input),
		maxDepth: maxDepth,
		Logger:   types.Logger{L: logger},
	}
	p.Log(slog.LevelDebug, "parser initialized", slog.Int("chars", p.cur.Len()))
	return p
}

// Parse consumes the whole buffer and returns the top-level span forest,
// or a single rendered diagnostic for the first grammar violation. There
// is no partial result: a failed parse returns a nil forest.
func (p *Parser) Parse() ([]report.Span, *report.Diagnostic) {
	var spans []report.Span
	for {
		span, perr := p.parseBlock(0, false)
		if perr != nil {
			p.Log(slog.LevelDebug, "parse failed",
				slog.String("code", perr.Code),
				slog.Int("offset", perr.Offset))
			return nil, renderDiagnostic(p.cur.Source(), perr)
		}
		if span == nil {
			break
		}
		spans = append(spans, *span)
	}
	p.Log(slog.LevelDebug, "parse complete", slog.Int("spans", len(spans)))
	return spans, nil
}

// parseBlock parses one complete block at the current position: header,
// ranges, nested blocks, terminator. A nil span with a nil error means no
// block starts here. sub marks the recursive calls and decides the
// SumTotal/SubTotal tag.
func (p *Parser) parseBlock(depth int, sub bool) (*report.Span, *types.ParseError) {
	name, ok := p.scanHeader()
	if !ok {
		return nil, nil
	}
	if depth >= p.maxDepth {
		return nil, types.NewParseError(types.DiagNestingTooDeep, p.cur.Pos())
	}
	if p.TraceEnabled() {
		p.Trace("block start",
			slog.String("name", name),
			slog.Int("depth", depth),
			slog.Int("offset", p.cur.Pos()))
	}

	var ranges []report.Range
	for {
		rng, perr := p.parseRange()
		if perr != nil {
			return nil, perr
		}
		if rng == nil {
			break
		}
		ranges = append(ranges, *rng)
	}

	var subspans []report.Span
	for {
		span, perr := p.parseBlock(depth+1, true)
		if perr != nil {
			return nil, perr
		}
		if span == nil {
			break
		}
		subspans = append(subspans, *span)
	}

	label, perr := p.parseTerminator()
	if perr != nil {
		return nil, perr
	}

	kind := report.SumTotal
	if sub {
		kind = report.SubTotal
	}
	return &report.Span{
		Name:     name,
		Ranges:   ranges,
		Subspans: subspans,
		Sum:      report.SumType{Kind: kind, Label: label},
	}, nil
}

// scanHeader decides whether a block starts at the current position and, if
// so, consumes its optional title up to and including the '('.
//
// Titles have no delimiter other than the following '(', so the decision is
// made entirely by lookahead: sighting ')' or '=' first means the text
// belongs to an enclosing block's terminator, and reaching end of input
// without a '(' means the document is done. In both cases the cursor does
// not move and the caller reinterprets the position. Only once '(' is
// sighted does the header consume anything.
func (p *Parser) scanHeader() (string, bool) {
	found := false
	for n := 1; !found; n++ {
		r, ok := p.cur.Peek(n)
		if !ok {
			return "", false
		}
		switch r {
		case '(':
			found = true
		case ')', '=':
			return "", false
		}
	}

	p.cur.SkipSpacesAndNewlines()
	var b strings.Builder
	for {
		r, ok := p.cur.Advance()
		if !ok || r == '(' {
			break
		}
		b.WriteRune(r)
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace), true
}

// parseRange parses one "from..to => title" line. A nil range with a nil
// error means no range starts here; only leading whitespace has been
// consumed and the caller falls through to nested blocks.
func (p *Parser) parseRange() (*report.Range, *types.ParseError) {
	p.cur.SkipSpacesAndNewlines()

	from, ok, perr := p.scanBound()
	if perr != nil {
		return nil, perr
	}
	if !ok {
		return nil, nil
	}

	// exactly two dots between the bounds
	for i := 0; i < 2; i++ {
		r, ok := p.cur.Advance()
		if !ok || r != '.' {
			// the cursor has moved past the offending character; step
			// back so the diagnostic lands on it
			p.cur.Rewind(1)
			return nil, types.NewParseError(types.DiagInvalidRangeSyntax, p.cur.Pos())
		}
	}

	to, ok, perr := p.scanBound()
	if perr != nil {
		return nil, perr
	}
	if !ok {
		return nil, types.NewParseError(types.DiagInvalidRange, p.cur.Pos())
	}

	p.cur.SkipSpaces()
	r, ok := p.cur.Advance()
	if !ok {
		p.cur.Rewind(1)
		return nil, types.NewParseError(types.DiagUnexpectedEOF, p.cur.Pos())
	}
	if r != '=' {
		return nil, types.NewParseError(types.DiagUnexpectedSyntax, p.cur.Pos())
	}
	next, ok := p.cur.Peek(1)
	if !ok {
		return nil, types.NewParseError(types.DiagUnexpectedEOF, p.cur.Pos())
	}
	if next != '>' {
		return nil, types.NewParseError(types.DiagSyntaxAfterEquals, p.cur.Pos())
	}
	p.cur.Advance()

	p.cur.SkipSpaces()
	title := p.readToEOL()

	rng := &report.Range{Title: title, From: from, To: to}
	if p.TraceEnabled() {
		p.Trace("range",
			slog.Uint64("from", uint64(from)),
			slog.Uint64("to", uint64(to)),
			slog.String("title", title))
	}
	return rng, nil
}

// scanBound extracts a digit run at the current position and converts it to
// an account number. ok=false with a nil error means there is no digit here
// and the cursor has not moved. A run that does not fit in uint32 is the
// range-overflow diagnostic, reported at the first digit of the run.
func (p *Parser) scanBound() (uint32, bool, *types.ParseError) {
	start := p.cur.Pos()
	var b strings.Builder
	for {
		r, ok := p.cur.Peek(1)
		if !ok || !isDigit(r) {
			break
		}
		p.cur.Advance()
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return 0, false, nil
	}

	v, err := strconv.ParseUint(b.String(), 10, 32)
	if err != nil {
		p.cur.Rewind(p.cur.Pos() - start)
		return 0, false, types.NewParseError(types.DiagRangeOverflow, p.cur.Pos())
	}
	return uint32(v), true, nil
}

// parseTerminator consumes the closing ") => label" of a block and returns
// the summary label, "" when absent.
//
// A character between ')' and '=' that is not a space makes the scan report
// "no terminator" rather than a syntax error, producing a span with an
// absent summary label. This silent fallback is inherited behavior kept on
// purpose; see the terminator notes in DESIGN.md before changing it.
func (p *Parser) parseTerminator() (string, *types.ParseError) {
	p.cur.SkipSpacesAndNewlines()

	r, ok := p.cur.Advance()
	if !ok || r != ')' {
		return "", nil
	}

	for {
		r, ok := p.cur.Advance()
		if !ok {
			return "", nil
		}
		switch r {
		case ' ':
			// keep scanning
		case '=':
			next, ok := p.cur.Peek(1)
			if !ok {
				return "", types.NewParseError(types.DiagExpectedArrowAfterParen, p.cur.Pos())
			}
			if next != '>' {
				return "", types.NewParseError(types.DiagExpectedCloseArrow, p.cur.Pos())
			}
			p.cur.Advance()

			p.cur.SkipSpaces()
			label := p.readToEOL()
			if p.TraceEnabled() {
				p.Trace("block end", slog.String("label", label))
			}
			return label, nil
		default:
			return "", nil
		}
	}
}

// readToEOL consumes characters up to and including the line terminator and
// returns the text before it, trailing whitespace trimmed. A bare '\n' or a
// "\r\n" pair ends the line; a lone '\r' is kept as text. End of input also
// ends the line.
func (p *Parser) readToEOL() string {
	var b strings.Builder
	for {
		r, ok := p.cur.Advance()
		if !ok || r == '\n' {
			break
		}
		if r == '\r' {
			if next, ok := p.cur.Peek(1); ok && next == '\n' {
				p.cur.Advance()
				break
			}
		}
		b.WriteRune(r)
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
