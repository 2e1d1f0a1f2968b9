// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package duration parses human-readable duration strings into an exact
// (seconds, nanoseconds) pair, using only integer arithmetic: no input
// digit is ever routed through a binary floating-point value on its way
// to the result.
package duration

import (
	"github.com/db47h/duration/units"
)

// Parser parses duration strings against a fixed Config and
// TimeUnitTable. The zero Parser is not usable; build one with
// NewParser.
type Parser struct {
	cfg   Config
	table units.TimeUnitTable
}

// NewParser returns a Parser using cfg and table. table is consulted for
// every Unit token the scanner reads; a nil table behaves like an empty
// one (units.Empty()).
func NewParser(cfg Config, table units.TimeUnitTable) *Parser {
	if table == nil {
		table = units.Empty()
	}
	return &Parser{cfg: cfg, table: table}
}

// WithConfig returns a copy of p using cfg in place of its current
// Config.
func (p *Parser) WithConfig(cfg Config) *Parser {
	q := *p
	q.cfg = cfg
	return &q
}

// Config returns p's Config, for callers (such as package
// duration/multi) that need to inspect ParseMultiple settings without
// reimplementing them.
func (p *Parser) Config() Config { return p.cfg }

// Parse parses input as a single Segment (Sign? (Infinity|Number)
// Delim? Unit? Ago?) and requires the whole of input to be consumed. It
// ignores p's ParseMultiple settings; callers that enabled ParseMultiple
// should use package duration/multi instead.
func (p *Parser) Parse(input string) (Duration, error) {
	cur := newCursor(input)
	r, err := scanSegment(&cur, &p.cfg, p.table, false)
	if err != nil {
		return Duration{}, err
	}
	if !cur.eof() {
		return Duration{}, syntaxErr(cur.pos, "unexpected trailing input")
	}
	return evaluate(r, &p.cfg, units.Identity)
}

// ParseSegment parses a single Segment from the start of input using the
// bounded ("stop at the next digit, delimiter, or EOF") unit-token rule
// ParseMultiple mode requires, and returns the evaluated Duration
// together with the number of leading bytes of input the segment
// consumed. It is exported for package duration/multi, which drives it
// in a loop to implement parse_multiple; ordinary callers should use
// Parse.
func (p *Parser) ParseSegment(input string) (d Duration, consumed int, err error) {
	cur := newCursor(input)
	r, err := scanSegment(&cur, &p.cfg, p.table, true)
	if err != nil {
		return Duration{}, cur.pos, err
	}
	d, err = evaluate(r, &p.cfg, units.Identity)
	if err != nil {
		return Duration{}, cur.pos, err
	}
	return d, cur.pos, nil
}

// AsciiDelim reports whether b is matched by d, treating a nil
// Delimiter as matching nothing. It is exported so package
// duration/multi can drive ParseMultipleDelimiter/AllowAgo/conjunction
// scanning itself between calls to ParseSegment.
func AsciiDelim(d Delimiter, b byte) bool { return asciiDelim(d, b) }

// SyntaxError builds a *ParseError of Kind Syntax at pos with message
// msg, for package duration/multi's segment-boundary diagnostics.
func SyntaxError(pos int, msg string) error { return syntaxErr(pos, msg) }
