// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package multi implements parse_multiple: splitting a string into
// delimiter-separated duration segments, parsing each one against the
// core grammar, and summing the results with saturating arithmetic. It
// is a thin convenience layer over package duration, mirroring the
// teacher library's own Context wrapper around its core Decimal type.
package multi

import "github.com/db47h/duration"

// Parse splits input into segments per p's ParseMultipleDelimiter and
// ParseMultipleConjunctions settings, parses each with p.ParseSegment,
// and returns the saturating sum of the results (duration.Duration.Add).
//
// p must have ParseMultipleDelimiter set; Parse returns a syntax error
// otherwise, since an unconfigured delimiter can never be matched and
// every input would then fail as "expected delimiter between segments".
func Parse(p *duration.Parser, input string) (duration.Duration, error) {
	cfg := p.Config()
	if cfg.ParseMultipleDelimiter == nil {
		return duration.Duration{}, duration.SyntaxError(0, "ParseMultiple is not enabled on this Parser")
	}

	if input == "" {
		return duration.Duration{}, &duration.ParseError{Kind: duration.Empty}
	}

	total := duration.Zero
	pos := 0
	first := true
	for {
		if !first {
			consumed, err := consumeSeparator(input[pos:], cfg)
			if err != nil {
				return duration.Duration{}, reposition(err, pos)
			}
			pos += consumed
			if pos >= len(input) {
				return duration.Duration{}, duration.SyntaxError(pos, "input must not end on a delimiter")
			}
		}
		first = false

		d, consumed, err := p.ParseSegment(input[pos:])
		if err != nil {
			return duration.Duration{}, reposition(err, pos)
		}
		total = total.Add(d)
		pos += consumed

		if pos >= len(input) {
			return total, nil
		}
		if !duration.AsciiDelim(cfg.ParseMultipleDelimiter, input[pos]) {
			return duration.Duration{}, duration.SyntaxError(pos, "expected delimiter between segments")
		}
	}
}

// reposition rewrites a *duration.ParseError's Pos (relative to a
// segment's own start) into input's coordinate space, leaving any other
// error type untouched.
func reposition(err error, base int) error {
	if pe, ok := err.(*duration.ParseError); ok {
		return &duration.ParseError{Kind: pe.Kind, Pos: pe.Pos + base, Msg: pe.Msg}
	}
	return err
}

// consumeSeparator consumes the mandatory Delim run between two
// segments and, if recognized, a single conjunction word surrounded by
// its own Delim runs, returning the number of bytes consumed.
func consumeSeparator(s string, cfg duration.Config) (int, error) {
	i := 0
	for i < len(s) && duration.AsciiDelim(cfg.ParseMultipleDelimiter, s[i]) {
		i++
	}
	if i == 0 {
		return 0, duration.SyntaxError(0, "expected delimiter between segments")
	}

	for _, word := range cfg.ParseMultipleConjunctions {
		if !hasPrefixWord(s[i:], word) {
			continue
		}
		j := i + len(word)
		dstart := j
		for j < len(s) && duration.AsciiDelim(cfg.ParseMultipleDelimiter, s[j]) {
			j++
		}
		if j == dstart {
			// no delimiter after the word: not actually the conjunction,
			// just a unit/identifier that happens to start with it.
			continue
		}
		return j, nil
	}
	return i, nil
}

func hasPrefixWord(s, word string) bool {
	return len(s) >= len(word) && s[:len(word)] == word
}
