// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duration

import (
	"unicode/utf8"

	"github.com/db47h/duration/units"
)

// scanSegment recognizes one Segment production:
//
//	Segment ::= Sign? ( Infinity | Number ) Delim? Unit? Ago?
//
// and returns its intermediate representation. multi selects the
// bounded ("up to next delimiter or digit") unit-token reading rule used
// while splitting ParseMultiple input; the unbounded ("remainder of the
// input") rule is used otherwise. The cursor is left positioned right
// after the segment: at EOF for a single (non-multiple) parse, or at the
// start of the inter-segment delimiter for a ParseMultiple segment.
func scanSegment(cur *cursor, cfg *Config, table units.TimeUnitTable, multi bool) (*repr, error) {
	if cur.eof() {
		return nil, &ParseError{Kind: Empty, Pos: cur.pos}
	}

	r := &repr{unit: cfg.DefaultUnit, multiplier: units.Identity}

	if b, ok := cur.peekByte(); ok && (b == '+' || b == '-') {
		r.isNegative = b == '-'
		cur.advance()
	}

	if !cfg.DisableInfinity {
		matched, err := scanInfinity(cur, cfg, multi)
		if err != nil {
			return nil, err
		}
		if matched {
			r.isInfinite = true
			if err := scanUnitAndAgo(cur, cfg, table, multi, r); err != nil {
				return nil, err
			}
			return r, nil
		}
	}

	if err := scanNumber(cur, cfg, r); err != nil {
		return nil, err
	}
	if err := scanUnitAndAgo(cur, cfg, table, multi, r); err != nil {
		return nil, err
	}
	return r, nil
}

func eqFoldASCII(b []byte, lower string) bool {
	if len(b) != len(lower) {
		return false
	}
	for i, c := range b {
		if c|0x20 != lower[i] {
			return false
		}
	}
	return true
}

// scanInfinity recognizes the Infinity production, ASCII case-insensitive,
// requiring all of "inity" if any of it is present.
func scanInfinity(cur *cursor, cfg *Config, multi bool) (bool, error) {
	three := cur.peek(3)
	if !eqFoldASCII(three, "inf") {
		return false, nil
	}
	cur.advanceBy(3)
	if b, ok := cur.peekByte(); ok && (b == 'i' || b == 'I') {
		five := cur.peek(5)
		if !eqFoldASCII(five, "inity") {
			return true, syntaxErr(cur.pos, "incomplete 'infinity' keyword")
		}
		cur.advanceBy(5)
	}
	if multi {
		if b, ok := cur.peekByte(); ok && !asciiDelim(cfg.ParseMultipleDelimiter, b) {
			return true, syntaxErr(cur.pos, "expected delimiter after infinity")
		}
	}
	return true, nil
}

// scanNumber recognizes the Number production and fills in r.digits,
// r.whole, r.exponent and r.numberPresent.
func scanNumber(cur *cursor, cfg *Config, r *repr) error {
	start := cur.pos
	budget := 0
	budgetSet := false

	ensureBudget := func() {
		if !budgetSet {
			budget = digitCapacity(len(cur.remainder()), cfg.MinExponent)
			budgetSet = true
		}
	}

	sawWholeDigit := false
	stripping := true
	for {
		b, ok := cur.peekByte()
		if !ok || b < '0' || b > '9' {
			break
		}
		ensureBudget()
		sawWholeDigit = true
		if stripping {
			if b == '0' {
				cur.advance()
				continue
			}
			stripping = false
		}
		if budget >= 8 && cur.is8Digits() {
			packed, _ := cur.parse8Digits()
			r.digits = appendPacked(r.digits, packed)
			budget -= 8
			continue
		}
		if budget > 0 {
			r.digits = append(r.digits, b-'0')
			budget--
		}
		cur.advance()
	}
	r.whole = len(r.digits)

	sawDot := false
	fractDigits := 0
	if b, ok := cur.peekByte(); ok && b == '.' {
		if cfg.DisableFraction {
			return syntaxErr(cur.pos, "fraction is disabled")
		}
		sawDot = true
		dotPos := cur.pos
		cur.advance()
		ensureBudget()
		if budget <= 0 {
			if d, ok := cur.peekByte(); ok && d >= '0' && d <= '9' {
				budget += growFractionCapacity(len(cur.remainder()), cfg.MaxExponent)
			}
		}
		for {
			b, ok := cur.peekByte()
			if !ok || b < '0' || b > '9' {
				break
			}
			fractDigits++
			if budget >= 8 && cur.is8Digits() {
				packed, _ := cur.parse8Digits()
				r.digits = appendPacked(r.digits, packed)
				budget -= 8
				continue
			}
			if budget > 0 {
				r.digits = append(r.digits, b-'0')
				budget--
			}
			cur.advance()
		}
		if !sawWholeDigit && fractDigits == 0 {
			return syntaxErr(dotPos, "expected digits after '.'")
		}
	}

	r.numberPresent = sawWholeDigit || sawDot
	if !r.numberPresent {
		if !cfg.NumberIsOptional {
			return syntaxErr(start, "expected a number")
		}
	}

	if !cfg.DisableExponent {
		if b, ok := cur.peekByte(); ok && (b == 'e' || b == 'E') {
			exp, err := scanExponent(cur, cfg)
			if err != nil {
				return err
			}
			r.exponent = exp
		}
	}

	return nil
}

// scanExponent recognizes Exp ::= [eE] Sign? Digit+, accumulating into a
// saturating-checked int16.
func scanExponent(cur *cursor, cfg *Config) (int16, error) {
	cur.advance() // consume 'e'/'E'
	neg := false
	if b, ok := cur.peekByte(); ok && (b == '+' || b == '-') {
		neg = b == '-'
		cur.advance()
	}
	digitsPos := cur.pos
	var v int32
	count := 0
	for {
		b, ok := cur.peekByte()
		if !ok || b < '0' || b > '9' {
			break
		}
		count++
		v = v*10 + int32(b-'0')
		if neg {
			if -v < int32(int16(-32768)) {
				// keep consuming the remaining digits so the cursor ends
				// up past the whole exponent, then fail.
				cur.advance()
				for {
					b, ok := cur.peekByte()
					if !ok || b < '0' || b > '9' {
						break
					}
					cur.advance()
				}
				return 0, &ParseError{Kind: NegativeExponentOverflow, Pos: digitsPos}
			}
		} else if v > int32(32767) {
			cur.advance()
			for {
				b, ok := cur.peekByte()
				if !ok || b < '0' || b > '9' {
					break
				}
				cur.advance()
			}
			return 0, &ParseError{Kind: PositiveExponentOverflow, Pos: digitsPos}
		}
		cur.advance()
	}
	if count == 0 {
		return 0, syntaxErr(cur.pos, "expected digits in exponent")
	}
	if neg {
		v = -v
	}
	if v != int32(int16(v)) {
		if v < 0 {
			return 0, &ParseError{Kind: NegativeExponentOverflow, Pos: digitsPos}
		}
		return 0, &ParseError{Kind: PositiveExponentOverflow, Pos: digitsPos}
	}
	if int16(v) < cfg.MinExponent {
		return 0, &ParseError{Kind: NegativeExponentOverflow, Pos: digitsPos}
	}
	if int16(v) > cfg.MaxExponent {
		return 0, &ParseError{Kind: PositiveExponentOverflow, Pos: digitsPos}
	}
	return int16(v), nil
}

// splitAgoSuffix returns tail with a trailing "ago" keyword (and the
// delimiter run immediately preceding it) removed, and true, if cfg
// enables it and tail ends with one; otherwise it returns tail unchanged
// and false.
func splitAgoSuffix(tail []byte, cfg *Config) (unitPart []byte, hasAgo bool) {
	if cfg.AllowAgo == nil || len(tail) < 3 {
		return tail, false
	}
	if string(tail[len(tail)-3:]) != "ago" {
		return tail, false
	}
	i := len(tail) - 3
	j := i
	for j > 0 && asciiDelim(cfg.AllowAgo, tail[j-1]) {
		j--
	}
	if j == i {
		return tail, false
	}
	return tail[:j], true
}

// scanUnitAndAgo recognizes Delim? Unit? Ago?, resolving the unit token
// against table and setting r.unit/r.multiplier, and flipping
// r.isNegative if the segment ends in "ago".
func scanUnitAndAgo(cur *cursor, cfg *Config, table units.TimeUnitTable, multi bool, r *repr) error {
	if multi {
		return scanUnitAndAgoMulti(cur, cfg, table, r)
	}
	return scanUnitAndAgoSingle(cur, cfg, table, r)
}

func scanUnitAndAgoSingle(cur *cursor, cfg *Config, table units.TimeUnitTable, r *repr) error {
	tailStart := cur.pos
	tail := cur.remainder()
	unitPart, hasAgo := splitAgoSuffix(tail, cfg)

	stripped := 0
	for stripped < len(unitPart) && asciiDelim(cfg.AllowDelimiter, unitPart[stripped]) {
		stripped++
	}
	hadLeadingDelim := stripped > 0
	unitToken := unitPart[stripped:]

	if err := resolveUnit(tailStart+stripped, string(unitToken), hadLeadingDelim, hasAgo, table, r); err != nil {
		return err
	}
	cur.advanceBy(len(tail))
	if hasAgo {
		r.isNegative = !r.isNegative
	}
	return nil
}

func scanUnitAndAgoMulti(cur *cursor, cfg *Config, table units.TimeUnitTable, r *repr) error {
	delimStart := cur.pos
	for {
		b, ok := cur.peekByte()
		if !ok || !(asciiDelim(cfg.AllowDelimiter, b) || asciiDelim(cfg.ParseMultipleDelimiter, b)) {
			break
		}
		cur.advance()
	}
	hadLeadingDelim := cur.pos > delimStart

	tokenStart := cur.pos
	for {
		b, ok := cur.peekByte()
		if !ok {
			break
		}
		if b >= '0' && b <= '9' {
			break
		}
		if asciiDelim(cfg.AllowDelimiter, b) || asciiDelim(cfg.ParseMultipleDelimiter, b) {
			break
		}
		cur.advance()
	}
	token := cur.buf[tokenStart:cur.pos]
	if len(token) == 0 {
		// no unit follows: the delimiter run, if any, ends the segment
		cur.pos = delimStart
		return nil
	}
	if !utf8.Valid(token) {
		return syntaxErr(firstInvalidUTF8(token)+tokenStart, "invalid UTF-8 in time unit")
	}

	if err := resolveUnit(tokenStart, string(token), hadLeadingDelim, false, table, r); err != nil {
		return err
	}

	if cfg.AllowAgo != nil {
		snap := cur.pos
		dstart := cur.pos
		for {
			b, ok := cur.peekByte()
			if !ok || !asciiDelim(cfg.AllowAgo, b) {
				break
			}
			cur.advance()
		}
		if cur.pos > dstart {
			three := cur.peek(3)
			if len(three) == 3 && string(three) == "ago" {
				cur.advanceBy(3)
				r.isNegative = !r.isNegative
				return nil
			}
		}
		cur.pos = snap
	}
	return nil
}

func firstInvalidUTF8(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return 0
}

// resolveUnit looks token up in table and sets r.unit/r.multiplier, or
// reports the appropriate error for an empty table, unknown identifier, or
// a dangling delimiter with no following unit.
func resolveUnit(pos int, token string, hadLeadingDelim, hasAgo bool, table units.TimeUnitTable, r *repr) error {
	if token == "" {
		if hadLeadingDelim && !hasAgo {
			return syntaxErr(pos, "input must not end on a delimiter")
		}
		return nil
	}
	if table.IsEmpty() {
		return timeUnitErr(pos, "no time units configured")
	}
	entry, ok := table.Get(token)
	if !ok {
		return timeUnitErr(pos, "unknown time unit "+token)
	}
	r.unit = entry.Unit
	r.multiplier = entry.Multiplier
	return nil
}
