// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duration

import "github.com/db47h/duration/units"

// repr is the intermediate representation produced by the scanner and
// consumed once by the evaluator. It is pure data; see eval.go for the
// transformation into a Duration.
//
// digits holds the whole-part digits immediately followed by the
// fraction-part digits, with no decimal point retained. whole is the
// number of leading entries belonging to the whole part, so
// digits[:whole] is W and digits[whole:] is F in the evaluator's
// terminology. Leading zeros of the whole part are never pushed; leading
// zeros of the fraction part are preserved, since they carry magnitude
// information a binary float would lose.
type repr struct {
	isNegative bool
	isInfinite bool

	// numberPresent is false only when number_is_optional allowed an
	// entirely empty Number production (e.g. "ns"); it is true even for
	// an explicit all-zero number like "0" or "0.0", which must evaluate
	// to zero rather than to the number_is_optional substitute of 1.
	numberPresent bool

	digits []byte
	whole  int

	exponent int16

	unit       units.TimeUnit
	multiplier units.Multiplier
}

// digitCapacity implements the representation parser's capacity-planning
// rule: on first seeing a digit or a decimal point, preallocate
// min(|remaining input|, |minExponent| + 32) bytes. This bounds
// reallocation on the hot (small-input) path while still being large
// enough, given growFractionCapacity below, that any digit the scanner
// has to drop because capacity ran out can only happen when the result
// saturates anyway (see the evaluator's seconds/nanos saturation).
func digitCapacity(remaining int, minExponent int16) int {
	want := int(minExponent)
	if want < 0 {
		want = -want
	}
	want += 32
	if remaining < want {
		return remaining
	}
	return want
}

// growFractionCapacity implements the representation parser's growth rule
// when entering the fraction with insufficient remaining capacity: grow by
// min(remaining, maxExponent + 25).
func growFractionCapacity(remaining int, maxExponent int16) int {
	want := int(maxExponent) + 25
	if remaining < want {
		return remaining
	}
	return want
}
