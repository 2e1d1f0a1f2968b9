// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duration

import (
	"fmt"
	"math"
)

// Duration is the canonical output of a parse: a non-negative (seconds,
// nanos) pair together with a sign bit, since a plain (u64, u32) pair
// cannot itself represent "negative five seconds" the way AllowNegative
// requires.
type Duration struct {
	Seconds  uint64
	Nanos    uint32 // always in [0, 999_999_999]
	Negative bool
}

// MaxDuration is the saturated maximum Duration, returned for "inf"/"infinity" and
// for any parse whose magnitude would otherwise overflow.
var MaxDuration = Duration{Seconds: math.MaxUint64, Nanos: 999_999_999}

// Zero is the Duration of zero length. It is also the canonical
// representation of "-0" and "-0.0": sign finalization collapses a
// negative zero to Zero rather than carrying a negative sign on an empty
// duration.
var Zero = Duration{}

// IsZero reports whether d is the zero duration.
func (d Duration) IsZero() bool { return d.Seconds == 0 && d.Nanos == 0 }

// Negate returns d with its sign flipped. Negating Zero returns Zero.
func (d Duration) Negate() Duration {
	if d.IsZero() {
		return d
	}
	d.Negative = !d.Negative
	return d
}

// Cmp returns -1, 0, or +1 as d is less than, equal to, or greater than
// other.
func (d Duration) Cmp(other Duration) int {
	dSign, dSeconds, dNanos := d.signedMagnitudeOrder()
	oSign, oSeconds, oNanos := other.signedMagnitudeOrder()
	if dSign != oSign {
		if dSign < oSign {
			return -1
		}
		return 1
	}
	// same sign: for negatives, the larger magnitude is the lesser value;
	// for zero and positives, magnitude order is value order.
	switch {
	case dSeconds != oSeconds:
		if (dSeconds < oSeconds) != (dSign < 0) {
			return -1
		}
		return 1
	case dNanos != oNanos:
		if (dNanos < oNanos) != (dSign < 0) {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// signedMagnitudeOrder maps a Duration to a (sign, seconds, nanos) tuple
// for Cmp: negative durations order before zero, which orders before
// positive durations, each ordered by magnitude within their sign.
func (d Duration) signedMagnitudeOrder() (sign int, seconds uint64, nanos uint32) {
	if d.IsZero() {
		return 0, 0, 0
	}
	if d.Negative {
		return -1, d.Seconds, d.Nanos
	}
	return 1, d.Seconds, d.Nanos
}

func (d Duration) String() string {
	sign := ""
	if d.Negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%09ds", sign, d.Seconds, d.Nanos)
}

// Add returns the saturating sum of d and other. This is the operation
// ParseMultiple composes segment results with: on overflow of the
// magnitude, the result saturates to MaxDuration's magnitude (keeping the
// operands' shared sign) rather than wrapping, and a positive and negative
// operand of equal magnitude cancel to Zero.
func (d Duration) Add(other Duration) Duration {
	if d.Negative == other.Negative {
		seconds, nanos, overflow := addMagnitudes(d.Seconds, d.Nanos, other.Seconds, other.Nanos)
		if overflow {
			return Duration{Seconds: math.MaxUint64, Nanos: 999_999_999, Negative: d.Negative}
		}
		if seconds == 0 && nanos == 0 {
			return Zero
		}
		return Duration{Seconds: seconds, Nanos: nanos, Negative: d.Negative}
	}
	// opposite signs: subtract the smaller magnitude from the larger and
	// keep the larger's sign.
	if lessMagnitude(d.Seconds, d.Nanos, other.Seconds, other.Nanos) {
		d, other = other, d
	}
	seconds, nanos := subMagnitudes(d.Seconds, d.Nanos, other.Seconds, other.Nanos)
	if seconds == 0 && nanos == 0 {
		return Zero
	}
	return Duration{Seconds: seconds, Nanos: nanos, Negative: d.Negative}
}

func addMagnitudes(s1 uint64, n1 uint32, s2 uint64, n2 uint32) (seconds uint64, nanos uint32, overflow bool) {
	nanos = n1 + n2
	carry := uint64(0)
	if nanos >= 1_000_000_000 {
		nanos -= 1_000_000_000
		carry = 1
	}
	seconds = s1 + s2
	if seconds < s1 {
		return 0, 0, true
	}
	seconds += carry
	if seconds < carry {
		return 0, 0, true
	}
	return seconds, nanos, false
}

func lessMagnitude(s1 uint64, n1 uint32, s2 uint64, n2 uint32) bool {
	if s1 != s2 {
		return s1 < s2
	}
	return n1 < n2
}

func subMagnitudes(s1 uint64, n1 uint32, s2 uint64, n2 uint32) (seconds uint64, nanos uint32) {
	// caller guarantees (s1, n1) >= (s2, n2)
	if n1 >= n2 {
		return s1 - s2, n1 - n2
	}
	return s1 - s2 - 1, n1 + 1_000_000_000 - n2
}
