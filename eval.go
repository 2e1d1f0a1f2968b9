// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duration

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/db47h/duration/units"
)

// evaluate translates r into a Duration without ever constructing a binary
// floating-point value: every digit r.digits carries is either consumed by
// exact integer arithmetic or explicitly, deliberately discarded (digits
// beyond the ninth nanosecond position, by floor truncation, never
// rounding).
func evaluate(r *repr, cfg *Config, outerMultiplier units.Multiplier) (Duration, error) {
	if r.isInfinite {
		if r.isNegative {
			return Duration{}, &ParseError{Kind: NegativeInfinity}
		}
		return MaxDuration, nil
	}

	whole := r.digits[:r.whole]
	fract := r.digits[r.whole:]
	if !r.numberPresent {
		// "ns" alone (number_is_optional) means 1 ns: substitute the
		// implicit number 1.
		whole = []byte{1}
		fract = nil
	}

	combined := r.unit.SecondsEquivalent().Compose(r.multiplier).Compose(cfg.DefaultMultiplier).Compose(outerMultiplier)
	e := int32(r.exponent) + int32(combined.E)

	if e > math.MaxInt16 {
		return finalizeSign(math.MaxUint64, 999_999_999, r.isNegative, cfg)
	}
	if e < math.MinInt16 {
		return finalizeSign(0, 0, r.isNegative, cfg)
	}

	secDigits, nanoDigits := repartition(whole, fract, int(e))

	seconds, ok := digitsToUint64Saturating(secDigits)
	if !ok {
		return finalizeSign(math.MaxUint64, 999_999_999, r.isNegative, cfg)
	}

	scale := uint64(combined.M)
	seconds, ok = saturatingMulUint64(seconds, scale)
	if !ok {
		return finalizeSign(math.MaxUint64, 999_999_999, r.isNegative, cfg)
	}

	nanos := digitsToNanos(nanoDigits)

	carry, nanos := scaleNanos(nanos, scale)
	seconds, ok = saturatingAddUint64(seconds, carry)
	if !ok {
		return finalizeSign(math.MaxUint64, 999_999_999, r.isNegative, cfg)
	}

	return finalizeSign(seconds, nanos, r.isNegative, cfg)
}

// repartition implements the evaluator's digit-window repartitioning: it
// walks the whole (W) and fraction (F) digit spans and returns the
// seconds digit sequence and the nanosecond digit sequence, applying the
// effective exponent e by shifting the boundary between them, per the
// case-split in the evaluator's specification.
func repartition(whole, fract []byte, e int) (secDigits, nanoDigits []byte) {
	switch {
	case e == 0:
		return whole, fract
	case e < 0 && -e < len(whole):
		k := -e
		split := len(whole) - k
		nano := make([]byte, 0, k+len(fract))
		nano = append(nano, whole[split:]...)
		nano = append(nano, fract...)
		return whole[:split], nano
	case e < 0:
		lead := -e - len(whole)
		nano := make([]byte, 0, lead+len(whole)+len(fract))
		nano = append(nano, make([]byte, lead)...)
		nano = append(nano, whole...)
		nano = append(nano, fract...)
		return nil, nano
	case e < len(fract):
		sec := make([]byte, 0, len(whole)+e)
		sec = append(sec, whole...)
		sec = append(sec, fract[:e]...)
		return sec, fract[e:]
	default:
		sec := make([]byte, 0, len(whole)+len(fract)+(e-len(fract)))
		sec = append(sec, whole...)
		sec = append(sec, fract...)
		sec = append(sec, make([]byte, e-len(fract))...)
		return sec, nil
	}
}

// digitsToUint64Saturating interprets digits (raw values 0..9, most
// significant first) as a base-10 integer, multiplying and adding with
// saturation. Leading zeros contribute nothing. ok is false if the value
// overflowed uint64, in which case the caller must saturate the whole
// Duration to MAX and stop, per the evaluator's seconds-overflow rule.
func digitsToUint64Saturating(digits []byte) (v uint64, ok bool) {
	for _, d := range digits {
		hi, lo := bits.Mul64(v, 10)
		if hi != 0 {
			return 0, false
		}
		sum := lo + uint64(d)
		if sum < lo {
			return 0, false
		}
		v = sum
	}
	return v, true
}

var pow10 = [9]uint32{100_000_000, 10_000_000, 1_000_000, 100_000, 10_000, 1_000, 100, 10, 1}

// digitsToNanos interprets the first 9 entries of digits as a fixed-point
// nanosecond value, padding with zeros if fewer than 9 are available.
// Digits beyond the ninth are discarded: floor truncation, never rounding.
func digitsToNanos(digits []byte) uint32 {
	var n uint32
	for i := 0; i < 9; i++ {
		var d byte
		if i < len(digits) {
			d = digits[i]
		}
		n += uint32(d) * pow10[i]
	}
	return n
}

// scaleNanos multiplies nanos by scale (exactly, via big.Int since the
// product can exceed 64 bits) and splits the result into a carry into
// seconds and the remaining nanosecond remainder.
func scaleNanos(nanos uint32, scale uint64) (carry uint64, remainder uint32) {
	if scale == 1 {
		return 0, nanos
	}
	prod := new(big.Int).Mul(big.NewInt(int64(nanos)), new(big.Int).SetUint64(scale))
	billion := big.NewInt(1_000_000_000)
	q, r := new(big.Int).QuoRem(prod, billion, new(big.Int))
	if !q.IsUint64() {
		return math.MaxUint64, 999_999_999
	}
	return q.Uint64(), uint32(r.Uint64())
}

func saturatingMulUint64(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, false
	}
	return lo, true
}

func saturatingAddUint64(a, b uint64) (uint64, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

// finalizeSign applies the evaluator's sign-finalization rule: a negative
// zero collapses to ZERO, a nonzero negative magnitude requires
// AllowNegative, and a positive magnitude passes through unchanged.
func finalizeSign(seconds uint64, nanos uint32, negative bool, cfg *Config) (Duration, error) {
	if !negative {
		return Duration{Seconds: seconds, Nanos: nanos}, nil
	}
	if seconds == 0 && nanos == 0 {
		return Duration{}, nil
	}
	if cfg.AllowNegative {
		return Duration{Seconds: seconds, Nanos: nanos, Negative: true}, nil
	}
	return Duration{}, &ParseError{Kind: NegativeNumber}
}
