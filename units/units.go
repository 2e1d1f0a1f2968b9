// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package units provides the TimeUnit vocabulary, Multiplier arithmetic and
// TimeUnitTable lookup capability used by package duration to translate a
// scanned unit identifier into a number of seconds.
package units

import "fmt"

// A TimeUnit identifies the unit a scanned number is expressed in.
type TimeUnit byte

// The recognized time units, ordered from smallest to largest.
const (
	Nanosecond TimeUnit = iota
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
)

//go:generate stringer -type=TimeUnit

// Multiplier represents a decimal value of the form M * 10^E. It composes
// with other Multipliers by componentwise multiplication of M and addition
// of E, matching the "Multiplier(m, e)" value described in the duration
// package's representation parser.
type Multiplier struct {
	M int64
	E int16
}

// Identity is the neutral element for Compose: m.Compose(Identity) == m.
var Identity = Multiplier{M: 1, E: 0}

// Compose returns the multiplier equivalent to applying m then other, i.e.
// the value m.M*other.M * 10^(m.E+other.E).
func (m Multiplier) Compose(other Multiplier) Multiplier {
	return Multiplier{M: m.M * other.M, E: m.E + other.E}
}

func (m Multiplier) String() string {
	if m.E == 0 {
		return fmt.Sprintf("%d", m.M)
	}
	return fmt.Sprintf("%de%d", m.M, m.E)
}

// secondsEquivalent holds, for each TimeUnit, the integer scale u and
// base-10 exponent k such that one unit equals u * 10^k seconds.
var secondsEquivalent = [...]Multiplier{
	Nanosecond:  {M: 1, E: -9},
	Microsecond: {M: 1, E: -6},
	Millisecond: {M: 1, E: -3},
	Second:      {M: 1, E: 0},
	Minute:      {M: 60, E: 0},
	Hour:        {M: 3600, E: 0},
	Day:         {M: 86400, E: 0},
	Week:        {M: 604800, E: 0},
	Month:       {M: 2629800, E: 0},
	Year:        {M: 31557600, E: 0},
}

// SecondsEquivalent returns the (M, E) pair such that one u equals M*10^E
// seconds.
func (u TimeUnit) SecondsEquivalent() Multiplier {
	return secondsEquivalent[u]
}

// Entry pairs a TimeUnit with the multiplier to apply on top of its
// standard seconds equivalent (used by tables whose identifiers do not map
// 1:1 to a bare TimeUnit, e.g. a custom "tick" of 100 nanoseconds; the
// Default, All and Systemd tables use Identity throughout).
type Entry struct {
	Unit       TimeUnit
	Multiplier Multiplier
}

// TimeUnitTable is the external collaborator the duration parser consults
// to resolve a scanned unit identifier. Implementations supply whichever
// alias set they choose (short "s", long "seconds", UTF-8 "µs", systemd
// aliases, ...). Identifier lookup is case-sensitive.
type TimeUnitTable interface {
	// IsEmpty reports whether the table recognizes no identifiers at all.
	// When true, the scanner treats any non-empty unit token as an error.
	IsEmpty() bool
	// Get looks up identifier and returns its TimeUnit and Multiplier. The
	// returned Multiplier is composed with the unit's own seconds
	// equivalent and the parser's configured default multiplier by the
	// evaluator.
	Get(identifier string) (Entry, bool)
}
