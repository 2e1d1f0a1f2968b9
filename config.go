// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duration

import (
	"math"

	"github.com/db47h/duration/units"
)

// Delimiter reports whether b should be treated as an ignorable byte
// between a number and its unit, or between successive segments in
// ParseMultiple mode. Predicates only ever see ASCII bytes: any byte >=
// 0x80 is passed through as false, so a multi-byte UTF-8 unit identifier
// (e.g. "µs") can never be split by a delimiter predicate that was only
// ever written with ASCII whitespace in mind.
type Delimiter func(b byte) bool

func asciiDelim(d Delimiter, b byte) bool {
	if d == nil || b >= 0x80 {
		return false
	}
	return d(b)
}

// Config holds the immutable settings of a Parser. The zero Config is not
// directly usable; construct one with NewConfig or ConfigBuilder.
type Config struct {
	DefaultUnit               units.TimeUnit
	DefaultMultiplier         units.Multiplier
	DisableExponent           bool
	DisableFraction           bool
	DisableInfinity           bool
	NumberIsOptional          bool
	AllowNegative             bool
	MinExponent               int16
	MaxExponent               int16
	AllowDelimiter            Delimiter
	ParseMultipleDelimiter    Delimiter
	ParseMultipleConjunctions []string
	AllowAgo                  Delimiter
}

// NewConfig returns the default Config: default unit Second, default
// multiplier 1, full int16 exponent range, fractions/exponent/infinity
// enabled, negative numbers and ParseMultiple disabled.
func NewConfig() Config {
	return Config{
		DefaultUnit:       units.Second,
		DefaultMultiplier: units.Identity,
		MinExponent:       math.MinInt16,
		MaxExponent:       math.MaxInt16,
	}
}

// NewConfigIEEE754 is like NewConfig but restricts the exponent range to
// [-1022, 1023], the profile named in the representation parser's
// documentation for callers that want parity with IEEE-754 binary64
// exponent bounds rather than the full int16 range.
func NewConfigIEEE754() Config {
	c := NewConfig()
	c.MinExponent = -1022
	c.MaxExponent = 1023
	return c
}

func (c *Config) multipleActive() bool { return c.ParseMultipleDelimiter != nil }

// ConfigBuilder builds a Config with chained setters, mirroring the Rust
// source's ConfigBuilder (fundu_core::config::ConfigBuilder).
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder returns a builder seeded with NewConfig's defaults.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{config: NewConfig()}
}

// Build returns the configured Config.
func (b *ConfigBuilder) Build() Config { return b.config }

// AllowDelimiter sets the predicate recognizing bytes between a number
// and its unit.
func (b *ConfigBuilder) AllowDelimiter(d Delimiter) *ConfigBuilder {
	b.config.AllowDelimiter = d
	return b
}

// DefaultUnit sets the unit assumed when no unit token is present.
func (b *ConfigBuilder) DefaultUnit(u units.TimeUnit) *ConfigBuilder {
	b.config.DefaultUnit = u
	return b
}

// DefaultMultiplier sets the multiplier folded into every parse in
// addition to the unit's own multiplier.
func (b *ConfigBuilder) DefaultMultiplier(m units.Multiplier) *ConfigBuilder {
	b.config.DefaultMultiplier = m
	return b
}

// DisableExponent stops the scanner from consuming an 'e'/'E' exponent
// marker as part of the number: the marker is left for the unit token.
func (b *ConfigBuilder) DisableExponent() *ConfigBuilder {
	b.config.DisableExponent = true
	return b
}

// DisableFraction makes a '.' a syntax error.
func (b *ConfigBuilder) DisableFraction() *ConfigBuilder {
	b.config.DisableFraction = true
	return b
}

// DisableInfinity makes "inf"/"infinity" ordinary (and therefore invalid,
// absent a unit of that name) tokens instead of the infinity keyword.
func (b *ConfigBuilder) DisableInfinity() *ConfigBuilder {
	b.config.DisableInfinity = true
	return b
}

// NumberIsOptional allows a bare unit with no leading number, e.g. "ns"
// meaning 1 nanosecond.
func (b *ConfigBuilder) NumberIsOptional() *ConfigBuilder {
	b.config.NumberIsOptional = true
	return b
}

// AllowNegative allows a leading '-' to produce a negative Duration
// instead of a NegativeNumber error.
func (b *ConfigBuilder) AllowNegative() *ConfigBuilder {
	b.config.AllowNegative = true
	return b
}

// ExponentRange overrides the [min, max] bounds a scanned exponent must
// fall within.
func (b *ConfigBuilder) ExponentRange(min, max int16) *ConfigBuilder {
	b.config.MinExponent = min
	b.config.MaxExponent = max
	return b
}

// ParseMultiple enables segment splitting: delimiter separates successive
// segments and, optionally, conjunctions names literal words (e.g. "and")
// accepted between two delimiter runs.
func (b *ConfigBuilder) ParseMultiple(delimiter Delimiter, conjunctions []string) *ConfigBuilder {
	b.config.ParseMultipleDelimiter = delimiter
	b.config.ParseMultipleConjunctions = conjunctions
	return b
}

// AllowAgo enables the trailing "ago" keyword, which negates the segment
// it terminates. It requires a delimiter (matched by delimiter)
// immediately before the literal "ago".
func (b *ConfigBuilder) AllowAgo(delimiter Delimiter) *ConfigBuilder {
	b.config.AllowAgo = delimiter
	return b
}
