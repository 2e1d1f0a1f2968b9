// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duration

import (
	"errors"
	"math"
	"testing"

	"github.com/db47h/duration/units"
)

func TestParserScenarios(t *testing.T) {
	cfg := NewConfigBuilder().AllowNegative().Build()
	p := NewParser(cfg, units.Default())

	tests := []struct {
		in   string
		want Duration
	}{
		{"1", Duration{Seconds: 1}},
		{"1.000000001", Duration{Seconds: 1, Nanos: 1}},
		{"18446744073709551615.999999999", Duration{Seconds: math.MaxUint64, Nanos: 999_999_999}},
		{"18446744073709551616.0", MaxDuration},
		{"inf", MaxDuration},
		{"Infinity", MaxDuration},
		{"+INF", MaxDuration},
		{"-0.0", Zero},
		{".5", Duration{Nanos: 500_000_000}},
		{"5.", Duration{Seconds: 5}},
		{"1.5e2s", Duration{Seconds: 150}},
		{"150s", Duration{Seconds: 150}},
	}
	for _, tt := range tests {
		got, err := p.Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParserExponentEquivalence(t *testing.T) {
	p := NewParser(NewConfig(), units.Default())
	a, err := p.Parse("1.5e2s")
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.Parse("150s")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("1.5e2s = %+v, 150s = %+v, want equal", a, b)
	}
}

func TestParserNegativeNumberRejected(t *testing.T) {
	p := NewParser(NewConfig(), units.Default())
	_, err := p.Parse("-1")
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != NegativeNumber {
		t.Fatalf("Parse(-1) error = %v, want NegativeNumber", err)
	}
}

func TestParserPositiveExponentOverflow(t *testing.T) {
	p := NewParser(NewConfigIEEE754(), units.Default())
	_, err := p.Parse("1e1024")
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != PositiveExponentOverflow {
		t.Fatalf("Parse(1e1024) error = %v, want PositiveExponentOverflow", err)
	}
}

func TestParserDotAloneIsSyntaxErrorAtZero(t *testing.T) {
	p := NewParser(NewConfig(), units.Default())
	_, err := p.Parse(".")
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != Syntax || pe.Pos != 0 {
		t.Fatalf("Parse(.) error = %v, want Syntax at 0", err)
	}
}

func TestParserNumberIsOptional(t *testing.T) {
	cfg := NewConfigBuilder().NumberIsOptional().Build()
	p := NewParser(cfg, units.Default())
	got, err := p.Parse("ns")
	if err != nil {
		t.Fatal(err)
	}
	if want := (Duration{Nanos: 1}); got != want {
		t.Fatalf("Parse(ns) = %+v, want %+v", got, want)
	}
}

func TestParserAgoNegatesSegment(t *testing.T) {
	cfg := NewConfigBuilder().
		AllowNegative().
		AllowDelimiter(func(b byte) bool { return b == ' ' }).
		AllowAgo(func(b byte) bool { return b == ' ' }).
		Build()
	p := NewParser(cfg, units.Default())
	got, err := p.Parse("2h ago")
	if err != nil {
		t.Fatal(err)
	}
	want := Duration{Seconds: 2 * 3600, Negative: true}
	if got != want {
		t.Fatalf("Parse(2h ago) = %+v, want %+v", got, want)
	}
}

func TestParserAgoWithoutUnit(t *testing.T) {
	cfg := NewConfigBuilder().
		AllowNegative().
		AllowDelimiter(func(b byte) bool { return b == ' ' }).
		AllowAgo(func(b byte) bool { return b == ' ' }).
		Build()
	p := NewParser(cfg, units.Default())
	got, err := p.Parse("2 ago")
	if err != nil {
		t.Fatal(err)
	}
	want := Duration{Seconds: 2, Negative: true}
	if got != want {
		t.Fatalf("Parse(2 ago) = %+v, want %+v", got, want)
	}
}

func TestParserTrailingDelimiterWithNoUnitIsError(t *testing.T) {
	cfg := NewConfigBuilder().AllowDelimiter(func(b byte) bool { return b == ' ' }).Build()
	p := NewParser(cfg, units.Default())
	_, err := p.Parse("5 ")
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != Syntax {
		t.Fatalf("Parse(%q) error = %v, want Syntax", "5 ", err)
	}
}

func TestParserUnitFollowedByDelimiterIsUnknownUnit(t *testing.T) {
	// In single-segment mode the unit token is the unbounded remainder of
	// the input, so a unit followed by trailing whitespace is looked up
	// (and fails) as one identifier rather than being split in two.
	cfg := NewConfigBuilder().AllowDelimiter(func(b byte) bool { return b == ' ' }).Build()
	p := NewParser(cfg, units.Default())
	_, err := p.Parse("5s ")
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != TimeUnit {
		t.Fatalf("Parse(%q) error = %v, want TimeUnit", "5s ", err)
	}
}

func TestParserUnknownUnit(t *testing.T) {
	p := NewParser(NewConfig(), units.Default())
	_, err := p.Parse("5x")
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != TimeUnit {
		t.Fatalf("Parse(5x) error = %v, want TimeUnit", err)
	}
}

func TestParserEmptyInput(t *testing.T) {
	p := NewParser(NewConfig(), units.Default())
	_, err := p.Parse("")
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != Empty {
		t.Fatalf("Parse(\"\") error = %v, want Empty", err)
	}
}

func TestParserNegativeInfinity(t *testing.T) {
	cfg := NewConfigBuilder().AllowNegative().Build()
	p := NewParser(cfg, units.Default())
	_, err := p.Parse("-inf")
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != NegativeInfinity {
		t.Fatalf("Parse(-inf) error = %v, want NegativeInfinity", err)
	}
}

func TestParserRejectsTrailingInput(t *testing.T) {
	p := NewParser(NewConfig(), units.Default())
	_, err := p.Parse("5sx")
	if err == nil {
		t.Fatal("expected an error for unconsumed trailing input")
	}
}

func TestParserExponentAtLowerBound(t *testing.T) {
	p := NewParser(NewConfig(), units.Default())
	got, err := p.Parse("1e-9s")
	if err != nil {
		t.Fatalf("Parse(1e-9s) error = %v", err)
	}
	if want := (Duration{Nanos: 1}); got != want {
		t.Fatalf("Parse(1e-9s) = %+v, want %+v", got, want)
	}
}
