// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duration

import "testing"

func TestCursorBasics(t *testing.T) {
	c := newCursor("12ab")
	if c.eof() {
		t.Fatal("unexpected eof")
	}
	if b, ok := c.peekByte(); !ok || b != '1' {
		t.Fatalf("peekByte() = %q, %v", b, ok)
	}
	c.advance()
	if b, ok := c.peekByte(); !ok || b != '2' {
		t.Fatalf("peekByte() = %q, %v", b, ok)
	}
	c.advanceBy(2)
	if string(c.remainder()) != "b" {
		t.Fatalf("remainder() = %q", c.remainder())
	}
	c.finish()
	if !c.eof() {
		t.Fatal("finish() should reach eof")
	}
	if _, ok := c.peekByte(); ok {
		t.Fatal("peekByte() at eof should fail")
	}
}

func TestCursorPeekTruncatesAtEOF(t *testing.T) {
	c := newCursor("12")
	if got := string(c.peek(5)); got != "12" {
		t.Fatalf("peek(5) = %q, want %q", got, "12")
	}
}

func TestCursorIs8Digits(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"12345678", true},
		{"1234567a", false},
		{"1234567", false},
		{"", false},
		{"00000000", true},
		{"9999999:", false},
	}
	for _, tt := range tests {
		c := newCursor(tt.in)
		if got := c.is8Digits(); got != tt.want {
			t.Errorf("is8Digits(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCursorParse8Digits(t *testing.T) {
	c := newCursor("12345678rest")
	packed, ok := c.parse8Digits()
	if !ok {
		t.Fatal("parse8Digits() failed")
	}
	got := appendPacked(nil, packed)
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if len(got) != len(want) {
		t.Fatalf("appendPacked() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("appendPacked()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if string(c.remainder()) != "rest" {
		t.Fatalf("remainder() after parse8Digits = %q", c.remainder())
	}
}

func TestCursorParse8DigitsRejectsNonDigits(t *testing.T) {
	c := newCursor("1234567x")
	if _, ok := c.parse8Digits(); ok {
		t.Fatal("parse8Digits() should fail on non-digit byte")
	}
	if c.pos != 0 {
		t.Fatalf("cursor advanced on failed parse8Digits: pos = %d", c.pos)
	}
}
