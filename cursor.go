// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duration

import "encoding/binary"

// cursor owns the input bytes and a position into them. It never fails:
// reads past the end simply return zero values, mirroring the teacher's
// io.ByteScanner-driven scan loops (dec_conv.go, stdlib.go) but indexed
// rather than iterator-driven, per the representation parser's "never use
// language-provided lazy iteration in the hot loop" design note.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(s string) cursor {
	return cursor{buf: []byte(s)}
}

// eof reports whether the cursor has consumed the entire input.
func (c *cursor) eof() bool { return c.pos >= len(c.buf) }

// peek returns up to n bytes starting at the current position, or fewer
// if less than n bytes remain.
func (c *cursor) peek(n int) []byte {
	end := c.pos + n
	if end > len(c.buf) {
		end = len(c.buf)
	}
	return c.buf[c.pos:end]
}

// peekByte returns the byte at the current position and true, or 0, false
// at EOF.
func (c *cursor) peekByte() (byte, bool) {
	if c.eof() {
		return 0, false
	}
	return c.buf[c.pos], true
}

// advance consumes one byte. The caller must ensure the cursor is not at
// EOF.
func (c *cursor) advance() { c.pos++ }

// advanceBy consumes n bytes unchecked: the caller guarantees the slice
// has at least n bytes remaining.
func (c *cursor) advanceBy(n int) { c.pos += n }

// remainder returns every byte from the current position to the end of
// the input.
func (c *cursor) remainder() []byte { return c.buf[c.pos:] }

// finish jumps the cursor to the end of the input.
func (c *cursor) finish() { c.pos = len(c.buf) }

// is8Digits reports whether the next 8 bytes are all present and all
// ASCII digits, using the SWAR ("SIMD within a register") trick: load the
// 8 bytes as a little-endian word w and test that every byte's high
// nibble is 0x3 and every byte's low nibble is in [0, 9] without a
// per-byte branch.
//
// Go has no portable unaligned-load intrinsic outside of encoding/binary,
// so the "single unaligned 64-bit read" the representation parser's
// design notes describe is expressed here as a LittleEndian.Uint64 load;
// the arithmetic test and its result are bit-for-bit identical to the
// teacher's bit-twiddling style (dec_arith.go's word-level carry/borrow
// tricks) applied to ASCII digit detection instead of digit arithmetic.
func (c *cursor) is8Digits() bool {
	if len(c.buf)-c.pos < 8 {
		return false
	}
	w := binary.LittleEndian.Uint64(c.buf[c.pos : c.pos+8])
	return (w&(w+0x0606060606060606)&0xF0F0F0F0F0F0F0F0) == 0x3030303030303030
}

// parse8Digits consumes 8 ASCII digit bytes and returns the packed block
// of raw digit values (one per original byte, still in little-endian
// order within the word) and true. If the next 8 bytes are not all ASCII
// digits, it consumes nothing and returns 0, false.
func (c *cursor) parse8Digits() (uint64, bool) {
	if !c.is8Digits() {
		return 0, false
	}
	w := binary.LittleEndian.Uint64(c.buf[c.pos : c.pos+8])
	c.pos += 8
	return w - 0x3030303030303030, true
}

// appendPacked stores the 8 packed digit values from parse8Digits into dst
// with a single slice append, in the same order the bytes were read from
// the input — the Go equivalent of the unaligned 64-bit store the
// representation parser's design notes call for.
func appendPacked(dst []byte, packed uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], packed)
	return append(dst, tmp[:]...)
}
