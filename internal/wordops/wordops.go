// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wordops implements the constant-time primitives shared by the
// field and scalar back-ends: conditional select, conditional swap,
// zeroization, and masked equality-to-zero. None of these branch
// on their "secret" arguments; every one instead computes a full-width
// mask and combines it with AND/OR/XOR.
//
// This factors out logic that filippo.io/edwards25519 duplicates once per
// type (field.Element.Select, Point's CondNeg, etc.) into a single place,
// the way doubleodd-go-do255's internal/field shares mask helpers across
// its do255e and do255s groups.
package wordops

// Mask64 expands a 0/1 condition into an all-zero or all-one uint64 mask.
// cond must be 0 or 1; any other value produces an unspecified mask.
func Mask64(cond int) uint64 {
	return uint64(cond) * (1<<64 - 1)
}

// SelectU64 returns a if cond == 1, and b if cond == 0, without branching.
func SelectU64(a, b uint64, cond int) uint64 {
	m := Mask64(cond)
	return (m & a) | (^m & b)
}

// SwapU64 conditionally swaps *a and *b if cond == 1, leaving them
// unchanged if cond == 0.
func SwapU64(a, b *uint64, cond int) {
	m := Mask64(cond)
	t := m & (*a ^ *b)
	*a ^= t
	*b ^= t
}

// SelectByte returns a if cond == 1, and b if cond == 0.
func SelectByte(a, b byte, cond int) byte {
	m := byte(cond) * 0xff
	return (m & a) | (^m & b)
}

// IsZeroU64 returns 1 if x == 0, and 0 otherwise, in constant time.
func IsZeroU64(x uint64) int {
	// For x != 0, at least one of x and its two's complement negation -x
	// has the top bit set, so the top bit of x | -x is 1 iff x != 0.
	x |= -x
	return int(1 - (x>>63)&1)
}

// CondZeroize overwrites dst with zero bytes if cond == 1, and leaves it
// untouched if cond == 0. Used on destroy paths to wipe secret buffers
// without relying on the compiler not having proven the write dead; the
// byte-at-a-time OR/AND pattern defeats dead-store elimination better
// than a conditionally-skipped memclr would.
func CondZeroize(dst []byte, cond int) {
	m := byte(cond) * 0xff
	for i := range dst {
		dst[i] &= ^m
	}
}

// Zeroize overwrites dst with zero bytes. Callers on secret paths should
// call this instead of letting a buffer become garbage; it is a thin,
// clearly-named wrapper so call sites document intent, used by the
// Destroy methods of field.Element and scalarfield.Element.
func Zeroize(dst []byte) {
	for i := range dst {
		dst[i] = 0
	}
}
