// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field implements arithmetic over GF(2^255-19), the field the
// ristretto255 group and its underlying Edwards25519 curve are defined
// over. The back-end limb multiplication and squaring primitives are
// supplied by fiat-crypto's formally verified curve25519 code; this
// package wraps that backend in the Element type and its operations,
// not the limb arithmetic itself.
package field

import (
	"crypto/subtle"
	"encoding/binary"
	"errors"

	fiat "github.com/mit-plv/fiat-crypto/fiat-go/64/curve25519"

	"github.com/tarcieri/libristretto255/internal/wordops"
)

// Element represents a residue in GF(2^255-19). Limbs carry headroom
// above their nominal place value; arithmetic may leave the
// representation non-canonical. Only Bytes, Equal, Lobit/Hibit and the
// canonicity check inside SetCanonicalBytes force a canonical (strongly
// reduced) representative, via fiat's Carry/ToBytes.
//
// The zero value is a valid zero element. All arguments and receivers
// may alias.
type Element struct {
	limbs fiat.TightFieldElement
}

func newElementFromLimbs(l0, l1, l2, l3, l4 uint64) *Element {
	e := new(Element)
	fiat.Carry(&e.limbs, &fiat.LooseFieldElement{l0, l1, l2, l3, l4})
	return e
}

var feZero = newElementFromLimbs(0, 0, 0, 0, 0)
var feOne = newElementFromLimbs(1, 0, 0, 0, 0)

// Zero sets v = 0, and returns v.
func (v *Element) Zero() *Element {
	*v = *feZero
	return v
}

// One sets v = 1, and returns v.
func (v *Element) One() *Element {
	*v = *feOne
	return v
}

// Set sets v = a, and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// Add sets v = a + b, and returns v. The result is carried back into the
// tight limb bounds, so it is safe to feed into further arithmetic as well
// as into Bytes, Equal or Lobit/Hibit.
func (v *Element) Add(a, b *Element) *Element {
	fiat.CarryAdd(&v.limbs, &a.limbs, &b.limbs)
	return v
}

// Subtract sets v = a - b, and returns v.
func (v *Element) Subtract(a, b *Element) *Element {
	fiat.CarrySub(&v.limbs, &a.limbs, &b.limbs)
	return v
}

// Negate sets v = -a, and returns v.
func (v *Element) Negate(a *Element) *Element {
	fiat.CarryOpp(&v.limbs, &a.limbs)
	return v
}

// Multiply sets v = x * y, and returns v.
func (v *Element) Multiply(x, y *Element) *Element {
	fiat.CarryMul(&v.limbs, (*fiat.LooseFieldElement)(&x.limbs), (*fiat.LooseFieldElement)(&y.limbs))
	return v
}

// Square sets v = x * x, and returns v.
func (v *Element) Square(x *Element) *Element {
	fiat.CarrySquare(&v.limbs, (*fiat.LooseFieldElement)(&x.limbs))
	return v
}

// Mult32 sets v = x * y, and returns v.
func (v *Element) Mult32(x *Element, y uint32) *Element {
	yLimbs := fiat.LooseFieldElement{uint64(y), 0, 0, 0, 0}
	fiat.CarryMul(&v.limbs, (*fiat.LooseFieldElement)(&x.limbs), &yLimbs)
	return v
}

// StrongReduce forces v into the unique representative of its residue
// class in [0, p), and returns v.
func (v *Element) StrongReduce() *Element {
	var buf [32]byte
	fiat.ToBytes(&buf, &v.limbs)
	fiat.FromBytes(&v.limbs, &buf)
	return v
}

// IsZero returns 1 if v == 0, and 0 otherwise.
func (v *Element) IsZero() int {
	b := v.Bytes()
	var acc byte
	for _, c := range b {
		acc |= c
	}
	return wordops.IsZeroU64(uint64(acc))
}

// Equal returns 1 if v and u are equal, and 0 otherwise.
func (v *Element) Equal(u *Element) int {
	sa, sv := u.Bytes(), v.Bytes()
	return subtle.ConstantTimeCompare(sa, sv)
}

// Select sets v to a if cond == 1, and to b if cond == 0.
func (v *Element) Select(a, b *Element, cond int) *Element {
	m := wordops.Mask64(cond)
	v.limbs[0] = (m & a.limbs[0]) | (^m & b.limbs[0])
	v.limbs[1] = (m & a.limbs[1]) | (^m & b.limbs[1])
	v.limbs[2] = (m & a.limbs[2]) | (^m & b.limbs[2])
	v.limbs[3] = (m & a.limbs[3]) | (^m & b.limbs[3])
	v.limbs[4] = (m & a.limbs[4]) | (^m & b.limbs[4])
	return v
}

// Swap swaps v and u if cond == 1, and leaves them unchanged if cond == 0.
func (v *Element) Swap(u *Element, cond int) {
	m := wordops.Mask64(cond)
	for i := range v.limbs {
		t := m & (v.limbs[i] ^ u.limbs[i])
		v.limbs[i] ^= t
		u.limbs[i] ^= t
	}
}

// CondNegate sets v to -u if cond == 1, and to u if cond == 0.
func (v *Element) CondNegate(u *Element, cond int) *Element {
	var neg Element
	neg.Negate(u)
	return v.Select(&neg, u, cond)
}

// Lobit returns the low bit of v's canonical representative mod p.
func (v *Element) Lobit() int {
	return int(v.Bytes()[0] & 1)
}

// Hibit returns the low bit of the canonical representative of 2*v mod
// p: hibit(x) = low_bit_of(2*x mod p). It is 1 exactly when the
// canonical representative of v is greater than (p-1)/2.
func (v *Element) Hibit() int {
	var t Element
	t.Add(v, v)
	return t.Lobit()
}

// Absolute sets v to |u| (u if its low bit is 0, -u otherwise) and
// returns v.
func (v *Element) Absolute(u *Element) *Element {
	return v.CondNegate(u, u.Lobit())
}

// SetBytes decodes x, a 32-byte little-endian encoding, accepting
// non-canonical inputs the way RFC 7748 requires: the high bit is
// cleared and values in [2^255-19, 2^255) are reduced rather than
// rejected. Callers that need to reject non-canonical input should use
// SetCanonicalBytes instead.
func (v *Element) SetBytes(x []byte) (*Element, error) {
	if len(x) != 32 {
		return nil, errors.New("field: invalid element input size")
	}
	var xCopy [32]byte
	copy(xCopy[:], x)
	xCopy[31] &= 0x7f
	fiat.FromBytes(&v.limbs, &xCopy)
	return v, nil
}

// SetCanonicalBytes decodes x and additionally demands the decoded
// value be strictly less than p, returning an error instead of the
// reduced value otherwise. hiNmask lets the caller discard arbitrary
// high bits of byte 31 before the canonicity check runs, without
// treating the masked-off bits as evidence either way.
func (v *Element) SetCanonicalBytes(x []byte, hiNmask byte) (*Element, error) {
	if len(x) != 32 {
		return nil, errors.New("field: invalid element input size")
	}
	var masked [32]byte
	copy(masked[:], x)
	masked[31] &^= hiNmask

	fiat.FromBytes(&v.limbs, &masked)

	var check [32]byte
	fiat.ToBytes(&check, &v.limbs)
	if subtle.ConstantTimeCompare(check[:], masked[:]) != 1 {
		return nil, errors.New("field: non-canonical encoding")
	}
	return v, nil
}

// Bytes returns the canonical 32-byte little-endian encoding of v.
func (v *Element) Bytes() []byte {
	var out [32]byte
	fiat.ToBytes(&out, &v.limbs)
	return out[:]
}

// SetWideBytes sets v to x, a 64-byte little-endian integer, reduced
// modulo p. Ported from filippo.io/edwards25519's field.Element; used by
// the uniform Elligator2 hash-to-group path and nowhere on a
// canonicity-sensitive path.
func (v *Element) SetWideBytes(x []byte) (*Element, error) {
	if len(x) != 64 {
		return nil, errors.New("field: invalid SetWideBytes input size")
	}

	lo, _ := new(Element).SetBytes(x[:32])
	loMSB := uint64(x[31] >> 7)
	hi, _ := new(Element).SetBytes(x[32:])
	hiMSB := uint64(x[63] >> 7)

	// v = lo + loMSB*2^255 + hi*2^256 + hiMSB*2^511
	//   = lo + loMSB*19 + hi*2*19 + hiMSB*2*19^2
	carry := newElementFromLimbs(loMSB*19+hiMSB*2*19*19, 0, 0, 0, 0)
	lo.Add(lo, carry)
	hi.Mult32(hi, 2*19)
	v.Add(lo, hi)

	return v, nil
}

// Destroy zeroizes v. wordops.Zeroize writes through a byte slice so the
// compiler cannot prove the store unobservable and elide it.
func (v *Element) Destroy() {
	buf := make([]byte, 40)
	binary.LittleEndian.PutUint64(buf[0:], v.limbs[0])
	binary.LittleEndian.PutUint64(buf[8:], v.limbs[1])
	binary.LittleEndian.PutUint64(buf[16:], v.limbs[2])
	binary.LittleEndian.PutUint64(buf[24:], v.limbs[3])
	binary.LittleEndian.PutUint64(buf[32:], v.limbs[4])
	wordops.Zeroize(buf)
	v.limbs = fiat.TightFieldElement{}
}

// Invert sets v = 1/z mod p, and returns v.
//
// If z == 0, Invert returns v = 0.
func (v *Element) Invert(z *Element) *Element {
	// Same 254-squaring, 11-multiplication addition chain as Curve25519's
	// reference implementation.
	var z2, z9, z11, z2_5_0, z2_10_0, z2_20_0, z2_50_0, z2_100_0, t Element

	z2.Square(z)             // 2
	t.Square(&z2)            // 4
	t.Square(&t)             // 8
	z9.Multiply(&t, z)       // 9
	z11.Multiply(&z9, &z2)   // 11
	t.Square(&z11)           // 22
	z2_5_0.Multiply(&t, &z9) // 31 = 2^5 - 2^0

	t.Square(&z2_5_0)
	for i := 0; i < 4; i++ {
		t.Square(&t)
	}
	z2_10_0.Multiply(&t, &z2_5_0)

	t.Square(&z2_10_0)
	for i := 0; i < 9; i++ {
		t.Square(&t)
	}
	z2_20_0.Multiply(&t, &z2_10_0)

	t.Square(&z2_20_0)
	for i := 0; i < 19; i++ {
		t.Square(&t)
	}
	t.Multiply(&t, &z2_20_0)

	t.Square(&t)
	for i := 0; i < 9; i++ {
		t.Square(&t)
	}
	z2_50_0.Multiply(&t, &z2_10_0)

	t.Square(&z2_50_0)
	for i := 0; i < 49; i++ {
		t.Square(&t)
	}
	z2_100_0.Multiply(&t, &z2_50_0)

	t.Square(&z2_100_0)
	for i := 0; i < 99; i++ {
		t.Square(&t)
	}
	t.Multiply(&t, &z2_100_0)

	t.Square(&t)
	for i := 0; i < 49; i++ {
		t.Square(&t)
	}
	t.Multiply(&t, &z2_50_0)

	t.Square(&t)
	t.Square(&t)
	t.Square(&t)
	t.Square(&t)
	t.Square(&t)

	return v.Multiply(&t, &z11)
}

// Pow22523 sets v = x^((p-5)/8), and returns v. (p-5)/8 = 2^252-3.
func (v *Element) Pow22523(x *Element) *Element {
	var t0, t1, t2 Element

	t0.Square(x)             // x^2
	t1.Square(&t0)           // x^4
	t1.Square(&t1)           // x^8
	t1.Multiply(x, &t1)      // x^9
	t0.Multiply(&t0, &t1)    // x^11
	t0.Square(&t0)           // x^22
	t0.Multiply(&t1, &t0)    // x^31
	t1.Square(&t0)           // x^62
	for i := 1; i < 5; i++ { // x^992
		t1.Square(&t1)
	}
	t0.Multiply(&t1, &t0)     // x^1023 = 2^10-1
	t1.Square(&t0)            // 2^11-2
	for i := 1; i < 10; i++ { // 2^20-2^10
		t1.Square(&t1)
	}
	t1.Multiply(&t1, &t0)     // 2^20-1
	t2.Square(&t1)            // 2^21-2
	for i := 1; i < 20; i++ { // 2^40-2^20
		t2.Square(&t2)
	}
	t1.Multiply(&t2, &t1)     // 2^40-1
	t1.Square(&t1)            // 2^41-2
	for i := 1; i < 10; i++ { // 2^50-2^10
		t1.Square(&t1)
	}
	t0.Multiply(&t1, &t0)     // 2^50-1
	t1.Square(&t0)            // 2^51-2
	for i := 1; i < 50; i++ { // 2^100-2^50
		t1.Square(&t1)
	}
	t1.Multiply(&t1, &t0)      // 2^100-1
	t2.Square(&t1)             // 2^101-2
	for i := 1; i < 100; i++ { // 2^200-2^100
		t2.Square(&t2)
	}
	t1.Multiply(&t2, &t1)     // 2^200-1
	t1.Square(&t1)            // 2^201-2
	for i := 1; i < 50; i++ { // 2^250-2^50
		t1.Square(&t1)
	}
	t0.Multiply(&t1, &t0) // 2^250-1
	t0.Square(&t0)        // 2^251-2
	t0.Square(&t0)        // 2^252-4
	return v.Multiply(&t0, x)
}

// SqrtMinusOne is sqrt(-1) mod p, i.e. 2^((p-1)/4).
var SqrtMinusOne = newElementFromLimbs(1718705420411056, 234908883556509,
	2233514472574048, 2117202627021982, 765476049583133)

// SqrtRatio sets r to the non-negative square root of u/v if one exists,
// and returns (r, 1). If u/v is not a square, it sets r to a
// representative satisfying r^2*v = u*sqrt(-1) (per
// draft-irtf-cfrg-ristretto255-decaf448 §4.3) and returns (r, 0).
func (r *Element) SqrtRatio(u, v *Element) (rr *Element, wasSquare int) {
	t0 := new(Element)

	v2 := new(Element).Square(v)
	uv3 := new(Element).Multiply(u, t0.Multiply(v2, v))
	uv7 := new(Element).Multiply(uv3, t0.Square(v2))
	rr = new(Element).Multiply(uv3, t0.Pow22523(uv7))

	check := new(Element).Multiply(v, t0.Square(rr))

	uNeg := new(Element).Negate(u)
	correctSignSqrt := check.Equal(u)
	flippedSignSqrt := check.Equal(uNeg)
	flippedSignSqrtI := check.Equal(t0.Multiply(uNeg, SqrtMinusOne))

	rPrime := new(Element).Multiply(rr, SqrtMinusOne)
	rr.Select(rPrime, rr, flippedSignSqrt|flippedSignSqrtI)

	r.Absolute(rr)
	return r, correctSignSqrt | flippedSignSqrt
}

// Isr is the combined inverse-square-root-and-quadratic-residue test:
// if x == 0, it returns (0, true); otherwise it returns a such that a^2*x
// is 1 (and reports true) when x is a quadratic residue, or i (and
// reports false) when it is not.
func (v *Element) Isr(x *Element) (r *Element, wasQR int) {
	r, wasQR = v.SqrtRatio(feOne, x)
	xIsZero := x.IsZero()
	r.Select(feZero, r, xIsZero)
	wasQR |= xIsZero
	return r, wasQR
}
