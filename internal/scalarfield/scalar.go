// Copyright (c) 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalarfield implements arithmetic over GF(ℓ), the scalar field
// of the ristretto255 group and its underlying Edwards25519 curve, where
//
//	ℓ = 2^252 + 27742317777372353535851937790883648493.
//
// The Montgomery-domain limb arithmetic in scalar_fiat.go is generated by
// the fiat-crypto project from a formally verified model; this file is the
// hand-written contract around it (decode/encode, recoding, inversion).
package scalarfield

import (
	"encoding/binary"
	"errors"

	"github.com/tarcieri/libristretto255/internal/wordops"
)

// An Element is an integer modulo ℓ.
//
// This type works similarly to math/big.Int, and all arguments and
// receivers are allowed to alias.
//
// The zero value is a valid zero element.
type Element struct {
	// s is the scalar in the Montgomery domain, in the format of the
	// fiat-crypto implementation.
	s fiatScalarMontgomeryDomainFieldElement
}

var scZero = new(Element)
var scOne = func() *Element {
	s := new(Element)
	s.setShortBytes([]byte{1})
	return s
}()

// Zero sets s = 0, and returns s.
func (s *Element) Zero() *Element { *s = *scZero; return s }

// One sets s = 1, and returns s.
func (s *Element) One() *Element { *s = *scOne; return s }

// Set sets s = x, and returns s.
func (s *Element) Set(x *Element) *Element {
	*s = *x
	return s
}

// Add sets s = x + y mod ℓ, and returns s.
func (s *Element) Add(x, y *Element) *Element {
	fiatScalarAdd(&s.s, &x.s, &y.s)
	return s
}

// Subtract sets s = x - y mod ℓ, and returns s.
func (s *Element) Subtract(x, y *Element) *Element {
	fiatScalarSub(&s.s, &x.s, &y.s)
	return s
}

// Negate sets s = -x mod ℓ, and returns s.
func (s *Element) Negate(x *Element) *Element {
	fiatScalarOpp(&s.s, &x.s)
	return s
}

// Multiply sets s = x * y mod ℓ, and returns s.
func (s *Element) Multiply(x, y *Element) *Element {
	fiatScalarMul(&s.s, &x.s, &y.s)
	return s
}

// MultiplyAdd sets s = x*y + z mod ℓ, and returns s.
func (s *Element) MultiplyAdd(x, y, z *Element) *Element {
	zCopy := new(Element).Set(z)
	return s.Multiply(x, y).Add(s, zCopy)
}

// pow2k sets s = s**(2**k).
func (s *Element) pow2k(k int) {
	for i := 0; i < k; i++ {
		s.Multiply(s, s)
	}
}

// Invert sets s to the inverse of a nonzero t, and returns s. If t is zero,
// Invert sets s to zero.
//
// The addition chain is a hardcoded sliding window of width 4 over the
// exponent ℓ-2.
func (s *Element) Invert(t *Element) *Element {
	var table [8]Element
	var tt Element
	tt.Multiply(t, t)
	table[0] = *t
	for i := 0; i < 7; i++ {
		table[i+1].Multiply(&table[i], &tt)
	}
	// table = [t**1, t**3, t**5, t**7, t**9, t**11, t**13, t**15]

	*s = table[1/2]
	s.pow2k(127 + 1)
	s.Multiply(s, &table[1/2])
	s.pow2k(4 + 1)
	s.Multiply(s, &table[9/2])
	s.pow2k(3 + 1)
	s.Multiply(s, &table[11/2])
	s.pow2k(3 + 1)
	s.Multiply(s, &table[13/2])
	s.pow2k(3 + 1)
	s.Multiply(s, &table[15/2])
	s.pow2k(4 + 1)
	s.Multiply(s, &table[7/2])
	s.pow2k(4 + 1)
	s.Multiply(s, &table[15/2])
	s.pow2k(3 + 1)
	s.Multiply(s, &table[5/2])
	s.pow2k(3 + 1)
	s.Multiply(s, &table[1/2])
	s.pow2k(4 + 1)
	s.Multiply(s, &table[15/2])
	s.pow2k(4 + 1)
	s.Multiply(s, &table[15/2])
	s.pow2k(4 + 1)
	s.Multiply(s, &table[7/2])
	s.pow2k(3 + 1)
	s.Multiply(s, &table[3/2])
	s.pow2k(4 + 1)
	s.Multiply(s, &table[11/2])
	s.pow2k(5 + 1)
	s.Multiply(s, &table[11/2])
	s.pow2k(9 + 1)
	s.Multiply(s, &table[9/2])
	s.pow2k(3 + 1)
	s.Multiply(s, &table[3/2])
	s.pow2k(4 + 1)
	s.Multiply(s, &table[3/2])
	s.pow2k(4 + 1)
	s.Multiply(s, &table[3/2])
	s.pow2k(4 + 1)
	s.Multiply(s, &table[9/2])
	s.pow2k(3 + 1)
	s.Multiply(s, &table[7/2])
	s.pow2k(3 + 1)
	s.Multiply(s, &table[3/2])
	s.pow2k(3 + 1)
	s.Multiply(s, &table[13/2])
	s.pow2k(3 + 1)
	s.Multiply(s, &table[7/2])
	s.pow2k(4 + 1)
	s.Multiply(s, &table[9/2])
	s.pow2k(3 + 1)
	s.Multiply(s, &table[15/2])
	s.pow2k(4 + 1)
	s.Multiply(s, &table[11/2])

	if t.IsZero() == 1 {
		s.Zero()
	}
	return s
}

// Halve sets s = x/2 mod ℓ, and returns s. ℓ is odd, so every element has
// a unique half; it is computed as x * inverse(2) rather than by a bit
// shift, since x's Montgomery-domain representation has no notion of
// "even" or "odd" exposed to this package.
func (s *Element) Halve(x *Element) *Element {
	return s.Multiply(x, scInvTwo)
}

var scInvTwo = func() *Element {
	two := new(Element).Add(scOne, scOne)
	return new(Element).Invert(two)
}()

// IsZero returns 1 if s == 0, and 0 otherwise.
func (s *Element) IsZero() int {
	return s.Equal(scZero)
}

// Equal returns 1 if s and t are equal, and 0 otherwise.
func (s *Element) Equal(t *Element) int {
	var diff fiatScalarMontgomeryDomainFieldElement
	fiatScalarSub(&diff, &s.s, &t.s)
	var nonzero uint64
	fiatScalarNonzero(&nonzero, (*[4]uint64)(&diff))
	nonzero |= nonzero >> 32
	nonzero |= nonzero >> 16
	nonzero |= nonzero >> 8
	nonzero |= nonzero >> 4
	nonzero |= nonzero >> 2
	nonzero |= nonzero >> 1
	return int(^nonzero) & 1
}

// Select sets s to a if cond == 1, and to b if cond == 0.
func (s *Element) Select(a, b *Element, cond int) *Element {
	m := wordops.Mask64(cond)
	for i := range s.s {
		s.s[i] = (m & a.s[i]) | (^m & b.s[i])
	}
	return s
}

// setShortBytes sets s = x mod ℓ, where x is a little-endian integer
// shorter than 32 bytes.
func (s *Element) setShortBytes(x []byte) *Element {
	if len(x) >= 32 {
		panic("scalarfield: internal error: setShortBytes called with a long string")
	}
	var buf [32]byte
	copy(buf[:], x)
	fiatScalarFromBytes((*[4]uint64)(&s.s), &buf)
	fiatScalarToMontgomery(&s.s, (*fiatScalarNonMontgomeryDomainFieldElement)(&s.s))
	return s
}

// scalarTwo168 and scalarTwo336 are 2^168 and 2^336 modulo ℓ, encoded as a
// fiatScalarMontgomeryDomainFieldElement.
var scalarTwo168 = &Element{s: [4]uint64{0x5b8ab432eac74798, 0x38afddd6de59d5d7,
	0xa2c131b399411b7c, 0x6329a7ed9ce5a30}}
var scalarTwo336 = &Element{s: [4]uint64{0xbd3d108e2b35ecc5, 0x5c3a3718bdf9c90b,
	0x63aa97a331b4f2ee, 0x3d217f5be65cb5c}}

// SetUniformBytes sets s = x mod ℓ, where x is a 64-byte little-endian
// integer. If x is not of the right length, SetUniformBytes returns nil
// and an error, and the receiver is unchanged.
//
// SetUniformBytes can be used to set s to a uniformly distributed value
// given 64 uniformly distributed random bytes (the long/wide decode
// scalar.md describes).
func (s *Element) SetUniformBytes(x []byte) (*Element, error) {
	if len(x) != 64 {
		return nil, errors.New("scalarfield: invalid SetUniformBytes input length")
	}

	// x has 512 bits, but fiatScalarFromBytes expects an input lower than
	// ℓ, a little over 252 bits. Split x into three 168-bit limbs:
	//
	//    x = a + b * 2^168 + c * 2^336  mod ℓ
	//
	// and reduce with two multiplications by the precomputed powers above.
	s.setShortBytes(x[:21])
	t := new(Element).setShortBytes(x[21:42])
	s.Add(s, t.Multiply(t, scalarTwo168))
	t.setShortBytes(x[42:])
	s.Add(s, t.Multiply(t, scalarTwo336))

	return s, nil
}

// scalarMinusOneBytes is ℓ - 1 in little-endian.
var scalarMinusOneBytes = [32]byte{236, 211, 245, 92, 26, 99, 18, 88, 214, 156, 247, 162, 222, 249, 222, 20, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 16}

// isReduced returns whether the given scalar in 32-byte little-endian form
// is already reduced modulo ℓ.
func isReduced(s []byte) bool {
	if len(s) != 32 {
		return false
	}
	for i := len(s) - 1; i >= 0; i-- {
		switch {
		case s[i] > scalarMinusOneBytes[i]:
			return false
		case s[i] < scalarMinusOneBytes[i]:
			return true
		}
	}
	return true
}

// SetCanonicalBytes sets s = x, where x is a 32-byte little-endian
// canonical encoding of s, and returns s. If x is not canonical,
// SetCanonicalBytes returns nil and an error, and the receiver is
// unchanged.
func (s *Element) SetCanonicalBytes(x []byte) (*Element, error) {
	if len(x) != 32 {
		return nil, errors.New("scalarfield: invalid scalar length")
	}
	if !isReduced(x) {
		return nil, errors.New("scalarfield: non-canonical scalar encoding")
	}
	fiatScalarFromBytes((*[4]uint64)(&s.s), (*[32]byte)(x))
	fiatScalarToMontgomery(&s.s, (*fiatScalarNonMontgomeryDomainFieldElement)(&s.s))
	return s, nil
}

// Bytes returns the canonical 32-byte little-endian encoding of s.
func (s *Element) Bytes() []byte {
	var encoded [32]byte
	return s.bytes(&encoded)
}

func (s *Element) bytes(out *[32]byte) []byte {
	var ss fiatScalarNonMontgomeryDomainFieldElement
	fiatScalarFromMontgomery(&ss, &s.s)
	fiatScalarToBytes(out, (*[4]uint64)(&ss))
	return out[:]
}

// Destroy overwrites s with zero limbs.
func (s *Element) Destroy() {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:], s.s[0])
	binary.LittleEndian.PutUint64(buf[8:], s.s[1])
	binary.LittleEndian.PutUint64(buf[16:], s.s[2])
	binary.LittleEndian.PutUint64(buf[24:], s.s[3])
	wordops.Zeroize(buf[:])
	s.s = fiatScalarMontgomeryDomainFieldElement{}
}

// NonAdjacentForm computes a width-w non-adjacent form for this scalar, for
// use as the signed digit recoding of variable-time double-scalar
// multiplication. w must be between 2 and 8, or NonAdjacentForm panics.
//
// This implementation is adapted from the one in curve25519-dalek:
// https://github.com/dalek-cryptography/curve25519-dalek/blob/f630041af28e9a405255f98a8a93adca18e4315b/src/scalar.rs#L800-L871
func (s *Element) NonAdjacentForm(w uint) [256]int8 {
	b := s.Bytes()
	if b[31] > 127 {
		panic("scalarfield: scalar has high bit set illegally")
	}
	if w < 2 {
		panic("scalarfield: w must be at least 2 by the definition of NAF")
	} else if w > 8 {
		panic("scalarfield: NAF digits must fit in int8")
	}

	var naf [256]int8
	var digits [5]uint64

	for i := 0; i < 4; i++ {
		digits[i] = binary.LittleEndian.Uint64(b[i*8:])
	}

	width := uint64(1 << w)
	windowMask := uint64(width - 1)

	pos := uint(0)
	carry := uint64(0)
	for pos < 256 {
		indexU64 := pos / 64
		indexBit := pos % 64
		var bitBuf uint64
		if indexBit < 64-w {
			bitBuf = digits[indexU64] >> indexBit
		} else {
			bitBuf = (digits[indexU64] >> indexBit) | (digits[1+indexU64] << (64 - indexBit))
		}

		window := carry + (bitBuf & windowMask)

		if window&1 == 0 {
			pos += 1
			continue
		}

		if window < width/2 {
			carry = 0
			naf[pos] = int8(window)
		} else {
			carry = 1
			naf[pos] = int8(window) - int8(width)
		}

		pos += w
	}
	return naf
}

// SignedRadix16 computes the signed fixed-width comb digit recoding used
// by constant-time scalar multiplication: 64 signed nibbles in [-8, 8].
func (s *Element) SignedRadix16() [64]int8 {
	b := s.Bytes()
	if b[31] > 127 {
		panic("scalarfield: scalar has high bit set illegally")
	}

	var digits [64]int8

	for i := 0; i < 32; i++ {
		digits[2*i] = int8(b[i] & 15)
		digits[2*i+1] = int8((b[i] >> 4) & 15)
	}

	for i := 0; i < 63; i++ {
		carry := (digits[i] + 8) >> 4
		digits[i] -= carry << 4
		digits[i+1] += carry
	}

	return digits
}
