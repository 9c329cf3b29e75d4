// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ristretto255 implements the ristretto255 prime-order group, the
// quotient of the Edwards25519 curve's group by its 4-torsion subgroup
// and the {±1} sign ambiguity, built on github.com/tarcieri/libristretto255's
// internal field, scalar, and edwards25519 packages.
package ristretto255

import (
	"errors"

	"github.com/tarcieri/libristretto255/internal/scalarfield"
)

// ScalarSize is the size, in bytes, of an encoded Scalar.
const ScalarSize = 32

// A Scalar is an element of GF(ℓ), the scalar field of ristretto255,
// where ℓ = 2^252 + 27742317777372353535851937790883648493.
//
// This type works similarly to math/big.Int, and all arguments and
// receivers are allowed to alias. The zero value is a valid zero scalar.
type Scalar struct {
	s scalarfield.Element
}

// NewScalar returns a new Scalar set to 0.
func NewScalar() *Scalar {
	return (&Scalar{}).Zero()
}

// Zero sets s = 0, and returns s.
func (s *Scalar) Zero() *Scalar {
	s.s.Zero()
	return s
}

// One sets s = 1, and returns s.
func (s *Scalar) One() *Scalar {
	s.s.One()
	return s
}

// Copy sets s = t, and returns s.
func (s *Scalar) Copy(t *Scalar) *Scalar {
	s.s.Set(&t.s)
	return s
}

// Add sets s = x + y mod ℓ, and returns s.
func (s *Scalar) Add(x, y *Scalar) *Scalar {
	s.s.Add(&x.s, &y.s)
	return s
}

// Subtract sets s = x - y mod ℓ, and returns s.
func (s *Scalar) Subtract(x, y *Scalar) *Scalar {
	s.s.Subtract(&x.s, &y.s)
	return s
}

// Negate sets s = -x mod ℓ, and returns s.
func (s *Scalar) Negate(x *Scalar) *Scalar {
	s.s.Negate(&x.s)
	return s
}

// Multiply sets s = x * y mod ℓ, and returns s.
func (s *Scalar) Multiply(x, y *Scalar) *Scalar {
	s.s.Multiply(&x.s, &y.s)
	return s
}

// Halve sets s = x/2 mod ℓ, and returns s.
func (s *Scalar) Halve(x *Scalar) *Scalar {
	s.s.Halve(&x.s)
	return s
}

// Invert sets s to the inverse of a nonzero t, and returns s. If t is
// zero, the receiver is set to zero; callers that need to distinguish
// that case should check t.Equal(NewScalar()) first.
func (s *Scalar) Invert(t *Scalar) *Scalar {
	s.s.Invert(&t.s)
	return s
}

// Equal returns 1 if s and t are equal, and 0 otherwise.
func (s *Scalar) Equal(t *Scalar) int {
	return s.s.Equal(&t.s)
}

// SetUint64 sets s = n, and returns s.
func (s *Scalar) SetUint64(n uint64) *Scalar {
	var wide [64]byte
	for i := 0; i < 8; i++ {
		wide[i] = byte(n)
		n >>= 8
	}
	if _, err := s.s.SetUniformBytes(wide[:]); err != nil {
		panic("ristretto255: internal error: SetUint64 failed")
	}
	return s
}

// CondSelect sets s to a if cond == 1, and to b if cond == 0, in
// constant time.
func (s *Scalar) CondSelect(a, b *Scalar, cond int) *Scalar {
	s.s.Select(&a.s, &b.s, cond)
	return s
}

// Destroy zeroizes s.
func (s *Scalar) Destroy() {
	s.s.Destroy()
}

// Decode sets s = x, where x is a 32-byte little-endian canonical
// encoding of s (i.e. strictly less than ℓ), and returns s. If x is not
// a canonical encoding, Decode returns nil and an error, and the
// receiver is unchanged.
func (s *Scalar) Decode(x []byte) (*Scalar, error) {
	if len(x) != ScalarSize {
		return nil, errors.New("ristretto255: invalid scalar encoding length")
	}
	if _, err := s.s.SetCanonicalBytes(x); err != nil {
		return nil, errors.New("ristretto255: non-canonical scalar encoding")
	}
	return s, nil
}

// DecodeLong sets s = x mod ℓ, where x is an arbitrary-length
// little-endian integer, and returns s. It processes x in 32-byte
// chunks from most to least significant, accumulating
// r = r*2^256 + chunk mod ℓ, supplying wide reduction for scalars
// derived from hash output.
func (s *Scalar) DecodeLong(x []byte) *Scalar {
	s.Zero()
	if len(x) == 0 {
		return s
	}

	chunks := (len(x) + 31) / 32

	for i := chunks - 1; i >= 0; i-- {
		lo := i * 32
		hi := lo + 32
		var chunk [32]byte
		if hi > len(x) {
			copy(chunk[:], x[lo:])
		} else {
			copy(chunk[:], x[lo:hi])
		}
		var wide [64]byte
		copy(wide[:32], chunk[:])
		c := new(Scalar)
		if _, err := c.s.SetUniformBytes(wide[:]); err != nil {
			panic("ristretto255: internal error: DecodeLong chunk reduction failed")
		}
		s.Multiply(s, scalarTwo256)
		s.Add(s, c)
	}
	return s
}

// scalarTwo256 is 2^256 mod ℓ, the Horner-step multiplier DecodeLong
// uses to fold in each successive 32-byte chunk.
var scalarTwo256 = func() *Scalar {
	var wide [64]byte
	wide[32] = 1
	s := new(Scalar)
	if _, err := s.s.SetUniformBytes(wide[:]); err != nil {
		panic("ristretto255: internal error: scalarTwo256 init failed")
	}
	return s
}()

// Encode appends the canonical 32-byte little-endian encoding of s to b,
// and returns the result.
func (s *Scalar) Encode(b []byte) []byte {
	return append(b, s.s.Bytes()...)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Scalar) MarshalBinary() ([]byte, error) {
	return s.Encode(make([]byte, 0, ScalarSize)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Scalar) UnmarshalBinary(data []byte) error {
	_, err := s.Decode(data)
	return err
}
