// Copyright (c) 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	"errors"

	"github.com/tarcieri/libristretto255/internal/field"
)

// ExtendedCoordinates returns v in extended coordinates (X:Y:Z:T) where
// x = X/Z, y = Y/Z, and xy = T/Z, per https://eprint.iacr.org/2008/522.
// The ristretto255 codec (package ristretto255) is this accessor's only
// caller: its encode and decode algorithms are expressed directly in
// terms of X, Y, Z, T.
func (v *Point) ExtendedCoordinates() (X, Y, Z, T *field.Element) {
	checkInitialized(v)
	var e [4]field.Element
	X, Y, Z, T = e[0].Set(&v.x), e[1].Set(&v.y), e[2].Set(&v.z), e[3].Set(&v.t)
	return
}

// SetExtendedCoordinates sets v = (X:Y:Z:T) in extended coordinates, and
// returns v. If the coordinates don't satisfy the curve equation and the
// coherence invariant X*Y = Z*T, SetExtendedCoordinates returns nil and
// an error, and the receiver is unchanged.
func (v *Point) SetExtendedCoordinates(X, Y, Z, T *field.Element) (*Point, error) {
	if !isOnCurve(X, Y, Z, T) {
		return nil, errors.New("edwards25519: invalid point coordinates")
	}
	v.x.Set(X)
	v.y.Set(Y)
	v.z.Set(Z)
	v.t.Set(T)
	return v, nil
}

func isOnCurve(X, Y, Z, T *field.Element) bool {
	var lhs, rhs field.Element
	XX := new(field.Element).Square(X)
	YY := new(field.Element).Square(Y)
	ZZ := new(field.Element).Square(Z)
	TT := new(field.Element).Square(T)
	// -x² + y² = 1 + dx²y²  =>  -X² + Y² = Z² + dT²
	lhs.Subtract(YY, XX)
	rhs.Multiply(d, TT)
	rhs.Add(&rhs, ZZ)
	if lhs.Equal(&rhs) != 1 {
		return false
	}
	// xy = T/Z  =>  XY = TZ
	lhs.Multiply(X, Y)
	rhs.Multiply(T, Z)
	return lhs.Equal(&rhs) == 1
}
