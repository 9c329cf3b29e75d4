// Copyright (c) 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import "github.com/tarcieri/libristretto255/internal/field"

// order4 is the order-4 point (sqrt(-1), 0) of the 4-torsion subgroup
// ristretto255 quotients out. Adding it to a point walks to a different
// coset representative of the same ristretto255 group element.
var order4 = &Point{
	x: *field.SqrtMinusOne,
	y: field.Element{},
	z: *new(field.Element).One(),
	t: field.Element{},
}

// DebuggingTorque sets v = p + T, where T is a fixed point of order 4,
// and returns v. For tests only: the ristretto255 codec must return
// identical encodings for v and p.
func (v *Point) DebuggingTorque(p *Point) *Point {
	checkInitialized(p)
	return v.Add(p, order4)
}

// DebuggingPscale sets v = (f*X, f*Y, f*Z, f*T) for a nonzero field
// element f, and returns v. This rescales p's projective representative
// without changing the point it represents; for tests of the same
// ristretto255 codec invariant as DebuggingTorque.
func (v *Point) DebuggingPscale(p *Point, f *field.Element) *Point {
	checkInitialized(p)
	v.x.Multiply(&p.x, f)
	v.y.Multiply(&p.y, f)
	v.z.Multiply(&p.z, f)
	v.t.Multiply(&p.t, f)
	return v
}
