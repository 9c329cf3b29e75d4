// Copyright (c) 2019 Henry de Valence. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	"unsafe"

	"github.com/tarcieri/libristretto255/internal/scalarfield"
)

// ScalarMult sets v = x*q, and returns v, in constant time, via a
// windowed comb: x is recoded into 64 signed nibbles via
// scalarfield.Element.SignedRadix16, a table of the multiples
// 1q, 2q, ..., 8q is built once, and every digit is resolved by touching
// every table entry (projLookupTable.SelectInto never branches on x).
func (v *Point) ScalarMult(x *scalarfield.Element, q *Point) *Point {
	checkInitialized(q)

	var table projLookupTable
	table.FromP3(q)
	digits := x.SignedRadix16()

	v.Set(NewIdentityPoint())

	multiple := &projCached{}
	tmp1 := &projP1xP1{}
	tmp2 := &projP2{}
	table.SelectInto(multiple, digits[63])
	tmp1.Add(v, multiple)
	for i := 62; i >= 0; i-- {
		tmp2.FromP1xP1(tmp1)
		tmp1.Double(tmp2)
		tmp2.FromP1xP1(tmp1)
		tmp1.Double(tmp2)
		tmp2.FromP1xP1(tmp1)
		tmp1.Double(tmp2)
		tmp2.FromP1xP1(tmp1)
		tmp1.Double(tmp2)
		v.fromP1xP1(tmp1)
		table.SelectInto(multiple, digits[i])
		tmp1.Add(v, multiple)
	}
	return v.fromP1xP1(tmp1)
}

// Precomputed is a comb of the multiples 1..8 of 16^i times a fixed point,
// one affineLookupTable per nibble i of a 256-bit scalar (64 teeth), used
// by PrecomputedScalarMult to trade the table-build cost of ScalarMult for a
// one-time Precompute call.
type Precomputed struct {
	teeth [64]affineLookupTable
}

// SizeofPrecomputed and AlignofPrecomputed publish the storage layout of
// Precomputed, so callers may allocate it themselves instead of always
// going through Precompute.
var (
	SizeofPrecomputed  = unsafe.Sizeof(Precomputed{})
	AlignofPrecomputed = unsafe.Alignof(Precomputed{})
)

// Precompute builds a Precomputed comb for q, and returns it.
func Precompute(q *Point) *Precomputed {
	checkInitialized(q)
	pre := new(Precomputed)
	cur := new(Point).Set(q)
	for i := 0; i < 64; i++ {
		pre.teeth[i].FromP3(cur)
		if i != 63 {
			// Advance by 16 for the next nibble's tooth.
			cur.Double(cur)
			cur.Double(cur)
			cur.Double(cur)
			cur.Double(cur)
		}
	}
	return pre
}

// PrecomputedScalarMult sets v = x*q, where pre = Precompute(q), and
// returns v, in constant time with no per-tooth branch: every tooth's
// table is consulted via affineLookupTable.SelectInto regardless of the
// digit's value.
func (v *Point) PrecomputedScalarMult(pre *Precomputed, x *scalarfield.Element) *Point {
	digits := x.SignedRadix16()

	v.Set(NewIdentityPoint())
	multiple := &affineCached{}
	tmp1 := &projP1xP1{}
	for i := 0; i < 64; i++ {
		pre.teeth[i].SelectInto(multiple, digits[i])
		tmp1.AddAffine(v, multiple)
		v.fromP1xP1(tmp1)
	}
	return v
}

// Destroy zeroizes pre.
func (pre *Precomputed) Destroy() {
	for i := range pre.teeth {
		for j := range pre.teeth[i].points {
			pre.teeth[i].points[j] = affineCached{}
		}
	}
}

// DualScalarMult sets vA = a*A and vB = b*A for the same base point A,
// sharing one lookup table between the two constant-time comb walks,
// and returns (vA, vB).
func DualScalarMult(a, b *scalarfield.Element, A *Point) (vA, vB *Point) {
	checkInitialized(A)

	var table projLookupTable
	table.FromP3(A)
	da, db := a.SignedRadix16(), b.SignedRadix16()

	vA, vB = NewIdentityPoint(), NewIdentityPoint()
	walk := func(v *Point, digits [64]int8) {
		multiple := &projCached{}
		tmp1 := &projP1xP1{}
		tmp2 := &projP2{}
		table.SelectInto(multiple, digits[63])
		tmp1.Add(v, multiple)
		for i := 62; i >= 0; i-- {
			tmp2.FromP1xP1(tmp1)
			tmp1.Double(tmp2)
			tmp2.FromP1xP1(tmp1)
			tmp1.Double(tmp2)
			tmp2.FromP1xP1(tmp1)
			tmp1.Double(tmp2)
			tmp2.FromP1xP1(tmp1)
			tmp1.Double(tmp2)
			v.fromP1xP1(tmp1)
			table.SelectInto(multiple, digits[i])
			tmp1.Add(v, multiple)
		}
		v.fromP1xP1(tmp1)
	}
	walk(vA, da)
	walk(vB, db)
	return vA, vB
}

// MultiscalarMult sets v = sum(scalars[i] * points[i]), and returns v, in
// constant time: execution depends only on the slice lengths, which must
// match. It generalizes DualScalarMult to an arbitrary number of terms.
func (v *Point) MultiscalarMult(scalars []*scalarfield.Element, points []*Point) *Point {
	if len(scalars) != len(points) {
		panic("edwards25519: MultiscalarMult called with mismatched slice lengths")
	}
	checkInitialized(points...)

	tables := make([]projLookupTable, len(points))
	for i := range tables {
		tables[i].FromP3(points[i])
	}
	digits := make([][64]int8, len(scalars))
	for i := range digits {
		digits[i] = scalars[i].SignedRadix16()
	}

	v.Set(NewIdentityPoint())
	multiple := &projCached{}
	tmp1 := &projP1xP1{}
	tmp2 := &projP2{}
	for j := range tables {
		tables[j].SelectInto(multiple, digits[j][63])
		tmp1.Add(v, multiple)
		v.fromP1xP1(tmp1)
	}
	tmp2.FromP3(v)
	for i := 62; i >= 0; i-- {
		tmp1.Double(tmp2)
		tmp2.FromP1xP1(tmp1)
		tmp1.Double(tmp2)
		tmp2.FromP1xP1(tmp1)
		tmp1.Double(tmp2)
		tmp2.FromP1xP1(tmp1)
		tmp1.Double(tmp2)
		v.fromP1xP1(tmp1)
		for j := range tables {
			tables[j].SelectInto(multiple, digits[j][i])
			tmp1.Add(v, multiple)
			v.fromP1xP1(tmp1)
		}
		tmp2.FromP3(v)
	}
	return v
}

// VarTimeMultiscalarMult sets v = sum(scalars[i] * points[i]), and
// returns v. Execution time depends on the scalars: callers must never
// pass secret values.
func (v *Point) VarTimeMultiscalarMult(scalars []*scalarfield.Element, points []*Point) *Point {
	if len(scalars) != len(points) {
		panic("edwards25519: VarTimeMultiscalarMult called with mismatched slice lengths")
	}
	checkInitialized(points...)

	tables := make([]nafLookupTable5, len(points))
	for i := range tables {
		tables[i].FromP3(points[i])
	}
	nafs := make([][256]int8, len(scalars))
	for i := range nafs {
		nafs[i] = scalars[i].NonAdjacentForm(5)
	}

	multiple := &projCached{}
	tmp1 := &projP1xP1{}
	tmp2 := &projP2{}
	tmp2.Zero()

	for i := 255; i >= 0; i-- {
		tmp1.Double(tmp2)

		for j := range nafs {
			if nafs[j][i] != 0 {
				v.fromP1xP1(tmp1)
				tables[j].SelectInto(multiple, nafs[j][i])
				tmp1.Add(v, multiple)
			}
		}

		tmp2.FromP1xP1(tmp1)
	}

	return v.fromP2(tmp2)
}

// BaseDoubleScalarMulNonSecret sets v = s1*G + s2*P2, where G is the
// Ed25519 basepoint, and returns v. It is the library's sole exception
// to constant-time discipline, meant for signature verification:
// s1 and s2 MUST NOT be secret.
func BaseDoubleScalarMulNonSecret(v *Point, s1 *scalarfield.Element, s2 *scalarfield.Element, P2 *Point) *Point {
	checkInitialized(P2)

	var pointTable nafLookupTable5
	pointTable.FromP3(P2)

	naf1 := s1.NonAdjacentForm(5)
	naf2 := s2.NonAdjacentForm(5)

	multiple := &projCached{}
	tmp1 := &projP1xP1{}
	tmp2 := &projP2{}
	tmp2.Zero()

	for i := 255; i >= 0; i-- {
		tmp1.Double(tmp2)

		if naf1[i] != 0 {
			v.fromP1xP1(tmp1)
			baseNafTable.SelectInto(multiple, naf1[i])
			tmp1.Add(v, multiple)
		}

		if naf2[i] != 0 {
			v.fromP1xP1(tmp1)
			pointTable.SelectInto(multiple, naf2[i])
			tmp1.Add(v, multiple)
		}

		tmp2.FromP1xP1(tmp1)
	}

	return v.fromP2(tmp2)
}

// baseNafTable is the precomputed, package-level odd-multiples table of
// the Ed25519 basepoint that BaseDoubleScalarMulNonSecret reads digits of
// s1 from, built once rather than per call.
var baseNafTable = func() *nafLookupTable5 {
	t := new(nafLookupTable5)
	t.FromP3(NewGeneratorPoint())
	return t
}()
