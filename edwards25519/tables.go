// Copyright (c) 2019 Henry de Valence. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import "crypto/subtle"

// projLookupTable holds the multiples 1Q, 2Q, ..., 8Q of a point Q,
// in projCached form, for the constant-time variable-base comb of
// ScalarMult. Every entry is touched by SelectInto: the table never
// branches on the digit it is asked for.
type projLookupTable struct {
	points [8]projCached
}

// affineLookupTable is the same set of multiples in affineCached form,
// used by Precomputed tables where the one-time cost of clearing Z is
// worth paying to save a multiplication at every lookup.
type affineLookupTable struct {
	points [8]affineCached
}

// nafLookupTable5 holds the odd multiples 1Q, 3Q, ..., 15Q in projCached
// form for variable-time double-scalar multiplication. It differs from
// projLookupTable only in its SelectInto, which is allowed to branch.
type nafLookupTable5 struct {
	points [8]projCached
}

// FromP3 fills v with the sequential multiples 1Q, 2Q, ..., 8Q, matching
// SelectInto's indexing of a signed-radix-16 digit's absolute value
// directly into table.points[xabs-1].
func (v *projLookupTable) FromP3(q *Point) {
	v.points[0].FromP3(q)
	cur := new(Point).Set(q)
	for i := 0; i < 7; i++ {
		cur.Add(cur, q)
		v.points[i+1].FromP3(cur)
	}
}

// FromP3 fills v with the sequential multiples 1Q, 2Q, ..., 8Q, the
// same indexing projLookupTable.FromP3 uses.
func (v *affineLookupTable) FromP3(q *Point) {
	cur := new(Point).Set(q)
	v.points[0].FromP3(cur)
	for i := 0; i < 7; i++ {
		cur.Add(cur, q)
		v.points[i+1].FromP3(cur)
	}
}

// FromP3 fills v with the odd multiples 1Q, 3Q, ..., 15Q, matching
// SelectInto's indexing of a non-adjacent-form digit's absolute value
// (always odd) into table.points[xabs/2].
func (v *nafLookupTable5) FromP3(q *Point) {
	v.points[0].FromP3(q)
	q2 := new(Point).Add(q, q)
	cur := new(Point).Set(q)
	for i := 0; i < 7; i++ {
		cur.Add(cur, q2)
		v.points[i+1].FromP3(cur)
	}
}

// SelectInto sets dest to x*Q, where -8 <= x <= 8, in constant time.
func (table *projLookupTable) SelectInto(dest *projCached, x int8) {
	xmask := x >> 7
	xabs := uint8((x + xmask) ^ xmask)

	dest.Zero()
	for j := 1; j <= 8; j++ {
		cond := subtle.ConstantTimeByteEq(xabs, uint8(j))
		dest.Select(&table.points[j-1], dest, cond)
	}
	cond := int(xmask & 1)
	dest.CondNeg(cond)
}

// SelectInto sets dest to x*Q, where -8 <= x <= 8, in constant time.
func (table *affineLookupTable) SelectInto(dest *affineCached, x int8) {
	xmask := x >> 7
	xabs := uint8((x + xmask) ^ xmask)

	dest.Zero()
	for j := 1; j <= 8; j++ {
		cond := subtle.ConstantTimeByteEq(xabs, uint8(j))
		dest.Select(&table.points[j-1], dest, cond)
	}
	cond := int(xmask & 1)
	dest.CondNeg(cond)
}

// SelectInto sets dest to x*Q, where x is an odd number between -15 and
// 15 produced by NonAdjacentForm, or to the identity if x == 0. Unlike
// projLookupTable.SelectInto, this is allowed to branch on x: it backs
// the library's one documented variable-time code path.
func (table *nafLookupTable5) SelectInto(dest *projCached, x int8) {
	if x > 0 {
		*dest = table.points[x/2]
	} else if x < 0 {
		dest.negateInto(&table.points[-x/2])
	} else {
		dest.Zero()
	}
}

func (v *projCached) negateInto(p *projCached) *projCached {
	v.YplusX.Set(&p.YminusX)
	v.YminusX.Set(&p.YplusX)
	v.Z.Set(&p.Z)
	v.T2d.Negate(&p.T2d)
	return v
}
