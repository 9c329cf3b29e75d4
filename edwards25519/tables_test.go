// Copyright (c) 2019 Henry de Valence. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import "testing"

func TestProjLookupTableSelectInto(t *testing.T) {
	B := NewGeneratorPoint()
	var table projLookupTable
	table.FromP3(B)

	for x := int8(-8); x <= 8; x++ {
		var dest projCached
		table.SelectInto(&dest, x)

		want := new(Point).Set(NewIdentityPoint())
		for i := int8(0); i < x; i++ {
			want.Add(want, B)
		}
		for i := int8(0); i > x; i-- {
			want.Subtract(want, B)
		}

		var got Point
		got.fromP1xP1(new(projP1xP1).Add(NewIdentityPoint(), &dest))
		checkOnCurve(t, want, &got)
		if got.Equal(want) != 1 {
			t.Errorf("projLookupTable.SelectInto(%d) = %d*B, want %d*B", x, x, x)
		}
	}
}

func TestAffineLookupTableSelectInto(t *testing.T) {
	B := NewGeneratorPoint()
	var table affineLookupTable
	table.FromP3(B)

	for x := int8(-8); x <= 8; x++ {
		var dest affineCached
		table.SelectInto(&dest, x)

		want := new(Point).Set(NewIdentityPoint())
		for i := int8(0); i < x; i++ {
			want.Add(want, B)
		}
		for i := int8(0); i > x; i-- {
			want.Subtract(want, B)
		}

		var got Point
		got.fromP1xP1(new(projP1xP1).AddAffine(NewIdentityPoint(), &dest))
		checkOnCurve(t, want, &got)
		if got.Equal(want) != 1 {
			t.Errorf("affineLookupTable.SelectInto(%d) = %d*B, want %d*B", x, x, x)
		}
	}
}

func TestNafLookupTable5SelectInto(t *testing.T) {
	B := NewGeneratorPoint()
	var table nafLookupTable5
	table.FromP3(B)

	for _, x := range []int8{-15, -9, -5, -3, -1, 0, 1, 3, 5, 9, 15} {
		var dest projCached
		table.SelectInto(&dest, x)

		want := new(Point).Set(NewIdentityPoint())
		for i := int8(0); i < x; i++ {
			want.Add(want, B)
		}
		for i := int8(0); i > x; i-- {
			want.Subtract(want, B)
		}

		var got Point
		got.fromP1xP1(new(projP1xP1).Add(NewIdentityPoint(), &dest))
		checkOnCurve(t, want, &got)
		if got.Equal(want) != 1 {
			t.Errorf("nafLookupTable5.SelectInto(%d) = %d*B, want %d*B", x, x, x)
		}
	}
}
