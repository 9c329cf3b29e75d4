// Copyright (c) 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	"testing"

	"github.com/tarcieri/libristretto255/internal/field"
)

func TestAddSubNegOnBasePoint(t *testing.T) {
	B := NewGeneratorPoint()
	Bneg := new(Point).Negate(B)

	doubled := new(Point).Add(B, B)
	checkOnCurve(t, doubled)
	if want := new(Point).Double(B); doubled.Equal(want) != 1 {
		t.Error("B + B != [2]B")
	}

	lhs := new(Point).Subtract(B, B)
	rhs := new(Point).Add(B, Bneg)
	checkOnCurve(t, lhs, rhs)
	if lhs.Equal(rhs) != 1 {
		t.Error("B - B != B + (-B)")
	}
	zero := NewIdentityPoint()
	if zero.Equal(lhs) != 1 {
		t.Error("B - B != identity")
	}
}

func TestIdentityIsIdentity(t *testing.T) {
	id := NewIdentityPoint()
	B := NewGeneratorPoint()
	sum := new(Point).Add(B, id)
	if sum.Equal(B) != 1 {
		t.Error("B + identity != B")
	}
}

func TestBytesRoundTrip(t *testing.T) {
	B := NewGeneratorPoint()
	var p Point
	p.Set(NewIdentityPoint())
	for i := 0; i < 8; i++ {
		enc := p.Bytes()
		var q Point
		if _, err := q.SetBytes(enc); err != nil {
			t.Fatalf("SetBytes(%d*B) failed: %v", i, err)
		}
		if q.Equal(&p) != 1 {
			t.Errorf("SetBytes(Bytes(%d*B)) != %d*B", i, i)
		}
		p.Add(&p, B)
	}
}

func TestExtendedCoordinatesRoundTrip(t *testing.T) {
	B := NewGeneratorPoint()
	X, Y, Z, T := B.ExtendedCoordinates()
	q, err := new(Point).SetExtendedCoordinates(X, Y, Z, T)
	if err != nil {
		t.Fatal(err)
	}
	if q.Equal(B) != 1 {
		t.Error("round trip through ExtendedCoordinates/SetExtendedCoordinates changed the point")
	}
}

func TestSetExtendedCoordinatesRejectsOffCurve(t *testing.T) {
	B := NewGeneratorPoint()
	X, Y, Z, T := B.ExtendedCoordinates()
	X.Add(X, new(field.Element).One())
	if _, err := new(Point).SetExtendedCoordinates(X, Y, Z, T); err == nil {
		t.Error("SetExtendedCoordinates accepted coordinates that don't satisfy the curve equation")
	}
}

func TestValid(t *testing.T) {
	B := NewGeneratorPoint()
	id := NewIdentityPoint()
	if !B.Valid() || !id.Valid() {
		t.Error("Valid() false on the basepoint or the identity")
	}
}

func checkOnCurve(t *testing.T, points ...*Point) {
	t.Helper()
	for i, p := range points {
		if !p.Valid() {
			t.Errorf("point %d is not valid", i)
		}
	}
}
