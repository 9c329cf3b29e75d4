// Copyright (c) 2019 Henry de Valence. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	"testing"

	"github.com/tarcieri/libristretto255/internal/scalarfield"
)

// randomScalars returns n deterministic, pairwise-independent scalars,
// avoiding a dependency on scalarfield's own (package-private)
// quick.Generate.
func randomScalars(n int) []*scalarfield.Element {
	return randomScalarsSeeded(n, 0)
}

func randomScalarsSeeded(n int, salt byte) []*scalarfield.Element {
	out := make([]*scalarfield.Element, n)
	var seed [64]byte
	for i := range out {
		seed[0] = byte(i)
		seed[1] = byte(i >> 8)
		seed[2] = 0x42 ^ salt
		out[i] = new(scalarfield.Element)
		if _, err := out[i].SetUniformBytes(seed[:]); err != nil {
			panic(err)
		}
	}
	return out
}

func TestScalarMultSmallScalars(t *testing.T) {
	B := NewGeneratorPoint()
	zero := new(scalarfield.Element).Zero()
	one := new(scalarfield.Element).One()

	var p Point
	p.ScalarMult(zero, B)
	if NewIdentityPoint().Equal(&p) != 1 {
		t.Error("0*B != identity")
	}
	checkOnCurve(t, &p)

	p.ScalarMult(one, B)
	if B.Equal(&p) != 1 {
		t.Error("1*B != B")
	}
	checkOnCurve(t, &p)
}

func TestScalarMulDistributesOverAdd(t *testing.T) {
	B := NewGeneratorPoint()
	xs := randomScalarsSeeded(16, 1)
	ys := randomScalarsSeeded(16, 2)
	for i := range xs {
		x, y := xs[i], ys[i]
		var z scalarfield.Element
		z.Add(x, y)

		var p, q, r, check Point
		p.ScalarMult(x, B)
		q.ScalarMult(y, B)
		r.ScalarMult(&z, B)
		check.Add(&p, &q)
		checkOnCurve(t, &p, &q, &r, &check)
		if check.Equal(&r) != 1 {
			t.Fatal("ScalarMult does not distribute over scalar addition")
		}
	}
}

func TestPrecomputedScalarMultMatchesScalarMult(t *testing.T) {
	B := NewGeneratorPoint()
	pre := Precompute(B)
	defer pre.Destroy()

	for _, x := range randomScalars(8) {
		var p, q Point
		p.ScalarMult(x, B)
		q.PrecomputedScalarMult(pre, x)
		checkOnCurve(t, &p, &q)
		if p.Equal(&q) != 1 {
			t.Fatal("PrecomputedScalarMult does not match ScalarMult")
		}
	}
}

func TestDualScalarMultMatchesScalarMult(t *testing.T) {
	B := NewGeneratorPoint()
	scalars := randomScalars(2)
	a, b := scalars[0], scalars[1]

	vA, vB := DualScalarMult(a, b, B)
	var wantA, wantB Point
	wantA.ScalarMult(a, B)
	wantB.ScalarMult(b, B)
	checkOnCurve(t, vA, vB, &wantA, &wantB)
	if vA.Equal(&wantA) != 1 || vB.Equal(&wantB) != 1 {
		t.Error("DualScalarMult does not match two calls to ScalarMult")
	}
}

func TestMultiscalarMultMatchesScalarMult(t *testing.T) {
	B := NewGeneratorPoint()
	scalars := randomScalars(3)
	points := []*Point{B, new(Point).Double(B), new(Point).Add(B, new(Point).Double(B))}

	var got Point
	got.MultiscalarMult(scalars, points)

	var want, term Point
	want.Set(NewIdentityPoint())
	for i := range scalars {
		term.ScalarMult(scalars[i], points[i])
		want.Add(&want, &term)
	}
	checkOnCurve(t, &got, &want)
	if got.Equal(&want) != 1 {
		t.Error("MultiscalarMult does not match sum of individual ScalarMults")
	}
}

func TestVarTimeMultiscalarMultMatchesMultiscalarMult(t *testing.T) {
	B := NewGeneratorPoint()
	scalars := randomScalars(3)
	points := []*Point{B, new(Point).Double(B), new(Point).Add(B, new(Point).Double(B))}

	var vt, ct Point
	vt.VarTimeMultiscalarMult(scalars, points)
	ct.MultiscalarMult(scalars, points)
	checkOnCurve(t, &vt, &ct)
	if vt.Equal(&ct) != 1 {
		t.Error("VarTimeMultiscalarMult does not match MultiscalarMult")
	}
}

func TestBaseDoubleScalarMulNonSecretMatchesMultiscalarMult(t *testing.T) {
	B := NewGeneratorPoint()
	P2 := new(Point).Double(B)
	scalars := randomScalars(2)
	s1, s2 := scalars[0], scalars[1]

	var got Point
	BaseDoubleScalarMulNonSecret(&got, s1, s2, P2)

	var want Point
	want.MultiscalarMult([]*scalarfield.Element{s1, s2}, []*Point{B, P2})

	checkOnCurve(t, &got, &want)
	if got.Equal(&want) != 1 {
		t.Error("BaseDoubleScalarMulNonSecret does not match MultiscalarMult")
	}
}

func TestMultiscalarMultMismatchedLengthsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MultiscalarMult with mismatched slice lengths did not panic")
		}
	}()
	B := NewGeneratorPoint()
	var p Point
	p.MultiscalarMult(randomScalars(2), []*Point{B})
}
