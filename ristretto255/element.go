// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ristretto255

import (
	"errors"

	"github.com/tarcieri/libristretto255/edwards25519"
	"github.com/tarcieri/libristretto255/internal/field"
	"github.com/tarcieri/libristretto255/internal/scalarfield"
)

// ElementSize is the size, in bytes, of an encoded Element.
const ElementSize = 32

// edwardsD is the edwards25519 curve constant d.
var edwardsD = edwards25519.D

// invSqrtAMinusD is invsqrt(a-d), a = -1, the constant Encode uses for
// the 4-torsion rotation's replacement denominator. It is derived at
// init time from edwardsD and field.Element.Isr rather than hardcoded,
// so it is only ever as correct as those two already-ported primitives.
var invSqrtAMinusD = func() *field.Element {
	one := new(field.Element).One()
	a := new(field.Element).Negate(one)
	aMinusD := new(field.Element).Subtract(a, edwardsD)
	r, _ := new(field.Element).Isr(aMinusD)
	return r
}()

// An Element is an element of the ristretto255 group: a coset of the
// 4-torsion subgroup of Edwards25519, quotiented by sign, represented
// internally by one representative point in extended coordinates.
//
// This type works similarly to math/big.Int, and all arguments and
// receivers are allowed to alias. The zero value is NOT a valid Element;
// use NewElement, Zero or Base, or Decode, to obtain one.
type Element struct {
	r edwards25519.Point
}

// NewElement returns a new Element set to the identity.
func NewElement() *Element {
	return (&Element{}).Zero()
}

// Zero sets p to the identity element, and returns p.
func (p *Element) Zero() *Element {
	p.r.Set(edwards25519.NewIdentityPoint())
	return p
}

// Base sets p to the canonical ristretto255 generator, and returns p.
// The Curve25519 basepoint already lies in the prime-order subgroup, so
// its ristretto255 coset is exactly the image of edwards25519's own
// generator under Encode/Decode; basePoint below is computed from that
// generator once at init rather than carried as a second, independently
// sourced 32-byte constant.
func (p *Element) Base() *Element {
	p.r.Set(&basePoint.r)
	return p
}

var basePoint = func() *Element {
	e := &Element{r: *edwards25519.NewGeneratorPoint()}
	return e
}()

// Copy sets p = q, and returns p.
func (p *Element) Copy(q *Element) *Element {
	p.r.Set(&q.r)
	return p
}

// Add sets p = a + b, and returns p.
func (p *Element) Add(a, b *Element) *Element {
	p.r.Add(&a.r, &b.r)
	return p
}

// Subtract sets p = a - b, and returns p.
func (p *Element) Subtract(a, b *Element) *Element {
	p.r.Subtract(&a.r, &b.r)
	return p
}

// Double sets p = 2*a, and returns p.
func (p *Element) Double(a *Element) *Element {
	p.r.Double(&a.r)
	return p
}

// Negate sets p = -a, and returns p.
func (p *Element) Negate(a *Element) *Element {
	p.r.Negate(&a.r)
	return p
}

// Equal returns 1 if p is ristretto-equivalent to q, and 0 otherwise. It
// tests X_p*Y_q == X_q*Y_p OR Y_p*Y_q == X_p*X_q, the second
// disjunct catching the 4-torsion-rotated representatives.
func (p *Element) Equal(q *Element) int {
	X1, Y1, _, _ := p.r.ExtendedCoordinates()
	X2, Y2, _, _ := q.r.ExtendedCoordinates()

	var a, b, c, dd field.Element
	a.Multiply(X1, Y2)
	b.Multiply(X2, Y1)
	c.Multiply(X1, X2)
	dd.Multiply(Y1, Y2)
	c.Subtract(&c, &dd)

	return a.Equal(&b) | c.IsZero()
}

// CondSelect sets p to a if cond == 1, and to b if cond == 0, in
// constant time.
func (p *Element) CondSelect(a, b *Element, cond int) *Element {
	Xa, Ya, Za, Ta := a.r.ExtendedCoordinates()
	Xb, Yb, Zb, Tb := b.r.ExtendedCoordinates()
	var X, Y, Z, T field.Element
	X.Select(Xa, Xb, cond)
	Y.Select(Ya, Yb, cond)
	Z.Select(Za, Zb, cond)
	T.Select(Ta, Tb, cond)
	r, err := new(edwards25519.Point).SetExtendedCoordinates(&X, &Y, &Z, &T)
	if err != nil {
		panic("ristretto255: internal error: CondSelect produced invalid coordinates")
	}
	p.r = *r
	return p
}

// Encode appends the canonical 32-byte encoding of p to b, and returns
// the result. The composition of sign-normalizations below ensures
// every one of p's eight coset representatives encodes to the same
// bytes.
func (p *Element) Encode(b []byte) []byte {
	X, Y, Z, T := p.r.ExtendedCoordinates()

	var zPlusY, zMinusY, u1, u2 field.Element
	zPlusY.Add(Z, Y)
	zMinusY.Subtract(Z, Y)
	u1.Multiply(&zPlusY, &zMinusY)
	u2.Multiply(X, Y)

	var u2sq, invSqArg field.Element
	u2sq.Square(&u2)
	invSqArg.Multiply(&u1, &u2sq)
	invsqrt, _ := new(field.Element).Isr(&invSqArg)

	var den1, den2 field.Element
	den1.Multiply(invsqrt, &u1)
	den2.Multiply(invsqrt, &u2)

	var zInv field.Element
	zInv.Multiply(&den1, &den2)
	zInv.Multiply(&zInv, T)

	var ix, iy field.Element
	ix.Multiply(X, field.SqrtMinusOne)
	iy.Multiply(Y, field.SqrtMinusOne)
	var enchantedDenominator field.Element
	enchantedDenominator.Multiply(&den1, invSqrtAMinusD)

	var tZinv field.Element
	tZinv.Multiply(T, &zInv)
	rotate := tZinv.Lobit()

	var outX, outY, denInv field.Element
	outX.Select(&iy, X, rotate)
	outY.Select(&ix, Y, rotate)
	denInv.Select(&enchantedDenominator, &den2, rotate)

	var xZinv field.Element
	xZinv.Multiply(&outX, &zInv)
	outY.CondNegate(&outY, xZinv.Lobit())

	var s field.Element
	s.Subtract(Z, &outY)
	s.Multiply(&s, &denInv)
	s.Absolute(&s)

	return append(b, s.Bytes()...)
}

// Decode sets p to the group element encoded by in, allowing the
// identity, and returns p. If in is not a valid canonical encoding,
// Decode returns nil and an error, and the receiver is unchanged.
func (p *Element) Decode(in []byte) (*Element, error) {
	return p.decode(in, true)
}

// DecodeNonIdentity is Decode, but additionally rejects the identity
// element.
func (p *Element) DecodeNonIdentity(in []byte) (*Element, error) {
	return p.decode(in, false)
}

func (p *Element) decode(in []byte, allowIdentity bool) (*Element, error) {
	if len(in) != ElementSize {
		return nil, errors.New("ristretto255: invalid element encoding length")
	}

	s, err := new(field.Element).SetCanonicalBytes(in, 0)
	if err != nil {
		return nil, errors.New("ristretto255: non-canonical element encoding")
	}
	if s.Lobit() == 1 {
		return nil, errors.New("ristretto255: negative element encoding")
	}

	one := new(field.Element).One()
	ss := new(field.Element).Square(s)
	u1 := new(field.Element).Subtract(one, ss)
	u2 := new(field.Element).Add(one, ss)

	u1sq := new(field.Element).Square(u1)
	u2sq := new(field.Element).Square(u2)

	v := new(field.Element).Multiply(edwardsD, u1sq)
	v.Negate(v)
	v.Subtract(v, u2sq)

	vu2sq := new(field.Element).Multiply(v, u2sq)
	I, wasQR := new(field.Element).Isr(vu2sq)

	Dx := new(field.Element).Multiply(I, u2)
	Dy := new(field.Element).Multiply(I, Dx)
	Dy.Multiply(Dy, v)

	X := new(field.Element).Multiply(s, Dx)
	X.Add(X, X)
	X.Absolute(X)

	Y := new(field.Element).Multiply(u1, Dy)
	T := new(field.Element).Multiply(X, Y)
	Z := new(field.Element).One()

	ok := wasQR & (1 - T.Lobit()) & (1 - Y.IsZero())
	if !allowIdentity {
		ok &= 1 - X.IsZero()
	}
	if ok == 0 {
		return nil, errors.New("ristretto255: invalid element encoding")
	}

	r, err := new(edwards25519.Point).SetExtendedCoordinates(X, Y, Z, T)
	if err != nil {
		return nil, err
	}
	p.r = *r
	return p, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p *Element) MarshalBinary() ([]byte, error) {
	return p.Encode(make([]byte, 0, ElementSize)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *Element) UnmarshalBinary(data []byte) error {
	_, err := p.Decode(data)
	return err
}

// ScalarMult sets p = s*q, and returns p, in constant time.
func (p *Element) ScalarMult(s *Scalar, q *Element) *Element {
	p.r.ScalarMult(&s.s, &q.r)
	return p
}

// DoubleScalarMult sets p = s*P + t*Q, and returns p, in constant time.
// Unlike DualScalarMult, the two terms here have independent base points.
func (p *Element) DoubleScalarMult(s *Scalar, P *Element, t *Scalar, Q *Element) *Element {
	p.r.MultiscalarMult(
		[]*scalarfield.Element{&s.s, &t.s},
		[]*edwards25519.Point{&P.r, &Q.r},
	)
	return p
}

// DualScalarMult sets pA = s1*P and pB = s2*P for the same base point P,
// sharing one lookup table between the two comb walks, and returns
// (pA, pB).
func DualScalarMult(s1, s2 *Scalar, P *Element) (pA, pB *Element) {
	rA, rB := edwards25519.DualScalarMult(&s1.s, &s2.s, &P.r)
	return &Element{r: *rA}, &Element{r: *rB}
}

// BaseDoubleScalarMulNonSecret sets p = s1*B + s2*Q, where B is the
// ristretto255 generator, and returns p, in variable time. This is the
// library's one non-constant-time operation: s1 and s2 MUST NOT be secret.
func (p *Element) BaseDoubleScalarMulNonSecret(s1 *Scalar, s2 *Scalar, Q *Element) *Element {
	edwards25519.BaseDoubleScalarMulNonSecret(&p.r, &s1.s, &s2.s, &Q.r)
	return p
}

// MultiscalarMult sets p = sum(scalars[i] * points[i]), and returns p,
// in constant time.
func (p *Element) MultiscalarMult(scalars []*Scalar, points []*Element) *Element {
	ss := make([]*scalarfield.Element, len(scalars))
	for i, s := range scalars {
		ss[i] = &s.s
	}
	rs := make([]*edwards25519.Point, len(points))
	for i, q := range points {
		rs[i] = &q.r
	}
	p.r.MultiscalarMult(ss, rs)
	return p
}

// VarTimeMultiscalarMult sets p = sum(scalars[i] * points[i]), and
// returns p. Execution time depends on the scalars: never pass secrets.
func (p *Element) VarTimeMultiscalarMult(scalars []*Scalar, points []*Element) *Element {
	ss := make([]*scalarfield.Element, len(scalars))
	for i, s := range scalars {
		ss[i] = &s.s
	}
	rs := make([]*edwards25519.Point, len(points))
	for i, q := range points {
		rs[i] = &q.r
	}
	p.r.VarTimeMultiscalarMult(ss, rs)
	return p
}

// DirectScalarMult composes Decode, ScalarMult and Encode: it appends
// s*Decode(in) to out, and returns (out, nil) on success. If shortCircuit
// is true, it returns as soon as the decode fails, leaking the input's
// validity in the process; if false, it always runs the full chain and
// only reports failure at the end. Callers choose based on their own
// threat model: whether shortCircuit may ever be true for
// attacker-supplied bytes depends on what else the caller already knows
// about the input's provenance.
func DirectScalarMult(out, in []byte, s *Scalar, allowIdentity, shortCircuit bool) ([]byte, error) {
	e, err := new(Element).decode(in, allowIdentity)
	if err != nil {
		if shortCircuit {
			return out, err
		}
		e = NewElement()
	}
	result := new(Element).ScalarMult(s, e)
	encoded := result.Encode(out)
	return encoded, err
}

// Valid reports whether p's internal representative satisfies the
// Edwards25519 curve equation. Every Element constructed through this
// package's own API always does; Valid exists for tests.
func (p *Element) Valid() bool {
	return p.r.Valid()
}

// debuggingTorque sets p = q + T, where T is a fixed point of order 4,
// and returns p. For tests only: it must not change p's Encode output.
func (p *Element) debuggingTorque(q *Element) *Element {
	p.r.DebuggingTorque(&q.r)
	return p
}

// debuggingPscale sets p to q rescaled by a nonzero field element f, and
// returns p. Used only by this package's own tests, alongside
// debuggingTorque, to exercise the ristretto255 quotient invariant.
func (p *Element) debuggingPscale(q *Element, f *field.Element) *Element {
	p.r.DebuggingPscale(&q.r, f)
	return p
}
