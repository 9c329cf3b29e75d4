// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ristretto255

import (
	"errors"

	"github.com/tarcieri/libristretto255/edwards25519"
	"github.com/tarcieri/libristretto255/internal/field"
)

// HashSize is the size, in bytes, of the nonuniform Elligator2 input and
// the half-input FromUniformBytes processes at a time.
const HashSize = 32

// InvertElligatorWhichBits is the number of low bits of the `which`
// selector InvertElligator consumes. The map from a 32-byte string to a
// group element is many-to-one: bits 0-2 pick one of the 8 points on the
// Jacobi quartic associated with Edwards25519 that lie over the target
// element, bit 3 picks which of the two field elements squaring to the
// same r (r0 and -r0) produced it, and bit 4 is folded into the
// recovered byte string's otherwise-unconstrained top bit.
const InvertElligatorWhichBits = 5

// sqrtField returns a field element s with s*s = x, assuming x is a
// quadratic residue (the caller is expected to have already checked
// that with Isr). sqrt(x) = x * invsqrt(x) whenever x is a nonzero
// square; Isr's own x == 0 case (returning invsqrt = 0) makes the
// identity hold at zero too.
func sqrtField(x *field.Element) *field.Element {
	invsqrt, _ := new(field.Element).Isr(x)
	return new(field.Element).Multiply(x, invsqrt)
}

// oneMinusDSquared, dMinusOneSquared, doubleInvSqrtMinusDMinusOne,
// doubleIInvSqrtMinusDMinusOne, invSqrt1PlusD, sqrtID and dp1OverDm1 are
// the curve constants the Jacobi-quartic parametrization of
// Edwards25519 and its associated one-way map are built on. Each is
// derived at init time from edwardsD and field.SqrtMinusOne rather than
// carried as a separate hardcoded limb literal, so none of them is any
// more trustworthy than those two already-verified primitives.
var oneMinusDSquared = new(field.Element).Subtract(
	new(field.Element).One(), new(field.Element).Square(edwardsD))

var dMinusOneSquared = new(field.Element).Square(
	new(field.Element).Subtract(edwardsD, new(field.Element).One()))

var doubleInvSqrtMinusDMinusOne = func() *field.Element {
	minusDMinusOne := new(field.Element).Negate(
		new(field.Element).Add(new(field.Element).One(), edwardsD))
	invSqrt, _ := new(field.Element).Isr(minusDMinusOne)
	return new(field.Element).Add(invSqrt, invSqrt)
}()

var doubleIInvSqrtMinusDMinusOne = new(field.Element).Multiply(
	field.SqrtMinusOne, doubleInvSqrtMinusDMinusOne)

var invSqrt1PlusD = func() *field.Element {
	r, _ := new(field.Element).Isr(new(field.Element).Add(edwardsD, new(field.Element).One()))
	return r
}()

var sqrtID = sqrtField(new(field.Element).Multiply(field.SqrtMinusOne, edwardsD))

var dp1OverDm1 = new(field.Element).Multiply(
	new(field.Element).Add(edwardsD, new(field.Element).One()),
	new(field.Element).Invert(new(field.Element).Subtract(edwardsD, new(field.Element).One())))

// xnor returns 1 if a == b and 0 otherwise, for a, b in {0, 1}.
func xnor(a, b int) int {
	return 1 - (a ^ b)
}

// ristrettoElligator2 maps r0 to a curve point via Mike Hamburg's
// variant of Elligator2 for the ristretto255 group: r0 determines a
// point (s, t) on the Jacobi quartic associated with Edwards25519,
// which jacobiQuarticToEdwards then carries onto the curve itself.
func ristrettoElligator2(r0 *field.Element) *edwards25519.Point {
	one := new(field.Element).One()

	r0i := new(field.Element).Multiply(r0, field.SqrtMinusOne)
	r := new(field.Element).Multiply(r0, r0i)

	rPlusD := new(field.Element).Add(edwardsD, r)
	denom := new(field.Element).Multiply(edwardsD, r)
	denom.Add(denom, one)
	denom.Multiply(denom, rPlusD)
	denom.Negate(denom)

	rPlusOne := new(field.Element).Add(r, one)
	num := new(field.Element).Multiply(oneMinusDSquared, rPlusOne)

	product := new(field.Element).Multiply(num, denom)
	sqrt, b := new(field.Element).Isr(product)
	// On a non-square, Isr leaves sqrt^2*product = i; the formulas below
	// need 1/sqrt(i*product) there, which is sqrt*i.
	sqrt.Select(sqrt, new(field.Element).Multiply(sqrt, field.SqrtMinusOne), b)

	twiddle := new(field.Element).Select(one, r0i, b)
	negOne := new(field.Element).Negate(one)
	sgn := new(field.Element).Select(one, negOne, b)
	sqrt.Multiply(sqrt, twiddle)

	s := new(field.Element).Multiply(sqrt, num)

	t := new(field.Element).Negate(sgn)
	t.Multiply(sqrt, t)
	t.Multiply(s, t)
	t.Multiply(dMinusOneSquared, t)
	rMinusOne := new(field.Element).Subtract(r, one)
	t.Multiply(rMinusOne, t)
	t.Subtract(t, one)

	sNeg := new(field.Element).Negate(s)
	flip := xnor(s.Lobit(), b)
	s.Select(sNeg, s, flip)

	return jacobiQuarticToEdwards(s, t)
}

// jacobiQuarticToEdwards converts a point (s, t) on the Jacobi quartic
// associated with Edwards25519 into a Point in extended coordinates.
// The quartic point gives x = (2s/sqrt(-d-1))/t and y = (1-s^2)/(1+s^2)
// in the ((X:Z), (Y:T)) P1xP1 convention, with X = 2s/sqrt(-d-1), Z = t,
// Y = 1-s^2 and T = 1+s^2; multiplying through puts it into the
// (X:Y:Z:T) extended convention this package otherwise works in.
func jacobiQuarticToEdwards(s, t *field.Element) *edwards25519.Point {
	one := new(field.Element).One()
	s2 := new(field.Element).Square(s)

	cx := new(field.Element).Multiply(s, doubleInvSqrtMinusDMinusOne)
	cy := new(field.Element).Subtract(one, s2)
	cz := t
	ct := new(field.Element).Add(one, s2)

	X := new(field.Element).Multiply(cx, ct)
	Y := new(field.Element).Multiply(cy, cz)
	Z := new(field.Element).Multiply(cz, ct)
	T := new(field.Element).Multiply(cx, cy)

	p, err := new(edwards25519.Point).SetExtendedCoordinates(X, Y, Z, T)
	if err != nil {
		// (s, t) that actually lies on the quartic always lands on the
		// curve; this is only reachable for inputs already rejected
		// upstream, and the rest of the package treats this map as total.
		return edwards25519.NewIdentityPoint()
	}
	return p
}

// SetElligator sets p to the nonuniform Elligator2 hash of
// in, interpreted as a field element modulo p with the top bit cleared,
// and returns p. The map is many-to-one: it is not indifferentiable on
// its own, only FromUniformBytes is.
func (p *Element) SetElligator(in []byte) (*Element, error) {
	if len(in) != HashSize {
		return nil, errors.New("ristretto255: invalid Elligator input length")
	}
	r0, err := new(field.Element).SetBytes(in)
	if err != nil {
		return nil, err
	}
	p.r = *ristrettoElligator2(r0)
	return p, nil
}

// FromUniformBytes sets p to the uniform Elligator2 hash of the 64-byte
// input, and returns p. It runs SetElligator on each 32-byte half and
// adds the two resulting points; unlike the nonuniform map alone, this
// sum is indifferentiable from a random group element.
func (p *Element) FromUniformBytes(in []byte) (*Element, error) {
	if len(in) != 2*HashSize {
		return nil, errors.New("ristretto255: invalid FromUniformBytes input length")
	}
	var p1, p2 Element
	if _, err := p1.SetElligator(in[:HashSize]); err != nil {
		return nil, err
	}
	if _, err := p2.SetElligator(in[HashSize:]); err != nil {
		return nil, err
	}
	p.Add(&p1, &p2)
	return p, nil
}

// jacobiCandidate is a point (S, T) on the Jacobi quartic associated
// with Edwards25519.
type jacobiCandidate struct {
	S, T *field.Element
}

// dual returns the Jacobi quartic point (-S, -T), the other point on
// the quartic lying over the same even Edwards point as c.
func (c jacobiCandidate) dual() jacobiCandidate {
	return jacobiCandidate{
		S: new(field.Element).Negate(c.S),
		T: new(field.Element).Negate(c.T),
	}
}

// toJacobiQuartic finds the four points on the Jacobi quartic
// associated with Edwards25519 lying over the four points Ristretto
// equivalent to the point (X:Y:Z) given in projective coordinates (the
// extended coordinate T is unused by this conversion). There is one
// exception: for (0,-1) there is no point on the quartic, so that case
// repeats a point equivalent to (0,1) instead.
func toJacobiQuartic(X, Y, Z *field.Element) [4]jacobiCandidate {
	one := new(field.Element).One()

	X2 := new(field.Element).Square(X)
	Y2 := new(field.Element).Square(Y)
	Y4 := new(field.Element).Square(Y2)
	Z2 := new(field.Element).Square(Z)
	ZMinusY := new(field.Element).Subtract(Z, Y)
	ZPlusY := new(field.Element).Add(Z, Y)
	Z2MinusY2 := new(field.Element).Subtract(Z2, Y2)

	gammaArg := new(field.Element).Multiply(Y4, X2)
	gammaArg.Multiply(gammaArg, Z2MinusY2)
	gamma, _ := new(field.Element).Isr(gammaArg)

	den := new(field.Element).Multiply(gamma, Y2)

	sOverX := new(field.Element).Multiply(den, ZMinusY)
	sPrimeOverXPrime := new(field.Element).Multiply(den, ZPlusY)

	s0 := new(field.Element).Multiply(sOverX, X)
	s1 := new(field.Element).Multiply(sPrimeOverXPrime, X)
	s1.Negate(s1)

	tCoeff := new(field.Element).Multiply(doubleInvSqrtMinusDMinusOne, Z)
	t0 := new(field.Element).Multiply(tCoeff, sOverX)
	t1 := new(field.Element).Multiply(tCoeff, sPrimeOverXPrime)

	den2 := new(field.Element).Negate(Z2MinusY2)
	den2.Multiply(den2, invSqrt1PlusD)
	den2.Multiply(den2, gamma)

	iZ := new(field.Element).Multiply(field.SqrtMinusOne, Z)
	iZMinusX := new(field.Element).Subtract(iZ, X)
	iZPlusX := new(field.Element).Add(iZ, X)

	sOverY := new(field.Element).Multiply(den2, iZMinusX)
	sPrimeOverYPrime := new(field.Element).Multiply(den2, iZPlusX)

	s2 := new(field.Element).Multiply(sOverY, Y)
	s3 := new(field.Element).Multiply(sPrimeOverYPrime, Y)
	s3.Negate(s3)

	t2Coeff := new(field.Element).Multiply(doubleInvSqrtMinusDMinusOne, iZ)
	t2 := new(field.Element).Multiply(t2Coeff, sOverY)
	t3 := new(field.Element).Multiply(t2Coeff, sPrimeOverYPrime)

	xOrYIsZero := X.IsZero() | Y.IsZero()
	t0.Select(one, t0, xOrYIsZero)
	t1.Select(one, t1, xOrYIsZero)
	t2.Select(doubleIInvSqrtMinusDMinusOne, t2, xOrYIsZero)
	t3.Select(doubleIInvSqrtMinusDMinusOne, t3, xOrYIsZero)
	s2.Select(one, s2, xOrYIsZero)
	s3.Select(new(field.Element).Negate(one), s3, xOrYIsZero)

	return [4]jacobiCandidate{
		{S: s0, T: t0},
		{S: s1, T: t1},
		{S: s2, T: t2},
		{S: s3, T: t3},
	}
}

// jacobiQuarticPreimage returns a field element mapping to (S, T) under
// ristrettoElligator2, and reports whether one exists. S == 0 forces
// T == 1 or T == -1, each with its own fixed preimage; otherwise the
// preimage exists only when S^4 - a^2 is the negation-by-i of a square,
// where a = (T+1)*(d+1)/(d-1).
func jacobiQuarticPreimage(S, T *field.Element) (*field.Element, int) {
	one := new(field.Element).One()

	sIsZero := S.IsZero()
	tEqualsOne := T.Equal(one)
	out := new(field.Element).Zero()
	out.Select(sqrtID, out, tEqualsOne)

	found := sIsZero
	done := sIsZero

	a := new(field.Element).Add(T, one)
	a.Multiply(a, dp1OverDm1)
	a2 := new(field.Element).Square(a)

	S2 := new(field.Element).Square(S)
	S4 := new(field.Element).Square(S2)
	arg := new(field.Element).Subtract(S4, a2)

	y, wasSquare := new(field.Element).Isr(arg)
	y.Select(y, new(field.Element).Multiply(y, field.SqrtMinusOne), wasSquare)
	found |= 1 - wasSquare
	done |= wasSquare

	negS2 := new(field.Element).Negate(S2)
	S2.Select(negS2, S2, S.Lobit())
	x := new(field.Element).Add(a, S2)
	x.Multiply(x, y)
	x.Absolute(x)
	out.Select(x, out, 1-done)

	return out, found
}

// InvertElligator sets out to a 32-byte preimage of p under SetElligator
// selected by which, and returns (out, nil) on success. Bits 0-2 of which
// pick one of the eight Jacobi quartic candidates, bit 3 negates the
// preimage, and bit 4 becomes out's otherwise-unconstrained high bit;
// bits above InvertElligatorWhichBits are ignored. If p has no
// preimage under the candidate which selects, it returns an error.
func (p *Element) InvertElligator(out []byte, which uint8) ([]byte, error) {
	X, Y, Z, _ := p.r.ExtendedCoordinates()
	candidates := toJacobiQuartic(X, Y, Z)

	candidate := candidates[(which&0x06)>>1]
	if which&0x01 != 0 {
		candidate = candidate.dual()
	}

	fe, found := jacobiQuarticPreimage(candidate.S, candidate.T)
	if found == 0 {
		return nil, errors.New("ristretto255: no Elligator preimage for this selector")
	}

	signBit := (which >> 3) & 1
	neg := new(field.Element).Negate(fe)
	fe.Select(neg, fe, int(signBit))

	encoded := fe.Bytes()
	if which&0x10 != 0 {
		encoded[31] |= 0x80
	} else {
		encoded[31] &^= 0x80
	}

	out = append(out[:0], encoded...)
	return out, nil
}

// InvertElligatorUniformWhichBits is the number of low bits of
// InvertElligatorUniform's which selector spent on the two independent
// InvertElligator calls it makes (InvertElligatorWhichBits each); the
// remaining high bits of which pick the pseudorandom point the target
// is split against.
const InvertElligatorUniformWhichBits = 2 * InvertElligatorWhichBits

// InvertElligatorUniform sets out to a 64-byte preimage of p under
// FromUniformBytes selected by which, and returns (out, nil) on success.
//
// FromUniformBytes maps its input to p1+p2, the sum of two independent
// SetElligator images, and there is no canonical way to split a given
// target point back into such a sum: this picks one pseudorandomly, as
// a function of which's high bits (p1 = (which>>10)*B, p2 = p - p1), then
// inverts each half independently under InvertElligator using which's
// low InvertElligatorUniformWhichBits bits, split evenly between the two
// halves. As with InvertElligator, different which values succeed or
// fail independently: this fails whenever either half has no Elligator
// preimage for the candidate its own bits select, which is most splits,
// so callers sampling a uniform preimage should expect to try several
// which values.
func (p *Element) InvertElligatorUniform(out []byte, which uint64) ([]byte, error) {
	which1 := uint8(which) & (1<<InvertElligatorWhichBits - 1)
	which2 := uint8(which>>InvertElligatorWhichBits) & (1<<InvertElligatorWhichBits - 1)
	splitter := which >> InvertElligatorUniformWhichBits

	p1 := new(Element).ScalarMult(NewScalar().SetUint64(splitter), NewElement().Base())
	p2 := new(Element).Subtract(p, p1)

	half1, err := p1.InvertElligator(nil, which1)
	if err != nil {
		return nil, err
	}
	half2, err := p2.InvertElligator(nil, which2)
	if err != nil {
		return nil, err
	}

	out = append(out[:0], half1...)
	out = append(out, half2...)
	return out, nil
}
