// Copyright (c) 2019 Henry de Valence. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalarfield

import (
	"bytes"
	"math/big"
	mathrand "math/rand"
	"reflect"
	"testing"
	"testing/quick"
)

var quickCheckConfig1024 = &quick.Config{MaxCountScale: 1 << 10}

var bigL, _ = new(big.Int).SetString("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)

func (Element) Generate(rand *mathrand.Rand, size int) reflect.Value {
	var e Element
	var buf [64]byte
	rand.Read(buf[:])
	e.SetUniformBytes(buf[:])
	return reflect.ValueOf(e)
}

func swapEndianness(buf []byte) []byte {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

func (s *Element) toBig() *big.Int {
	buf := s.Bytes()
	return new(big.Int).SetBytes(swapEndianness(buf))
}

func (s *Element) fromBig(n *big.Int) *Element {
	r := new(big.Int).Mod(n, bigL)
	buf := make([]byte, 64)
	b := swapEndianness(r.FillBytes(make([]byte, 32)))
	copy(buf, b)
	if _, err := s.SetUniformBytes(buf); err != nil {
		panic("scalarfield: internal error: bad fromBig input")
	}
	return s
}

func TestAddSubNeg(t *testing.T) {
	f := func(x, y Element) bool {
		x1, y1 := x.toBig(), y.toBig()

		want := new(big.Int).Add(x1, y1)
		want.Mod(want, bigL)
		var got Element
		got.Add(&x, &y)
		if got.toBig().Cmp(want) != 0 {
			return false
		}

		want = new(big.Int).Sub(x1, y1)
		want.Mod(want, bigL)
		got.Subtract(&x, &y)
		if got.toBig().Cmp(want) != 0 {
			return false
		}

		want = new(big.Int).Neg(x1)
		want.Mod(want, bigL)
		got.Negate(&x)
		return got.toBig().Cmp(want) == 0
	}
	if err := quick.Check(f, quickCheckConfig1024); err != nil {
		t.Error(err)
	}
}

func TestMul(t *testing.T) {
	f := func(x, y Element) bool {
		want := new(big.Int).Mul(x.toBig(), y.toBig())
		want.Mod(want, bigL)
		var got Element
		got.Multiply(&x, &y)
		return got.toBig().Cmp(want) == 0
	}
	if err := quick.Check(f, quickCheckConfig1024); err != nil {
		t.Error(err)
	}
}

func TestInvert(t *testing.T) {
	f := func(x Element) bool {
		if x.IsZero() == 1 {
			return true
		}
		var xInv, one Element
		xInv.Invert(&x)
		one.Multiply(&x, &xInv)
		return one.Equal(scOne) == 1
	}
	if err := quick.Check(f, quickCheckConfig1024); err != nil {
		t.Error(err)
	}
}

func TestInvertZero(t *testing.T) {
	var got Element
	got.Invert(scZero)
	if got.Equal(scZero) != 1 {
		t.Errorf("Invert(0) = %v, want 0", got.Bytes())
	}
}

func TestHalve(t *testing.T) {
	f := func(x Element) bool {
		var half, doubled Element
		half.Halve(&x)
		doubled.Add(&half, &half)
		return doubled.Equal(&x) == 1
	}
	if err := quick.Check(f, quickCheckConfig1024); err != nil {
		t.Error(err)
	}
}

func TestSetCanonicalBytesRoundTrip(t *testing.T) {
	f := func(x Element) bool {
		buf := x.Bytes()
		var y Element
		if _, err := y.SetCanonicalBytes(buf); err != nil {
			return false
		}
		return x.Equal(&y) == 1
	}
	if err := quick.Check(f, quickCheckConfig1024); err != nil {
		t.Error(err)
	}
}

func TestSetCanonicalBytesRejectsNonReduced(t *testing.T) {
	var overflow [32]byte
	copy(overflow[:], scalarMinusOneBytes[:])
	overflow[0]++ // L, which is not a valid representative.
	var e Element
	if _, err := e.SetCanonicalBytes(overflow[:]); err == nil {
		t.Error("SetCanonicalBytes(L) succeeded, want error")
	}

	var tooLong [33]byte
	if _, err := e.SetCanonicalBytes(tooLong[:]); err == nil {
		t.Error("SetCanonicalBytes accepted a 33-byte input, want error")
	}
}

func TestSetUniformBytesReducesModL(t *testing.T) {
	var max [64]byte
	for i := range max {
		max[i] = 0xff
	}
	var e Element
	if _, err := e.SetUniformBytes(max[:]); err != nil {
		t.Fatal(err)
	}
	want := new(big.Int).Mod(new(big.Int).SetBytes(bytes.Repeat([]byte{0xff}, 64)), bigL)
	// bytes.Repeat builds a big-endian all-ones integer; SetUniformBytes'
	// contract is little-endian, but 0xff repeated is a fixed point of
	// endianness, so the comparison is still valid.
	if e.toBig().Cmp(want) != 0 {
		t.Errorf("SetUniformBytes(all-0xff) = %v, want %v", e.toBig(), want)
	}
}

func TestSignedRadix16Recomposes(t *testing.T) {
	f := func(x Element) bool {
		digits := x.SignedRadix16()
		got := new(big.Int)
		sixteen := big.NewInt(16)
		for i := len(digits) - 1; i >= 0; i-- {
			got.Mul(got, sixteen)
			got.Add(got, big.NewInt(int64(digits[i])))
		}
		got.Mod(got, bigL)
		return got.Cmp(x.toBig()) == 0
	}
	if err := quick.Check(f, quickCheckConfig1024); err != nil {
		t.Error(err)
	}
}

func TestSignedRadix16DigitsInRange(t *testing.T) {
	f := func(x Element) bool {
		for _, d := range x.SignedRadix16() {
			if d < -8 || d > 8 {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, quickCheckConfig1024); err != nil {
		t.Error(err)
	}
}

func TestNonAdjacentFormRecomposes(t *testing.T) {
	f := func(x Element) bool {
		b := x.Bytes()
		b[31] &= 0x7f // NonAdjacentForm requires the top bit clear.
		var clamped Element
		if _, err := clamped.SetCanonicalBytes(b); err != nil {
			return true
		}
		for _, w := range []uint{2, 3, 4, 5, 6, 7, 8} {
			naf := clamped.NonAdjacentForm(w)
			got := new(big.Int)
			two := big.NewInt(2)
			for i := len(naf) - 1; i >= 0; i-- {
				got.Mul(got, two)
				got.Add(got, big.NewInt(int64(naf[i])))
			}
			if got.Cmp(clamped.toBig()) != 0 {
				return false
			}
			for i := 0; i < len(naf)-1; i++ {
				if naf[i] != 0 && naf[i+1] != 0 {
					return false
				}
			}
		}
		return true
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 64}); err != nil {
		t.Error(err)
	}
}

func TestSelect(t *testing.T) {
	f := func(a, b Element) bool {
		var got Element
		got.Select(&a, &b, 1)
		if got.Equal(&a) != 1 {
			return false
		}
		got.Select(&a, &b, 0)
		return got.Equal(&b) == 1
	}
	if err := quick.Check(f, quickCheckConfig1024); err != nil {
		t.Error(err)
	}
}

func TestDestroyZeroes(t *testing.T) {
	var x Element
	x.fromBig(big.NewInt(12345))
	x.Destroy()
	if x.Equal(scZero) != 1 {
		t.Error("Destroy did not leave the scalar equal to zero")
	}
}
