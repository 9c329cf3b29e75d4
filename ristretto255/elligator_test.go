// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ristretto255

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetElligatorProducesValidElements(t *testing.T) {
	for i := 0; i < 64; i++ {
		var in [HashSize]byte
		in[0] = byte(i)
		in[1] = byte(i >> 8)

		e, err := NewElement().SetElligator(in[:])
		require.NoError(t, err, "input %d", i)
		require.True(t, e.Valid(), "input %d did not map to a valid curve point", i)

		enc := e.Encode(nil)
		require.Len(t, enc, ElementSize, "input %d", i)
		_, err = NewElement().Decode(enc)
		require.NoError(t, err, "input %d: SetElligator's output did not decode", i)
	}
}

func TestSetElligatorRejectsWrongLength(t *testing.T) {
	_, err := NewElement().SetElligator(make([]byte, HashSize-1))
	require.Error(t, err)
}

func TestFromUniformBytesProducesValidElements(t *testing.T) {
	for i := 0; i < 32; i++ {
		var in [2 * HashSize]byte
		in[0] = byte(i)
		in[HashSize] = byte(i + 1)

		e, err := NewElement().FromUniformBytes(in[:])
		require.NoError(t, err, "input %d", i)

		enc := e.Encode(nil)
		_, err = NewElement().Decode(enc)
		require.NoError(t, err, "input %d: FromUniformBytes' output did not decode", i)
	}
}

func TestFromUniformBytesRejectsWrongLength(t *testing.T) {
	_, err := NewElement().FromUniformBytes(make([]byte, 2*HashSize-1))
	require.Error(t, err)
}

func TestInvertElligatorRoundTrip(t *testing.T) {
	var in [HashSize]byte
	in[0] = 7
	in[5] = 200

	e, err := NewElement().SetElligator(in[:])
	require.NoError(t, err)

	found := false
	for which := uint8(0); which < 1<<InvertElligatorWhichBits; which++ {
		preimage, err := e.InvertElligator(nil, which)
		if err != nil {
			continue
		}
		require.Len(t, preimage, HashSize)

		// Clear the top bit, matching SetElligator's input convention,
		// before checking the preimage maps back to e.
		cleared := append([]byte{}, preimage...)
		cleared[31] &^= 0x80

		got, err := NewElement().SetElligator(cleared)
		require.NoError(t, err)
		if got.Equal(e) == 1 {
			found = true
		}
	}
	require.True(t, found, "no which value in range produced a valid preimage of e")
}

func TestInvertElligatorUniformRoundTrip(t *testing.T) {
	var in [2 * HashSize]byte
	in[0] = 7
	in[HashSize+3] = 42

	e, err := NewElement().FromUniformBytes(in[:])
	require.NoError(t, err)

	found := false
	for which := uint64(0); which < 1<<(InvertElligatorUniformWhichBits+2); which++ {
		preimage, err := e.InvertElligatorUniform(nil, which)
		if err != nil {
			continue
		}
		require.Len(t, preimage, 2*HashSize)

		got, err := NewElement().FromUniformBytes(preimage)
		require.NoError(t, err)
		if got.Equal(e) == 1 {
			found = true
			break
		}
	}
	require.True(t, found, "no which value in range produced a valid preimage of e")
}

func TestInvertElligatorOnBasePoint(t *testing.T) {
	g := NewElement().Base()
	found := false
	for which := uint8(0); which < 1<<InvertElligatorWhichBits; which++ {
		preimage, err := g.InvertElligator(nil, which)
		if err != nil {
			continue
		}
		cleared := append([]byte{}, preimage...)
		cleared[31] &^= 0x80
		got, err := NewElement().SetElligator(cleared)
		require.NoError(t, err)
		if got.Equal(g) == 1 {
			found = true
		}
	}
	require.True(t, found, "no which value produced a valid preimage of the base point")
}
