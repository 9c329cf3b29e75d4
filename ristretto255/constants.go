// Copyright (c) 2019 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ristretto255

// ScalarBits is the bit length of the scalar field order ℓ.
const ScalarBits = 253

// RemovedCofactor is the cofactor h of Edwards25519 that the
// ristretto255 quotient construction eliminates: #E = h * ℓ.
const RemovedCofactor = 8
