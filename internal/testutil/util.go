// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil holds deterministic fixture helpers shared by this
// module's test files: an AES-based pseudo-random bit generator (rand.go)
// and a compact textual bit-string mini-language (bitgen.go). Rand.Bits
// builds a bitvec.Container directly; the BitGen decoders return packed
// MSB-first byte slices.
package testutil

import "encoding/hex"

// MustDecodeHex must decode a hexadecimal string or else panics.
func MustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// MustDecodeBitGen must decode a BitGen-formatted string or else panics.
func MustDecodeBitGen(s string) []byte {
	b, err := DecodeBitGen(s)
	if err != nil {
		panic(err)
	}
	return b
}
