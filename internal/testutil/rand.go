// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"

	"github.com/dsnet/sts/bitvec"
)

// Rand implements a deterministic pseudo-random bit generator, seeded by
// an integer and driven by AES in counter mode. This differs from
// math/rand in that its exact output is fixed across Go versions, so the
// large fixtures built from it are identical on every run.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

// NewRand seeds a deterministic generator from seed.
func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) Int() (x int) {
	r.Encrypt(r.blk[:], r.blk[:])
	x |= int(r.blk[0]) << 0
	x |= int(r.blk[1]) << 8
	x |= int(r.blk[2]) << 16
	x |= int(r.blk[3]) << 24
	x |= int(r.blk[4]) << 32
	x |= int(r.blk[5]) << 40
	x |= int(r.blk[6]) << 48
	x |= int(r.blk[7]&0x3f) << 56
	return x
}

func (r *Rand) Intn(n int) int {
	return r.Int() % n
}

// Bytes returns n deterministic pseudo-random bytes.
func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	bb := b
	for len(bb) > 0 {
		r.Encrypt(r.blk[:], r.blk[:])
		cnt := copy(bb, r.blk[:])
		bb = bb[cnt:]
	}
	return b
}

// Bits returns a deterministic pseudo-random bit sequence of exactly n
// bits, packed MSB-first. Used to build the large synthetic regression
// fixtures the fifteen-test battery is checked against, since NIST's own
// canonical 10^6-bit example sequences aren't reproducible without
// bundling their source data.
func (r *Rand) Bits(n int) *bitvec.Container {
	nbytes := (n + 7) / 8
	raw := r.Bytes(nbytes)
	c := bitvec.NewFromBytes(raw)
	c.Crop(n)
	return c
}
