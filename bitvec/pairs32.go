// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitvec

// Pairs32Iter is the specialised 32-bit iterator used only by
// BinaryMatrixRank: on a 64-bit host each word yields two
// uint32 halves (upper then lower); on a 32-bit host each word yields
// one. It is splittable and data-parallel like ChunkIter, and is in
// fact backed by one: WordBits/32 already divides evenly into every
// supported host word size, so there is no separate "pair" mechanism
// to maintain in Go beyond naming the uint32 chunk view for matrix-rank's
// benefit.
type Pairs32Iter struct {
	inner *ChunkIter[uint32]
}

// NewPairs32Iter returns an iterator of 32-value uint32 chunks (i.e. one
// 1024-bit matrix per chunk) over the container. Bits after the last
// complete 1024-bit matrix are not visited.
func NewPairs32Iter(c *Container) *Pairs32Iter {
	inner := NewChunkIter[uint32](c, 32)
	inner.end -= inner.end % 32
	return &Pairs32Iter{inner: inner}
}

// Len returns the number of complete 32-word (1024-bit) matrices
// remaining.
func (it *Pairs32Iter) Len() int { return it.inner.Len() }

// Next returns the next matrix's 32 uint32 values, MSB-first, or
// ok=false when exhausted.
func (it *Pairs32Iter) Next() (matrix []uint32, ok bool) { return it.inner.Next() }

// Split divides the iterator at matrix index k.
func (it *Pairs32Iter) Split(k int) (left, right *Pairs32Iter) {
	l, r := it.inner.Split(k)
	return &Pairs32Iter{inner: l}, &Pairs32Iter{inner: r}
}

// ForEachMatrixParallel is the data-parallel counterpart of repeatedly
// calling Next, dispatched over the process-wide pool.
func (it *Pairs32Iter) ForEachMatrixParallel(fn func(matrixIdx int, matrix []uint32)) {
	it.inner.ForEachChunkParallel(func(startUnit int, chunk []uint32) {
		fn(startUnit/32, chunk)
	})
}
