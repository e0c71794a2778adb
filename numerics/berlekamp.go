// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package numerics

// BitAt is satisfied by anything LinearComplexity can pull single bits
// out of; bitvec.Container implements it via its bitsAt-backed accessor
// (exposed as BitAt in package bitvec).
type BitAt interface {
	BitAt(i int) int
}

// BerlekampMassey returns the length of the minimal linear-feedback
// shift register that generates the L bits of seq starting at bit
// offset start. It operates bit-by-bit with two binary
// polynomials of length L, a discrepancy computation, and a polynomial
// XOR-shift — the canonical formulation, independent of shift register
// direction, so the well-known check BerlekampMassey of "1101011110001"
// (at any starting offset) is 4.
func BerlekampMassey(seq BitAt, start, length int) int {
	c := make([]int, length+1)
	b := make([]int, length+1)
	c[0], b[0] = 1, 1

	l := 0
	m := -1

	for n := 0; n < length; n++ {
		d := seq.BitAt(start + n)
		for i := 1; i <= l; i++ {
			d ^= c[i] & seq.BitAt(start+n-i)
		}
		if d == 0 {
			continue
		}
		t := make([]int, length+1)
		copy(t, c)
		shift := n - m
		for i := 0; i+shift <= length; i++ {
			c[i+shift] ^= b[i]
		}
		if l <= n/2 {
			l = n + 1 - l
			m = n
			b = t
		}
	}
	return l
}
