// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package numerics

import (
	"math/big"
	"sync"
)

// piCacheKey identifies one (m, M, K) instance of the overlapping-template
// class probability table.
type piCacheKey struct {
	m, blockLength, k int
}

var (
	piCacheMu sync.Mutex
	piCache   = map[piCacheKey][]float64{}
)

// OverlappingTemplatePi returns the K class probabilities pi[0..K-1] for
// the number of overlapping occurrences of an m-bit all-ones template
// within an M-bit block, where the last class collects "K-1 or more"
// occurrences. Results are cached per (m, M, K).
func OverlappingTemplatePi(m, blockLength, k int) []float64 {
	key := piCacheKey{m: m, blockLength: blockLength, k: k}
	piCacheMu.Lock()
	defer piCacheMu.Unlock()
	if p, ok := piCache[key]; ok {
		return p
	}
	p := hamanoKaneko(blockLength, m, k)
	piCache[key] = p
	return p
}

// hamanoKaneko computes the exact class probabilities for the number of
// overlapping occurrences of a fixed m-bit all-ones template within a
// random M-bit block, following Hamano and Kaneko's correction to the
// NIST reference test's class-probability calculation. Every entry is
// an exact integer count carried in math/big, since the numerators scale
// with 2^M; converting to float64 happens only in the final division.
//
// Three families of tables are built, following Hamano and Kaneko's
// "Correction of Overlapping Template Matching Test Included in NIST
// Randomness Test Suite":
//
//   - T0(n): the number of n-bit strings containing zero runs of m
//     consecutive ones, via T0(n) = 2*T0(n-1) - T0(n-m-1).
//   - T1(n): the number of n-bit strings containing exactly one such
//     run, built by convolving T0 against itself around the run.
//   - Ta(n) for a = 2..K-2: the number of n-bit strings containing
//     exactly a such runs, built from T0 and T(a-1).
//
// pi[a] is then Ta(M)/2^M for a = 0..K-2, and pi[K-1] is the complement
// needed to sum to 1.
func hamanoKaneko(blockLength, m, k int) []float64 {
	if k < 2 {
		return []float64{1}
	}

	n := blockLength
	idx := func(i int) int { return i + 1 } // maps n in [-1, N] to a slice index in [0, N+1]

	numTables := k - 1
	tables := make([][]*big.Int, numTables)
	for i := range tables {
		tables[i] = make([]*big.Int, n+2)
	}

	t0 := tables[0]
	t0[idx(-1)] = big.NewInt(1)
	t0[idx(0)] = big.NewInt(1)
	for i := 1; i <= n; i++ {
		if i < m {
			t0[idx(i)] = new(big.Int).Lsh(t0[idx(i-1)], 1)
		} else {
			v := new(big.Int).Lsh(t0[idx(i-1)], 1)
			v.Sub(v, t0[idx(i-m-1)])
			t0[idx(i)] = v
		}
	}

	if numTables >= 2 {
		t1 := tables[1]
		for i := -1; i <= n; i++ {
			switch {
			case i < m:
				t1[idx(i)] = big.NewInt(0)
			case i == m:
				t1[idx(i)] = big.NewInt(1)
			case i == m+1:
				t1[idx(i)] = big.NewInt(2)
			default:
				sum := new(big.Int)
				for j := -1; j <= i-m-1; j++ {
					sum.Add(sum, new(big.Int).Mul(t0[idx(j)], t0[idx(i-m-2-j)]))
				}
				t1[idx(i)] = sum
			}
		}
	}

	for a := 2; a < numTables; a++ {
		ta := tables[a]
		prev := tables[a-1]
		ta[idx(-1)] = big.NewInt(0)
		for i := 0; i <= n; i++ {
			total := new(big.Int).Set(prev[idx(i-1)])
			for j := -1; j <= i-2*m-a; j++ {
				total.Add(total, new(big.Int).Mul(t0[idx(j)], prev[idx(i-m-2-j)]))
			}
			ta[idx(i)] = total
		}
	}

	denom := new(big.Float).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(n)))

	pi := make([]float64, k)
	sum := new(big.Float)
	for a := 0; a < numTables; a++ {
		ratio := new(big.Float).Quo(new(big.Float).SetInt(tables[a][idx(n)]), denom)
		sum.Add(sum, ratio)
		pi[a], _ = ratio.Float64()
	}
	last, _ := new(big.Float).Sub(big.NewFloat(1), sum).Float64()
	pi[k-1] = last
	return pi
}
