// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stattest

import (
	"sync/atomic"

	"github.com/dsnet/sts"
	"github.com/dsnet/sts/bitvec"
	"github.com/dsnet/sts/numerics"
)

func init() {
	sts.RegisterMinLength(sts.BinaryMatrixRank, 38912)
}

// Class probabilities for {rank=32, rank=31, rank<=30}, derived from the
// Landsberg distribution of ranks of random binary matrices: these are
// the exact closed-form values (not tabulated decimals) for 32x32
// matrices over GF(2).
const (
	matrixRankP1 = 0.2887880951538411
	matrixRankP2 = 0.5775761901732046
)

// BinaryMatrixRank is the binary-matrix-rank test: the
// sequence is partitioned into non-overlapping 32x32 matrices (1024
// bits each); ranks are bucketed into three classes.
func BinaryMatrixRank(c *bitvec.Container) (sts.TestResult, error) {
	it := bitvec.NewPairs32Iter(c)
	numMatrices := it.Len()
	if numMatrices == 0 {
		return sts.TestResult{PValue: 0, Comment: "Input too short for a single matrix"}, nil
	}

	var fullRank, rank31, rankLower int64
	it.ForEachMatrixParallel(func(_ int, rows []uint32) {
		var arr [32]uint32
		copy(arr[:], rows)
		r := numerics.MatrixRank32(arr)
		switch r {
		case 32:
			atomic.AddInt64(&fullRank, 1)
		case 31:
			atomic.AddInt64(&rank31, 1)
		default:
			atomic.AddInt64(&rankLower, 1)
		}
	})

	n := float64(numMatrices)
	p3 := 1 - matrixRankP1 - matrixRankP2
	chiSq := sq(float64(fullRank)-n*matrixRankP1)/(n*matrixRankP1) +
		sq(float64(rank31)-n*matrixRankP2)/(n*matrixRankP2) +
		sq(float64(rankLower)-n*p3)/(n*p3)

	p, gerr := numerics.Igamc(1, chiSq/2)
	if gerr != nil {
		return sts.TestResult{}, &sts.GammaFailureError{Reason: gerr.Error()}
	}
	if err := sts.CheckFloat(p); err != nil {
		return sts.TestResult{}, err
	}
	return sts.TestResult{PValue: p}, nil
}

func sq(x float64) float64 { return x * x }
