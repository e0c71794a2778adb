// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stattest

import (
	"github.com/dsnet/sts"
	"github.com/dsnet/sts/bitvec"
	"github.com/dsnet/sts/numerics"
	"github.com/dsnet/sts/pool"
)

func init() {
	sts.RegisterMinLength(sts.LinearComplexity, 1000000)
}

// linearComplexityClassProbs are the theoretical class probabilities for
// the seven T buckets under the null hypothesis; like
// Maurer's table, these come from an asymptotic distribution rather than
// a short recursion, so they are retained verbatim.
var linearComplexityClassProbs = []float64{0.010417, 0.03125, 0.125, 0.5, 0.25, 0.0625, 0.020833}

type bitAtWindow struct {
	c    *bitvec.Container
	base int
}

func (w bitAtWindow) BitAt(i int) int { return w.c.BitAt(w.base + i) }

// chooseLinearComplexityM picks a block length with 500 <= M <= 5000 and
// n/M >= 200, the range over which the asymptotic class distribution holds,
// used when Auto is set.
func chooseLinearComplexityM(n int) int {
	m := n / 200
	if m < 500 {
		m = 500
	}
	if m > 5000 {
		m = 5000
	}
	return m
}

// LinearComplexity is the linear complexity test: the
// input is split into N blocks, the GF(2) LFSR length of each is found
// via the Berlekamp-Massey algorithm, and the resulting length deviations
// are bucketed into seven classes.
func LinearComplexity(c *bitvec.Container, args sts.LinearComplexityArgs) (sts.TestResult, error) {
	n := c.BitLength()
	m := args.BlockLength
	if args.Auto {
		m = chooseLinearComplexityM(n)
	}
	if m < 500 || m > 5000 {
		return sts.TestResult{}, &sts.InvalidParameterError{Reason: "linear complexity: block length must be in [500,5000]"}
	}
	numBlocks := n / m
	if numBlocks == 0 {
		return sts.TestResult{PValue: 0, Comment: "Input too short for chosen block length"}, nil
	}

	ls := make([]int, numBlocks)
	g := pool.Group()
	for bi := 0; bi < numBlocks; bi++ {
		bi := bi
		g.Go(func() error {
			w := bitAtWindow{c: c, base: bi * m}
			ls[bi] = numerics.BerlekampMassey(w, 0, m)
			return nil
		})
	}
	_ = g.Wait()

	mf := float64(m)
	signM := 1.0
	if m%2 == 1 {
		signM = -1.0
	}
	signM1 := -signM // (-1)^(M+1)
	mu := mf/2 + (9+signM1)/36 - (mf/3+2.0/9.0)/pow2(m)

	classes := make([]int, 7)
	for _, l := range ls {
		t := signM*(float64(l)-mu) + 2.0/9.0
		classes[tBucket(t)]++
	}

	chiSq := 0.0
	nf := float64(numBlocks)
	for i, v := range classes {
		expected := nf * linearComplexityClassProbs[i]
		d := float64(v) - expected
		chiSq += d * d / expected
	}

	p, gerr := numerics.Igamc(3, chiSq/2)
	if gerr != nil {
		return sts.TestResult{}, &sts.GammaFailureError{Reason: gerr.Error()}
	}
	if err := sts.CheckFloat(p); err != nil {
		return sts.TestResult{}, err
	}
	return sts.TestResult{PValue: p}, nil
}

func tBucket(t float64) int {
	switch {
	case t <= -2.5:
		return 0
	case t <= -1.5:
		return 1
	case t <= -0.5:
		return 2
	case t <= 0.5:
		return 3
	case t <= 1.5:
		return 4
	case t <= 2.5:
		return 5
	default:
		return 6
	}
}

func pow2(m int) float64 {
	p := 1.0
	for i := 0; i < m; i++ {
		p *= 2
	}
	return p
}
