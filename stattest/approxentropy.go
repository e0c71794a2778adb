// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stattest

import (
	"math"

	"github.com/dsnet/sts"
	"github.com/dsnet/sts/bitvec"
	"github.com/dsnet/sts/numerics"
)

func init() {
	sts.RegisterMinLength(sts.ApproximateEntropy, 100)
}

// ApproximateEntropy is the approximate entropy test:
// compares the frequency of overlapping, cyclically wrapped m-bit and
// (m+1)-bit patterns; m must satisfy m < log2(n)-5.
func ApproximateEntropy(c *bitvec.Container, args sts.ApproximateEntropyArgs) (sts.TestResult, error) {
	n := c.BitLength()
	m := args.BlockLength
	if m < 1 || float64(m) >= math.Log2(float64(n))-5 {
		return sts.TestResult{}, &sts.InvalidParameterError{Reason: "approximate entropy: block length must satisfy m < log2(n)-5"}
	}

	phiM := phiStat(c, n, m)
	phiM1 := phiStat(c, n, m+1)
	apEn := phiM - phiM1
	chiSq := 2 * float64(n) * (math.Ln2 - apEn)

	p, gerr := numerics.Igamc(math.Pow(2, float64(m-1)), chiSq/2)
	if gerr != nil {
		return sts.TestResult{}, &sts.GammaFailureError{Reason: gerr.Error()}
	}
	if err := sts.CheckFloat(p); err != nil {
		return sts.TestResult{}, err
	}
	return sts.TestResult{PValue: p}, nil
}

// phiStat computes phi(m) = sum_i (c_i/n) * ln(c_i/n) over the 2^m
// overlapping, cyclically wrapped m-bit pattern counts c_i.
func phiStat(c *bitvec.Container, n, m int) float64 {
	counts := make([]int, 1<<uint(m))
	for i := 0; i < n; i++ {
		var v int
		for b := 0; b < m; b++ {
			v = v<<1 | c.BitAt((i+b)%n)
		}
		counts[v]++
	}
	phi := 0.0
	for _, v := range counts {
		if v == 0 {
			continue
		}
		pr := float64(v) / float64(n)
		phi += pr * math.Log(pr)
	}
	return phi
}
