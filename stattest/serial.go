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
	sts.RegisterMinLength(sts.Serial, 100)
}

// Serial is the serial test: psi-squared statistics for
// overlapping m-bit, (m-1)-bit, and (m-2)-bit patterns (cyclically
// wrapped) yield two p-values from their first and second differences.
func Serial(c *bitvec.Container, args sts.SerialArgs) (p1, p2 sts.TestResult, err error) {
	n := c.BitLength()
	m := args.BlockLength
	if m < 2 || float64(m) >= math.Log2(float64(n))-2 {
		return sts.TestResult{}, sts.TestResult{}, &sts.InvalidParameterError{Reason: "serial: block length must satisfy m < log2(n)-2"}
	}

	psiM := psiSquared(c, n, m)
	psiM1 := psiSquared(c, n, m-1)
	psiM2 := psiSquared(c, n, m-2)

	delPsi := psiM - psiM1
	del2Psi := psiM - 2*psiM1 + psiM2

	pv1, gerr := numerics.Igamc(math.Pow(2, float64(m-2)), delPsi/2)
	if gerr != nil {
		return sts.TestResult{}, sts.TestResult{}, &sts.GammaFailureError{Reason: gerr.Error()}
	}
	pv2, gerr := numerics.Igamc(math.Pow(2, float64(m-3)), del2Psi/2)
	if gerr != nil {
		return sts.TestResult{}, sts.TestResult{}, &sts.GammaFailureError{Reason: gerr.Error()}
	}
	if err := sts.CheckFloat(pv1); err != nil {
		return sts.TestResult{}, sts.TestResult{}, err
	}
	if err := sts.CheckFloat(pv2); err != nil {
		return sts.TestResult{}, sts.TestResult{}, err
	}
	return sts.TestResult{PValue: pv1}, sts.TestResult{PValue: pv2}, nil
}

// psiSquared computes the psi-squared statistic for overlapping,
// cyclically wrapped m-bit patterns over an n-bit sequence. m <= 0
// degenerates to 0, matching the convention that psi-squared for the
// (m-2) term at m=2 contributes nothing.
func psiSquared(c *bitvec.Container, n, m int) float64 {
	if m <= 0 {
		return 0
	}
	counts := make([]int, 1<<uint(m))
	for i := 0; i < n; i++ {
		var v int
		for b := 0; b < m; b++ {
			v = v<<1 | c.BitAt((i+b)%n)
		}
		counts[v]++
	}
	sumSq := 0.0
	for _, v := range counts {
		sumSq += float64(v) * float64(v)
	}
	return sumSq*pow2(m)/float64(n) - float64(n)
}
