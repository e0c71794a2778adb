// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package stattest implements the fifteen NIST SP 800-22r1a test
// kernels. Every function takes a *bitvec.Container plus
// an optional configuration from package sts and returns one or more
// sts.TestResult values.
package stattest

import (
	"math"

	"github.com/dsnet/sts"
	"github.com/dsnet/sts/bitvec"
	"github.com/dsnet/sts/numerics"
)

func init() {
	sts.RegisterMinLength(sts.Frequency, 100)
}

// Frequency is the monobit test: S = ones - zeros,
// S_obs = |S|/sqrt(n), p = erfc(S_obs/sqrt(2)).
func Frequency(c *bitvec.Container) (sts.TestResult, error) {
	n := c.BitLength()
	ones := c.CountOnes()
	zeros := n - ones
	s := float64(ones - zeros)
	sObs := math.Abs(s) / math.Sqrt(float64(n))
	p := numerics.Erfc(sObs / math.Sqrt2)
	if err := sts.CheckFloat(p); err != nil {
		return sts.TestResult{}, err
	}
	return sts.TestResult{PValue: p}, nil
}
