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
	sts.RegisterMinLength(sts.Runs, 100)
}

// Runs is the runs test: if the monobit proportion is
// too far from 1/2, the test can't proceed and reports a degenerate
// result rather than an error; otherwise V is one more than the number
// of bit-to-bit transitions.
func Runs(c *bitvec.Container) (sts.TestResult, error) {
	n := c.BitLength()
	ones := c.CountOnes()
	pi := float64(ones) / float64(n)

	if math.Abs(pi-0.5) >= 2/math.Sqrt(float64(n)) {
		return sts.TestResult{PValue: 0, Comment: "Frequency precondition failed"}, nil
	}

	v := 1
	prev := c.BitAt(0)
	for k := 1; k < n; k++ {
		cur := c.BitAt(k)
		if cur != prev {
			v++
		}
		prev = cur
	}

	num := math.Abs(float64(v) - 2*float64(n)*pi*(1-pi))
	den := 2 * math.Sqrt(2*float64(n)) * pi * (1 - pi)
	p := numerics.Erfc(num / den)
	if err := sts.CheckFloat(p); err != nil {
		return sts.TestResult{}, err
	}
	return sts.TestResult{PValue: p}, nil
}
