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
	sts.RegisterMinLength(sts.CumulativeSums, 100)
}

// CumulativeSums is the cumulative sums (cusum) test:
// bits are mapped to +-1, partial sums are walked either forward or
// backward, and the maximal excursion |z| from zero is compared to its
// theoretical distribution.
func CumulativeSums(c *bitvec.Container, forward bool) (sts.TestResult, error) {
	n := c.BitLength()
	maxAbs := 0
	sum := 0
	if forward {
		for i := 0; i < n; i++ {
			if c.BitAt(i) == 1 {
				sum++
			} else {
				sum--
			}
			if abs(sum) > maxAbs {
				maxAbs = abs(sum)
			}
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			if c.BitAt(i) == 1 {
				sum++
			} else {
				sum--
			}
			if abs(sum) > maxAbs {
				maxAbs = abs(sum)
			}
		}
	}

	z := float64(maxAbs)
	nf := float64(n)

	start1 := int(math.Floor((-nf/z + 1) / 4))
	end1 := int(math.Floor((nf/z - 1) / 4))
	sum1 := 0.0
	for k := start1; k <= end1; k++ {
		kf := float64(k)
		sum1 += numerics.NormalCDF((4*kf+1)*z/math.Sqrt(nf)) - numerics.NormalCDF((4*kf-1)*z/math.Sqrt(nf))
	}

	start2 := int(math.Floor((-nf/z - 3) / 4))
	end2 := end1
	sum2 := 0.0
	for k := start2; k <= end2; k++ {
		kf := float64(k)
		sum2 += numerics.NormalCDF((4*kf+3)*z/math.Sqrt(nf)) - numerics.NormalCDF((4*kf+1)*z/math.Sqrt(nf))
	}

	p := 1 - sum1 + sum2
	if err := sts.CheckFloat(p); err != nil {
		return sts.TestResult{}, err
	}
	return sts.TestResult{PValue: p}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
