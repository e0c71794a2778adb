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
	sts.RegisterMinLength(sts.SpectralDFT, 1000)
}

// SpectralDFT is the discrete Fourier transform (spectral) test: bits
// are mapped to +-1, transformed, and the count of sub-threshold peak
// heights among the first n/2 frequency components is compared against
// its expected value under the null hypothesis.
func SpectralDFT(c *bitvec.Container) (sts.TestResult, error) {
	n := c.BitLength()
	x := make([]complex128, n)
	for i := 0; i < n; i++ {
		if c.BitAt(i) == 1 {
			x[i] = complex(1, 0)
		} else {
			x[i] = complex(-1, 0)
		}
	}

	s := numerics.InverseDFT(x)

	// InverseDFT scales its output by 1/n; the threshold t below applies
	// to the unscaled magnitudes, so the scale is undone here.
	half := n / 2
	modulus := make([]float64, half)
	for i := 0; i < half; i++ {
		modulus[i] = cmplxAbs(s[i]) * float64(n)
	}

	t := math.Sqrt(2.995732274 * float64(n))
	n0 := 0.95 * float64(half)
	n1 := 0.0
	for _, m := range modulus {
		if m < t {
			n1++
		}
	}

	d := (n1 - n0) / math.Sqrt(float64(n)*0.95*0.05/4)
	p := numerics.Erfc(math.Abs(d) / math.Sqrt2)
	if err := sts.CheckFloat(p); err != nil {
		return sts.TestResult{}, err
	}
	return sts.TestResult{PValue: p}, nil
}

func cmplxAbs(z complex128) float64 {
	re, im := real(z), imag(z)
	return math.Sqrt(re*re + im*im)
}
