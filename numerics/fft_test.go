// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package numerics

import "math/cmplx"
import "github.com/stretchr/testify/assert"
import "testing"

func TestForwardInverseRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 10, 13} {
		x := make([]complex128, n)
		for i := range x {
			x[i] = complex(float64(i+1), float64(-i))
		}
		freq := ForwardDFT(x)
		back := InverseDFT(freq)
		for i := range x {
			assert.InDelta(t, real(x[i]), real(back[i]), 1e-6, "n=%d i=%d", n, i)
			assert.InDelta(t, imag(x[i]), imag(back[i]), 1e-6, "n=%d i=%d", n, i)
		}
	}
}

func TestForwardDFTAgainstDirect(t *testing.T) {
	x := []complex128{1, 1, 1, 0, 0, 0, 1, 0, 1, 0}
	got := ForwardDFT(x)
	want := directDFT(x)
	for i := range want {
		assert.InDelta(t, real(want[i]), real(got[i]), 1e-6)
		assert.InDelta(t, imag(want[i]), imag(got[i]), 1e-6)
	}
}

func directDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var sum complex128
		for j := 0; j < n; j++ {
			angle := -2 * 3.14159265358979323846 * float64(k*j) / float64(n)
			sum += x[j] * cmplx.Rect(1, angle)
		}
		out[k] = sum
	}
	return out
}
