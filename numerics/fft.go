// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package numerics

import (
	"math"
	"math/cmplx"
	"sync"
)

// fftPlan caches the chirp sequence and padded convolution size for one
// input length, keyed by n in fftPlans below. Building a plan is O(n log n);
// reusing it amortises that cost across repeated SpectralDFT calls at
// the same length.
type fftPlan struct {
	n       int
	m       int // next power of two >= 2n-1
	chirpA  []complex128
	chirpB  []complex128 // conjugate chirp, zero-padded to m, pre-transformed
}

var (
	fftPlansMu sync.Mutex
	fftPlans   = map[int]*fftPlan{}
)

func getFFTPlan(n int) *fftPlan {
	fftPlansMu.Lock()
	defer fftPlansMu.Unlock()
	if p, ok := fftPlans[n]; ok {
		return p
	}
	p := buildFFTPlan(n)
	fftPlans[n] = p
	return p
}

func buildFFTPlan(n int) *fftPlan {
	m := 1
	for m < 2*n-1 {
		m <<= 1
	}
	chirpA := make([]complex128, n)
	chirpBFull := make([]complex128, m)
	for k := 0; k < n; k++ {
		// exp(-i*pi*k^2/n): the Bluestein chirp for computing an exact
		// n-point DFT via a power-of-two-sized convolution.
		theta := math.Pi * float64(k) * float64(k) / float64(n)
		chirpA[k] = cmplx.Rect(1, -theta)
		chirpBFull[k] = cmplx.Rect(1, theta)
		if k != 0 {
			chirpBFull[m-k] = chirpBFull[k]
		}
	}
	radix2FFT(chirpBFull, false)
	return &fftPlan{n: n, m: m, chirpA: chirpA, chirpB: chirpBFull}
}

// InverseDFT computes the exact n-point inverse discrete Fourier
// transform of x (len(x) must equal n), for arbitrary n, using
// Bluestein's algorithm so that non-power-of-two lengths (as arise from
// arbitrary bit-sequence lengths) are handled exactly rather than via
// zero-padding, which would change the result.
func InverseDFT(x []complex128) []complex128 {
	return bluestein(x, true)
}

// ForwardDFT computes the exact n-point forward discrete Fourier
// transform of x. SpectralDFT itself uses InverseDFT, but the forward
// transform is kept available for anyone cross-checking against the
// textbook formula.
func ForwardDFT(x []complex128) []complex128 {
	return bluestein(x, false)
}

func bluestein(x []complex128, inverse bool) []complex128 {
	n := len(x)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []complex128{x[0]}
	}
	plan := getFFTPlan(n)

	a := make([]complex128, plan.m)
	for k := 0; k < n; k++ {
		chirp := plan.chirpA[k]
		if inverse {
			chirp = cmplx.Conj(chirp)
		}
		a[k] = x[k] * chirp
	}
	radix2FFT(a, false)

	b := plan.chirpB
	if inverse {
		// The conjugate chirp for the inverse transform is the complex
		// conjugate of the forward one; recompute via sign rather than
		// caching a second plan, since conjugation is cheap relative to
		// the transform itself.
		bb := make([]complex128, plan.m)
		for i, v := range b {
			bb[i] = cmplx.Conj(v)
		}
		b = bb
	}

	conv := make([]complex128, plan.m)
	for i := range conv {
		conv[i] = a[i] * b[i]
	}
	radix2FFT(conv, true)

	out := make([]complex128, n)
	norm := 1.0
	if inverse {
		norm = 1.0 / float64(n)
	}
	for k := 0; k < n; k++ {
		chirp := plan.chirpA[k]
		if inverse {
			chirp = cmplx.Conj(chirp)
		}
		out[k] = conv[k] * chirp * complex(norm, 0)
	}
	return out
}

// radix2FFT performs an in-place iterative Cooley-Tukey FFT (or its
// inverse, scaled by 1/len(a), when inverse is true). len(a) must be a
// power of two.
func radix2FFT(a []complex128, inverse bool) {
	n := len(a)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}
	for length := 2; length <= n; length <<= 1 {
		angle := 2 * math.Pi / float64(length)
		if inverse {
			angle = -angle
		}
		wlen := cmplx.Rect(1, angle)
		for i := 0; i < n; i += length {
			w := complex(1, 0)
			half := length / 2
			for k := 0; k < half; k++ {
				u := a[i+k]
				v := a[i+k+half] * w
				a[i+k] = u + v
				a[i+k+half] = u - v
				w *= wlen
			}
		}
	}
	if inverse {
		for i := range a {
			a[i] /= complex(float64(n), 0)
		}
	}
}
