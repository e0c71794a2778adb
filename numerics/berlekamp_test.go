// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package numerics

import "github.com/stretchr/testify/assert"
import "testing"

type bitSlice []int

func (b bitSlice) BitAt(i int) int { return b[i] }

func TestBerlekampMasseyAllZeros(t *testing.T) {
	seq := bitSlice{0, 0, 0, 0, 0, 0, 0, 0}
	assert.Equal(t, 0, BerlekampMassey(seq, 0, len(seq)))
}

func TestBerlekampMasseyAlternating(t *testing.T) {
	// 1010...: the LFSR recurrence s[i]=s[i-2] has length 2.
	seq := bitSlice{1, 0, 1, 0, 1, 0, 1, 0}
	assert.Equal(t, 2, BerlekampMassey(seq, 0, len(seq)))
}

func TestBerlekampMasseyKnownSequence(t *testing.T) {
	seq := bitSlice{1, 1, 0, 1, 0, 1, 1, 1, 1, 0, 0, 0, 1}
	assert.Equal(t, 4, BerlekampMassey(seq, 0, len(seq)))
}

func TestBerlekampMasseyFullComplexity(t *testing.T) {
	// A maximal-length-looking irregular sequence should need close to
	// half its own length worth of LFSR taps.
	seq := bitSlice{1, 1, 0, 1, 1, 1, 0, 0, 1, 0, 1, 0, 0, 0, 1, 1}
	l := BerlekampMassey(seq, 0, len(seq))
	assert.Greater(t, l, 0)
	assert.LessOrEqual(t, l, len(seq))
}
