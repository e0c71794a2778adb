// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package numerics

import "github.com/stretchr/testify/assert"
import "testing"

func TestOverlappingTemplatePiReferenceConfiguration(t *testing.T) {
	pi := OverlappingTemplatePi(9, 1032, 6)
	want := []float64{0.364091, 0.185659, 0.139381, 0.100571, 0.070432}
	for i, w := range want {
		assert.InDelta(t, w, pi[i], 5e-5, "pi[%d]", i)
	}
	sum := 0.0
	for _, p := range pi {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestOverlappingTemplatePiSumsToOne(t *testing.T) {
	for _, m := range []int{2, 7, 9, 14} {
		pi := OverlappingTemplatePi(m, 1032, 6)
		sum := 0.0
		for _, p := range pi {
			assert.GreaterOrEqual(t, p, -1e-9)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestOverlappingTemplatePiCacheDistinguishesTemplateLength(t *testing.T) {
	a := OverlappingTemplatePi(9, 1032, 6)
	b := OverlappingTemplatePi(10, 1032, 6)
	assert.NotEqual(t, a, b)
}
