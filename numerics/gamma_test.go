// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package numerics

import "github.com/stretchr/testify/assert"
import "testing"

func TestIgamcBounds(t *testing.T) {
	p, err := Igamc(1, 0)
	assert.Nil(t, err)
	assert.Equal(t, 1.0, p)

	p, err = Igamc(0.5, 10)
	assert.Nil(t, err)
	assert.Greater(t, p, 0.0)
	assert.Less(t, p, 1.0)
}

func TestIgamComplementarity(t *testing.T) {
	a, x := 2.5, 3.0
	q, err := Igamc(a, x)
	assert.Nil(t, err)
	p, err := Igam(a, x)
	assert.Nil(t, err)
	assert.InDelta(t, 1.0, p+q, 1e-9)
}

func TestErfc(t *testing.T) {
	assert.InDelta(t, 1.0, Erfc(0), 1e-12)
}

func TestNormalCDF(t *testing.T) {
	assert.InDelta(t, 0.5, NormalCDF(0), 1e-12)
}
