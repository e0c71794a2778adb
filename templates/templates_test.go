// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package templates

import "github.com/stretchr/testify/assert"
import "testing"

func TestAperiodicContainsKnownTemplate(t *testing.T) {
	tpls := Aperiodic(3)
	assert.Contains(t, tpls, uint32(0b001))
	// 000, 010, 101 and 111 overlap a shifted copy of themselves; the
	// aperiodic 3-bit set is 001, 011, 100, 110.
	assert.NotContains(t, tpls, uint32(0b000))
	assert.NotContains(t, tpls, uint32(0b111))
	assert.Len(t, tpls, 4)
}

func TestAperiodicOutOfRange(t *testing.T) {
	assert.Nil(t, Aperiodic(1))
	assert.Nil(t, Aperiodic(22))
}

func TestAperiodicCached(t *testing.T) {
	a := Aperiodic(4)
	b := Aperiodic(4)
	assert.Equal(t, a, b)
}
