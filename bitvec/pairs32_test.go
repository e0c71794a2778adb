// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitvec

import "github.com/stretchr/testify/assert"
import "testing"

func TestPairs32IterMatrixCount(t *testing.T) {
	// 4 matrices of 1024 bits each = 512 bytes.
	c := NewFromBytes(make([]byte, 512))
	it := NewPairs32Iter(c)
	assert.Equal(t, 4, it.Len())

	n := 0
	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		assert.Len(t, m, 32)
		n++
	}
	assert.Equal(t, 4, n)
}

func TestPairs32IterSplit(t *testing.T) {
	c := NewFromBytes(make([]byte, 512))
	it := NewPairs32Iter(c)
	left, right := it.Split(1)
	assert.Equal(t, 1, left.Len())
	assert.Equal(t, 3, right.Len())
}
