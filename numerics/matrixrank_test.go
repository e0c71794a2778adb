// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package numerics

import "github.com/stretchr/testify/assert"
import "testing"

func TestMatrixRank32Identity(t *testing.T) {
	var rows [32]uint32
	for i := range rows {
		rows[i] = 1 << uint(31-i)
	}
	assert.Equal(t, 32, MatrixRank32(rows))
}

func TestMatrixRank32AllZero(t *testing.T) {
	var rows [32]uint32
	assert.Equal(t, 0, MatrixRank32(rows))
}

func TestMatrixRank32DuplicateRow(t *testing.T) {
	var rows [32]uint32
	for i := range rows {
		rows[i] = 1 << uint(31-i)
	}
	rows[5] = rows[4] // duplicate row drops rank by one
	assert.Equal(t, 31, MatrixRank32(rows))
}
