// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stattest

import "github.com/dsnet/sts"
import "github.com/dsnet/sts/bitvec"
import "github.com/stretchr/testify/assert"
import "testing"

const tol = 5e-4

func TestFrequencyExample(t *testing.T) {
	c, err := bitvec.NewFromASCII("1011010101")
	assert.Nil(t, err)
	res, err := Frequency(c)
	assert.Nil(t, err)
	assert.InDelta(t, 0.527089, res.PValue, tol)
}

func TestFrequencyBlockExample(t *testing.T) {
	c, err := bitvec.NewFromASCII("1100100100001111110110101010001000100001011010001100001000110100110001001100011001100010100010111000")
	assert.Nil(t, err)
	res, err := FrequencyBlock(c, sts.FrequencyBlockArgs{Mode: sts.BlockModeBits, BlockLength: 10})
	assert.Nil(t, err)
	assert.InDelta(t, 0.706438, res.PValue, tol)
}

func TestRunsExample(t *testing.T) {
	c, err := bitvec.NewFromASCII("1100100100001111110110101010001000100001011010001100001000110100110001001100011001100010100010111000")
	assert.Nil(t, err)
	res, err := Runs(c)
	assert.Nil(t, err)
	assert.InDelta(t, 0.500798, res.PValue, tol)
}

func TestLongestRunOfOnesExample(t *testing.T) {
	c, err := bitvec.NewFromASCII("11001100000101010110110001001100111000000000001001001101010100010001001111010110100000001101011111001100111001101101100010110010")
	assert.Nil(t, err)
	res, err := LongestRunOfOnes(c)
	assert.Nil(t, err)
	assert.InDelta(t, 0.180609, res.PValue, tol)
}

func TestSpectralDFTExample(t *testing.T) {
	c, err := bitvec.NewFromASCII("1001010011")
	assert.Nil(t, err)
	res, err := SpectralDFT(c)
	assert.Nil(t, err)
	assert.InDelta(t, 0.468160, res.PValue, tol)
}

func TestNonOverlappingTemplateExample(t *testing.T) {
	c, err := bitvec.NewFromASCII("10100100101110010110")
	assert.Nil(t, err)
	results, err := NonOverlappingTemplateMatching(c, sts.NonOverlappingTemplateArgs{
		TemplateLength: 3,
		BlockCount:     2,
		Templates:      []uint32{0b001},
	})
	assert.Nil(t, err)
	assert.Len(t, results, 1)
	assert.InDelta(t, 0.344154, results[0].PValue, tol)
}
