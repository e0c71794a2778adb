// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stattest

import "github.com/dsnet/sts"
import "github.com/dsnet/sts/internal/testutil"
import "github.com/stretchr/testify/assert"
import "testing"

// These exercise every test against a large deterministic pseudo-random
// fixture, checking only that each returns a well-formed p-value in
// [0,1] with no error: deterministic AES-CTR output isn't drawn from a
// process with a known closed-form p-value, so it cannot anchor an exact
// expected result the way the literal spec examples in examples_test.go
// do.
func assertValidP(t *testing.T, p float64, err error) {
	t.Helper()
	assert.Nil(t, err)
	assert.GreaterOrEqual(t, p, 0.0)
	assert.LessOrEqual(t, p, 1.0)
}

func TestBinaryMatrixRankSanity(t *testing.T) {
	c := testutil.NewRand(1).Bits(100000)
	res, err := BinaryMatrixRank(c)
	assertValidP(t, res.PValue, err)
}

func TestOverlappingTemplateMatchingSanity(t *testing.T) {
	c := testutil.NewRand(2).Bits(1000000)
	res, err := OverlappingTemplateMatching(c, sts.OverlappingTemplateArgs{
		TemplateLength: 9, BlockLength: 1032, DegreesOfFreedom: 6,
	})
	assertValidP(t, res.PValue, err)
}

func TestMaurerUniversalSanity(t *testing.T) {
	c := testutil.NewRand(3).Bits(400000)
	res, err := MaurerUniversal(c)
	assertValidP(t, res.PValue, err)
}

func TestLinearComplexitySanity(t *testing.T) {
	c := testutil.NewRand(4).Bits(1000000)
	res, err := LinearComplexity(c, sts.LinearComplexityArgs{Auto: true})
	assertValidP(t, res.PValue, err)
}

func TestSerialSanity(t *testing.T) {
	c := testutil.NewRand(5).Bits(10000)
	p1, p2, err := Serial(c, sts.SerialArgs{BlockLength: 3})
	assert.Nil(t, err)
	assertValidP(t, p1.PValue, nil)
	assertValidP(t, p2.PValue, nil)
}

func TestApproximateEntropySanity(t *testing.T) {
	c := testutil.NewRand(6).Bits(10000)
	res, err := ApproximateEntropy(c, sts.ApproximateEntropyArgs{BlockLength: 2})
	assertValidP(t, res.PValue, err)
}

func TestCumulativeSumsSanity(t *testing.T) {
	c := testutil.NewRand(7).Bits(10000)
	fwd, err := CumulativeSums(c, true)
	assertValidP(t, fwd.PValue, err)
	bwd, err := CumulativeSums(c, false)
	assertValidP(t, bwd.PValue, err)
}

func TestRandomExcursionsSanity(t *testing.T) {
	c := testutil.NewRand(8).Bits(1000000)
	results, err := RandomExcursions(c)
	assert.Nil(t, err)
	for _, r := range results {
		assertValidP(t, r.PValue, nil)
	}
}

func TestRandomExcursionsVariantSanity(t *testing.T) {
	c := testutil.NewRand(9).Bits(1000000)
	results, err := RandomExcursionsVariant(c)
	assert.Nil(t, err)
	for _, r := range results {
		assertValidP(t, r.PValue, nil)
	}
}
