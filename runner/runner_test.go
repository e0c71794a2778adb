// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package runner

import "github.com/dsnet/sts"
import "github.com/dsnet/sts/internal/testutil"
import "github.com/google/go-cmp/cmp"
import "github.com/stretchr/testify/assert"
import "testing"

func TestRunSomeDuplicateRejected(t *testing.T) {
	c := testutil.NewRand(1).Bits(1000)
	r := New(c, sts.DefaultTestArgs())
	results := r.RunSome([]sts.TestID{sts.Frequency, sts.Frequency})
	assert.Len(t, results, 1)
	var dup *ErrDuplicateTest
	assert.ErrorAs(t, results[0].Err, &dup)
}

func TestRunSomeBasic(t *testing.T) {
	c := testutil.NewRand(2).Bits(10000)
	r := New(c, sts.DefaultTestArgs())
	results := r.RunSome([]sts.TestID{sts.Frequency, sts.Runs, sts.LongestRunOfOnes})
	assert.Len(t, results, 3)
	for _, res := range results {
		assert.Nil(t, res.Err)
		assert.GreaterOrEqual(t, res.Result.PValue, 0.0)
		assert.LessOrEqual(t, res.Result.PValue, 1.0)
	}
}

func TestRunAllCoversEveryTest(t *testing.T) {
	c := testutil.NewRand(3).Bits(1100000)
	r := New(c, sts.DefaultTestArgs())
	results := r.RunAll()

	seen := make(map[sts.TestID]bool)
	for _, res := range results {
		assert.Nil(t, res.Err)
		seen[res.ID] = true
	}
	for _, id := range sts.AllTestIDs() {
		assert.True(t, seen[id], "missing results for %s", id)
	}
}

func TestRunSomeAutoSkipsTooShortTests(t *testing.T) {
	c := testutil.NewRand(5).Bits(1000)
	ids := []sts.TestID{sts.Frequency, sts.LinearComplexity, sts.RandomExcursions}
	results := RunSomeAuto(c, ids)

	seen := make(map[sts.TestID]bool)
	for _, res := range results {
		seen[res.ID] = true
	}
	assert.True(t, seen[sts.Frequency], "Frequency should run on a 1000-bit input")
	assert.False(t, seen[sts.LinearComplexity], "LinearComplexity needs 10^6 bits and should be skipped")
	assert.False(t, seen[sts.RandomExcursions], "RandomExcursions needs 10^6 bits and should be skipped")
}

func TestRunAllAutoCoversEligibleTests(t *testing.T) {
	c := testutil.NewRand(6).Bits(1100000)
	results := RunAllAuto(c)

	seen := make(map[sts.TestID]bool)
	for _, res := range results {
		assert.Nil(t, res.Err)
		seen[res.ID] = true
	}
	for _, id := range sts.AllTestIDs() {
		assert.True(t, seen[id], "missing results for %s at a length meeting every minimum", id)
	}
}

// TestRunSomeDeterministic checks that two runs over the same container
// and args produce bit-identical results, in the same order — the
// dispatch happens concurrently across the pool, but per-slot ordering
// must not leak into the output.
func TestRunSomeDeterministic(t *testing.T) {
	c := testutil.NewRand(4).Bits(20000)
	r := New(c, sts.DefaultTestArgs())
	ids := []sts.TestID{sts.Frequency, sts.FrequencyBlock, sts.Runs, sts.LongestRunOfOnes}

	first := r.RunSome(ids)
	second := r.RunSome(ids)
	if diff := cmp.Diff(first, second, cmp.Comparer(func(a, b error) bool {
		return (a == nil) == (b == nil)
	})); diff != "" {
		t.Errorf("RunSome is not deterministic (-first +second):\n%s", diff)
	}
}
