// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stattest

import (
	"github.com/dsnet/sts"
	"github.com/dsnet/sts/bitvec"
	"github.com/dsnet/sts/numerics"
)

func init() {
	sts.RegisterMinLength(sts.LongestRunOfOnes, 128)
}

type longestRunParams struct {
	blockBits int
	classes   int     // K+1
	probs     []float64
}

// longestRunParamsFor picks the block length, number of classes, and
// class probabilities by input length. Probabilities are recomputed
// from the true binomial run-length distribution for each block size
// (runClassProbs) rather than taken from the four-decimal NIST
// publication table.
func longestRunParamsFor(n int) longestRunParams {
	switch {
	case n < 6272:
		bounds := []int{1, 2, 3}
		return longestRunParams{blockBits: 8, classes: 4, probs: runClassProbs(8, bounds)}
	case n < 750000:
		bounds := []int{4, 5, 6, 7, 8}
		return longestRunParams{blockBits: 128, classes: 6, probs: runClassProbs(128, bounds)}
	default:
		bounds := []int{10, 11, 12, 13, 14, 15}
		return longestRunParams{blockBits: 10000, classes: 7, probs: runClassProbs(10000, bounds)}
	}
}

// runClassProbs computes, by exact dynamic programming over M iid
// Bernoulli(1/2) trials, the probability that the longest run of ones
// falls into each of len(bounds)+1 classes: "<= bounds[0]",
// "== bounds[1]", ..., "> bounds[len(bounds)-1]". Because only the
// classification relative to the highest bound matters, both the
// running run-length and the running maximum are tracked clamped to
// cap = bounds[last]+1, keeping the state space small regardless of M.
func runClassProbs(blockBits int, bounds []int) []float64 {
	capN := bounds[len(bounds)-1] + 1
	// dp[curRun][maxRun] holds the probability mass of reaching this
	// (clamped current run, clamped running maximum) pair.
	dp := make([][]float64, capN+1)
	for i := range dp {
		dp[i] = make([]float64, capN+1)
	}
	dp[0][0] = 1.0

	for i := 0; i < blockBits; i++ {
		next := make([][]float64, capN+1)
		for i := range next {
			next[i] = make([]float64, capN+1)
		}
		for curRun := 0; curRun <= capN; curRun++ {
			for maxRun := 0; maxRun <= capN; maxRun++ {
				p := dp[curRun][maxRun]
				if p == 0 {
					continue
				}
				// bit = 0: run resets.
				next[0][maxRun] += 0.5 * p
				// bit = 1: run extends (clamped), maximum updates.
				nr := curRun + 1
				if nr > capN {
					nr = capN
				}
				nm := maxRun
				if nr > nm {
					nm = nr
				}
				next[nr][nm] += 0.5 * p
			}
		}
		dp = next
	}

	probs := make([]float64, len(bounds)+1)
	for curRun := 0; curRun <= capN; curRun++ {
		for maxRun := 0; maxRun <= capN; maxRun++ {
			p := dp[curRun][maxRun]
			if p == 0 {
				continue
			}
			probs[classIndex(maxRun, bounds)] += p
		}
	}
	return probs
}

// LongestRunOfOnes is the longest-run-of-ones-in-a-block test.
func LongestRunOfOnes(c *bitvec.Container) (sts.TestResult, error) {
	n := c.BitLength()
	params := longestRunParamsFor(n)
	numBlocks := n / params.blockBits
	if numBlocks == 0 {
		return sts.TestResult{PValue: 0, Comment: "Input too short for chosen block length"}, nil
	}

	bounds := classBoundsFor(params.blockBits)
	classes := make([]int, params.classes)
	for bi := 0; bi < numBlocks; bi++ {
		maxRun := 0
		run := 0
		base := bi * params.blockBits
		for i := 0; i < params.blockBits; i++ {
			if c.BitAt(base+i) == 1 {
				run++
				if run > maxRun {
					maxRun = run
				}
			} else {
				run = 0
			}
		}
		classes[classIndex(maxRun, bounds)]++
	}

	chiSq := 0.0
	nf := float64(numBlocks)
	for i, v := range classes {
		expected := nf * params.probs[i]
		d := float64(v) - expected
		chiSq += d * d / expected
	}

	p, gerr := numerics.Igamc(float64(params.classes-1)/2, chiSq/2)
	if gerr != nil {
		return sts.TestResult{}, &sts.GammaFailureError{Reason: gerr.Error()}
	}
	if err := sts.CheckFloat(p); err != nil {
		return sts.TestResult{}, err
	}
	return sts.TestResult{PValue: p}, nil
}

// classBoundsFor returns the interior class boundaries (run lengths
// <= bounds[0] form class 0, ..., > bounds[len-1] forms the last class).
func classBoundsFor(blockBits int) []int {
	switch blockBits {
	case 8:
		return []int{1, 2, 3}
	case 128:
		return []int{4, 5, 6, 7, 8}
	default:
		return []int{10, 11, 12, 13, 14, 15}
	}
}

func classIndex(run int, bounds []int) int {
	for i, b := range bounds {
		if run <= b {
			return i
		}
	}
	return len(bounds)
}
