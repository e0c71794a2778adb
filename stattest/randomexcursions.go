// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stattest

import (
	"math"

	"github.com/dsnet/sts"
	"github.com/dsnet/sts/bitvec"
	"github.com/dsnet/sts/numerics"
)

func init() {
	sts.RegisterMinLength(sts.RandomExcursions, 1000000)
	sts.RegisterMinLength(sts.RandomExcursionsVariant, 1000000)
}

// excursionStates are the eight non-zero states both excursion tests
// classify visits against.
var excursionStates = []int{-4, -3, -2, -1, 1, 2, 3, 4}

// minExcursionCycles is the minimum number of zero-crossing cycles
// RandomExcursions requires before its chi-squared approximation is
// considered reliable; below it every state reports a degenerate
// zero-value result instead of a computed p-value.
const minExcursionCycles = 500

// tooFewCyclesResults is the degenerate result set returned when the
// input's walk doesn't produce enough zero-crossing cycles to trust the
// chi-squared approximation.
func tooFewCyclesResults(n int) []sts.TestResult {
	results := make([]sts.TestResult, n)
	for i := range results {
		results[i] = sts.TestResult{PValue: 0, Comment: "Too few cycles"}
	}
	return results
}

// randomWalkCycles computes the cumulative +-1 random walk over c, padded
// with a leading and trailing zero, and returns the zero-crossing cycle
// boundaries (as indices into the padded walk) along with the walk
// itself.
func randomWalkCycles(c *bitvec.Container) (walk []int, cycleEnds []int) {
	n := c.BitLength()
	walk = make([]int, n+2)
	sum := 0
	for i := 0; i < n; i++ {
		if c.BitAt(i) == 1 {
			sum++
		} else {
			sum--
		}
		walk[i+1] = sum
	}
	walk[n+1] = 0

	for i := 1; i < len(walk); i++ {
		if walk[i] == 0 {
			cycleEnds = append(cycleEnds, i)
		}
	}
	return walk, cycleEnds
}

// excursionStateTable returns the NIST reference conditional visit
// probabilities pi(k | x) for a state x in {-4..-1,1..4}, k in
// {0,1,2,3,4,"5 or more"}, computed from their closed form with
// p = 1/(2|x|): pi(0|x) = 1-p, pi(k|x) = p^2 (1-p)^(k-1) for k = 1..4,
// and the last class takes the remainder so the six sum to 1.
func excursionStateTable(x int) []float64 {
	ax := math.Abs(float64(x))
	p := 1.0 / (2 * ax)
	probs := make([]float64, 6)
	probs[0] = 1 - p
	for k := 1; k < 5; k++ {
		probs[k] = p * p * math.Pow(1-p, float64(k-1))
	}
	sum := 0.0
	for k := 0; k < 5; k++ {
		sum += probs[k]
	}
	probs[5] = 1 - sum
	return probs
}

// RandomExcursions is the random excursions test: the
// random walk's zero-crossing cycles are each classified by how many
// times they visit each of the eight non-zero states, bucketed into six
// visit-count classes per state.
func RandomExcursions(c *bitvec.Container) ([]sts.TestResult, error) {
	walk, cycleEnds := randomWalkCycles(c)
	numCycles := len(cycleEnds)
	if numCycles < minExcursionCycles {
		return tooFewCyclesResults(len(excursionStates)), nil
	}

	results := make([]sts.TestResult, len(excursionStates))
	for si, x := range excursionStates {
		visitCounts := make([]int, 6)
		start := 0
		for _, end := range cycleEnds {
			count := 0
			for i := start; i < end; i++ {
				if walk[i] == x {
					count++
				}
			}
			if count > 5 {
				count = 5
			}
			visitCounts[count]++
			start = end
		}

		pi := excursionStateTable(x)
		chiSq := 0.0
		nf := float64(numCycles)
		for k := 0; k < 6; k++ {
			expected := nf * pi[k]
			d := float64(visitCounts[k]) - expected
			chiSq += d * d / expected
		}
		p, gerr := numerics.Igamc(2.5, chiSq/2)
		if gerr != nil {
			return nil, &sts.GammaFailureError{Reason: gerr.Error()}
		}
		if err := sts.CheckFloat(p); err != nil {
			return nil, err
		}
		results[si] = sts.TestResult{PValue: p}
	}
	return results, nil
}

// RandomExcursionsVariant is the random excursions variant test: for each of eighteen non-zero states, the total number of
// visits across the whole walk is compared to its expected value under
// the null hypothesis.
func RandomExcursionsVariant(c *bitvec.Container) ([]sts.TestResult, error) {
	walk, cycleEnds := randomWalkCycles(c)
	numCycles := len(cycleEnds)

	states := make([]int, 0, 18)
	for x := -9; x <= 9; x++ {
		if x != 0 {
			states = append(states, x)
		}
	}

	minCycles := 500.0
	if v := 0.005 * math.Sqrt(float64(c.BitLength())); v > minCycles {
		minCycles = v
	}
	if float64(numCycles) < minCycles {
		return tooFewCyclesResults(len(states)), nil
	}

	results := make([]sts.TestResult, len(states))
	nf := float64(numCycles)
	for si, x := range states {
		total := 0
		for _, v := range walk {
			if v == x {
				total++
			}
		}
		num := math.Abs(float64(total) - nf)
		den := math.Sqrt(2 * nf * (4*math.Abs(float64(x)) - 2))
		p := numerics.Erfc(num / den)
		if err := sts.CheckFloat(p); err != nil {
			return nil, err
		}
		results[si] = sts.TestResult{PValue: p}
	}
	return results, nil
}
