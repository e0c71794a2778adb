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
	sts.RegisterMinLength(sts.MaurerUniversal, 387840)
}

// maurerParams gives the expected value and variance of the Maurer test
// statistic for a given block length L. Unlike the longest-run-of-ones
// class probabilities, these are not recoverable by a short DP: they are
// closed-form limits of an infinite summation over all L-bit block
// sequences, so (as with the NIST reference) they are retained as a
// table rather than recomputed at run time.
var maurerParams = map[int][2]float64{
	6:  {5.2177052, 2.954},
	7:  {6.1962507, 3.125},
	8:  {7.1836656, 3.238},
	9:  {8.1764248, 3.311},
	10: {9.1723243, 3.356},
	11: {10.170032, 3.384},
	12: {11.168765, 3.401},
	13: {12.168070, 3.410},
	14: {13.167693, 3.416},
	15: {14.167488, 3.419},
	16: {15.167379, 3.421},
}

// chooseMaurerL picks a block length per the NIST-recommended
// length-to-L table.
func chooseMaurerL(n int) int {
	switch {
	case n < 904960:
		return 6
	case n < 2068480:
		return 7
	case n < 4654080:
		return 8
	case n < 10342400:
		return 9
	case n < 22753280:
		return 10
	case n < 49643520:
		return 11
	case n < 107560960:
		return 12
	case n < 231669760:
		return 13
	case n < 496435200:
		return 14
	case n < 1059061760:
		return 15
	default:
		return 16
	}
}

// MaurerUniversal is Maurer's universal statistical test: an L-bit sliding table of most-recent positions is built over
// an initialisation segment of Q blocks, then the remaining K blocks each
// contribute log2 of the gap since that pattern was last seen.
func MaurerUniversal(c *bitvec.Container) (sts.TestResult, error) {
	n := c.BitLength()
	l := chooseMaurerL(n)
	q := 10 * (1 << uint(l))
	numBlocks := n / l
	if numBlocks <= q {
		return sts.TestResult{PValue: 0, Comment: "Input too short for chosen block length"}, nil
	}
	k := numBlocks - q

	tableSize := 1 << uint(l)
	lastSeen := make([]int, tableSize)

	blockAt := func(i int) uint32 {
		base := i * l
		var v uint32
		for b := 0; b < l; b++ {
			v = v<<1 | uint32(c.BitAt(base+b))
		}
		return v
	}

	for i := 0; i < q; i++ {
		lastSeen[blockAt(i)] = i + 1
	}

	sum := 0.0
	for i := q; i < numBlocks; i++ {
		v := blockAt(i)
		gap := i + 1 - lastSeen[v]
		if lastSeen[v] == 0 {
			gap = i + 1
		}
		sum += math.Log2(float64(gap))
		lastSeen[v] = i + 1
	}
	fn := sum / float64(k)

	params, ok := maurerParams[l]
	if !ok {
		return sts.TestResult{}, &sts.InvalidParameterError{Reason: "maurer universal: unsupported block length"}
	}
	expected, variance := params[0], params[1]
	c2 := 0.7 - 0.8/float64(l) + (4+32.0/float64(l))*math.Pow(float64(k), -3.0/float64(l))/15
	sigma := c2 * math.Sqrt(variance/float64(k))

	p := numerics.Erfc(math.Abs((fn-expected)/math.Sqrt2) / sigma)
	if err := sts.CheckFloat(p); err != nil {
		return sts.TestResult{}, err
	}
	return sts.TestResult{PValue: p}, nil
}
