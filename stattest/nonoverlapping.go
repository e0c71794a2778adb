// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stattest

import (
	"github.com/dsnet/sts"
	"github.com/dsnet/sts/bitvec"
	"github.com/dsnet/sts/numerics"
	"github.com/dsnet/sts/pool"
	"github.com/dsnet/sts/templates"
)

func init() {
	sts.RegisterMinLength(sts.NonOverlappingTemplateMatching, 100)
}

// NonOverlappingTemplateMatching is the non-overlapping template matching
// test: for each aperiodic m-bit template, the input is
// split into N equal blocks and the number of non-overlapping occurrences
// of the template is compared to its expected count in each block. One
// result is returned per template, in the order templates.Aperiodic (or
// args.Templates, if supplied) lists them.
func NonOverlappingTemplateMatching(c *bitvec.Container, args sts.NonOverlappingTemplateArgs) ([]sts.TestResult, error) {
	m := args.TemplateLength
	if m < 2 || m > 21 {
		return nil, &sts.InvalidParameterError{Reason: "non-overlapping template: length must be in [2,21]"}
	}
	nBlocks := args.BlockCount
	if nBlocks < 1 || nBlocks > 99 {
		return nil, &sts.InvalidParameterError{Reason: "non-overlapping template: block count must be in [1,99]"}
	}

	tpls := args.Templates
	if tpls == nil {
		tpls = templates.Aperiodic(m)
	}

	n := c.BitLength()
	blockBits := n / nBlocks
	if blockBits <= m {
		return nil, &sts.InvalidParameterError{Reason: "non-overlapping template: block length too short for template"}
	}

	mu := float64(blockBits-m+1) / float64(uint64(1)<<uint(m))
	sigma2 := float64(blockBits) * (1.0/float64(uint64(1)<<uint(m)) - float64(2*m-1)/float64(uint64(1)<<uint(2*m)))

	results := make([]sts.TestResult, len(tpls))
	errs := make([]error, len(tpls))

	g := pool.Group()
	for ti, tpl := range tpls {
		ti, tpl := ti, tpl
		g.Go(func() error {
			counts := make([]int, nBlocks)
			for bi := 0; bi < nBlocks; bi++ {
				counts[bi] = countTemplateOccurrences(c, bi*blockBits, blockBits, tpl, m)
			}
			chiSq := 0.0
			for _, w := range counts {
				d := float64(w) - mu
				chiSq += d * d / sigma2
			}
			p, gerr := numerics.Igamc(float64(nBlocks)/2, chiSq/2)
			if gerr != nil {
				errs[ti] = &sts.GammaFailureError{Reason: gerr.Error()}
				return nil
			}
			if err := sts.CheckFloat(p); err != nil {
				errs[ti] = err
				return nil
			}
			results[ti] = sts.TestResult{PValue: p}
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// countTemplateOccurrences counts non-overlapping matches of the low-m
// bits of tpl within the window [base, base+length) of c, advancing past
// a match by m bits rather than 1.
func countTemplateOccurrences(c *bitvec.Container, base, length int, tpl uint32, m int) int {
	count := 0
	i := 0
	for i+m <= length {
		if windowEquals(c, base+i, tpl, m) {
			count++
			i += m
		} else {
			i++
		}
	}
	return count
}

func windowEquals(c *bitvec.Container, base int, tpl uint32, m int) bool {
	for k := 0; k < m; k++ {
		want := (tpl >> uint(m-1-k)) & 1
		if uint32(c.BitAt(base+k)) != want {
			return false
		}
	}
	return true
}
