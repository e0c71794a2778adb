// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package runner schedules the fifteen statistical tests against one
// input, dispatching independent tests across the process-wide worker
// pool and collecting their results in request order (TestID order for
// RunAll) regardless of completion order.
package runner

import (
	"fmt"

	"github.com/dsnet/sts"
	"github.com/dsnet/sts/bitvec"
	"github.com/dsnet/sts/pool"
	"github.com/dsnet/sts/stattest"
	"github.com/dsnet/sts/stslog"
)

// ErrDuplicateTest is returned by RunSome when the same TestID appears
// more than once in the requested set; unlike a lazily-discovered
// duplicate, this is checked up front so a caller's mistake fails before
// any work is scheduled.
type ErrDuplicateTest struct {
	ID sts.TestID
}

func (e *ErrDuplicateTest) Error() string {
	return fmt.Sprintf("runner: duplicate test requested: %s", e.ID)
}

// Result is one test's (or, for multi-valued tests, one sub-statistic's)
// outcome. Label disambiguates sub-statistics of the same TestID, e.g.
// a template pattern or excursion state; it is empty for single-valued
// tests.
type Result struct {
	ID     sts.TestID
	Label  string
	Result sts.TestResult
	Err    error
}

// Runner binds one input container and its test configuration.
type Runner struct {
	c    *bitvec.Container
	args sts.TestArgs
}

// New constructs a Runner over c using args for every test that accepts
// configuration.
func New(c *bitvec.Container, args sts.TestArgs) *Runner {
	return &Runner{c: c, args: args}
}

// RunAll runs every one of the fifteen tests, in TestID order, and
// returns every Result (including, for multi-valued tests, one Result
// per sub-statistic) once all have completed.
func (r *Runner) RunAll() []Result {
	return r.RunSome(sts.AllTestIDs())
}

// RunSome runs exactly the requested tests, in the order given, each
// dispatched to the process-wide pool; it returns once every requested
// test has completed, with per-test and per-sub-statistic results
// flattened in request order. A repeated TestID is rejected up front via
// ErrDuplicateTest rather than silently re-run.
func (r *Runner) RunSome(ids []sts.TestID) []Result {
	seen := make(map[sts.TestID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return []Result{{ID: id, Err: &ErrDuplicateTest{ID: id}}}
		}
		seen[id] = true
	}

	log := stslog.Logger()
	perTest := make([][]Result, len(ids))
	g := pool.Group()
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			log.Debug().Stringer("test", id).Msg("dispatching test")
			perTest[i] = r.run(id)
			log.Debug().Stringer("test", id).Msg("test complete")
			return nil
		})
	}
	_ = g.Wait()

	var out []Result
	for _, rs := range perTest {
		out = append(out, rs...)
	}
	return out
}

// RunAllAuto runs every one of the fifteen tests against c using
// sts.DefaultTestArgs, silently skipping any test whose minimum
// recommended input length (sts.MinInputLength) is not met by c.
func RunAllAuto(c *bitvec.Container) []Result {
	return RunSomeAuto(c, sts.AllTestIDs())
}

// RunSomeAuto is RunAllAuto restricted to ids: it runs, against c, using
// sts.DefaultTestArgs, every requested test whose minimum recommended
// input length is met, and skips the rest rather than running them
// against an input too short to trust.
func RunSomeAuto(c *bitvec.Container, ids []sts.TestID) []Result {
	n := c.BitLength()
	eligible := make([]sts.TestID, 0, len(ids))
	for _, id := range ids {
		if n >= sts.MinInputLength(id) {
			eligible = append(eligible, id)
		}
	}
	return New(c, sts.DefaultTestArgs()).RunSome(eligible)
}

func (r *Runner) run(id sts.TestID) []Result {
	switch id {
	case sts.Frequency:
		res, err := stattest.Frequency(r.c)
		return []Result{{ID: id, Result: res, Err: err}}

	case sts.FrequencyBlock:
		res, err := stattest.FrequencyBlock(r.c, r.args.FrequencyBlock)
		return []Result{{ID: id, Result: res, Err: err}}

	case sts.Runs:
		res, err := stattest.Runs(r.c)
		return []Result{{ID: id, Result: res, Err: err}}

	case sts.LongestRunOfOnes:
		res, err := stattest.LongestRunOfOnes(r.c)
		return []Result{{ID: id, Result: res, Err: err}}

	case sts.BinaryMatrixRank:
		res, err := stattest.BinaryMatrixRank(r.c)
		return []Result{{ID: id, Result: res, Err: err}}

	case sts.SpectralDFT:
		res, err := stattest.SpectralDFT(r.c)
		return []Result{{ID: id, Result: res, Err: err}}

	case sts.NonOverlappingTemplateMatching:
		results, err := stattest.NonOverlappingTemplateMatching(r.c, r.args.NonOverlapping)
		if err != nil {
			return []Result{{ID: id, Err: err}}
		}
		out := make([]Result, len(results))
		for i, res := range results {
			out[i] = Result{ID: id, Label: fmt.Sprintf("template#%d", i), Result: res}
		}
		return out

	case sts.OverlappingTemplateMatching:
		res, err := stattest.OverlappingTemplateMatching(r.c, r.args.Overlapping)
		return []Result{{ID: id, Result: res, Err: err}}

	case sts.MaurerUniversal:
		res, err := stattest.MaurerUniversal(r.c)
		return []Result{{ID: id, Result: res, Err: err}}

	case sts.LinearComplexity:
		res, err := stattest.LinearComplexity(r.c, r.args.LinearComplexity)
		return []Result{{ID: id, Result: res, Err: err}}

	case sts.Serial:
		p1, p2, err := stattest.Serial(r.c, r.args.Serial)
		if err != nil {
			return []Result{{ID: id, Err: err}}
		}
		return []Result{
			{ID: id, Label: "psi1", Result: p1},
			{ID: id, Label: "psi2", Result: p2},
		}

	case sts.ApproximateEntropy:
		res, err := stattest.ApproximateEntropy(r.c, r.args.ApproximateEntropy)
		return []Result{{ID: id, Result: res, Err: err}}

	case sts.CumulativeSums:
		fwd, err := stattest.CumulativeSums(r.c, true)
		if err != nil {
			return []Result{{ID: id, Err: err}}
		}
		bwd, err := stattest.CumulativeSums(r.c, false)
		if err != nil {
			return []Result{{ID: id, Err: err}}
		}
		return []Result{
			{ID: id, Label: "forward", Result: fwd},
			{ID: id, Label: "backward", Result: bwd},
		}

	case sts.RandomExcursions:
		results, err := stattest.RandomExcursions(r.c)
		if err != nil {
			return []Result{{ID: id, Err: err}}
		}
		out := make([]Result, len(results))
		for i, res := range results {
			out[i] = Result{ID: id, Label: fmt.Sprintf("state#%d", i), Result: res}
		}
		return out

	case sts.RandomExcursionsVariant:
		results, err := stattest.RandomExcursionsVariant(r.c)
		if err != nil {
			return []Result{{ID: id, Err: err}}
		}
		out := make([]Result, len(results))
		for i, res := range results {
			out[i] = Result{ID: id, Label: fmt.Sprintf("state#%d", i), Result: res}
		}
		return out

	default:
		return []Result{{ID: id, Err: &sts.InvalidParameterError{Reason: fmt.Sprintf("runner: unknown test id %d", id)}}}
	}
}
