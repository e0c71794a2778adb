// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sts

// TestResult is the outcome of a single P-value computation. PValue lies
// in [0,1] for normal outcomes. A pseudo-result (e.g. "too few cycles",
// "input too short") sets PValue to 0 and explains itself in Comment
// rather than returning an error: the test could still run, it just
// could not produce a meaningful statistic.
type TestResult struct {
	PValue  float64
	Comment string
}

// Passed reports whether the result clears the given significance
// threshold. The conventional default is DefaultThreshold; nothing in
// this package enforces any particular choice.
func (r TestResult) Passed(threshold float64) bool {
	return r.PValue >= threshold
}
