// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package sts implements the NIST SP 800-22r1a battery of statistical
// randomness tests.
//
// Callers construct a bit sequence with package bitvec, then either call
// one of the fifteen test functions in package stattest directly or hand
// the sequence to a runner.Runner to dispatch many tests at once. Every
// test reports one or more P-values: the probability that a truly random
// source would have produced a statistic at least as extreme as the one
// observed. Nothing in this module decides pass/fail policy; callers
// compare the returned P-value against their own threshold (the
// conventional default is DefaultThreshold).
package sts

// DefaultThreshold is the conventional significance level used to decide
// whether a TestResult passed: a test passes at threshold α iff
// p_value >= α. Nothing in this package enforces it.
const DefaultThreshold = 0.01
