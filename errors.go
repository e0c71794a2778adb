// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sts

import (
	"fmt"
	"math"
)

// Sentinel errors matching on with errors.Is. ErrNaN and ErrInfinite guard
// against floating-point corruption in a test's numerical intermediates;
// ErrGammaFailure wraps a failure to converge inside the incomplete gamma
// function.
var (
	ErrNaN          = errorString("result is not a number")
	ErrInfinite     = errorString("result is infinite")
	ErrGammaFailure = errorString("incomplete gamma function failed to converge")
)

type errorString string

func (e errorString) Error() string { return string(e) }

// OverflowError reports that a checked integer operation inside a test
// would have overflowed. Ctx names the operation, e.g. "ones counter".
type OverflowError struct {
	Ctx string
}

func (e *OverflowError) Error() string { return fmt.Sprintf("overflow in %s", e.Ctx) }

// InvalidParameterError reports that a caller-supplied TestArgs field (or
// a hard length precondition derived from one) is out of range for the
// input, e.g. Serial's m >= log2(n)-2.
type InvalidParameterError struct {
	Reason string
}

func (e *InvalidParameterError) Error() string { return "invalid parameter: " + e.Reason }

// GammaFailureError wraps the reason the incomplete gamma function could
// not produce a value, e.g. a non-convergent continued fraction.
type GammaFailureError struct {
	Reason string
}

func (e *GammaFailureError) Error() string { return "gamma failure: " + e.Reason }

func (e *GammaFailureError) Unwrap() error { return ErrGammaFailure }

// CheckFloat guards a floating-point intermediate against NaN and
// infinity, converting either into a sentinel error. Every test applies
// this immediately after each transcendental or large-sum computation.
func CheckFloat(v float64) error {
	switch {
	case math.IsNaN(v):
		return ErrNaN
	case math.IsInf(v, 0):
		return ErrInfinite
	default:
		return nil
	}
}
