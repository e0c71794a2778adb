// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sts

// TestID names one of the fifteen tests in the battery. Ordinals are
// stable: they index the per-test minimum-length table and are stable
// across the FFI boundary, so existing values must never be renumbered.
type TestID uint8

const (
	Frequency TestID = iota
	FrequencyBlock
	Runs
	LongestRunOfOnes
	BinaryMatrixRank
	SpectralDFT
	NonOverlappingTemplateMatching
	OverlappingTemplateMatching
	MaurerUniversal
	LinearComplexity
	Serial
	ApproximateEntropy
	CumulativeSums
	RandomExcursions
	RandomExcursionsVariant

	numTests // sentinel, not a valid TestID
)

var testNames = [numTests]string{
	Frequency:                       "Frequency",
	FrequencyBlock:                  "FrequencyBlock",
	Runs:                            "Runs",
	LongestRunOfOnes:                "LongestRunOfOnes",
	BinaryMatrixRank:                "BinaryMatrixRank",
	SpectralDFT:                     "SpectralDFT",
	NonOverlappingTemplateMatching:  "NonOverlappingTemplateMatching",
	OverlappingTemplateMatching:     "OverlappingTemplateMatching",
	MaurerUniversal:                 "MaurerUniversal",
	LinearComplexity:                "LinearComplexity",
	Serial:                          "Serial",
	ApproximateEntropy:              "ApproximateEntropy",
	CumulativeSums:                  "CumulativeSums",
	RandomExcursions:                "RandomExcursions",
	RandomExcursionsVariant:         "RandomExcursionsVariant",
}

func (id TestID) String() string {
	if id >= numTests {
		return "TestID(invalid)"
	}
	return testNames[id]
}

// Valid reports whether id is one of the fifteen closed-enumeration
// values.
func (id TestID) Valid() bool { return id < numTests }

// minLengths is indexed by TestID ordinal.
// Values are filled in by each stattest file's init via RegisterMinLength,
// so the single source of truth for a test's minimum length lives beside
// the test itself.
var minLengths [numTests]int

// RegisterMinLength records the minimum recommended input length, in
// bits, for a test. Called from package stattest's init functions; not
// intended for use outside this module.
func RegisterMinLength(id TestID, bits int) {
	minLengths[id] = bits
}

// MinInputLength returns the minimum recommended input length, in bits,
// for the given test.
func MinInputLength(id TestID) int {
	return minLengths[id]
}

// AllTestIDs returns the fifteen TestIDs in canonical ordinal order.
func AllTestIDs() []TestID {
	ids := make([]TestID, numTests)
	for i := range ids {
		ids[i] = TestID(i)
	}
	return ids
}
