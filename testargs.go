// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sts

// TestArgs aggregates the per-test configuration records for every test
// that accepts one. Constructing one via DefaultTestArgs and only
// overriding the fields you care about is the intended usage.
//
//	args := sts.DefaultTestArgs()
//	args.Serial.BlockLength = 12
type TestArgs struct {
	FrequencyBlock      FrequencyBlockArgs
	NonOverlapping      NonOverlappingTemplateArgs
	Overlapping         OverlappingTemplateArgs
	LinearComplexity    LinearComplexityArgs
	Serial              SerialArgs
	ApproximateEntropy  ApproximateEntropyArgs
}

// DefaultTestArgs returns the TestArgs populated with the recommended
// default configuration for each test.
func DefaultTestArgs() TestArgs {
	return TestArgs{
		FrequencyBlock:     FrequencyBlockArgs{Mode: BlockModeAuto},
		NonOverlapping:     NonOverlappingTemplateArgs{TemplateLength: 9, BlockCount: 8},
		Overlapping:        OverlappingTemplateArgs{TemplateLength: 9, BlockLength: 1032, DegreesOfFreedom: 6},
		LinearComplexity:   LinearComplexityArgs{Auto: true},
		Serial:             SerialArgs{BlockLength: 16},
		ApproximateEntropy: ApproximateEntropyArgs{BlockLength: 10},
	}
}

// BlockMode selects how FrequencyBlock partitions its input.
type BlockMode uint8

const (
	// BlockModeAuto chooses M = max(ceil(N/100), 3) bytes, preferring
	// word-aligned blocks when byte_len >= 80*word_bytes.
	BlockModeAuto BlockMode = iota
	// BlockModeBytes uses a byte-aligned block length of BlockLength
	// bytes.
	BlockModeBytes
	// BlockModeBits uses an arbitrary bit-count block length of
	// BlockLength bits. A length that is not a byte multiple is counted
	// by a sequential per-bit scan; that path is neither parallel nor
	// built on atomic counters.
	BlockModeBits
)

// FrequencyBlockArgs configures stattest.FrequencyBlock.
type FrequencyBlockArgs struct {
	Mode BlockMode
	// BlockLength is interpreted per Mode; ignored when Mode is
	// BlockModeAuto.
	BlockLength int
}

// NonOverlappingTemplateArgs configures
// stattest.NonOverlappingTemplateMatching.
type NonOverlappingTemplateArgs struct {
	// TemplateLength is m, in [2,21]. Default 9.
	TemplateLength int
	// BlockCount is N, in [1,99]. Default 8.
	BlockCount int
	// Templates, when non-nil, overrides the built-in template set for
	// TemplateLength with caller-supplied m-bit patterns (each given as
	// the low TemplateLength bits of a uint32, MSB-first).
	Templates []uint32
}

// OverlappingTemplateArgs configures
// stattest.OverlappingTemplateMatching.
type OverlappingTemplateArgs struct {
	// TemplateLength is m, in [2,21]. Default 9.
	TemplateLength int
	// BlockLength is M. Default 1032.
	BlockLength int
	// DegreesOfFreedom is K. Default 6.
	DegreesOfFreedom int
	// UseLegacyPi forces the NIST-reference closed-form π values instead
	// of the corrected Hamano–Kaneko recurrence. Only bit-exact for
	// TemplateLength in {9,10} at BlockLength 1032.
	UseLegacyPi bool
}

// LinearComplexityArgs configures stattest.LinearComplexity.
type LinearComplexityArgs struct {
	// Auto chooses M automatically (500 <= M <= 5000, n/M >= 200) when
	// true; BlockLength is ignored in that case.
	Auto        bool
	BlockLength int
}

// SerialArgs configures stattest.Serial.
type SerialArgs struct {
	// BlockLength is m, default 16, checked at run time against
	// m < log2(n)-2.
	BlockLength int
}

// ApproximateEntropyArgs configures stattest.ApproximateEntropy.
type ApproximateEntropyArgs struct {
	// BlockLength is m, default 10, checked at run time against
	// m < log2(n)-5.
	BlockLength int
}
