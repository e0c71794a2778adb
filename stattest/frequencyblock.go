// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stattest

import (
	"math/bits"

	"github.com/dsnet/sts"
	"github.com/dsnet/sts/bitvec"
	"github.com/dsnet/sts/numerics"
)

func init() {
	sts.RegisterMinLength(sts.FrequencyBlock, 100)
}

// FrequencyBlock is the frequency-within-a-block test.
// Its block length can be chosen automatically, given as a byte-aligned
// count, or given as an arbitrary bit count; the bit-count path buckets
// ones per-bit rather than per-byte-chunk.
func FrequencyBlock(c *bitvec.Container, args sts.FrequencyBlockArgs) (sts.TestResult, error) {
	n := c.BitLength()
	blockBits, err := resolveBlockBits(c, args)
	if err != nil {
		return sts.TestResult{}, err
	}
	numBlocks := n / blockBits
	if numBlocks == 0 {
		return sts.TestResult{PValue: 0, Comment: "Input too short for chosen block length"}, nil
	}

	ones := countOnesPerBlock(c, blockBits, numBlocks)

	chiSq := 0.0
	for _, k := range ones {
		pi := float64(k) / float64(blockBits)
		d := pi - 0.5
		chiSq += d * d
	}
	chiSq *= 4 * float64(blockBits)

	p, gerr := numerics.Igamc(float64(numBlocks)/2, chiSq/2)
	if gerr != nil {
		return sts.TestResult{}, &sts.GammaFailureError{Reason: gerr.Error()}
	}
	if err := sts.CheckFloat(p); err != nil {
		return sts.TestResult{}, err
	}
	return sts.TestResult{PValue: p}, nil
}

func resolveBlockBits(c *bitvec.Container, args sts.FrequencyBlockArgs) (int, error) {
	switch args.Mode {
	case sts.BlockModeBytes:
		if args.BlockLength <= 0 {
			return 0, &sts.InvalidParameterError{Reason: "frequency block: byte length must be positive"}
		}
		return args.BlockLength * 8, nil
	case sts.BlockModeBits:
		if args.BlockLength <= 0 {
			return 0, &sts.InvalidParameterError{Reason: "frequency block: bit length must be positive"}
		}
		return args.BlockLength, nil
	default: // BlockModeAuto
		n := c.BitLength()
		byteLen := n / 8
		mBytes := (byteLen + 99) / 100 // ceil(N/100)
		if mBytes < 3 {
			mBytes = 3
		}
		wordBytes := bitvec.WordBits / 8
		if byteLen >= 80*wordBytes {
			// Prefer word-aligned blocks.
			mWords := (mBytes + wordBytes - 1) / wordBytes
			if mWords < 1 {
				mWords = 1
			}
			return mWords * wordBytes * 8, nil
		}
		return mBytes * 8, nil
	}
}

// countOnesPerBlock tallies the number of set bits in each of numBlocks
// consecutive blockBits-wide blocks. When blockBits is a byte multiple,
// this walks the byte-chunk iterator; otherwise it falls back to a
// per-bit scan, since a parallel byte/word scan buys nothing at bit
// granularity and the per-bit path is simplest run sequentially.
func countOnesPerBlock(c *bitvec.Container, blockBits, numBlocks int) []int {
	counts := make([]int, numBlocks)
	if blockBits%8 == 0 {
		blockBytes := blockBits / 8
		it := bitvec.NewChunkIter[byte](c, blockBytes)
		it.ForEachChunkParallel(func(startUnit int, chunk []byte) {
			blockIdx := startUnit / blockBytes
			if blockIdx >= numBlocks {
				return
			}
			n := 0
			for _, b := range chunk {
				n += bits.OnesCount8(b)
			}
			counts[blockIdx] = n
		})
		return counts
	}
	for bi := 0; bi < numBlocks; bi++ {
		n := 0
		base := bi * blockBits
		for i := 0; i < blockBits; i++ {
			n += c.BitAt(base + i)
		}
		counts[bi] = n
	}
	return counts
}
