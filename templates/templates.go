// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package templates supplies the aperiodic bit-template sets consumed by
// the non-overlapping template matching test. The published NIST distribution ships these as
// fixed files, one per template length m in [2,21]; this package instead
// derives the same sets on demand from their defining property (no
// non-trivial periodic self-overlap), which is exact, needs no bundled
// binary asset, and is cheap to cache once per process for the m values a
// caller actually exercises.
package templates

import "sync"

var (
	cacheMu sync.Mutex
	cache   = map[int][]uint32{}
)

// Aperiodic returns every aperiodic pattern of length m, as the low m bits
// of a uint32, in ascending numeric order. A pattern is aperiodic when it
// cannot overlap a copy of itself shifted by 1..m-1 positions, i.e. no
// proper prefix of it equals its suffix of the same length.
// This is the same "template set" NIST's 800-22 reference template files
// enumerate for each m.
func Aperiodic(m int) []uint32 {
	if m < 2 || m > 21 {
		return nil
	}
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if t, ok := cache[m]; ok {
		return t
	}
	t := generate(m)
	cache[m] = t
	return t
}

func generate(m int) []uint32 {
	var out []uint32
	total := uint32(1) << uint(m)
	for v := uint32(0); v < total; v++ {
		if isAperiodic(v, m) {
			out = append(out, v)
		}
	}
	return out
}

// isAperiodic reports whether the m-bit pattern v has no self-overlap:
// for every k in [1, m), its first k bits differ from its last k bits.
func isAperiodic(v uint32, m int) bool {
	for k := 1; k < m; k++ {
		mask := uint32(1)<<uint(k) - 1
		if v>>uint(m-k) == v&mask {
			return false
		}
	}
	return true
}

func expand(unit uint32, p, m int) uint32 {
	var out uint32
	for filled := 0; filled < m; filled += p {
		out = out<<uint(p) | unit
	}
	return out
}
