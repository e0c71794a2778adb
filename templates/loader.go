// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package templates

import (
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
)

// LoadXZ reads a template set from an externally supplied file: an
// xz-compressed flat sequence of ceil(m/8)-byte big-endian records (one
// per template, carrying the template left-aligned from the first byte's
// most-significant bit, trailing bits zero), with the record count
// derived from the decompressed size rather than stored explicitly. Each
// template is returned as the low m bits of a uint32. This lets a caller supply the original NIST-published
// template files directly instead of Aperiodic's on-the-fly derivation,
// e.g. to reproduce a result bit-exact against a prior run that pinned a
// specific file.
func LoadXZ(r io.Reader, m int) ([]uint32, error) {
	if m < 2 || m > 21 {
		return nil, fmt.Errorf("templates: length must be in [2,21], got %d", m)
	}
	zr, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("templates: opening xz stream: %w", err)
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("templates: decompressing: %w", err)
	}
	recLen := (m + 7) / 8
	if len(raw)%recLen != 0 {
		return nil, fmt.Errorf("templates: decompressed size %d is not a multiple of the %d-byte record length", len(raw), recLen)
	}
	out := make([]uint32, len(raw)/recLen)
	for i := range out {
		var v uint32
		for _, b := range raw[i*recLen : (i+1)*recLen] {
			v = v<<8 | uint32(b)
		}
		out[i] = v >> uint(recLen*8-m)
	}
	return out, nil
}
