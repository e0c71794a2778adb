// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"
	"encoding/hex"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	reBin = regexp.MustCompile("^[01]{1,64}$")
	reDec = regexp.MustCompile("^D[0-9]+:[0-9]+$")
	reHex = regexp.MustCompile("^H[0-9]+:[0-9a-fA-F]{1,16}$")
	reRaw = regexp.MustCompile("^X:[0-9a-fA-F]+$")
	reQnt = regexp.MustCompile("[*][0-9]+$")
)

// DecodeBitGen decodes a BitGen-formatted string into a sequence of bits,
// packed MSB-first — the only bit order bitvec.Container uses, so unlike
// the format this is descended from there is no little/big-endian mode
// to select.
//
// The format consists of whitespace-separated tokens; '#' begins a
// comment running to end of line.
//
//   - A token matching "[01]{1,64}" is a literal bit-string, written
//     left-to-right.
//   - A token matching "D[0-9]+:[0-9]+" or "H[0-9]+:[0-9a-fA-F]{1,16}" is
//     a decimal or hexadecimal value; the first number gives its bit
//     width (0-64), written MSB-first.
//   - A token matching "X:[0-9a-fA-F]+" is literal hexadecimal bytes,
//     which must land on a byte boundary.
//   - Any token may be suffixed with "*N" to repeat it N times.
//
// Example:
//
//	110 D4:9 H8:ff*2
func DecodeBitGen(str string) ([]byte, error) {
	var toks []string
	for _, s := range strings.Split(str, "\n") {
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		for _, t := range strings.Split(s, " ") {
			t = strings.TrimSpace(t)
			if len(t) > 0 {
				toks = append(toks, t)
			}
		}
	}

	var bw bitBuffer
	for _, t := range toks {
		rep := 1
		if reQnt.MatchString(t) {
			i := strings.LastIndexByte(t, '*')
			tt, tn := t[:i], t[i+1:]
			n, err := strconv.Atoi(tn)
			if err != nil {
				return nil, errors.New("testutil: invalid quantified token: " + t)
			}
			t, rep = tt, n
		}

		switch {
		case reBin.MatchString(t):
			var v uint64
			for _, b := range t {
				v <<= 1
				v |= uint64(b - '0')
			}
			for i := 0; i < rep; i++ {
				bw.WriteBits(v, uint(len(t)))
			}
		case reDec.MatchString(t) || reHex.MatchString(t):
			i := strings.IndexByte(t, ':')
			tb, tn, tv := t[0], t[1:i], t[i+1:]
			base := 10
			if tb == 'H' {
				base = 16
			}
			n, err1 := strconv.Atoi(tn)
			v, err2 := strconv.ParseUint(tv, base, 64)
			if err1 != nil || err2 != nil || n > 64 {
				return nil, errors.New("testutil: invalid numeric token: " + t)
			}
			if n < 64 && v&((1<<uint(n))-1) != v {
				return nil, errors.New("testutil: integer overflow on token: " + t)
			}
			for i := 0; i < rep; i++ {
				bw.WriteBits(v, uint(n))
			}
		case reRaw.MatchString(t):
			tx := t[2:]
			b, err := hex.DecodeString(tx)
			if err != nil {
				return nil, errors.New("testutil: invalid raw bytes token: " + t)
			}
			b = bytes.Repeat(b, rep)
			if err := bw.WriteBytes(b); err != nil {
				return nil, err
			}
		default:
			return nil, errors.New("testutil: invalid token: " + t)
		}
	}
	return bw.Bytes(), nil
}

// bitBuffer is a minimal MSB-first bit accumulator.
type bitBuffer struct {
	b []byte
	n uint8 // bits used in the final byte
}

func (b *bitBuffer) WriteBytes(buf []byte) error {
	if b.n != 0 {
		return errors.New("testutil: unaligned write")
	}
	b.b = append(b.b, buf...)
	return nil
}

func (b *bitBuffer) WriteBits(v uint64, n uint) {
	for i := n; i > 0; i-- {
		if b.n == 0 {
			b.b = append(b.b, 0)
		}
		bit := byte((v >> (i - 1)) & 1)
		b.b[len(b.b)-1] |= bit << (7 - b.n)
		b.n = (b.n + 1) % 8
	}
}

func (b *bitBuffer) Bytes() []byte {
	return b.b
}
