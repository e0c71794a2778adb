// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitvec

import "github.com/stretchr/testify/assert"
import "testing"

func TestNewFromASCIIRoundTrip(t *testing.T) {
	in := "1101000101110"
	c, err := NewFromASCII(in)
	assert.Nil(t, err)
	assert.Equal(t, len(in), c.BitLength())
	assert.Equal(t, in, c.ToASCII())
}

func TestNewFromASCIIInvalid(t *testing.T) {
	_, err := NewFromASCII("1102")
	assert.Equal(t, ErrInvalidEncoding, err)
}

func TestNewFromASCIILossy(t *testing.T) {
	c := NewFromASCIILossy("1 1 0 x 1")
	assert.Equal(t, "1101", c.ToASCII())
}

func TestNewFromBytesBitAt(t *testing.T) {
	c := NewFromBytes([]byte{0b10110000})
	want := []int{1, 0, 1, 1, 0, 0, 0, 0}
	for i, w := range want {
		assert.Equal(t, w, c.BitAt(i))
	}
}

func TestCountOnes(t *testing.T) {
	c, _ := NewFromASCII("110010111")
	assert.Equal(t, 6, c.CountOnes())
}

func TestCrop(t *testing.T) {
	c, _ := NewFromASCII("111111110000")
	c.Crop(5)
	assert.Equal(t, 5, c.BitLength())
	assert.Equal(t, "11111", c.ToASCII())
}

func TestBitAtCyclic(t *testing.T) {
	c, _ := NewFromASCII("101")
	assert.Equal(t, c.BitAt(0), c.BitAt(3))
	assert.Equal(t, c.BitAt(1), c.BitAt(4))
}

func TestNewFromCString(t *testing.T) {
	c, err := NewFromCString([]byte("1100\x00garbage"))
	assert.Nil(t, err)
	assert.Equal(t, "1100", c.ToASCII())
}

func TestBytesRoundTrip(t *testing.T) {
	orig := []byte{0xDE, 0xAD, 0xBE}
	c := NewFromBytes(orig)
	full, partial, hasPartial := c.Bytes()
	assert.Equal(t, orig, full)
	assert.False(t, hasPartial)
	assert.Equal(t, byte(0), partial)
}
