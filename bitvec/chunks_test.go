// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitvec

import "sync"
import "github.com/stretchr/testify/assert"
import "testing"

func TestChunkIterByteCollect(t *testing.T) {
	c := NewFromBytes([]byte{1, 2, 3, 4, 5})
	it := NewChunkIter[byte](c, 2)
	got := it.Collect()
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, got)
}

func TestChunkIterLen(t *testing.T) {
	c := NewFromBytes(make([]byte, 10))
	it := NewChunkIter[byte](c, 3)
	assert.Equal(t, 4, it.Len()) // 10 bytes in chunks of 3: 3,3,3,1
}

func TestChunkIterSplit(t *testing.T) {
	c := NewFromBytes([]byte{1, 2, 3, 4, 5, 6})
	it := NewChunkIter[byte](c, 2)
	left, right := it.Split(1)
	lchunk, ok := left.Next()
	assert.True(t, ok)
	assert.Equal(t, []byte{1, 2}, lchunk)
	_, ok = left.Next()
	assert.False(t, ok)

	rest := right.Collect()
	assert.Equal(t, []byte{3, 4, 5, 6}, rest)
}

func TestChunkIterForEachChunkParallel(t *testing.T) {
	data := make([]byte, 400)
	for i := range data {
		data[i] = byte(i)
	}
	c := NewFromBytes(data)
	it := NewChunkIter[byte](c, 4)

	seen := make([]byte, len(data))
	var mu sync.Mutex
	it.ForEachChunkParallel(func(startUnit int, chunk []byte) {
		mu.Lock()
		copy(seen[startUnit:], chunk)
		mu.Unlock()
	})
	assert.Equal(t, data, seen)
}
