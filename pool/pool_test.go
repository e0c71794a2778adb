// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package pool

import "sync/atomic"
import "github.com/stretchr/testify/assert"
import "testing"

func TestGroupRespectsLimit(t *testing.T) {
	g := Group()
	var concurrent, maxConcurrent int32
	limit := int32(WorkerCount())

	for i := 0; i < 64; i++ {
		g.Go(func() error {
			n := atomic.AddInt32(&concurrent, 1)
			for {
				m := atomic.LoadInt32(&maxConcurrent)
				if n <= m || atomic.CompareAndSwapInt32(&maxConcurrent, m, n) {
					break
				}
			}
			atomic.AddInt32(&concurrent, -1)
			return nil
		})
	}
	assert.Nil(t, g.Wait())
	assert.LessOrEqual(t, maxConcurrent, limit)
}
