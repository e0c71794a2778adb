// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitvec

import "github.com/dsnet/sts/pool"

// ForEachChunkParallel is the data-parallel counterpart of ForEachChunk:
// it splits the remaining chunks across the process-wide pool (see
// package pool) and calls fn concurrently for disjoint sub-ranges. fn
// must be safe to call from multiple goroutines; ordering across calls
// is not observable, so fn's combining step must be associative and
// commutative.
func (it *ChunkIter[T]) ForEachChunkParallel(fn func(startUnit int, chunk []T)) {
	total := it.Len()
	if total == 0 {
		return
	}
	workers := pool.WorkerCount()
	if workers > total {
		workers = total
	}
	if workers <= 1 {
		it.ForEachChunk(fn)
		return
	}

	perWorker := (total + workers - 1) / workers
	g := pool.Group()
	rest := it
	for rest.Len() > 0 {
		share, next := rest.Split(perWorker)
		rest = next
		g.Go(func() error {
			share.ForEachChunk(fn)
			return nil
		})
	}
	_ = g.Wait()
}
