// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package pool owns the process-wide worker pool used by every
// parallel computation in this module, from bitvec's data-parallel
// chunk iterators up through the runner's test scheduling.
// The library never spawns goroutines outside of it.
//
// The pool is a lazily-materialised singleton with a single, one-shot
// mutator: SetWorkerCount. Calling it after the pool has already been
// used by a parallel computation returns ErrAlreadyMaterialized.
package pool

import (
	"errors"
	"sync"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sync/errgroup"
)

// ErrAlreadyMaterialized is returned by SetWorkerCount once any
// parallel computation has already caused the pool to materialise.
var ErrAlreadyMaterialized = errors.New("pool: worker count already fixed by first use")

var (
	mu            sync.Mutex
	workerCount   int
	materialized  bool
)

// SetWorkerCount fixes the pool's worker count. It succeeds only when
// called before the pool has been used by any parallel computation;
// afterwards it returns ErrAlreadyMaterialized.
func SetWorkerCount(n int) error {
	if n < 1 {
		n = 1
	}
	mu.Lock()
	defer mu.Unlock()
	if materialized {
		return ErrAlreadyMaterialized
	}
	workerCount = n
	return nil
}

// WorkerCount returns the pool's worker count, materialising the
// default (the number of physical CPUs) on first call if
// SetWorkerCount was never invoked.
func WorkerCount() int {
	mu.Lock()
	defer mu.Unlock()
	if workerCount == 0 {
		workerCount = cpuid.CPU.PhysicalCores
		if workerCount < 1 {
			workerCount = 1
		}
	}
	materialized = true
	return workerCount
}

// Group returns a bounded-concurrency errgroup.Group whose Go calls are
// scheduled against this process's fixed worker count. Callers block on
// Wait; from the caller's perspective, the whole computation is
// synchronous.
func Group() *errgroup.Group {
	g := &errgroup.Group{}
	g.SetLimit(WorkerCount())
	return g
}
