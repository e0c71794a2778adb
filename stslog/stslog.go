// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package stslog provides the injectable structured logger used by
// package runner to report per-test scheduling and completion events. It
// wraps zerolog; the zero value is disabled so that importing this
// module never forces log output on a caller that hasn't configured one.
package stslog

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu      sync.RWMutex
	current = zerolog.Nop()
)

// SetOutput redirects the package-wide logger to w, enabling it at level
// lvl. Passing a nil w disables logging again.
func SetOutput(w io.Writer, lvl zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		current = zerolog.Nop()
		return
	}
	current = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// UseConsole is a convenience wrapper around SetOutput for interactive
// use, writing human-readable lines to stderr.
func UseConsole(lvl zerolog.Level) {
	SetOutput(zerolog.ConsoleWriter{Out: os.Stderr}, lvl)
}

// Logger returns the currently configured logger. Safe for concurrent
// use; returns a disabled logger until SetOutput or UseConsole is called.
func Logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := current
	return &l
}
