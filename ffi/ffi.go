// Copyright 2026, The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package ffi defines the stable contract a cgo (or other foreign
// language) shim would build against: opaque handles, fixed integer
// error codes, and a two-pass last-error string retrieval convention
//. It intentionally stops short of cgo bindings themselves
// — no //export functions, no C types — since this module's scope is the
// contract a shim consumes, not the shim.
package ffi

import (
	"sync"

	"github.com/dsnet/sts"
	"github.com/dsnet/sts/bitvec"
)

// ErrorCode is a stable, ABI-safe integer error classification. Values
// must never be renumbered once published.
type ErrorCode int32

const (
	OK ErrorCode = iota
	ErrCodeInvalidHandle
	ErrCodeInvalidParameter
	ErrCodeOverflow
	ErrCodeGammaFailure
	ErrCodeNaN
	ErrCodeInfinite
	ErrCodeUnknown
)

// ClassifyError maps a Go error from this module into one of the fixed
// ErrorCode values a foreign caller can branch on without seeing Go
// types.
func ClassifyError(err error) ErrorCode {
	if err == nil {
		return OK
	}
	switch {
	case isType[*sts.OverflowError](err):
		return ErrCodeOverflow
	case isType[*sts.InvalidParameterError](err):
		return ErrCodeInvalidParameter
	case isType[*sts.GammaFailureError](err):
		return ErrCodeGammaFailure
	case err == sts.ErrNaN:
		return ErrCodeNaN
	case err == sts.ErrInfinite:
		return ErrCodeInfinite
	default:
		return ErrCodeUnknown
	}
}

func isType[T error](err error) bool {
	_, ok := err.(T)
	return ok
}

// Handle is an opaque reference to a *bitvec.Container, valid only for
// the process that created it. A foreign caller never dereferences a
// Handle directly; it only ever passes it back into this package's
// functions.
type Handle uint64

var (
	mu      sync.Mutex
	nextID  Handle = 1
	handles        = map[Handle]*bitvec.Container{}
	lastErr        = map[Handle]string{}
)

// NewHandle registers c and returns an opaque Handle for it.
func NewHandle(c *bitvec.Container) Handle {
	mu.Lock()
	defer mu.Unlock()
	h := nextID
	nextID++
	handles[h] = c
	return h
}

// Lookup resolves a Handle back to its container, or reports
// ErrCodeInvalidHandle if h is unknown (e.g. already released).
func Lookup(h Handle) (*bitvec.Container, ErrorCode) {
	mu.Lock()
	defer mu.Unlock()
	c, ok := handles[h]
	if !ok {
		return nil, ErrCodeInvalidHandle
	}
	return c, OK
}

// Release discards a Handle. Safe to call on an already-released or
// unknown Handle.
func Release(h Handle) {
	mu.Lock()
	defer mu.Unlock()
	delete(handles, h)
	delete(lastErr, h)
}

// SetLastError records a human-readable error string against h, per the
// two-pass convention: a caller first gets an ErrorCode from an
// operation, then calls LastError(h) to retrieve the detail string if it
// wants one.
func SetLastError(h Handle, msg string) {
	mu.Lock()
	defer mu.Unlock()
	lastErr[h] = msg
}

// LastError returns the most recently recorded error string for h, or ""
// if none is set.
func LastError(h Handle) string {
	mu.Lock()
	defer mu.Unlock()
	return lastErr[h]
}
