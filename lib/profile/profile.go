// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package profile implements a uniform interface for getting
// profiling information from the Go runtime.
package profile

import (
	"io"
	"runtime/pprof"
	"runtime/trace"
)

// StopFunc finishes a profile; it is to be called on shutdown.
type StopFunc = func() error

// StartFunc begins writing a profile to w.
type StartFunc = func(w io.Writer) (StopFunc, error)

// CPU arranges to write a CPU profile to w.
func CPU(w io.Writer) (StopFunc, error) {
	if err := pprof.StartCPUProfile(w); err != nil {
		return nil, err
	}
	return func() error {
		pprof.StopCPUProfile()
		return nil
	}, nil
}

// Trace arranges to write an execution trace
// (https://pkg.go.dev/runtime/trace) to w.
func Trace(w io.Writer) (StopFunc, error) {
	if err := trace.Start(w); err != nil {
		return nil, err
	}
	return func() error {
		trace.Stop()
		return nil
	}, nil
}

// Named returns a StartFunc for a named runtime/pprof profile.  The
// profile is snapshotted when the StopFunc is called, not when it is
// started.  A name that no profile is registered under writes
// nothing.
func Named(name string) StartFunc {
	return func(w io.Writer) (StopFunc, error) {
		return func() error {
			if prof := pprof.Lookup(name); prof != nil {
				return prof.WriteTo(w, 0)
			}
			return nil
		}, nil
	}
}

// Kind describes one sort of profile that can be requested.
type Kind struct {
	Name  string
	Ext   string
	Start StartFunc
}

// Kinds lists every profile that the Go runtime can produce, in the
// order that flags for them are registered.
var Kinds = []Kind{
	{"cpu", "pprof", CPU},
	{"trace", "out", Trace},
	{"goroutine", "pprof", Named("goroutine")},
	{"threadcreate", "pprof", Named("threadcreate")},
	{"heap", "pprof", Named("heap")},
	{"allocs", "pprof", Named("allocs")},
	{"block", "pprof", Named("block")},
	{"mutex", "pprof", Named("mutex")},
}
