// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package adapter

import (
	"errors"
	"fmt"
)

// For every *OpError, `errors.Is(err, ErrOutOfCapacity)` or
// `errors.Is(err, ErrOutOfRange)` reports which kind of failure it
// was.
var (
	// ErrOutOfCapacity is returned when an operation would grow
	// an adapter past what its storage can hold.
	ErrOutOfCapacity = errors.New("out of capacity")
	// ErrOutOfRange is returned when an index, iterator, or span
	// lies outside of the valid region of an adapter.
	ErrOutOfRange = errors.New("out of range")
)

// OpError describes a failed adapter operation.  The adapter is
// unmodified when an OpError is returned.
type OpError struct {
	Op     string // "Array.InsertN", "Vector.EraseRange", ...
	Err    error  // ErrOutOfCapacity or ErrOutOfRange
	Detail string
}

func (e *OpError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("dataadapter: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("dataadapter: %s: %v: %s", e.Op, e.Err, e.Detail)
}

func (e *OpError) Unwrap() error { return e.Err }

func errRange(op, format string, args ...any) error {
	return &OpError{
		Op:     op,
		Err:    ErrOutOfRange,
		Detail: fmt.Sprintf(format, args...),
	}
}

func errCapacity(op string, want, capacity int) error {
	return &OpError{
		Op:     op,
		Err:    ErrOutOfCapacity,
		Detail: fmt.Sprintf("need %d slots but capacity is %d", want, capacity),
	}
}
