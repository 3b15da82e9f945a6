// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"math/bits"

	"git.lukeshu.com/go/typedsync"
)

// SlicePool is a typed pool of slices, bucketed by power-of-two
// capacity so that a Get is satisfied by any pooled slice that is big
// enough.
//
// Slices are zeroed when they are Put, so a slice returned by Get
// always holds only zero values (up to its capacity).
//
// The zero SlicePool is ready to use.
type SlicePool[T any] struct {
	buckets [bits.UintSize]typedsync.Pool[[]T]
}

// getBucket returns the smallest k such that 1<<k >= size.
func getBucket(size int) int {
	return bits.Len(uint(size - 1))
}

// putBucket returns the largest k such that 1<<k <= capacity.
func putBucket(capacity int) int {
	return bits.Len(uint(capacity)) - 1
}

// Get returns a zeroed slice with len(ret) == size.  The capacity of
// the returned slice may be larger than size.
func (p *SlicePool[T]) Get(size int) []T {
	if size <= 0 {
		return nil
	}
	b := getBucket(size)
	if ret, ok := p.buckets[b].Get(); ok {
		return ret[:size]
	}
	if b >= bits.UintSize-2 {
		return make([]T, size)
	}
	return make([]T, size, 1<<b)
}

// Put zeroes the slice (up to its capacity) and returns it to the
// pool.  The caller must not use the slice after calling Put.
func (p *SlicePool[T]) Put(slice []T) {
	if cap(slice) == 0 {
		return
	}
	slice = slice[:cap(slice)]
	var zero T
	for i := range slice {
		slice[i] = zero
	}
	p.buckets[putBucket(cap(slice))].Put(slice)
}
