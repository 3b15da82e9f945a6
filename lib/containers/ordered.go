// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"golang.org/x/exp/constraints"
)

type _Ordered[T any] interface {
	Compare(T) int
}

// Ordered is implemented by types that know how to order themselves;
// a.Compare(b) returns <0, 0, or >0 like a subtraction a-b.
type Ordered[T _Ordered[T]] _Ordered[T]

// NativeOrdered adapts a type with native `<` ordering to Ordered.
type NativeOrdered[T constraints.Ordered] struct {
	Val T
}

// NativeCompare is a three-way comparison of built-in ordered types.
func NativeCompare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (a NativeOrdered[T]) Compare(b NativeOrdered[T]) int {
	return NativeCompare(a.Val, b.Val)
}

// OrderedCompare is the free-function form of a.Compare(b), for
// passing an Ordered type's ordering where a comparison function is
// wanted.
func OrderedCompare[T Ordered[T]](a, b T) int {
	return a.Compare(b)
}

// ReverseCompare returns a comparison function that orders the
// opposite way to cmp.
func ReverseCompare[T any](cmp func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return cmp(b, a)
	}
}

var _ Ordered[NativeOrdered[int]] = NativeOrdered[int]{}
