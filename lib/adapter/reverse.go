// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package adapter

// ReverseIterator walks an adapter back-to-front.  It holds no
// storage of its own; it is a forward Iterator whose element is the
// one just before it, so that RBegin() wraps End() and REnd() wraps
// Begin().
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// ConstReverseIterator is the read-only counterpart of
// ReverseIterator.
type ConstReverseIterator[T any] struct {
	base ConstIterator[T]
}

func NewReverseIterator[T any](base Iterator[T]) ReverseIterator[T] {
	return ReverseIterator[T]{base: base}
}

func NewConstReverseIterator[T any](base ConstIterator[T]) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: base}
}

// Base returns the underlying forward iterator, which points one
// past the element that the ReverseIterator refers to.
func (it ReverseIterator[T]) Base() Iterator[T] { return it.base }

func (it ReverseIterator[T]) Const() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: it.base.Const()}
}

func (it ReverseIterator[T]) Get() T        { return it.base.Index(-1) }
func (it ReverseIterator[T]) Set(v T)       { it.base.Sub(1).Set(v) }
func (it ReverseIterator[T]) Ptr() *T       { return it.base.Sub(1).Ptr() }
func (it ReverseIterator[T]) Index(n int) T { return it.base.Index(-1 - n) }

func (it *ReverseIterator[T]) Inc() { it.base.Dec() }
func (it *ReverseIterator[T]) Dec() { it.base.Inc() }

func (it ReverseIterator[T]) Add(n int) ReverseIterator[T] { return ReverseIterator[T]{base: it.base.Sub(n)} }
func (it ReverseIterator[T]) Sub(n int) ReverseIterator[T] { return ReverseIterator[T]{base: it.base.Add(n)} }

func (it ReverseIterator[T]) Diff(o ReverseIterator[T]) int { return o.base.Diff(it.base) }

func (it ReverseIterator[T]) Equal(o ReverseIterator[T]) bool { return it.base.Equal(o.base) }
func (it ReverseIterator[T]) Compare(o ReverseIterator[T]) int {
	return o.base.Compare(it.base)
}

func (it ReverseIterator[T]) Less(o ReverseIterator[T]) bool      { return it.base.Greater(o.base) }
func (it ReverseIterator[T]) LessEq(o ReverseIterator[T]) bool    { return it.base.GreaterEq(o.base) }
func (it ReverseIterator[T]) Greater(o ReverseIterator[T]) bool   { return it.base.Less(o.base) }
func (it ReverseIterator[T]) GreaterEq(o ReverseIterator[T]) bool { return it.base.LessEq(o.base) }

func (it ConstReverseIterator[T]) Base() ConstIterator[T] { return it.base }

func (it ConstReverseIterator[T]) Get() T        { return it.base.Index(-1) }
func (it ConstReverseIterator[T]) Index(n int) T { return it.base.Index(-1 - n) }

func (it *ConstReverseIterator[T]) Inc() { it.base.Dec() }
func (it *ConstReverseIterator[T]) Dec() { it.base.Inc() }

func (it ConstReverseIterator[T]) Add(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: it.base.Sub(n)}
}

func (it ConstReverseIterator[T]) Sub(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: it.base.Add(n)}
}

func (it ConstReverseIterator[T]) Diff(o ConstReverseIterator[T]) int { return o.base.Diff(it.base) }

func (it ConstReverseIterator[T]) Equal(o ConstReverseIterator[T]) bool { return it.base.Equal(o.base) }
func (it ConstReverseIterator[T]) Compare(o ConstReverseIterator[T]) int {
	return o.base.Compare(it.base)
}

func (it ConstReverseIterator[T]) Less(o ConstReverseIterator[T]) bool      { return it.base.Greater(o.base) }
func (it ConstReverseIterator[T]) LessEq(o ConstReverseIterator[T]) bool    { return it.base.GreaterEq(o.base) }
func (it ConstReverseIterator[T]) Greater(o ConstReverseIterator[T]) bool   { return it.base.Less(o.base) }
func (it ConstReverseIterator[T]) GreaterEq(o ConstReverseIterator[T]) bool { return it.base.LessEq(o.base) }
