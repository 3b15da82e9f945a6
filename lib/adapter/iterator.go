// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package adapter

import (
	"git.lukeshu.com/go/dataadapter/lib/containers"
)

// Iterator is a random-access cursor into an Adapter.
//
// An Iterator is a logical handle, not a pointer: it is the pair
// (owner, offset), and every access goes back through the owner.  It
// therefore survives mutations of the owner (including reallocation
// of a Vector's storage), but it is never validated.  After a
// mutation that shifts elements, the offset simply denotes whatever
// element is now at that position.  Dereferencing an Iterator whose
// offset is outside of [0, owner.Len()) is undefined: it may observe
// a cleared slot, or it may panic.  Bounds checking is done only by
// the adapter methods that take an explicit index (At, Set).
//
// The zero Iterator is bound to no adapter, and compares unequal to
// every bound Iterator.
type Iterator[T any] struct {
	owner Adapter[T]
	off   int
}

// ConstIterator is the read-only counterpart of Iterator.  An
// Iterator converts to a ConstIterator with .Const(); there is no
// conversion in the other direction.
type ConstIterator[T any] struct {
	owner Adapter[T]
	off   int
}

var (
	_ containers.Ordered[Iterator[int]]      = Iterator[int]{}
	_ containers.Ordered[ConstIterator[int]] = ConstIterator[int]{}
)

// NewIterator returns an Iterator bound to owner at the given offset.
func NewIterator[T any](owner Adapter[T], off int) Iterator[T] {
	return Iterator[T]{owner: owner, off: off}
}

// NewConstIterator returns a ConstIterator bound to owner at the
// given offset.
func NewConstIterator[T any](owner Adapter[T], off int) ConstIterator[T] {
	return ConstIterator[T]{owner: owner, off: off}
}

func (it Iterator[T]) Owner() Adapter[T] { return it.owner }
func (it Iterator[T]) Offset() int       { return it.off }

// Const converts a mutable Iterator to a ConstIterator over the same
// (owner, offset).
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{owner: it.owner, off: it.off}
}

// Get returns a copy of the element the Iterator points at (`*it`).
func (it Iterator[T]) Get() T { return *it.owner.Ref(it.off) }

// Set overwrites the element the Iterator points at (`*it = v`).
func (it Iterator[T]) Set(v T) { *it.owner.Ref(it.off) = v }

// Ptr returns a read-write reference to the element the Iterator
// points at (`it->`).  The pointer is only good until the owner's
// storage is reallocated.
func (it Iterator[T]) Ptr() *T { return it.owner.Ref(it.off) }

// Index returns the element n positions away (`it[n]`).
func (it Iterator[T]) Index(n int) T { return *it.owner.Ref(it.off + n) }

func (it *Iterator[T]) Inc() { it.off++ }
func (it *Iterator[T]) Dec() { it.off-- }

func (it Iterator[T]) Add(n int) Iterator[T] { it.off += n; return it }
func (it Iterator[T]) Sub(n int) Iterator[T] { it.off -= n; return it }

// Diff returns the signed distance `it - o`.
func (it Iterator[T]) Diff(o Iterator[T]) int { return it.off - o.off }

// Equal reports whether both iterators are bound to the same adapter
// at the same offset.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.owner == o.owner && it.off == o.off
}

// Compare orders iterators by offset alone; the owners are not
// consulted, so ordering iterators of different adapters is
// meaningless.
func (it Iterator[T]) Compare(o Iterator[T]) int {
	return containers.NativeCompare(it.off, o.off)
}

func (it Iterator[T]) Less(o Iterator[T]) bool      { return it.off < o.off }
func (it Iterator[T]) LessEq(o Iterator[T]) bool    { return it.off <= o.off }
func (it Iterator[T]) Greater(o Iterator[T]) bool   { return it.off > o.off }
func (it Iterator[T]) GreaterEq(o Iterator[T]) bool { return it.off >= o.off }

func (it ConstIterator[T]) Owner() Adapter[T] { return it.owner }
func (it ConstIterator[T]) Offset() int       { return it.off }

// Get returns a copy of the element the ConstIterator points at.
func (it ConstIterator[T]) Get() T { return *it.owner.Ref(it.off) }

// Index returns the element n positions away.
func (it ConstIterator[T]) Index(n int) T { return *it.owner.Ref(it.off + n) }

func (it *ConstIterator[T]) Inc() { it.off++ }
func (it *ConstIterator[T]) Dec() { it.off-- }

func (it ConstIterator[T]) Add(n int) ConstIterator[T] { it.off += n; return it }
func (it ConstIterator[T]) Sub(n int) ConstIterator[T] { it.off -= n; return it }

func (it ConstIterator[T]) Diff(o ConstIterator[T]) int { return it.off - o.off }

func (it ConstIterator[T]) Equal(o ConstIterator[T]) bool {
	return it.owner == o.owner && it.off == o.off
}

func (it ConstIterator[T]) Compare(o ConstIterator[T]) int {
	return containers.NativeCompare(it.off, o.off)
}

func (it ConstIterator[T]) Less(o ConstIterator[T]) bool      { return it.off < o.off }
func (it ConstIterator[T]) LessEq(o ConstIterator[T]) bool    { return it.off <= o.off }
func (it ConstIterator[T]) Greater(o ConstIterator[T]) bool   { return it.off > o.off }
func (it ConstIterator[T]) GreaterEq(o ConstIterator[T]) bool { return it.off >= o.off }
