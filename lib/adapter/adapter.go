// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package adapter implements a uniform sequence-container interface
// over structurally different storage strategies.
//
// Adapter is the contract.  Array is a fixed-capacity
// implementation: its storage is allocated once, and an Array can
// never hold more than the capacity it was created with.  Vector is a
// growable implementation over a reallocating buffer.  Code written
// against Adapter (including every package-level algorithm in this
// package) works unmodified against either.
//
// Positions are expressed as Iterators, which are (owner, offset)
// pairs rather than pointers; see the Iterator documentation for
// what that does and does not guarantee.
//
// Adapters are not safe for concurrent use.
package adapter

// Adapter is the full operation set of a sequence container,
// independent of how its elements are stored.
//
// In every Adapter, the elements are the first Len() slots of the
// storage, and every slot past Len() (up to Cap()) holds the zero
// value of T.
type Adapter[T any] interface {
	Sequence[T]
	Reversible[T]

	// Full reports whether Len() == Cap().
	Full() bool

	// PushBack and PushFront append or prepend a single element.
	// An Array returns ErrOutOfCapacity if it is already full.
	PushBack(v T) error
	PushFront(v T) error

	// PopBack and PopFront remove and return the element at
	// either end.  Both return the zero value if the adapter is
	// empty.
	PopBack() T
	PopFront() T

	// At returns the element at index i.  It returns
	// ErrOutOfRange if i is not in [0, Cap()); note that it is
	// Cap(), not Len(), that bounds i, so At can be used to
	// observe cleared slots.
	At(i int) (T, error)
	// AtIter is At(it.Offset()).
	AtIter(it ConstIterator[T]) (T, error)
	// Set is the writing counterpart of At, with the same bounds.
	Set(i int, v T) error
	// Ref returns a reference to the storage slot at index i
	// without any logical bounds checking.  It is how Iterators
	// reach their owner.
	Ref(i int) *T

	// Front and Back return the first and last elements.  On an
	// empty adapter both return the (cleared) first slot.
	Front() T
	Back() T

	// SortedInsert appends v, then moves it left past every
	// element that compares greater than it, stopping at the
	// first element that does not.  If the adapter was sorted
	// before, it is still sorted after.
	SortedInsert(v T) (Iterator[T], error)

	// Resize sets Len() to n, filling any newly exposed slots with
	// the zero value (Resize) or v (ResizeFill).  It returns the
	// previous Len().
	Resize(n int) (int, error)
	ResizeFill(n int, v T) (int, error)

	Sort()
	StableSort()

	// Find returns the first element equal to v, or End().
	Find(v T) Iterator[T]
	// FindSorted returns the first element equal to v, or End(),
	// by binary search.  The result is unspecified if the adapter
	// is not sorted ascending.
	FindSorted(v T) Iterator[T]

	// Cmp is the ordering that the adapter sorts and searches
	// with; it returns <0, 0, or >0 like a subtraction a-b.
	Cmp(a, b T) int

	// Equal and Compare compare the elements of two adapters
	// lexicographically, using the receiver's Cmp.
	Equal(Adapter[T]) bool
	Compare(Adapter[T]) int

	// Slice returns a copy of the live elements.
	Slice() []T
}
