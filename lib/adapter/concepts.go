// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package adapter

// Container is the minimal set of operations shared by every
// storage strategy.
type Container[T any] interface {
	Begin() Iterator[T]
	End() Iterator[T]
	CBegin() ConstIterator[T]
	CEnd() ConstIterator[T]

	Len() int
	Cap() int
	// MaxLen is the largest Len() that the container could ever
	// reach.
	MaxLen() int
	Empty() bool

	// Swap exchanges the contents of two containers.
	Swap(Adapter[T]) error
}

// Sequence is a Container whose elements are kept in caller-chosen
// positions.
type Sequence[T any] interface {
	Container[T]

	Insert(pos Iterator[T], v T) (Iterator[T], error)
	InsertN(pos Iterator[T], n int, v T) (Iterator[T], error)
	InsertRange(pos Iterator[T], first, last ConstIterator[T]) (Iterator[T], error)
	InsertSlice(pos Iterator[T], vals []T) (Iterator[T], error)

	Erase(pos Iterator[T]) (Iterator[T], error)
	EraseRange(first, last Iterator[T]) (Iterator[T], error)

	Clear()
	Assign(first, last ConstIterator[T]) error
	AssignN(n int, v T) error
	AssignSlice(vals []T) error
}

// Reversible is a Container that can also be walked back-to-front.
type Reversible[T any] interface {
	Container[T]

	RBegin() ReverseIterator[T]
	REnd() ReverseIterator[T]
	CRBegin() ConstReverseIterator[T]
	CREnd() ConstReverseIterator[T]
}
