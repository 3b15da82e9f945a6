// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package adapter

import (
	"fmt"

	"golang.org/x/exp/constraints"
	expslices "golang.org/x/exp/slices"

	"git.lukeshu.com/go/dataadapter/lib/containers"
	"git.lukeshu.com/go/dataadapter/lib/slices"
)

// Array is an Adapter over a fixed-capacity buffer.  The buffer is
// allocated when the Array is created and is never reallocated; any
// operation that would need more than Cap() slots fails with
// ErrOutOfCapacity and leaves the Array unmodified.
//
// The zero Array has a capacity of 0 and no ordering; use one of the
// NewArray functions.
type Array[T any] struct {
	cmp  func(a, b T) int
	data []T // len(data) is the capacity
	n    int
}

var (
	_ Adapter[int]    = (*Array[int])(nil)
	_ Container[int]  = (*Array[int])(nil)
	_ Sequence[int]   = (*Array[int])(nil)
	_ Reversible[int] = (*Array[int])(nil)
)

// NewArray returns an empty Array with the given capacity, ordered
// by the native `<` operator.
func NewArray[T constraints.Ordered](capacity int) *Array[T] {
	return NewArrayFunc(capacity, containers.NativeCompare[T])
}

// NewArrayOrdered returns an empty Array with the given capacity,
// ordered by T's Compare method.
func NewArrayOrdered[T containers.Ordered[T]](capacity int) *Array[T] {
	return NewArrayFunc(capacity, containers.OrderedCompare[T])
}

// NewArrayFunc returns an empty Array with the given capacity,
// ordered by cmp.
func NewArrayFunc[T any](capacity int, cmp func(a, b T) int) *Array[T] {
	if capacity < 0 {
		panic(fmt.Errorf("should not happen: adapter.NewArray: negative capacity %d", capacity))
	}
	if cmp == nil {
		panic(fmt.Errorf("should not happen: adapter.NewArray: nil cmp"))
	}
	return &Array[T]{
		cmp:  cmp,
		data: make([]T, capacity),
	}
}

// NewArrayFill returns an Array with the given capacity that holds n
// copies of v.
func NewArrayFill[T constraints.Ordered](capacity, n int, v T) (*Array[T], error) {
	ret := NewArray[T](capacity)
	if err := ret.assignN("NewArrayFill", n, v); err != nil {
		return nil, err
	}
	return ret, nil
}

// NewArrayFrom returns a full Array whose capacity is len(buf) and
// whose contents are a copy of buf.
func NewArrayFrom[T constraints.Ordered](buf []T) *Array[T] {
	ret := NewArray[T](len(buf))
	ret.n = copy(ret.data, buf)
	return ret
}

// Clone returns an Array with the same capacity, ordering, and
// contents as a, but with its own storage.
func (a *Array[T]) Clone() *Array[T] {
	ret := &Array[T]{
		cmp:  a.cmp,
		data: make([]T, len(a.data)),
		n:    a.n,
	}
	copy(ret.data, a.data[:a.n])
	return ret
}

// CopyFrom replaces the contents of a with the contents of src.
func (a *Array[T]) CopyFrom(src Adapter[T]) error {
	if src == Adapter[T](a) {
		return nil
	}
	return a.assignSlice("Array.CopyFrom", src.Slice())
}

func (a *Array[T]) Len() int       { return a.n }
func (a *Array[T]) Cap() int       { return len(a.data) }
func (a *Array[T]) MaxLen() int    { return len(a.data) }
func (a *Array[T]) Empty() bool    { return a.n == 0 }
func (a *Array[T]) Full() bool     { return a.n == len(a.data) }
func (a *Array[T]) Cmp(x, y T) int { return a.cmp(x, y) }

func (a *Array[T]) Ref(i int) *T { return &a.data[i] }

func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= len(a.data) {
		var zero T
		return zero, errRange("Array.At", "index %d not in [0, %d)", i, len(a.data))
	}
	return a.data[i], nil
}

func (a *Array[T]) AtIter(it ConstIterator[T]) (T, error) {
	return a.At(it.off)
}

func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= len(a.data) {
		return errRange("Array.Set", "index %d not in [0, %d)", i, len(a.data))
	}
	a.data[i] = v
	return nil
}

func (a *Array[T]) Front() T {
	if len(a.data) == 0 {
		var zero T
		return zero
	}
	return a.data[0]
}

func (a *Array[T]) Back() T {
	if a.n == 0 {
		return a.Front()
	}
	return a.data[a.n-1]
}

func (a *Array[T]) PushBack(v T) error {
	if a.Full() {
		return errCapacity("Array.PushBack", a.n+1, len(a.data))
	}
	a.data[a.n] = v
	a.n++
	return nil
}

func (a *Array[T]) PushFront(v T) error {
	if a.Full() {
		return errCapacity("Array.PushFront", a.n+1, len(a.data))
	}
	copy(a.data[1:a.n+1], a.data[:a.n])
	a.data[0] = v
	a.n++
	return nil
}

func (a *Array[T]) PopBack() T {
	var zero T
	if a.n == 0 {
		return zero
	}
	a.n--
	ret := a.data[a.n]
	a.data[a.n] = zero
	return ret
}

func (a *Array[T]) PopFront() T {
	var zero T
	if a.n == 0 {
		return zero
	}
	ret := a.data[0]
	copy(a.data[:a.n-1], a.data[1:a.n])
	a.n--
	a.data[a.n] = zero
	return ret
}

func (a *Array[T]) checkPos(op string, pos Iterator[T]) error {
	if pos.owner != Adapter[T](a) {
		return errRange(op, "iterator is not bound to this Array")
	}
	if pos.off < 0 || pos.off > a.n {
		return errRange(op, "position %d not in [0, %d]", pos.off, a.n)
	}
	return nil
}

// openGap shifts [pos, Len()) right by n slots, leaving [pos, pos+n)
// holding stale values for the caller to overwrite.
func (a *Array[T]) openGap(op string, pos Iterator[T], n int) error {
	if err := a.checkPos(op, pos); err != nil {
		return err
	}
	if n < 0 {
		return errRange(op, "negative count %d", n)
	}
	if a.n+n > len(a.data) {
		return errCapacity(op, a.n+n, len(a.data))
	}
	copy(a.data[pos.off+n:a.n+n], a.data[pos.off:a.n])
	a.n += n
	return nil
}

func (a *Array[T]) insertN(op string, pos Iterator[T], n int, v T) (Iterator[T], error) {
	if err := a.openGap(op, pos, n); err != nil {
		return Iterator[T]{}, err
	}
	if n == 0 {
		return a.End(), nil
	}
	slices.Fill(a.data[pos.off:pos.off+n], v)
	return pos, nil
}

func (a *Array[T]) insertSlice(op string, pos Iterator[T], vals []T) (Iterator[T], error) {
	if err := a.openGap(op, pos, len(vals)); err != nil {
		return Iterator[T]{}, err
	}
	if len(vals) == 0 {
		return a.End(), nil
	}
	copy(a.data[pos.off:], vals)
	return pos, nil
}

// Insert inserts v before pos, and returns an Iterator to the newly
// inserted element.
func (a *Array[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	return a.insertN("Array.Insert", pos, 1, v)
}

// InsertN inserts n copies of v before pos, and returns an Iterator
// to the first of them (or End() if n is 0).
func (a *Array[T]) InsertN(pos Iterator[T], n int, v T) (Iterator[T], error) {
	return a.insertN("Array.InsertN", pos, n, v)
}

// InsertRange inserts the elements of [first, last) before pos, and
// returns an Iterator to the first of them (or End() if the range is
// empty).  The range may belong to a itself.
func (a *Array[T]) InsertRange(pos Iterator[T], first, last ConstIterator[T]) (Iterator[T], error) {
	if err := checkSpan("Array.InsertRange", first, last); err != nil {
		return Iterator[T]{}, err
	}
	return a.insertSlice("Array.InsertRange", pos, Collect(first, last))
}

func (a *Array[T]) InsertSlice(pos Iterator[T], vals []T) (Iterator[T], error) {
	return a.insertSlice("Array.InsertSlice", pos, vals)
}

func (a *Array[T]) eraseRange(op string, first, last Iterator[T]) (Iterator[T], error) {
	switch {
	case first.owner != Adapter[T](a) || last.owner != Adapter[T](a):
		return Iterator[T]{}, errRange(op, "iterator is not bound to this Array")
	case first.off < 0 || last.off > a.n || first.off > last.off:
		return Iterator[T]{}, errRange(op, "span [%d, %d) not in [0, %d)", first.off, last.off, a.n)
	}
	copy(a.data[first.off:], a.data[last.off:a.n])
	newLen := a.n - (last.off - first.off)
	slices.Zero(a.data[newLen:a.n])
	a.n = newLen
	return first, nil
}

// Erase removes the element at pos, and returns an Iterator to the
// element that followed it.
func (a *Array[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	return a.eraseRange("Array.Erase", pos, pos.Add(1))
}

// EraseRange removes the elements of [first, last), and returns an
// Iterator at first's offset.
func (a *Array[T]) EraseRange(first, last Iterator[T]) (Iterator[T], error) {
	return a.eraseRange("Array.EraseRange", first, last)
}

func (a *Array[T]) SortedInsert(v T) (Iterator[T], error) {
	if a.Full() {
		return Iterator[T]{}, errCapacity("Array.SortedInsert", a.n+1, len(a.data))
	}
	a.data[a.n] = v
	a.n++
	i := a.n - 1
	for ; i > 0 && a.cmp(a.data[i], a.data[i-1]) < 0; i-- {
		a.data[i], a.data[i-1] = a.data[i-1], a.data[i]
	}
	return NewIterator[T](a, i), nil
}

// Clear empties the Array and zeroes every slot of its storage.
func (a *Array[T]) Clear() {
	slices.Zero(a.data)
	a.n = 0
}

func (a *Array[T]) resize(op string, n int, v T) (int, error) {
	switch {
	case n < 0:
		return a.n, errRange(op, "negative length %d", n)
	case n > len(a.data):
		return a.n, errCapacity(op, n, len(a.data))
	}
	prev := a.n
	if n < prev {
		slices.Zero(a.data[n:prev])
	} else {
		slices.Fill(a.data[prev:n], v)
	}
	a.n = n
	return prev, nil
}

func (a *Array[T]) Resize(n int) (int, error) {
	var zero T
	return a.resize("Array.Resize", n, zero)
}

func (a *Array[T]) ResizeFill(n int, v T) (int, error) {
	return a.resize("Array.ResizeFill", n, v)
}

func (a *Array[T]) less(x, y T) bool { return a.cmp(x, y) < 0 }

func (a *Array[T]) Sort()       { expslices.SortFunc(a.data[:a.n], a.less) }
func (a *Array[T]) StableSort() { expslices.SortStableFunc(a.data[:a.n], a.less) }

func (a *Array[T]) Find(v T) Iterator[T] {
	for i, straw := range a.data[:a.n] {
		if a.cmp(straw, v) == 0 {
			return NewIterator[T](a, i)
		}
	}
	return a.End()
}

func (a *Array[T]) FindSorted(v T) Iterator[T] {
	i, ok := slices.SearchLowest(a.data[:a.n], func(straw T) int {
		return a.cmp(v, straw)
	})
	if !ok {
		return a.End()
	}
	return NewIterator[T](a, i)
}

func (a *Array[T]) Begin() Iterator[T]       { return NewIterator[T](a, 0) }
func (a *Array[T]) End() Iterator[T]         { return NewIterator[T](a, a.n) }
func (a *Array[T]) CBegin() ConstIterator[T] { return NewConstIterator[T](a, 0) }
func (a *Array[T]) CEnd() ConstIterator[T]   { return NewConstIterator[T](a, a.n) }

func (a *Array[T]) RBegin() ReverseIterator[T] { return NewReverseIterator(a.End()) }
func (a *Array[T]) REnd() ReverseIterator[T]   { return NewReverseIterator(a.Begin()) }
func (a *Array[T]) CRBegin() ConstReverseIterator[T] {
	return NewConstReverseIterator(a.CEnd())
}
func (a *Array[T]) CREnd() ConstReverseIterator[T] {
	return NewConstReverseIterator(a.CBegin())
}

func (a *Array[T]) assignN(op string, n int, v T) error {
	switch {
	case n < 0:
		return errRange(op, "negative count %d", n)
	case n > len(a.data):
		return errCapacity(op, n, len(a.data))
	}
	slices.Fill(a.data[:n], v)
	if n < a.n {
		slices.Zero(a.data[n:a.n])
	}
	a.n = n
	return nil
}

func (a *Array[T]) assignSlice(op string, vals []T) error {
	if len(vals) > len(a.data) {
		return errCapacity(op, len(vals), len(a.data))
	}
	copy(a.data, vals)
	if len(vals) < a.n {
		slices.Zero(a.data[len(vals):a.n])
	}
	a.n = len(vals)
	return nil
}

// Assign replaces the contents of a with the elements of [first,
// last), which may belong to a itself.
func (a *Array[T]) Assign(first, last ConstIterator[T]) error {
	if err := checkSpan("Array.Assign", first, last); err != nil {
		return err
	}
	if last.off < first.off {
		return errRange("Array.Assign", "inverted span [%d, %d)", first.off, last.off)
	}
	return a.assignSlice("Array.Assign", Collect(first, last))
}

func (a *Array[T]) AssignN(n int, v T) error {
	return a.assignN("Array.AssignN", n, v)
}

func (a *Array[T]) AssignSlice(vals []T) error {
	return a.assignSlice("Array.AssignSlice", vals)
}

func (a *Array[T]) Swap(o Adapter[T]) error { return Swap[T](a, o) }

func (a *Array[T]) Equal(o Adapter[T]) bool  { return Equal[T](a, o) }
func (a *Array[T]) Compare(o Adapter[T]) int { return Compare[T](a, o) }

func (a *Array[T]) Slice() []T {
	ret := make([]T, a.n)
	copy(ret, a.data[:a.n])
	return ret
}
