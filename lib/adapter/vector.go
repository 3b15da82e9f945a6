// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package adapter

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"git.lukeshu.com/go/dataadapter/lib/containers"
	"git.lukeshu.com/go/dataadapter/lib/slices"
	"git.lukeshu.com/go/dataadapter/lib/textui"
)

var (
	vectorGrowth = textui.Tunable(1.618033988749895)
	vectorMinCap = textui.Tunable(8)
)

// Vector is an Adapter over a buffer that is reallocated as needed.
// When an operation needs more room than Cap(), the buffer is grown
// by the golden ratio (or to exactly what is needed, if that is
// more); a Vector never fails with ErrOutOfCapacity.
//
// Reallocation moves the elements, so a pointer returned by Ptr() or
// Ref() is not valid across an operation that grows the Vector.
// Iterators, being (owner, offset) pairs, remain usable.
//
// The zero Vector is empty and usable, but has no ordering (Sort,
// Find, and friends will panic); use one of the NewVector functions.
type Vector[T any] struct {
	cmp  func(a, b T) int
	data []T // len(data) is the capacity
	n    int

	// Shared between a Vector and its clones.
	pool *containers.SlicePool[T]
}

var (
	_ Adapter[int]    = (*Vector[int])(nil)
	_ Container[int]  = (*Vector[int])(nil)
	_ Sequence[int]   = (*Vector[int])(nil)
	_ Reversible[int] = (*Vector[int])(nil)
)

// NewVector returns an empty Vector ordered by the native `<`
// operator.
func NewVector[T constraints.Ordered]() *Vector[T] {
	return NewVectorFunc(containers.NativeCompare[T])
}

// NewVectorOrdered returns an empty Vector ordered by T's Compare
// method.
func NewVectorOrdered[T containers.Ordered[T]]() *Vector[T] {
	return NewVectorFunc(containers.OrderedCompare[T])
}

// NewVectorFunc returns an empty Vector ordered by cmp.
func NewVectorFunc[T any](cmp func(a, b T) int) *Vector[T] {
	if cmp == nil {
		panic(fmt.Errorf("should not happen: adapter.NewVector: nil cmp"))
	}
	return &Vector[T]{
		cmp:  cmp,
		pool: new(containers.SlicePool[T]),
	}
}

// NewVectorFill returns a Vector that holds n copies of v.
func NewVectorFill[T constraints.Ordered](n int, v T) (*Vector[T], error) {
	ret := NewVector[T]()
	if err := ret.AssignN(n, v); err != nil {
		return nil, err
	}
	return ret, nil
}

// NewVectorFrom returns a Vector whose contents are a copy of buf.
func NewVectorFrom[T constraints.Ordered](buf []T) *Vector[T] {
	ret := NewVector[T]()
	ret.reserve(len(buf))
	ret.n = copy(ret.data, buf)
	return ret
}

// Clone returns a Vector with the same ordering and contents as v,
// but with its own storage.
func (v *Vector[T]) Clone() *Vector[T] {
	ret := &Vector[T]{
		cmp:  v.cmp,
		pool: v.pool,
	}
	ret.reserve(v.n)
	ret.n = copy(ret.data, v.data[:v.n])
	return ret
}

// CopyFrom replaces the contents of v with the contents of src.
func (v *Vector[T]) CopyFrom(src Adapter[T]) error {
	if src == Adapter[T](v) {
		return nil
	}
	return v.AssignSlice(src.Slice())
}

func (v *Vector[T]) realloc(newCap int) {
	if v.pool == nil {
		v.pool = new(containers.SlicePool[T])
	}
	newData := v.pool.Get(newCap)
	copy(newData, v.data[:v.n])
	v.pool.Put(v.data)
	v.data = newData
}

// reserve makes sure that the buffer has room for at least want
// elements.
func (v *Vector[T]) reserve(want int) {
	if want <= len(v.data) {
		return
	}
	grown := int(float64(len(v.data)) * vectorGrowth)
	v.realloc(slices.Max(want, grown, vectorMinCap))
}

// Reserve grows the buffer so that Cap() is at least n, without
// changing Len().
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		return errRange("Vector.Reserve", "negative capacity %d", n)
	}
	if n > len(v.data) {
		v.realloc(n)
	}
	return nil
}

// ShrinkToFit reallocates the buffer so that Cap() == Len().
func (v *Vector[T]) ShrinkToFit() {
	if len(v.data) == v.n {
		return
	}
	v.realloc(v.n)
}

func (v *Vector[T]) Len() int       { return v.n }
func (v *Vector[T]) Cap() int       { return len(v.data) }
func (v *Vector[T]) MaxLen() int    { return math.MaxInt }
func (v *Vector[T]) Empty() bool    { return v.n == 0 }
func (v *Vector[T]) Full() bool     { return v.n == len(v.data) }
func (v *Vector[T]) Cmp(x, y T) int { return v.cmp(x, y) }

func (v *Vector[T]) Ref(i int) *T { return &v.data[i] }

func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, errRange("Vector.At", "index %d not in [0, %d)", i, len(v.data))
	}
	return v.data[i], nil
}

func (v *Vector[T]) AtIter(it ConstIterator[T]) (T, error) {
	return v.At(it.off)
}

func (v *Vector[T]) Set(i int, val T) error {
	if i < 0 || i >= len(v.data) {
		return errRange("Vector.Set", "index %d not in [0, %d)", i, len(v.data))
	}
	v.data[i] = val
	return nil
}

func (v *Vector[T]) Front() T {
	var zero T
	if len(v.data) == 0 {
		return zero
	}
	return v.data[0]
}

func (v *Vector[T]) Back() T {
	if v.n == 0 {
		return v.Front()
	}
	return v.data[v.n-1]
}

func (v *Vector[T]) PushBack(val T) error {
	v.pushBack(val)
	return nil
}

func (v *Vector[T]) pushBack(val T) {
	v.reserve(v.n + 1)
	v.data[v.n] = val
	v.n++
}

func (v *Vector[T]) PushFront(val T) error {
	_, err := v.insertN("Vector.PushFront", v.Begin(), 1, val)
	return err
}

func (v *Vector[T]) PopBack() T {
	var zero T
	if v.n == 0 {
		return zero
	}
	v.n--
	ret := v.data[v.n]
	v.data[v.n] = zero
	return ret
}

func (v *Vector[T]) PopFront() T {
	if v.n == 0 {
		var zero T
		return zero
	}
	ret := v.data[0]
	v.shiftLeft(0, 1)
	return ret
}

// makeGap validates pos, and then makes room for n elements in front
// of it; [pos, pos+n) are zero afterward.
func (v *Vector[T]) makeGap(op string, pos Iterator[T], n int) error {
	switch {
	case pos.owner != Adapter[T](v):
		return errRange(op, "iterator is not bound to this Vector")
	case pos.off < 0 || pos.off > v.n:
		return errRange(op, "position %d not in [0, %d]", pos.off, v.n)
	case n < 0:
		return errRange(op, "negative count %d", n)
	case n == 0:
		return nil
	}
	v.reserve(v.n + n)
	copy(v.data[pos.off+n:v.n+n], v.data[pos.off:v.n])
	slices.Zero(v.data[pos.off : pos.off+n])
	v.n += n
	return nil
}

func (v *Vector[T]) insertN(op string, pos Iterator[T], n int, val T) (Iterator[T], error) {
	if err := v.makeGap(op, pos, n); err != nil {
		return Iterator[T]{}, err
	}
	if n == 0 {
		return v.End(), nil
	}
	end := pos.Add(n)
	Fill(pos, end, val)
	return pos, nil
}

func (v *Vector[T]) insertSlice(op string, pos Iterator[T], vals []T) (Iterator[T], error) {
	if err := v.makeGap(op, pos, len(vals)); err != nil {
		return Iterator[T]{}, err
	}
	if len(vals) == 0 {
		return v.End(), nil
	}
	copy(v.data[pos.off:], vals)
	return pos, nil
}

func (v *Vector[T]) Insert(pos Iterator[T], val T) (Iterator[T], error) {
	return v.insertN("Vector.Insert", pos, 1, val)
}

func (v *Vector[T]) InsertN(pos Iterator[T], n int, val T) (Iterator[T], error) {
	return v.insertN("Vector.InsertN", pos, n, val)
}

func (v *Vector[T]) InsertRange(pos Iterator[T], first, last ConstIterator[T]) (Iterator[T], error) {
	if err := checkSpan("Vector.InsertRange", first, last); err != nil {
		return Iterator[T]{}, err
	}
	return v.insertSlice("Vector.InsertRange", pos, Collect(first, last))
}

func (v *Vector[T]) InsertSlice(pos Iterator[T], vals []T) (Iterator[T], error) {
	return v.insertSlice("Vector.InsertSlice", pos, vals)
}

func (v *Vector[T]) eraseRange(op string, first, last Iterator[T]) (Iterator[T], error) {
	switch {
	case first.owner != Adapter[T](v) || last.owner != Adapter[T](v):
		return Iterator[T]{}, errRange(op, "iterator is not bound to this Vector")
	case first.off < 0 || last.off > v.n || first.off > last.off:
		return Iterator[T]{}, errRange(op, "span [%d, %d) not in [0, %d)", first.off, last.off, v.n)
	}
	v.shiftLeft(first.off, last.off)
	return first, nil
}

// shiftLeft removes the already-validated span [first, last).
func (v *Vector[T]) shiftLeft(first, last int) {
	var zero T
	newEnd := Copy(v.CBegin().Add(last), v.CEnd(), v.Begin().Add(first))
	Fill(newEnd, v.End(), zero)
	v.n = newEnd.off
}

func (v *Vector[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	return v.eraseRange("Vector.Erase", pos, pos.Add(1))
}

func (v *Vector[T]) EraseRange(first, last Iterator[T]) (Iterator[T], error) {
	return v.eraseRange("Vector.EraseRange", first, last)
}

func (v *Vector[T]) SortedInsert(val T) (Iterator[T], error) {
	v.pushBack(val)
	it := v.End().Sub(1)
	for it.off > 0 {
		prev := it.Sub(1)
		if v.cmp(it.Get(), prev.Get()) >= 0 {
			break
		}
		x, y := it.Ptr(), prev.Ptr()
		*x, *y = *y, *x
		it = prev
	}
	return it, nil
}

// Clear empties the Vector and zeroes every slot of its buffer; the
// buffer itself is kept.  Use ShrinkToFit to release it.
func (v *Vector[T]) Clear() {
	slices.Zero(v.data)
	v.n = 0
}

func (v *Vector[T]) resize(op string, n int, val T) (int, error) {
	if n < 0 {
		return v.n, errRange(op, "negative length %d", n)
	}
	prev := v.n
	v.reserve(n)
	if n < prev {
		slices.Zero(v.data[n:prev])
	} else {
		slices.Fill(v.data[prev:n], val)
	}
	v.n = n
	return prev, nil
}

func (v *Vector[T]) Resize(n int) (int, error) {
	var zero T
	return v.resize("Vector.Resize", n, zero)
}

func (v *Vector[T]) ResizeFill(n int, val T) (int, error) {
	return v.resize("Vector.ResizeFill", n, val)
}

func (v *Vector[T]) Sort()       { Sort[T](v) }
func (v *Vector[T]) StableSort() { StableSort[T](v) }

func (v *Vector[T]) Find(val T) Iterator[T]       { return Find[T](v, val) }
func (v *Vector[T]) FindSorted(val T) Iterator[T] { return FindSorted[T](v, val) }

func (v *Vector[T]) Begin() Iterator[T]       { return NewIterator[T](v, 0) }
func (v *Vector[T]) End() Iterator[T]         { return NewIterator[T](v, v.n) }
func (v *Vector[T]) CBegin() ConstIterator[T] { return NewConstIterator[T](v, 0) }
func (v *Vector[T]) CEnd() ConstIterator[T]   { return NewConstIterator[T](v, v.n) }

func (v *Vector[T]) RBegin() ReverseIterator[T] { return NewReverseIterator(v.End()) }
func (v *Vector[T]) REnd() ReverseIterator[T]   { return NewReverseIterator(v.Begin()) }
func (v *Vector[T]) CRBegin() ConstReverseIterator[T] {
	return NewConstReverseIterator(v.CEnd())
}
func (v *Vector[T]) CREnd() ConstReverseIterator[T] {
	return NewConstReverseIterator(v.CBegin())
}

func (v *Vector[T]) Assign(first, last ConstIterator[T]) error {
	if err := checkSpan("Vector.Assign", first, last); err != nil {
		return err
	}
	if last.off < first.off {
		return errRange("Vector.Assign", "inverted span [%d, %d)", first.off, last.off)
	}
	return v.AssignSlice(Collect(first, last))
}

func (v *Vector[T]) AssignN(n int, val T) error {
	if n < 0 {
		return errRange("Vector.AssignN", "negative count %d", n)
	}
	v.reserve(n)
	slices.Fill(v.data[:n], val)
	if n < v.n {
		slices.Zero(v.data[n:v.n])
	}
	v.n = n
	return nil
}

func (v *Vector[T]) AssignSlice(vals []T) error {
	v.reserve(len(vals))
	copy(v.data, vals)
	if len(vals) < v.n {
		slices.Zero(v.data[len(vals):v.n])
	}
	v.n = len(vals)
	return nil
}

func (v *Vector[T]) Swap(o Adapter[T]) error {
	if ov, ok := o.(*Vector[T]); ok {
		v.data, ov.data = ov.data, v.data
		v.n, ov.n = ov.n, v.n
		return nil
	}
	return Swap[T](v, o)
}

func (v *Vector[T]) Equal(o Adapter[T]) bool  { return Equal[T](v, o) }
func (v *Vector[T]) Compare(o Adapter[T]) int { return Compare[T](v, o) }

func (v *Vector[T]) Slice() []T {
	ret := make([]T, v.n)
	copy(ret, v.data[:v.n])
	return ret
}
