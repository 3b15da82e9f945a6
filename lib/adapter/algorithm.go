// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package adapter

import (
	"sort"
)

// This file has the algorithms that are written purely in terms of
// the Adapter interface.  Concrete adapters either call these
// directly or have a faster version that gives identical results.

// Find returns an Iterator to the first element of a that is equal to
// v (per a.Cmp), or a.End() if there is no such element.
func Find[T any](a Adapter[T], v T) Iterator[T] {
	end := a.End()
	for it := a.Begin(); !it.Equal(end); it.Inc() {
		if a.Cmp(it.Get(), v) == 0 {
			return it
		}
	}
	return end
}

// LowerBound returns the first position in [first, last) whose
// element does not compare less than v, or last if there is none.
// [first, last) must be sorted ascending per cmp.
func LowerBound[T any](first, last ConstIterator[T], v T, cmp func(a, b T) int) ConstIterator[T] {
	count := last.Diff(first)
	for count > 0 {
		step := count / 2
		mid := first.Add(step)
		if cmp(mid.Get(), v) < 0 {
			first = mid.Add(1)
			count -= step + 1
		} else {
			count = step
		}
	}
	return first
}

// FindSorted is Find for an adapter that is sorted ascending; it runs
// in logarithmic time.  Like Find, it returns the first of several
// equal elements, and a.End() if there are none; it does not return
// an insertion point.
func FindSorted[T any](a Adapter[T], v T) Iterator[T] {
	end := a.CEnd()
	lb := LowerBound(a.CBegin(), end, v, a.Cmp)
	if lb.Equal(end) || a.Cmp(lb.Get(), v) != 0 {
		return a.End()
	}
	return NewIterator(a, lb.Offset())
}

// IsSortedUntil returns the first position in [first, last) whose
// element compares less than the one before it, or last if the whole
// range is ascending.
func IsSortedUntil[T any](first, last ConstIterator[T], cmp func(a, b T) int) ConstIterator[T] {
	if first.Equal(last) {
		return last
	}
	for next := first.Add(1); !next.Equal(last); next.Inc() {
		if cmp(next.Get(), first.Get()) < 0 {
			return next
		}
		first = next
	}
	return last
}

// IsSorted reports whether the elements of a are ascending per a.Cmp.
func IsSorted[T any](a Adapter[T]) bool {
	end := a.CEnd()
	return IsSortedUntil(a.CBegin(), end, a.Cmp).Equal(end)
}

type sortable[T any] struct {
	a Adapter[T]
}

var _ sort.Interface = sortable[int]{}

func (s sortable[T]) Len() int           { return s.a.Len() }
func (s sortable[T]) Less(i, j int) bool { return s.a.Cmp(*s.a.Ref(i), *s.a.Ref(j)) < 0 }
func (s sortable[T]) Swap(i, j int) {
	x, y := s.a.Ref(i), s.a.Ref(j)
	*x, *y = *y, *x
}

// Sort sorts a ascending per a.Cmp.  It is not stable.
func Sort[T any](a Adapter[T]) {
	sort.Sort(sortable[T]{a})
}

// StableSort sorts a ascending per a.Cmp, keeping equal elements in
// their original order.
func StableSort[T any](a Adapter[T]) {
	sort.Stable(sortable[T]{a})
}

// Copy copies [first, last) to the range beginning at dst, front to
// back, and returns the end of the destination range.  The
// destination must not begin inside of the source range.
func Copy[T any](first, last ConstIterator[T], dst Iterator[T]) Iterator[T] {
	for ; !first.Equal(last); first.Inc() {
		dst.Set(first.Get())
		dst.Inc()
	}
	return dst
}

// CopyBackward copies [first, last) to the range ending at dstEnd,
// back to front, and returns the beginning of the destination range.
// It is the right direction for shifting elements to the right within
// a single adapter.
func CopyBackward[T any](first, last ConstIterator[T], dstEnd Iterator[T]) Iterator[T] {
	for !last.Equal(first) {
		last.Dec()
		dstEnd.Dec()
		dstEnd.Set(last.Get())
	}
	return dstEnd
}

// Fill sets every element of [first, last) to v.
func Fill[T any](first, last Iterator[T], v T) {
	for ; !first.Equal(last); first.Inc() {
		first.Set(v)
	}
}

// Collect returns the elements of [first, last) as a new slice.
func Collect[T any](first, last ConstIterator[T]) []T {
	n := last.Diff(first)
	if n <= 0 {
		return nil
	}
	ret := make([]T, 0, n)
	for i := 0; i < n; i++ {
		ret = append(ret, first.Index(i))
	}
	return ret
}

// checkSpan validates [first, last) as a source range: both ends
// must be bound to the same adapter and lie within its elements.  An
// inverted span is not an error here; it is simply empty.
func checkSpan[T any](op string, first, last ConstIterator[T]) error {
	if first.owner == nil || first.owner != last.owner {
		return errRange(op, "span ends are not bound to the same adapter")
	}
	lo, hi := first.off, last.off
	if hi < lo {
		lo, hi = hi, lo
	}
	if lo < 0 || hi > first.owner.Len() {
		return errRange(op, "span [%d, %d) not in [0, %d]", first.off, last.off, first.owner.Len())
	}
	return nil
}

// Compare compares the elements of a and b lexicographically using
// a.Cmp; a shorter adapter that is a prefix of the longer one compares
// less.
func Compare[T any](a, b Adapter[T]) int {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	for i := 0; i < n; i++ {
		if d := a.Cmp(*a.Ref(i), *b.Ref(i)); d != 0 {
			return d
		}
	}
	switch {
	case a.Len() < b.Len():
		return -1
	case a.Len() > b.Len():
		return 1
	default:
		return 0
	}
}

// Equal reports whether a and b hold the same elements in the same
// order.
func Equal[T any](a, b Adapter[T]) bool {
	return a.Len() == b.Len() && Compare(a, b) == 0
}

// Swap exchanges the contents of a and b.  It fails without
// modifying either if one cannot hold the other's elements.
func Swap[T any](a, b Adapter[T]) error {
	if a == b {
		return nil
	}
	aVals, bVals := a.Slice(), b.Slice()
	if len(bVals) > a.MaxLen() {
		return errCapacity("Swap", len(bVals), a.MaxLen())
	}
	if len(aVals) > b.MaxLen() {
		return errCapacity("Swap", len(aVals), b.MaxLen())
	}
	if err := a.AssignSlice(bVals); err != nil {
		return err
	}
	return b.AssignSlice(aVals)
}
