// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package adapter_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/go/dataadapter/lib/adapter"
)

func assertClearedTail(t *testing.T, a adapter.Adapter[int]) {
	t.Helper()
	for i := a.Len(); i < a.Cap(); i++ {
		v, err := a.At(i)
		require.NoError(t, err)
		assert.Equal(t, 0, v, "slot %d", i)
	}
}

func TestClear(t *testing.T) {
	t.Parallel()
	forEachKind(t, func(t *testing.T, kind kind) {
		A := kind.New(testCapacity)
		require.NoError(t, A.AssignSlice(k))
		A.Clear()
		assert.Equal(t, 0, A.Len())
		assert.True(t, A.Empty())
		assertClearedTail(t, A)
	})
}

func TestResize(t *testing.T) {
	t.Parallel()
	forEachKind(t, func(t *testing.T, kind kind) {
		A := kind.New(testCapacity)
		require.NoError(t, A.AssignSlice([]int{1, 2, 3}))

		prev, err := A.ResizeFill(6, 9)
		require.NoError(t, err)
		assert.Equal(t, 3, prev)
		assert.Equal(t, []int{1, 2, 3, 9, 9, 9}, A.Slice())

		prev, err = A.Resize(2)
		require.NoError(t, err)
		assert.Equal(t, 6, prev)
		assert.Equal(t, []int{1, 2}, A.Slice())
		assertClearedTail(t, A)

		prev, err = A.Resize(4)
		require.NoError(t, err)
		assert.Equal(t, 2, prev)
		assert.Equal(t, []int{1, 2, 0, 0}, A.Slice())

		_, err = A.Resize(-1)
		assert.ErrorIs(t, err, adapter.ErrOutOfRange)
		assert.Equal(t, 4, A.Len())

		_, err = A.Resize(testCapacity + 1)
		if kind.Bounded {
			assert.ErrorIs(t, err, adapter.ErrOutOfCapacity)
			assert.Equal(t, 4, A.Len())
		} else {
			assert.NoError(t, err)
			assert.Equal(t, testCapacity+1, A.Len())
		}
	})
}

func TestPushPopIdentity(t *testing.T) {
	t.Parallel()
	forEachKind(t, func(t *testing.T, kind kind) {
		A := kind.New(testCapacity)
		require.NoError(t, A.AssignSlice([]int{1, 2, 3}))
		before := A.Slice()

		require.NoError(t, A.PushBack(42))
		assert.Equal(t, 42, A.PopBack())
		assert.Equal(t, before, A.Slice())

		require.NoError(t, A.PushFront(42))
		assert.Equal(t, 42, A.PopFront())
		assert.Equal(t, before, A.Slice())
		assertClearedTail(t, A)
	})
}

func TestPopEmpty(t *testing.T) {
	t.Parallel()
	forEachKind(t, func(t *testing.T, kind kind) {
		A := kind.New(testCapacity)
		assert.Equal(t, 0, A.PopBack())
		assert.Equal(t, 0, A.PopFront())
		assert.Equal(t, 0, A.Len())
		assert.Equal(t, 0, A.Front())
		assert.Equal(t, 0, A.Back())
	})
}

func TestFillToCapacity(t *testing.T) {
	t.Parallel()
	A := adapter.NewArray[int](testCapacity)
	for i := 0; i < testCapacity; i++ {
		require.NoError(t, A.PushBack(i))
	}
	assert.True(t, A.Full())
	assert.ErrorIs(t, A.PushBack(99), adapter.ErrOutOfCapacity)
	assert.ErrorIs(t, A.PushFront(99), adapter.ErrOutOfCapacity)
	_, err := A.SortedInsert(99)
	assert.ErrorIs(t, err, adapter.ErrOutOfCapacity)
	_, err = A.Insert(A.Begin(), 99)
	assert.ErrorIs(t, err, adapter.ErrOutOfCapacity)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, A.Slice())

	V := adapter.NewVector[int]()
	for i := 0; i < testCapacity+1; i++ {
		require.NoError(t, V.PushBack(i))
	}
	assert.Equal(t, testCapacity+1, V.Len())
}

func TestInsertEraseRoundTrip(t *testing.T) {
	t.Parallel()
	forEachKind(t, func(t *testing.T, kind kind) {
		for pos := 0; pos <= 4; pos++ {
			for n := 1; n <= 6; n++ {
				A := kind.New(testCapacity)
				require.NoError(t, A.AssignSlice([]int{1, 2, 3, 4}))
				before := A.Slice()

				first, err := A.InsertN(A.Begin().Add(pos), n, 0xAF)
				require.NoError(t, err)
				assert.Equal(t, pos, first.Offset())
				assert.Equal(t, 4+n, A.Len())

				_, err = A.EraseRange(first, first.Add(n))
				require.NoError(t, err)
				assert.Equal(t, before, A.Slice(), "pos=%d n=%d", pos, n)
				assertClearedTail(t, A)
			}
		}
	})
}

func TestSortedInsertKeepsOrder(t *testing.T) {
	t.Parallel()
	forEachKind(t, func(t *testing.T, kind kind) {
		rng := rand.New(rand.NewSource(1)) //nolint:gosec // Not security-sensitive.
		A := kind.New(testCapacity)
		for i := 0; i < testCapacity; i++ {
			v := rng.Intn(20)
			it, err := A.SortedInsert(v)
			require.NoError(t, err)
			assert.Equal(t, v, it.Get())
			assertSorted(t, A)
		}
	})
}

func TestSortedInsertUnsorted(t *testing.T) {
	t.Parallel()
	forEachKind(t, func(t *testing.T, kind kind) {
		// A single bubble pass stops at the first element that
		// is not greater; nothing before it is examined.
		A := kind.New(testCapacity)
		require.NoError(t, A.AssignSlice([]int{5, 1, 9}))
		it, err := A.SortedInsert(3)
		require.NoError(t, err)
		assert.Equal(t, 2, it.Offset())
		assert.Equal(t, []int{5, 1, 3, 9}, A.Slice())
	})
}

func TestFindSorted(t *testing.T) {
	t.Parallel()
	forEachKind(t, func(t *testing.T, kind kind) {
		A := kind.New(testCapacity)
		require.NoError(t, A.AssignSlice([]int{2, 4, 4, 6, 8, 10}))
		for v := 0; v <= 11; v++ {
			it := A.FindSorted(v)
			lin := A.Find(v)
			assert.True(t, lin.Equal(it), "v=%d", v)
			if v > 0 && v%2 == 0 {
				require.False(t, it.Equal(A.End()), "v=%d", v)
				assert.Equal(t, v, it.Get())
			} else {
				assert.True(t, it.Equal(A.End()), "v=%d", v)
			}
		}
	})
}

func TestSort(t *testing.T) {
	t.Parallel()
	forEachKind(t, func(t *testing.T, kind kind) {
		A := kind.New(testCapacity)
		require.NoError(t, A.AssignSlice([]int{5, 3, 9, 1, 3}))
		A.Sort()
		assert.Equal(t, []int{1, 3, 3, 5, 9}, A.Slice())
		assertClearedTail(t, A)
	})
}

type pair struct {
	Key, Seq int
}

func TestStableSort(t *testing.T) {
	t.Parallel()
	cmp := func(a, b pair) int { return a.Key - b.Key }
	in := []pair{{2, 0}, {1, 1}, {2, 2}, {1, 3}, {0, 4}}
	exp := []pair{{0, 4}, {1, 1}, {1, 3}, {2, 0}, {2, 2}}

	for _, a := range []adapter.Adapter[pair]{
		adapter.NewArrayFunc(len(in), cmp),
		adapter.NewVectorFunc(cmp),
	} {
		require.NoError(t, a.AssignSlice(in))
		a.StableSort()
		assert.Equal(t, exp, a.Slice())
	}
}

func TestScenarioPushSortedInsert(t *testing.T) {
	t.Parallel()
	forEachKind(t, func(t *testing.T, kind kind) {
		A := kind.New(10)
		require.NoError(t, A.PushFront(0x4321))
		require.NoError(t, A.PushBack(0x1234))
		assert.Equal(t, 2, A.Len())
		assert.Equal(t, 0x4321, A.Front())
		assert.Equal(t, 0x1234, A.Back())

		_, err := A.SortedInsert(0x0)
		require.NoError(t, err)
		assert.Equal(t, 3, A.Len())
		assert.Equal(t, []int{0x0, 0x4321, 0x1234}, A.Slice())
	})
}

func TestScenarioEraseMiddle(t *testing.T) {
	t.Parallel()
	forEachKind(t, func(t *testing.T, kind kind) {
		A := kind.New(10)
		require.NoError(t, A.AssignSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))
		_, err := A.EraseRange(A.Begin().Add(2), A.End().Sub(2))
		require.NoError(t, err)
		assert.Equal(t, 4, A.Len())
		assert.Equal(t, []int{1, 2, 9, 10}, A.Slice())
	})
}

func TestAssign(t *testing.T) {
	t.Parallel()
	forEachKind(t, func(t *testing.T, kind kind) {
		A := kind.New(testCapacity)
		require.NoError(t, A.AssignSlice(k))

		// Assigning from a sub-range of itself.
		require.NoError(t, A.Assign(A.CBegin().Add(7), A.CEnd()))
		assert.Equal(t, []int{0x8, 0x9, 0x10}, A.Slice())
		assertClearedTail(t, A)

		assert.ErrorIs(t, A.Assign(A.CEnd(), A.CBegin()), adapter.ErrOutOfRange)
		assert.ErrorIs(t, A.AssignN(-1, 0), adapter.ErrOutOfRange)
		assert.Equal(t, []int{0x8, 0x9, 0x10}, A.Slice())
	})
}

func TestCompare(t *testing.T) {
	t.Parallel()
	forEachKind(t, func(t *testing.T, kind kind) {
		mk := func(vals ...int) adapter.Adapter[int] {
			ret := kind.New(testCapacity)
			require.NoError(t, ret.AssignSlice(vals))
			return ret
		}
		assert.True(t, mk(1, 2, 3).Equal(mk(1, 2, 3)))
		assert.False(t, mk(1, 2, 3).Equal(mk(1, 2)))
		assert.Equal(t, 0, mk(1, 2, 3).Compare(mk(1, 2, 3)))
		assert.Equal(t, -1, mk(1, 2).Compare(mk(1, 2, 3)))
		assert.Equal(t, 1, mk(1, 3).Compare(mk(1, 2, 3)))
		assert.Equal(t, -1, mk().Compare(mk(0)))

		// Across storage strategies.
		other := kinds[0]
		if other.Name == kind.Name {
			other = kinds[1]
		}
		o := other.New(testCapacity)
		require.NoError(t, o.AssignSlice([]int{1, 2, 3}))
		assert.True(t, mk(1, 2, 3).Equal(o))
	})
}

func TestSwap(t *testing.T) {
	t.Parallel()

	a := adapter.NewArray[int](3)
	require.NoError(t, a.AssignSlice([]int{1, 2}))
	v := adapter.NewVectorFrom([]int{5, 6, 7, 8})

	// v has too many elements for a; neither is modified.
	assert.ErrorIs(t, a.Swap(v), adapter.ErrOutOfCapacity)
	assert.ErrorIs(t, v.Swap(a), adapter.ErrOutOfCapacity)
	assert.Equal(t, []int{1, 2}, a.Slice())
	assert.Equal(t, []int{5, 6, 7, 8}, v.Slice())

	v.PopBack()
	require.NoError(t, a.Swap(v))
	assert.Equal(t, []int{5, 6, 7}, a.Slice())
	assert.Equal(t, []int{1, 2}, v.Slice())
	assertClearedTail(t, v)

	w := adapter.NewVectorFrom([]int{9})
	require.NoError(t, v.Swap(w))
	assert.Equal(t, []int{9}, v.Slice())
	assert.Equal(t, []int{1, 2}, w.Slice())

	require.NoError(t, a.Swap(a))
	assert.Equal(t, []int{5, 6, 7}, a.Slice())
}
