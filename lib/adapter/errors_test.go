// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package adapter_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/go/dataadapter/lib/adapter"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()
	A := adapter.NewArray[int](10)
	require.NoError(t, A.AssignSlice(k))

	_, err := A.InsertN(A.Begin().Add(11), 1, 0)
	assert.EqualError(t, err, "dataadapter: Array.InsertN: out of range: position 11 not in [0, 10]")

	err = A.PushBack(1)
	assert.EqualError(t, err, "dataadapter: Array.PushBack: out of capacity: need 11 slots but capacity is 10")

	var opErr *adapter.OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "Array.PushBack", opErr.Op)
	assert.Equal(t, adapter.ErrOutOfCapacity, opErr.Err)
}

func TestAtBounds(t *testing.T) {
	t.Parallel()
	forEachKind(t, func(t *testing.T, kind kind) {
		A := kind.New(testCapacity)
		require.NoError(t, A.AssignSlice([]int{1, 2, 3}))

		v, err := A.At(2)
		require.NoError(t, err)
		assert.Equal(t, 3, v)

		// Slots past Len() but within Cap() are readable, and
		// cleared.
		v, err = A.At(3)
		require.NoError(t, err)
		assert.Equal(t, 0, v)

		_, err = A.At(-1)
		assert.ErrorIs(t, err, adapter.ErrOutOfRange)
		_, err = A.At(A.Cap())
		assert.ErrorIs(t, err, adapter.ErrOutOfRange)

		v, err = A.AtIter(A.CBegin().Add(1))
		require.NoError(t, err)
		assert.Equal(t, 2, v)
		_, err = A.AtIter(A.CBegin().Sub(1))
		assert.ErrorIs(t, err, adapter.ErrOutOfRange)

		require.NoError(t, A.Set(0, 7))
		assert.Equal(t, 7, A.Front())
		assert.ErrorIs(t, A.Set(A.Cap(), 7), adapter.ErrOutOfRange)
	})
}

func TestBadPositions(t *testing.T) {
	t.Parallel()
	forEachKind(t, func(t *testing.T, kind kind) {
		A := kind.New(testCapacity)
		B := kind.New(testCapacity)
		require.NoError(t, A.AssignSlice([]int{1, 2, 3}))
		require.NoError(t, B.AssignSlice([]int{4, 5, 6}))

		type testcase struct {
			Name string
			Fn   func() error
		}
		testcases := []testcase{
			{"insert-foreign", func() error {
				_, err := A.Insert(B.Begin(), 0)
				return err
			}},
			{"insert-zero-iterator", func() error {
				_, err := A.Insert(adapter.Iterator[int]{}, 0)
				return err
			}},
			{"insert-past-end", func() error {
				_, err := A.Insert(A.End().Add(1), 0)
				return err
			}},
			{"insert-before-begin", func() error {
				_, err := A.InsertN(A.Begin().Sub(1), 2, 0)
				return err
			}},
			{"insert-negative-count", func() error {
				_, err := A.InsertN(A.Begin(), -1, 0)
				return err
			}},
			{"erase-end", func() error {
				_, err := A.Erase(A.End())
				return err
			}},
			{"erase-foreign", func() error {
				_, err := A.Erase(B.Begin())
				return err
			}},
			{"erase-inverted", func() error {
				_, err := A.EraseRange(A.End(), A.Begin())
				return err
			}},
			{"erase-past-end", func() error {
				_, err := A.EraseRange(A.Begin(), A.End().Add(1))
				return err
			}},
			{"erase-mixed-owners", func() error {
				_, err := A.EraseRange(A.Begin(), B.End())
				return err
			}},
			{"insert-range-mixed-owners", func() error {
				_, err := A.InsertRange(A.Begin(), A.CBegin(), B.CEnd())
				return err
			}},
			{"insert-range-zero-iterators", func() error {
				_, err := A.InsertRange(A.Begin(), adapter.ConstIterator[int]{}, adapter.ConstIterator[int]{})
				return err
			}},
			{"insert-range-past-end", func() error {
				_, err := A.InsertRange(A.Begin(), B.CBegin(), B.CEnd().Add(1))
				return err
			}},
			{"assign-mixed-owners", func() error {
				return A.Assign(B.CBegin(), A.CEnd())
			}},
			{"assign-past-end", func() error {
				return A.Assign(A.CBegin().Sub(1), A.CEnd())
			}},
		}
		for _, tc := range testcases {
			err := tc.Fn()
			assert.ErrorIs(t, err, adapter.ErrOutOfRange, tc.Name)
			assert.Equal(t, []int{1, 2, 3}, A.Slice(), tc.Name)
			assert.Equal(t, []int{4, 5, 6}, B.Slice(), tc.Name)
		}
	})
}

func TestNoPartialMutation(t *testing.T) {
	t.Parallel()
	A := adapter.NewArray[int](5)
	require.NoError(t, A.AssignSlice([]int{1, 2, 3}))

	_, err := A.InsertN(A.Begin().Add(1), 3, 0xAF)
	assert.ErrorIs(t, err, adapter.ErrOutOfCapacity)
	_, err = A.InsertSlice(A.Begin(), []int{7, 8, 9})
	assert.ErrorIs(t, err, adapter.ErrOutOfCapacity)
	_, err = A.InsertRange(A.Begin(), A.CBegin(), A.CEnd())
	assert.ErrorIs(t, err, adapter.ErrOutOfCapacity)
	assert.ErrorIs(t, A.AssignSlice([]int{1, 2, 3, 4, 5, 6}), adapter.ErrOutOfCapacity)
	assert.ErrorIs(t, A.AssignN(6, 0), adapter.ErrOutOfCapacity)

	assert.Equal(t, []int{1, 2, 3}, A.Slice())
	assertClearedTail(t, A)

	_, err = A.InsertN(A.Begin().Add(1), 2, 0xAF)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0xAF, 0xAF, 2, 3}, A.Slice())
}
