// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package opscript applies a JSON list of container operations to an
// adapter.Adapter.
//
// A script looks like
//
//	[
//		{"op": "push_back", "value": 4},
//		{"op": "insert", "pos": 0, "count": 3, "value": 175},
//		{"op": "erase", "pos": 1, "end": 3},
//		{"op": "pop_front"}
//	]
//
// Positions are offsets from Begin().
package opscript

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/datawire/dlib/dlog"

	"git.lukeshu.com/go/dataadapter/lib/adapter"
	"git.lukeshu.com/go/dataadapter/lib/textui"
)

// ErrUnknownOp is returned for a Step whose Op is not one that Run
// knows.
var ErrUnknownOp = errors.New("unknown op")

// ErrMissingArg is returned for a Step that lacks an argument that
// its Op requires.
var ErrMissingArg = errors.New("missing argument")

type Step struct {
	Op string `json:"op"`

	Pos    int     `json:"pos,omitempty"`
	End    *int    `json:"end,omitempty"`
	Count  *int    `json:"count,omitempty"`
	Value  int64   `json:"value,omitempty"`
	Values []int64 `json:"values,omitempty"`
}

// Result records the outcome of a single Step.  Value is set for
// ops that produce an element (pops), Pos for ops that produce a
// position (inserts, erases, finds that hit), and PrevLen for
// resize.
type Result struct {
	Step    int    `json:"step"`
	Op      string `json:"op"`
	Value   *int64 `json:"value,omitempty"`
	Pos     *int   `json:"pos,omitempty"`
	PrevLen *int   `json:"prev_len,omitempty"`
	Len     int    `json:"len"`
}

func (r Result) String() string {
	ret := textui.Sprintf("#%d %s: len=%d", r.Step, r.Op, r.Len)
	if r.Value != nil {
		ret += fmt.Sprintf(" value=%#x", *r.Value)
	}
	if r.Pos != nil {
		ret += textui.Sprintf(" pos=%d", *r.Pos)
	}
	if r.PrevLen != nil {
		ret += textui.Sprintf(" prev_len=%d", *r.PrevLen)
	}
	return ret
}

// ReadScript decodes a script; the input must hold exactly one JSON
// array of steps.
func ReadScript(r io.RuneScanner) ([]Step, error) {
	var steps []Step
	if err := lowmemjson.NewDecoder(r).DecodeThenEOF(&steps); err != nil {
		return nil, err
	}
	return steps, nil
}

// Run applies the steps to a in order, stopping at the first step
// that fails.  The Results for the steps that succeeded are returned
// even when err is non-nil.
func Run(ctx context.Context, a adapter.Adapter[int64], steps []Step) ([]Result, error) {
	progress := textui.Portion[int]{D: len(steps)}
	progressWriter := textui.NewProgress[textui.Portion[int]](ctx, dlog.LogLevelInfo, textui.Tunable(1*time.Second))
	defer progressWriter.Done()

	results := make([]Result, 0, len(steps))
	for i, step := range steps {
		progress.N = i
		progressWriter.Set(progress)

		stepCtx := dlog.WithField(ctx, "dataadapter.opscript.step", i)
		stepCtx = dlog.WithField(stepCtx, "dataadapter.opscript.op", step.Op)
		if err := stepCtx.Err(); err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}

		fn, ok := ops[step.Op]
		if !ok {
			return results, fmt.Errorf("step %d (%s): %w", i, step.Op, ErrUnknownOp)
		}
		res := Result{
			Step: i,
			Op:   step.Op,
		}
		if err := fn(a, step, &res); err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
		res.Len = a.Len()
		dlog.Debugf(stepCtx, "%v", res)
		results = append(results, res)
	}
	progress.N = len(steps)
	progressWriter.Set(progress)
	return results, nil
}

type opFunc func(a adapter.Adapter[int64], step Step, res *Result) error

var ops = map[string]opFunc{
	"push_back": func(a adapter.Adapter[int64], step Step, _ *Result) error {
		return a.PushBack(step.Value)
	},
	"push_front": func(a adapter.Adapter[int64], step Step, _ *Result) error {
		return a.PushFront(step.Value)
	},
	"pop_back": func(a adapter.Adapter[int64], _ Step, res *Result) error {
		v := a.PopBack()
		res.Value = &v
		return nil
	},
	"pop_front": func(a adapter.Adapter[int64], _ Step, res *Result) error {
		v := a.PopFront()
		res.Value = &v
		return nil
	},
	"insert": func(a adapter.Adapter[int64], step Step, res *Result) error {
		n := 1
		if step.Count != nil {
			n = *step.Count
		}
		return setPos(res)(a.InsertN(a.Begin().Add(step.Pos), n, step.Value))
	},
	"insert_values": func(a adapter.Adapter[int64], step Step, res *Result) error {
		return setPos(res)(a.InsertSlice(a.Begin().Add(step.Pos), step.Values))
	},
	"erase": func(a adapter.Adapter[int64], step Step, res *Result) error {
		end := step.Pos + 1
		if step.End != nil {
			end = *step.End
		}
		return setPos(res)(a.EraseRange(a.Begin().Add(step.Pos), a.Begin().Add(end)))
	},
	"sorted_insert": func(a adapter.Adapter[int64], step Step, res *Result) error {
		return setPos(res)(a.SortedInsert(step.Value))
	},
	"resize": func(a adapter.Adapter[int64], step Step, res *Result) error {
		if step.Count == nil {
			return fmt.Errorf("%w: count", ErrMissingArg)
		}
		prev, err := a.ResizeFill(*step.Count, step.Value)
		if err != nil {
			return err
		}
		res.PrevLen = &prev
		return nil
	},
	"clear": func(a adapter.Adapter[int64], _ Step, _ *Result) error {
		a.Clear()
		return nil
	},
	"sort": func(a adapter.Adapter[int64], _ Step, _ *Result) error {
		a.Sort()
		return nil
	},
	"stable_sort": func(a adapter.Adapter[int64], _ Step, _ *Result) error {
		a.StableSort()
		return nil
	},
	"find": func(a adapter.Adapter[int64], step Step, res *Result) error {
		setFound(a, res, a.Find(step.Value))
		return nil
	},
	"find_sorted": func(a adapter.Adapter[int64], step Step, res *Result) error {
		setFound(a, res, a.FindSorted(step.Value))
		return nil
	},
	"set": func(a adapter.Adapter[int64], step Step, _ *Result) error {
		return a.Set(step.Pos, step.Value)
	},
	"assign": func(a adapter.Adapter[int64], step Step, _ *Result) error {
		return a.AssignSlice(step.Values)
	},
}

func setPos(res *Result) func(adapter.Iterator[int64], error) error {
	return func(it adapter.Iterator[int64], err error) error {
		if err != nil {
			return err
		}
		off := it.Offset()
		res.Pos = &off
		return nil
	}
}

// setFound leaves res.Pos nil on a miss.
func setFound(a adapter.Adapter[int64], res *Result, it adapter.Iterator[int64]) {
	if it.Equal(a.End()) {
		return
	}
	off := it.Offset()
	res.Pos = &off
	v := it.Get()
	res.Value = &v
}
