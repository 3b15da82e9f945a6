// Copyright (C) 2022-2024  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package textui holds the human-facing side of the dataadapter
// tools: localized number formatting, a dlog logger for stderr, and
// periodic progress reports.
package textui

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"git.lukeshu.com/go/dataadapter/lib/fmtutil"
)

// All UI output goes through this printer, so that large counts and
// lengths get digit grouping ("1,024" rather than "1024").
var printer = message.NewPrinter(language.English)

// Fprintf writes UI text to w.  Use it in place of fmt.Fprintf for
// anything a person is meant to read.
func Fprintf(w io.Writer, key string, a ...any) (n int, err error) {
	return printer.Fprintf(w, key, a...)
}

// Sprintf is the string-returning form of Fprintf.
func Sprintf(key string, a ...any) string {
	return printer.Sprintf(key, a...)
}

// Humanized returns a value that carries the UI printer's number
// formatting into plain fmt calls and error messages.
func Humanized(x any) any {
	return humanized{val: x}
}

type humanized struct {
	val any
}

var (
	_ fmt.Formatter = humanized{}
	_ fmt.Stringer  = humanized{}
)

func (h humanized) Format(f fmt.State, verb rune) {
	_, _ = printer.Fprintf(f, fmtutil.FmtStateString(f, verb), h.val)
}

func (h humanized) String() string {
	return fmt.Sprint(h)
}

// Portion is a count of N done out of D.  It prints as a whole
// percentage followed by the grouped counts:
//
//	Portion[int]{N: 3, D: 1200}.String() == "0% (3/1,200)"
//
// A zero D prints as 100%.
type Portion[T constraints.Integer] struct {
	N, D T
}

var _ fmt.Stringer = Portion[int]{}

func (p Portion[T]) String() string {
	pct := uint64(100)
	if p.D > 0 {
		pct = (uint64(p.N) * 100) / uint64(p.D)
	}
	return printer.Sprintf("%d%% (%v/%v)", pct, uint64(p.N), uint64(p.D))
}
