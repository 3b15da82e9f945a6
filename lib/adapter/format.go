// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package adapter

import (
	"fmt"
	"io"
	"strings"

	"git.lukeshu.com/go/dataadapter/lib/fmtutil"
)

// Fprint writes each live element of a to w, each followed by a
// single space.
func Fprint[T any](w io.Writer, a Adapter[T]) error {
	for i := 0; i < a.Len(); i++ {
		if _, err := fmt.Fprint(w, *a.Ref(i), " "); err != nil {
			return err
		}
	}
	return nil
}

// format renders each live element with the verb and flags that f was
// given, each followed by a single space.
func format[T any](a Adapter[T], f fmt.State, verb rune) {
	elemFmt := fmtutil.FmtStateString(f, verb) + " "
	for i := 0; i < a.Len(); i++ {
		fmt.Fprintf(f, elemFmt, *a.Ref(i))
	}
}

func toString[T any](a Adapter[T]) string {
	var buf strings.Builder
	_ = Fprint(&buf, a)
	return buf.String()
}

var (
	_ fmt.Formatter = (*Array[int])(nil)
	_ fmt.Stringer  = (*Array[int])(nil)
	_ fmt.Formatter = (*Vector[int])(nil)
	_ fmt.Stringer  = (*Vector[int])(nil)
)

func (a *Array[T]) Format(f fmt.State, verb rune)  { format[T](a, f, verb) }
func (v *Vector[T]) Format(f fmt.State, verb rune) { format[T](v, f, verb) }

func (a *Array[T]) String() string  { return toString[T](a) }
func (v *Vector[T]) String() string { return toString[T](v) }
