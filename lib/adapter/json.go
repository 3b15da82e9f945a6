// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package adapter

import (
	"io"

	"git.lukeshu.com/go/lowmemjson"
)

var (
	_ lowmemjson.Encodable = (*Array[int])(nil)
	_ lowmemjson.Decodable = (*Array[int])(nil)
	_ lowmemjson.Encodable = (*Vector[int])(nil)
	_ lowmemjson.Decodable = (*Vector[int])(nil)
)

// encodeJSON writes the live elements of a as a JSON array.
func encodeJSON[T any](w io.Writer, a Adapter[T]) error {
	if _, err := w.Write([]byte{'['}); err != nil {
		return err
	}
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			if _, err := w.Write([]byte{','}); err != nil {
				return err
			}
		}
		if err := lowmemjson.NewEncoder(w).Encode(*a.Ref(i)); err != nil {
			return err
		}
	}
	if _, err := w.Write([]byte{']'}); err != nil {
		return err
	}
	return nil
}

// decodeJSON reads a JSON array (or null, which is treated as an
// empty array) and hands the elements to assign.  Nothing is handed
// over unless the whole array decodes.
func decodeJSON[T any](r io.RuneScanner, assign func([]T) error) error {
	c, _, _ := r.ReadRune()
	if c == 'n' {
		_, _, _ = r.ReadRune() // u
		_, _, _ = r.ReadRune() // l
		_, _, _ = r.ReadRune() // l
		return assign(nil)
	}
	_ = r.UnreadRune()
	var vals []T
	err := lowmemjson.DecodeArray(r, func(r io.RuneScanner) error {
		var val T
		if err := lowmemjson.NewDecoder(r).Decode(&val); err != nil {
			return err
		}
		vals = append(vals, val)
		return nil
	})
	if err != nil {
		return err
	}
	return assign(vals)
}

func (a *Array[T]) EncodeJSON(w io.Writer) error  { return encodeJSON[T](w, a) }
func (v *Vector[T]) EncodeJSON(w io.Writer) error { return encodeJSON[T](w, v) }

// DecodeJSON replaces the contents of the Array with the elements of
// a JSON array.  It fails with ErrOutOfCapacity, without modifying
// the Array, if there are more elements than Cap().
func (a *Array[T]) DecodeJSON(r io.RuneScanner) error {
	return decodeJSON(r, func(vals []T) error {
		return a.assignSlice("Array.DecodeJSON", vals)
	})
}

func (v *Vector[T]) DecodeJSON(r io.RuneScanner) error {
	return decodeJSON(r, v.AssignSlice)
}
